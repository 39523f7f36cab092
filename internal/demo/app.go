// Package demo is a small terminal application exercising the access-key
// stack end to end: an element tree with registered mnemonics, a menu bar,
// and an event loop translating terminal input into routed envelopes.
//
// Terminals do not report the Alt key going down and up on its own, so the
// loop synthesizes the press/release pair: Alt+letter becomes Alt-down,
// letter-down, Alt-up, and F10 stands in for a bare Alt tap.
package demo

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/mnemonic/internal/access"
	"github.com/dshills/mnemonic/internal/config"
	"github.com/dshills/mnemonic/internal/element"
	"github.com/dshills/mnemonic/internal/event"
	"github.com/dshills/mnemonic/internal/input/key"
	"github.com/dshills/mnemonic/internal/menu"
	"github.com/dshills/mnemonic/internal/sched"
)

// Options configures the demo application.
type Options struct {
	// ConfigPath is the settings file; empty means defaults.
	ConfigPath string
}

// App wires the access-key handler into a tcell screen.
type App struct {
	screen   tcell.Screen
	settings config.Settings

	arena   *element.Arena
	router  *event.Router
	queue   *sched.Queue
	handler *access.Handler
	bar     *menu.Bar

	root    *element.Node
	widgets []*widget

	status string
	quit   bool
}

// New loads settings, builds the element tree, and prepares the screen.
// The screen is not initialized until Run.
func New(opts Options) (*App, error) {
	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	return newApp(screen, settings)
}

func newApp(screen tcell.Screen, settings config.Settings) (*App, error) {
	a := &App{
		screen:   screen,
		settings: settings,
		arena:    element.NewArena(),
		router:   event.NewRouter(),
		queue:    sched.NewQueue(),
		status:   "ready",
	}
	if err := a.buildUI(); err != nil {
		return nil, err
	}
	return a, nil
}

// Run initializes the screen and drives the event loop until quit.
func (a *App) Run() error {
	if err := a.screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	a.screen.EnableMouse()
	defer a.screen.Fini()

	a.render()
	for !a.quit {
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		a.handleEvent(ev)
		a.queue.Tick()
		a.render()
	}
	return nil
}

// Shutdown restores the terminal. Safe to call after Run returns.
func (a *App) Shutdown() {
	a.screen.Fini()
}

func (a *App) handleEvent(ev tcell.Event) {
	switch tev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		a.handleKey(tev)
	case *tcell.EventMouse:
		a.handleMouse(tev)
	}
}

func (a *App) handleKey(tev *tcell.EventKey) {
	switch tev.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ:
		a.quit = true
		return
	case tcell.KeyF10:
		// Stand-in for a bare Alt tap.
		a.dispatchKey(event.TypeKeyDown, key.NewPress(key.KeyAlt, 0, key.ModAlt))
		a.dispatchKey(event.TypeKeyUp, key.NewRelease(key.KeyAlt, 0, key.ModNone))
		return
	case tcell.KeyEscape:
		if a.bar.IsOpen() {
			a.bar.Close()
			return
		}
		// A click anywhere dismisses the hints; Escape borrows that path.
		a.dispatchPointer(key.NewPointerPress(key.ButtonPrimary, 0, 0, key.ModNone))
		return
	case tcell.KeyTab:
		a.focusNext()
		return
	case tcell.KeyEnter:
		if f := a.arena.Focused(); f != nil {
			a.activate(f, "pressed")
		}
		return
	case tcell.KeyRune:
		// Fall through to the rune handling below.
	default:
		return
	}

	mods := convertModifiers(tev.Modifiers())
	r := tev.Rune()

	if mods.HasAlt() {
		// The terminal collapses the chord into one event; replay it as the
		// sequence a windowing system would deliver.
		a.dispatchKey(event.TypeKeyDown, key.NewPress(key.KeyAlt, 0, key.ModAlt))
		a.dispatchKey(event.TypeKeyDown, key.NewRunePress(r, mods))
		a.dispatchKey(event.TypeKeyUp, key.NewRelease(key.KeyAlt, 0, key.ModNone))
		return
	}

	if a.handler.ShowingAccessKeys() || a.bar.IsOpen() {
		a.dispatchKey(event.TypeKeyDown, key.NewRunePress(r, mods))
	}
}

func (a *App) handleMouse(tev *tcell.EventMouse) {
	if tev.Buttons()&tcell.Button1 == 0 {
		return
	}
	x, y := tev.Position()

	target := a.widgetAt(x, y)
	if target != nil {
		a.arena.SetFocus(target.node)
	}

	src := a.arena.Focused()
	if src == nil {
		src = a.root
	}
	env := &event.Envelope{
		Type:    event.TypePointerDown,
		Source:  src,
		Pointer: key.NewPointerPress(key.ButtonPrimary, x, y, key.ModNone),
	}
	_ = a.router.Dispatch(env)

	if target != nil {
		a.activate(target.node, "clicked")
	}
}

// dispatchKey routes a key event from the focused element, falling back to
// the root so the handler still sees Alt when nothing holds focus.
func (a *App) dispatchKey(t event.Type, ev key.Event) {
	src := a.arena.Focused()
	if src == nil {
		a.arena.SetFocus(a.root)
		src = a.root
	}
	env := &event.Envelope{Type: t, Source: src, Key: ev}
	_ = a.router.Dispatch(env)
}

func (a *App) dispatchPointer(ev key.PointerEvent) {
	src := a.arena.Focused()
	if src == nil {
		src = a.root
	}
	env := &event.Envelope{Type: event.TypePointerDown, Source: src, Pointer: ev}
	_ = a.router.Dispatch(env)
}

func (a *App) focusNext() {
	cur := a.arena.Focused()
	start := 0
	for i, w := range a.widgets {
		if w.node == cur {
			start = i + 1
			break
		}
	}
	for i := 0; i < len(a.widgets); i++ {
		w := a.widgets[(start+i)%len(a.widgets)]
		if w.node.Focusable() && w.node.IsTargetable() {
			a.arena.SetFocus(w.node)
			return
		}
	}
}

func convertModifiers(m tcell.ModMask) key.Modifier {
	var out key.Modifier
	if m&tcell.ModShift != 0 {
		out = out.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		out = out.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		out = out.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		out = out.With(key.ModMeta)
	}
	return out
}
