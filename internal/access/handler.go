package access

import (
	"github.com/dshills/mnemonic/internal/element"
	"github.com/dshills/mnemonic/internal/event"
	"github.com/dshills/mnemonic/internal/menu"
	"github.com/dshills/mnemonic/internal/sched"
)

// Options configures a Handler.
type Options struct {
	// BareAltOpensMenu controls whether tapping Alt alone opens the
	// attached main menu. Mnemonic display on Alt-down is unaffected.
	BareAltOpensMenu bool

	// ShowOnAltOnly restricts mnemonic dispatch to key presses with Alt
	// held. Hints left showing after an Alt tap become display-only.
	ShowOnAltOnly bool
}

// DefaultOptions returns the standard behavior.
func DefaultOptions() Options {
	return Options{BareAltOpensMenu: true}
}

// Handler is the access-key handler for one owner tree: the public
// registration surface plus the Alt-key interaction state machine.
//
// A handler is driven by a cooperative, single-threaded UI event stream;
// nothing here blocks, and the only deferral is the one-tick focus
// restoration after closing the menu from inside an Alt-down event.
type Handler struct {
	arena  *element.Arena
	router *event.Router
	queue  *sched.Queue
	opts   Options

	table    *Table
	resolver *Resolver
	engine   *Engine

	owner *element.Node
	subs  []event.Subscription

	mainMenu         menu.MainMenu
	cancelMenuClosed func()

	altIsDown         bool
	showingAccessKeys bool
	ignoreAltUp       bool
	savedFocus        element.Ref

	onShowChanged func(bool)
}

// New creates a handler. SetOwner must be called before any events flow.
func New(arena *element.Arena, router *event.Router, queue *sched.Queue, opts Options) *Handler {
	h := &Handler{
		arena:  arena,
		router: router,
		queue:  queue,
		opts:   opts,
	}
	h.table = NewTable(arena)
	h.resolver = NewResolver(arena, h.table, router.ResolveAccessTarget)
	h.engine = NewEngine(arena, h.resolver, router)
	return h
}

// SetOwner wires the handler to the root of the tree it serves. It may be
// called exactly once; calling it again, or with a nil or destroyed root,
// is a lifecycle bug in the caller and panics rather than being swallowed.
func (h *Handler) SetOwner(root *element.Node) {
	if root == nil {
		panic("access: owner cannot be nil")
	}
	if root.Ref().IsNil() {
		panic("access: owner is not alive")
	}
	if h.owner != nil {
		panic("access: owner already set")
	}
	h.owner = root

	h.subscribe(event.TypeKeyDown, event.PhaseTunnel, h.onKeyDownTunnel)
	h.subscribe(event.TypeKeyDown, event.PhaseBubble, h.onKeyDownBubble)
	h.subscribe(event.TypeKeyUp, event.PhaseTunnel, h.onKeyUpTunnel)
	h.subscribe(event.TypePointerDown, event.PhaseTunnel, h.onPointerDownTunnel)
}

func (h *Handler) subscribe(t event.Type, p event.Phase, fn event.HandlerFunc) {
	sub, err := h.router.SubscribeFunc(h.owner, t, p, fn)
	if err != nil {
		panic("access: wiring owner subscriptions: " + err.Error())
	}
	h.subs = append(h.subs, sub)
}

// Owner returns the root this handler serves, or nil before SetOwner.
func (h *Handler) Owner() *element.Node {
	return h.owner
}

// Register binds an access key to an element. See Table.Register.
func (h *Handler) Register(accessKey string, n *element.Node) error {
	return h.table.Register(accessKey, n)
}

// Unregister removes all of n's registrations. See Table.Unregister.
func (h *Handler) Unregister(n *element.Node) {
	h.table.Unregister(n)
}

// MainMenu returns the attached main menu, or nil.
func (h *Handler) MainMenu() menu.MainMenu {
	return h.mainMenu
}

// SetMainMenu replaces the attached main menu, moving the Closed
// subscription from the old menu to the new one. Nil detaches.
func (h *Handler) SetMainMenu(m menu.MainMenu) {
	if h.cancelMenuClosed != nil {
		h.cancelMenuClosed()
		h.cancelMenuClosed = nil
	}
	h.mainMenu = m
	if m != nil {
		h.cancelMenuClosed = m.OnClosed(h.onMenuClosed)
	}
}

// ShowingAccessKeys reports the owner's show-mnemonics flag.
func (h *Handler) ShowingAccessKeys() bool {
	return h.showingAccessKeys
}

// OnShowAccessKeysChanged registers the owner's callback for toggles of the
// show-mnemonics flag, typically to repaint hint underlines.
func (h *Handler) OnShowAccessKeysChanged(fn func(showing bool)) {
	h.onShowChanged = fn
}

// ProcessAccessKey dispatches one typed character against this handler's
// registrations. sender is the element the key press originated at;
// existsElsewhere folds in the host's knowledge of same-key bindings in
// other scopes. It reports whether the press was handled.
func (h *Handler) ProcessAccessKey(rawKey string, sender *element.Node, existsElsewhere bool) bool {
	return h.engine.Dispatch(rawKey, sender, existsElsewhere)
}

func (h *Handler) setShowing(v bool) {
	if h.showingAccessKeys == v {
		return
	}
	h.showingAccessKeys = v
	if h.onShowChanged != nil {
		h.onShowChanged(v)
	}
}

// scopeContainsFocus gates all raw-event observation: the handler reacts
// only while the focused element lies within its owner tree.
func (h *Handler) scopeContainsFocus() bool {
	if h.owner == nil {
		return false
	}
	f := h.arena.Focused()
	return f != nil && h.owner.Contains(f)
}

func (h *Handler) onKeyDownTunnel(env *event.Envelope) {
	if !h.scopeContainsFocus() {
		return
	}

	if !env.Key.IsAlt() {
		// Any other key while Alt is held means Alt is being used as a
		// modifier, not tapped to toggle the menu.
		if h.altIsDown {
			h.ignoreAltUp = true
		}
		return
	}

	h.altIsDown = true

	if h.mainMenu != nil && h.mainMenu.IsOpen() {
		// Alt while the menu is open: close it and give focus back to
		// whatever held it before the original Alt-down. The restore is
		// deferred one tick so focus does not move inside the very event
		// that is changing key-routing state. Mnemonics hide via the
		// menu's Closed notification.
		h.ignoreAltUp = true
		saved := h.savedFocus
		h.savedFocus = element.NilRef
		h.mainMenu.Close()
		h.queue.Post(func() {
			if n, ok := h.arena.Resolve(saved); ok {
				h.arena.SetFocus(n)
			}
		})
		return
	}

	h.savedFocus = h.arena.FocusedRef()
	h.setShowing(true)
}

func (h *Handler) onKeyDownBubble(env *event.Envelope) {
	if !h.scopeContainsFocus() {
		return
	}

	ev := env.Key
	if !ev.IsChar() {
		return
	}
	if !ev.Modifiers.HasAlt() && (h.opts.ShowOnAltOnly || !h.showingAccessKeys) {
		return
	}

	if h.engine.Dispatch(string(ev.Rune), env.Source, false) {
		env.Handled = true
	}
}

func (h *Handler) onKeyUpTunnel(env *event.Envelope) {
	if !h.scopeContainsFocus() {
		return
	}
	if !env.Key.IsAlt() {
		return
	}

	h.altIsDown = false

	if h.ignoreAltUp {
		h.ignoreAltUp = false
		return
	}
	if h.showingAccessKeys && h.mainMenu != nil && h.opts.BareAltOpensMenu {
		h.mainMenu.Open()
	}
}

func (h *Handler) onPointerDownTunnel(env *event.Envelope) {
	if !h.scopeContainsFocus() {
		return
	}
	// Any click outside the mnemonic interaction dismisses the hints.
	h.setShowing(false)
}

func (h *Handler) onMenuClosed() {
	h.setShowing(false)
}
