package demo

import (
	"fmt"

	"github.com/dshills/mnemonic/internal/access"
	"github.com/dshills/mnemonic/internal/element"
	"github.com/dshills/mnemonic/internal/event"
	"github.com/dshills/mnemonic/internal/menu"
)

// widget pairs an element with its on-screen placement. The tree carries
// routing state; the widget carries what the renderer needs.
type widget struct {
	node      *element.Node
	label     string
	accessKey string
	menuEntry bool

	x, y, w int
	presses int
}

type widgetSpec struct {
	id        string
	label     string
	accessKey string
	disabled  bool
}

// buildUI assembles the demo tree: a menu bar with three entries and a
// column of buttons, two of which share a mnemonic so Alt+S cycles.
func (a *App) buildUI() error {
	a.root = a.arena.NewNode("window").SetFocusable(true)
	menubar := a.root.AppendChild(a.arena.NewNode("menubar"))

	handlerOpts := access.Options{
		BareAltOpensMenu: a.settings.BareAltOpensMenu,
		ShowOnAltOnly:    a.settings.ShowOnAltOnly,
	}
	a.handler = access.New(a.arena, a.router, a.queue, handlerOpts)
	a.handler.SetOwner(a.root)

	menuSpecs := []widgetSpec{
		{id: "menu.file", label: "File", accessKey: "F"},
		{id: "menu.edit", label: "Edit", accessKey: "E"},
		{id: "menu.help", label: "Help", accessKey: "H"},
	}
	x := 1
	var items []menu.Item
	for _, spec := range menuSpecs {
		ak := a.accessKeyFor(spec)
		n := menubar.AppendChild(a.arena.NewNode(spec.id))
		w := &widget{node: n, label: spec.label, accessKey: ak, menuEntry: true,
			x: x, y: 0, w: len(spec.label) + 2}
		a.widgets = append(a.widgets, w)
		items = append(items, menu.Item{Title: spec.label, AccessKey: ak})
		x += w.w + 1
	}
	a.bar = menu.NewBar(items...)
	a.handler.SetMainMenu(a.bar)

	buttonSpecs := []widgetSpec{
		{id: "save", label: "Save", accessKey: "S"},
		{id: "send", label: "Send", accessKey: "S"},
		{id: "open", label: "Open...", accessKey: "O"},
		{id: "delete", label: "Delete", accessKey: "D", disabled: true},
	}
	y := 3
	for _, spec := range buttonSpecs {
		ak := a.accessKeyFor(spec)
		n := a.root.AppendChild(a.arena.NewNode(spec.id)).SetFocusable(true)
		if spec.disabled {
			n.SetEnabled(false)
		}
		w := &widget{node: n, label: spec.label, accessKey: ak,
			x: 2, y: y, w: len(spec.label) + 4}
		a.widgets = append(a.widgets, w)
		y += 2
	}

	for _, w := range a.widgets {
		if err := a.handler.Register(w.accessKey, w.node); err != nil {
			return fmt.Errorf("registering %s: %w", w.node.ID(), err)
		}
	}

	if _, err := a.router.SubscribeFunc(a.root, event.TypeAccessKeyInvoke,
		event.PhaseBubble, a.onInvoke); err != nil {
		return fmt.Errorf("wiring invoke observer: %w", err)
	}

	a.handler.OnShowAccessKeysChanged(func(showing bool) {
		if showing {
			a.status = "access keys shown; press a letter, or release Alt for the menu"
		}
	})

	// Start with focus on the first button.
	for _, w := range a.widgets {
		if !w.menuEntry && w.node.IsTargetable() {
			a.arena.SetFocus(w.node)
			break
		}
	}
	return nil
}

// accessKeyFor applies any settings override for the element's mnemonic.
func (a *App) accessKeyFor(spec widgetSpec) string {
	if override, ok := a.settings.Mnemonics[spec.id]; ok {
		return override
	}
	return spec.accessKey
}

// onInvoke reacts to a chosen access-key target: a unique match activates
// the element, while a shared key only moves focus so repeated presses walk
// the candidates.
func (a *App) onInvoke(env *event.Envelope) {
	w := a.widgetFor(env.Source)
	if w == nil {
		return
	}
	a.arena.SetFocus(w.node)
	if env.Access.IsMultiple {
		a.status = fmt.Sprintf("%s: focused %s (shared key)", env.Access.Key, w.node.ID())
	} else {
		a.activate(w.node, "invoked")
	}
	env.Handled = true
}

func (a *App) activate(n *element.Node, verb string) {
	w := a.widgetFor(n)
	if w == nil || !n.IsTargetable() {
		return
	}
	w.presses++
	if w.menuEntry {
		a.bar.Close()
		a.status = fmt.Sprintf("%s menu %s", w.label, verb)
		return
	}
	a.status = fmt.Sprintf("%s %s (%d)", w.node.ID(), verb, w.presses)
}

func (a *App) widgetFor(n *element.Node) *widget {
	for _, w := range a.widgets {
		if w.node == n {
			return w
		}
	}
	return nil
}

func (a *App) widgetAt(x, y int) *widget {
	for _, w := range a.widgets {
		if y == w.y && x >= w.x && x < w.x+w.w {
			return w
		}
	}
	return nil
}
