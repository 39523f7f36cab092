// Package menu defines the main-menu contract the access-key handler
// coordinates with, plus a minimal menu-bar model implementing it.
package menu

// MainMenu is the surface the access-key handler needs from an application
// main menu. OnClosed registers a callback fired whenever the menu closes,
// whatever the cause; it returns a cancel function for unsubscribing.
type MainMenu interface {
	IsOpen() bool
	Open()
	Close()
	OnClosed(fn func()) (cancel func())
}

// Item is one entry of a menu bar.
type Item struct {
	// Title is the display text.
	Title string

	// AccessKey is the item's mnemonic, already normalized.
	AccessKey string
}

// Bar is a minimal main-menu model: an open/closed flag over a list of
// items, with closed-notification callbacks. Rendering is the host's job.
type Bar struct {
	items  []Item
	open   bool
	active int

	nextID int
	closed map[int]func()
}

// NewBar creates a closed menu bar with the given items.
func NewBar(items ...Item) *Bar {
	return &Bar{
		items:  items,
		active: -1,
		closed: make(map[int]func()),
	}
}

// Items returns the bar's entries.
func (b *Bar) Items() []Item {
	return b.items
}

// IsOpen reports whether the menu is open.
func (b *Bar) IsOpen() bool {
	return b.open
}

// Open opens the menu, activating the first item.
func (b *Bar) Open() {
	if b.open {
		return
	}
	b.open = true
	if len(b.items) > 0 {
		b.active = 0
	}
}

// Close closes the menu and fires the closed callbacks. Closing an already
// closed menu does nothing.
func (b *Bar) Close() {
	if !b.open {
		return
	}
	b.open = false
	b.active = -1

	// Snapshot first: a callback may unsubscribe itself.
	fns := make([]func(), 0, len(b.closed))
	for _, fn := range b.closed {
		fns = append(fns, fn)
	}
	for _, fn := range fns {
		fn()
	}
}

// ActiveIndex returns the index of the active item, or -1 when closed.
func (b *Bar) ActiveIndex() int {
	return b.active
}

// Activate sets the active item while open.
func (b *Bar) Activate(i int) {
	if b.open && i >= 0 && i < len(b.items) {
		b.active = i
	}
}

// OnClosed registers a closed-notification callback and returns its cancel
// function.
func (b *Bar) OnClosed(fn func()) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	id := b.nextID
	b.nextID++
	b.closed[id] = fn
	return func() {
		delete(b.closed, id)
	}
}
