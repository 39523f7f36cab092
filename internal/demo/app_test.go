package demo

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/mnemonic/internal/config"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	a, err := newApp(tcell.NewSimulationScreen(""), config.Default())
	if err != nil {
		t.Fatalf("newApp failed: %v", err)
	}
	return a
}

// feed pushes one terminal event through the loop body: translate, then tick.
func (a *App) feed(ev tcell.Event) {
	a.handleEvent(ev)
	a.queue.Tick()
}

func keyEvent(k tcell.Key, r rune, mods tcell.ModMask) *tcell.EventKey {
	return tcell.NewEventKey(k, r, mods)
}

func TestF10TogglesMenu(t *testing.T) {
	a := newTestApp(t)

	a.feed(keyEvent(tcell.KeyF10, 0, tcell.ModNone))
	if !a.bar.IsOpen() {
		t.Fatal("menu closed after F10")
	}
	if !a.handler.ShowingAccessKeys() {
		t.Error("mnemonics hidden while menu is open")
	}

	savedRef := a.arena.FocusedRef()
	a.feed(keyEvent(tcell.KeyF10, 0, tcell.ModNone))
	if a.bar.IsOpen() {
		t.Error("menu still open after second F10")
	}
	if a.handler.ShowingAccessKeys() {
		t.Error("mnemonics still shown after menu closed")
	}
	if a.arena.FocusedRef() != savedRef {
		t.Error("focus not restored after closing the menu")
	}
}

func TestAltLetterInvokesButton(t *testing.T) {
	a := newTestApp(t)

	a.feed(keyEvent(tcell.KeyRune, 'o', tcell.ModAlt))
	f := a.arena.Focused()
	if f == nil || f.ID() != "open" {
		t.Fatalf("focused = %v, want open", f)
	}
	if a.bar.IsOpen() {
		t.Error("menu opened from a used Alt chord")
	}
}

func TestAltSharedKeyCyclesCandidates(t *testing.T) {
	a := newTestApp(t)

	// Focus starts on save, so the shared key advances past it immediately.
	a.feed(keyEvent(tcell.KeyRune, 's', tcell.ModAlt))
	first := a.arena.Focused()
	if first == nil || first.ID() != "send" {
		t.Fatalf("first press focused %v, want send", first)
	}

	a.feed(keyEvent(tcell.KeyRune, 's', tcell.ModAlt))
	second := a.arena.Focused()
	if second == nil || second.ID() != "save" {
		t.Fatalf("second press focused %v, want save", second)
	}
}

func TestDisabledButtonIgnored(t *testing.T) {
	a := newTestApp(t)

	a.feed(keyEvent(tcell.KeyRune, 'd', tcell.ModAlt))
	f := a.arena.Focused()
	if f == nil || f.ID() != "save" {
		t.Errorf("focus moved to %v for a disabled target", f)
	}
	if strings.Contains(a.status, "delete") {
		t.Errorf("status reports an invocation: %q", a.status)
	}
}

func TestMenuMnemonicWhileOpen(t *testing.T) {
	a := newTestApp(t)

	a.feed(keyEvent(tcell.KeyF10, 0, tcell.ModNone))
	a.feed(keyEvent(tcell.KeyRune, 'f', tcell.ModNone))
	if a.bar.IsOpen() {
		t.Error("menu still open after activating an entry")
	}
	if a.status != "File menu invoked" {
		t.Errorf("status = %q", a.status)
	}
}

func TestEscapeDismissesHints(t *testing.T) {
	a := newTestApp(t)

	a.feed(keyEvent(tcell.KeyF10, 0, tcell.ModNone))
	a.feed(keyEvent(tcell.KeyEscape, 0, tcell.ModNone))
	if a.bar.IsOpen() {
		t.Fatal("menu still open after Escape")
	}

	a.feed(keyEvent(tcell.KeyEscape, 0, tcell.ModNone))
	if a.handler.ShowingAccessKeys() {
		t.Error("hints still shown after Escape")
	}
}

func TestSettingsOverrideMnemonic(t *testing.T) {
	s := config.Default()
	s.Mnemonics = map[string]string{"open": "P"}
	a, err := newApp(tcell.NewSimulationScreen(""), s)
	if err != nil {
		t.Fatalf("newApp failed: %v", err)
	}

	a.feed(keyEvent(tcell.KeyRune, 'p', tcell.ModAlt))
	f := a.arena.Focused()
	if f == nil || f.ID() != "open" {
		t.Fatalf("focused = %v, want open via overridden key", f)
	}
}
