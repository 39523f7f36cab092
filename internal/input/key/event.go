package key

import (
	"fmt"
	"time"
	"unicode"
)

// Action distinguishes a key press from a key release.
type Action uint8

const (
	// ActionPress indicates the key went down.
	ActionPress Action = iota

	// ActionRelease indicates the key came up.
	ActionRelease
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionPress:
		return "press"
	case ActionRelease:
		return "release"
	default:
		return "unknown"
	}
}

// Event represents a single key press or release.
type Event struct {
	// Key identifies the key.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Action is press or release.
	Action Action

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewPress creates a key-press event with the current timestamp.
func NewPress(key Key, r rune, mods Modifier) Event {
	return Event{
		Key:       key,
		Rune:      r,
		Modifiers: mods,
		Action:    ActionPress,
		Timestamp: time.Now(),
	}
}

// NewRelease creates a key-release event with the current timestamp.
func NewRelease(key Key, r rune, mods Modifier) Event {
	return Event{
		Key:       key,
		Rune:      r,
		Modifiers: mods,
		Action:    ActionRelease,
		Timestamp: time.Now(),
	}
}

// NewRunePress creates a press event for a character.
func NewRunePress(r rune, mods Modifier) Event {
	return NewPress(KeyRune, r, mods)
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune)
}

// IsPress returns true for key-press events.
func (e Event) IsPress() bool {
	return e.Action == ActionPress
}

// IsRelease returns true for key-release events.
func (e Event) IsRelease() bool {
	return e.Action == ActionRelease
}

// IsAlt returns true if this event is the Alt key itself going down or up.
func (e Event) IsAlt() bool {
	return e.Key == KeyAlt
}

// String returns a representation like "press A-f" or "release Alt".
func (e Event) String() string {
	var keyName string
	switch e.Key {
	case KeyRune:
		keyName = string(e.Rune)
	default:
		keyName = e.Key.String()
	}
	if mods := e.Modifiers.String(); mods != "" {
		return fmt.Sprintf("%s %s+%s", e.Action, mods, keyName)
	}
	return fmt.Sprintf("%s %s", e.Action, keyName)
}

// PointerButton identifies a pointer button.
type PointerButton uint8

const (
	// ButtonPrimary is the primary (usually left) pointer button.
	ButtonPrimary PointerButton = iota

	// ButtonSecondary is the secondary (usually right) pointer button.
	ButtonSecondary

	// ButtonMiddle is the middle pointer button.
	ButtonMiddle
)

// PointerEvent represents a pointer button press.
type PointerEvent struct {
	// Button is the button that went down.
	Button PointerButton

	// X and Y are the pointer position in the owner's coordinate space.
	X, Y int

	// Modifiers contains the active keyboard modifiers.
	Modifiers Modifier

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewPointerPress creates a pointer-press event with the current timestamp.
func NewPointerPress(button PointerButton, x, y int, mods Modifier) PointerEvent {
	return PointerEvent{
		Button:    button,
		X:         x,
		Y:         y,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}
