package event

import (
	"github.com/dshills/mnemonic/internal/element"
	"github.com/dshills/mnemonic/internal/input/key"
)

// Type identifies a routed event type.
type Type int

const (
	// TypeNone is the zero type; envelopes must carry a real type.
	TypeNone Type = iota

	// TypeKeyDown is a key press travelling through the tree.
	TypeKeyDown

	// TypeKeyUp is a key release travelling through the tree.
	TypeKeyUp

	// TypePointerDown is a pointer button press.
	TypePointerDown

	// TypeAccessKeyResolve asks an element what its effective action target
	// is for a given access key. The response travels back in the
	// envelope's Access.Target field.
	TypeAccessKeyResolve

	// TypeAccessKeyInvoke tells the chosen element its access key was
	// pressed.
	TypeAccessKeyInvoke
)

// String returns the event type name.
func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeKeyDown:
		return "key-down"
	case TypeKeyUp:
		return "key-up"
	case TypePointerDown:
		return "pointer-down"
	case TypeAccessKeyResolve:
		return "access-key-resolve"
	case TypeAccessKeyInvoke:
		return "access-key-invoke"
	default:
		return "unknown"
	}
}

// Phase identifies where in the route a handler runs.
type Phase int

const (
	// PhaseDirect runs handlers attached to the source element itself.
	PhaseDirect Phase = iota

	// PhaseTunnel runs handlers root-to-target, before the target.
	PhaseTunnel

	// PhaseBubble runs handlers target-to-root, after the target.
	PhaseBubble
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseDirect:
		return "direct"
	case PhaseTunnel:
		return "tunnel"
	case PhaseBubble:
		return "bubble"
	default:
		return "unknown"
	}
}

// AccessKeyInfo carries access-key payloads for resolve and invoke events.
type AccessKeyInfo struct {
	// Key is the normalized access key.
	Key string

	// IsMultiple is set on invoke events when other candidates share the
	// key (in this scope or elsewhere).
	IsMultiple bool

	// Target is the resolve response slot: the element the candidate
	// nominates as its effective action target. It is pre-filled with the
	// candidate itself; a handler may redirect it to a descendant or clear
	// it to decline.
	Target element.Ref
}

// Envelope is a routed event instance.
type Envelope struct {
	// Type identifies the event.
	Type Type

	// Source is the element the event originates at (the routing target).
	Source *element.Node

	// Handled stops further delivery once set.
	Handled bool

	// Key carries the payload for key events.
	Key key.Event

	// Pointer carries the payload for pointer events.
	Pointer key.PointerEvent

	// Access carries the payload for access-key events.
	Access AccessKeyInfo
}

// Handler processes a routed event.
type Handler interface {
	HandleRouted(env *Envelope)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(env *Envelope)

// HandleRouted implements Handler.
func (f HandlerFunc) HandleRouted(env *Envelope) {
	f(env)
}
