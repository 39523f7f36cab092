// Package event provides routed event delivery along the element tree.
//
// An Envelope travels from the tree root down to its source element (the
// tunnel phase) and then back up from the source to the root (the bubble
// phase). Handlers attach to a specific element for a specific event type
// and phase; a tunnel handler on the root therefore sees every event headed
// anywhere in its tree before the target does, and a bubble handler on the
// root sees everything the target declined to handle. Marking an envelope
// Handled stops further delivery.
//
// # Phases
//
//   - PhaseTunnel: root-to-target, used for raw observation (Alt detection,
//     pointer dismissal).
//   - PhaseDirect: handlers on the target element itself, used for
//     request/response round-trips such as access-key target resolution.
//   - PhaseBubble: target-to-root, used for actions that give the target
//     the first chance (mnemonic dispatch).
//
// # Panic recovery
//
// Handler panics are recovered and reported through a configurable
// PanicHandler, so a misbehaving element callback cannot take down the
// event loop.
package event
