// Package element provides the UI element tree the access-key router serves.
//
// Elements are owned by an Arena and referenced elsewhere through Ref
// handles. A Ref is a non-owning reference: it never keeps an element alive,
// and resolving it after the element has been destroyed simply reports the
// element as gone. This is the liveness model the registration table and the
// saved-focus slot build on.
//
// # Handles
//
// Each arena slot carries a generation counter. Destroying an element bumps
// the generation, so every outstanding Ref to it stops resolving at once.
// Resolve is a cheap probe (two array reads and a compare).
//
// # Focus
//
// The arena also tracks the focused element, standing in for the host's
// focus engine at this boundary. Focus follows the same liveness rules:
// destroying the focused element clears focus.
package element
