// Package key provides the raw input types consumed by the access-key router.
//
// This package defines the fundamental types for representing input:
//
//   - Key: Identifies a keyboard key (special keys, modifier keys, or runes)
//   - Modifier: Represents modifier state (Ctrl, Alt, Shift, Meta)
//   - Event: A single key press or release with modifiers and timestamp
//   - PointerEvent: A pointer button press with position
//
// Unlike a general editor input layer there is no chord or sequence parsing
// here; access keys are single characters. Normalize converts caller-supplied
// mnemonic characters into the canonical registration form: the input must be
// exactly one grapheme cluster and is folded to uppercase. Anything else is
// rejected with ErrInvalidKey rather than truncated.
package key
