package key

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// ErrInvalidKey is returned when a mnemonic character is empty or not
// representable as exactly one character.
var ErrInvalidKey = errors.New("invalid access key")

// Normalize converts a caller-supplied mnemonic into its canonical
// registration form: NFC-composed, exactly one grapheme cluster, uppercase.
//
// Multi-character input is rejected, never truncated; "f" and "F" normalize
// to the same key. Normalize is idempotent: applying it to its own output
// returns the output unchanged.
func Normalize(s string) (string, error) {
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidKey)
	}

	composed := norm.NFC.String(s)
	if uniseg.GraphemeClusterCount(composed) != 1 {
		return "", fmt.Errorf("%w: %q is not a single character", ErrInvalidKey, s)
	}

	return strings.ToUpper(composed), nil
}

// NormalizeRune is a convenience wrapper for single-rune input, the common
// case when dispatching from a key event.
func NormalizeRune(r rune) (string, error) {
	if r == 0 {
		return "", fmt.Errorf("%w: empty", ErrInvalidKey)
	}
	return Normalize(string(r))
}
