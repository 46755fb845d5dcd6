package key

import "strings"

// Chord is the canonical form of a combo: an order-independent modifier set
// plus exactly one non-modifier key token, case-normalized. Chords are
// comparable; two combo strings denote the same binding iff their chords are
// equal.
type Chord struct {
	// Modifiers is the combined modifier set.
	Modifiers Modifier

	// Key is the normalized (lowercase) key token.
	Key string
}

// Equal reports whether two chords denote the same binding.
func (c Chord) Equal(other Chord) bool {
	return c == other
}

// IsZero reports whether the chord is the zero value (no key token).
func (c Chord) IsZero() bool {
	return c.Key == ""
}

// String returns the chord as a combo string in canonical order,
// e.g. "Meta+Shift+k". The result parses back to an equal chord.
func (c Chord) String() string {
	if c.IsZero() {
		return ""
	}
	if c.Modifiers.IsEmpty() {
		return c.Key
	}
	return c.Modifiers.String() + "+" + c.Key
}

// normalizeKey maps a reported or typed key token to its canonical
// (lowercase) form used for chord equality. The host shell reports the
// space bar as a literal space; bindings write it as "Space".
func normalizeKey(token string) string {
	if token == " " {
		return "space"
	}
	return strings.ToLower(token)
}
