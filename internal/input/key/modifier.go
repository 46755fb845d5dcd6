package key

import "strings"

// Modifier represents keyboard modifier keys as a bit set.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModMeta indicates the Meta key (Cmd on macOS, Win on Windows).
	ModMeta Modifier = 1 << iota

	// ModControl indicates the Control key.
	ModControl

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModShift indicates the Shift key.
	ModShift
)

// canonicalOrder is the fixed display and formatting order for modifiers.
var canonicalOrder = []Modifier{ModMeta, ModControl, ModAlt, ModShift}

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// Name returns the combo-grammar name for a single modifier.
func (m Modifier) Name() string {
	switch m {
	case ModMeta:
		return "Meta"
	case ModControl:
		return "Control"
	case ModAlt:
		return "Alt"
	case ModShift:
		return "Shift"
	default:
		return ""
	}
}

// String returns a human-readable representation like "Meta+Shift" in
// canonical order.
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	for _, mod := range canonicalOrder {
		if m.Has(mod) {
			parts = append(parts, mod.Name())
		}
	}
	return strings.Join(parts, "+")
}

// modifierNameMap maps modifier names (lowercase) to Modifier values.
// The combo grammar admits exactly the four canonical names; aliases like
// "Cmd" or "Ctrl" are rejected so persisted combos stay portable.
var modifierNameMap = map[string]Modifier{
	"meta":    ModMeta,
	"control": ModControl,
	"alt":     ModAlt,
	"shift":   ModShift,
}

// ModifierFromName returns the Modifier for a given name (case-insensitive).
// Returns ModNone if the name is not a recognized modifier.
func ModifierFromName(name string) Modifier {
	if m, ok := modifierNameMap[strings.ToLower(strings.TrimSpace(name))]; ok {
		return m
	}
	return ModNone
}
