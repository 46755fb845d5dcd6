package key

import "strings"

// Modifier glyphs used for display, keyed by canonical modifier.
var modifierGlyphs = map[Modifier]string{
	ModMeta:    "⌘",
	ModControl: "⌃",
	ModAlt:     "⌥",
	ModShift:   "⇧",
}

// renamedKeys maps key tokens (lowercase) to display glyphs. All other key
// tokens are shown verbatim as typed.
var renamedKeys = map[string]string{
	"backspace": "⌫",
	"delete":    "⌦",
	"enter":     "⏎",
	"escape":    "⎋",
	"tab":       "⇥",
}

// DisplayString renders a combo for presentation: each modifier becomes its
// platform glyph in the fixed canonical order (Meta, Control, Alt, Shift),
// followed by the key token. With withPlus the parts are joined by "+",
// otherwise concatenated directly.
//
// A combo that does not canonicalize is returned unchanged; display never
// fails.
func DisplayString(combo string, withPlus bool) string {
	tokens := ParseBinding(combo)
	if _, err := Canonicalize(tokens); err != nil {
		return combo
	}

	var mods Modifier
	keyToken := ""
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		if mod := ModifierFromName(tok); mod != ModNone {
			mods = mods.With(mod)
			continue
		}
		keyToken = tok
	}

	parts := make([]string, 0, 5)
	for _, mod := range canonicalOrder {
		if mods.Has(mod) {
			parts = append(parts, modifierGlyphs[mod])
		}
	}
	if glyph, ok := renamedKeys[strings.ToLower(keyToken)]; ok {
		parts = append(parts, glyph)
	} else {
		parts = append(parts, keyToken)
	}

	sep := ""
	if withPlus {
		sep = "+"
	}
	return strings.Join(parts, sep)
}
