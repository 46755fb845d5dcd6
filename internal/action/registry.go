package action

import (
	"github.com/lumenchat/hotkeys/internal/input/key"
)

// byID indexes the definitions table; defaultChords caches each default
// combo's canonical form. Both are built once at init.
var (
	byID          map[ID]Definition
	defaultChords map[ID]key.Chord
)

func init() {
	byID = make(map[ID]Definition, len(definitions))
	defaultChords = make(map[ID]key.Chord, len(definitions))

	for _, def := range definitions {
		if _, dup := byID[def.ID]; dup {
			panic("action: duplicate definition for " + string(def.ID))
		}
		byID[def.ID] = def
		// MustChord panics on a malformed default, which is a
		// programmer error in the definitions table.
		defaultChords[def.ID] = key.MustChord(def.Default)
	}
}

// Lookup returns the definition for an action ID.
func Lookup(id ID) (Definition, bool) {
	def, ok := byID[id]
	return def, ok
}

// Known reports whether id names a registry action.
func Known(id ID) bool {
	_, ok := byID[id]
	return ok
}

// All returns every definition in presentation order. The returned slice
// is a copy; the registry itself is immutable.
func All() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

// IDs returns every action ID in presentation order.
func IDs() []ID {
	out := make([]ID, len(definitions))
	for i, def := range definitions {
		out[i] = def.ID
	}
	return out
}

// Count returns the number of registered actions.
func Count() int {
	return len(definitions)
}

// ScopeGroup is a scope together with its definitions, for display.
type ScopeGroup struct {
	Scope       Scope
	Definitions []Definition
}

// GroupByScope returns the registry grouped by scope, scopes and
// definitions both in presentation order.
func GroupByScope() []ScopeGroup {
	groups := make([]ScopeGroup, 0, len(Scopes))
	for _, scope := range Scopes {
		var defs []Definition
		for _, def := range definitions {
			if def.Scope == scope {
				defs = append(defs, def)
			}
		}
		if len(defs) > 0 {
			groups = append(groups, ScopeGroup{Scope: scope, Definitions: defs})
		}
	}
	return groups
}

// IsDefault reports whether a token list canonicalizes to the action's
// default chord. Unknown IDs and non-canonicalizable token lists are never
// default.
func IsDefault(id ID, tokens []string) bool {
	def, ok := defaultChords[id]
	if !ok {
		return false
	}
	chord, err := key.Canonicalize(tokens)
	if err != nil {
		return false
	}
	return chord.Equal(def)
}
