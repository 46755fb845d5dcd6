package config

import (
	"github.com/lumenchat/hotkeys/internal/action"
	"github.com/lumenchat/hotkeys/internal/input/key"
)

// Effective is an action's fully-populated configuration after merging its
// registry default with any user override. No optional fields cross the
// engine boundary: every action always resolves to a complete value.
type Effective struct {
	// Combo is the effective combo string.
	Combo string

	// Disabled is true when the user disabled the action.
	Disabled bool

	// IsDefault is true when the effective binding canonicalizes to the
	// registry default.
	IsDefault bool
}

// Chord returns the canonical form of the effective combo. Resolve only
// produces combos that canonicalize, so the second return is false only
// for a zero Effective.
func (e Effective) Chord() (key.Chord, bool) {
	chord, err := key.ParseChord(e.Combo)
	if err != nil {
		return key.Chord{}, false
	}
	return chord, true
}

// Resolve merges one action's registry default with an optional override.
//
// An override whose combo does not canonicalize (corrupted persisted data)
// is treated as absent: the action falls back to its registry default,
// enabled. Corruption degrades to factory behavior instead of failing.
func Resolve(id action.ID, ov *Override) (Effective, bool) {
	def, ok := action.Lookup(id)
	if !ok {
		return Effective{}, false
	}

	if ov == nil {
		return Effective{Combo: def.Default, IsDefault: true}, true
	}

	if _, err := key.ParseChord(ov.Combo); err != nil {
		return Effective{Combo: def.Default, IsDefault: true}, true
	}

	return Effective{
		Combo:     ov.Combo,
		Disabled:  ov.Disabled,
		IsDefault: action.IsDefault(id, key.ParseBinding(ov.Combo)),
	}, true
}

// ResolveFrom resolves one action against an override snapshot.
func ResolveFrom(id action.ID, overrides OverrideMap) (Effective, bool) {
	if ov, ok := overrides.Get(id); ok {
		return Resolve(id, &ov)
	}
	return Resolve(id, nil)
}

// ResolveAll resolves every registry action against a snapshot. The result
// always covers the registry's full ID set regardless of which entries the
// snapshot carries.
func ResolveAll(overrides OverrideMap) map[action.ID]Effective {
	out := make(map[action.ID]Effective, action.Count())
	for _, id := range action.IDs() {
		eff, _ := ResolveFrom(id, overrides)
		out[id] = eff
	}
	return out
}

// DefaultOverrides materializes the factory-reset override map: one entry
// per action with its default combo, enabled. Resetting every action
// individually yields the same map.
func DefaultOverrides() OverrideMap {
	out := make(OverrideMap, action.Count())
	for _, def := range action.All() {
		out[def.ID] = Override{Combo: def.Default}
	}
	return out
}
