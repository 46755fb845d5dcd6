package config

import "github.com/lumenchat/hotkeys/internal/action"

// Override is a user-supplied replacement for one action's default binding.
type Override struct {
	// Combo is the rebound combo string, e.g. "Control+Shift+K".
	Combo string `toml:"combo" json:"combo"`

	// Disabled turns the action off entirely.
	Disabled bool `toml:"disabled" json:"disabled"`
}

// OverrideMap maps action IDs to their overrides. An absent entry means
// "use the registry default, enabled".
type OverrideMap map[action.ID]Override

// Clone returns a copy of the map. A nil map clones to an empty map.
func (m OverrideMap) Clone() OverrideMap {
	out := make(OverrideMap, len(m))
	for id, ov := range m {
		out[id] = ov
	}
	return out
}

// Get returns the override for an action, if present.
func (m OverrideMap) Get(id action.ID) (Override, bool) {
	ov, ok := m[id]
	return ov, ok
}
