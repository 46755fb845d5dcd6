package config

import (
	"github.com/lumenchat/hotkeys/internal/action"
	"github.com/lumenchat/hotkeys/internal/input/key"
)

// DetectConflicts reports every other action whose effective, enabled
// binding canonicalizes to the same chord as the candidate tokens.
//
// Disabled actions never conflict (they will never fire), and conflicts
// are advisory only: nothing prevents saving or dispatching a conflicting
// binding. The result is in registry order, making output deterministic.
//
// Conflict is symmetric between enabled actions: if this reports j for id,
// running it for j with j's effective combo reports id back.
func DetectConflicts(id action.ID, candidate []string, overrides OverrideMap) []action.ID {
	chord, err := key.Canonicalize(candidate)
	if err != nil {
		return nil
	}

	var conflicts []action.ID
	for _, other := range action.IDs() {
		if other == id {
			continue
		}
		eff, ok := ResolveFrom(other, overrides)
		if !ok || eff.Disabled {
			continue
		}
		otherChord, ok := eff.Chord()
		if !ok {
			continue
		}
		if otherChord.Equal(chord) {
			conflicts = append(conflicts, other)
		}
	}
	return conflicts
}

// ConflictsByChord groups every enabled action by its effective chord and
// returns the groups with more than one member, in registry order. Used by
// the settings UI to flag existing collisions in one pass.
func ConflictsByChord(overrides OverrideMap) map[key.Chord][]action.ID {
	byChord := make(map[key.Chord][]action.ID)
	for _, id := range action.IDs() {
		eff, ok := ResolveFrom(id, overrides)
		if !ok || eff.Disabled {
			continue
		}
		chord, ok := eff.Chord()
		if !ok {
			continue
		}
		byChord[chord] = append(byChord[chord], id)
	}

	for chord, ids := range byChord {
		if len(ids) < 2 {
			delete(byChord, chord)
		}
	}
	return byChord
}
