package config

import (
	"testing"

	"github.com/lumenchat/hotkeys/internal/action"
)

func TestResolveAbsentOverride(t *testing.T) {
	eff, ok := Resolve(action.NewChat, nil)
	if !ok {
		t.Fatal("Resolve(new-chat) not ok")
	}
	if eff.Combo != "Meta+N" {
		t.Errorf("combo = %q, want Meta+N", eff.Combo)
	}
	if eff.Disabled {
		t.Error("absent override resolved disabled")
	}
	if !eff.IsDefault {
		t.Error("absent override not IsDefault")
	}
}

func TestResolveRebound(t *testing.T) {
	eff, ok := Resolve(action.NewChat, &Override{Combo: "Control+Shift+N"})
	if !ok {
		t.Fatal("Resolve not ok")
	}
	if eff.Combo != "Control+Shift+N" {
		t.Errorf("combo = %q", eff.Combo)
	}
	if eff.IsDefault {
		t.Error("rebound combo reported as default")
	}
}

func TestResolveOverrideEqualToDefault(t *testing.T) {
	// Same chord typed in a different order still counts as default.
	eff, _ := Resolve(action.DeleteChat, &Override{Combo: "Shift+Meta+Backspace"})
	if !eff.IsDefault {
		t.Error("reordered default combo not IsDefault")
	}
}

func TestResolveDisabled(t *testing.T) {
	eff, _ := Resolve(action.ZoomIn, &Override{Combo: "Meta+=", Disabled: true})
	if !eff.Disabled {
		t.Error("disabled override resolved enabled")
	}
	if !eff.IsDefault {
		t.Error("default combo with disabled flag should still be IsDefault")
	}
}

func TestResolveCorruptComboFallsBack(t *testing.T) {
	tests := []string{"", "Meta+", "Meta+Meta+K", "garbage+more+stuff"}

	for _, combo := range tests {
		eff, ok := Resolve(action.CommandMenu, &Override{Combo: combo, Disabled: true})
		if !ok {
			t.Fatalf("Resolve not ok for combo %q", combo)
		}
		if eff.Combo != "Meta+K" {
			t.Errorf("combo %q: effective = %q, want registry default", combo, eff.Combo)
		}
		// The whole override is treated as absent, including Disabled.
		if eff.Disabled {
			t.Errorf("combo %q: corrupt override kept its disabled flag", combo)
		}
		if !eff.IsDefault {
			t.Errorf("combo %q: fallback not IsDefault", combo)
		}
	}
}

func TestResolveUnknownAction(t *testing.T) {
	if _, ok := Resolve(action.ID("bogus"), nil); ok {
		t.Error("Resolve(bogus) ok, want false")
	}
}

func TestResolveAllCoversRegistry(t *testing.T) {
	effs := ResolveAll(OverrideMap{
		action.NewChat: {Combo: "Control+N"},
	})

	if len(effs) != action.Count() {
		t.Fatalf("ResolveAll returned %d entries, want %d", len(effs), action.Count())
	}
	if effs[action.NewChat].Combo != "Control+N" {
		t.Errorf("override not applied: %+v", effs[action.NewChat])
	}
	if effs[action.ZoomIn].Combo != "Meta+=" {
		t.Errorf("default not applied: %+v", effs[action.ZoomIn])
	}
}

func TestDefaultOverrides(t *testing.T) {
	m := DefaultOverrides()
	if len(m) != action.Count() {
		t.Fatalf("DefaultOverrides has %d entries, want %d", len(m), action.Count())
	}

	for _, def := range action.All() {
		ov, ok := m[def.ID]
		if !ok {
			t.Errorf("%s missing from default config", def.ID)
			continue
		}
		if ov.Combo != def.Default || ov.Disabled {
			t.Errorf("%s default entry = %+v", def.ID, ov)
		}
	}
}

func TestDefaultOverridesMatchesIndividualReset(t *testing.T) {
	// Resetting every action individually must equal the factory map.
	m := make(OverrideMap)
	for _, def := range action.All() {
		m[def.ID] = Override{Combo: def.Default, Disabled: false}
	}

	defaults := DefaultOverrides()
	if len(m) != len(defaults) {
		t.Fatalf("sizes differ: %d vs %d", len(m), len(defaults))
	}
	for id, ov := range defaults {
		if m[id] != ov {
			t.Errorf("%s: %+v vs %+v", id, m[id], ov)
		}
	}
}

func TestDefaultOverridesResolveAsDefault(t *testing.T) {
	for id, eff := range ResolveAll(DefaultOverrides()) {
		if !eff.IsDefault || eff.Disabled {
			t.Errorf("%s: factory entry resolves to %+v", id, eff)
		}
	}
}
