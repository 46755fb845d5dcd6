package key

import "testing"

func TestEventModifiersPrimaryMapping(t *testing.T) {
	ev := Event{Key: "k", Primary: true}

	if got := PlatformMac.EventModifiers(ev); got != ModMeta {
		t.Errorf("mac primary = %v, want Meta", got)
	}
	if got := PlatformOther.EventModifiers(ev); got != ModControl {
		t.Errorf("other primary = %v, want Control", got)
	}
}

func TestEventModifiersControlDistinctOnMac(t *testing.T) {
	ev := Event{Key: "k", Primary: true, Control: true}

	if got := PlatformMac.EventModifiers(ev); got != ModMeta|ModControl {
		t.Errorf("mac modifiers = %v, want Meta+Control", got)
	}
	// Elsewhere Primary and Control denote the same key.
	if got := PlatformOther.EventModifiers(ev); got != ModControl {
		t.Errorf("other modifiers = %v, want Control", got)
	}
}

func TestMatchExactModifierSet(t *testing.T) {
	binding := ParseBinding("Meta+K")

	tests := []struct {
		name string
		ev   Event
		want bool
	}{
		{"exact", Event{Key: "k", Primary: true}, true},
		{"case insensitive key", Event{Key: "K", Primary: true}, true},
		{"extra alt", Event{Key: "k", Primary: true, Alt: true}, false},
		{"extra shift", Event{Key: "k", Primary: true, Shift: true}, false},
		{"missing meta", Event{Key: "k"}, false},
		{"wrong key", Event{Key: "j", Primary: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlatformMac.Match(tt.ev, binding); got != tt.want {
				t.Errorf("Match(%+v) = %v, want %v", tt.ev, got, tt.want)
			}
		})
	}
}

func TestMatchThreeModifierChord(t *testing.T) {
	binding := ParseBinding("Meta+Shift+G")

	match := Event{Key: "G", Primary: true, Shift: true}
	if !PlatformMac.Match(match, binding) {
		t.Errorf("Match(%+v) = false, want true", match)
	}

	superset := Event{Key: "G", Primary: true, Shift: true, Control: true}
	if PlatformMac.Match(superset, binding) {
		t.Errorf("Match(%+v) = true, want false (extra Control)", superset)
	}
}

func TestMatchSpaceKey(t *testing.T) {
	binding := ParseBinding("Alt+Space")

	tests := []struct {
		key  string
		want bool
	}{
		{" ", true},
		{"Space", true},
		{"space", true},
		{"s", false},
	}

	for _, tt := range tests {
		ev := Event{Key: tt.key, Alt: true}
		if got := PlatformMac.Match(ev, binding); got != tt.want {
			t.Errorf("Match(key=%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestMatchInvalidBindingNeverMatches(t *testing.T) {
	ev := Event{Key: "k", Primary: true}

	for _, combo := range []string{"", "Meta+", "Meta+Meta+K"} {
		if PlatformMac.Match(ev, ParseBinding(combo)) {
			t.Errorf("Match with invalid binding %q = true, want false", combo)
		}
	}
}

func TestMatchControlBindingByPlatform(t *testing.T) {
	binding := ParseBinding("Control+Shift+K")
	ev := Event{Key: "k", Primary: true, Shift: true}

	// On non-mac platforms the primary flag is Control.
	if !PlatformOther.Match(ev, binding) {
		t.Error("PlatformOther: primary+shift should match Control+Shift+K")
	}
	// On mac the primary flag is Meta, so this must not match.
	if PlatformMac.Match(ev, binding) {
		t.Error("PlatformMac: primary+shift must not match Control+Shift+K")
	}
	// An explicit Control flag matches on mac.
	if !PlatformMac.Match(Event{Key: "k", Control: true, Shift: true}, binding) {
		t.Error("PlatformMac: control+shift should match Control+Shift+K")
	}
}
