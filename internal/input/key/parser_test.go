package key

import (
	"errors"
	"testing"
)

func TestParseBindingPreservesOrder(t *testing.T) {
	tests := []struct {
		combo string
		want  []string
	}{
		{"Meta+N", []string{"Meta", "N"}},
		{"Shift+Meta+K", []string{"Shift", "Meta", "K"}},
		{"Meta+Meta+K", []string{"Meta", "Meta", "K"}},
		{"k", []string{"k"}},
		{" Meta + N ", []string{"Meta", "N"}},
		{"", []string{""}},
	}

	for _, tt := range tests {
		got := ParseBinding(tt.combo)
		if len(got) != len(tt.want) {
			t.Errorf("ParseBinding(%q) = %v, want %v", tt.combo, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("ParseBinding(%q)[%d] = %q, want %q", tt.combo, i, got[i], tt.want[i])
			}
		}
	}
}

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		combo   string
		wantMod Modifier
		wantKey string
	}{
		{"Meta+N", ModMeta, "n"},
		{"Control+Shift+K", ModControl | ModShift, "k"},
		{"Shift+Control+k", ModControl | ModShift, "k"},
		{"Meta+Shift+Backspace", ModMeta | ModShift, "backspace"},
		{"Alt+Space", ModAlt, "space"},
		{"Meta+=", ModMeta, "="},
		{"Meta+,", ModMeta, ","},
		{"Enter", ModNone, "enter"},
		{"meta+shift+g", ModMeta | ModShift, "g"},
	}

	for _, tt := range tests {
		chord, err := ParseChord(tt.combo)
		if err != nil {
			t.Errorf("ParseChord(%q) error = %v", tt.combo, err)
			continue
		}
		if chord.Modifiers != tt.wantMod {
			t.Errorf("ParseChord(%q) modifiers = %v, want %v", tt.combo, chord.Modifiers, tt.wantMod)
		}
		if chord.Key != tt.wantKey {
			t.Errorf("ParseChord(%q) key = %q, want %q", tt.combo, chord.Key, tt.wantKey)
		}
	}
}

func TestCanonicalizeOrderIndependent(t *testing.T) {
	a, err := ParseChord("Meta+Shift+K")
	if err != nil {
		t.Fatalf("ParseChord error = %v", err)
	}
	b, err := ParseChord("Shift+Meta+k")
	if err != nil {
		t.Fatalf("ParseChord error = %v", err)
	}
	if !a.Equal(b) {
		t.Errorf("chords differ: %v vs %v", a, b)
	}
}

func TestCanonicalizeIdempotent(t *testing.T) {
	combos := []string{"Meta+N", "Control+Shift+K", "Alt+Space", "Meta+Shift+Backspace"}

	for _, combo := range combos {
		once, err := ParseChord(combo)
		if err != nil {
			t.Fatalf("ParseChord(%q) error = %v", combo, err)
		}
		// Re-canonicalize the canonical serialization.
		twice, err := ParseChord(once.String())
		if err != nil {
			t.Fatalf("ParseChord(%q) error = %v", once.String(), err)
		}
		if !once.Equal(twice) {
			t.Errorf("canonicalize not idempotent for %q: %v vs %v", combo, once, twice)
		}
	}
}

func TestCanonicalizeErrors(t *testing.T) {
	tests := []struct {
		combo   string
		wantErr error
	}{
		{"", ErrEmptyBinding},
		{"   ", ErrEmptyBinding},
		{"Meta+Shift", ErrNoKey},
		{"Meta+", ErrNoKey},
		{"Meta+Meta+K", ErrDuplicateModifier},
		{"Meta+K+B", ErrExtraKey},
	}

	for _, tt := range tests {
		_, err := ParseChord(tt.combo)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("ParseChord(%q) error = %v, want %v", tt.combo, err, tt.wantErr)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		combo       string
		wantOK      bool
		wantProblem Problem
	}{
		{"Meta+N", true, ProblemNone},
		{"Control+Shift+K", true, ProblemNone},
		{"Enter", true, ProblemNone},
		{"", false, ProblemEmpty},
		{"  ", false, ProblemEmpty},
		{"Meta+Shift", false, ProblemNoKey},
		{"Meta+", false, ProblemNoKey},
		{"Meta+Meta+K", false, ProblemDuplicateModifier},
		{"Ctrl+K", false, ProblemUnknownModifier},
		{"Cmd+Shift+P", false, ProblemUnknownModifier},
	}

	for _, tt := range tests {
		v := Validate(tt.combo)
		if v.OK != tt.wantOK {
			t.Errorf("Validate(%q) ok = %v, want %v", tt.combo, v.OK, tt.wantOK)
		}
		if v.Problem != tt.wantProblem {
			t.Errorf("Validate(%q) problem = %v, want %v", tt.combo, v.Problem, tt.wantProblem)
		}
	}
}

func TestValidateReportsOffendingToken(t *testing.T) {
	v := Validate("Ctrl+K")
	if v.Token != "Ctrl" {
		t.Errorf("Validate token = %q, want %q", v.Token, "Ctrl")
	}

	v = Validate("Meta+Meta+K")
	if v.Token != "Meta" {
		t.Errorf("Validate token = %q, want %q", v.Token, "Meta")
	}
}

func TestMustChordPanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustChord did not panic on invalid combo")
		}
	}()
	MustChord("Meta+")
}
