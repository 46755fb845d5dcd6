package key

import "runtime"

// Event is a single key press as reported by the host shell.
//
// The host reports the platform's primary modifier (Command on macOS,
// Control elsewhere) as a single Primary flag; Platform resolves which
// canonical modifier that flag denotes. Control is reported separately so
// that macOS bindings can distinguish Control from Command.
type Event struct {
	// Key is the reported key value, e.g. "k", "K", "Enter", " ".
	Key string

	// Primary is the platform primary-modifier flag.
	Primary bool

	// Control is the explicit Control flag. On platforms where Control is
	// the primary modifier this is redundant with Primary.
	Control bool

	// Alt is the Alt (Option) flag.
	Alt bool

	// Shift is the Shift flag.
	Shift bool
}

// Platform selects the convention for resolving an event's primary-modifier
// flag: Meta on macOS, Control everywhere else. Exactly one of the two is
// ever contributed by the Primary flag.
type Platform int

const (
	// PlatformMac treats the primary modifier as Meta.
	PlatformMac Platform = iota

	// PlatformOther treats the primary modifier as Control.
	PlatformOther
)

// CurrentPlatform returns the platform convention for the running OS.
func CurrentPlatform() Platform {
	if runtime.GOOS == "darwin" {
		return PlatformMac
	}
	return PlatformOther
}

// String returns the platform name.
func (p Platform) String() string {
	if p == PlatformMac {
		return "mac"
	}
	return "other"
}

// PrimaryModifier returns the canonical modifier the Primary event flag
// denotes on this platform.
func (p Platform) PrimaryModifier() Modifier {
	if p == PlatformMac {
		return ModMeta
	}
	return ModControl
}

// EventModifiers derives an event's canonical modifier set under this
// platform's convention.
func (p Platform) EventModifiers(ev Event) Modifier {
	var mods Modifier
	if ev.Primary {
		mods = mods.With(p.PrimaryModifier())
	}
	if ev.Control {
		mods = mods.With(ModControl)
	}
	if ev.Alt {
		mods = mods.With(ModAlt)
	}
	if ev.Shift {
		mods = mods.With(ModShift)
	}
	return mods
}

// MatchChord reports whether an event satisfies a canonical chord.
// The event's modifier set must equal the chord's set exactly (an extra
// held modifier never matches) and the key tokens must be equal
// case-insensitively.
func (p Platform) MatchChord(ev Event, chord Chord) bool {
	if chord.IsZero() {
		return false
	}
	if p.EventModifiers(ev) != chord.Modifiers {
		return false
	}
	return normalizeKey(ev.Key) == chord.Key
}

// Match reports whether an event satisfies a binding given as parsed
// tokens. Tokens that fail to canonicalize never match.
func (p Platform) Match(ev Event, tokens []string) bool {
	chord, err := Canonicalize(tokens)
	if err != nil {
		return false
	}
	return p.MatchChord(ev, chord)
}
