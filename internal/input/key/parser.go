package key

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors.
var (
	ErrEmptyBinding      = errors.New("empty binding")
	ErrNoKey             = errors.New("binding has no key token")
	ErrExtraKey          = errors.New("binding has more than one key token")
	ErrDuplicateModifier = errors.New("duplicate modifier")
)

// ParseBinding splits a combo string on "+" into its tokens, preserving
// order and repetition exactly as typed. Token-level whitespace is trimmed.
// Deduplication and reordering are Canonicalize's job.
func ParseBinding(combo string) []string {
	parts := strings.Split(combo, "+")
	tokens := make([]string, len(parts))
	for i, p := range parts {
		tokens[i] = strings.TrimSpace(p)
	}
	return tokens
}

// Canonicalize partitions a token list into a modifier set and exactly one
// key token, producing the combo's Chord. It fails if the list is empty,
// if no non-modifier token is present, if more than one is, or if a
// modifier repeats. Token order is irrelevant to the result.
func Canonicalize(tokens []string) (Chord, error) {
	var mods Modifier
	keyToken := ""
	seen := false

	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		seen = true

		if mod := ModifierFromName(tok); mod != ModNone {
			if mods.Has(mod) {
				return Chord{}, fmt.Errorf("%w: %q", ErrDuplicateModifier, tok)
			}
			mods = mods.With(mod)
			continue
		}

		if keyToken != "" {
			return Chord{}, fmt.Errorf("%w: %q", ErrExtraKey, tok)
		}
		keyToken = tok
	}

	if !seen {
		return Chord{}, ErrEmptyBinding
	}
	if keyToken == "" {
		return Chord{}, ErrNoKey
	}

	return Chord{Modifiers: mods, Key: normalizeKey(keyToken)}, nil
}

// ParseChord parses and canonicalizes a combo string in one step.
func ParseChord(combo string) (Chord, error) {
	return Canonicalize(ParseBinding(combo))
}

// MustChord parses a combo string and panics on error.
// Use only for known-valid combos in initialization code.
func MustChord(combo string) Chord {
	chord, err := ParseChord(combo)
	if err != nil {
		panic("invalid combo: " + combo + ": " + err.Error())
	}
	return chord
}

// Problem identifies why a combo string failed validation.
type Problem int

const (
	// ProblemNone indicates a valid combo.
	ProblemNone Problem = iota

	// ProblemEmpty indicates an empty combo string.
	ProblemEmpty

	// ProblemNoKey indicates the combo has no non-modifier key token.
	ProblemNoKey

	// ProblemDuplicateModifier indicates a modifier appears twice.
	ProblemDuplicateModifier

	// ProblemUnknownModifier indicates an unrecognized modifier name.
	ProblemUnknownModifier
)

// String returns the problem name.
func (p Problem) String() string {
	switch p {
	case ProblemNone:
		return "none"
	case ProblemEmpty:
		return "empty"
	case ProblemNoKey:
		return "no-key"
	case ProblemDuplicateModifier:
		return "duplicate-modifier"
	case ProblemUnknownModifier:
		return "unknown-modifier"
	default:
		return "unknown"
	}
}

// Validation is the structured result of validating a combo string.
type Validation struct {
	// OK is true when the combo canonicalizes cleanly.
	OK bool

	// Problem identifies the failure when OK is false.
	Problem Problem

	// Token is the offending token for modifier problems.
	Token string
}

// Validate checks a combo string and reports a structured reason on
// failure. It never panics; any input is acceptable.
//
// Positionally, every token before the last must be a recognized modifier;
// the last token must be a non-modifier key. This is how a misspelled
// modifier ("Ctrl+K") is reported as unknown-modifier rather than as a
// second key token.
func Validate(combo string) Validation {
	if strings.TrimSpace(combo) == "" {
		return Validation{Problem: ProblemEmpty}
	}

	tokens := ParseBinding(combo)
	var mods Modifier
	keyToken := ""

	for i, tok := range tokens {
		last := i == len(tokens)-1

		if mod := ModifierFromName(tok); mod != ModNone {
			if mods.Has(mod) {
				return Validation{Problem: ProblemDuplicateModifier, Token: tok}
			}
			mods = mods.With(mod)
			continue
		}

		if !last {
			return Validation{Problem: ProblemUnknownModifier, Token: tok}
		}
		keyToken = tok
	}

	if keyToken == "" {
		return Validation{Problem: ProblemNoKey}
	}

	return Validation{OK: true}
}
