// Package key provides combo parsing, canonicalization, and event matching
// for the shortcut system.
//
// This package defines the fundamental types for representing key combos:
//
//   - Modifier: Represents modifier keys (Meta, Control, Alt, Shift)
//   - Chord: The canonical form of a combo (modifier set + one key token)
//   - Event: A live key press reported by the host shell
//   - Platform: Maps the host's primary-modifier flag to Meta or Control
//
// # Combo Grammar
//
// A combo is a "+"-joined list of zero or more modifiers followed by exactly
// one key token:
//
//	"Meta+N", "Control+Shift+K", "Meta+Shift+Backspace", "Alt+Space"
//
// Parsing preserves token order as typed; Canonicalize partitions the tokens
// into an order-independent modifier set and a case-normalized key token.
// Two combos denote the same binding iff their chords are equal.
//
// # Matching
//
// An event matches a chord only when the event's modifier set is exactly
// equal to the chord's modifier set and the key tokens compare equal
// case-insensitively. An event holding any extra modifier never matches.
package key
