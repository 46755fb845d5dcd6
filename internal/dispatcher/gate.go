package dispatcher

import "slices"

// Context is the ambient UI state the gate evaluates against. Both fields
// are empty when nothing is focused and no dialog is open.
type Context struct {
	// FocusedInputID identifies the currently focused text input.
	FocusedInputID string

	// ActiveDialogID identifies the currently open dialog.
	ActiveDialogID string
}

// Options controls when a registration responds to input. The zero value
// is not useful; build options with DefaultOptions or via Register's
// option arguments, which start from the defaults.
type Options struct {
	// EnableOnChatFocus keeps the registration live while a text input
	// is focused. Default true.
	EnableOnChatFocus bool

	// DialogIDs lists dialogs the registration stays live under. With an
	// open dialog not in this list the registration is gated off.
	DialogIDs []string

	// Enabled turns the registration on. Default true. An explicit
	// disable always wins, even over Global.
	Enabled bool

	// Global bypasses the focus and dialog checks entirely.
	Global bool
}

// DefaultOptions returns the fully-populated default option set.
func DefaultOptions() Options {
	return Options{EnableOnChatFocus: true, Enabled: true}
}

// Option configures a registration.
type Option func(*Options)

// WithChatFocus sets whether the registration stays live while a text
// input is focused.
func WithChatFocus(enabled bool) Option {
	return func(o *Options) { o.EnableOnChatFocus = enabled }
}

// WithDialogs lists dialogs the registration stays live under.
func WithDialogs(ids ...string) Option {
	return func(o *Options) { o.DialogIDs = ids }
}

// WithEnabled sets the registration's explicit enable flag.
func WithEnabled(enabled bool) Option {
	return func(o *Options) { o.Enabled = enabled }
}

// WithGlobal makes the registration bypass focus and dialog checks.
func WithGlobal(global bool) Option {
	return func(o *Options) { o.Global = global }
}

// EnabledIn decides whether a registration with these options currently
// responds to input. Rules apply in order; the first applicable wins:
//
//  1. explicit disable
//  2. global bypass
//  3. focused input with chat focus off
//  4. open dialog not in the allowlist
//  5. enabled
func (o Options) EnabledIn(ctx Context) bool {
	if !o.Enabled {
		return false
	}
	if o.Global {
		return true
	}
	if ctx.FocusedInputID != "" && !o.EnableOnChatFocus {
		return false
	}
	if ctx.ActiveDialogID != "" && !slices.Contains(o.DialogIDs, ctx.ActiveDialogID) {
		return false
	}
	return true
}
