// Package dispatcher routes live key events to registered action callbacks.
//
// The dispatcher is a single table-driven router: one ordered list of
// registrations evaluated once per event. Each registration combines a
// contextual gate (focus and dialog rules) with the event matcher for its
// action's effective binding. Every gated, matching registration fires —
// two actions bound to the same chord both fire on every matching event,
// in registration order; the dispatcher never arbitrates a winner.
//
// Effective bindings are re-resolved from the settings store on every
// store change notification. The gate is evaluated per event against the
// current ambient context, never cached across context transitions.
//
// A panicking callback is logged and treated as a non-match for that
// registration only; it never disturbs the event stream or the other
// registrations.
package dispatcher
