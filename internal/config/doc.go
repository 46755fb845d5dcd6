// Package config resolves effective shortcut configuration.
//
// The authoritative override data lives in an external settings store; this
// package holds no durable state. Resolve merges registry defaults with a
// store snapshot into fully-populated effective configs, DetectConflicts
// reports actions sharing a canonical binding, and Store abstracts the
// read/write/notify surface the engine consumes.
//
// All resolution functions are pure with respect to their inputs: callers
// pass the override snapshot in, and concurrent reads of one snapshot are
// safe.
package config
