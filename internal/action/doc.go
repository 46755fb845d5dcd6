// Package action defines the registry of assignable actions.
//
// The registry is a fixed, closed catalog: every assignable action has
// exactly one Definition carrying its label, description, scope, default
// combo, and presentation flags. It is built once at process start and
// never mutated; user rebinding happens in the config layer, not here.
//
// Scopes (navigation, zoom, chat, quick-chat) group actions for
// presentation and counting only. They do not restrict matching: a binding
// fires regardless of its scope.
package action
