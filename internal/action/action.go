package action

import "github.com/lumenchat/hotkeys/internal/input/key"

// ID identifies an assignable action. The set of IDs is closed and defined
// at compile time in defaults.go.
type ID string

// Scope is a presentation grouping for actions. It is not a matching
// constraint.
type Scope string

const (
	// ScopeNavigation groups window and chat-list navigation actions.
	ScopeNavigation Scope = "navigation"

	// ScopeZoom groups content-zoom actions.
	ScopeZoom Scope = "zoom"

	// ScopeChat groups actions on the active chat.
	ScopeChat Scope = "chat"

	// ScopeQuickChat groups the ambient quick-chat actions.
	ScopeQuickChat Scope = "quick-chat"
)

// Scopes lists all scopes in presentation order.
var Scopes = []Scope{ScopeNavigation, ScopeZoom, ScopeChat, ScopeQuickChat}

// Definition describes one assignable action.
type Definition struct {
	// ID is the action identifier.
	ID ID

	// Label is the short human-readable name.
	Label string

	// Description documents what the action does.
	Description string

	// Scope is the presentation grouping.
	Scope Scope

	// Default is the factory default combo, e.g. "Meta+N".
	Default string

	// RequiresRestart marks actions whose rebinding only takes effect
	// after an application restart. Informational only; nothing here
	// enforces restarts.
	RequiresRestart bool

	// Visible controls whether the action appears in the shortcut
	// settings UI. Hidden actions still match and fire.
	Visible bool
}

// DefaultChord returns the canonical form of the definition's default
// combo. Defaults are validated at init, so this never fails for a
// registry definition.
func (d Definition) DefaultChord() key.Chord {
	return defaultChords[d.ID]
}
