package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/lumenchat/hotkeys/internal/action"
	"github.com/lumenchat/hotkeys/internal/config/notify"
)

// Store errors.
var (
	ErrUnknownAction = errors.New("unknown action")
)

// Store is the settings-store surface the engine consumes: read a snapshot
// of the override map, write through, and emit a change notification on
// every write. The authoritative copy lives behind the store; the engine
// holds no durable state.
type Store interface {
	// Overrides returns a snapshot of the current override map. The
	// snapshot is the caller's to keep; later writes do not mutate it.
	Overrides() (OverrideMap, error)

	// SetOverride sets one action's override.
	SetOverride(id action.ID, ov Override) error

	// ClearOverride removes one action's override, reverting it to the
	// registry default, enabled. Clearing an absent override is a no-op
	// that still notifies.
	ClearOverride(id action.ID) error

	// ResetAll replaces the map with the factory default overrides.
	ResetAll() error

	// Subscribe registers an observer for store changes.
	Subscribe(obs notify.Observer) *notify.Subscription
}

// MemoryStore is an in-process Store. It backs tests and acts as the
// reference implementation of the write/notify contract.
type MemoryStore struct {
	mu        sync.RWMutex
	overrides OverrideMap
	notifier  *notify.Notifier
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		overrides: make(OverrideMap),
		notifier:  notify.New(),
	}
}

// Overrides returns a snapshot of the override map.
func (s *MemoryStore) Overrides() (OverrideMap, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.overrides.Clone(), nil
}

// SetOverride sets one action's override and notifies.
func (s *MemoryStore) SetOverride(id action.ID, ov Override) error {
	if !action.Known(id) {
		return fmt.Errorf("%w: %q", ErrUnknownAction, id)
	}

	s.mu.Lock()
	s.overrides[id] = ov
	s.mu.Unlock()

	s.notifier.Notify(notify.Change{ID: id, Type: notify.ChangeSet, Source: "memory"})
	return nil
}

// ClearOverride removes one action's override and notifies.
func (s *MemoryStore) ClearOverride(id action.ID) error {
	if !action.Known(id) {
		return fmt.Errorf("%w: %q", ErrUnknownAction, id)
	}

	s.mu.Lock()
	delete(s.overrides, id)
	s.mu.Unlock()

	s.notifier.Notify(notify.Change{ID: id, Type: notify.ChangeClear, Source: "memory"})
	return nil
}

// ResetAll replaces the map with the factory defaults and notifies.
func (s *MemoryStore) ResetAll() error {
	s.mu.Lock()
	s.overrides = DefaultOverrides()
	s.mu.Unlock()

	s.notifier.Notify(notify.Change{Type: notify.ChangeReset, Source: "memory"})
	return nil
}

// Subscribe registers an observer for store changes.
func (s *MemoryStore) Subscribe(obs notify.Observer) *notify.Subscription {
	return s.notifier.Subscribe(obs)
}

// Close shuts down the store's notifier.
func (s *MemoryStore) Close() {
	s.notifier.Close()
}
