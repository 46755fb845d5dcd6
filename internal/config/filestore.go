package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/lumenchat/hotkeys/internal/action"
	"github.com/lumenchat/hotkeys/internal/config/codec"
	"github.com/lumenchat/hotkeys/internal/config/notify"
)

// FileStore is a settings-file-backed Store. Reads return the last loaded
// snapshot; writes re-encode through the codec and persist before
// notifying. Entries for unknown action IDs are ignored on read but
// preserved on write when the codec supports it.
type FileStore struct {
	mu        sync.RWMutex
	path      string
	codec     codec.Codec
	overrides OverrideMap
	loaded    bool

	notifier *notify.Notifier
	log      logrus.FieldLogger
}

// FileStoreOption configures a FileStore.
type FileStoreOption func(*FileStore)

// WithLogger sets the store's logger.
func WithLogger(log logrus.FieldLogger) FileStoreOption {
	return func(s *FileStore) {
		s.log = log
	}
}

// NewFileStore creates a store backed by the settings file at path,
// encoded with the given codec. The file is loaded lazily on first read.
func NewFileStore(path string, c codec.Codec, opts ...FileStoreOption) *FileStore {
	s := &FileStore{
		path:     path,
		codec:    c,
		notifier: notify.New(),
		log:      logrus.StandardLogger().WithField("component", "filestore"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the settings file path.
func (s *FileStore) Path() string {
	return s.path
}

// Overrides returns a snapshot of the override map, loading the file on
// first use.
func (s *FileStore) Overrides() (OverrideMap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		s.overrides = s.readFile()
		s.loaded = true
	}
	return s.overrides.Clone(), nil
}

// readFile loads and decodes the settings file. A missing file is an empty
// map; an unreadable one degrades to empty (factory defaults) with a log
// line rather than failing dispatch.
func (s *FileStore) readFile() OverrideMap {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.WithError(err).WithField("path", s.path).Warn("cannot read settings file")
		}
		return make(OverrideMap)
	}

	doc, err := s.codec.Decode(data)
	if err != nil {
		s.log.WithError(err).WithField("path", s.path).Warn("settings file corrupt, using defaults")
		return make(OverrideMap)
	}

	overrides := make(OverrideMap, len(doc))
	for id, entry := range doc {
		actionID := action.ID(id)
		if !action.Known(actionID) {
			continue
		}
		overrides[actionID] = Override{Combo: entry.Combo, Disabled: entry.Disabled}
	}
	return overrides
}

// SetOverride sets one action's override, persists, and notifies.
func (s *FileStore) SetOverride(id action.ID, ov Override) error {
	if !action.Known(id) {
		return fmt.Errorf("%w: %q", ErrUnknownAction, id)
	}

	s.mu.Lock()
	if !s.loaded {
		s.overrides = s.readFile()
		s.loaded = true
	}
	s.overrides[id] = ov
	err := s.persistLocked()
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.notifier.Notify(notify.Change{ID: id, Type: notify.ChangeSet, Source: "file"})
	return nil
}

// ClearOverride removes one action's override, persists, and notifies.
func (s *FileStore) ClearOverride(id action.ID) error {
	if !action.Known(id) {
		return fmt.Errorf("%w: %q", ErrUnknownAction, id)
	}

	s.mu.Lock()
	if !s.loaded {
		s.overrides = s.readFile()
		s.loaded = true
	}
	delete(s.overrides, id)
	err := s.persistLocked()
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.notifier.Notify(notify.Change{ID: id, Type: notify.ChangeClear, Source: "file"})
	return nil
}

// ResetAll replaces the map with factory defaults, persists, and notifies.
func (s *FileStore) ResetAll() error {
	s.mu.Lock()
	s.overrides = DefaultOverrides()
	s.loaded = true
	err := s.persistLocked()
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.notifier.Notify(notify.Change{Type: notify.ChangeReset, Source: "file"})
	return nil
}

// persistLocked encodes the current map through the codec and writes the
// file. Caller holds the write lock.
func (s *FileStore) persistLocked() error {
	doc := make(codec.Document, len(s.overrides))
	for id, ov := range s.overrides {
		doc[string(id)] = codec.Entry{Combo: ov.Combo, Disabled: ov.Disabled}
	}

	prev, err := os.ReadFile(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading settings file: %w", err)
	}

	out, err := s.codec.Encode(prev, doc)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating settings directory: %w", err)
		}
	}

	// Write-then-rename so a crash mid-write cannot corrupt the file.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, out, 0o644); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing settings file: %w", err)
	}
	return nil
}

// Reload re-reads the settings file and notifies subscribers. Used by the
// watcher when the file changes externally.
func (s *FileStore) Reload() {
	s.mu.Lock()
	s.overrides = s.readFile()
	s.loaded = true
	s.mu.Unlock()

	s.notifier.Notify(notify.Change{Type: notify.ChangeReload, Source: "file"})
}

// Subscribe registers an observer for store changes.
func (s *FileStore) Subscribe(obs notify.Observer) *notify.Subscription {
	return s.notifier.Subscribe(obs)
}

// Close shuts down the store's notifier.
func (s *FileStore) Close() {
	s.notifier.Close()
}
