// Package codec provides the persistence encodings for shortcut overrides.
//
// A settings file is a flat document keyed by action ID. Two codecs are
// provided: TOML for the application's own settings directory, and JSON
// with partial updates for a settings document shared with other app
// subsystems (foreign keys in the document survive shortcut writes).
package codec

// Entry is the persisted shape of one override.
type Entry struct {
	Combo    string `toml:"combo" json:"combo"`
	Disabled bool   `toml:"disabled" json:"disabled"`
}

// Document maps action IDs (as plain strings at this layer) to entries.
type Document map[string]Entry

// Codec encodes and decodes an override document.
type Codec interface {
	// Name identifies the codec, e.g. "toml".
	Name() string

	// Ext is the file extension including the dot.
	Ext() string

	// Decode parses a settings file. Individually malformed entries are
	// skipped; only a structurally unreadable file returns an error.
	Decode(data []byte) (Document, error)

	// Encode serializes a document. prev is the current file content,
	// which codecs may use to preserve unrelated keys; it may be nil.
	Encode(prev []byte, doc Document) ([]byte, error)
}
