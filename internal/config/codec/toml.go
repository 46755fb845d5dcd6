package codec

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// TOML is the TOML settings codec.
type TOML struct{}

// NewTOML creates a TOML codec.
func NewTOML() *TOML {
	return &TOML{}
}

// Name identifies the codec.
func (*TOML) Name() string { return "toml" }

// Ext returns the file extension.
func (*TOML) Ext() string { return ".toml" }

// Decode parses a TOML settings file. Tables that do not decode as entries
// are skipped rather than failing the file.
func (*TOML) Decode(data []byte) (Document, error) {
	if len(data) == 0 {
		return Document{}, nil
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}

	doc := make(Document, len(raw))
	for id, val := range raw {
		table, ok := val.(map[string]any)
		if !ok {
			continue
		}
		entry := Entry{}
		if combo, ok := table["combo"].(string); ok {
			entry.Combo = combo
		} else {
			continue
		}
		if disabled, ok := table["disabled"].(bool); ok {
			entry.Disabled = disabled
		}
		doc[id] = entry
	}
	return doc, nil
}

// Encode serializes the document as TOML. The previous file content is not
// consulted: the TOML file is owned entirely by the shortcut system.
func (*TOML) Encode(_ []byte, doc Document) ([]byte, error) {
	out, err := toml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding settings: %w", err)
	}
	return out, nil
}
