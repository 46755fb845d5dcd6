package codec

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// JSON is the JSON settings codec. It writes with partial updates so keys
// owned by other application subsystems survive shortcut writes.
type JSON struct{}

// NewJSON creates a JSON codec.
func NewJSON() *JSON {
	return &JSON{}
}

// Name identifies the codec.
func (*JSON) Name() string { return "json" }

// Ext returns the file extension.
func (*JSON) Ext() string { return ".json" }

// Decode parses a JSON settings document. Keys whose value is not an
// object with a string "combo" are skipped; they belong to someone else or
// are corrupt, and either way the resolver falls back to defaults.
func (*JSON) Decode(data []byte) (Document, error) {
	if len(data) == 0 {
		return Document{}, nil
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parsing settings: invalid JSON")
	}

	doc := make(Document)
	gjson.ParseBytes(data).ForEach(func(key, value gjson.Result) bool {
		if !value.IsObject() {
			return true
		}
		combo := value.Get("combo")
		if combo.Type != gjson.String {
			return true
		}
		doc[key.String()] = Entry{
			Combo:    combo.String(),
			Disabled: value.Get("disabled").Bool(),
		}
		return true
	})
	return doc, nil
}

// Encode applies the document to the previous file content key by key,
// deleting entries the document no longer carries and leaving foreign keys
// untouched.
func (*JSON) Encode(prev []byte, doc Document) ([]byte, error) {
	out := prev
	if len(out) == 0 || !gjson.ValidBytes(out) {
		out = []byte("{}")
	}

	// Remove stale shortcut entries: anything that decodes as an entry
	// but is absent from the new document.
	var stale []string
	gjson.ParseBytes(out).ForEach(func(key, value gjson.Result) bool {
		if !value.IsObject() || value.Get("combo").Type != gjson.String {
			return true
		}
		if _, keep := doc[key.String()]; !keep {
			stale = append(stale, key.String())
		}
		return true
	})

	var err error
	for _, key := range stale {
		out, err = sjson.DeleteBytes(out, key)
		if err != nil {
			return nil, fmt.Errorf("deleting entry %q: %w", key, err)
		}
	}

	for id, entry := range doc {
		out, err = sjson.SetBytes(out, id+".combo", entry.Combo)
		if err != nil {
			return nil, fmt.Errorf("writing entry %q: %w", id, err)
		}
		out, err = sjson.SetBytes(out, id+".disabled", entry.Disabled)
		if err != nil {
			return nil, fmt.Errorf("writing entry %q: %w", id, err)
		}
	}
	return out, nil
}
