package codec

import (
	"strings"
	"testing"
)

func TestTOMLDecodeSkipsMalformedEntries(t *testing.T) {
	data := []byte(`
["new-chat"]
combo = "Control+N"
disabled = false

["zoom-in"]
combo = 7

["stop-response"]
disabled = true
`)

	doc, err := NewTOML().Decode(data)
	if err != nil {
		t.Fatalf("Decode error = %v", err)
	}
	if len(doc) != 1 {
		t.Fatalf("decoded %d entries, want 1", len(doc))
	}
	if doc["new-chat"].Combo != "Control+N" {
		t.Errorf("new-chat combo = %q", doc["new-chat"].Combo)
	}
}

func TestTOMLDecodeUnreadableFile(t *testing.T) {
	if _, err := NewTOML().Decode([]byte("not = [toml")); err == nil {
		t.Error("Decode of broken TOML succeeded, want error")
	}
}

func TestTOMLRoundTrip(t *testing.T) {
	in := Document{
		"new-chat": {Combo: "Control+N"},
		"zoom-in":  {Combo: "Meta+=", Disabled: true},
	}

	data, err := NewTOML().Encode(nil, in)
	if err != nil {
		t.Fatalf("Encode error = %v", err)
	}
	out, err := NewTOML().Decode(data)
	if err != nil {
		t.Fatalf("Decode error = %v", err)
	}
	if len(out) != 2 || out["zoom-in"] != in["zoom-in"] || out["new-chat"] != in["new-chat"] {
		t.Errorf("round trip mismatch: %+v", out)
	}
}

func TestJSONDecodeSkipsForeignAndMalformedKeys(t *testing.T) {
	data := []byte(`{
		"theme": "dark",
		"window": {"width": 1200},
		"new-chat": {"combo": "Control+N", "disabled": true},
		"zoom-in": {"combo": 42}
	}`)

	doc, err := NewJSON().Decode(data)
	if err != nil {
		t.Fatalf("Decode error = %v", err)
	}
	if len(doc) != 1 {
		t.Fatalf("decoded %d entries, want 1", len(doc))
	}
	entry := doc["new-chat"]
	if entry.Combo != "Control+N" || !entry.Disabled {
		t.Errorf("new-chat entry = %+v", entry)
	}
}

func TestJSONDecodeInvalid(t *testing.T) {
	if _, err := NewJSON().Decode([]byte("{broken")); err == nil {
		t.Error("Decode of broken JSON succeeded, want error")
	}
}

func TestJSONEncodePreservesForeignKeys(t *testing.T) {
	prev := []byte(`{"theme":"dark","new-chat":{"combo":"Control+N","disabled":false}}`)
	doc := Document{"zoom-in": {Combo: "Meta+="}}

	out, err := NewJSON().Encode(prev, doc)
	if err != nil {
		t.Fatalf("Encode error = %v", err)
	}

	s := string(out)
	if !strings.Contains(s, `"theme":"dark"`) {
		t.Errorf("foreign key dropped: %s", s)
	}
	if strings.Contains(s, "Control+N") {
		t.Errorf("stale entry kept: %s", s)
	}

	back, err := NewJSON().Decode(out)
	if err != nil {
		t.Fatalf("Decode error = %v", err)
	}
	if len(back) != 1 || back["zoom-in"].Combo != "Meta+=" {
		t.Errorf("round trip = %+v", back)
	}
}

func TestJSONEncodeFromEmpty(t *testing.T) {
	out, err := NewJSON().Encode(nil, Document{"new-chat": {Combo: "Meta+N"}})
	if err != nil {
		t.Fatalf("Encode error = %v", err)
	}
	doc, err := NewJSON().Decode(out)
	if err != nil {
		t.Fatalf("Decode error = %v", err)
	}
	if doc["new-chat"].Combo != "Meta+N" {
		t.Errorf("decoded = %+v", doc)
	}
}
