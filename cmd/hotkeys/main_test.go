package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lumenchat/hotkeys/internal/action"
	"github.com/lumenchat/hotkeys/internal/config"
)

func TestPrintRegistryListsEveryScope(t *testing.T) {
	store := config.NewMemoryStore()
	defer store.Close()

	var buf bytes.Buffer
	printRegistry(&buf, store)
	out := buf.String()

	for _, scope := range action.Scopes {
		if !strings.Contains(out, string(scope)) {
			t.Errorf("output missing scope header %q", scope)
		}
	}
	for _, def := range action.All() {
		if !strings.Contains(out, string(def.ID)) {
			t.Errorf("output missing action %q", def.ID)
		}
	}
	if strings.Contains(out, "(custom)") || strings.Contains(out, "(disabled)") || strings.Contains(out, "(conflict)") {
		t.Errorf("unexpected annotation on factory defaults:\n%s", out)
	}
}

func TestPrintRegistryAnnotations(t *testing.T) {
	store := config.NewMemoryStore()
	defer store.Close()

	// search-chats onto new-chat's combo: both conflict, search-chats custom.
	if err := store.SetOverride(action.SearchChats, config.Override{Combo: "Meta+N"}); err != nil {
		t.Fatal(err)
	}
	if err := store.SetOverride(action.ZoomIn, config.Override{Combo: "Meta+=", Disabled: true}); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	printRegistry(&buf, store)

	for _, line := range strings.Split(buf.String(), "\n") {
		switch {
		case strings.Contains(line, string(action.SearchChats)):
			if !strings.Contains(line, "(custom)") || !strings.Contains(line, "(conflict)") {
				t.Errorf("search-chats line = %q, want custom and conflict notes", line)
			}
		case strings.Contains(line, string(action.NewChat)):
			if !strings.Contains(line, "(conflict)") {
				t.Errorf("new-chat line = %q, want conflict note", line)
			}
		case strings.Contains(line, string(action.ZoomIn)):
			if !strings.Contains(line, "(disabled)") {
				t.Errorf("zoom-in line = %q, want disabled note", line)
			}
		}
	}
}
