package keymap

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestLoadFileSeedsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	bindings, err := LoadFile(path, DefaultBindings())
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(bindings) != len(DefaultBindings()) {
		t.Fatalf("bindings = %d, want %d", len(bindings), len(DefaultBindings()))
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"[bindings]", `copy = ["c"]`, `toggle-digits = ["d"]`} {
		if !strings.Contains(string(raw), want) {
			t.Fatalf("expected %q in seeded file:\n%s", want, raw)
		}
	}
}

func TestLoadFileMergesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("version = 1\n\n[bindings]\ncopy = [\"Y\", \"ctrl+y\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	bindings, err := LoadFile(path, DefaultBindings())
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	reg := NewRegistry(bindings)
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}}, ActionCopy) {
		t.Fatalf("expected y to copy")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, ActionQuit) {
		t.Fatalf("expected default quit binding to survive merge")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), "quit = ") {
		t.Fatalf("expected missing actions written back:\n%s", raw)
	}
	if !strings.Contains(string(raw), `copy = ["y", "ctrl+y"]`) {
		t.Fatalf("expected normalized override:\n%s", raw)
	}
}

func TestLoadFileRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		is      error
	}{
		{name: "unknown action", content: "[bindings]\nlaunch = [\"x\"]\n", is: ErrUnknownAction},
		{name: "empty keys", content: "[bindings]\ncopy = []\n"},
		{name: "blank key", content: "[bindings]\ncopy = [\"  \"]\n"},
		{name: "bad version", content: "version = 7\n"},
		{name: "bad toml", content: "[bindings\n"},
		{name: "key shared with default", content: "[bindings]\ncopy = [\"d\"]\n", is: ErrDuplicateKey},
		{name: "key shared between overrides", content: "[bindings]\ncopy = [\"y\"]\nregenerate = [\"Y\"]\n", is: ErrDuplicateKey},
		{name: "space spelled two ways", content: "[bindings]\ncopy = [\" \"]\n", is: ErrDuplicateKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := LoadFile(path, DefaultBindings())
			if err == nil {
				t.Fatalf("expected error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Fatalf("error = %v, want %v", err, tt.is)
			}
		})
	}
}

func TestLoadFileAllowsSwappedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := "[bindings]\ntoggle-digits = [\"s\"]\ntoggle-symbols = [\"d\"]\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	bindings, err := LoadFile(path, DefaultBindings())
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	reg := NewRegistry(bindings)
	if got := reg.Lookup(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}}); got != ActionToggleDigits {
		t.Fatalf("s = %q, want %q", got, ActionToggleDigits)
	}
}

func TestDefaultBindingsHaveUniqueKeys(t *testing.T) {
	if err := checkDuplicateKeys(ByAction(DefaultBindings())); err != nil {
		t.Fatalf("default bindings conflict: %v", err)
	}
}
