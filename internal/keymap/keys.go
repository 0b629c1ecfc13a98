package keymap

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type Binding struct {
	Keys        []string
	Action      string
	Description string
}

type Registry struct {
	bindings []Binding
}

func NewRegistry(bindings []Binding) *Registry {
	return &Registry{bindings: slices.Clone(bindings)}
}

func (r *Registry) Bindings() []Binding {
	return slices.Clone(r.bindings)
}

func (r *Registry) IsAction(msg tea.KeyMsg, action string) bool {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if b.Action != action {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return true
			}
		}
	}
	return false
}

// Lookup returns the action bound to msg, or "" when nothing matches.
func (r *Registry) Lookup(msg tea.KeyMsg) string {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return b.Action
			}
		}
	}
	return ""
}

// KeyBinding converts an action into a bubbles binding for help rendering.
func (r *Registry) KeyBinding(action string) key.Binding {
	for _, b := range r.bindings {
		if b.Action != action || len(b.Keys) == 0 {
			continue
		}
		return key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(displayKey(b.Keys[0]), b.Description))
	}
	return key.NewBinding(key.WithDisabled())
}

func normalizeKey(k string) string {
	if k == " " {
		return "space"
	}
	return strings.ToLower(strings.TrimSpace(k))
}

func displayKey(k string) string {
	switch normalizeKey(k) {
	case "left":
		return "←"
	case "right":
		return "→"
	case "space":
		return "space"
	}
	return k
}
