package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/jask/pwgen/internal/keymap"
)

// helpKeys adapts the registry to help.KeyMap.
type helpKeys struct {
	reg *keymap.Registry
}

func (h helpKeys) b(action string) key.Binding { return h.reg.KeyBinding(action) }

func (h helpKeys) ShortHelp() []key.Binding {
	return []key.Binding{
		h.b(keymap.ActionLengthDown),
		h.b(keymap.ActionLengthUp),
		h.b(keymap.ActionToggleDigits),
		h.b(keymap.ActionToggleSymbols),
		h.b(keymap.ActionCopy),
		h.b(keymap.ActionHelp),
		h.b(keymap.ActionQuit),
	}
}

func (h helpKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			h.b(keymap.ActionLengthDown),
			h.b(keymap.ActionLengthUp),
			h.b(keymap.ActionLengthDown10),
			h.b(keymap.ActionLengthUp10),
			h.b(keymap.ActionLengthMin),
			h.b(keymap.ActionLengthMax),
		},
		{
			h.b(keymap.ActionToggleDigits),
			h.b(keymap.ActionToggleSymbols),
			h.b(keymap.ActionCopy),
			h.b(keymap.ActionRegenerate),
		},
		{
			h.b(keymap.ActionFocusNext),
			h.b(keymap.ActionFocusPrev),
			h.b(keymap.ActionActivate),
			h.b(keymap.ActionHelp),
			h.b(keymap.ActionQuit),
		},
	}
}
