package keymap

const (
	ActionQuit          = "quit"
	ActionHelp          = "help"
	ActionFocusNext     = "focus-next"
	ActionFocusPrev     = "focus-prev"
	ActionActivate      = "activate"
	ActionLengthDown    = "length-down"
	ActionLengthUp      = "length-up"
	ActionLengthDown10  = "length-down-10"
	ActionLengthUp10    = "length-up-10"
	ActionLengthMin     = "length-min"
	ActionLengthMax     = "length-max"
	ActionToggleDigits  = "toggle-digits"
	ActionToggleSymbols = "toggle-symbols"
	ActionCopy          = "copy"
	ActionRegenerate    = "regenerate"
)

func DefaultBindings() []Binding {
	return []Binding{
		{Keys: []string{"left", "h"}, Action: ActionLengthDown, Description: "shorter"},
		{Keys: []string{"right", "l"}, Action: ActionLengthUp, Description: "longer"},
		{Keys: []string{"pgdown"}, Action: ActionLengthDown10, Description: "-10"},
		{Keys: []string{"pgup"}, Action: ActionLengthUp10, Description: "+10"},
		{Keys: []string{"home"}, Action: ActionLengthMin, Description: "min length"},
		{Keys: []string{"end"}, Action: ActionLengthMax, Description: "max length"},
		{Keys: []string{"d"}, Action: ActionToggleDigits, Description: "numbers"},
		{Keys: []string{"s"}, Action: ActionToggleSymbols, Description: "characters"},
		{Keys: []string{"c"}, Action: ActionCopy, Description: "copy"},
		{Keys: []string{"r"}, Action: ActionRegenerate, Description: "regenerate"},
		{Keys: []string{"tab"}, Action: ActionFocusNext, Description: "next control"},
		{Keys: []string{"shift+tab"}, Action: ActionFocusPrev, Description: "prev control"},
		{Keys: []string{"enter", "space"}, Action: ActionActivate, Description: "activate"},
		{Keys: []string{"?"}, Action: ActionHelp, Description: "help"},
		{Keys: []string{"q", "ctrl+c"}, Action: ActionQuit, Description: "quit"},
	}
}

// ByAction returns the first key list registered for each action.
func ByAction(bindings []Binding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if b.Action == "" || len(b.Keys) == 0 {
			continue
		}
		if _, exists := out[b.Action]; exists {
			continue
		}
		out[b.Action] = append([]string(nil), b.Keys...)
	}
	return out
}

// Apply replaces the keys of each binding whose action appears in actionKeys.
func Apply(bindings []Binding, actionKeys map[string][]string) []Binding {
	out := make([]Binding, 0, len(bindings))
	for _, b := range bindings {
		next := Binding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
