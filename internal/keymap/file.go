package keymap

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

const FileName = "keybindings.toml"

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrDuplicateKey  = errors.New("key bound to more than one action")
)

type fileFormat struct {
	Version  int                 `toml:"version"`
	Bindings map[string][]string `toml:"bindings"`
}

// LoadFile reads user overrides from path, seeding it with the defaults when it
// does not exist. Actions missing from the file are merged back in and the file
// is rewritten.
func LoadFile(path string, defaults []Binding) ([]Binding, error) {
	defaultKeys := ByAction(defaults)

	if err := ensureFile(path, render(defaultKeys)); err != nil {
		return nil, err
	}

	var f fileFormat
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	changed, err := validateAndMerge(&f, defaultKeys)
	if err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}
	if changed {
		if err := os.WriteFile(path, []byte(render(f.Bindings)), 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
	}
	return Apply(defaults, f.Bindings), nil
}

func ensureFile(path, contents string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func validateAndMerge(f *fileFormat, defaults map[string][]string) (bool, error) {
	if f.Version == 0 {
		f.Version = 1
	}
	if f.Version != 1 {
		return false, fmt.Errorf("unsupported version %d", f.Version)
	}

	merged := make(map[string][]string, len(defaults))
	for action, keys := range defaults {
		merged[action] = append([]string(nil), keys...)
	}
	for action, keys := range f.Bindings {
		a := strings.TrimSpace(action)
		if _, ok := defaults[a]; !ok {
			return false, fmt.Errorf("%w %q", ErrUnknownAction, a)
		}
		if len(keys) == 0 {
			return false, fmt.Errorf("action %q: keys are required", a)
		}
		out := make([]string, 0, len(keys))
		for _, k := range keys {
			k = normalizeKey(k)
			if k == "" {
				return false, fmt.Errorf("action %q: key cannot be empty", a)
			}
			out = append(out, k)
		}
		merged[a] = out
	}

	if err := checkDuplicateKeys(merged); err != nil {
		return false, err
	}

	changed := !equalActionMaps(f.Bindings, merged)
	f.Bindings = merged
	return changed, nil
}

func checkDuplicateKeys(bindings map[string][]string) error {
	actions := make([]string, 0, len(bindings))
	for action := range bindings {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	owner := map[string]string{}
	for _, action := range actions {
		for _, k := range bindings[action] {
			if prev, ok := owner[k]; ok && prev != action {
				return fmt.Errorf("%w: %q used by %q and %q", ErrDuplicateKey, k, prev, action)
			}
			owner[k] = action
		}
	}
	return nil
}

func equalActionMaps(a, b map[string][]string) bool {
	if len(a) != len(b) {
		return false
	}
	for action, keys := range a {
		other, ok := b[action]
		if !ok || len(other) != len(keys) {
			return false
		}
		for i := range keys {
			if keys[i] != other[i] {
				return false
			}
		}
	}
	return true
}

func render(bindings map[string][]string) string {
	actions := make([]string, 0, len(bindings))
	for action := range bindings {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	var b bytes.Buffer
	b.WriteString("version = 1\n\n[bindings]\n")
	for _, action := range actions {
		parts := make([]string, 0, len(bindings[action]))
		for _, k := range bindings[action] {
			parts = append(parts, fmt.Sprintf("%q", k))
		}
		fmt.Fprintf(&b, "%s = [%s]\n", action, strings.Join(parts, ", "))
	}
	return b.String()
}
