package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/pwgen/internal/generator"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PWGEN_CONFIG", "")
	t.Setenv("TMUX", "")
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, generator.DefaultSettings(), cfg.Settings())
	require.Equal(t, "auto", cfg.Clipboard.Mode)
	require.False(t, cfg.Clipboard.OSC52Tmux)
	require.Equal(t, 2*time.Second, cfg.Clipboard.Notice)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, filepath.Join(home, ".local", "state", "pwgen", "pwgen.log"), cfg.Log.Path)
	require.Equal(t, filepath.Join(home, ".config", "pwgen"), cfg.Dir)
	require.Equal(t, filepath.Join(home, ".config", "pwgen", "keybindings.toml"), cfg.KeybindingsPath())
}

func TestLoadFromFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "pwgen.toml")
	content := `
[generator]
length = 24
digits = true
symbols = true

[clipboard]
mode = "osc52"
osc52_tmux = true
notice = "500ms"

[log]
level = "debug"
path = ""
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, generator.Settings{Length: 24, IncludeDigits: true, IncludeSymbols: true}, cfg.Settings())
	require.Equal(t, "osc52", cfg.Clipboard.Mode)
	require.True(t, cfg.Clipboard.OSC52Tmux)
	require.Equal(t, 500*time.Millisecond, cfg.Clipboard.Notice)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Empty(t, cfg.Log.Path)
	require.Equal(t, dir, cfg.Dir)
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("PWGEN_GENERATOR_LENGTH", "42")
	t.Setenv("PWGEN_GENERATOR_DIGITS", "true")
	t.Setenv("PWGEN_CLIPBOARD_MODE", "system")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 42, cfg.Generator.Length)
	require.True(t, cfg.Generator.Digits)
	require.False(t, cfg.Generator.Symbols)
	require.Equal(t, "system", cfg.Clipboard.Mode)
}

func TestLoadMissingExplicitFileUsesDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	require.Equal(t, generator.DefaultLength, cfg.Generator.Length)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "length too short", env: map[string]string{"PWGEN_GENERATOR_LENGTH": "5"}},
		{name: "length too long", env: map[string]string{"PWGEN_GENERATOR_LENGTH": "101"}},
		{name: "clipboard mode", env: map[string]string{"PWGEN_CLIPBOARD_MODE": "fax"}},
		{name: "log level", env: map[string]string{"PWGEN_LOG_LEVEL": "chatty"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			require.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[generator\nlength = 8"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
}
