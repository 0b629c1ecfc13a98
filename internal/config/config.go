package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jask/pwgen/internal/clipboard"
	"github.com/jask/pwgen/internal/generator"
)

var ErrInvalid = errors.New("invalid config")

// Config holds application configuration.
type Config struct {
	Generator GeneratorConfig
	Clipboard ClipboardConfig
	Log       LogConfig
	UI        UIConfig

	// Dir is the directory holding config.toml and keybindings.toml.
	Dir string `mapstructure:"-"`
}

// GeneratorConfig holds the settings the widget starts with.
type GeneratorConfig struct {
	Length  int
	Digits  bool
	Symbols bool
}

type ClipboardConfig struct {
	Mode        string
	OSC52Tmux   bool `mapstructure:"osc52_tmux"`
	OSC52Screen bool `mapstructure:"osc52_screen"`
	Notice      time.Duration
}

type LogConfig struct {
	Path  string
	Level string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Accent string
	Border string
}

func (c Config) Settings() generator.Settings {
	return generator.Settings{
		Length:         c.Generator.Length,
		IncludeDigits:  c.Generator.Digits,
		IncludeSymbols: c.Generator.Symbols,
	}
}

// Load reads configuration from file and env. Env var overrides use prefix PWGEN_.
// path, when non-empty, takes precedence over PWGEN_CONFIG.
func Load(path string) (Config, error) {
	v := viper.New()
	home := os.Getenv("HOME")

	v.SetDefault("generator.length", generator.DefaultLength)
	v.SetDefault("generator.digits", false)
	v.SetDefault("generator.symbols", false)
	v.SetDefault("clipboard.mode", clipboard.ModeAuto)
	v.SetDefault("clipboard.osc52_tmux", os.Getenv("TMUX") != "")
	v.SetDefault("clipboard.osc52_screen", false)
	v.SetDefault("clipboard.notice", 2*time.Second)
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "pwgen", "pwgen.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.accent", "#89b4fa")
	v.SetDefault("ui.border", "#585b70")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("PWGEN_CONFIG")
	}
	dir := filepath.Join(home, ".config", "pwgen")
	if path != "" {
		v.SetConfigFile(path)
		dir = filepath.Dir(path)
	} else {
		v.AddConfigPath(dir)
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PWGEN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Dir = dir
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects values the widget cannot start with.
func (c Config) Validate() error {
	if c.Generator.Length < generator.MinLength || c.Generator.Length > generator.MaxLength {
		return fmt.Errorf("%w: generator.length %d outside [%d,%d]", ErrInvalid, c.Generator.Length, generator.MinLength, generator.MaxLength)
	}
	switch strings.ToLower(strings.TrimSpace(c.Clipboard.Mode)) {
	case clipboard.ModeAuto, clipboard.ModeSystem, clipboard.ModeOSC52:
	default:
		return fmt.Errorf("%w: clipboard.mode %q", ErrInvalid, c.Clipboard.Mode)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	if c.Clipboard.Notice < 0 {
		return fmt.Errorf("%w: clipboard.notice must not be negative", ErrInvalid)
	}
	return nil
}

func (c Config) KeybindingsPath() string {
	return filepath.Join(c.Dir, "keybindings.toml")
}
