package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/pwgen/internal/clipboard"
	"github.com/jask/pwgen/internal/config"
	"github.com/jask/pwgen/internal/generator"
	"github.com/jask/pwgen/internal/keymap"
	"github.com/jask/pwgen/internal/logging"
	"github.com/jask/pwgen/internal/tui"
	"github.com/jask/pwgen/internal/widget"
)

type rootFlags struct {
	config  string
	length  int
	digits  bool
	symbols bool
}

func newRootCmd() *cobra.Command {
	var f rootFlags
	cmd := &cobra.Command{
		Use:           "pwgen",
		Short:         "Interactive password generator",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			return runTUI(cmd, cfg)
		},
	}
	cmd.PersistentFlags().StringVar(&f.config, "config", "", "path to config.toml (default ~/.config/pwgen/config.toml)")
	addSettingsFlags(cmd, &f)
	cmd.AddCommand(newPrintCmd(&f))
	return cmd
}

func addSettingsFlags(cmd *cobra.Command, f *rootFlags) {
	cmd.Flags().IntVarP(&f.length, "length", "n", generator.DefaultLength, "password length (6-100)")
	cmd.Flags().BoolVarP(&f.digits, "digits", "d", false, "include digits")
	cmd.Flags().BoolVarP(&f.symbols, "symbols", "s", false, "include symbols")
}

// loadConfig reads config, applies flag overrides and validates the result,
// so an out-of-range flag fails the same way a bad config file does.
func loadConfig(cmd *cobra.Command, f rootFlags) (config.Config, error) {
	cfg, err := config.Load(f.config)
	if err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}
	applyFlags(cmd, f, &cfg)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}

// applyFlags lets explicitly set flags win over config and env.
func applyFlags(cmd *cobra.Command, f rootFlags, cfg *config.Config) {
	if cmd.Flags().Changed("length") {
		cfg.Generator.Length = f.length
	}
	if cmd.Flags().Changed("digits") {
		cfg.Generator.Digits = f.digits
	}
	if cmd.Flags().Changed("symbols") {
		cfg.Generator.Symbols = f.symbols
	}
}

func runTUI(cmd *cobra.Command, cfg config.Config) error {
	logger, err := logging.New(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	bindings, err := keymap.LoadFile(cfg.KeybindingsPath(), keymap.DefaultBindings())
	if err != nil {
		return fmt.Errorf("keybindings: %w", err)
	}

	clip, err := clipboard.New(clipboard.Options{
		Mode:   cfg.Clipboard.Mode,
		Tmux:   cfg.Clipboard.OSC52Tmux,
		Screen: cfg.Clipboard.OSC52Screen,
	})
	if err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}

	w := widget.New(cfg.Settings(), generator.New(nil))
	app := tui.New(cmd.Context(), w, tui.Options{
		Clipboard: clip,
		Keys:      keymap.NewRegistry(bindings),
		Logger:    logger,
		Notice:    cfg.Clipboard.Notice,
		Theme:     tui.Theme{Accent: cfg.UI.Accent, Border: cfg.UI.Border},
	})

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", zap.Error(err))
		return err
	}
	return nil
}
