package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/pwgen/internal/generator"
)

func newPrintCmd(root *rootFlags) *cobra.Command {
	var (
		f     rootFlags
		count int
	)
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print passwords without the interactive screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f.config = root.config
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			s := cfg.Settings()
			if count < 1 {
				return fmt.Errorf("count must be at least 1")
			}

			gen := generator.New(nil)
			out := cmd.OutOrStdout()
			for i := 0; i < count; i++ {
				if _, err := fmt.Fprintln(out, gen.Generate(s)); err != nil {
					return err
				}
			}
			return nil
		},
	}
	addSettingsFlags(cmd, &f)
	cmd.Flags().IntVarP(&count, "count", "c", 1, "number of passwords")
	return cmd
}
