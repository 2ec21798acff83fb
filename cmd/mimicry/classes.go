package mimicry

import (
	"fmt"

	"github.com/mimicry/mimicry/internal/report"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "classes",
		Short: "List the active homoglyph classes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := newLogger(cmd.ErrOrStderr(), flagVerbose)
			settings, err := loadSettings(cmd, log)
			if err != nil {
				return err
			}
			ecfg, err := settings.EngineConfig()
			if err != nil {
				return fmt.Errorf("homoglyph classes: %w", err)
			}
			out := cmd.OutOrStdout()
			return report.PrintClasses(out, ecfg.Table, report.PrintOptions{NoColor: !colorEnabled(out)})
		},
	}
	rootCmd.AddCommand(cmd)
}
