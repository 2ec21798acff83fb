package mimicry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mimicry/mimicry/internal/audit"
	"github.com/mimicry/mimicry/internal/engine"
	"github.com/mimicry/mimicry/internal/report"
	"github.com/spf13/cobra"
)

var (
	flagOutput string
	flagStats  bool
	flagJSON   bool
	flagAudit  bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "transform [file]",
		Short: "Transform FILE or stdin and write the result",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTransform,
		Example: `
# classic: substitute 75% of eligible characters
mimicry < essay.txt > essay.out.txt

# stealth preset with a fixed seed and a summary on stderr
mimicry transform --preset stealth --seed 7 --stats essay.txt -o essay.out.txt
`,
	}
	addTransformFlags(cmd)
	rootCmd.AddCommand(cmd)
}

func addTransformFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "write output to this file instead of stdout")
	cmd.Flags().BoolVar(&flagStats, "stats", false, "print a transform summary to stderr")
	cmd.Flags().BoolVar(&flagJSON, "json", false, "print the summary as JSON (implies --stats)")
	cmd.Flags().BoolVar(&flagAudit, "audit", false, "append a run record (seed, settings, fingerprints) to the audit file")
}

func runTransform(cmd *cobra.Command, args []string) error {
	stderr := cmd.ErrOrStderr()
	log := newLogger(stderr, flagVerbose)

	settings, err := loadSettings(cmd, log)
	if err != nil {
		return err
	}
	ecfg, err := settings.EngineConfig()
	if err != nil {
		return fmt.Errorf("homoglyph classes: %w", err)
	}
	ecfg.Logger = log
	eng, err := engine.New(ecfg)
	if err != nil {
		return err
	}

	var (
		src    io.Reader = cmd.InOrStdin()
		source           = "stdin"
	)
	if len(args) == 1 && args[0] != "-" {
		if flagOutput != "" && samePath(args[0], flagOutput) {
			return fmt.Errorf("output %s would overwrite the input", flagOutput)
		}
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		src, source = f, args[0]
	} else if isTerminal(src) {
		_, _ = fmt.Fprintln(stderr, "reading from terminal; end input with Ctrl-D")
	}

	var (
		dst io.Writer = cmd.OutOrStdout()
		out *os.File
	)
	if flagOutput != "" {
		out, err = os.Create(flagOutput)
		if err != nil {
			return err
		}
		dst = out
	}

	st, err := eng.Process(src, dst)
	if out != nil {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	if err != nil {
		return fmt.Errorf("transform %s: %w", source, err)
	}
	if flagAudit {
		a := audit.NewAuditLog(flagAuditFile)
		if err := a.LogRun(audit.CreateRunRecord(source, flagOutput, settings, st)); err != nil {
			_, _ = fmt.Fprintln(stderr, "audit warning:", err)
		} else {
			log.Debug("run recorded", "path", a.Path())
		}
	}

	if flagStats || flagJSON {
		opts := report.PrintOptions{NoColor: !colorEnabled(stderr), Source: source, Preset: settings.Preset}
		if flagJSON {
			return report.WriteJSON(stderr, st, opts)
		}
		return report.PrintStats(stderr, st, opts)
	}
	return nil
}

func samePath(a, b string) bool {
	if fa, err := os.Stat(a); err == nil {
		if fb, err := os.Stat(b); err == nil {
			return os.SameFile(fa, fb)
		}
	}
	aa, _ := filepath.Abs(a)
	bb, _ := filepath.Abs(b)
	return aa == bb
}
