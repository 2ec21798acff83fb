package mimicry

import (
	"fmt"
	"os"

	"github.com/mimicry/mimicry/internal/audit"
	"github.com/spf13/cobra"
)

var (
	flagConfig             string
	flagPreset             string
	flagClasses            string
	flagProbability        float64
	flagStealth            bool
	flagStealthProbability float64
	flagMarker             string
	flagSeed               int64
	flagNoColor            bool
	flagVerbose            bool
	flagAuditFile          string

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the mimicry CLI. Without a
// subcommand it runs transform.
var rootCmd = &cobra.Command{
	Use:   "mimicry [file]",
	Short: "Rewrite text with look-alike characters",
	Long: "mimicry replaces characters with visually identical homoglyphs from other scripts " +
		"and can append invisible zero-width markers, so the text reads the same but no longer " +
		"matches byte for byte. Input is read from FILE or stdin and written to stdout.",
	Args:          cobra.MaximumNArgs(1),
	RunE:          runTransform,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the mimicry CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "config file (default: ./.mimicry.yml, then $XDG_CONFIG_HOME/mimicry/config.yml)")
	pf.StringVar(&flagPreset, "preset", "", "preset: classic | stealth (default classic)")
	pf.StringVar(&flagClasses, "classes", "", "comma-separated homoglyph classes replacing the built-in list")
	pf.Float64VarP(&flagProbability, "probability", "p", 0.75, "fraction of eligible characters to substitute (0-1)")
	pf.BoolVar(&flagStealth, "stealth", false, "append invisible markers after non-space characters")
	pf.Float64Var(&flagStealthProbability, "stealth-probability", 0.3, "fraction of non-space characters that get a marker (0-1)")
	pf.StringVar(&flagMarker, "marker", "U+200B", "marker character, literal or U+XXXX")
	pf.Int64Var(&flagSeed, "seed", 0, "seed for reproducible output (default random)")
	pf.BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	pf.StringVar(&flagAuditFile, "audit-file", audit.DefaultPath, "run history file used by --audit and history")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging to stderr")

	addTransformFlags(rootCmd)
}
