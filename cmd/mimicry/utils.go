package mimicry

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mimicry/mimicry/internal/config"
	"github.com/mimicry/mimicry/internal/homoglyph"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// changed returns &v when the named flag was set on the command line.
func changed[T any](cmd *cobra.Command, name string, v T) *T {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}

// cliLayer maps explicitly set flags into a config layer so that unset flags
// fall through to files and presets.
func cliLayer(cmd *cobra.Command) config.FileConfig {
	fc := config.FileConfig{
		Preset:                  changed(cmd, "preset", flagPreset),
		SubstitutionProbability: changed(cmd, "probability", flagProbability),
		StealthEnabled:          changed(cmd, "stealth", flagStealth),
		StealthProbability:      changed(cmd, "stealth-probability", flagStealthProbability),
		StealthMarker:           changed(cmd, "marker", flagMarker),
		Seed:                    changed(cmd, "seed", flagSeed),
	}
	if cmd.Flags().Changed("classes") {
		fc.Classes = homoglyph.ParseClasses(flagClasses)
		if fc.Classes == nil {
			fc.Classes = []string{}
		}
	}
	return fc
}

// loadSettings resolves settings with precedence CLI > --config or local
// file > global file.
func loadSettings(cmd *cobra.Command, log *slog.Logger) (config.Settings, error) {
	layers := []config.FileConfig{cliLayer(cmd)}

	if flagConfig != "" {
		c, err := config.LoadFile(flagConfig)
		if err != nil {
			return config.Settings{}, fmt.Errorf("load config: %w", err)
		}
		log.Debug("config loaded", "path", flagConfig)
		layers = append(layers, c)
	} else {
		wd, _ := os.Getwd()
		c, path, err := config.LoadLocal(wd)
		switch {
		case err == nil:
			log.Debug("config loaded", "path", path)
			layers = append(layers, c)
		case !errors.Is(err, config.ErrNotFound):
			return config.Settings{}, fmt.Errorf("load config: %w", err)
		}
	}

	g, path, err := config.LoadGlobal()
	switch {
	case err == nil:
		log.Debug("config loaded", "path", path)
		layers = append(layers, g)
	case !errors.Is(err, config.ErrNotFound):
		return config.Settings{}, fmt.Errorf("load global config: %w", err)
	}

	return config.Resolve(layers...)
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// colorEnabled reports whether styled output should be written to w.
func colorEnabled(w io.Writer) bool {
	if flagNoColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isTerminal(w)
}
