package mimicry

import (
	"fmt"
	"os"
	"strings"

	"github.com/mimicry/mimicry/internal/config"
	"github.com/mimicry/mimicry/internal/homoglyph"
	"github.com/spf13/cobra"
)

var (
	cfgPreset      string
	cfgOutput      string
	cfgWithClasses bool
	cfgForce       bool
)

func init() {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}
	rootCmd.AddCommand(cfgCmd)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .mimicry.yml for a preset",
		Args:  cobra.NoArgs,
		RunE:  runConfigInit,
	}
	cfgCmd.AddCommand(initCmd)
	initCmd.Flags().StringVar(&cfgPreset, "preset", config.DefaultPreset, "preset: "+strings.Join(config.PresetNames(), " | "))
	initCmd.Flags().StringVar(&cfgOutput, "output", ".mimicry.yml", "output file path")
	initCmd.Flags().BoolVar(&cfgWithClasses, "with-classes", false, "write the built-in homoglyph classes so they can be edited")
	initCmd.Flags().BoolVar(&cfgForce, "force", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration as YAML",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	}
	cfgCmd.AddCommand(showCmd)
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	p, ok := config.LookupPreset(cfgPreset)
	if !ok {
		return fmt.Errorf("unknown preset %q (expected %s)", cfgPreset, strings.Join(config.PresetNames(), ", "))
	}
	marker := "U+200B"
	fc := config.FileConfig{
		Preset:                  &p.Name,
		SubstitutionProbability: &p.SubstitutionProbability,
		StealthEnabled:          &p.StealthEnabled,
		StealthProbability:      &p.StealthProbability,
		StealthMarker:           &marker,
	}
	if cfgWithClasses {
		fc.Classes = homoglyph.DefaultClasses()
	}

	b, err := config.Marshal(fc)
	if err != nil {
		return err
	}
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !cfgForce {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(cfgOutput, flags, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Wrote", cfgOutput)
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd, newLogger(cmd.ErrOrStderr(), flagVerbose))
	if err != nil {
		return err
	}
	marker := fmt.Sprintf("%U", s.Marker)
	fc := config.FileConfig{
		Preset:                  &s.Preset,
		Classes:                 s.Classes,
		SubstitutionProbability: &s.SubstitutionProbability,
		StealthEnabled:          &s.StealthEnabled,
		StealthProbability:      &s.StealthProbability,
		StealthMarker:           &marker,
	}
	if s.Seeded {
		fc.Seed = &s.Seed
	}
	b, err := config.Marshal(fc)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(b)
	return err
}
