package mimicry

import (
	"fmt"
	"runtime/debug"

	semver "github.com/blang/semver/v4"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the mimicry version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString())
		},
	}
	rootCmd.AddCommand(cmd)
	rootCmd.Version = versionString()
}

func versionString() string {
	// parse semantic version (strip leading v)
	ver, err := semver.ParseTolerant(version)
	if err != nil {
		ver = semver.MustParse("0.0.0")
	}
	s := "v" + ver.String()
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, kv := range info.Settings {
			if kv.Key == "vcs.revision" && len(kv.Value) >= 7 {
				s += " (" + kv.Value[:7] + ")"
			}
		}
	}
	return s
}
