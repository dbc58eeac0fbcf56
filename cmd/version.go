package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/abhisek/fractiz/internal/catalog"
)

// version is set via -ldflags at build time.
var version = ""

// buildVersion prefers the ldflags value, then the module version recorded
// by `go install`, then "(devel)".
func buildVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the fractiz version and the built-in catalog size",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "fractiz %s\n", buildVersion())
		fmt.Fprintf(out, "catalog: %d built-in questions\n", catalog.Default().Len())
	},
}
