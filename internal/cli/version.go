package cli

import (
	"cmp"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build version and date",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "authtui %s (built %s)\n",
			cmp.Or(version, "N/A"), cmp.Or(buildDate, "N/A"))
	},
}
