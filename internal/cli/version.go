package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asteroid-belt/nexus/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintln(out, version.Full())
		if channel := version.Channel(); channel != "" {
			_, _ = fmt.Fprintf(out, "Channel: %s\n", channel)
		}
	},
}
