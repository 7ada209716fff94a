// Package cli provides the command-line interface for Nexus.
package cli

import (
	"context"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/asteroid-belt/nexus/pkg/version"
)

// Persistent flags shared by every command.
var (
	dbPathFlag string
	debugFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "nexus",
	Short: "Local game library",
	Long: `Local game library

Nexus scans your game directories into a single library you can
browse, search, favorite and hide games in.

Run without arguments to launch the interactive TUI.

Library directories are read from config.yaml in the data directory
(set NEXUS_HOME to move it).`,
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPathFlag, "db", "", "database file (overrides NEXUS_DB_PATH)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the CLI with fang enhancements.
func Execute(ctx context.Context) error {
	return fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(version.Short()),
		fang.WithCommit(version.Commit),
	)
}
