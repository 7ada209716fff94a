package cli

import (
	"github.com/spf13/cobra"

	"github.com/asteroid-belt/nexus/internal/tui"
	"github.com/asteroid-belt/nexus/internal/tui/views"
)

// runTUI executes the TUI when no subcommand is specified.
func runTUI(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer func() {
		_ = a.Close()
	}()

	return tui.Run(tui.Deps{
		Library:   a.library,
		Settings:  a.db.Settings(),
		Rescanner: views.RescanFunc(a.rescan),
		DBPath:    a.db.Path(),
	})
}
