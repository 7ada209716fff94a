package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan library directories for new games",
	Long: `Scan every directory listed under "libraries" in config.yaml and
add the games found to the library.

Hidden games and games already in the library are skipped.`,
	Args: cobra.NoArgs,
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer func() {
		_ = a.Close()
	}()

	out := cmd.OutOrStdout()
	if len(a.cfg.Libraries) == 0 {
		_, _ = fmt.Fprintln(out, "No library directories configured.")
		return nil
	}

	result, err := a.rescan()
	if err != nil {
		return fmt.Errorf("scan libraries: %w", err)
	}

	_, _ = fmt.Fprintf(out, "Added:   %d\n", result.Added)
	_, _ = fmt.Fprintf(out, "Known:   %d\n", result.Known)
	_, _ = fmt.Fprintf(out, "Hidden:  %d\n", result.Ignored)
	if result.Failed > 0 {
		_, _ = fmt.Fprintf(out, "Failed:  %d (see log)\n", result.Failed)
	}
	return nil
}
