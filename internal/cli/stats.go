package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show library statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer func() {
		_ = a.Close()
	}()

	stats, err := a.db.GetStats()
	if err != nil {
		return fmt.Errorf("get stats: %w", err)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Database:   %s\n", a.db.Path())
	_, _ = fmt.Fprintf(out, "Games:      %d\n", stats.TotalGames)
	_, _ = fmt.Fprintf(out, "Favorites:  %d\n", stats.FavoriteGames)
	_, _ = fmt.Fprintf(out, "Hidden:     %d\n", stats.IgnoredGames)
	if stats.SizeBytes > 0 {
		_, _ = fmt.Fprintf(out, "Size:       %.2f KB\n", float64(stats.SizeBytes)/1024)
	}
	return nil
}
