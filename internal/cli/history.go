package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clauseguard/clauseguard/internal/audit"
)

var historyLimit int

// historyCmd shows recent analyses from the local audit log.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent analyses from the local audit log",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := audit.Open("")
		defer logger.Close()

		entries, err := logger.Recent(historyLimit)
		if err != nil {
			return fmt.Errorf("read audit log: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("No analyses recorded yet.")
			return nil
		}

		for _, e := range entries {
			fmt.Printf("%s  %s\n    %s\n", e.CreatedAt.Format("2006-01-02 15:04"), e.Path, e.Summary)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum entries to show")
}
