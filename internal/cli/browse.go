// internal/cli/browse.go
package esobench

import (
	"github.com/spf13/cobra"

	"github.com/CadeHall0/EsoBench/internal/tui"
)

// startBrowser is replaced in tests.
var startBrowser = tui.Browse

// browseCmd implements 'browse', the interactive leaderboard.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the leaderboard interactively",
	Long:  `The 'browse' command opens a full-screen leaderboard. Press s or p to sort by score or solved, r to reverse, c for compact heatmaps and q to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		board, state, err := loadBoard(getConfig())
		if err != nil {
			return err
		}
		return startBrowser(board, state, "EsoBench Leaderboard")
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
