// internal/cli/show.go
package esobench

import (
	"github.com/spf13/cobra"
)

// showCmd implements 'show', which prints the leaderboard table.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the leaderboard table",
	Long:  `The 'show' command prints the ranked leaderboard as a styled table with per-model heatmap blocks. The table is fitted to the terminal width when stdout is a terminal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		compact, _ := cmd.Flags().GetBool("compact")
		width, _ := cmd.Flags().GetInt("width")
		return runShow(cmd.OutOrStdout(), getConfig(), showOptions{Compact: compact, Width: width})
	},
}

func init() {
	showCmd.Flags().Bool("compact", false, "one heatmap block per task instead of the full grid")
	showCmd.Flags().Int("width", 0, "table width (default terminal width)")
	rootCmd.AddCommand(showCmd)
}
