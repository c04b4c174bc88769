// internal/cli/render.go
package esobench

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// renderCmd implements 'render', which writes the standalone HTML
// leaderboard page.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write the HTML leaderboard report",
	Long:  `The 'render' command ranks the results file and writes a standalone HTML page with the leaderboard table, mini heatmaps and charts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		return runRender(cmd.OutOrStdout(), getConfig(), title)
	},
}

func init() {
	renderCmd.Flags().StringP("output", "o", "", "output file (default reports/leaderboard.html)")
	renderCmd.Flags().String("title", "", "page title")
	_ = viper.BindPFlag("output", renderCmd.Flags().Lookup("output"))
	rootCmd.AddCommand(renderCmd)
}
