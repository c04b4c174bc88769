// internal/cli/config.go
package esobench

import (
	"io"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/CadeHall0/EsoBench/internal/appconfig"
)

// configCmd implements 'config', which shows the merged configuration so
// file values and flag overrides can be checked.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the config file is loaded properly and overridden by flags accordingly. Use --raw to dump the decoded struct.`,
	Run: func(cmd *cobra.Command, args []string) {
		raw, _ := cmd.Flags().GetBool("raw")
		runShowConfig(cmd.OutOrStdout(), getConfig(), raw)
	},
}

func init() {
	configCmd.Flags().Bool("raw", false, "pretty-print the decoded configuration struct")
	rootCmd.AddCommand(configCmd)
}

func runShowConfig(out io.Writer, cfg *appconfig.Config, raw bool) {
	if raw {
		_, _ = pp.Fprintln(out, cfg)
		return
	}
	appconfig.ShowConfig(out, cfg.ConfigPath, cfg)
}
