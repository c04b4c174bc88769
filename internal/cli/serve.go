// internal/cli/serve.go
package esobench

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/CadeHall0/EsoBench/internal/appconfig"
	"github.com/CadeHall0/EsoBench/internal/server"
)

// serveCmd implements 'serve', which exposes the leaderboard over HTTP
// until interrupted.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the leaderboard over HTTP",
	Long:  `The 'serve' command serves the HTML leaderboard at /, ranked rows at /api/leaderboard, score colors at /api/color, plus /health and Prometheus /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runServe(ctx, getConfig())
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8080)")
	_ = viper.BindPFlag("addr", serveCmd.Flags().Lookup("addr"))
	rootCmd.AddCommand(serveCmd)
}

func runServe(ctx context.Context, cfg *appconfig.Config) error {
	board, _, err := loadBoard(cfg)
	if err != nil {
		return err
	}
	srv, err := server.New(board, server.Options{})
	if err != nil {
		return err
	}
	return srv.ListenAndServe(ctx, cfg.ListenAddr())
}
