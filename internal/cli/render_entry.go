package esobench

import (
	"fmt"
	"io"

	"github.com/CadeHall0/EsoBench/internal/appconfig"
	"github.com/CadeHall0/EsoBench/internal/logging"
	"github.com/CadeHall0/EsoBench/internal/report"
	"github.com/CadeHall0/EsoBench/internal/util"
)

func runRender(out io.Writer, cfg *appconfig.Config, title string) error {
	board, state, err := loadBoard(cfg)
	if err != nil {
		return err
	}
	page, err := report.GenerateHTML(board, state, report.HTMLOptions{Title: title})
	if err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	path := cfg.OutputPath()
	if err := util.WriteFile(path, []byte(page)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	logging.LogEvent("wrote %s (%d models, sorted by %s)", path, board.Results().Len(), state)
	fmt.Fprintf(out, "Report written to %s\n", path)
	return nil
}
