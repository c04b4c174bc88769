package esobench

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/CadeHall0/EsoBench/internal/appconfig"
	"github.com/CadeHall0/EsoBench/internal/report"
)

type showOptions struct {
	Compact bool
	Width   int
}

func runShow(out io.Writer, cfg *appconfig.Config, opts showOptions) error {
	board, state, err := loadBoard(cfg)
	if err != nil {
		return err
	}
	width := opts.Width
	if width <= 0 {
		width = terminalWidth(out)
	}
	fmt.Fprintln(out, report.RenderTerminal(board, state, report.TerminalOptions{
		Width:   width,
		Compact: opts.Compact,
		Title:   "EsoBench Leaderboard",
	}))
	return nil
}

// terminalWidth returns the width of out when it is a terminal, else 0.
func terminalWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
		return w
	}
	return 0
}
