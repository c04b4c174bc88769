// internal/cli/board.go
package esobench

import (
	"fmt"

	"github.com/CadeHall0/EsoBench/internal/appconfig"
	"github.com/CadeHall0/EsoBench/internal/leaderboard"
	"github.com/CadeHall0/EsoBench/internal/logging"
)

// loadBoard reads the configured results file and combines it with the
// configured color scale and sort state.
func loadBoard(cfg *appconfig.Config) (*leaderboard.Board, leaderboard.SortState, error) {
	state, err := cfg.SortState()
	if err != nil {
		return nil, leaderboard.SortState{}, err
	}
	scale, err := cfg.ColorScale()
	if err != nil {
		return nil, leaderboard.SortState{}, fmt.Errorf("gradient: %w", err)
	}
	results, err := leaderboard.Load(cfg.DataFile())
	if err != nil {
		return nil, leaderboard.SortState{}, err
	}
	logging.LogDebug("loaded %d models from %s", results.Len(), cfg.DataFile())
	return leaderboard.NewBoard(results, scale, cfg.BoardOptions()), state, nil
}
