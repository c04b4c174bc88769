// internal/leaderboard/sortstate.go
package leaderboard

import (
	"fmt"

	"github.com/CadeHall0/EsoBench/internal/ranking"
)

// SortState is the column and direction the table is currently sorted by.
type SortState struct {
	Key       ranking.SortKey   `json:"key"`
	Direction ranking.Direction `json:"direction"`
}

// DefaultSortState sorts by score, best first.
func DefaultSortState() SortState {
	return SortState{Key: ranking.KeyScore, Direction: ranking.Descending}
}

// ParseSortState builds a state from user input. Empty values fall back to
// the defaults.
func ParseSortState(key, direction string) (SortState, error) {
	state := DefaultSortState()
	if key != "" {
		k, err := ranking.ParseSortKey(key)
		if err != nil {
			return SortState{}, err
		}
		state.Key = k
	}
	if direction != "" {
		d, err := ranking.ParseDirection(direction)
		if err != nil {
			return SortState{}, err
		}
		state.Direction = d
	}
	return state, nil
}

// Toggle returns the state after selecting key: the same key flips the
// direction, another key is sorted descending.
func (s SortState) Toggle(key ranking.SortKey) SortState {
	if s.Key == key {
		return SortState{Key: key, Direction: s.Direction.Reverse()}
	}
	return SortState{Key: key, Direction: ranking.Descending}
}

func (s SortState) String() string {
	return fmt.Sprintf("%s %s", s.Key, s.Direction)
}
