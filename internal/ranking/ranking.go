// internal/ranking/ranking.go
// Package ranking orders leaderboard records by a metric and assigns
// competition ranks, where tied entries share a rank and the next distinct
// value resumes at its 1-based position.
package ranking

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
)

// Metric names used by the EsoBench results files.
const (
	MetricCleanScore    = "Clean Score"
	MetricPercentSolved = "Percent Solved"
	MetricErrorPercent  = "Error Percent"
)

var (
	// ErrUnknownSortKey is returned when user input names no known sort key.
	ErrUnknownSortKey = errors.New("unknown sort key")
	// ErrUnknownDirection is returned when user input names no sort direction.
	ErrUnknownDirection = errors.New("unknown sort direction")
)

// SortKey selects the primary and tiebreak metrics used for ordering.
type SortKey string

const (
	KeyScore  SortKey = "score"
	KeySolved SortKey = "solved"
)

// Direction applies to the primary metric only.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// ParseSortKey converts user input into a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case KeyScore:
		return KeyScore, nil
	case KeySolved:
		return KeySolved, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
}

// ParseDirection converts user input into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// Record is a named entry holding numeric metrics. Records are read only.
type Record struct {
	Name    string
	Metrics map[string]float64
}

// Value returns the named metric. A missing or NaN metric reads as 0 so that
// partial data never breaks ordering.
func (r Record) Value(metric string) float64 {
	v, ok := r.Metrics[metric]
	if !ok || math.IsNaN(v) {
		return 0
	}
	return v
}

// KeySpec names the metrics behind a SortKey.
type KeySpec struct {
	Primary   string
	Secondary string
}

// DefaultKeys is the EsoBench key table.
var DefaultKeys = map[SortKey]KeySpec{
	KeyScore:  {Primary: MetricCleanScore, Secondary: MetricPercentSolved},
	KeySolved: {Primary: MetricPercentSolved, Secondary: MetricCleanScore},
}

// RankedRow pairs a record with its competition rank.
type RankedRow struct {
	Record Record
	Rank   int
}

// Ranker sorts and ranks records using a fixed key table.
type Ranker struct {
	keys map[SortKey]KeySpec
}

// New returns a Ranker for the given key table. The table is copied.
func New(keys map[SortKey]KeySpec) *Ranker {
	copied := make(map[SortKey]KeySpec, len(keys))
	for k, v := range keys {
		copied[k] = v
	}
	return &Ranker{keys: copied}
}

var defaultRanker = New(DefaultKeys)

// Sort returns records ordered by the key's primary metric in the given
// direction. Exact primary ties are broken by the secondary metric, always
// descending; records equal on both keep their input order. The input slice
// is not modified.
func (r *Ranker) Sort(records []Record, key SortKey, dir Direction) []Record {
	out := slices.Clone(records)
	spec, ok := r.keys[key]
	if !ok {
		return out
	}
	slices.SortStableFunc(out, func(a, b Record) int {
		ap, bp := a.Value(spec.Primary), b.Value(spec.Primary)
		if ap != bp {
			c := compare(ap, bp)
			if dir == Ascending {
				return c
			}
			return -c
		}
		return -compare(a.Value(spec.Secondary), b.Value(spec.Secondary))
	})
	return out
}

// Rank computes competition ranks for records already sorted by key. Each
// element is compared only with its predecessor: an equal primary value
// repeats the previous rank, a different one takes the 1-based position.
func (r *Ranker) Rank(sorted []Record, key SortKey) []int {
	ranks := make([]int, len(sorted))
	metric := r.keys[key].Primary
	for i := range sorted {
		if i > 0 && sorted[i].Value(metric) == sorted[i-1].Value(metric) {
			ranks[i] = ranks[i-1]
			continue
		}
		ranks[i] = i + 1
	}
	return ranks
}

// Ranked pairs each sorted record with its rank.
func (r *Ranker) Ranked(sorted []Record, key SortKey) []RankedRow {
	ranks := r.Rank(sorted, key)
	rows := make([]RankedRow, len(sorted))
	for i, rec := range sorted {
		rows[i] = RankedRow{Record: rec, Rank: ranks[i]}
	}
	return rows
}

// Sort orders records with the default key table.
func Sort(records []Record, key SortKey, dir Direction) []Record {
	return defaultRanker.Sort(records, key, dir)
}

// Rank ranks sorted records with the default key table.
func Rank(sorted []Record, key SortKey) []int {
	return defaultRanker.Rank(sorted, key)
}

// Ranked pairs sorted records with ranks using the default key table.
func Ranked(sorted []Record, key SortKey) []RankedRow {
	return defaultRanker.Ranked(sorted, key)
}

func compare(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
