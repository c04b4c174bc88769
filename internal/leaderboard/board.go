// internal/leaderboard/board.go
package leaderboard

import (
	"fmt"
	"strconv"

	"github.com/CadeHall0/EsoBench/internal/colorscale"
	"github.com/CadeHall0/EsoBench/internal/ranking"
)

const (
	defaultTasks    = 6
	defaultAttempts = 5
	defaultTopN     = 20
)

// Options controls the derived views of a Board.
type Options struct {
	Tasks    int
	Attempts int
	TopN     int
	ScatterX string
	ScatterY string
}

// DefaultOptions matches the published leaderboard: six tasks, five
// attempts each, top twenty in the bar chart, Task 1 against Task 2.
func DefaultOptions() Options {
	return Options{
		Tasks:    defaultTasks,
		Attempts: defaultAttempts,
		TopN:     defaultTopN,
		ScatterX: TaskName(1),
		ScatterY: TaskName(2),
	}
}

// WithDefaults fills zero fields with DefaultOptions values.
func (o Options) WithDefaults() Options {
	d := DefaultOptions()
	if o.Tasks <= 0 {
		o.Tasks = d.Tasks
	}
	if o.Attempts <= 0 {
		o.Attempts = d.Attempts
	}
	if o.TopN <= 0 {
		o.TopN = d.TopN
	}
	if o.ScatterX == "" {
		o.ScatterX = d.ScatterX
	}
	if o.ScatterY == "" {
		o.ScatterY = d.ScatterY
	}
	return o
}

// TaskName returns the results field holding task n's attempt scores.
func TaskName(n int) string {
	return "Task " + strconv.Itoa(n)
}

// Board combines results with a color scale. It is read only after
// construction and safe for concurrent use.
type Board struct {
	results *Results
	scale   *colorscale.Scale
	opts    Options
}

// NewBoard builds a Board. Zero option fields take their defaults.
func NewBoard(results *Results, scale *colorscale.Scale, opts Options) *Board {
	return &Board{results: results, scale: scale, opts: opts.WithDefaults()}
}

// Results returns the underlying results.
func (b *Board) Results() *Results { return b.results }

// Scale returns the board's color scale.
func (b *Board) Scale() *colorscale.Scale { return b.scale }

// Options returns the effective options.
func (b *Board) Options() Options { return b.opts }

// Row is one line of the leaderboard table.
type Row struct {
	Rank          int
	Model         Model
	Provider      Provider
	CleanScore    float64
	PercentSolved float64
	ErrorPercent  float64
	Heatmap       Heatmap
}

// ScoreText formats the clean score with one decimal.
func (r Row) ScoreText() string { return strconv.FormatFloat(r.CleanScore, 'f', 1, 64) }

// SolvedText formats the solved percentage.
func (r Row) SolvedText() string { return formatPercent(r.PercentSolved) }

// ErrorText formats the error percentage.
func (r Row) ErrorText() string { return formatPercent(r.ErrorPercent) }

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

// Rows sorts and ranks the models for state and decorates each with its
// provider and heatmap.
func (b *Board) Rows(state SortState) []Row {
	sorted := ranking.Sort(b.results.Records(), state.Key, state.Direction)
	ranked := ranking.Ranked(sorted, state.Key)

	rows := make([]Row, 0, len(ranked))
	for _, rr := range ranked {
		model, _ := b.results.Lookup(rr.Record.Name)
		rows = append(rows, Row{
			Rank:          rr.Rank,
			Model:         model,
			Provider:      LookupProvider(model.Provider),
			CleanScore:    model.Metric(ranking.MetricCleanScore),
			PercentSolved: model.Metric(ranking.MetricPercentSolved),
			ErrorPercent:  model.Metric(ranking.MetricErrorPercent),
			Heatmap:       b.Heatmap(model),
		})
	}
	return rows
}

// Cell is one task attempt in a heatmap.
type Cell struct {
	Task    int
	Attempt int
	Score   float64
	Color   colorscale.RGB
}

// Tooltip describes the cell, e.g. "Task 3, Attempt 2: 40".
func (c Cell) Tooltip() string {
	return fmt.Sprintf("Task %d, Attempt %d: %s", c.Task, c.Attempt, strconv.FormatFloat(c.Score, 'f', -1, 64))
}

// Heatmap is an attempts x tasks grid; Cells[a][t] is attempt a+1 of task t+1.
type Heatmap struct {
	Tasks    int
	Attempts int
	Cells    [][]Cell
}

// Heatmap builds the mini heatmap for m. Missing tasks or attempts score 0.
func (b *Board) Heatmap(m Model) Heatmap {
	h := Heatmap{Tasks: b.opts.Tasks, Attempts: b.opts.Attempts}
	h.Cells = make([][]Cell, b.opts.Attempts)
	for a := 0; a < b.opts.Attempts; a++ {
		row := make([]Cell, b.opts.Tasks)
		for t := 0; t < b.opts.Tasks; t++ {
			var score float64
			if series := m.Series[TaskName(t+1)]; a < len(series) {
				score = series[a]
			}
			row[t] = Cell{Task: t + 1, Attempt: a + 1, Score: score, Color: b.scale.ColorFor(score)}
		}
		h.Cells[a] = row
	}
	return h
}

// Point is one model in the scatter chart.
type Point struct {
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// Scatter returns each model's mean score on the configured x and y tasks.
func (b *Board) Scatter() []Point {
	models := b.results.Models()
	points := make([]Point, 0, len(models))
	for _, m := range models {
		points = append(points, Point{
			Label: m.Name,
			X:     mean(m.Series[b.opts.ScatterX]),
			Y:     mean(m.Series[b.opts.ScatterY]),
		})
	}
	return points
}

// Bar is one model in the score bar chart.
type Bar struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// TopScores returns the best TopN models by clean score.
func (b *Board) TopScores() []Bar {
	sorted := ranking.Sort(b.results.Records(), ranking.KeyScore, ranking.Descending)
	if len(sorted) > b.opts.TopN {
		sorted = sorted[:b.opts.TopN]
	}
	bars := make([]Bar, len(sorted))
	for i, r := range sorted {
		bars[i] = Bar{Label: r.Name, Value: r.Value(ranking.MetricCleanScore)}
	}
	return bars
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
