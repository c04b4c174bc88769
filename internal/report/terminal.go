// internal/report/terminal.go
package report

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/CadeHall0/EsoBench/internal/leaderboard"
	"github.com/CadeHall0/EsoBench/internal/ranking"
	"github.com/CadeHall0/EsoBench/internal/util"
)

const defaultNameWidth = 32

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	rankStyle   = cellStyle.Bold(true).Foreground(lipgloss.Color("39"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

// TerminalOptions controls the terminal table.
type TerminalOptions struct {
	// Width caps the table width; 0 leaves it unbounded.
	Width int
	// NameWidth truncates model names; 0 uses the default.
	NameWidth int
	// Compact draws one block per task colored by the task's mean score
	// instead of the full attempts grid.
	Compact bool
	Title   string
}

// RenderTerminal draws the leaderboard as a lipgloss table for state.
func RenderTerminal(board *leaderboard.Board, state leaderboard.SortState, opts TerminalOptions) string {
	nameWidth := opts.NameWidth
	if nameWidth <= 0 {
		nameWidth = defaultNameWidth
	}

	rows := board.Rows(state)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("#", "Model", "Company", sortLabel("Score", ranking.KeyScore, state), "Errors", sortLabel("Solved", ranking.KeySolved, state), "Performance").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return rankStyle
			}
			return cellStyle
		})
	if opts.Width > 0 {
		t = t.Width(opts.Width)
	}

	for _, r := range rows {
		heat := heatmapBlocks(r.Heatmap)
		if opts.Compact {
			heat = compactBlocks(board, r.Heatmap)
		}
		t.Row(
			strconv.Itoa(r.Rank),
			util.TruncateRunes(r.Model.Name, nameWidth),
			r.Provider.Name,
			r.ScoreText(),
			r.ErrorText(),
			r.SolvedText(),
			heat,
		)
	}

	var b strings.Builder
	if opts.Title != "" {
		b.WriteString(titleStyle.Render(opts.Title))
		b.WriteString("\n")
	}
	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(faintStyle.Render("sorted by " + state.String()))
	return b.String()
}

func sortLabel(label string, key ranking.SortKey, state leaderboard.SortState) string {
	if state.Key != key {
		return label
	}
	if state.Direction == ranking.Ascending {
		return label + " ▲"
	}
	return label + " ▼"
}

// Swatch renders a two-column block with the given background color.
func Swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}

func heatmapBlocks(h leaderboard.Heatmap) string {
	lines := make([]string, 0, len(h.Cells))
	for _, row := range h.Cells {
		var line strings.Builder
		for _, c := range row {
			line.WriteString(Swatch(c.Color.Hex()))
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

func compactBlocks(board *leaderboard.Board, h leaderboard.Heatmap) string {
	if len(h.Cells) == 0 {
		return ""
	}
	var line strings.Builder
	for t := 0; t < h.Tasks; t++ {
		var sum float64
		for a := range h.Cells {
			sum += h.Cells[a][t].Score
		}
		c := board.Scale().ColorFor(sum / float64(len(h.Cells)))
		line.WriteString(Swatch(c.Hex()))
	}
	return line.String()
}
