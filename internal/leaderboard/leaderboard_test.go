package leaderboard

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CadeHall0/EsoBench/internal/colorscale"
	"github.com/CadeHall0/EsoBench/internal/ranking"
)

func loadBoard(t *testing.T, opts Options) *Board {
	t.Helper()
	results, err := Load(filepath.Join("testdata", "results.json"))
	require.NoError(t, err)
	return NewBoard(results, colorscale.Default(), opts)
}

func rowNames(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Model.Name
	}
	return out
}

func rowRanks(rows []Row) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = r.Rank
	}
	return out
}

func TestLoad_PreservesFileOrder(t *testing.T) {
	results, err := Load(filepath.Join("testdata", "results.json"))
	require.NoError(t, err)
	require.Equal(t, 3, results.Len())

	models := results.Models()
	assert.Equal(t, "Model A", models[0].Name)
	assert.Equal(t, "Model C", models[2].Name)
	assert.Equal(t, "Open-AI", models[0].Provider)
	assert.Equal(t, "Anthropic", models[1].Provider)
	assert.Equal(t, []float64{0, 85}, models[2].Series["Task 2"])
	assert.Equal(t, 12.34, models[1].Metric(ranking.MetricErrorPercent))
	assert.Zero(t, models[0].Metric("Latency"))
}

func TestParse_KeepsOrderForUnsortedNames(t *testing.T) {
	results, err := Parse([]byte(`{"Zeta": {"Clean Score": 1}, "Alpha": {"Clean Score": 1}}`))
	require.NoError(t, err)
	records := results.Records()
	assert.Equal(t, "Zeta", records[0].Name)
	assert.Equal(t, "Alpha", records[1].Name)
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]struct {
		input string
		want  error
	}{
		"malformed json":   {`{"A": `, ErrInvalidResults},
		"not an object":    {`[]`, ErrInvalidResults},
		"model not object": {`{"A": 5}`, ErrInvalidResults},
		"bool metric":      {`{"A": {"Clean Score": true}}`, ErrInvalidResults},
		"string attempts":  {`{"A": {"Task 1": ["x"]}}`, ErrInvalidResults},
		"duplicate model":  {`{"A": {}, "A": {}}`, ErrInvalidResults},
		"empty":            {`{}`, ErrNoModels},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(tc.input))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestValidate_ListsViolations(t *testing.T) {
	err := Validate([]byte(`{"A": {"Clean Score": true, "Task 1": {}}}`))
	require.ErrorIs(t, err, ErrInvalidResults)
	assert.Contains(t, err.Error(), "Clean Score")
	assert.Contains(t, err.Error(), "Task 1")

	require.NoError(t, Validate([]byte(`{"A": {"Clean Score": 1, "Task 1": [1, null], "provider": "x"}}`)))
}

func TestBoardRows_ByScore(t *testing.T) {
	rows := loadBoard(t, Options{}).Rows(DefaultSortState())

	assert.Equal(t, []string{"Model A", "Model B", "Model C"}, rowNames(rows))
	assert.Equal(t, []int{1, 1, 3}, rowRanks(rows))

	assert.Equal(t, "OpenAI", rows[0].Provider.Name)
	assert.NotEmpty(t, rows[0].Provider.IconURL)
	assert.Equal(t, "mistral", rows[2].Provider.Name)
	assert.Empty(t, rows[2].Provider.IconURL)

	assert.Equal(t, "80.0", rows[1].ScoreText())
	assert.Equal(t, "12.3%", rows[1].ErrorText())
	assert.Equal(t, "70.0%", rows[1].SolvedText())
}

func TestBoardRows_BySolvedAscending(t *testing.T) {
	rows := loadBoard(t, Options{}).Rows(SortState{Key: ranking.KeySolved, Direction: ranking.Ascending})
	assert.Equal(t, []string{"Model B", "Model A", "Model C"}, rowNames(rows))
	assert.Equal(t, []int{1, 2, 3}, rowRanks(rows))
}

func TestBoardHeatmap(t *testing.T) {
	board := loadBoard(t, Options{})
	model, ok := board.Results().Lookup("Model A")
	require.True(t, ok)

	h := board.Heatmap(model)
	require.Equal(t, 5, h.Attempts)
	require.Equal(t, 6, h.Tasks)
	require.Len(t, h.Cells, 5)
	require.Len(t, h.Cells[0], 6)

	assert.Equal(t, colorscale.RGB{R: 0, G: 128, B: 0}, h.Cells[0][0].Color)
	assert.Equal(t, colorscale.RGB{R: 255, G: 255, B: 0}, h.Cells[1][0].Color)
	assert.Equal(t, 40.0, h.Cells[1][1].Score)
	assert.Zero(t, h.Cells[2][1].Score)
	assert.Zero(t, h.Cells[0][5].Score)
	assert.Equal(t, colorscale.RGB{R: 255, G: 0, B: 0}, h.Cells[0][5].Color)
	assert.Equal(t, "Task 1, Attempt 2: 50", h.Cells[1][0].Tooltip())
}

func TestBoardHeatmap_CustomSize(t *testing.T) {
	board := loadBoard(t, Options{Tasks: 2, Attempts: 3})
	model, _ := board.Results().Lookup("Model B")
	h := board.Heatmap(model)
	require.Len(t, h.Cells, 3)
	require.Len(t, h.Cells[2], 2)
	assert.Equal(t, colorscale.Default().ColorFor(15), h.Cells[2][0].Color)
}

func TestCellTooltipFractional(t *testing.T) {
	c := Cell{Task: 3, Attempt: 5, Score: 12.5}
	assert.Equal(t, "Task 3, Attempt 5: 12.5", c.Tooltip())
}

func TestBoardScatter(t *testing.T) {
	points := loadBoard(t, Options{}).Scatter()
	require.Len(t, points, 3)
	assert.Equal(t, Point{Label: "Model A", X: 30, Y: 30}, points[0])
	assert.Equal(t, Point{Label: "Model B", X: 15, Y: 0}, points[1])
	assert.Equal(t, Point{Label: "Model C", X: 0, Y: 42.5}, points[2])
}

func TestBoardTopScores(t *testing.T) {
	bars := loadBoard(t, Options{TopN: 2}).TopScores()
	assert.Equal(t, []Bar{{Label: "Model A", Value: 80}, {Label: "Model B", Value: 80}}, bars)

	all := loadBoard(t, Options{}).TopScores()
	assert.Len(t, all, 3)
}

func TestEntries(t *testing.T) {
	rows := loadBoard(t, Options{Tasks: 1, Attempts: 1}).Rows(DefaultSortState())
	entries := Entries(rows, true)
	require.Len(t, entries, 3)
	assert.Equal(t, Entry{
		Rank:          1,
		Model:         "Model A",
		Provider:      "OpenAI",
		CleanScore:    80,
		PercentSolved: 90,
		ErrorPercent:  5,
		Heatmap:       [][]string{{"#008000"}},
	}, entries[0])

	assert.Nil(t, Entries(rows, false)[0].Heatmap)
}

func TestLookupProvider(t *testing.T) {
	assert.Equal(t, "OpenAI", LookupProvider("open-ai").Name)
	assert.Equal(t, "xAI", LookupProvider(" X.AI ").Name)
	assert.Equal(t, "Google", LookupProvider("Google").Name)
	assert.Equal(t, Provider{Name: "Unknown"}, LookupProvider("  "))
	assert.Equal(t, Provider{Key: "metaai", Name: "Meta AI!"}, LookupProvider("Meta AI!"))
	assert.Equal(t, "open-ai", ProviderKey("Open-AI"))
	assert.Equal(t, "openai", ProviderKey("Open_AI"))
}

func TestSortStateToggle(t *testing.T) {
	s := DefaultSortState()
	assert.Equal(t, ranking.KeyScore, s.Key)
	assert.Equal(t, ranking.Descending, s.Direction)

	s = s.Toggle(ranking.KeyScore)
	assert.Equal(t, SortState{Key: ranking.KeyScore, Direction: ranking.Ascending}, s)

	s = s.Toggle(ranking.KeySolved)
	assert.Equal(t, SortState{Key: ranking.KeySolved, Direction: ranking.Descending}, s)
	assert.Equal(t, "solved desc", s.String())
}

func TestParseSortState(t *testing.T) {
	s, err := ParseSortState("", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultSortState(), s)

	s, err = ParseSortState("solved", "asc")
	require.NoError(t, err)
	assert.Equal(t, SortState{Key: ranking.KeySolved, Direction: ranking.Ascending}, s)

	_, err = ParseSortState("speed", "")
	require.ErrorIs(t, err, ranking.ErrUnknownSortKey)
	_, err = ParseSortState("", "up")
	require.ErrorIs(t, err, ranking.ErrUnknownDirection)
}
