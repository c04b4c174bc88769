// internal/leaderboard/entry.go
package leaderboard

// Entry is the serialized form of a Row used by exports and the HTTP API.
type Entry struct {
	Rank          int        `json:"rank" yaml:"rank"`
	Model         string     `json:"model" yaml:"model"`
	Provider      string     `json:"provider" yaml:"provider"`
	CleanScore    float64    `json:"cleanScore" yaml:"cleanScore"`
	PercentSolved float64    `json:"percentSolved" yaml:"percentSolved"`
	ErrorPercent  float64    `json:"errorPercent" yaml:"errorPercent"`
	Heatmap       [][]string `json:"heatmap,omitempty" yaml:"heatmap,omitempty"`
}

// Entry converts the row. withHeatmap adds the cell colors as #rrggbb,
// attempts by tasks.
func (r Row) Entry(withHeatmap bool) Entry {
	e := Entry{
		Rank:          r.Rank,
		Model:         r.Model.Name,
		Provider:      r.Provider.Name,
		CleanScore:    r.CleanScore,
		PercentSolved: r.PercentSolved,
		ErrorPercent:  r.ErrorPercent,
	}
	if withHeatmap {
		e.Heatmap = make([][]string, len(r.Heatmap.Cells))
		for a, row := range r.Heatmap.Cells {
			colors := make([]string, len(row))
			for t, c := range row {
				colors[t] = c.Color.Hex()
			}
			e.Heatmap[a] = colors
		}
	}
	return e
}

// Entries converts rows.
func Entries(rows []Row, withHeatmap bool) []Entry {
	out := make([]Entry, len(rows))
	for i, r := range rows {
		out[i] = r.Entry(withHeatmap)
	}
	return out
}
