// internal/report/html.go
// Package report renders the leaderboard as a standalone HTML page or as a
// styled terminal table.
package report

import (
	"bytes"
	"encoding/json"
	"html/template"
	"net/url"

	"github.com/CadeHall0/EsoBench/internal/leaderboard"
	"github.com/CadeHall0/EsoBench/internal/ranking"
)

// DefaultTitle is the page title used when none is given.
const DefaultTitle = "EsoBench: Esoteric Language Benchmark Leaderboard"

// HTMLOptions controls the generated page.
type HTMLOptions struct {
	Title string
	// SortLinks turns the sortable headers into links carrying the toggled
	// sort state as query parameters. Only useful when served.
	SortLinks bool
}

type sortHeader struct {
	Label  string
	Active bool
	Class  string
	Href   string
}

type legendStop struct {
	Position float64
	Color    string
}

type htmlData struct {
	Title     string
	Sort      leaderboard.SortState
	Score     sortHeader
	Solved    sortHeader
	Rows      []leaderboard.Row
	Tasks     int
	Legend    []legendStop
	ChartJSON template.JS
}

type chartPayload struct {
	Bar     []leaderboard.Bar   `json:"bar"`
	Scatter []leaderboard.Point `json:"scatter"`
	XLabel  string              `json:"xLabel"`
	YLabel  string              `json:"yLabel"`
}

// GenerateHTML renders the leaderboard page for the given sort state. Cell
// colors are computed here, so the page needs no theme lookups at runtime.
func GenerateHTML(board *leaderboard.Board, state leaderboard.SortState, opts HTMLOptions) (string, error) {
	o := board.Options()
	payload, err := json.Marshal(chartPayload{
		Bar:     board.TopScores(),
		Scatter: board.Scatter(),
		XLabel:  o.ScatterX + " Mean Score",
		YLabel:  o.ScatterY + " Mean Score",
	})
	if err != nil {
		return "", err
	}

	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}

	data := htmlData{
		Title:     title,
		Sort:      state,
		Score:     newSortHeader("Score", ranking.KeyScore, state, opts.SortLinks),
		Solved:    newSortHeader("Solved", ranking.KeySolved, state, opts.SortLinks),
		Rows:      board.Rows(state),
		Tasks:     o.Tasks,
		ChartJSON: template.JS(payload),
	}
	for _, s := range board.Scale().Stops() {
		data.Legend = append(data.Legend, legendStop{Position: s.Position, Color: s.Color.Hex()})
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SortQuery encodes a sort state as query parameters.
func SortQuery(state leaderboard.SortState) string {
	v := url.Values{}
	v.Set("sort", string(state.Key))
	v.Set("dir", string(state.Direction))
	return v.Encode()
}

func newSortHeader(label string, key ranking.SortKey, state leaderboard.SortState, links bool) sortHeader {
	h := sortHeader{Label: label, Active: state.Key == key}
	if h.Active {
		h.Class = "sort-desc"
		if state.Direction == ranking.Ascending {
			h.Class = "sort-asc"
		}
	}
	if links {
		h.Href = "?" + SortQuery(state.Toggle(key))
	}
	return h
}

var htmlTemplate = template.Must(template.New("leaderboard").Parse(htmlTemplateSource))

const htmlTemplateSource = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Title }}</title>
  <script src="https://cdn.jsdelivr.net/npm/chart.js@4.4.1/dist/chart.umd.min.js"></script>
  <style>
    :root {
      --text: #0F172A;
      --muted: #64748B;
      --accent: #3B82F6;
      --bgtint: #E2E8F0;
      --background: #FFFFFF;
    }
    body { font-family: system-ui, sans-serif; color: var(--text); background: var(--background); margin: 2rem; }
    h1 { font-size: 1.6rem; }
    .leaderboard-table { border-collapse: collapse; width: 100%; }
    .leaderboard-table th, .leaderboard-table td { padding: 0.4rem 0.6rem; border-bottom: 1px solid var(--bgtint); text-align: left; }
    .leaderboard-table th a { color: inherit; text-decoration: none; }
    .sort-asc::after { content: " \25B2"; }
    .sort-desc::after { content: " \25BC"; }
    .rank-cell { font-weight: 700; }
    .score-cell { font-variant-numeric: tabular-nums; }
    .model-cell { display: flex; align-items: center; gap: 0.5rem; }
    .company-icon, .icon-placeholder { width: 18px; height: 18px; }
    .mini-heatmap { display: grid; gap: 1px; }
    .mini-heatmap-cell { width: 10px; height: 10px; }
    .legend { display: flex; gap: 1rem; margin: 1rem 0; color: var(--muted); }
    .legend-color { display: inline-block; width: 14px; height: 14px; vertical-align: middle; margin-right: 0.25rem; }
    .charts { display: grid; grid-template-columns: 1fr 1fr; gap: 2rem; margin-top: 2rem; }
  </style>
</head>
<body>
  <h1>{{ .Title }}</h1>
  <div class="legend">
    {{- range .Legend }}
    <span><span class="legend-color" style="background-color: {{ .Color }}"></span>{{ .Position }}</span>
    {{- end }}
  </div>
  <table class="leaderboard-table" id="leaderboard-table" data-sort="{{ .Sort.Key }}" data-direction="{{ .Sort.Direction }}">
    <thead>
      <tr>
        <th>Rank</th>
        <th>Model</th>
        <th>Company</th>
        {{ with .Score }}<th class="sortable {{ .Class }}" data-column="score">{{ if .Href }}<a href="{{ .Href }}">{{ .Label }}</a>{{ else }}{{ .Label }}{{ end }}</th>{{ end }}
        <th>Errors</th>
        {{ with .Solved }}<th class="sortable {{ .Class }}" data-column="solved">{{ if .Href }}<a href="{{ .Href }}">{{ .Label }}</a>{{ else }}{{ .Label }}{{ end }}</th>{{ end }}
        <th>Performance</th>
      </tr>
    </thead>
    <tbody id="leaderboard-body">
      {{- range .Rows }}
      <tr>
        <td class="rank-cell">{{ .Rank }}</td>
        <td class="model-cell">{{ if .Provider.IconURL }}<img class="company-icon" src="{{ .Provider.IconURL }}" alt="{{ .Model.Provider }}">{{ else }}<div class="icon-placeholder"></div>{{ end }}<strong>{{ .Model.Name }}</strong></td>
        <td>{{ .Provider.Name }}</td>
        <td class="score-cell">{{ .ScoreText }}</td>
        <td>{{ .ErrorText }}</td>
        <td class="score-cell">{{ .SolvedText }}</td>
        <td><div class="mini-heatmap" style="grid-template-columns: repeat({{ $.Tasks }}, 10px)">
          {{- range .Heatmap.Cells }}{{ range . }}<div class="mini-heatmap-cell" style="background-color: {{ .Color.Hex }}" data-tooltip="{{ .Tooltip }}" title="{{ .Tooltip }}"></div>{{ end }}{{ end -}}
        </div></td>
      </tr>
      {{- end }}
    </tbody>
  </table>
  <div class="charts">
    <div><canvas id="barChart"></canvas></div>
    <div><canvas id="scatterChart"></canvas></div>
  </div>
  <script>
    (function () {
      var data = {{ .ChartJSON }};
      var css = getComputedStyle(document.documentElement);
      var accent = css.getPropertyValue('--accent').trim();
      var grid = css.getPropertyValue('--bgtint').trim();
      new Chart(document.getElementById('barChart'), {
        type: 'bar',
        data: {
          labels: data.bar.map(function (b) { return b.label; }),
          datasets: [{ label: 'Score', data: data.bar.map(function (b) { return b.value; }), backgroundColor: accent, borderWidth: 0 }]
        },
        options: {
          responsive: true,
          scales: { y: { beginAtZero: true, max: 100, grid: { color: grid } }, x: { grid: { display: false } } },
          plugins: { legend: { display: false } }
        }
      });
      new Chart(document.getElementById('scatterChart'), {
        type: 'scatter',
        data: { datasets: [{ label: 'Models', data: data.scatter, backgroundColor: accent, borderColor: accent, pointRadius: 6 }] },
        options: {
          responsive: true,
          scales: {
            x: { type: 'linear', position: 'bottom', title: { display: true, text: data.xLabel }, grid: { color: grid } },
            y: { title: { display: true, text: data.yLabel }, grid: { color: grid } }
          },
          plugins: {
            legend: { display: false },
            tooltip: { callbacks: {
              title: function (ctx) { return ctx[0].raw.label; },
              label: function (ctx) { return ['x: ' + ctx.parsed.x.toFixed(1), 'y: ' + ctx.parsed.y.toFixed(1)]; }
            } }
          }
        }
      });
    })();
  </script>
</body>
</html>
`
