// internal/cli/cli_test.go
package esobench

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/CadeHall0/EsoBench/internal/appconfig"
	"github.com/CadeHall0/EsoBench/internal/colorscale"
	"github.com/CadeHall0/EsoBench/internal/leaderboard"
	"github.com/CadeHall0/EsoBench/internal/logging"
	"github.com/CadeHall0/EsoBench/internal/ranking"
)

const testResults = "testdata/results.json"

func testConfig() *appconfig.Config {
	return &appconfig.Config{
		DataPath: testResults,
		Heatmap:  appconfig.Heatmap{Tasks: 2, Attempts: 2},
	}
}

func TestRunExportJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := runExport(&buf, testConfig(), exportOptions{Format: "json", Heatmap: true}); err != nil {
		t.Fatalf("runExport error: %v", err)
	}

	var doc exportDocument
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("export is not JSON: %v\n%s", err, buf.String())
	}
	if doc.Sort != leaderboard.DefaultSortState() {
		t.Fatalf("unexpected sort state %s", doc.Sort)
	}
	if len(doc.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(doc.Entries))
	}
	gotRanks := []int{doc.Entries[0].Rank, doc.Entries[1].Rank, doc.Entries[2].Rank}
	if gotRanks[0] != 1 || gotRanks[1] != 1 || gotRanks[2] != 3 {
		t.Fatalf("expected ranks [1 1 3], got %v", gotRanks)
	}
	first := doc.Entries[0]
	if first.Model != "Model A" || first.Provider != "OpenAI" {
		t.Fatalf("unexpected first entry %+v", first)
	}
	if first.Heatmap[0][0] != "#008000" || first.Heatmap[1][0] != "#ffff00" {
		t.Fatalf("unexpected heatmap %v", first.Heatmap)
	}
}

func TestRunExportYAMLToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "board.yaml")
	cfg := testConfig()
	cfg.Sort = "solved"
	cfg.Direction = "asc"

	var buf bytes.Buffer
	if err := runExport(&buf, cfg, exportOptions{Format: "YAML", File: path}); err != nil {
		t.Fatalf("runExport error: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no stdout output when writing a file, got %q", buf.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	content := string(data)
	for _, want := range []string{"key: solved", "direction: asc", "model: Model B", "provider: Unknown"} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected %q in export, got:\n%s", want, content)
		}
	}
	if strings.Index(content, "model: Model B") > strings.Index(content, "model: Model A") {
		t.Fatalf("expected Model B before Model A when sorted by solved asc:\n%s", content)
	}
	if strings.Contains(content, "heatmap") {
		t.Fatalf("heatmap should be omitted by default:\n%s", content)
	}
}

func TestRunExportErrors(t *testing.T) {
	if err := runExport(&bytes.Buffer{}, testConfig(), exportOptions{Format: "csv"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}

	cfg := testConfig()
	cfg.Sort = "name"
	err := runExport(&bytes.Buffer{}, cfg, exportOptions{})
	if err == nil || !strings.Contains(err.Error(), ranking.ErrUnknownSortKey.Error()) {
		t.Fatalf("expected unknown sort key error, got %v", err)
	}

	cfg = testConfig()
	cfg.DataPath = filepath.Join(t.TempDir(), "missing.json")
	if err := runExport(&bytes.Buffer{}, cfg, exportOptions{}); err == nil {
		t.Fatal("expected error for missing results file")
	}
}

func TestRunRenderWritesReport(t *testing.T) {
	cfg := testConfig()
	cfg.Output = filepath.Join(t.TempDir(), "reports", "index.html")

	var buf bytes.Buffer
	if err := runRender(&buf, cfg, "Test Report"); err != nil {
		t.Fatalf("runRender error: %v", err)
	}
	if !strings.Contains(buf.String(), cfg.Output) {
		t.Fatalf("expected output path in message, got %q", buf.String())
	}

	data, err := os.ReadFile(cfg.Output)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	page := string(data)
	if !strings.Contains(page, "<title>Test Report</title>") || !strings.Contains(page, "Model C") {
		t.Fatalf("unexpected report content")
	}
}

func TestRunRenderInvalidGradient(t *testing.T) {
	cfg := testConfig()
	cfg.Output = filepath.Join(t.TempDir(), "index.html")
	cfg.Gradient = []colorscale.StopSpec{{Position: 0, Color: "red"}}

	if err := runRender(&bytes.Buffer{}, cfg, ""); err == nil {
		t.Fatal("expected error for a single-stop gradient")
	}
	if _, err := os.Stat(cfg.Output); err == nil {
		t.Fatal("report should not be written on error")
	}
}

func TestRunShow(t *testing.T) {
	var buf bytes.Buffer
	if err := runShow(&buf, testConfig(), showOptions{Width: 120}); err != nil {
		t.Fatalf("runShow error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"EsoBench Leaderboard", "Model A", "Anthropic", "Score ▼", "sorted by score desc"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in table, got:\n%s", want, out)
		}
	}
}

func TestTerminalWidthNonTerminal(t *testing.T) {
	if w := terminalWidth(&bytes.Buffer{}); w != 0 {
		t.Fatalf("expected 0 for a buffer, got %d", w)
	}
}

func TestRunColor(t *testing.T) {
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })

	var buf bytes.Buffer
	if err := runColor(&buf, &appconfig.Config{}, []string{"50", "15"}, 0); err != nil {
		t.Fatalf("runColor error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "#ffff00") || !strings.Contains(out, "rgb(255, 255, 0)") {
		t.Fatalf("expected yellow for 50, got:\n%s", out)
	}
	if !strings.Contains(out, "#ffa500") {
		t.Fatalf("expected orange for 15, got:\n%s", out)
	}

	buf.Reset()
	if err := runColor(&buf, &appconfig.Config{}, nil, 50); err != nil {
		t.Fatalf("runColor ramp error: %v", err)
	}
	out = buf.String()
	if !strings.Contains(out, "Stops:") || !strings.Contains(out, "Ramp:") {
		t.Fatalf("expected stops and ramp sections, got:\n%s", out)
	}
	// 5 stops + 3 ramp entries + 2 headings.
	if lines := strings.Count(out, "\n"); lines != 10 {
		t.Fatalf("expected 10 lines, got %d:\n%s", lines, out)
	}

	if err := runColor(&buf, &appconfig.Config{}, []string{"high"}, 0); err == nil {
		t.Fatal("expected error for a non-numeric score")
	}
	if err := runColor(&buf, &appconfig.Config{}, nil, 0); err == nil {
		t.Fatal("expected error for a zero step")
	}
}

func TestRunValidate(t *testing.T) {
	var buf bytes.Buffer
	if err := runValidate(&buf, testResults); err != nil {
		t.Fatalf("runValidate error: %v", err)
	}
	if !strings.Contains(buf.String(), "OK (3 models)") {
		t.Fatalf("unexpected output %q", buf.String())
	}

	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte(`{"x": {"Clean Score": true}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	err := runValidate(&buf, bad)
	if err == nil || !strings.Contains(err.Error(), "Clean Score") {
		t.Fatalf("expected schema violation naming the field, got %v", err)
	}
}

func TestRunShowConfig(t *testing.T) {
	cfg := &appconfig.Config{DataPath: "custom.json", Sort: "solved"}

	var buf bytes.Buffer
	runShowConfig(&buf, cfg, false)
	out := buf.String()
	if !strings.Contains(out, "No config file loaded") {
		t.Fatalf("expected defaults notice, got:\n%s", out)
	}
	if !strings.Contains(out, "custom.json") || !strings.Contains(out, "solved desc") {
		t.Fatalf("expected merged values, got:\n%s", out)
	}

	buf.Reset()
	runShowConfig(&buf, cfg, true)
	if !strings.Contains(buf.String(), "DataPath") || !strings.Contains(buf.String(), "custom.json") {
		t.Fatalf("expected raw struct dump, got:\n%s", buf.String())
	}
}

func TestListCommands(t *testing.T) {
	var buf bytes.Buffer
	runListCommands(&buf, rootCmd)
	out := buf.String()
	for _, name := range []string{"render", "show", "browse", "serve", "export", "color", "validate", "config", "commands"} {
		if !strings.Contains(out, "esobench "+name) {
			t.Fatalf("expected command %q in list, got:\n%s", name, out)
		}
	}
	if strings.Contains(out, "completion") {
		t.Fatalf("completion should be hidden:\n%s", out)
	}
}

func TestBrowseCmdStartsBrowser(t *testing.T) {
	origBrowser := startBrowser
	origConfig := currentConfig
	t.Cleanup(func() {
		startBrowser = origBrowser
		currentConfig = origConfig
	})

	var gotModels int
	var gotState leaderboard.SortState
	startBrowser = func(board *leaderboard.Board, state leaderboard.SortState, title string) error {
		gotModels = board.Results().Len()
		gotState = state
		return nil
	}
	currentConfig = &appconfig.Config{DataPath: testResults, Sort: "solved", Direction: "asc"}

	if err := browseCmd.RunE(browseCmd, nil); err != nil {
		t.Fatalf("browse error: %v", err)
	}
	if gotModels != 3 {
		t.Fatalf("expected 3 models, got %d", gotModels)
	}
	if gotState != (leaderboard.SortState{Key: ranking.KeySolved, Direction: ranking.Ascending}) {
		t.Fatalf("unexpected sort state %s", gotState)
	}
}

func TestRootCommandLoadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.json")
	raw, err := json.Marshal(map[string]any{
		"dataPath":  testResults,
		"logFile":   filepath.Join(dir, "esobench.log"),
		"sort":      "solved",
		"direction": "asc",
		"gradient": []map[string]any{
			{"position": 0, "color": "black"},
			{"position": 100, "color": "#ffffff"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(cfgPath, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	origConfig := currentConfig
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		currentConfig = origConfig
		_ = logging.Close()
	})

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"--config", cfgPath, "export", "--format", "yaml"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute error: %v", err)
	}

	out := buf.String()
	if strings.Index(out, "model: Model B") > strings.Index(out, "model: Model A") {
		t.Fatalf("expected config sort (solved asc) to apply:\n%s", out)
	}
	if currentConfig == nil || len(currentConfig.Gradient) != 2 || currentConfig.ConfigPath != cfgPath {
		t.Fatalf("expected merged config to be stored, got %+v", currentConfig)
	}
	if _, err := os.Stat(filepath.Join(dir, "esobench.log")); err != nil {
		t.Fatalf("expected log file to be created: %v", err)
	}

	rootCmd.SetArgs([]string{"--config", filepath.Join(dir, "missing.json"), "validate"})
	if err := rootCmd.Execute(); err == nil || !strings.Contains(err.Error(), "failed to load config") {
		t.Fatalf("expected config load error, got %v", err)
	}
}
