// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/CadeHall0/EsoBench/internal/colorscale"
	"github.com/CadeHall0/EsoBench/internal/leaderboard"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// defaultDataPath is where the benchmark publishes its aggregated results.
	defaultDataPath = "data/All_Results.json"
	// defaultOutputPath is where the HTML report is written.
	defaultOutputPath = "reports/leaderboard.html"
	// defaultLogFile is the log file used when the config omits one.
	defaultLogFile = "esobench.log"
	// defaultAddr is the listen address of the HTTP server.
	defaultAddr = ":8080"
)

// Config represents the top-level application configuration.
type Config struct {
	DataPath   string                `json:"dataPath"`
	Output     string                `json:"output,omitempty"`
	LogFile    string                `json:"logFile,omitempty"`
	Debug      bool                  `json:"debug"`
	Sort       string                `json:"sort,omitempty"`
	Direction  string                `json:"direction,omitempty"`
	Gradient   []colorscale.StopSpec `json:"gradient,omitempty"`
	Heatmap    Heatmap               `json:"heatmap"`
	TopN       int                   `json:"topN,omitempty"`
	ChartTasks ChartTasks            `json:"chartTasks"`
	Addr       string                `json:"addr,omitempty"`
	ConfigPath string                `json:"-"`
}

// Heatmap sets the dimensions of the per-model attempt grid.
type Heatmap struct {
	Tasks    int `json:"tasks,omitempty"`
	Attempts int `json:"attempts,omitempty"`
}

// ChartTasks names the series plotted on the scatter chart axes.
type ChartTasks struct {
	X string `json:"x,omitempty"`
	Y string `json:"y,omitempty"`
}

// DataFile returns the results file path, applying a default if not set.
func (c Config) DataFile() string {
	if p := strings.TrimSpace(c.DataPath); p != "" {
		return p
	}
	return defaultDataPath
}

// OutputPath returns the HTML report path, applying a default if not set.
func (c Config) OutputPath() string {
	if p := strings.TrimSpace(c.Output); p != "" {
		return p
	}
	return defaultOutputPath
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return defaultLogFile
}

// ListenAddr returns the server listen address.
func (c Config) ListenAddr() string {
	if a := strings.TrimSpace(c.Addr); a != "" {
		return a
	}
	return defaultAddr
}

// SortState returns the initial table ordering.
func (c Config) SortState() (leaderboard.SortState, error) {
	return leaderboard.ParseSortState(c.Sort, c.Direction)
}

// ColorScale builds the heatmap gradient. Without a configured gradient the
// default leaderboard theme is used.
func (c Config) ColorScale() (*colorscale.Scale, error) {
	if len(c.Gradient) == 0 {
		return colorscale.Default(), nil
	}
	return colorscale.ParseStops(c.Gradient)
}

// BoardOptions maps the config onto leaderboard options.
func (c Config) BoardOptions() leaderboard.Options {
	return leaderboard.Options{
		Tasks:    c.Heatmap.Tasks,
		Attempts: c.Heatmap.Attempts,
		TopN:     c.TopN,
		ScatterX: c.ChartTasks.X,
		ScatterY: c.ChartTasks.Y,
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if _, err := c.SortState(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.ColorScale(); err != nil {
		errs = append(errs, fmt.Errorf("gradient: %w", err))
	}
	if c.Heatmap.Tasks < 0 || c.Heatmap.Attempts < 0 {
		errs = append(errs, fmt.Errorf("heatmap dimensions must not be negative (tasks=%d, attempts=%d)", c.Heatmap.Tasks, c.Heatmap.Attempts))
	}
	if c.TopN < 0 {
		errs = append(errs, fmt.Errorf("topN must not be negative, got %d", c.TopN))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
