package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	if cfg == nil {
		cfg = &Config{}
	}
	opts := cfg.BoardOptions().WithDefaults()

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Debug:           %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Results File:    %s\n", cfg.DataFile())
	fmt.Fprintf(out, "  Report Output:   %s\n", cfg.OutputPath())
	fmt.Fprintf(out, "  Log File:        %s\n", cfg.LogFilePath())
	fmt.Fprintf(out, "  Listen Address:  %s\n", cfg.ListenAddr())

	if state, err := cfg.SortState(); err != nil {
		fmt.Fprintf(out, "  Sort:            invalid (%v)\n", err)
	} else {
		fmt.Fprintf(out, "  Sort:            %s\n", state)
	}

	fmt.Fprintf(out, "  Heatmap:         %d tasks x %d attempts\n", opts.Tasks, opts.Attempts)
	fmt.Fprintf(out, "  Top N:           %d\n", opts.TopN)
	fmt.Fprintf(out, "  Scatter Axes:    %s / %s\n", opts.ScatterX, opts.ScatterY)

	scale, err := cfg.ColorScale()
	if err != nil {
		fmt.Fprintf(out, "  Gradient:        invalid (%v)\n", err)
		return
	}
	fmt.Fprintln(out, "  Gradient:")
	for _, s := range scale.Stops() {
		fmt.Fprintf(out, "    %6.1f  %s\n", s.Position, s.Color.Hex())
	}
}
