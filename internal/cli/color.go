// internal/cli/color.go
package esobench

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/CadeHall0/EsoBench/internal/appconfig"
	"github.com/CadeHall0/EsoBench/internal/colorscale"
)

var stopLabel = color.New(color.Bold).SprintFunc()

// colorCmd implements 'color', which prints the gradient color for scores.
var colorCmd = &cobra.Command{
	Use:   "color [score...]",
	Short: "Print heatmap colors for scores",
	Long:  `The 'color' command prints the configured gradient's color for each score argument. Without arguments it prints the gradient stops and a ramp from 0 to 100.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		step, _ := cmd.Flags().GetFloat64("step")
		return runColor(cmd.OutOrStdout(), getConfig(), args, step)
	},
}

func init() {
	colorCmd.Flags().Float64("step", 10, "ramp step when no scores are given")
	rootCmd.AddCommand(colorCmd)
}

func runColor(out io.Writer, cfg *appconfig.Config, args []string, step float64) error {
	scale, err := cfg.ColorScale()
	if err != nil {
		return fmt.Errorf("gradient: %w", err)
	}

	if len(args) > 0 {
		for _, arg := range args {
			score, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return fmt.Errorf("invalid score %q: %w", arg, err)
			}
			printSwatch(out, score, scale.ColorFor(score))
		}
		return nil
	}

	if step <= 0 {
		return fmt.Errorf("step must be positive, got %g", step)
	}
	fmt.Fprintln(out, stopLabel("Stops:"))
	for _, s := range scale.Stops() {
		printSwatch(out, s.Position, s.Color)
	}
	fmt.Fprintln(out, stopLabel("Ramp:"))
	for score := 0.0; score <= 100; score += step {
		printSwatch(out, score, scale.ColorFor(score))
	}
	return nil
}

func printSwatch(out io.Writer, score float64, c colorscale.RGB) {
	swatch := color.BgRGB(int(c.R), int(c.G), int(c.B)).Sprint("    ")
	fmt.Fprintf(out, "%6.1f  %s  %s  %s\n", score, swatch, c.Hex(), c.CSS())
}
