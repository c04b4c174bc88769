// internal/cli/export.go
package esobench

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/CadeHall0/EsoBench/internal/appconfig"
	"github.com/CadeHall0/EsoBench/internal/leaderboard"
	"github.com/CadeHall0/EsoBench/internal/logging"
	"github.com/CadeHall0/EsoBench/internal/util"
)

// exportCmd implements 'export', which writes the ranked rows as JSON or
// YAML to stdout or a file.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export ranked rows as JSON or YAML",
	Long:  `The 'export' command writes the ranked leaderboard rows in the configured sort order. Use --heatmap to include each model's heatmap colors.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		file, _ := cmd.Flags().GetString("file")
		heatmap, _ := cmd.Flags().GetBool("heatmap")
		return runExport(cmd.OutOrStdout(), getConfig(), exportOptions{Format: format, File: file, Heatmap: heatmap})
	},
}

func init() {
	exportCmd.Flags().StringP("format", "f", "json", "output format: json or yaml")
	exportCmd.Flags().String("file", "", "write to file instead of stdout")
	exportCmd.Flags().Bool("heatmap", false, "include heatmap colors")
	rootCmd.AddCommand(exportCmd)
}

type exportOptions struct {
	Format  string
	File    string
	Heatmap bool
}

type exportDocument struct {
	Sort    leaderboard.SortState `json:"sort" yaml:"sort"`
	Entries []leaderboard.Entry   `json:"entries" yaml:"entries"`
}

func runExport(out io.Writer, cfg *appconfig.Config, opts exportOptions) error {
	board, state, err := loadBoard(cfg)
	if err != nil {
		return err
	}
	doc := exportDocument{Sort: state, Entries: leaderboard.Entries(board.Rows(state), opts.Heatmap)}

	data, err := encodeExport(doc, opts.Format)
	if err != nil {
		return err
	}
	if opts.File == "" {
		_, err = out.Write(data)
		return err
	}
	if err := util.WriteFile(opts.File, data); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	logging.LogEvent("exported %d rows to %s", len(doc.Entries), opts.File)
	return nil
}

func encodeExport(doc exportDocument, format string) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case "yaml", "yml":
		return yaml.Marshal(doc)
	default:
		return nil, fmt.Errorf("unsupported export format %q (want json or yaml)", format)
	}
}
