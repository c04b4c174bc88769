// internal/cli/validate.go
package esobench

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/CadeHall0/EsoBench/internal/leaderboard"
)

// validateCmd implements 'validate', which checks a results file against
// the results schema.
var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a results file",
	Long:  `The 'validate' command checks a results file (default: the configured one) against the results schema and reports every violation.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := getConfig().DataFile()
		if len(args) == 1 {
			path = args[0]
		}
		return runValidate(cmd.OutOrStdout(), path)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(out io.Writer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read results: %w", err)
	}
	results, err := leaderboard.Parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	fmt.Fprintf(out, "%s: OK (%d models)\n", path, results.Len())
	return nil
}
