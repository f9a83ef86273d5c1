/*
PURPOSE:
  Defines the 'summary' subcommand.
  Prints a one-shot report of a results file.

REQUIREMENTS:
  User-specified:
  - Show the results and GPA of a file without opening the prompt.

  Implementation-discovered:
  - text, csv, json and yaml renderings for scripts and spreadsheets.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.DecodeResultSet(), internal/output.WriteSummary()

ERROR HANDLING:
  - Returns read/decode errors to main.go.

IMPLEMENTATION RULES:
  - Simple output to stdout.

USAGE:
  gpa-tracker summary grades.txt --format json

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/output/summary.go

MAINTENANCE:
  - None.
*/

package cli

import (
	"fmt"

	"github.com/daryltucker/gpa-tracker/internal/engine"
	"github.com/daryltucker/gpa-tracker/internal/model"
	"github.com/daryltucker/gpa-tracker/internal/output"
	"github.com/spf13/cobra"
)

var summaryFormat string

var summaryCmd = &cobra.Command{
	Use:   "summary <file>",
	Short: "Print the results and GPA stored in a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rs, err := loadResultSet(args[0])
		if err != nil {
			return err
		}

		s := model.Summary{
			Source:       args[0],
			Count:        rs.Len(),
			TotalCredits: rs.TotalCredits(),
			GPA:          rs.GPA(),
			Results:      rs.Results(),
		}
		return output.WriteSummary(cmd.OutOrStdout(), summaryFormat, s, cfg.GPAPrecision)
	},
}

func loadResultSet(path string) (*engine.ResultSet, error) {
	data, err := engine.OSFileSystem{}.ReadFile(path)
	if err != nil {
		return nil, &engine.ReadError{Source: path, Err: err}
	}
	rs, err := engine.DecodeResultSet(string(data))
	if err != nil {
		return nil, fmt.Errorf("could not import %s: %w", path, err)
	}
	output.Logger.Debug("Loaded results", "file", path, "count", rs.Len())
	return rs, nil
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().StringVar(&summaryFormat, "format", "text", fmt.Sprintf("output format %v", output.Formats))
}
