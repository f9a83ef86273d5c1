package cli

import (
	"fmt"

	"github.com/daryltucker/gpa-tracker/internal/command"
	"github.com/spf13/cobra"
)

var expectCmd = &cobra.Command{
	Use:   "expect <file> <target-gpa> <credit>",
	Short: "Points needed on a new subject to reach a target GPA",
	Example: `  # What do I need on a 3-credit subject to reach 85?
  gpa-tracker expect grades.txt 85 3`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := command.ParseFloat(args[1])
		if err != nil {
			return err
		}
		credit, err := command.ParseUint(args[2])
		if err != nil {
			return err
		}

		rs, err := loadResultSet(args[0])
		if err != nil {
			return err
		}
		points, err := rs.ProjectRequiredPoints(target, credit)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), points)
		return err
	},
}

func init() {
	rootCmd.AddCommand(expectCmd)
}
