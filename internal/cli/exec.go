/*
PURPOSE:
  Defines the 'exec' subcommand.
  Runs a script of REPL commands without a prompt.

REQUIREMENTS:
  User-specified:
  - Same commands and output as the interactive prompt.

  Implementation-discovered:
  - "-" reads the script from stdin, so pipes work.
  - The prompt is suppressed so the output is just command output.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.Session.Run()
  - Uses: internal/config

ERROR HANDLING:
  - Returns error if the script cannot be opened.
  - Command errors are printed inline, like the REPL.

IMPLEMENTATION RULES:
  - Setup flags in init().

USAGE:
  gpa-tracker exec commands.txt
  printf 'add 90 3\ngpa\n' | gpa-tracker exec -

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - None.
*/

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var execCmd = &cobra.Command{
	Use:   "exec <script|->",
	Short: "Run a file of commands non-interactively",
	Example: `  # Run a prepared script
  gpa-tracker exec semester.txt

  # Pipe commands in
  printf 'import grades.txt\ngpa\n' | gpa-tracker exec -`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var in io.Reader = cmd.InOrStdin()
		if args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open script: %w", err)
			}
			defer f.Close()
			in = f
		}

		c := *cfg
		c.Prompt = ""
		session, err := newSession(c)
		if err != nil {
			return err
		}
		return session.Run(in, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(execCmd)
	addFileFlag(execCmd)
}
