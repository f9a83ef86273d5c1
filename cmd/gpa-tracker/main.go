/*
PURPOSE:
  Entry point for the gpa-tracker binary.
  Hands control to the cobra root, which opens the results prompt or runs
  one of the one-shot subcommands (exec, summary, expect).

REQUIREMENTS:
  User-specified:
  - Only `quit` (or end of input) ends an interactive session; mistakes
    typed at the prompt are reported there and never reach main.

  Implementation-discovered:
  - Only setup failures reach main: a bad config file or log level, a
    missing --file, an unreadable script, a results file that fails to decode.

ARCHITECTURE INTEGRATION:
  - Calls: internal/cli.Execute()
  - cobra reads os.Args itself; stdin/stdout are wired in internal/cli/root.go.

ERROR HANDLING:
  - Prints "Error: <message>" to stderr (same prefix the prompt uses) and exits 1.

IMPLEMENTATION RULES:
  - No state here: config, logger and the Session live in internal/.

USAGE:
  go build -o gpa-tracker ./cmd/gpa-tracker
  ./gpa-tracker -f grades.txt
  ./gpa-tracker summary grades.txt --format json

SELF-HEALING INSTRUCTIONS:
  - If a subcommand is missing from --help, check its init() in internal/cli.

RELATED FILES:
  - internal/cli/root.go - root command, config and logger setup.

MAINTENANCE:
  - Update when an exit code other than 1 is needed (e.g. distinct code for decode failures).
*/

package main

import (
	"fmt"
	"os"

	"github.com/daryltucker/gpa-tracker/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
