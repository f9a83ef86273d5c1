/*
PURPOSE:
  Defines the root Cobra command for the GPA Tracker CLI.
  Without a subcommand it starts the interactive REPL.

REQUIREMENTS:
  User-specified:
  - Provide an interactive prompt for add/show/remove/import/gpa/drop/save/expect.
  - Support global flags like --config.

  Implementation-discovered:
  - Needs to expose an Execute() function for main.go.
  - Config and logger are set up once in PersistentPreRunE for every subcommand.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/gpa-tracker/main.go
  - Calls: Child commands (exec, summary, expect), internal/engine.Session
  - Modifies: Global configuration state (temporarily, until passed down).

ERROR HANDLING:
  - Returns error to main.go for exit code handling.
  - Errors inside the REPL never reach here; the Session reports them.

IMPLEMENTATION RULES:
  - Use `PersistentFlags()` for flags available to all subcommands.
  - Read from cmd.InOrStdin() and write to cmd.OutOrStdout() so tests can drive it.

USAGE:
  Called by main.go.

SELF-HEALING INSTRUCTIONS:
  - If adding new global flags, add them to init().

RELATED FILES:
  - cmd/gpa-tracker/main.go
  - internal/engine/session.go

MAINTENANCE:
  - Update when adding global configuration options.
*/

package cli

import (
	"github.com/daryltucker/gpa-tracker/internal/config"
	"github.com/daryltucker/gpa-tracker/internal/engine"
	"github.com/daryltucker/gpa-tracker/internal/output"
	"github.com/spf13/cobra"
)

var (
	// cfgFile stores the path to the config file (if specified via flag)
	cfgFile string
	// logLevel overrides the configured log level when set
	logLevel string
	// dataFile is imported before the first command is read
	dataFile string

	// cfg is loaded by PersistentPreRunE
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "gpa-tracker",
		Short: "Track subject results and compute a credit-weighted GPA",
		Long: `An interactive prompt for recording subject results (points and credit hours).

Commands:
  add <points> <credit>     record a result
  show                      list results with their index
  remove <index>            delete a result
  import <file>             replace all results with a file's contents
  save <file>               write results to a file
  gpa                       print the current GPA
  drop                      discard all results
  expect <gpa> <credit>     points needed on a new subject to reach <gpa>
  h, history                list everything entered so far
  q, quit                   leave`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := newSession(*cfg)
			if err != nil {
				return err
			}
			return session.Run(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		loaded.LogLevel = logLevel
	}
	if dataFile != "" {
		loaded.DataFile = dataFile
	}
	level, err := config.ParseLevel(loaded.LogLevel)
	if err != nil {
		return err
	}

	output.SetLogger(output.NewLogger(cmd.ErrOrStderr(), level))
	cfg = loaded
	return nil
}

// newSession creates a Session on the local disk and imports the
// configured data file, if any. The session gets its own copy of c.
func newSession(c config.Config) (*engine.Session, error) {
	session := engine.NewSession(&c, engine.OSFileSystem{})
	if c.DataFile != "" {
		if err := session.Load(c.DataFile); err != nil {
			return nil, err
		}
	}
	return session, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./gpa-tracker.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	addFileFlag(rootCmd)
}

// addFileFlag registers --file on commands that open a Session.
func addFileFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&dataFile, "file", "f", "", "results file to import at start")
}
