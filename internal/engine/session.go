/*
PURPOSE:
  The interactive session. Reads command lines, parses them, applies them to
  the ResultSet and writes the outcome back to the user.

REQUIREMENTS:
  User-specified:
  - Two states: Running and Terminated. Only quit terminates.
  - Every line (valid or not) is recorded in the history.
  - Errors are reported as "Error: ..." and the loop continues.

  Implementation-discovered:
  - End of input terminates the loop the same way quit does.
  - import replaces the set only once the new file decoded cleanly.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/command, internal/config, internal/engine (ResultSet), internal/output

ERROR HANDLING:
  - Dispatch errors are rendered and swallowed (resilience).
  - Run only returns errors from the input reader.

IMPLEMENTATION RULES:
  - No globals: the Session owns the ResultSet and the history.
  - Single goroutine, one blocking read per iteration.

USAGE:
  s := engine.NewSession(cfg, engine.OSFileSystem{})
  err := s.Run(os.Stdin, os.Stdout)

SELF-HEALING INSTRUCTIONS:
  - New command: add a case to dispatch.

RELATED FILES:
  - internal/command/parser.go
  - internal/engine/results.go

MAINTENANCE:
  - Update dispatch when the command vocabulary changes.
*/

package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/daryltucker/gpa-tracker/internal/command"
	"github.com/daryltucker/gpa-tracker/internal/config"
	"github.com/daryltucker/gpa-tracker/internal/model"
	"github.com/daryltucker/gpa-tracker/internal/output"
	"github.com/google/uuid"
)

// State is the lifecycle state of a Session.
type State int

const (
	Running State = iota
	Terminated
)

func (s State) String() string {
	if s == Terminated {
		return "terminated"
	}
	return "running"
}

// Session is one interactive REPL session.
type Session struct {
	ID string

	Config *config.Config
	FS     FileSystem

	state   State
	results *ResultSet
	history []string
}

// NewSession creates a running session with an empty result set.
func NewSession(cfg *config.Config, fsys FileSystem) *Session {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Session{
		ID:      uuid.NewString(),
		Config:  cfg,
		FS:      fsys,
		state:   Running,
		results: NewResultSet(),
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Results returns the current result set.
func (s *Session) Results() *ResultSet { return s.results }

// History returns a copy of the recorded input lines.
func (s *Session) History() []string {
	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}

// Load replaces the result set with the contents of name.
func (s *Session) Load(name string) error {
	data, err := s.FS.ReadFile(name)
	if err != nil {
		return &ReadError{Source: name, Err: err}
	}
	rs, err := DecodeResultSet(string(data))
	if err != nil {
		return fmt.Errorf("could not import %s: %w", name, err)
	}
	s.results = rs
	output.Logger.Info("Imported results", "session", s.ID, "file", name, "count", rs.Len())
	return nil
}

// Run reads lines from in until quit or end of input.
// Lines have no length limit; a final line without a newline is still handled.
func (s *Session) Run(in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)
	output.Logger.Debug("Session started", "session", s.ID)

	var readErr error
	for s.state == Running {
		if s.Config.Prompt != "" {
			fmt.Fprint(out, s.Config.Prompt)
		}
		line, err := reader.ReadString('\n')
		if line != "" {
			s.Handle(out, line)
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				readErr = err
			}
			s.state = Terminated
		}
	}

	output.Logger.Debug("Session ended", "session", s.ID, "lines", len(s.history))
	return readErr
}

// Handle processes a single input line and reports whether the session is
// still running.
func (s *Session) Handle(out io.Writer, line string) bool {
	if s.state == Terminated {
		return false
	}

	line = strings.TrimSpace(line)
	cmd, err := command.Parse(line)
	s.record(line)
	if err != nil {
		output.Logger.Debug("Rejected input", "session", s.ID, "line", line, "error", err)
		reportError(out, err)
		return true
	}

	if _, ok := cmd.(command.Quit); ok {
		s.state = Terminated
		return false
	}

	output.Logger.Debug("Dispatching command", "session", s.ID, "command", cmd.Keyword())
	if err := s.dispatch(out, cmd); err != nil {
		output.Logger.Warn("Command failed", "session", s.ID, "command", cmd.Keyword(), "error", err)
		reportError(out, err)
	}
	return true
}

func (s *Session) dispatch(out io.Writer, cmd command.Command) error {
	switch c := cmd.(type) {
	case command.Add:
		s.results.Add(model.New(c.Points, c.Credit))

	case command.Show:
		for i, encoded := range s.results.List() {
			fmt.Fprintf(out, "  [%d] %s\n", i, encoded)
		}

	case command.Remove:
		return s.results.Remove(c.Index)

	case command.Import:
		return s.Load(c.Filename)

	case command.Drop:
		s.results = NewResultSet()

	case command.Gpa:
		fmt.Fprintln(out, FormatGPA(s.results.GPA(), s.Config.GPAPrecision))

	case command.Save:
		if err := s.results.Persist(s.FS, c.Filename); err != nil {
			return err
		}
		output.Logger.Info("Saved results", "session", s.ID, "file", c.Filename, "count", s.results.Len())

	case command.Expect:
		points, err := s.results.ProjectRequiredPoints(c.TargetGPA, c.Credit)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, points)

	case command.History:
		for _, line := range s.history {
			fmt.Fprintln(out, line)
		}

	default:
		return fmt.Errorf("unsupported command: %s", cmd.Keyword())
	}
	return nil
}

func (s *Session) record(line string) {
	s.history = append(s.history, line)
	if limit := s.Config.HistoryLimit; limit > 0 && len(s.history) > limit {
		s.history = s.history[len(s.history)-limit:]
	}
}

func reportError(out io.Writer, err error) {
	fmt.Fprintf(out, "Error: %v\n", err)
}

// FormatGPA renders a GPA with the given number of decimals.
// A negative precision uses the shortest exact representation.
func FormatGPA(gpa float64, precision int) string {
	return strconv.FormatFloat(gpa, 'f', precision, 64)
}
