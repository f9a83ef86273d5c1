/*
PURPOSE:
  Defines the closed set of commands understood by the GPA Tracker REPL.

REQUIREMENTS:
  User-specified:
  - Fixed vocabulary: add, show, remove, import, gpa, drop, save, expect,
    q/quit, h/history.

  Implementation-discovered:
  - Commands must only be constructible through Parse, so the set is sealed
    with an unexported marker method.

ARCHITECTURE INTEGRATION:
  - Produced by: internal/command/parser.go
  - Consumed by: internal/engine/session.go (type switch)

ERROR HANDLING:
  - None (pure data types).

IMPLEMENTATION RULES:
  - One struct per keyword; fields hold already-validated arguments.

USAGE:
  cmd, err := command.Parse("add 90 3")

SELF-HEALING INSTRUCTIONS:
  - New command: add the struct here, a case in Parse, a case in Session.dispatch.

RELATED FILES:
  - internal/command/parser.go
  - internal/engine/session.go

MAINTENANCE:
  - Update when the vocabulary changes.
*/

package command

// Command is one parsed REPL command.
type Command interface {
	// Keyword returns the canonical keyword of the command.
	Keyword() string
	command()
}

// Add records a new subject result.
type Add struct {
	Points uint32
	Credit uint32
}

// Show lists the stored results.
type Show struct{}

// Remove deletes the result at Index.
type Remove struct {
	Index int
}

// Import replaces the current results with the contents of Filename.
type Import struct {
	Filename string
}

// Gpa reports the current grade-point average.
type Gpa struct{}

// Drop discards all results.
type Drop struct{}

// Save writes the current results to Filename.
type Save struct {
	Filename string
}

// Expect projects the points needed on a future subject of weight Credit
// to reach TargetGPA.
type Expect struct {
	TargetGPA float64
	Credit    uint32
}

// Quit ends the session.
type Quit struct{}

// History lists every line entered so far.
type History struct{}

func (Add) Keyword() string { return "add" }
func (Show) Keyword() string { return "show" }
func (Remove) Keyword() string { return "remove" }
func (Import) Keyword() string { return "import" }
func (Gpa) Keyword() string { return "gpa" }
func (Drop) Keyword() string { return "drop" }
func (Save) Keyword() string { return "save" }
func (Expect) Keyword() string { return "expect" }
func (Quit) Keyword() string { return "quit" }
func (History) Keyword() string { return "history" }

func (Add) command() {}
func (Show) command() {}
func (Remove) command() {}
func (Import) command() {}
func (Gpa) command() {}
func (Drop) command() {}
func (Save) command() {}
func (Expect) command() {}
func (Quit) command() {}
func (History) command() {}
