package command

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrNoCommandProvided is returned for an empty line.
var ErrNoCommandProvided = errors.New("expected command, no command provided")

// UnknownCommandError reports a keyword outside the vocabulary.
type UnknownCommandError struct {
	Raw string
}

func (e *UnknownCommandError) Error() string {
	return "unknown command: " + e.Raw
}

// ArityError reports a wrong number of arguments for a known keyword.
type ArityError struct {
	Keyword  string
	Expected int
	Actual   int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s: incorrect number of arguments: expected %d got %d", e.Keyword, e.Expected, e.Actual)
}

// TypeError reports an argument that does not parse as its required type.
type TypeError struct {
	Value string
	Kind  string // "unsigned integer" or "number"
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("could not parse %q as %s", e.Value, e.Kind)
}

// Parse turns one input line into a Command.
// Tokens are separated by single spaces; the caller trims the line.
func Parse(line string) (Command, error) {
	if line == "" {
		return nil, ErrNoCommandProvided
	}

	tokens := strings.Split(line, " ")
	keyword, args := tokens[0], tokens[1:]

	// Quit and History take no arguments and ignore any that are given.
	switch keyword {
	case "q", "quit":
		return Quit{}, nil
	case "h", "history":
		return History{}, nil
	}

	switch keyword {
	case "add":
		if err := checkArgs(keyword, 2, args); err != nil {
			return nil, err
		}
		points, err := parseUint(args[0])
		if err != nil {
			return nil, err
		}
		credit, err := parseUint(args[1])
		if err != nil {
			return nil, err
		}
		return Add{Points: points, Credit: credit}, nil

	case "show":
		if err := checkArgs(keyword, 0, args); err != nil {
			return nil, err
		}
		return Show{}, nil

	case "remove":
		if err := checkArgs(keyword, 1, args); err != nil {
			return nil, err
		}
		index, err := parseIndex(args[0])
		if err != nil {
			return nil, err
		}
		return Remove{Index: index}, nil

	case "import":
		if err := checkArgs(keyword, 1, args); err != nil {
			return nil, err
		}
		return Import{Filename: args[0]}, nil

	case "gpa":
		if err := checkArgs(keyword, 0, args); err != nil {
			return nil, err
		}
		return Gpa{}, nil

	case "drop":
		if err := checkArgs(keyword, 0, args); err != nil {
			return nil, err
		}
		return Drop{}, nil

	case "save":
		if err := checkArgs(keyword, 1, args); err != nil {
			return nil, err
		}
		return Save{Filename: args[0]}, nil

	case "expect":
		if err := checkArgs(keyword, 2, args); err != nil {
			return nil, err
		}
		target, err := parseFloat(args[0])
		if err != nil {
			return nil, err
		}
		credit, err := parseUint(args[1])
		if err != nil {
			return nil, err
		}
		return Expect{TargetGPA: target, Credit: credit}, nil
	}

	return nil, &UnknownCommandError{Raw: line}
}

func checkArgs(keyword string, expected int, args []string) error {
	if len(args) != expected {
		return &ArityError{Keyword: keyword, Expected: expected, Actual: len(args)}
	}
	return nil
}

// ParseUint parses a non-negative integer argument.
func ParseUint(s string) (uint32, error) {
	return parseUint(s)
}

// ParseFloat parses a finite floating point argument.
func ParseFloat(s string) (float64, error) {
	return parseFloat(s)
}

func parseUint(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, &TypeError{Value: s, Kind: "unsigned integer"}
	}
	return uint32(v), nil
}

func parseIndex(s string) (int, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil || v > math.MaxInt {
		return 0, &TypeError{Value: s, Kind: "index"}
	}
	return int(v), nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &TypeError{Value: s, Kind: "number"}
	}
	return v, nil
}
