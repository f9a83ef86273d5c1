/*
PURPOSE:
  Defines the core data structure tracked by GPA Tracker.
  A SubjectResult is one completed subject: the points earned and the
  credit-hour weight of the subject.

REQUIREMENTS:
  User-specified:
  - Record points and credit as non-negative integers.
  - One line of text per result: "<points> <credit>".

  Implementation-discovered:
  - Decode must reject anything that is not exactly two tokens.
  - Decode(r.Encode()) == r for every value (round trip).

ARCHITECTURE INTEGRATION:
  - Used by: internal/engine (ResultSet), internal/output (summaries)
  - Shared across boundaries.

ERROR HANDLING:
  - Decode returns *ParseError; no panics.

IMPLEMENTATION RULES:
  - Keep the struct small, public and comparable.
  - Split on a single space, exactly like the file format.

USAGE:
  r := model.New(90, 3)
  r, err := model.Decode("90 3")

SELF-HEALING INSTRUCTIONS:
  - If the file format grows a field, update Decode, Encode and the tests together.

RELATED FILES:
  - internal/engine/results.go

MAINTENANCE:
  - Update when the persisted line format changes.
*/

package model

import (
	"fmt"
	"strconv"
	"strings"
)

// SubjectResult represents the outcome of a single completed subject.
type SubjectResult struct {
	Points uint32 `json:"points" yaml:"points"`
	Credit uint32 `json:"credit" yaml:"credit"`
}

// ParseError reports a line that could not be decoded into a SubjectResult.
type ParseError struct {
	Line   string
	Fields int    // token count found on the line
	Value  string // offending token; empty when the token count is wrong
}

func (e *ParseError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("could not parse %q: expected 2 fields, got %d", e.Line, e.Fields)
	}
	return fmt.Sprintf("could not parse %q: %q is not a non-negative integer", e.Line, e.Value)
}

// New creates a SubjectResult.
func New(points, credit uint32) SubjectResult {
	return SubjectResult{Points: points, Credit: credit}
}

// Decode parses a "<points> <credit>" line.
func Decode(line string) (SubjectResult, error) {
	fields := strings.Split(line, " ")
	if len(fields) != 2 {
		return SubjectResult{}, &ParseError{Line: line, Fields: len(fields)}
	}

	points, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return SubjectResult{}, &ParseError{Line: line, Fields: 2, Value: fields[0]}
	}
	credit, err := strconv.ParseUint(fields[1], 10, 32)
	if err != nil {
		return SubjectResult{}, &ParseError{Line: line, Fields: 2, Value: fields[1]}
	}

	return New(uint32(points), uint32(credit)), nil
}

// Encode renders the result in its persisted form.
func (r SubjectResult) Encode() string {
	return strconv.FormatUint(uint64(r.Points), 10) + " " + strconv.FormatUint(uint64(r.Credit), 10)
}

func (r SubjectResult) String() string {
	return r.Encode()
}

// WeightedPoints is points multiplied by credit.
func (r SubjectResult) WeightedPoints() uint64 {
	return uint64(r.Points) * uint64(r.Credit)
}
