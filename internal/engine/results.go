/*
PURPOSE:
  The results aggregator. Owns the ordered list of subject results and keeps
  the credit-weighted GPA and total credits in step with it.

REQUIREMENTS:
  User-specified:
  - add / remove / list / persist / decode / what-if projection.
  - gpa == sum(points*credit) / total_credits, or 0 with no credits,
    after every mutation.

  Implementation-discovered:
  - Keeping the weighted points sum as an exact integer lets Add update
    incrementally while Remove and Decode recompute from scratch, and both
    land on the same value with no floating-point drift.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine/session.go, internal/cli (summary, expect)
  - Uses: internal/model

ERROR HANDLING:
  - Typed errors: OutOfBoundsError, WriteError, ReadError, InvalidArgumentError.
  - A failing operation leaves the set untouched.

IMPLEMENTATION RULES:
  - Entries are addressed by position only.
  - Never expose the backing slice.

USAGE:
  rs := engine.NewResultSet()
  rs.Add(model.New(90, 3))
  err := rs.Remove(0)

SELF-HEALING INSTRUCTIONS:
  - If GPA values look off, check recompute() and the weighted sum first.

RELATED FILES:
  - internal/model/subject.go
  - internal/engine/session.go

MAINTENANCE:
  - Update when new aggregate statistics are tracked.
*/

package engine

import (
	"bufio"
	"fmt"
	"iter"
	"math"
	"strings"

	"github.com/daryltucker/gpa-tracker/internal/model"
)

// OutOfBoundsError reports a removal index past the end of the set.
type OutOfBoundsError struct {
	Index int
	Len   int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("cannot remove result, index %d is out of bounds (have %d)", e.Index, e.Len)
}

// ReadError reports a results file that could not be read.
type ReadError struct {
	Source string
	Err    error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("could not read file %s: %v", e.Source, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports a results file that could not be written.
type WriteError struct {
	Target string
	Err    error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("could not write file %s: %v", e.Target, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// InvalidArgumentError reports an argument outside the accepted domain.
type InvalidArgumentError struct {
	Name   string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Name, e.Reason)
}

// ResultSet is an ordered collection of subject results with a running GPA.
type ResultSet struct {
	gpa            float64
	totalCredits   uint64
	weightedPoints uint64
	results        []model.SubjectResult
}

// NewResultSet returns an empty set.
func NewResultSet() *ResultSet {
	return &ResultSet{}
}

// DecodeResultSet builds a set from the persisted text format.
// Blank lines are skipped; a trailing carriage return is tolerated.
func DecodeResultSet(data string) (*ResultSet, error) {
	rs := NewResultSet()
	for i, line := range strings.Split(data, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		r, err := model.Decode(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		rs.results = append(rs.results, r)
	}
	rs.recompute()
	return rs, nil
}

// GPA returns the credit-weighted mean of points.
func (rs *ResultSet) GPA() float64 { return rs.gpa }

// TotalCredits returns the sum of all credits.
func (rs *ResultSet) TotalCredits() uint64 { return rs.totalCredits }

// Len returns the number of stored results.
func (rs *ResultSet) Len() int { return len(rs.results) }

// Results returns a copy of the stored results in order.
func (rs *ResultSet) Results() []model.SubjectResult {
	out := make([]model.SubjectResult, len(rs.results))
	copy(out, rs.results)
	return out
}

// Add appends r and updates the totals incrementally.
func (rs *ResultSet) Add(r model.SubjectResult) {
	rs.totalCredits += uint64(r.Credit)
	rs.weightedPoints += r.WeightedPoints()
	rs.gpa = mean(rs.weightedPoints, rs.totalCredits)
	rs.results = append(rs.results, r)
}

// Remove deletes the result at index and recomputes the totals from scratch.
func (rs *ResultSet) Remove(index int) error {
	if index < 0 || index >= len(rs.results) {
		return &OutOfBoundsError{Index: index, Len: len(rs.results)}
	}
	rs.results = append(rs.results[:index:index], rs.results[index+1:]...)
	rs.recompute()
	return nil
}

// List yields (index, encoded result) pairs in storage order.
// The sequence can be ranged over any number of times.
func (rs *ResultSet) List() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, r := range rs.results {
			if !yield(i, r.Encode()) {
				return
			}
		}
	}
}

// Encode renders the set in the persisted text format.
func (rs *ResultSet) Encode() string {
	var b strings.Builder
	for _, r := range rs.results {
		b.WriteString(r.Encode())
		b.WriteByte('\n')
	}
	return b.String()
}

// Persist writes the set to target, one result per line.
func (rs *ResultSet) Persist(fsys FileSystem, target string) error {
	f, err := fsys.Create(target)
	if err != nil {
		return &WriteError{Target: target, Err: err}
	}

	w := bufio.NewWriter(f)
	for _, r := range rs.results {
		if _, err := w.WriteString(r.Encode() + "\n"); err != nil {
			f.Close()
			return &WriteError{Target: target, Err: err}
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return &WriteError{Target: target, Err: err}
	}
	if err := f.Close(); err != nil {
		return &WriteError{Target: target, Err: err}
	}
	return nil
}

// ProjectRequiredPoints returns the minimum whole number of points needed on
// an extra subject worth credit to bring the GPA to targetGPA. It returns 0
// when the target is already met.
func (rs *ResultSet) ProjectRequiredPoints(targetGPA float64, credit uint32) (uint64, error) {
	if credit == 0 {
		return 0, &InvalidArgumentError{Name: "credit", Reason: "must be greater than zero"}
	}
	if math.IsNaN(targetGPA) || math.IsInf(targetGPA, 0) || targetGPA < 0 {
		return 0, &InvalidArgumentError{Name: "target gpa", Reason: "must be a finite non-negative number"}
	}

	required := targetGPA * float64(rs.totalCredits+uint64(credit))
	needed := math.Ceil((required - float64(rs.weightedPoints)) / float64(credit))
	if needed <= 0 {
		return 0, nil
	}
	if needed >= math.MaxUint64 {
		return 0, &InvalidArgumentError{Name: "target gpa", Reason: "required points exceed the representable range"}
	}
	return uint64(needed), nil
}

func (rs *ResultSet) recompute() {
	rs.totalCredits = 0
	rs.weightedPoints = 0
	for _, r := range rs.results {
		rs.totalCredits += uint64(r.Credit)
		rs.weightedPoints += r.WeightedPoints()
	}
	rs.gpa = mean(rs.weightedPoints, rs.totalCredits)
}

func mean(weighted, credits uint64) float64 {
	if credits == 0 {
		return 0
	}
	return float64(weighted) / float64(credits)
}
