/*
PURPOSE:
  Writes a result-set summary as CSV.

REQUIREMENTS:
  User-specified:
  - Spreadsheet-friendly output for `summary --format csv`.

  Implementation-discovered:
  - One row per result, then a "total" row carrying credits and GPA.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli (summary)
  - Consumes: internal/model.Summary

ERROR HANDLING:
  - Returns error on write failure.

IMPLEMENTATION RULES:
  - Use encoding/csv.
  - Flush() after every record.

USAGE:
  w, err := output.NewCSVWriter(os.Stdout)
  w.Write(summary, 2)

SELF-HEALING INSTRUCTIONS:
  - If CSV format changes, update header and record conversion.

RELATED FILES:
  - internal/model/summary.go

MAINTENANCE:
  - Update Write() mapping when Summary struct changes.
*/

package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/daryltucker/gpa-tracker/internal/model"
)

// CSVWriter handles writing summaries as CSV.
type CSVWriter struct {
	writer *csv.Writer
}

// NewCSVWriter creates a new CSVWriter and writes the header row.
func NewCSVWriter(w io.Writer) (*CSVWriter, error) {
	cw := csv.NewWriter(w)

	header := []string{"index", "points", "credit", "gpa"}
	if err := cw.Write(header); err != nil {
		return nil, err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, err
	}

	return &CSVWriter{writer: cw}, nil
}

// Write writes one row per result followed by a total row.
func (cw *CSVWriter) Write(s model.Summary, precision int) error {
	for i, r := range s.Results {
		record := []string{
			strconv.Itoa(i),
			strconv.FormatUint(uint64(r.Points), 10),
			strconv.FormatUint(uint64(r.Credit), 10),
			"",
		}
		if err := cw.writer.Write(record); err != nil {
			return err
		}
	}

	total := []string{
		"total",
		"",
		strconv.FormatUint(s.TotalCredits, 10),
		strconv.FormatFloat(s.GPA, 'f', precision, 64),
	}
	if err := cw.writer.Write(total); err != nil {
		return err
	}
	cw.writer.Flush()
	return cw.writer.Error()
}
