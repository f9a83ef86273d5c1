package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/daryltucker/gpa-tracker/internal/model"
)

// Formats lists the accepted summary formats.
var Formats = []string{"text", "csv", "json", "yaml"}

// WriteSummary renders s in the named format.
// precision only applies to the text and csv formats.
func WriteSummary(w io.Writer, format string, s model.Summary, precision int) error {
	switch format {
	case "", "text":
		return WriteText(w, s, precision)
	case "csv":
		cw, err := NewCSVWriter(w)
		if err != nil {
			return err
		}
		return cw.Write(s, precision)
	case "json":
		return WriteJSON(w, s)
	case "yaml":
		return WriteYAML(w, s)
	}
	return fmt.Errorf("unknown format %q (want one of %v)", format, Formats)
}

// WriteText writes the same listing the REPL "show" command prints,
// followed by the totals.
func WriteText(w io.Writer, s model.Summary, precision int) error {
	if s.Source != "" {
		if _, err := fmt.Fprintf(w, "%s\n", s.Source); err != nil {
			return err
		}
	}
	for i, r := range s.Results {
		if _, err := fmt.Fprintf(w, "  [%d] %s\n", i, r.Encode()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "results: %d\ncredits: %d\ngpa: %s\n",
		s.Count, s.TotalCredits, strconv.FormatFloat(s.GPA, 'f', precision, 64))
	return err
}
