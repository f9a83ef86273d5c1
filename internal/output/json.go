/*
PURPOSE:
  Writes a result-set summary as JSON or YAML.
  Optimized for machine parsing.

REQUIREMENTS:
  User-specified:
  - JSON output for easier parsing.

  Implementation-discovered:
  - YAML output reuses the same struct tags and the yaml.v3 encoder the config uses.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli (summary)
  - Consumes: internal/model.Summary

ERROR HANDLING:
  - Returns error on encode/write failure.

IMPLEMENTATION RULES:
  - Use encoding/json.NewEncoder with two-space indent.

USAGE:
  output.WriteJSON(os.Stdout, summary)

SELF-HEALING INSTRUCTIONS:
  - None specific.

RELATED FILES:
  - internal/model/summary.go

MAINTENANCE:
  - None.
*/

package output

import (
	"encoding/json"
	"io"

	"github.com/daryltucker/gpa-tracker/internal/model"
	"gopkg.in/yaml.v3"
)

// WriteJSON writes s as an indented JSON document.
func WriteJSON(w io.Writer, s model.Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// WriteYAML writes s as a YAML document.
func WriteYAML(w io.Writer, s model.Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}
