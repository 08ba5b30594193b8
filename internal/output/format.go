package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// OutputFormat specifies how command results are written.
type OutputFormat string

const (
	// FormatText writes styled, human-readable output.
	FormatText OutputFormat = "text"

	// FormatYAML writes YAML.
	FormatYAML OutputFormat = "yaml"

	// FormatJSON writes indented JSON.
	FormatJSON OutputFormat = "json"
)

// String returns the string representation of the output format.
func (f OutputFormat) String() string {
	return string(f)
}

// IsValid checks if the output format is valid.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatYAML, FormatJSON:
		return true
	default:
		return false
	}
}

// ParseOutputFormat parses s case-insensitively. Unknown values are returned
// as-is so callers can reject them with IsValid.
func ParseOutputFormat(s string) OutputFormat {
	switch strings.ToLower(s) {
	case "", "text":
		return FormatText
	case "yaml", "yml":
		return FormatYAML
	case "json":
		return FormatJSON
	default:
		return OutputFormat(s)
	}
}

// ValidFormats returns the accepted format names.
func ValidFormats() []string {
	return []string{"text", "yaml", "json"}
}

// Encode writes v to w as YAML or JSON.
func Encode(w io.Writer, format OutputFormat, v any) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("format %q cannot encode structured data", format)
	}
}
