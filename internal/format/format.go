package format

import (
	"encoding/json"
	"fmt"
	"strings"
)

// OutputFormat represents the output format of listing commands
type OutputFormat string

const (
	// Text format outputs one human readable line per item.
	Text OutputFormat = "text"

	// JSON format outputs the items as an indented JSON document.
	JSON OutputFormat = "json"
)

// String returns the string representation of the OutputFormat
func (f OutputFormat) String() string {
	return string(f)
}

// SupportedFormats is a list of all supported output formats as strings
var SupportedFormats = []string{
	string(Text),
	string(JSON),
}

// Parse converts a string to an OutputFormat
func Parse(s string) (OutputFormat, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	switch s {
	case string(Text), "":
		return Text, nil
	case string(JSON):
		return JSON, nil
	default:
		return "", fmt.Errorf("invalid format: %s", s)
	}
}

// GetHelpText returns a formatted string describing all supported formats
func GetHelpText() string {
	return fmt.Sprintf("Output format (%s)", strings.Join(SupportedFormats, ", "))
}

// FormatOutput renders text as is for the text format, or data as JSON.
func FormatOutput(text string, data any, f OutputFormat) (string, error) {
	switch f {
	case JSON:
		jsonBytes, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal output into JSON: %w", err)
		}
		return string(jsonBytes) + "\n", nil
	default:
		return text, nil
	}
}
