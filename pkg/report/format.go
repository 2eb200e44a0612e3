package report

import (
	"errors"
	"fmt"
)

// ErrUnknownFormat is returned when an output format is not recognized.
var ErrUnknownFormat = errors.New("unknown format")

// Format represents an output format for check results.
type Format string

// Output formats supported by the report package.
const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatSARIF Format = "sarif"
)

// ParseFormat parses a format string, returning an error for unknown formats.
// The empty string parses as FormatText.
func ParseFormat(formatStr string) (Format, error) {
	switch formatStr {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "sarif":
		return FormatSARIF, nil
	default:
		return "", fmt.Errorf("%w %q; valid formats: text, json, sarif", ErrUnknownFormat, formatStr)
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatSARIF:
		return true
	default:
		return false
	}
}
