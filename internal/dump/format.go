package dump

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
)

// Format selects which decoder handles an input document.
type Format string

const (
	// FormatAuto picks a decoder from the file extension, defaulting to text.
	FormatAuto Format = "auto"
	// FormatText is the sentinel-delimited key=value block.
	FormatText Format = "text"
	// FormatJSON is the structured document in JSON syntax.
	FormatJSON Format = "json"
	// FormatHCL is the structured document in native HCL syntax.
	FormatHCL Format = "hcl"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatAuto, FormatText, FormatJSON, FormatHCL:
		return f, nil
	default:
		return "", fmt.Errorf("unknown dump format %q", s)
	}
}

// DetectFormat infers a concrete format from the filename extension. Text is
// the default because the dump is normally piped straight out of the solver.
func DetectFormat(filename string) Format {
	switch filepath.Ext(filename) {
	case ".json":
		return FormatJSON
	case ".hcl":
		return FormatHCL
	default:
		return FormatText
	}
}

// Parse decodes src in the given format, resolving FormatAuto from the
// filename first.
func Parse(src []byte, filename string, format Format) (*Automaton, error) {
	if format == FormatAuto {
		format = DetectFormat(filename)
	}
	switch format {
	case FormatText:
		return ParseText(bytes.NewReader(src))
	case FormatJSON:
		return ParseStructured(src, filename, true)
	case FormatHCL:
		return ParseStructured(src, filename, false)
	default:
		return nil, fmt.Errorf("unknown dump format %q", format)
	}
}
