package output

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"workday/workday"
)

type Writer interface {
	Write(w io.Writer, summary workday.Summary) error
}

type Options struct {
	// Color enables ANSI styling in the text report.
	Color bool
}

func SupportedFormats() []string {
	return []string{"text", "json", "yaml", "csv", "excel"}
}

func WriterForFormat(format string, opts Options) (Writer, error) {
	switch normalizeFormat(format) {
	case "", "text", "txt":
		return &TextWriter{Color: opts.Color}, nil
	case "json":
		return &JSONWriter{}, nil
	case "yaml", "yml":
		return &YAMLWriter{}, nil
	case "csv":
		return &CSVWriter{}, nil
	case "excel", "xlsx":
		return &ExcelWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// DetectFormat infers the output format from a file extension, defaulting to
// text.
func DetectFormat(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "csv":
		return "csv"
	case "xlsx", "xlsm":
		return "excel"
	case "json":
		return "json"
	case "yaml", "yml":
		return "yaml"
	default:
		return "text"
	}
}

// IsBinary reports formats that must not be written to a terminal.
func IsBinary(format string) bool {
	switch normalizeFormat(format) {
	case "excel", "xlsx":
		return true
	default:
		return false
	}
}

func normalizeFormat(input string) string {
	return strings.TrimSpace(strings.ToLower(input))
}
