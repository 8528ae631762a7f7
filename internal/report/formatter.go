package report

import (
	"fmt"
	"io"

	"github.com/changeset-tools/cslife/internal/lifetime"
)

// Format identifies an output format.
type Format string

const (
	// FormatPlain prints one line per entry plus a summary line.
	FormatPlain Format = "plain"
	// FormatTable prints an aligned table for interactive use.
	FormatTable Format = "table"
	// FormatYAML emits a YAML document for scripting.
	FormatYAML Format = "yaml"
)

// Formatter renders a lifetime report.
type Formatter interface {
	Format(rep lifetime.Report, w io.Writer) error
}

// NewFormatter returns the formatter for the requested format. An empty
// format selects plain output.
func NewFormatter(f Format) (Formatter, error) {
	switch f {
	case FormatPlain, "":
		return &PlainFormatter{}, nil
	case FormatTable:
		return &TableFormatter{}, nil
	case FormatYAML:
		return &YAMLFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want plain, table or yaml)", f)
	}
}
