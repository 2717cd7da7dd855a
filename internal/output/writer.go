// Package output provides analysis report formatters.
package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/inodb/vibe-seq/internal/analyze"
)

// Output formats accepted by NewReportWriter.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatXLSX = "xlsx"
)

// Formats lists every supported format.
var Formats = []string{FormatText, FormatJSON, FormatYAML, FormatXLSX}

// ReportWriter writes analysis reports. Flush must be called once all
// reports are written.
type ReportWriter interface {
	WriteReport(label string, r *analyze.Report) error
	Flush() error
}

// NewReportWriter returns the writer for format.
func NewReportWriter(format string, w io.Writer) (ReportWriter, error) {
	switch format {
	case FormatText, "":
		return NewTextWriter(w), nil
	case FormatJSON:
		return NewJSONWriter(w), nil
	case FormatYAML:
		return NewYAMLWriter(w), nil
	case FormatXLSX:
		return NewXLSXWriter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// formatPercent renders a percentage with two decimals.
func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
