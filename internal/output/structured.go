package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/inodb/vibe-seq/internal/analyze"
)

// LabeledReport pairs a report with the name of its input.
type LabeledReport struct {
	Label  string          `json:"label" yaml:"label"`
	Report *analyze.Report `json:"report" yaml:"report"`
}

// JSONWriter collects reports and writes them as one JSON array on Flush.
type JSONWriter struct {
	w       io.Writer
	reports []LabeledReport
}

// NewJSONWriter creates a JSON report writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, reports: []LabeledReport{}}
}

// WriteReport buffers a report.
func (jw *JSONWriter) WriteReport(label string, r *analyze.Report) error {
	jw.reports = append(jw.reports, LabeledReport{Label: label, Report: r})
	return nil
}

// Flush writes the buffered reports.
func (jw *JSONWriter) Flush() error {
	return WriteValue(FormatJSON, jw.w, jw.reports)
}

// YAMLWriter collects reports and writes them as one YAML sequence on Flush.
type YAMLWriter struct {
	w       io.Writer
	reports []LabeledReport
}

// NewYAMLWriter creates a YAML report writer.
func NewYAMLWriter(w io.Writer) *YAMLWriter {
	return &YAMLWriter{w: w, reports: []LabeledReport{}}
}

// WriteReport buffers a report.
func (yw *YAMLWriter) WriteReport(label string, r *analyze.Report) error {
	yw.reports = append(yw.reports, LabeledReport{Label: label, Report: r})
	return nil
}

// Flush writes the buffered reports.
func (yw *YAMLWriter) Flush() error {
	return WriteValue(FormatYAML, yw.w, yw.reports)
}

// WriteValue encodes any result value (a comparison, a GC profile, ...)
// as JSON or YAML.
func WriteValue(format string, w io.Writer, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("format %q cannot encode values", format)
	}
}
