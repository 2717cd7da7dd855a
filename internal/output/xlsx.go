package output

import (
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"

	"github.com/inodb/vibe-seq/internal/analyze"
)

// Sheet names of the XLSX workbook, in tab order.
const (
	SheetSummary    = "Summary"
	SheetORFs       = "ORFs"
	SheetRepeats    = "Repeats"
	SheetMotifs     = "Motifs"
	SheetCodons     = "Codon usage"
	SheetGCProfile  = "GC profile"
	SheetComparison = "Comparison"
)

var sheetHeaders = map[string][]any{
	SheetSummary:    {"Label", "Length", "A", "T", "C", "G", "GC_percent", "First_start_codon", "ORFs", "Repeats", "Motifs"},
	SheetORFs:       {"Label", "Frame", "Start", "End", "Length_nt", "Protein_length", "Weight", "Protein"},
	SheetRepeats:    {"Label", "Motif", "Start", "End", "Repeat_count"},
	SheetMotifs:     {"Label", "Name", "Pattern", "Start", "End", "Matched"},
	SheetCodons:     {"Label", "Codon", "Count"},
	SheetGCProfile:  {"Label", "Window", "Start", "End", "GC_percent"},
	SheetComparison: {"Label", "Compared_length", "Matches", "Identity_percent", "Seq1", "Marker", "Seq2"},
}

var sheetOrder = []string{SheetSummary, SheetORFs, SheetRepeats, SheetMotifs, SheetCodons, SheetGCProfile, SheetComparison}

// XLSXWriter writes reports into a workbook with one sheet per analysis.
// Rows from several reports are stacked and tagged with their label.
// The workbook is written to the underlying writer on Flush.
type XLSXWriter struct {
	w    io.Writer
	rows map[string][][]any
}

// NewXLSXWriter creates an XLSX report writer.
func NewXLSXWriter(w io.Writer) *XLSXWriter {
	return &XLSXWriter{w: w, rows: make(map[string][][]any)}
}

// WriteReport adds the report's rows to every sheet.
func (xw *XLSXWriter) WriteReport(label string, r *analyze.Report) error {
	c := r.Composition
	xw.add(SheetSummary, label, r.Length, c.Counts["A"], c.Counts["T"], c.Counts["C"], c.Counts["G"],
		c.GCPercent, r.FirstStartCodon, len(r.ORFs), len(r.Repeats), len(r.Motifs))

	for _, o := range r.ORFs {
		xw.add(SheetORFs, label, o.Frame, o.Start, o.End, o.LengthNt, o.ProteinStats.Length, o.ProteinStats.Weight, o.Protein)
	}
	for _, rep := range r.Repeats {
		xw.add(SheetRepeats, label, rep.Motif, rep.Start, rep.End, rep.RepeatCount)
	}
	for _, m := range r.Motifs {
		xw.add(SheetMotifs, label, m.Name, m.Pattern, m.Start, m.End, m.MatchedText)
	}
	for _, cu := range r.CodonUsage {
		xw.add(SheetCodons, label, cu.Codon, cu.Count)
	}
	for _, win := range r.GCProfile {
		xw.add(SheetGCProfile, label, r.WindowSize, win.Start, win.End, win.GCPercent)
	}
	if cmp := r.Comparison; cmp != nil {
		xw.add(SheetComparison, label, cmp.Length, cmp.Matches, cmp.IdentityPercent,
			cmp.Seq1Truncated, cmp.AlignmentMarker, cmp.Seq2Truncated)
	}
	return nil
}

func (xw *XLSXWriter) add(sheet string, values ...any) {
	xw.rows[sheet] = append(xw.rows[sheet], values)
}

// Flush builds the workbook and writes it out. Sheets without rows other
// than the summary are omitted.
func (xw *XLSXWriter) Flush() error {
	f := excelize.NewFile()
	defer f.Close()

	sheets := lo.Filter(sheetOrder, func(name string, _ int) bool {
		return name == SheetSummary || len(xw.rows[name]) > 0
	})

	for i, name := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %s: %w", name, err)
		}

		header := sheetHeaders[name]
		if err := f.SetSheetRow(name, "A1", &header); err != nil {
			return fmt.Errorf("write %s header: %w", name, err)
		}
		for j, row := range xw.rows[name] {
			cell, err := excelize.CoordinatesToCellName(1, j+2)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(name, cell, &row); err != nil {
				return fmt.Errorf("write %s row %d: %w", name, j+2, err)
			}
		}
	}
	f.SetActiveSheet(0)

	if _, err := f.WriteTo(xw.w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
