package output

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/inodb/vibe-seq/internal/analyze"
)

// Column headers of the tab-delimited report sections.
var (
	orfColumns        = []string{"Frame", "Start", "End", "Length_nt", "Protein_length", "Weight", "Protein"}
	repeatColumns     = []string{"Motif", "Start", "End", "Repeat_count"}
	motifColumns      = []string{"Name", "Pattern", "Start", "End", "Matched"}
	codonColumns      = []string{"Codon", "Count"}
	windowColumns     = []string{"Start", "End", "GC_percent"}
	compositionFields = []string{"A", "T", "C", "G"}
)

// TextWriter writes reports as tab-delimited sections.
type TextWriter struct {
	w       *bufio.Writer
	written int
}

// NewTextWriter creates a new tab-delimited writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: bufio.NewWriter(w)}
}

// WriteReport writes every section of a report.
func (tw *TextWriter) WriteReport(label string, r *analyze.Report) error {
	if tw.written > 0 {
		tw.w.WriteString("\n")
	}
	tw.written++

	if label == "" {
		label = "sequence"
	}
	tw.line("# " + label)
	tw.row("Length", strconv.Itoa(r.Length))
	for _, b := range compositionFields {
		tw.row(b, strconv.Itoa(r.Composition.Counts[b]))
	}
	tw.row("GC_percent", formatPercent(r.Composition.GCPercent))
	startCodon := "-"
	if r.FirstStartCodon >= 0 {
		startCodon = strconv.Itoa(r.FirstStartCodon)
	}
	tw.row("First_start_codon", startCodon)

	tw.section("ORFs", len(r.ORFs), orfColumns)
	for _, o := range r.ORFs {
		tw.row(strconv.Itoa(o.Frame), strconv.Itoa(o.Start), strconv.Itoa(o.End),
			strconv.Itoa(o.LengthNt), strconv.Itoa(o.ProteinStats.Length),
			formatPercent(o.ProteinStats.Weight), o.Protein)
	}
	if r.LongestORF != nil {
		tw.row("Longest_ORF", fmt.Sprintf("%d-%d", r.LongestORF.Start, r.LongestORF.End),
			"Frame", strconv.Itoa(r.LongestORF.Frame),
			"Residues", residueSummary(r.LongestORF.ProteinStats))
	}

	tw.section("Repeats", len(r.Repeats), repeatColumns)
	for _, rep := range r.Repeats {
		tw.row(rep.Motif, strconv.Itoa(rep.Start), strconv.Itoa(rep.End), strconv.Itoa(rep.RepeatCount))
	}

	tw.section("Motifs", len(r.Motifs), motifColumns)
	for _, m := range r.Motifs {
		tw.row(m.Name, m.Pattern, strconv.Itoa(m.Start), strconv.Itoa(m.End), m.MatchedText)
	}

	tw.section("Codon_usage", len(r.CodonUsage), codonColumns)
	for _, c := range r.CodonUsage {
		tw.row(c.Codon, strconv.Itoa(c.Count))
	}

	tw.line(fmt.Sprintf("## GC_profile (window %d, %d windows)", r.WindowSize, len(r.GCProfile)))
	tw.writeWindows(r.GCProfile)

	if r.Comparison != nil {
		tw.writeComparison(r.Comparison)
	}

	return nil
}

// WriteComparison writes a standalone comparison.
func (tw *TextWriter) WriteComparison(c *analyze.ComparisonResult) error {
	tw.writeComparison(c)
	return nil
}

// WriteGCProfile writes a standalone GC profile.
func (tw *TextWriter) WriteGCProfile(windowSize int, windows []analyze.GCWindow) error {
	tw.line(fmt.Sprintf("## GC_profile (window %d, %d windows)", windowSize, len(windows)))
	tw.writeWindows(windows)
	return nil
}

// Flush flushes any buffered data to the underlying writer.
func (tw *TextWriter) Flush() error {
	return tw.w.Flush()
}

func (tw *TextWriter) writeWindows(windows []analyze.GCWindow) {
	tw.line(strings.Join(windowColumns, "\t"))
	for _, win := range windows {
		tw.row(strconv.Itoa(win.Start), strconv.Itoa(win.End), formatPercent(win.GCPercent))
	}
}

func (tw *TextWriter) writeComparison(c *analyze.ComparisonResult) {
	tw.line("## Comparison")
	tw.row("Compared_length", strconv.Itoa(c.Length))
	tw.row("Matches", strconv.Itoa(c.Matches))
	tw.row("Identity_percent", formatPercent(c.IdentityPercent))
	tw.line(c.Seq1Truncated)
	tw.line(c.AlignmentMarker)
	tw.line(c.Seq2Truncated)
}

func (tw *TextWriter) section(name string, n int, columns []string) {
	tw.line(fmt.Sprintf("## %s (%d)", name, n))
	tw.line(strings.Join(columns, "\t"))
}

func (tw *TextWriter) row(values ...string) {
	tw.line(strings.Join(values, "\t"))
}

// line writes s and a newline. bufio.Writer keeps the first error and
// returns it from Flush.
func (tw *TextWriter) line(s string) {
	tw.w.WriteString(s)
	tw.w.WriteByte('\n')
}

// residueSummary renders residue frequencies as "L:12.50,A:8.33,...",
// most frequent first and ties alphabetical.
func residueSummary(pc analyze.ProteinComposition) string {
	residues := lo.Keys(pc.Counts)
	sort.Slice(residues, func(i, j int) bool {
		ci, cj := pc.Counts[residues[i]], pc.Counts[residues[j]]
		if ci != cj {
			return ci > cj
		}
		return residues[i] < residues[j]
	})
	parts := lo.Map(residues, func(aa string, _ int) string {
		return aa + ":" + formatPercent(pc.FrequencyPercent[aa])
	})
	return strings.Join(parts, ",")
}
