package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/inodb/vibe-seq/internal/analyze"
	"github.com/inodb/vibe-seq/internal/output"
	"github.com/inodb/vibe-seq/internal/samples"
	"github.com/inodb/vibe-seq/internal/sequence"
)

type analyzeFlags struct {
	samples []string
	files   []string
	compare string
	output  string
}

// input is one raw sequence queued for analysis.
type input struct {
	label string
	raw   string
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var f analyzeFlags

	cmd := &cobra.Command{
		Use:   "analyze [SEQUENCE...]",
		Short: "Run the full analysis on one or more sequences",
		Long: `Run every analysis (composition, ORFs, repeats, motifs, codon usage,
GC profile) on each input. Inputs are positional sequences, built-in or
catalog samples (--sample) and FASTA or plain sequence files (--file).
Inputs are analyzed in parallel and reported in the order given.`,
		Example: `  vibe-seq analyze ATGAAATAATAA
  vibe-seq analyze --sample kras --compare ATGACTGAATATAAGCTT
  vibe-seq analyze --file seqs.fa.gz -f yaml -o report.yaml
  vibe-seq analyze --sample promoter --window 20 -f xlsx -o promoter.xlsx`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAnalyze(cmd, args, &f)
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVarP(&f.samples, "sample", "s", nil, "Sample key to analyze (repeatable, see 'vibe-seq samples')")
	flags.StringArrayVar(&f.files, "file", nil, "FASTA or plain sequence file, .gz accepted (repeatable)")
	flags.StringVar(&f.compare, "compare", "", "Second sequence to compare every input against")
	flags.StringVarP(&f.output, "output", "o", "", "Output file (default: stdout)")
	addFormatFlag(cmd, output.Formats...)
	flags.Int("window", 0, "GC profile window size (default from window.report)")
	flags.Int("workers", 0, "Number of parallel workers, 0 for one per CPU (default from workers)")

	a.bindFlag("window.report", flags.Lookup("window"))
	a.bindFlag("workers", flags.Lookup("workers"))

	return cmd
}

func (a *app) runAnalyze(cmd *cobra.Command, args []string, f *analyzeFlags) error {
	format, err := a.outputFormat(cmd)
	if err != nil {
		return err
	}
	if format == output.FormatXLSX && (f.output == "" || f.output == "-") {
		return usageError{errors.New("xlsx output requires --output FILE")}
	}

	inputs, err := a.collectInputs(args, f)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return usageError{errors.New("no input: pass a SEQUENCE, --sample or --file")}
	}
	if f.compare != "" {
		if _, err := a.validateInput("comparison sequence", f.compare); err != nil {
			return usageError{err}
		}
	}

	// Oversized inputs are dropped before numbering so that the ordered
	// collector sees a gapless sequence.
	total := len(inputs)
	failed := 0
	accepted := inputs[:0]
	for _, in := range inputs {
		if err := a.cfg.CheckLength(len(strings.TrimSpace(in.raw))); err != nil {
			failed++
			a.logger.Error("skipping input", zap.String("input", in.label), zap.Error(err))
			continue
		}
		accepted = append(accepted, in)
	}

	analyzer, err := analyze.NewAnalyzer(a.cfg.AnalysisOptions())
	if err != nil {
		return err
	}
	analyzer.SetLogger(a.logger)

	out, err := a.openOutput(f.output)
	if err != nil {
		return err
	}
	defer out.Close()

	w, err := output.NewReportWriter(format, out)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	items := make(chan analyze.WorkItem)
	go func() {
		defer close(items)
		for i, in := range accepted {
			select {
			case items <- analyze.WorkItem{Seq: i, Label: in.label, Raw: in.raw, Other: f.compare}:
			case <-ctx.Done():
				return
			}
		}
	}()

	results := analyzer.ParallelAnalyze(ctx, items, a.cfg.Workers)
	err = analyze.OrderedCollect(results, func(r analyze.WorkResult) error {
		if r.Err != nil {
			failed++
			a.logger.Error("skipping input", zap.String("input", r.Label), zap.Error(r.Err))
			return nil
		}
		return w.WriteReport(r.Label, r.Report)
	})
	if err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}

	a.logger.Debug("analysis complete",
		zap.Int("inputs", total),
		zap.Int("failed", failed),
		zap.String("format", format))

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs could not be analyzed", failed, total)
	}
	return nil
}

// collectInputs gathers positional sequences, then samples, then file
// records, in the order given.
func (a *app) collectInputs(args []string, f *analyzeFlags) ([]input, error) {
	var inputs []input
	for i, raw := range args {
		inputs = append(inputs, input{label: fmt.Sprintf("seq%d", i+1), raw: raw})
	}

	if len(f.samples) > 0 {
		catalog, err := samples.Open(a.cfg.Samples.Catalog)
		if err != nil {
			return nil, err
		}
		for _, key := range f.samples {
			s, err := catalog.Get(key)
			if err != nil {
				return nil, usageError{err}
			}
			inputs = append(inputs, input{label: s.Key, raw: s.Sequence})
		}
	}

	for _, path := range f.files {
		records, err := sequence.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			a.logger.Warn("no sequences in file", zap.String("path", path))
		}
		for i, rec := range records {
			inputs = append(inputs, input{label: recordLabel(path, rec, i), raw: rec.Bases})
		}
	}

	return inputs, nil
}

// recordLabel names a file record by its FASTA ID, falling back to the
// file name and record number.
func recordLabel(path string, rec sequence.Record, i int) string {
	if rec.ID != "" {
		return rec.ID
	}
	return fmt.Sprintf("%s#%d", filepath.Base(path), i+1)
}
