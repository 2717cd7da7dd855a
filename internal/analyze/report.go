package analyze

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/inodb/vibe-seq/internal/sequence"
)

// Options configures a full analysis. WindowSize has no default and must be
// set by the caller.
type Options struct {
	WindowSize int
	Repeat     RepeatOptions
	CodonTopN  int // <= 0 reports every codon
}

// Validate checks every option group.
func (o Options) Validate() error {
	if o.WindowSize <= 0 {
		return fmt.Errorf("%w: window size %d must be positive", ErrInvalidOptions, o.WindowSize)
	}
	return o.Repeat.Validate()
}

// Report aggregates every analysis of one sequence.
type Report struct {
	Sequence        string            `json:"sequence" yaml:"sequence"`
	Length          int               `json:"length" yaml:"length"`
	Composition     CompositionResult `json:"composition" yaml:"composition"`
	FirstStartCodon int               `json:"first_start_codon" yaml:"first_start_codon"` // -1 when absent
	ORFs            []ORF             `json:"orfs" yaml:"orfs"`
	LongestORF      *ORF              `json:"longest_orf,omitempty" yaml:"longest_orf,omitempty"`
	Repeats         []RepeatMotif     `json:"repeats" yaml:"repeats"`
	Motifs          []MotifMatch      `json:"motifs" yaml:"motifs"`
	CodonUsage      []CodonUsageEntry `json:"codon_usage" yaml:"codon_usage"`
	WindowSize      int               `json:"window_size" yaml:"window_size"`
	GCProfile       []GCWindow        `json:"gc_profile" yaml:"gc_profile"`
	Comparison      *ComparisonResult `json:"comparison,omitempty" yaml:"comparison,omitempty"`
}

// Analyzer runs the full set of analyses with fixed options.
type Analyzer struct {
	opts   Options
	logger *zap.Logger
}

// NewAnalyzer creates an analyzer after validating opts.
func NewAnalyzer(opts Options) (*Analyzer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Analyzer{
		opts:   opts,
		logger: zap.NewNop(),
	}, nil
}

// SetLogger sets the logger for debug and warning messages.
func (a *Analyzer) SetLogger(l *zap.Logger) {
	a.logger = l
}

// Options returns the analyzer's options.
func (a *Analyzer) Options() Options {
	return a.opts
}

// Analyze runs every analysis over seq.
func (a *Analyzer) Analyze(ctx context.Context, seq sequence.Sequence) (*Report, error) {
	return a.analyze(ctx, seq, nil)
}

// AnalyzeWithComparison runs every analysis over seq and compares it with other.
func (a *Analyzer) AnalyzeWithComparison(ctx context.Context, seq, other sequence.Sequence) (*Report, error) {
	return a.analyze(ctx, seq, &other)
}

// AnalyzeRaw validates raw input (and rawOther, when non-empty) before
// analyzing. Validation errors are returned before any analysis runs.
func (a *Analyzer) AnalyzeRaw(ctx context.Context, raw, rawOther string) (*Report, error) {
	seq, err := sequence.Validate(raw)
	if err != nil {
		return nil, err
	}
	if rawOther == "" {
		return a.Analyze(ctx, seq)
	}
	other, err := sequence.Validate(rawOther)
	if err != nil {
		return nil, fmt.Errorf("comparison sequence: %w", err)
	}
	return a.AnalyzeWithComparison(ctx, seq, other)
}

// analyze runs the independent sub-analyses concurrently. Each goroutine
// writes a distinct Report field.
func (a *Analyzer) analyze(ctx context.Context, seq sequence.Sequence, other *sequence.Sequence) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	began := time.Now()

	r := &Report{
		Sequence:        seq.String(),
		Length:          seq.Len(),
		FirstStartCodon: strings.Index(seq.String(), StartCodon),
		WindowSize:      a.opts.WindowSize,
	}

	var g errgroup.Group
	g.Go(func() error {
		r.Composition = Composition(seq)
		return nil
	})
	g.Go(func() error {
		r.ORFs = FindORFs(seq)
		if len(r.ORFs) > 0 {
			longest := lo.MaxBy(r.ORFs, func(x, y ORF) bool { return x.LengthNt > y.LengthNt })
			r.LongestORF = &longest
		}
		return nil
	})
	g.Go(func() error {
		repeats, err := FindRepeats(seq, a.opts.Repeat)
		r.Repeats = repeats
		return err
	})
	g.Go(func() error {
		r.Motifs = ScanMotifs(seq)
		return nil
	})
	g.Go(func() error {
		r.CodonUsage = CodonUsage(seq, a.opts.CodonTopN)
		return nil
	})
	g.Go(func() error {
		windows, err := SlidingWindowGC(seq, a.opts.WindowSize)
		r.GCProfile = windows
		return err
	})
	if other != nil {
		g.Go(func() error {
			cmp := CompareSequences(seq, *other)
			r.Comparison = &cmp
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analyze sequence: %w", err)
	}

	// Empty results encode as [] rather than null.
	r.ORFs = orEmpty(r.ORFs)
	r.Repeats = orEmpty(r.Repeats)
	r.Motifs = orEmpty(r.Motifs)
	r.CodonUsage = orEmpty(r.CodonUsage)

	a.logger.Debug("analyzed sequence",
		zap.Int("length", r.Length),
		zap.Int("orfs", len(r.ORFs)),
		zap.Int("repeats", len(r.Repeats)),
		zap.Int("motifs", len(r.Motifs)),
		zap.Duration("elapsed", time.Since(began)))

	return r, nil
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
