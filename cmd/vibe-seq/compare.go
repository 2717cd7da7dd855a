package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inodb/vibe-seq/internal/analyze"
	"github.com/inodb/vibe-seq/internal/output"
	"github.com/inodb/vibe-seq/internal/sequence"
)

func newCompareCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare SEQ1 SEQ2",
		Short: "Compare two sequences position by position",
		Long: `Compare two sequences base by base over the length of the shorter one,
without gaps, and report the matches and percent identity.`,
		Example: `  vibe-seq compare ATCGATCG ATGGATCC
  vibe-seq compare -f json ATCG ATGG`,
		Args: usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCompare(cmd, args[0], args[1])
		},
	}
	addFormatFlag(cmd, output.FormatText, output.FormatJSON, output.FormatYAML)
	return cmd
}

func (a *app) runCompare(cmd *cobra.Command, raw1, raw2 string) error {
	format, err := a.outputFormat(cmd)
	if err != nil {
		return err
	}

	seq1, err := a.validateInput("first sequence", raw1)
	if err != nil {
		return err
	}
	seq2, err := a.validateInput("second sequence", raw2)
	if err != nil {
		return err
	}

	result := analyze.CompareSequences(seq1, seq2)
	return a.writeResult(format, &result, func(tw *output.TextWriter) error {
		return tw.WriteComparison(&result)
	})
}

// validateInput checks the length limit and validates one raw sequence.
func (a *app) validateInput(name, raw string) (sequence.Sequence, error) {
	seq, err := sequence.Validate(raw)
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	if err := a.cfg.CheckLength(seq.Len()); err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return seq, nil
}

// writeResult prints a single result value to stdout, through text for
// the text format and through the structured encoders otherwise.
func (a *app) writeResult(format string, v any, text func(*output.TextWriter) error) error {
	switch format {
	case output.FormatText:
		tw := output.NewTextWriter(a.stdout)
		if err := text(tw); err != nil {
			return err
		}
		return tw.Flush()
	case output.FormatJSON, output.FormatYAML:
		return output.WriteValue(format, a.stdout, v)
	default:
		return usageError{fmt.Errorf("format %q is only supported by analyze", format)}
	}
}
