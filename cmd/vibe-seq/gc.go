package main

import (
	"github.com/spf13/cobra"

	"github.com/inodb/vibe-seq/internal/analyze"
	"github.com/inodb/vibe-seq/internal/output"
)

// gcProfile is the structured form of the gc command output.
type gcProfile struct {
	WindowSize int                `json:"window_size" yaml:"window_size"`
	Windows    []analyze.GCWindow `json:"windows" yaml:"windows"`
}

func newGCCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gc SEQUENCE",
		Short: "Show the GC content profile of a sequence",
		Long: `Split a sequence into consecutive windows and report the GC percent of
each. A trailing window shorter than the window size is not reported.`,
		Example: `  vibe-seq gc GGGCCCAAATTTGGGCCC --window 6
  vibe-seq gc -f json ATGCGCGCATATGC`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGC(cmd, args[0])
		},
	}
	addFormatFlag(cmd, output.FormatText, output.FormatJSON, output.FormatYAML)
	cmd.Flags().Int("window", 0, "Window size (default from window.preview)")
	a.bindFlag("window.preview", cmd.Flags().Lookup("window"))
	return cmd
}

func (a *app) runGC(cmd *cobra.Command, raw string) error {
	format, err := a.outputFormat(cmd)
	if err != nil {
		return err
	}

	seq, err := a.validateInput("sequence", raw)
	if err != nil {
		return err
	}

	size := a.cfg.Window.Preview
	windows, err := analyze.SlidingWindowGC(seq, size)
	if err != nil {
		return err
	}

	profile := gcProfile{WindowSize: size, Windows: windows}
	return a.writeResult(format, profile, func(tw *output.TextWriter) error {
		return tw.WriteGCProfile(size, windows)
	})
}
