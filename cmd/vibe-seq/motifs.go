package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inodb/vibe-seq/internal/analyze"
)

func newMotifsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "motifs",
		Short: "List the regulatory motifs searched by analyze",
		Long: `List the built-in regulatory motifs in reporting order. Bracketed groups
such as [AG] accept any one of the listed bases at that position.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMotifs()
		},
	}
}

func (a *app) runMotifs() error {
	fmt.Fprintln(a.stdout, "Name\tPattern\tLength")
	for _, m := range analyze.MotifCatalog() {
		fmt.Fprintf(a.stdout, "%s\t%s\t%d\n", m.Name, m.Pattern, m.Len())
	}
	return nil
}
