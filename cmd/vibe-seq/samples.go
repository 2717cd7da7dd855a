package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inodb/vibe-seq/internal/samples"
)

// fastaLineWidth is the line width used when printing sample sequences.
const fastaLineWidth = 60

func newSamplesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "samples",
		Short: "List or show example sequences",
		Long: `List the sample catalog: the built-in samples plus the user catalog
configured with samples.catalog. Samples can be analyzed with
'vibe-seq analyze --sample KEY'.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSamplesList()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List sample keys",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSamplesList()
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "show KEY",
		Short: "Print a sample as FASTA",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSamplesShow(args[0])
		},
	})

	return cmd
}

func (a *app) runSamplesList() error {
	catalog, err := samples.Open(a.cfg.Samples.Catalog)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, "Key\tLength\tName")
	for _, key := range catalog.Keys() {
		s, _ := catalog.Get(key)
		fmt.Fprintf(a.stdout, "%s\t%s\t%s\n", s.Key, strconv.Itoa(len(s.Sequence)), s.Name)
	}
	return nil
}

func (a *app) runSamplesShow(key string) error {
	catalog, err := samples.Open(a.cfg.Samples.Catalog)
	if err != nil {
		return err
	}
	s, err := catalog.Get(key)
	if err != nil {
		return err
	}

	header := ">" + s.Key
	if s.Name != "" {
		header += " " + s.Name
	}
	fmt.Fprintln(a.stdout, header)
	if s.Description != "" {
		fmt.Fprintln(a.stdout, "; "+strings.Join(strings.Fields(s.Description), " "))
	}
	for i := 0; i < len(s.Sequence); i += fastaLineWidth {
		fmt.Fprintln(a.stdout, s.Sequence[i:min(i+fastaLineWidth, len(s.Sequence))])
	}
	return nil
}
