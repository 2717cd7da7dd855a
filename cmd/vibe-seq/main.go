// Package main provides the vibe-seq command-line tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/inodb/vibe-seq/internal/config"
	"github.com/inodb/vibe-seq/internal/output"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitError   = 1
	ExitUsage   = 2
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := newApp(stdout, stderr)
	root := newRootCmd(a)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	_ = a.logger.Sync()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if isUsageError(err) {
			return ExitUsage
		}
		return ExitError
	}
	return ExitSuccess
}

// app carries the state shared by every subcommand of one invocation.
type app struct {
	v      *viper.Viper
	cfg    config.Config
	logger *zap.Logger
	stdout io.Writer
	stderr io.Writer

	cfgFile string
	verbose bool
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		v:      viper.New(),
		logger: zap.NewNop(),
		stdout: stdout,
		stderr: stderr,
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "vibe-seq",
		Short: "DNA sequence analysis toolkit",
		Long: `vibe-seq analyzes nucleotide sequences: base composition, open reading
frames, tandem repeats, regulatory motifs, codon usage, GC profiles and
pairwise identity.`,
		Example: `  # Full report for a sequence
  vibe-seq analyze ATGAAATTTGGGCCCTAA

  # Analyze built-in samples as JSON
  vibe-seq analyze --sample kras --sample promoter -f json

  # Analyze every record of a FASTA file into a workbook
  vibe-seq analyze --file seqs.fa -f xlsx -o report.xlsx`,
		Version:           fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return a.setup() },
	}
	root.SetVersionTemplate("vibe-seq version {{.Version}}\n")
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "Config file (default ~/"+config.FileName+")")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newAnalyzeCmd(a))
	root.AddCommand(newCompareCmd(a))
	root.AddCommand(newGCCmd(a))
	root.AddCommand(newSamplesCmd(a))
	root.AddCommand(newMotifsCmd(a))
	root.AddCommand(newConfigCmd(a))

	return root
}

// setup loads configuration and builds the logger.
func (a *app) setup() error {
	if err := config.Init(a.v, a.cfgFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = newLogger(a.verbose, a.stderr)
	a.logger.Debug("loaded config",
		zap.String("file", a.v.ConfigFileUsed()),
		zap.Int("window", cfg.Window.Report),
		zap.Int("workers", cfg.Workers))
	return nil
}

// newLogger writes human-readable log lines to w: warnings and errors by
// default, everything with verbose.
func newLogger(verbose bool, w io.Writer) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core)
}

// outputFormat returns the -f flag when given, otherwise output.format.
func (a *app) outputFormat(cmd *cobra.Command) (string, error) {
	format := a.cfg.Output.Format
	if cmd.Flags().Changed("format") {
		format, _ = cmd.Flags().GetString("format")
	}
	for _, f := range output.Formats {
		if f == format {
			return format, nil
		}
	}
	return "", usageError{fmt.Errorf("unknown output format %q (want one of %s)", format, strings.Join(output.Formats, ", "))}
}

func addFormatFlag(cmd *cobra.Command, formats ...string) {
	cmd.Flags().StringP("format", "f", "", "Output format: "+strings.Join(formats, ", ")+" (default from output.format)")
}

// bindFlag ties a flag to a config key so that an explicit flag value
// overrides the config file and environment.
func (a *app) bindFlag(key string, flag *pflag.Flag) {
	if err := a.v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", key, err))
	}
}

// usageError marks errors caused by how the command was invoked.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }

func (e usageError) Unwrap() error { return e.err }

func isUsageError(err error) bool {
	var ue usageError
	if errors.As(err, &ue) {
		return true
	}
	return strings.HasPrefix(err.Error(), "unknown command")
}

// usageArgs turns positional argument errors into usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

// openOutput returns stdout for an empty path or "-", otherwise a new file.
func (a *app) openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{a.stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output file: %w", err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
