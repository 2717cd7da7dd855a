// Package config holds the settings shared by the vibe-seq commands. Values
// come from ~/.vibe-seq.yaml, VIBESEQ_* environment variables and command
// line flags, merged by Viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/inodb/vibe-seq/internal/analyze"
)

// FileName is the config file name looked up in the home directory.
const FileName = ".vibe-seq.yaml"

// EnvPrefix prefixes environment overrides, e.g. VIBESEQ_WINDOW_REPORT.
const EnvPrefix = "VIBESEQ"

// ErrSequenceTooLong is returned when input exceeds limits.max_length.
var ErrSequenceTooLong = errors.New("sequence exceeds configured maximum length")

// WindowConfig holds the GC window sizes per call site.
type WindowConfig struct {
	// window used by full analysis reports
	Report int `mapstructure:"report"`

	// window used by the quick gc preview
	Preview int `mapstructure:"preview"`
}

// RepeatConfig bounds the tandem repeat scan.
type RepeatConfig struct {
	MinMotifLen int `mapstructure:"min_motif_len"`
	MaxMotifLen int `mapstructure:"max_motif_len"`
	MinRepeats  int `mapstructure:"min_repeats"`
}

// CodonConfig controls codon usage ranking.
type CodonConfig struct {
	// number of codons to report, 0 for all
	TopN int `mapstructure:"top_n"`
}

// LimitConfig guards against inputs that make the repeat scan slow.
type LimitConfig struct {
	// maximum accepted sequence length, 0 disables the check
	MaxLength int `mapstructure:"max_length"`
}

// SamplesConfig points at an optional user sample catalog.
type SamplesConfig struct {
	Catalog string `mapstructure:"catalog"`
}

// OutputConfig sets report output defaults.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// Config is the root-level settings struct.
type Config struct {
	Window  WindowConfig  `mapstructure:"window"`
	Repeats RepeatConfig  `mapstructure:"repeats"`
	Codons  CodonConfig   `mapstructure:"codons"`
	Limits  LimitConfig   `mapstructure:"limits"`
	Samples SamplesConfig `mapstructure:"samples"`
	Output  OutputConfig  `mapstructure:"output"`

	// number of batch workers, 0 for one per CPU
	Workers int `mapstructure:"workers"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	rep := analyze.DefaultRepeatOptions()

	v.SetDefault("window.report", 50)
	v.SetDefault("window.preview", 20)
	v.SetDefault("repeats.min_motif_len", rep.MinMotifLen)
	v.SetDefault("repeats.max_motif_len", rep.MaxMotifLen)
	v.SetDefault("repeats.min_repeats", rep.MinRepeats)
	v.SetDefault("codons.top_n", analyze.DefaultCodonTopN)
	v.SetDefault("limits.max_length", 100000)
	v.SetDefault("samples.catalog", "")
	v.SetDefault("output.format", "text")
	v.SetDefault("workers", 0)
}

// Init prepares v: defaults, environment overrides and the config file.
// cfgFile overrides the default ~/.vibe-seq.yaml location. A missing
// default config file is not an error; a missing explicit one is.
func Init(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			// no home directory: defaults and environment only
			return nil
		}
		v.AddConfigPath(home)
		v.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Window.Report <= 0 {
		return fmt.Errorf("window.report must be positive, got %d", c.Window.Report)
	}
	if c.Window.Preview <= 0 {
		return fmt.Errorf("window.preview must be positive, got %d", c.Window.Preview)
	}
	if err := c.RepeatOptions().Validate(); err != nil {
		return fmt.Errorf("repeats: %w", err)
	}
	if c.Limits.MaxLength < 0 {
		return fmt.Errorf("limits.max_length must not be negative, got %d", c.Limits.MaxLength)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}

// RepeatOptions converts the repeats section.
func (c Config) RepeatOptions() analyze.RepeatOptions {
	return analyze.RepeatOptions{
		MinMotifLen: c.Repeats.MinMotifLen,
		MaxMotifLen: c.Repeats.MaxMotifLen,
		MinRepeats:  c.Repeats.MinRepeats,
	}
}

// AnalysisOptions returns the options for a full report.
func (c Config) AnalysisOptions() analyze.Options {
	return analyze.Options{
		WindowSize: c.Window.Report,
		Repeat:     c.RepeatOptions(),
		CodonTopN:  c.Codons.TopN,
	}
}

// CheckLength rejects sequences longer than limits.max_length.
func (c Config) CheckLength(n int) error {
	if c.Limits.MaxLength > 0 && n > c.Limits.MaxLength {
		return fmt.Errorf("%w: %d > %d", ErrSequenceTooLong, n, c.Limits.MaxLength)
	}
	return nil
}

// DefaultPath returns ~/.vibe-seq.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, FileName), nil
}
