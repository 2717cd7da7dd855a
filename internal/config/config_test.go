package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/vibe-seq/internal/analyze"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	v := viper.New()
	require.NoError(t, Init(v, ""))

	c, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 50, c.Window.Report)
	assert.Equal(t, 20, c.Window.Preview)
	assert.Equal(t, analyze.DefaultRepeatOptions(), c.RepeatOptions())
	assert.Equal(t, analyze.DefaultCodonTopN, c.Codons.TopN)
	assert.Equal(t, 100000, c.Limits.MaxLength)
	assert.Equal(t, "text", c.Output.Format)
	assert.Equal(t, 0, c.Workers)

	opts := c.AnalysisOptions()
	assert.Equal(t, 50, opts.WindowSize)
	assert.NoError(t, opts.Validate())
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
window:
  report: 100
repeats:
  min_repeats: 4
  max_motif_len: 3
codons:
  top_n: 5
workers: 2
`), 0644))

	v := viper.New()
	require.NoError(t, Init(v, path))

	c, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 100, c.Window.Report)
	assert.Equal(t, 20, c.Window.Preview, "unset keys keep defaults")
	assert.Equal(t, analyze.RepeatOptions{MinMotifLen: 2, MaxMotifLen: 3, MinRepeats: 4}, c.RepeatOptions())
	assert.Equal(t, 5, c.AnalysisOptions().CodonTopN)
	assert.Equal(t, 2, c.Workers)
}

func TestLoad_HomeConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, FileName), []byte("window:\n  preview: 7\n"), 0644))

	v := viper.New()
	require.NoError(t, Init(v, ""))

	c, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 7, c.Window.Preview)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("VIBESEQ_WINDOW_REPORT", "75")

	v := viper.New()
	require.NoError(t, Init(v, ""))

	c, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 75, c.Window.Report)
}

func TestInit_MissingExplicitFile(t *testing.T) {
	v := viper.New()
	err := Init(v, filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  any
	}{
		{"zero report window", "window.report", 0},
		{"negative preview window", "window.preview", -1},
		{"inverted motif range", "repeats.max_motif_len", 1},
		{"single base motif", "repeats.min_motif_len", 1},
		{"negative limit", "limits.max_length", -5},
		{"negative workers", "workers", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			SetDefaults(v)
			v.Set(tt.key, tt.val)

			_, err := Load(v)
			assert.Error(t, err)
		})
	}
}

func TestCheckLength(t *testing.T) {
	c := Config{Limits: LimitConfig{MaxLength: 10}}
	assert.NoError(t, c.CheckLength(10))

	err := c.CheckLength(11)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSequenceTooLong))

	c.Limits.MaxLength = 0
	assert.NoError(t, c.CheckLength(1<<20))
}
