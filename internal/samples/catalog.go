// Package samples provides a keyed catalog of example sequences.
// A built-in catalog is embedded in the binary; users can add their own
// YAML catalog on top of it.
package samples

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

//go:embed builtin.yaml
var builtinYAML string

// ErrUnknownSample is returned by Get for keys not in the catalog.
var ErrUnknownSample = errors.New("unknown sample")

// Sample is one named sequence. Sequence is raw text; it is validated
// only when analyzed.
type Sample struct {
	Key         string `yaml:"key"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Sequence    string `yaml:"sequence"`
}

type catalogFile struct {
	Samples []Sample `yaml:"samples"`
}

// Catalog maps sample keys to samples.
type Catalog struct {
	samples map[string]Sample
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{samples: make(map[string]Sample)}
}

// Builtin returns the catalog embedded in the binary.
func Builtin() (*Catalog, error) {
	c, err := Parse(strings.NewReader(builtinYAML))
	if err != nil {
		return nil, fmt.Errorf("builtin samples: %w", err)
	}
	return c, nil
}

// LoadFile reads a YAML sample catalog.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sample catalog: %w", err)
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML catalog of the form
//
//	samples:
//	  - key: demo
//	    name: Demo
//	    sequence: ATGC...
//
// Keys must be unique and non-empty.
func Parse(r io.Reader) (*Catalog, error) {
	var file catalogFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return New(), nil
		}
		return nil, fmt.Errorf("decode sample catalog: %w", err)
	}

	c := New()
	for i, s := range file.Samples {
		s.Key = strings.TrimSpace(s.Key)
		if s.Key == "" {
			return nil, fmt.Errorf("sample %d: missing key", i+1)
		}
		if _, dup := c.samples[s.Key]; dup {
			return nil, fmt.Errorf("sample %d: duplicate key %q", i+1, s.Key)
		}
		s.Sequence = joinLines(s.Sequence)
		c.samples[s.Key] = s
	}
	return c, nil
}

// joinLines removes all whitespace so multi-line sequences concatenate.
func joinLines(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// Merge adds every sample of other, replacing samples with the same key.
func (c *Catalog) Merge(other *Catalog) {
	for k, s := range other.samples {
		c.samples[k] = s
	}
}

// Get returns the sample stored under key.
func (c *Catalog) Get(key string) (Sample, error) {
	s, ok := c.samples[key]
	if !ok {
		return Sample{}, fmt.Errorf("%w: %q", ErrUnknownSample, key)
	}
	return s, nil
}

// Keys returns the sample keys in sorted order.
func (c *Catalog) Keys() []string {
	keys := lo.Keys(c.samples)
	sort.Strings(keys)
	return keys
}

// Len returns the number of samples.
func (c *Catalog) Len() int {
	return len(c.samples)
}

// Open returns the built-in catalog with the user catalog at path merged
// on top. An empty path returns the built-in catalog alone.
func Open(path string) (*Catalog, error) {
	c, err := Builtin()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return c, nil
	}
	user, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	c.Merge(user)
	return c, nil
}
