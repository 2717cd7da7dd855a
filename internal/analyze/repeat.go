package analyze

import (
	"errors"
	"fmt"

	"github.com/inodb/vibe-seq/internal/sequence"
)

// ErrInvalidOptions is returned for out-of-range analysis parameters.
var ErrInvalidOptions = errors.New("invalid analysis options")

// RepeatMotif is a run of a short motif repeated back to back.
type RepeatMotif struct {
	Motif       string `json:"motif" yaml:"motif"`
	Start       int    `json:"start" yaml:"start"`
	End         int    `json:"end" yaml:"end"`
	RepeatCount int    `json:"repeat_count" yaml:"repeat_count"`
}

// RepeatOptions bounds the tandem repeat scan.
type RepeatOptions struct {
	MinMotifLen int `json:"min_motif_len" yaml:"min_motif_len"`
	MaxMotifLen int `json:"max_motif_len" yaml:"max_motif_len"`
	MinRepeats  int `json:"min_repeats" yaml:"min_repeats"`
}

// DefaultRepeatOptions returns motif lengths 2-6 with at least 3 copies.
func DefaultRepeatOptions() RepeatOptions {
	return RepeatOptions{MinMotifLen: 2, MaxMotifLen: 6, MinRepeats: 3}
}

// MinRepeatMotifLen is the shortest motif a tandem repeat may have; runs of a
// single base are homopolymers, not repeats.
const MinRepeatMotifLen = 2

// Validate checks the option ranges.
func (o RepeatOptions) Validate() error {
	if o.MinMotifLen < MinRepeatMotifLen {
		return fmt.Errorf("%w: min motif length %d < %d", ErrInvalidOptions, o.MinMotifLen, MinRepeatMotifLen)
	}
	if o.MaxMotifLen < o.MinMotifLen {
		return fmt.Errorf("%w: max motif length %d < min motif length %d", ErrInvalidOptions, o.MaxMotifLen, o.MinMotifLen)
	}
	if o.MinRepeats < 1 {
		return fmt.Errorf("%w: min repeats %d < 1", ErrInvalidOptions, o.MinRepeats)
	}
	return nil
}

// FindRepeats reports tandem repeats for every motif length in
// [MinMotifLen, MaxMotifLen]. Each length is scanned independently, so runs
// of different lengths may overlap; they are neither merged nor filtered.
// Within one length, scanning resumes after the end of each reported run.
// Results are ordered by motif length, then start.
func FindRepeats(seq sequence.Sequence, opts RepeatOptions) ([]RepeatMotif, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	s := string(seq)
	n := len(s)
	var repeats []RepeatMotif

	for l := opts.MinMotifLen; l <= opts.MaxMotifLen; l++ {
		i := 0
		for i+l*opts.MinRepeats <= n {
			motif := s[i : i+l]
			count := 1
			j := i + l
			for j+l <= n && s[j:j+l] == motif {
				count++
				j += l
			}

			if count < opts.MinRepeats {
				i++
				continue
			}
			repeats = append(repeats, RepeatMotif{
				Motif:       motif,
				Start:       i,
				End:         j,
				RepeatCount: count,
			})
			i = j
		}
	}

	return repeats, nil
}
