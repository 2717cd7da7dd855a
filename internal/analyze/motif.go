package analyze

import (
	"fmt"
	"strings"

	"github.com/inodb/vibe-seq/internal/sequence"
)

// 4-bit mask per base.
const (
	maskA uint8 = 1 << iota
	maskC
	maskG
	maskT
)

func baseMask(b byte) uint8 {
	switch b {
	case 'A':
		return maskA
	case 'C':
		return maskC
	case 'G':
		return maskG
	case 'T':
		return maskT
	}
	return 0
}

// MotifMatch is one occurrence of a catalog motif.
type MotifMatch struct {
	Name        string `json:"name" yaml:"name"`
	Pattern     string `json:"pattern" yaml:"pattern"`
	Start       int    `json:"start" yaml:"start"`
	End         int    `json:"end" yaml:"end"`
	MatchedText string `json:"matched_text" yaml:"matched_text"`
}

// Motif is a compiled fixed-length pattern: one set of acceptable bases
// per position.
type Motif struct {
	Name    string
	Pattern string
	masks   []uint8
}

// Len returns the number of positions the motif spans.
func (m *Motif) Len() int { return len(m.masks) }

// MatchAt reports whether the motif matches s starting at i.
func (m *Motif) MatchAt(s string, i int) bool {
	if i < 0 || i+len(m.masks) > len(s) {
		return false
	}
	for k, mask := range m.masks {
		if mask&baseMask(s[i+k]) == 0 {
			return false
		}
	}
	return true
}

// CompileMotif parses a pattern of literal bases where a bracketed group
// such as [AG] accepts any one of the listed bases at that position.
func CompileMotif(name, pattern string) (*Motif, error) {
	var masks []uint8
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '[' {
			m := baseMask(c)
			if m == 0 {
				return nil, fmt.Errorf("motif %s: invalid base %q at %d", name, c, i)
			}
			masks = append(masks, m)
			continue
		}

		end := strings.IndexByte(pattern[i:], ']')
		if end < 0 {
			return nil, fmt.Errorf("motif %s: unterminated group at %d", name, i)
		}
		group := pattern[i+1 : i+end]
		if group == "" {
			return nil, fmt.Errorf("motif %s: empty group at %d", name, i)
		}
		var m uint8
		for k := 0; k < len(group); k++ {
			bm := baseMask(group[k])
			if bm == 0 {
				return nil, fmt.Errorf("motif %s: invalid base %q in group at %d", name, group[k], i)
			}
			m |= bm
		}
		masks = append(masks, m)
		i += end
	}
	if len(masks) == 0 {
		return nil, fmt.Errorf("motif %s: empty pattern", name)
	}
	return &Motif{Name: name, Pattern: pattern, masks: masks}, nil
}

// MustCompileMotif is like CompileMotif but panics on error.
func MustCompileMotif(name, pattern string) *Motif {
	m, err := CompileMotif(name, pattern)
	if err != nil {
		panic(err)
	}
	return m
}

// Built-in regulatory motifs, in reporting order.
var motifCatalog = []*Motif{
	MustCompileMotif("TATA_box", "TATA[AT]A[AT]"),
	MustCompileMotif("CAAT_box", "GGCCAATCT"),
	MustCompileMotif("GC_box", "GGGCGG"),
	MustCompileMotif("Kozak", "GCC[AG]CCATGG"),
	MustCompileMotif("Shine_Dalgarno", "AGGAGG"),
	MustCompileMotif("PolyA_signal", "AATAAA"),
}

// MotifCatalog returns the built-in motifs.
func MotifCatalog() []*Motif {
	out := make([]*Motif, len(motifCatalog))
	copy(out, motifCatalog)
	return out
}

// ScanMotif finds the leftmost non-overlapping matches of m in seq.
func ScanMotif(seq sequence.Sequence, m *Motif) []MotifMatch {
	s := string(seq)
	var matches []MotifMatch

	i := 0
	for i+m.Len() <= len(s) {
		if !m.MatchAt(s, i) {
			i++
			continue
		}
		end := i + m.Len()
		matches = append(matches, MotifMatch{
			Name:        m.Name,
			Pattern:     m.Pattern,
			Start:       i,
			End:         end,
			MatchedText: s[i:end],
		})
		i = end
	}

	return matches
}

// ScanMotifs scans seq for every built-in motif. Matches of different
// motifs may overlap; results are ordered by catalog entry, then start.
func ScanMotifs(seq sequence.Sequence) []MotifMatch {
	var matches []MotifMatch
	for _, m := range motifCatalog {
		matches = append(matches, ScanMotif(seq, m)...)
	}
	return matches
}
