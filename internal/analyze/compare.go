package analyze

import (
	"strings"

	"github.com/inodb/vibe-seq/internal/sequence"
)

// ComparisonResult is a position-by-position comparison of two sequences
// over the length of the shorter one.
type ComparisonResult struct {
	Seq1Truncated   string  `json:"seq1_truncated" yaml:"seq1_truncated"`
	Seq2Truncated   string  `json:"seq2_truncated" yaml:"seq2_truncated"`
	AlignmentMarker string  `json:"alignment_marker" yaml:"alignment_marker"` // '|' on match, ' ' otherwise
	Matches         int     `json:"matches" yaml:"matches"`
	Length          int     `json:"length" yaml:"length"`
	IdentityPercent float64 `json:"identity_percent" yaml:"identity_percent"`
}

// CompareSequences compares a and b without gaps. Identity is 0 when the
// compared length is 0.
func CompareSequences(a, b sequence.Sequence) ComparisonResult {
	n := min(len(a), len(b))
	s1, s2 := string(a)[:n], string(b)[:n]

	var marker strings.Builder
	marker.Grow(n)
	matches := 0
	for i := 0; i < n; i++ {
		if s1[i] == s2[i] {
			matches++
			marker.WriteByte('|')
		} else {
			marker.WriteByte(' ')
		}
	}

	return ComparisonResult{
		Seq1Truncated:   s1,
		Seq2Truncated:   s2,
		AlignmentMarker: marker.String(),
		Matches:         matches,
		Length:          n,
		IdentityPercent: percent(matches, n),
	}
}
