package analyze

import (
	"slices"

	"github.com/inodb/vibe-seq/internal/sequence"
)

// DefaultCodonTopN is the number of codons reported when no limit is given.
const DefaultCodonTopN = 10

// CodonUsageEntry is one codon and how often it occurs in frame 1.
type CodonUsageEntry struct {
	Codon string `json:"codon" yaml:"codon"`
	Count int    `json:"count" yaml:"count"`
}

// CodonUsage counts non-overlapping codons from offset 0, dropping trailing
// bases, and returns the topN most frequent. Equal counts keep the order of
// first appearance. topN <= 0 returns every codon seen.
func CodonUsage(seq sequence.Sequence, topN int) []CodonUsageEntry {
	s := string(seq)
	index := make(map[string]int)
	var entries []CodonUsageEntry

	for i := 0; i+3 <= len(s); i += 3 {
		codon := s[i : i+3]
		if k, ok := index[codon]; ok {
			entries[k].Count++
			continue
		}
		index[codon] = len(entries)
		entries = append(entries, CodonUsageEntry{Codon: codon, Count: 1})
	}

	slices.SortStableFunc(entries, func(a, b CodonUsageEntry) int {
		return b.Count - a.Count
	})

	if topN > 0 && len(entries) > topN {
		entries = entries[:topN]
	}
	return entries
}
