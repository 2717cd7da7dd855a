package analyze

import (
	"math"

	"github.com/inodb/vibe-seq/internal/sequence"
)

// Bases lists the nucleotides in reporting order.
var Bases = [4]byte{'A', 'T', 'C', 'G'}

// CompositionResult holds per-base counts and GC content.
type CompositionResult struct {
	Counts    map[string]int `json:"counts" yaml:"counts"`
	Length    int            `json:"length" yaml:"length"`
	GCPercent float64        `json:"gc_percent" yaml:"gc_percent"`
}

// Composition counts each base and computes the GC percentage.
func Composition(seq sequence.Sequence) CompositionResult {
	var counts [256]int
	for i := 0; i < len(seq); i++ {
		counts[seq[i]]++
	}

	res := CompositionResult{
		Counts: make(map[string]int, len(Bases)),
		Length: len(seq),
	}
	for _, b := range Bases {
		res.Counts[string(b)] = counts[b]
	}
	res.GCPercent = percent(counts['G']+counts['C'], len(seq))
	return res
}

// gcPercent returns the GC percentage of s (0 for an empty string).
func gcPercent(s string) float64 {
	gc := 0
	for i := 0; i < len(s); i++ {
		if s[i] == 'G' || s[i] == 'C' {
			gc++
		}
	}
	return percent(gc, len(s))
}

// percent returns 100*part/total rounded to 2 decimals, or 0 when total is 0.
func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(100 * float64(part) / float64(total))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
