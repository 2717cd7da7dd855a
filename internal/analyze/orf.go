package analyze

import "github.com/inodb/vibe-seq/internal/sequence"

// ORF is an open reading frame running from an ATG through the first
// in-frame stop codon.
type ORF struct {
	Start        int                `json:"start" yaml:"start"` // first base of the start codon
	End          int                `json:"end" yaml:"end"`     // exclusive, just past the stop codon
	Frame        int                `json:"frame" yaml:"frame"` // 1, 2 or 3
	LengthNt     int                `json:"length_nt" yaml:"length_nt"`
	Protein      string             `json:"protein" yaml:"protein"` // stop excluded
	ProteinStats ProteinComposition `json:"protein_stats" yaml:"protein_stats"`
}

// FindORFs scans the three forward reading frames for ORFs.
// ORFs within a frame never overlap; frames are scanned independently,
// so results are ordered by frame and then by start.
func FindORFs(seq sequence.Sequence) []ORF {
	s := string(seq)
	var orfs []ORF

	for offset := 0; offset < 3; offset++ {
		i := offset
		for i+3 <= len(s) {
			if !IsStartCodon(s[i : i+3]) {
				i += 3
				continue
			}

			stop := findStop(s, i+3)
			if stop < 0 {
				i += 3
				continue
			}

			end := stop + 3
			protein := TranslateSequence(s[i:stop])
			orfs = append(orfs, ORF{
				Start:        i,
				End:          end,
				Frame:        offset + 1,
				LengthNt:     end - i,
				Protein:      protein,
				ProteinStats: AnalyzeProtein(protein),
			})
			i = end
		}
	}

	return orfs
}

// findStop returns the index of the first stop codon at or after from,
// stepping by whole codons, or -1 if the frame runs out first.
func findStop(s string, from int) int {
	for j := from; j+3 <= len(s); j += 3 {
		if IsStopCodon(s[j : j+3]) {
			return j
		}
	}
	return -1
}
