package analyze

// Average molecular weights (Da) of the 20 standard amino acids.
var aminoAcidWeights = map[byte]float64{
	'A': 89.09, 'C': 121.16, 'D': 133.10, 'E': 147.13,
	'F': 165.19, 'G': 75.07, 'H': 155.16, 'I': 131.17,
	'K': 146.19, 'L': 131.17, 'M': 149.21, 'N': 132.12,
	'P': 115.13, 'Q': 146.15, 'R': 174.20, 'S': 105.09,
	'T': 119.12, 'V': 117.15, 'W': 204.23, 'Y': 181.19,
}

// ProteinComposition summarizes a translated protein.
type ProteinComposition struct {
	Length           int                `json:"length" yaml:"length"`
	Counts           map[string]int     `json:"counts" yaml:"counts"`
	FrequencyPercent map[string]float64 `json:"frequency_percent" yaml:"frequency_percent"`
	Weight           float64            `json:"weight" yaml:"weight"`
}

// AnalyzeProtein computes residue counts, frequencies and molecular weight.
// Residues outside the standard table are counted but weigh nothing.
func AnalyzeProtein(protein string) ProteinComposition {
	pc := ProteinComposition{
		Length:           len(protein),
		Counts:           make(map[string]int),
		FrequencyPercent: make(map[string]float64),
	}

	var weight float64
	for i := 0; i < len(protein); i++ {
		aa := protein[i]
		pc.Counts[string(aa)]++
		w, _ := residueWeight(aa)
		weight += w
	}
	for aa, n := range pc.Counts {
		pc.FrequencyPercent[aa] = percent(n, pc.Length)
	}
	pc.Weight = round2(weight)

	return pc
}

// residueWeight returns the table weight of a residue and whether it is known.
func residueWeight(aa byte) (float64, bool) {
	w, ok := aminoAcidWeights[aa]
	return w, ok
}
