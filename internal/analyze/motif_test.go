package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/vibe-seq/internal/sequence"
)

func TestScanMotifs(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want []MotifMatch
	}{
		{
			name: "Kozak with alternation position",
			seq:  "GCCGCCATGGAA",
			want: []MotifMatch{
				{Name: "Kozak", Pattern: "GCC[AG]CCATGG", Start: 0, End: 10, MatchedText: "GCCGCCATGG"},
			},
		},
		{
			name: "TATA box",
			seq:  "TATAAAAG",
			want: []MotifMatch{
				{Name: "TATA_box", Pattern: "TATA[AT]A[AT]", Start: 0, End: 7, MatchedText: "TATAAAA"},
			},
		},
		{
			name: "adjacent matches are all reported",
			seq:  "AGGAGGAGGAGG",
			want: []MotifMatch{
				{Name: "Shine_Dalgarno", Pattern: "AGGAGG", Start: 0, End: 6, MatchedText: "AGGAGG"},
				{Name: "Shine_Dalgarno", Pattern: "AGGAGG", Start: 6, End: 12, MatchedText: "AGGAGG"},
			},
		},
		{
			name: "overlapping occurrence of the same motif is skipped",
			seq:  "AATAAATAAA",
			want: []MotifMatch{
				{Name: "PolyA_signal", Pattern: "AATAAA", Start: 0, End: 6, MatchedText: "AATAAA"},
			},
		},
		{
			name: "different motifs may overlap, reported in catalog order",
			seq:  "GGCCAATCTATAAAAGGGCGG",
			want: []MotifMatch{
				{Name: "TATA_box", Pattern: "TATA[AT]A[AT]", Start: 8, End: 15, MatchedText: "TATAAAA"},
				{Name: "CAAT_box", Pattern: "GGCCAATCT", Start: 0, End: 9, MatchedText: "GGCCAATCT"},
				{Name: "GC_box", Pattern: "GGGCGG", Start: 15, End: 21, MatchedText: "GGGCGG"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScanMotifs(sequence.MustValidate(tt.seq))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScanMotifs_NoMatch(t *testing.T) {
	assert.Empty(t, ScanMotifs(sequence.MustValidate("CCCCCC")))
	assert.Empty(t, ScanMotifs(sequence.MustValidate("A")))
}

func TestCompileMotif(t *testing.T) {
	m, err := CompileMotif("kozak", "GCC[AG]CCATGG")
	require.NoError(t, err)
	assert.Equal(t, 10, m.Len())

	assert.True(t, m.MatchAt("GCCACCATGG", 0))
	assert.True(t, m.MatchAt("TTGCCGCCATGG", 2))
	assert.False(t, m.MatchAt("GCCTCCATGG", 0))
	assert.False(t, m.MatchAt("GCCACCATG", 0), "window past end")
	assert.False(t, m.MatchAt("GCCACCATGG", -1))
}

func TestCompileMotif_Errors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"empty", ""},
		{"ambiguity code", "ATN"},
		{"lowercase", "atg"},
		{"unterminated group", "AT[GC"},
		{"empty group", "A[]T"},
		{"invalid base in group", "A[XG]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CompileMotif("bad", tt.pattern)
			assert.Error(t, err)
		})
	}
}

func TestScanMotif_Custom(t *testing.T) {
	m := MustCompileMotif("EcoRI", "GAATTC")
	got := ScanMotif(sequence.MustValidate("GAATTCAGAATTC"), m)
	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0].Start)
	assert.Equal(t, 7, got[1].Start)
	assert.Equal(t, "EcoRI", got[1].Name)
}

func TestMotifCatalog(t *testing.T) {
	cat := MotifCatalog()
	require.Len(t, cat, 6)
	assert.Equal(t, "TATA_box", cat[0].Name)

	// Returned slice is a copy.
	cat[0] = nil
	assert.NotNil(t, MotifCatalog()[0])
}
