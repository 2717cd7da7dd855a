package analyze

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/vibe-seq/internal/sequence"
)

func TestFindRepeats(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		opts RepeatOptions
		want []RepeatMotif
	}{
		{
			name: "dinucleotide run",
			seq:  "ATATATAT",
			opts: RepeatOptions{MinMotifLen: 2, MaxMotifLen: 2, MinRepeats: 3},
			want: []RepeatMotif{{Motif: "AT", Start: 0, End: 8, RepeatCount: 4}},
		},
		{
			name: "dinucleotide run with default options",
			seq:  "ATATATAT",
			opts: DefaultRepeatOptions(),
			want: []RepeatMotif{{Motif: "AT", Start: 0, End: 8, RepeatCount: 4}},
		},
		{
			name: "trinucleotide repeat",
			seq:  "CAGCAGCAGCAG",
			opts: DefaultRepeatOptions(),
			want: []RepeatMotif{{Motif: "CAG", Start: 0, End: 12, RepeatCount: 4}},
		},
		{
			name: "run not at sequence start",
			seq:  "GATATATC",
			opts: RepeatOptions{MinMotifLen: 2, MaxMotifLen: 2, MinRepeats: 3},
			want: []RepeatMotif{{Motif: "AT", Start: 1, End: 7, RepeatCount: 3}},
		},
		{
			name: "homopolymer reported once per motif length",
			seq:  "AAAAAAAAAAAA",
			opts: DefaultRepeatOptions(),
			want: []RepeatMotif{
				{Motif: "AA", Start: 0, End: 12, RepeatCount: 6},
				{Motif: "AAA", Start: 0, End: 12, RepeatCount: 4},
				{Motif: "AAAA", Start: 0, End: 12, RepeatCount: 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindRepeats(sequence.MustValidate(tt.seq), tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindRepeats_BelowMinimum(t *testing.T) {
	got, err := FindRepeats(sequence.MustValidate("ATATCG"), RepeatOptions{MinMotifLen: 2, MaxMotifLen: 2, MinRepeats: 3})
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = FindRepeats(sequence.MustValidate("AC"), DefaultRepeatOptions())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindRepeats_Properties(t *testing.T) {
	s := testGenome(2000, 3)
	opts := DefaultRepeatOptions()
	got, err := FindRepeats(sequence.MustValidate(s), opts)
	require.NoError(t, err)

	for _, r := range got {
		l := len(r.Motif)
		assert.GreaterOrEqual(t, r.RepeatCount, opts.MinRepeats)
		assert.GreaterOrEqual(t, l, opts.MinMotifLen)
		assert.LessOrEqual(t, l, opts.MaxMotifLen)
		assert.Equal(t, l*r.RepeatCount, r.End-r.Start)
		for k := 0; k < r.RepeatCount; k++ {
			assert.Equal(t, r.Motif, s[r.Start+k*l:r.Start+(k+1)*l])
		}
	}
}

func TestFindRepeats_InvalidOptions(t *testing.T) {
	seq := sequence.MustValidate("ATATATAT")
	for _, opts := range []RepeatOptions{
		{MinMotifLen: 0, MaxMotifLen: 2, MinRepeats: 3},
		{MinMotifLen: 1, MaxMotifLen: 2, MinRepeats: 3},
		{MinMotifLen: 3, MaxMotifLen: 2, MinRepeats: 3},
		{MinMotifLen: 2, MaxMotifLen: 3, MinRepeats: 0},
	} {
		_, err := FindRepeats(seq, opts)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidOptions), "%+v", opts)
	}
}

func TestFindRepeats_SingleBaseRunsRejected(t *testing.T) {
	got, err := FindRepeats(sequence.MustValidate("GAAAC"), RepeatOptions{MinMotifLen: 1, MaxMotifLen: 2, MinRepeats: 3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidOptions))
	assert.Nil(t, got)
}
