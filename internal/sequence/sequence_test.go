package sequence

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Sequence
	}{
		{"uppercase", "ATCG", "ATCG"},
		{"lowercase", "atcg", "ATCG"},
		{"mixed case", "AtCg", "ATCG"},
		{"surrounding whitespace", "  \tATGC\n", "ATGC"},
		{"single base", "g", "G"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.want), got.Len())
		})
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		reason   string
		position int
		char     rune
	}{
		{"empty", "", ReasonEmpty, -1, 0},
		{"whitespace only", "   \n\t", ReasonEmpty, -1, 0},
		{"ambiguity code", "ATGN", ReasonInvalidBase, 3, 'N'},
		{"uracil", "AUG", ReasonInvalidBase, 1, 'U'},
		{"inner whitespace", "AT CG", ReasonInvalidBase, 2, ' '},
		{"digit", "1ATG", ReasonInvalidBase, 0, '1'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(tt.raw)
			require.Error(t, err)
			assert.Empty(t, got)
			assert.True(t, errors.Is(err, ErrInvalidSequence))

			var invalid *InvalidSequenceError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.reason, invalid.Reason)
			assert.Equal(t, tt.position, invalid.Position)
			assert.Equal(t, tt.char, invalid.Char)
		})
	}
}

func TestInvalidSequenceError_Message(t *testing.T) {
	_, err := Validate("ATX")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `'X'`)
	assert.Contains(t, err.Error(), "position 2")

	_, err = Validate("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestMustValidate(t *testing.T) {
	assert.Equal(t, Sequence("ATG"), MustValidate(" atg "))
	assert.Panics(t, func() { MustValidate("XYZ") })
}
