// Package sequence provides nucleotide sequence normalization and validation.
package sequence

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSequence is matched by every validation failure.
var ErrInvalidSequence = errors.New("invalid sequence")

// Reasons reported by InvalidSequenceError.
const (
	ReasonEmpty       = "empty"
	ReasonInvalidBase = "invalid_base"
)

// InvalidSequenceError reports why raw input was rejected.
type InvalidSequenceError struct {
	Reason   string
	Position int  // 0-based byte offset in the normalized input, -1 when not applicable
	Char     rune // offending character for ReasonInvalidBase
}

func (e *InvalidSequenceError) Error() string {
	if e.Reason == ReasonEmpty {
		return "invalid sequence: empty after normalization"
	}
	return fmt.Sprintf("invalid sequence: character %q at position %d is not one of A, T, C, G", e.Char, e.Position)
}

// Is lets errors.Is(err, ErrInvalidSequence) match.
func (e *InvalidSequenceError) Is(target error) bool {
	return target == ErrInvalidSequence
}

// Sequence is a validated, uppercase nucleotide sequence over {A,T,C,G}.
// The zero value is empty and is never returned by Validate.
type Sequence string

// String returns the bases as a plain string.
func (s Sequence) String() string { return string(s) }

// Len returns the number of bases.
func (s Sequence) Len() int { return len(s) }

// Validate normalizes raw text (trim surrounding whitespace, uppercase)
// and checks that every base is one of A, T, C, G.
func Validate(raw string) (Sequence, error) {
	norm := strings.ToUpper(strings.TrimSpace(raw))
	if norm == "" {
		return "", &InvalidSequenceError{Reason: ReasonEmpty, Position: -1}
	}
	for i, r := range norm {
		if !IsBase(r) {
			return "", &InvalidSequenceError{Reason: ReasonInvalidBase, Position: i, Char: r}
		}
	}
	return Sequence(norm), nil
}

// MustValidate is like Validate but panics on invalid input.
// Intended for fixtures and built-in samples.
func MustValidate(raw string) Sequence {
	s, err := Validate(raw)
	if err != nil {
		panic(err)
	}
	return s
}

// IsBase reports whether r is one of the four accepted nucleotides.
func IsBase(r rune) bool {
	switch r {
	case 'A', 'T', 'C', 'G':
		return true
	}
	return false
}
