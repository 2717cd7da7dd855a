package analyze

import (
	"fmt"

	"github.com/inodb/vibe-seq/internal/sequence"
)

// GCWindow is the GC content of one fixed-size window.
type GCWindow struct {
	Start     int     `json:"start" yaml:"start"`
	End       int     `json:"end" yaml:"end"`
	GCPercent float64 `json:"gc_percent" yaml:"gc_percent"`
}

// SlidingWindowGC splits seq into consecutive non-overlapping windows of
// windowSize bases from offset 0. A trailing partial window is dropped.
func SlidingWindowGC(seq sequence.Sequence, windowSize int) ([]GCWindow, error) {
	if windowSize <= 0 {
		return nil, fmt.Errorf("%w: window size %d must be positive", ErrInvalidOptions, windowSize)
	}

	s := string(seq)
	windows := make([]GCWindow, 0, len(s)/windowSize)
	for start := 0; start+windowSize <= len(s); start += windowSize {
		end := start + windowSize
		windows = append(windows, GCWindow{
			Start:     start,
			End:       end,
			GCPercent: gcPercent(s[start:end]),
		})
	}
	return windows, nil
}
