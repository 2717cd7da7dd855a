package analyze

import "math/rand"

// testGenome returns a deterministic pseudo-random sequence of length n.
func testGenome(n int, seed int64) string {
	r := rand.New(rand.NewSource(seed))
	b := make([]byte, n)
	for i := range b {
		b[i] = "ACGT"[r.Intn(4)]
	}
	return string(b)
}
