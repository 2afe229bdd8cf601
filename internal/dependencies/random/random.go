package random

import (
	"lukechampine.com/frand"
)

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// String generates a random string of the given length from the given alphabet
	String(length int, alphabet string) string
}

// FastRandom implements Random using frand's ChaCha-based generator.
// Board draws need uniformity, not secrecy.
type FastRandom struct{}

// New creates a new FastRandom
func New() *FastRandom {
	return &FastRandom{}
}

// Intn returns a uniformly distributed int in [0, n)
func (r *FastRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return frand.Intn(n)
}

// String generates a random string of the given length from the given alphabet
func (r *FastRandom) String(length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		result[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(result)
}
