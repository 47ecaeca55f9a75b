// Package random provides the seedable random source a game draws from.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Source is a deterministic random source for a given seed.
// It is not safe for concurrent use.
type Source struct {
	rng *rand.Rand
}

// New creates a source for seed.
func New(seed int64) *Source {
	return &Source{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a value in [0, n). It panics if n <= 0.
func (s *Source) Intn(n int) int {
	return s.rng.Intn(n)
}

// NewSeed generates a non-zero random seed using crypto/rand.
// Zero is reserved to mean "no fixed seed".
func NewSeed() (int64, error) {
	var b [8]byte
	for {
		if _, err := crand.Read(b[:]); err != nil {
			return 0, fmt.Errorf("read random seed: %w", err)
		}
		if seed := int64(binary.LittleEndian.Uint64(b[:])); seed != 0 {
			return seed, nil
		}
	}
}
