package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/survive-core/internal/domain/entities"
	"github.com/ersonp/survive-core/internal/domain/ports"
)

var (
	_ ports.RandomSource = (*Source)(nil)
	_ entities.Rand      = (*Source)(nil)
)

func TestSource_IsDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)

	for range 100 {
		assert.Equal(t, a.Intn(10), b.Intn(10))
	}
}

func TestSource_IntnRange(t *testing.T) {
	s := New(7)
	for range 1000 {
		v := s.Intn(3)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 3)
	}
	assert.Equal(t, 0, s.Intn(1))
}

func TestSource_IntnPanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { New(1).Intn(0) })
}

func TestNewSeed(t *testing.T) {
	seed, err := NewSeed()
	require.NoError(t, err)
	assert.NotZero(t, seed)
}
