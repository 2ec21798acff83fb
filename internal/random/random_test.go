package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Deterministic(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 16; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
		assert.Equal(t, a.Intn(7), b.Intn(7))
	}
}

func TestInit_Seeded(t *testing.T) {
	r, seed := Init(7, true)
	assert.Equal(t, int64(7), seed)
	assert.Equal(t, New(7).Float64(), r.Float64())
}

func TestInit_Unseeded(t *testing.T) {
	r, seed := Init(0, false)
	assert.GreaterOrEqual(t, seed, int64(0))
	assert.Equal(t, New(seed).Float64(), r.Float64())
}

func TestFixed(t *testing.T) {
	f := &Fixed{Floats: []float64{0.1, 0.9}, Ints: []int{5, -3}}
	assert.Equal(t, 0.1, f.Float64())
	assert.Equal(t, 0.9, f.Float64())
	assert.Equal(t, 0.1, f.Float64())
	assert.Equal(t, 1, f.Intn(2))
	assert.Equal(t, 0, f.Intn(3))
	assert.Equal(t, 5, f.Draws)

	var empty Fixed
	assert.Equal(t, 0.0, empty.Float64())
	assert.Equal(t, 0, empty.Intn(4))
}

var _ Source = New(1)
var _ Source = (*Fixed)(nil)
