// Package random provides the randomness used by the transform. Sources are
// not safe for concurrent use; give each engine its own.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	mathrand "math/rand"
	"time"
)

// Source draws the two kinds of values the transform needs.
type Source interface {
	// Float64 returns a uniform value in [0,1).
	Float64() float64
	// Intn returns a uniform value in [0,n). n must be positive.
	Intn(n int) int
}

// New returns a deterministic source for seed.
func New(seed int64) *mathrand.Rand {
	return mathrand.New(mathrand.NewSource(seed))
}

// NewSeed draws a seed from crypto/rand, falling back to the clock.
func NewSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.BigEndian.Uint64(b[:]) &^ (1 << 63))
}

// Init returns a source and the seed it was created from. When seeded is
// false a fresh seed is drawn so the run can be reproduced later.
func Init(seed int64, seeded bool) (*mathrand.Rand, int64) {
	if !seeded {
		seed = NewSeed()
	}
	return New(seed), seed
}

// Fixed replays scripted values. It is meant for tests and wraps around when
// exhausted. Intn returns each scripted int modulo n.
type Fixed struct {
	Floats []float64
	Ints   []int

	fi, ii int
	// Draws counts calls to Float64 and Intn.
	Draws int
}

func (f *Fixed) Float64() float64 {
	f.Draws++
	if len(f.Floats) == 0 {
		return 0
	}
	v := f.Floats[f.fi%len(f.Floats)]
	f.fi++
	return v
}

func (f *Fixed) Intn(n int) int {
	f.Draws++
	if len(f.Ints) == 0 {
		return 0
	}
	v := f.Ints[f.ii%len(f.Ints)]
	f.ii++
	if v < 0 {
		v = -v
	}
	return v % n
}
