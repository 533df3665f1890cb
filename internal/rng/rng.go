// Package rng provides deterministic, seed-derived random streams.
//
// Every random decision in the renderer flows from a Seed. Independent
// concerns (per-line draws, glyph positions, glyph identity) each get their
// own Stream derived from a parent, so consuming one stream never shifts the
// output of another.
package rng

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// SeedSize is the length of a Seed in bytes.
const SeedSize = 32

// Seed fully determines the output sequence of a Stream. Two streams built
// from equal seeds produce identical draws.
type Seed [SeedSize]byte

// EntropySeed draws a one-shot seed from the system entropy source. Streams
// built from it are not reproducible, so call this once at the top of the
// program and pass the resulting Seed down explicitly.
func EntropySeed() Seed {
	var s Seed
	if _, err := cryptorand.Read(s[:]); err != nil {
		// No entropy means no usable seed at all.
		panic(fmt.Sprintf("rng: entropy source failed: %v", err))
	}
	return s
}

// Stream is a deterministic random source. It is mutated by every draw and
// must not be shared across independent consumers; derive a sub-seed instead.
type Stream struct {
	r *rand.Rand
}

// New returns a Stream seeded with s.
func New(s Seed) *Stream {
	return &Stream{r: rand.New(rand.NewChaCha8(s))}
}

// DeriveSeed consumes stream state and returns a fresh seed for an
// independent child stream. Successive calls yield distinct seeds.
func (s *Stream) DeriveSeed() Seed {
	var out Seed
	for i := 0; i < SeedSize; i += 8 {
		binary.LittleEndian.PutUint64(out[i:], s.r.Uint64())
	}
	return out
}

// Bool performs a Bernoulli draw with exact success probability num/den.
// It panics if den is zero or num exceeds den.
func (s *Stream) Bool(num, den uint32) bool {
	if den == 0 || num > den {
		panic(fmt.Sprintf("rng: invalid ratio %d/%d", num, den))
	}
	return s.r.Uint32N(den) < num
}

// Intn returns a uniform int in [0, n). It panics if n <= 0: sampling an
// empty range is a contract violation, not a recoverable condition.
func (s *Stream) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn range must be positive")
	}
	return s.r.IntN(n)
}

// Float64 returns a uniform float64 in [0, 1).
func (s *Stream) Float64() float64 {
	return s.r.Float64()
}
