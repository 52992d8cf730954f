package random

import (
	"github.com/lazybeaver/xorshift"
)

// xorShiftSequence is the part of the xorshift library's generator
// types that is used by this package.
type xorShiftSequence interface {
	Next() uint64
}

type xorShiftStarGenerator struct {
	sequence xorShiftSequence
}

// NewXorShiftStarGenerator creates a SingleThreadedGenerator that is
// backed by the xorshift64* algorithm. Generators of this kind are
// significantly faster than MersenneTwisterGenerator and only hold
// eight bytes of state, at the cost of a far shorter period (2^64-1)
// and weaker equidistribution. They are a good fit for fire-and-forget
// randomness, such as jitter on retry delays.
func NewXorShiftStarGenerator(seed uint64) SingleThreadedGenerator {
	// The all-zero state is a fixed point of the xorshift
	// recurrence, which the library does not reject on its own.
	if seed == 0 {
		seed = 1
	}
	return &xorShiftStarGenerator{
		sequence: xorshift.NewXorShift64Star(seed),
	}
}

func (g *xorShiftStarGenerator) Float64() float64 {
	return uniformFloat64(g)
}

func (g *xorShiftStarGenerator) Read(p []byte) (int, error) {
	readFromSource(g, p)
	return len(p), nil
}

func (g *xorShiftStarGenerator) Shuffle(n int, swap func(i, j int)) {
	fisherYatesShuffle(g, n, swap)
}

func (g *xorShiftStarGenerator) Uint64() uint64 {
	return g.sequence.Next()
}

func (g *xorShiftStarGenerator) Uint64N(maximum uint64) (uint64, error) {
	return uniformUint64N(g, maximum)
}

func (g *xorShiftStarGenerator) Uint64InRange(minimum, maximum uint64) (uint64, error) {
	return uniformUint64InRange(g, minimum, maximum)
}
