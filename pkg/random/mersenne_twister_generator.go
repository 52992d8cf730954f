package random

const (
	// Degree of recurrence of the Mersenne Twister generator, i.e.
	// the number of 64-bit words of internal state.
	mersenneTwisterStateWords = 312
	// Middle word used as the recurrence offset.
	mersenneTwisterMiddleWord = 156
	// Masks separating the 33 most significant and 31 least
	// significant bits of a state word.
	mersenneTwisterUpperMask = 0xffffffff80000000
	mersenneTwisterLowerMask = 0x7fffffff
	// Coefficients of the rational normal form twist matrix.
	mersenneTwisterMatrixA = 0xb5026f5aa96619e9
)

// MersenneTwisterGenerator is a SingleThreadedGenerator implementing
// the 64-bit variant of the Mersenne Twister algorithm (MT19937-64), as
// described in the paper "Mersenne Twister: A 623-dimensionally
// equidistributed uniform pseudorandom number generator" by Matsumoto
// and Nishimura.
//
// This generator has a period of 2^19937-1 and is equidistributed in
// 311 dimensions at 64-bit accuracy. It is not suitable for
// cryptographic purposes, as observing 312 successive samples is
// sufficient to reconstruct its internal state.
type MersenneTwisterGenerator struct {
	state [mersenneTwisterStateWords]uint64
	index int
}

var _ SingleThreadedGenerator = (*MersenneTwisterGenerator)(nil)

// NewMersenneTwisterGenerator creates a MersenneTwisterGenerator whose
// state vector is expanded from a single 64-bit seed. Generators
// constructed from the same seed yield the same sequence of samples.
func NewMersenneTwisterGenerator(seed uint64) *MersenneTwisterGenerator {
	g := &MersenneTwisterGenerator{
		index: mersenneTwisterStateWords,
	}
	g.state[0] = seed
	for i := 1; i < mersenneTwisterStateWords; i++ {
		previous := g.state[i-1]
		g.state[i] = 6364136223846793005*(previous^(previous>>62)) + uint64(i)
	}
	return g
}

// twist advances the generator by regenerating all 312 words of the
// state vector in place, in increasing index order. Because the
// recurrence for word i only depends on words i, i+1 and i+156 (mod
// 312), each word may be overwritten before it is read by a later
// iteration without affecting the result.
func (g *MersenneTwisterGenerator) twist() {
	for i := 0; i < mersenneTwisterStateWords; i++ {
		x := (g.state[i] & mersenneTwisterUpperMask) |
			(g.state[(i+1)%mersenneTwisterStateWords] & mersenneTwisterLowerMask)
		xA := x >> 1
		if x&1 != 0 {
			xA ^= mersenneTwisterMatrixA
		}
		g.state[i] = g.state[(i+mersenneTwisterMiddleWord)%mersenneTwisterStateWords] ^ xA
	}
	g.index = 0
}

func (g *MersenneTwisterGenerator) Float64() float64 {
	return uniformFloat64(g)
}

func (g *MersenneTwisterGenerator) Read(p []byte) (int, error) {
	readFromSource(g, p)
	return len(p), nil
}

func (g *MersenneTwisterGenerator) Shuffle(n int, swap func(i, j int)) {
	fisherYatesShuffle(g, n, swap)
}

func (g *MersenneTwisterGenerator) Uint64() uint64 {
	if g.index >= mersenneTwisterStateWords {
		g.twist()
	}
	y := g.state[g.index]
	g.index++

	// Tempering transform, improving the equidistribution of the
	// raw state words.
	y ^= (y >> 29) & 0x5555555555555555
	y ^= (y << 17) & 0x71d67fffeda60000
	y ^= (y << 37) & 0xfff7eee000000000
	y ^= y >> 43
	return y
}

func (g *MersenneTwisterGenerator) Uint64N(maximum uint64) (uint64, error) {
	return uniformUint64N(g, maximum)
}

func (g *MersenneTwisterGenerator) Uint64InRange(minimum, maximum uint64) (uint64, error) {
	return uniformUint64InRange(g, minimum, maximum)
}
