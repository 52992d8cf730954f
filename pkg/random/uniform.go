package random

import (
	"encoding/binary"
	"math"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// uint64Source is the raw sample stream of a generator, prior to any
// range reduction or reinterpretation. All generators in this package
// implement it, allowing the derived operations below to be shared.
type uint64Source interface {
	Uint64() uint64
}

// uniformUint64N generates a number in range [0, maximum) by drawing
// samples from the source until one is obtained that does not introduce
// modulo bias.
func uniformUint64N(source uint64Source, maximum uint64) (uint64, error) {
	if maximum == 0 {
		return 0, status.Error(codes.InvalidArgument, "Maximum must be greater than zero")
	}
	for {
		raw := source.Uint64()
		v := raw % maximum
		// Samples in the truncated bucket at the top of the
		// 64-bit space would overrepresent low remainders.
		// Discard those and draw again.
		if raw-v <= math.MaxUint64-maximum {
			return v, nil
		}
	}
}

// uniformUint64InRange generates a number in range [minimum, maximum).
func uniformUint64InRange(source uint64Source, minimum, maximum uint64) (uint64, error) {
	if minimum >= maximum {
		return 0, status.Errorf(codes.InvalidArgument, "Minimum %d does not lie below maximum %d", minimum, maximum)
	}
	v, err := uniformUint64N(source, maximum-minimum)
	if err != nil {
		return 0, err
	}
	return minimum + v, nil
}

// uniformFloat64 generates a number in range [0.0, 1.0) using the 53
// most significant bits of a single sample, matching the precision of
// the float64 significand.
func uniformFloat64(source uint64Source) float64 {
	return float64(source.Uint64()>>11) / (1 << 53)
}

// fisherYatesShuffle randomizes the order of a list of n elements by
// calling swap.
func fisherYatesShuffle(source uint64Source, n int, swap func(i, j int)) {
	if n < 0 {
		panic("Attempted to shuffle a list of negative length")
	}
	for i := n - 1; i > 0; i-- {
		// The maximum provided below is always positive, meaning
		// this call cannot fail.
		j, _ := uniformUint64N(source, uint64(i)+1)
		swap(i, int(j))
	}
}

// readFromSource fills a byte slice by slicing successive byte windows
// off 64-bit samples, most significant byte first. If the length of the
// slice is not a multiple of eight, the remainder of the final sample
// is discarded.
func readFromSource(source uint64Source, p []byte) {
	for len(p) >= 8 {
		binary.BigEndian.PutUint64(p, source.Uint64())
		p = p[8:]
	}
	if len(p) > 0 {
		sample := source.Uint64()
		for i := range p {
			p[i] = byte(sample >> (56 - 8*i))
		}
	}
}
