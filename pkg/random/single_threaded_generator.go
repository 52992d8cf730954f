package random

// SingleThreadedGenerator is a Random Number Generator (RNG) that
// cannot be used concurrently. Implementations of this interface
// produce a stream of 64-bit samples, with all other operations being
// derived from that stream.
type SingleThreadedGenerator interface {
	// Generates a number in range [0.0, 1.0), using 53 bits of
	// entropy.
	Float64() float64
	// Generates arbitrary bytes of data. This method is guaranteed
	// to succeed.
	Read(p []byte) (int, error)
	// Shuffle the elements in a list.
	Shuffle(n int, swap func(i, j int))
	// Generates an arbitrary 64-bit integer value.
	Uint64() uint64
	// Generates a number in range [0, maximum). This method fails if
	// maximum is zero.
	Uint64N(maximum uint64) (uint64, error)
	// Generates a number in range [minimum, maximum). This method
	// fails if minimum does not lie below maximum.
	Uint64InRange(minimum, maximum uint64) (uint64, error)
}
