package random

import (
	"github.com/buildbarn/go-random/pkg/clock"
)

var (
	// seedingGenerator is the shared generator from which every
	// pooled instance of the default generator draws part of its
	// seed. It is itself seeded from the operating system's entropy
	// source. Lock-based serialization is appropriate here, as the
	// seeding generator is only consulted when the pool of the
	// default generator runs empty.
	seedingGenerator = NewLockingThreadSafeGenerator(
		NewMersenneTwisterGenerator(CryptoThreadSafeGenerator.Uint64()))

	defaultGenerator = newPoolingThreadSafeGenerator(seedingGenerator, clock.SystemClock)

	// MersenneTwisterThreadSafeGenerator is an instance of
	// FixedWidthThreadSafeGenerator that is backed by a pool of
	// randomly seeded Mersenne Twister generators. It is not
	// suitable for cryptographic purposes.
	MersenneTwisterThreadSafeGenerator FixedWidthThreadSafeGenerator = defaultGenerator
)

// Init makes sure that at least one seeded generator instance is
// present in the default generator's pool, so that a latency-sensitive
// caller does not pay for seed derivation on its first draw.
func Init() {
	defaultGenerator.pool.Put(defaultGenerator.getState())
}

// Float64 generates a number in range [0.0, 1.0) using the default
// generator.
func Float64() float64 {
	return defaultGenerator.Float64()
}

// Read fills a byte slice with arbitrary data using the default
// generator. This function is guaranteed to succeed.
func Read(p []byte) (int, error) {
	return defaultGenerator.Read(p)
}

// Shuffle randomizes the order of a list of n elements using the
// default generator.
func Shuffle(n int, swap func(i, j int)) {
	defaultGenerator.Shuffle(n, swap)
}

// Uint64 generates an arbitrary 64-bit integer value using the default
// generator.
func Uint64() uint64 {
	return defaultGenerator.Uint64()
}

// Uint64N generates a number in range [0, maximum) using the default
// generator. This function fails if maximum is zero.
func Uint64N(maximum uint64) (uint64, error) {
	return defaultGenerator.Uint64N(maximum)
}

// Uint64InRange generates a number in range [minimum, maximum) using
// the default generator. This function fails if minimum does not lie
// below maximum.
func Uint64InRange(minimum, maximum uint64) (uint64, error) {
	return defaultGenerator.Uint64InRange(minimum, maximum)
}

// Bool generates a random boolean value using the default generator.
func Bool() bool {
	return defaultGenerator.Bool()
}

// Float32FromBits generates a float32 value by reinterpreting four
// random bytes, using the default generator. Values cover the full bit
// pattern space of the type, including NaN and infinity patterns.
func Float32FromBits() float32 {
	return defaultGenerator.Float32FromBits()
}

// Float64FromBits generates a float64 value by reinterpreting a full
// random sample, using the default generator. Values cover the full bit
// pattern space of the type, including NaN and infinity patterns.
func Float64FromBits() float64 {
	return defaultGenerator.Float64FromBits()
}

// Int8 generates an arbitrary 8-bit signed integer value using the
// default generator.
func Int8() int8 {
	return defaultGenerator.Int8()
}

// Int16 generates an arbitrary 16-bit signed integer value using the
// default generator.
func Int16() int16 {
	return defaultGenerator.Int16()
}

// Int32 generates an arbitrary 32-bit signed integer value using the
// default generator.
func Int32() int32 {
	return defaultGenerator.Int32()
}

// Int64 generates an arbitrary 64-bit signed integer value using the
// default generator.
func Int64() int64 {
	return defaultGenerator.Int64()
}

// Uint8 generates an arbitrary 8-bit unsigned integer value using the
// default generator.
func Uint8() uint8 {
	return defaultGenerator.Uint8()
}

// Uint16 generates an arbitrary 16-bit unsigned integer value using the
// default generator.
func Uint16() uint16 {
	return defaultGenerator.Uint16()
}

// Uint32 generates an arbitrary 32-bit unsigned integer value using the
// default generator.
func Uint32() uint32 {
	return defaultGenerator.Uint32()
}
