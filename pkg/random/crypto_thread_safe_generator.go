package random

import (
	crypto_rand "crypto/rand"
	"encoding/binary"
	"fmt"
)

func mustCryptoRandRead(p []byte) (int, error) {
	n, err := crypto_rand.Read(p)
	if err != nil {
		panic(fmt.Sprintf("Failed to obtain random data: %s", err))
	}
	return n, nil
}

type cryptoThreadSafeGenerator struct{}

func (cryptoThreadSafeGenerator) IsThreadSafe() {}

func (g cryptoThreadSafeGenerator) Float64() float64 {
	return uniformFloat64(g)
}

func (cryptoThreadSafeGenerator) Read(p []byte) (int, error) {
	// Call into crypto_rand.Read() directly, as opposed to slicing
	// byte windows off full 64-bit samples.
	return mustCryptoRandRead(p)
}

func (g cryptoThreadSafeGenerator) Shuffle(n int, swap func(i, j int)) {
	fisherYatesShuffle(g, n, swap)
}

func (cryptoThreadSafeGenerator) Uint64() uint64 {
	var b [8]byte
	mustCryptoRandRead(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

func (g cryptoThreadSafeGenerator) Uint64N(maximum uint64) (uint64, error) {
	return uniformUint64N(g, maximum)
}

func (g cryptoThreadSafeGenerator) Uint64InRange(minimum, maximum uint64) (uint64, error) {
	return uniformUint64InRange(g, minimum, maximum)
}

// CryptoThreadSafeGenerator is an instance of ThreadSafeGenerator that
// is suitable for cryptographic purposes. All of its output is obtained
// from the operating system's entropy source. It is used by this
// package to seed the generators that are not cryptographically secure.
var CryptoThreadSafeGenerator ThreadSafeGenerator = cryptoThreadSafeGenerator{}
