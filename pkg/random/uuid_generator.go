package random

import (
	"github.com/google/uuid"
)

// UUIDGenerator is equal to the signature of the UUID library's UUID
// generation functions. It is used within this codebase to make the
// generator injectable as part of unit tests.
type UUIDGenerator func() (uuid.UUID, error)

var (
	_ UUIDGenerator = uuid.NewRandom
	_ UUIDGenerator = uuid.NewUUID
)

// NewUUIDGenerator creates a UUIDGenerator that yields random (version
// 4) UUIDs, with all random bits drawn from the provided generator.
// Providing CryptoThreadSafeGenerator makes the resulting function
// equivalent to uuid.NewRandom(), while providing a generator with a
// known seed yields a reproducible sequence of UUIDs.
func NewUUIDGenerator(generator ThreadSafeGenerator) UUIDGenerator {
	return func() (uuid.UUID, error) {
		return uuid.NewRandomFromReader(generator)
	}
}
