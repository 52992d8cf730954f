package random

import (
	"sync"
)

type lockingThreadSafeGenerator struct {
	lock sync.Mutex
	base SingleThreadedGenerator
}

// NewLockingThreadSafeGenerator creates a ThreadSafeGenerator out of a
// SingleThreadedGenerator by serializing all operations with a mutex.
// Every operation holds the lock for the duration of a single call
// against the underlying generator, so concurrent callers never observe
// the same sample.
//
// Generators of this kind do not scale to many concurrent callers. For
// frequent use on hot paths, NewPoolingThreadSafeGenerator() should be
// preferred.
func NewLockingThreadSafeGenerator(base SingleThreadedGenerator) ThreadSafeGenerator {
	return &lockingThreadSafeGenerator{
		base: base,
	}
}

func (g *lockingThreadSafeGenerator) IsThreadSafe() {}

func (g *lockingThreadSafeGenerator) Float64() float64 {
	g.lock.Lock()
	defer g.lock.Unlock()

	return g.base.Float64()
}

func (g *lockingThreadSafeGenerator) Read(p []byte) (int, error) {
	g.lock.Lock()
	defer g.lock.Unlock()

	return g.base.Read(p)
}

func (g *lockingThreadSafeGenerator) Shuffle(n int, swap func(i, j int)) {
	g.lock.Lock()
	defer g.lock.Unlock()

	g.base.Shuffle(n, swap)
}

func (g *lockingThreadSafeGenerator) Uint64() uint64 {
	g.lock.Lock()
	defer g.lock.Unlock()

	return g.base.Uint64()
}

func (g *lockingThreadSafeGenerator) Uint64N(maximum uint64) (uint64, error) {
	g.lock.Lock()
	defer g.lock.Unlock()

	return g.base.Uint64N(maximum)
}

func (g *lockingThreadSafeGenerator) Uint64InRange(minimum, maximum uint64) (uint64, error) {
	g.lock.Lock()
	defer g.lock.Unlock()

	return g.base.Uint64InRange(minimum, maximum)
}
