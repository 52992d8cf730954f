package random

import (
	"math"
	"os"
	"sync"

	"github.com/buildbarn/go-random/pkg/clock"
	"github.com/buildbarn/go-random/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	poolingThreadSafeGeneratorPrometheusMetrics sync.Once

	poolingThreadSafeGeneratorSeedDerivations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "buildbarn",
			Subsystem: "random",
			Name:      "pooling_generator_seed_derivations_total",
			Help:      "Number of pooled generator instances that have been created and seeded",
		})
	poolingThreadSafeGeneratorSeedDerivationDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "buildbarn",
			Subsystem: "random",
			Name:      "pooling_generator_seed_derivation_duration_seconds",
			Help:      "Amount of time spent seeding a new pooled generator instance",
			Buckets:   util.DecimalExponentialBuckets(-6, 5, 2),
		})
)

// pooledGeneratorState is a Mersenne Twister generator together with
// the narrowing adapters caching its partially consumed samples. Every
// state is owned by at most one goroutine at a time, so none of its
// fields require locking.
type pooledGeneratorState struct {
	generator *MersenneTwisterGenerator
	booleans  *NarrowingGenerator[bool]
	int8s     *NarrowingGenerator[int8]
	uint8s    *NarrowingGenerator[uint8]
	int16s    *NarrowingGenerator[int16]
	uint16s   *NarrowingGenerator[uint16]
	int32s    *NarrowingGenerator[int32]
	uint32s   *NarrowingGenerator[uint32]
	float32s  *NarrowingGenerator[float32]
}

type poolingThreadSafeGenerator struct {
	seedSource         ThreadSafeGenerator
	clock              clock.Clock
	residentMemorySize func() uint64
	processID          func() int

	pool sync.Pool
}

// NewPoolingThreadSafeGenerator creates a ThreadSafeGenerator that is
// backed by a pool of independently seeded MersenneTwisterGenerators.
// Every operation checks a generator instance out of the pool for the
// duration of a single draw, meaning that no locks are held on the hot
// path and throughput scales with the number of concurrent callers.
//
// Instances are created on demand whenever the pool runs empty. A new
// instance is seeded by combining one draw from the shared seed source
// with per-process and timing entropy, so that no two instances start
// from the same seed, even when created at the same instant.
func NewPoolingThreadSafeGenerator(seedSource ThreadSafeGenerator, clock clock.Clock) FixedWidthThreadSafeGenerator {
	return newPoolingThreadSafeGenerator(seedSource, clock)
}

func newPoolingThreadSafeGenerator(seedSource ThreadSafeGenerator, clock clock.Clock) *poolingThreadSafeGenerator {
	poolingThreadSafeGeneratorPrometheusMetrics.Do(func() {
		prometheus.MustRegister(poolingThreadSafeGeneratorSeedDerivations)
		prometheus.MustRegister(poolingThreadSafeGeneratorSeedDerivationDurationSeconds)
	})

	g := &poolingThreadSafeGenerator{
		seedSource:         seedSource,
		clock:              clock,
		residentMemorySize: residentMemorySize,
		processID:          os.Getpid,
	}
	g.pool.New = func() any {
		return g.newState()
	}
	return g
}

var _ FixedWidthThreadSafeGenerator = (*poolingThreadSafeGenerator)(nil)

// deriveSeed computes the seed of a new pooled generator instance.
// Entropy is gathered from a draw against the shared seed source, the
// process's resident memory size, the process ID and the amount of
// monotonic time spent gathering the former. The words are mixed into
// the current wall clock time through wrapping multiplication. Words
// that are zero are skipped, as multiplying by them would collapse the
// seed to zero.
//
// The draw against the seed source is what guarantees uniqueness of the
// seeds, as the source is thread-safe and never yields the same
// position in its stream twice. The remaining words merely make seeds
// harder to predict for an outside observer.
func (g *poolingThreadSafeGenerator) deriveSeed() uint64 {
	start := g.clock.Now()
	entropy := [4]uint64{
		g.seedSource.Uint64(),
		g.residentMemorySize(),
		uint64(g.processID()),
	}
	entropy[3] = uint64(g.clock.Now().Sub(start))

	seed := uint64(start.UnixNano())
	for _, word := range entropy {
		if word != 0 {
			seed *= word
		}
	}
	return seed
}

func (g *poolingThreadSafeGenerator) newState() *pooledGeneratorState {
	start := g.clock.Now()
	generator := NewMersenneTwisterGenerator(g.deriveSeed())
	state := &pooledGeneratorState{
		generator: generator,
		booleans:  util.Must(NewNarrowingGenerator[bool](generator)),
		int8s:     util.Must(NewNarrowingGenerator[int8](generator)),
		uint8s:    util.Must(NewNarrowingGenerator[uint8](generator)),
		int16s:    util.Must(NewNarrowingGenerator[int16](generator)),
		uint16s:   util.Must(NewNarrowingGenerator[uint16](generator)),
		int32s:    util.Must(NewNarrowingGenerator[int32](generator)),
		uint32s:   util.Must(NewNarrowingGenerator[uint32](generator)),
		float32s:  util.Must(NewNarrowingGenerator[float32](generator)),
	}

	poolingThreadSafeGeneratorSeedDerivations.Inc()
	poolingThreadSafeGeneratorSeedDerivationDurationSeconds.Observe(g.clock.Now().Sub(start).Seconds())
	return state
}

func (g *poolingThreadSafeGenerator) getState() *pooledGeneratorState {
	return g.pool.Get().(*pooledGeneratorState)
}

func (g *poolingThreadSafeGenerator) IsThreadSafe() {}

func (g *poolingThreadSafeGenerator) Float64() float64 {
	state := g.getState()
	v := state.generator.Float64()
	g.pool.Put(state)
	return v
}

func (g *poolingThreadSafeGenerator) Read(p []byte) (int, error) {
	state := g.getState()
	n, err := state.generator.Read(p)
	g.pool.Put(state)
	return n, err
}

func (g *poolingThreadSafeGenerator) Shuffle(n int, swap func(i, j int)) {
	state := g.getState()
	state.generator.Shuffle(n, swap)
	g.pool.Put(state)
}

func (g *poolingThreadSafeGenerator) Uint64() uint64 {
	state := g.getState()
	v := state.generator.Uint64()
	g.pool.Put(state)
	return v
}

func (g *poolingThreadSafeGenerator) Uint64N(maximum uint64) (uint64, error) {
	state := g.getState()
	v, err := state.generator.Uint64N(maximum)
	g.pool.Put(state)
	return v, err
}

func (g *poolingThreadSafeGenerator) Uint64InRange(minimum, maximum uint64) (uint64, error) {
	state := g.getState()
	v, err := state.generator.Uint64InRange(minimum, maximum)
	g.pool.Put(state)
	return v, err
}

func (g *poolingThreadSafeGenerator) Bool() bool {
	state := g.getState()
	v := state.booleans.Next()
	g.pool.Put(state)
	return v
}

func (g *poolingThreadSafeGenerator) Int8() int8 {
	state := g.getState()
	v := state.int8s.Next()
	g.pool.Put(state)
	return v
}

func (g *poolingThreadSafeGenerator) Uint8() uint8 {
	state := g.getState()
	v := state.uint8s.Next()
	g.pool.Put(state)
	return v
}

func (g *poolingThreadSafeGenerator) Int16() int16 {
	state := g.getState()
	v := state.int16s.Next()
	g.pool.Put(state)
	return v
}

func (g *poolingThreadSafeGenerator) Uint16() uint16 {
	state := g.getState()
	v := state.uint16s.Next()
	g.pool.Put(state)
	return v
}

func (g *poolingThreadSafeGenerator) Int32() int32 {
	state := g.getState()
	v := state.int32s.Next()
	g.pool.Put(state)
	return v
}

func (g *poolingThreadSafeGenerator) Uint32() uint32 {
	state := g.getState()
	v := state.uint32s.Next()
	g.pool.Put(state)
	return v
}

func (g *poolingThreadSafeGenerator) Float32FromBits() float32 {
	state := g.getState()
	v := state.float32s.Next()
	g.pool.Put(state)
	return v
}

// Int64 and Float64FromBits reinterpret a full sample, so they bypass
// the narrowing adapters entirely.

func (g *poolingThreadSafeGenerator) Int64() int64 {
	state := g.getState()
	v := int64(state.generator.Uint64())
	g.pool.Put(state)
	return v
}

func (g *poolingThreadSafeGenerator) Float64FromBits() float64 {
	state := g.getState()
	v := math.Float64frombits(state.generator.Uint64())
	g.pool.Put(state)
	return v
}
