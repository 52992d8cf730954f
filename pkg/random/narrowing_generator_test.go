package random_test

import (
	"math"
	"testing"

	"github.com/buildbarn/go-random/internal/mock"
	"github.com/buildbarn/go-random/pkg/random"
	"github.com/buildbarn/go-random/pkg/testutil"
	"github.com/buildbarn/go-random/pkg/util"
	"github.com/stretchr/testify/require"

	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestNarrowingGeneratorUint8(t *testing.T) {
	ctrl := gomock.NewController(t)

	source := mock.NewMockSingleThreadedGenerator(ctrl)
	generator := util.Must(random.NewNarrowingGenerator[uint8](source))

	// Eight single-byte values must be carved out of a single
	// sample, most significant byte first.
	source.EXPECT().Uint64().Return(uint64(0x0123456789abcdef))
	for _, expected := range []uint8{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef} {
		require.Equal(t, expected, generator.Next())
	}

	// Only the ninth value may cause a second draw.
	source.EXPECT().Uint64().Return(uint64(0xfedcba9876543210))
	require.Equal(t, uint8(0xfe), generator.Next())
}

func TestNarrowingGeneratorUint32(t *testing.T) {
	ctrl := gomock.NewController(t)

	source := mock.NewMockSingleThreadedGenerator(ctrl)
	generator := util.Must(random.NewNarrowingGenerator[uint32](source))

	source.EXPECT().Uint64().Return(uint64(0x0123456789abcdef))
	require.Equal(t, uint32(0x01234567), generator.Next())
	require.Equal(t, uint32(0x89abcdef), generator.Next())
}

func TestNarrowingGeneratorInt16(t *testing.T) {
	ctrl := gomock.NewController(t)

	source := mock.NewMockSingleThreadedGenerator(ctrl)
	generator := util.Must(random.NewNarrowingGenerator[int16](source))

	// Signed values are plain two's complement reinterpretations of
	// their windows.
	source.EXPECT().Uint64().Return(uint64(0x80007fffffff0001))
	require.Equal(t, int16(math.MinInt16), generator.Next())
	require.Equal(t, int16(math.MaxInt16), generator.Next())
	require.Equal(t, int16(-1), generator.Next())
	require.Equal(t, int16(1), generator.Next())
}

func TestNarrowingGeneratorBool(t *testing.T) {
	ctrl := gomock.NewController(t)

	source := mock.NewMockSingleThreadedGenerator(ctrl)
	generator := util.Must(random.NewNarrowingGenerator[bool](source))

	// A boolean is true whenever its byte window is nonzero.
	source.EXPECT().Uint64().Return(uint64(0x0100ff0000000000))
	require.True(t, generator.Next())
	require.False(t, generator.Next())
	require.True(t, generator.Next())
	for i := 0; i < 5; i++ {
		require.False(t, generator.Next())
	}
}

func TestNarrowingGeneratorFloat32(t *testing.T) {
	ctrl := gomock.NewController(t)

	source := mock.NewMockSingleThreadedGenerator(ctrl)
	generator := util.Must(random.NewNarrowingGenerator[float32](source))

	source.EXPECT().Uint64().Return(uint64(0x3f8000007fc00000))
	require.Equal(t, float32(1.0), generator.Next())

	// NaN patterns must be passed through without normalization.
	v := generator.Next()
	require.True(t, math.IsNaN(float64(v)))
	require.Equal(t, uint32(0x7fc00000), math.Float32bits(v))
}

func TestNarrowingGeneratorFullWidth(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("Uint64", func(t *testing.T) {
		source := mock.NewMockSingleThreadedGenerator(ctrl)
		generator := util.Must(random.NewNarrowingGenerator[uint64](source))

		// Full-width values map to one sample each.
		source.EXPECT().Uint64().Return(uint64(0x0123456789abcdef))
		require.Equal(t, uint64(0x0123456789abcdef), generator.Next())
		source.EXPECT().Uint64().Return(uint64(0xfedcba9876543210))
		require.Equal(t, uint64(0xfedcba9876543210), generator.Next())
	})

	t.Run("Int64", func(t *testing.T) {
		source := mock.NewMockSingleThreadedGenerator(ctrl)
		generator := util.Must(random.NewNarrowingGenerator[int64](source))

		source.EXPECT().Uint64().Return(uint64(0xffffffffffffffff))
		require.Equal(t, int64(-1), generator.Next())
	})

	t.Run("Float64", func(t *testing.T) {
		source := mock.NewMockSingleThreadedGenerator(ctrl)
		generator := util.Must(random.NewNarrowingGenerator[float64](source))

		source.EXPECT().Uint64().Return(uint64(0x400921fb54442d18))
		require.Equal(t, 3.141592653589793, generator.Next())
	})
}

func TestNarrowingGeneratorXorShiftStarSource(t *testing.T) {
	// The adapter is not tied to the Mersenne Twister. Wrap the
	// xorshift64* generator and verify the windows against a second
	// instance with the same seed.
	source := random.NewXorShiftStarGenerator(42)
	reference := random.NewXorShiftStarGenerator(42)
	generator := util.Must(random.NewNarrowingGenerator[uint16](source))

	sample := reference.Uint64()
	require.Equal(t, uint16(sample>>48), generator.Next())
	require.Equal(t, uint16(sample>>32), generator.Next())
	require.Equal(t, uint16(sample>>16), generator.Next())
	require.Equal(t, uint16(sample), generator.Next())
}

func TestNewNarrowingGeneratorUnsupportedTypes(t *testing.T) {
	_, err := random.NewNarrowingGenerator[[3]byte](nil)
	testutil.RequireEqualStatus(
		t,
		status.Error(codes.InvalidArgument, "Byte width 3 of type [3]uint8 does not evenly divide the width of a 64-bit sample"),
		err)

	_, err = random.NewNarrowingGenerator[struct{}](nil)
	testutil.RequireEqualStatus(
		t,
		status.Error(codes.InvalidArgument, "Byte width 0 of type struct {} does not evenly divide the width of a 64-bit sample"),
		err)

	// Types of a permissible width are still rejected if their
	// values cannot be obtained by reinterpreting an integer.
	_, err = random.NewNarrowingGenerator[[8]byte](nil)
	testutil.RequireEqualStatus(
		t,
		status.Error(codes.InvalidArgument, "Values of type [8]uint8 cannot be obtained through bit reinterpretation"),
		err)
}
