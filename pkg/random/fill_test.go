package random_test

import (
	"testing"

	"github.com/buildbarn/go-random/pkg/random"
	"github.com/stretchr/testify/require"
)

func TestFillSlice(t *testing.T) {
	t.Run("Uint64", func(t *testing.T) {
		s := make([]uint64, 512)
		random.FillSlice(s)

		distinct := make(map[uint64]struct{}, len(s))
		for _, v := range s {
			distinct[v] = struct{}{}
		}
		require.Greater(t, len(distinct), 500)
	})

	t.Run("Uint8", func(t *testing.T) {
		s := make([]uint8, 1000)
		random.FillSlice(s)

		distinct := make(map[uint8]struct{})
		for _, v := range s {
			distinct[v] = struct{}{}
		}
		require.Greater(t, len(distinct), 100)
	})

	t.Run("Bool", func(t *testing.T) {
		s := make([]bool, 1000)
		random.FillSlice(s)

		var seenTrue, seenFalse bool
		for _, v := range s {
			if v {
				seenTrue = true
			} else {
				seenFalse = true
			}
		}
		require.True(t, seenTrue)
		require.True(t, seenFalse)
	})

	t.Run("Float32", func(t *testing.T) {
		// Bit reinterpretation means NaN and infinity values are
		// permitted to occur. Only require that the fill touched
		// the slice.
		s := make([]float32, 256)
		random.FillSlice(s)

		distinct := make(map[float32]struct{}, len(s))
		for _, v := range s {
			distinct[v] = struct{}{}
		}
		require.Greater(t, len(distinct), 1)
	})

	t.Run("Empty", func(t *testing.T) {
		random.FillSlice([]uint64{})
		random.FillSlice[uint32](nil)
	})

	t.Run("UnsupportedElementType", func(t *testing.T) {
		require.Panics(t, func() {
			random.FillSlice(make([][3]byte, 4))
		})
	})
}
