package random

import (
	"math"
	"reflect"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// narrowingConversion returns the byte width of type T, together with a
// function that reinterprets the low bytes of a 64-bit sample as a
// value of type T. It fails if T is not one of the fixed-width types
// whose values can be obtained this way.
func narrowingConversion[T any]() (uint, func(uint64) T, error) {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	if size := typ.Size(); size == 0 || 8%size != 0 {
		return 0, nil, status.Errorf(codes.InvalidArgument, "Byte width %d of type %s does not evenly divide the width of a 64-bit sample", size, typ)
	}

	var width uint
	var conversion any
	switch any((*T)(nil)).(type) {
	case *bool:
		width, conversion = 1, func(bits uint64) bool { return uint8(bits) != 0 }
	case *int8:
		width, conversion = 1, func(bits uint64) int8 { return int8(bits) }
	case *uint8:
		width, conversion = 1, func(bits uint64) uint8 { return uint8(bits) }
	case *int16:
		width, conversion = 2, func(bits uint64) int16 { return int16(bits) }
	case *uint16:
		width, conversion = 2, func(bits uint64) uint16 { return uint16(bits) }
	case *int32:
		width, conversion = 4, func(bits uint64) int32 { return int32(bits) }
	case *uint32:
		width, conversion = 4, func(bits uint64) uint32 { return uint32(bits) }
	case *float32:
		width, conversion = 4, func(bits uint64) float32 { return math.Float32frombits(uint32(bits)) }
	case *int64:
		width, conversion = 8, func(bits uint64) int64 { return int64(bits) }
	case *uint64:
		width, conversion = 8, func(bits uint64) uint64 { return bits }
	case *float64:
		width, conversion = 8, func(bits uint64) float64 { return math.Float64frombits(bits) }
	default:
		return 0, nil, status.Errorf(codes.InvalidArgument, "Values of type %s cannot be obtained through bit reinterpretation", typ)
	}
	return width, conversion.(func(uint64) T), nil
}

// NarrowingGenerator emits values of a fixed-width type T by slicing
// successive byte windows off 64-bit samples drawn from an underlying
// generator, most significant window first. A generator emitting uint8
// values thereby consumes one sample per eight values, rather than one
// sample per value.
//
// Floating point values are obtained by reinterpreting the bits of a
// window, not by uniform sampling of an interval. The emitted values
// cover the full bit pattern space of the type, including NaN and
// infinity patterns.
//
// NarrowingGenerator retains the unconsumed part of the current sample
// across calls and is not safe for concurrent use, just like the
// SingleThreadedGenerator backing it.
type NarrowingGenerator[T any] struct {
	source    SingleThreadedGenerator
	convert   func(uint64) T
	width     uint
	sample    uint64
	remaining uint
}

// NewNarrowingGenerator creates a NarrowingGenerator that draws samples
// from the provided generator. It fails if T is not a boolean, fixed
// width integer or floating point type.
func NewNarrowingGenerator[T any](source SingleThreadedGenerator) (*NarrowingGenerator[T], error) {
	width, convert, err := narrowingConversion[T]()
	if err != nil {
		return nil, err
	}
	return &NarrowingGenerator[T]{
		source:  source,
		convert: convert,
		width:   width,
	}, nil
}

// Next emits a single value of type T, drawing a new sample from the
// underlying generator only if the previous one has been fully
// consumed.
func (g *NarrowingGenerator[T]) Next() T {
	if g.remaining == 0 {
		g.sample = g.source.Uint64()
		g.remaining = 8
	}
	g.remaining -= g.width
	return g.convert(g.sample >> (g.remaining * 8))
}
