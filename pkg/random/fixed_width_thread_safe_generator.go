package random

// FixedWidthThreadSafeGenerator extends ThreadSafeGenerator with
// methods for obtaining values of every fixed-width numeric type. These
// values are produced by reinterpreting byte windows of the underlying
// 64-bit sample stream, meaning that multiple narrow values can be
// obtained at the cost of generating a single sample.
//
// Because floating point values are obtained through bit
// reinterpretation, Float32FromBits() and Float64FromBits() cover the
// full bit pattern space of their types, including NaN and infinity
// patterns. Callers that need a uniform value in range [0.0, 1.0)
// should call Float64() instead.
type FixedWidthThreadSafeGenerator interface {
	ThreadSafeGenerator

	Bool() bool
	Float32FromBits() float32
	Float64FromBits() float64
	Int8() int8
	Int16() int16
	Int32() int32
	Int64() int64
	Uint8() uint8
	Uint16() uint16
	Uint32() uint32
}
