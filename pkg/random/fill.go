package random

// fillSliceFromSource scatters 64-bit samples drawn from the source
// across a slice, slicing each sample into byte windows of the
// element's width, most significant window first. The final sample is
// only partially consumed if the slice length is not a multiple of the
// number of elements per sample; its remainder is discarded.
func fillSliceFromSource[T any](source uint64Source, s []T, width uint, convert func(uint64) T) {
	elementsPerSample := int(8 / width)
	for len(s) > 0 {
		sample := source.Uint64()
		n := elementsPerSample
		if len(s) < n {
			n = len(s)
		}
		remaining := uint(8)
		for i := 0; i < n; i++ {
			remaining -= width
			s[i] = convert(sample >> (remaining * 8))
		}
		s = s[n:]
	}
}

// FillSlice overwrites all elements of a slice with random values,
// drawing against the default generator. Because every 64-bit sample is
// sliced into as many values as fit, filling a slice of narrow elements
// consumes proportionally fewer samples than filling one of 64-bit
// elements.
//
// The element type must be a boolean, fixed width integer or floating
// point type. Floating point elements are filled through bit
// reinterpretation, meaning NaN and infinity patterns occur at their
// natural frequency. This function panics if the element type does not
// support bit reinterpretation, as that is a programming mistake that
// cannot be acted upon at runtime.
func FillSlice[T any](s []T) {
	width, convert, err := narrowingConversion[T]()
	if err != nil {
		panic(err)
	}
	state := defaultGenerator.getState()
	fillSliceFromSource(state.generator, s, width, convert)
	defaultGenerator.pool.Put(state)
}
