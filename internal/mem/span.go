package mem

import (
	"github.com/stride-hpc/stride/internal/vec"
)

// Span is a non-owning view of a buffer: element data plus its extent.
// Spans are what kernels receive as arguments; keeping them distinct from the
// owning Buffer makes the borrowed, shared-across-threads nature of kernel
// memory access explicit. A Span never outlives its buffer.
type Span[T Element] struct {
	data   []T
	extent vec.Vec
}

// Extent returns the N-dimensional extent of the view.
func (s Span[T]) Extent() vec.Vec {
	return s.extent.Clone()
}

// Len returns the total number of elements.
func (s Span[T]) Len() int {
	return len(s.data)
}

// At returns the element at linear (row-major) index i.
func (s Span[T]) At(i int) T {
	return s.data[i]
}

// Set stores v at linear (row-major) index i.
func (s Span[T]) Set(i int, v T) {
	s.data[i] = v
}

// AtCoord returns the element at an N-dimensional coordinate.
func (s Span[T]) AtCoord(coord vec.Vec) T {
	return s.data[vec.Flatten(coord, s.extent)]
}

// SetCoord stores v at an N-dimensional coordinate.
func (s Span[T]) SetCoord(coord vec.Vec, v T) {
	s.data[vec.Flatten(coord, s.extent)] = v
}

// Data returns the underlying slice. The slice is borrowed from the owning
// buffer; callers must respect the same ownership rules as with At/Set.
func (s Span[T]) Data() []T {
	return s.data
}
