// Package vec provides the D-dimensional integer vectors used for extents
// and coordinates throughout stride.
package vec

import "fmt"

// Vec is a D-dimensional integer vector. Depending on context it holds an
// extent (sizes per dimension) or a coordinate (position per dimension).
type Vec []int

// New returns a Vec with the given components.
func New(components ...int) Vec {
	v := make(Vec, len(components))
	copy(v, components)
	return v
}

// Dim returns the dimensionality of the vector.
func (v Vec) Dim() int {
	return len(v)
}

// Size returns the product of all components. An empty Vec has size 1.
func (v Vec) Size() int {
	n := 1
	for _, c := range v {
		n *= c
	}
	return n
}

// Validate checks that the vector is a valid extent (all components >= 1).
func (v Vec) Validate() error {
	if len(v) == 0 {
		return fmt.Errorf("extent must have at least one dimension")
	}
	for i, c := range v {
		if c < 1 {
			return fmt.Errorf("invalid extent at dimension %d: %d (must be >= 1)", i, c)
		}
	}
	return nil
}

// Equal checks if two vectors are equal component-wise.
func (v Vec) Equal(other Vec) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if v[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the vector.
func (v Vec) Clone() Vec {
	clone := make(Vec, len(v))
	copy(clone, v)
	return clone
}

// Mul returns the component-wise product of v and other.
// Both vectors must have the same dimensionality.
func (v Vec) Mul(other Vec) Vec {
	out := make(Vec, len(v))
	for i := range v {
		out[i] = v[i] * other[i]
	}
	return out
}

// Strides calculates row-major strides for an extent.
// stride[i] is the product of all components after i.
func (v Vec) Strides() []int {
	strides := make([]int, len(v))
	if len(v) == 0 {
		return strides
	}
	strides[len(v)-1] = 1
	for i := len(v) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * v[i+1]
	}
	return strides
}

// Flatten converts a coordinate within an extent to a linear row-major index.
func Flatten(coord, extent Vec) int {
	idx := 0
	for d := 0; d < len(extent); d++ {
		idx = idx*extent[d] + coord[d]
	}
	return idx
}

// Unflatten converts a linear row-major index to a coordinate within an extent.
func Unflatten(linear int, extent Vec) Vec {
	coord := make(Vec, len(extent))
	for d := len(extent) - 1; d >= 0; d-- {
		coord[d] = linear % extent[d]
		linear /= extent[d]
	}
	return coord
}

// Coords calls fn once for every coordinate in [0, extent) per dimension,
// in row-major order.
func Coords(extent Vec, fn func(coord Vec)) {
	n := extent.Size()
	for i := 0; i < n; i++ {
		fn(Unflatten(i, extent))
	}
}
