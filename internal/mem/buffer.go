// Package mem implements typed, device-owned memory buffers, borrowed span
// views for kernel access, and the explicit copy operation that keeps host
// and device allocations consistent.
package mem

import (
	"fmt"
	"unsafe"

	"github.com/stride-hpc/stride/internal/accel"
	"github.com/stride-hpc/stride/internal/vec"
)

// Element constrains buffer element types to fixed-size scalars.
type Element interface {
	~bool | ~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 |
		~int64 | ~uint64 | ~float32 | ~float64
}

// Buffer is an owning, contiguous, N-dimensional allocation of elements of
// type T on one device. Two buffers describing the same logical data (a host
// copy and a device copy) are independent allocations; they are kept
// consistent only by explicit Copy operations.
type Buffer[T Element] struct {
	dev    *accel.Device
	extent vec.Vec
	mem    accel.Memory
}

// Alloc allocates a buffer of the given extent on the device.
// Returns an error wrapping accel.ErrAllocation if the device cannot satisfy
// the allocation.
func Alloc[T Element](dev *accel.Device, extent vec.Vec) (*Buffer[T], error) {
	if err := extent.Validate(); err != nil {
		return nil, fmt.Errorf("alloc: %w", err)
	}
	var zero T
	size := extent.Size() * int(unsafe.Sizeof(zero))
	m, err := dev.AllocRaw(size)
	if err != nil {
		return nil, fmt.Errorf("%w: %d bytes on %s: %v", accel.ErrAllocation, size, dev, err)
	}
	return &Buffer[T]{dev: dev, extent: extent.Clone(), mem: m}, nil
}

// Device returns the device owning the allocation.
func (b *Buffer[T]) Device() *accel.Device {
	return b.dev
}

// Extent returns the buffer's N-dimensional extent.
func (b *Buffer[T]) Extent() vec.Vec {
	return b.extent.Clone()
}

// Len returns the total number of elements.
func (b *Buffer[T]) Len() int {
	return b.extent.Size()
}

// Span returns a non-owning typed view of the buffer for host code and
// kernel bodies. For device-resident memory the view covers the host shadow,
// which the owning backend keeps coherent around task execution. The span
// stays valid for the lifetime of the buffer.
func (b *Buffer[T]) Span() Span[T] {
	bytes := b.mem.Bytes()
	data := unsafe.Slice((*T)(unsafe.Pointer(&bytes[0])), b.extent.Size())
	return Span[T]{data: data, extent: b.extent}
}

// Free releases the allocation. The buffer and any spans taken from it must
// not be used afterwards.
func (b *Buffer[T]) Free() error {
	return b.mem.Free()
}
