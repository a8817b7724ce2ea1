// Copyright 2026 Stride HPC. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package buffer provides typed, device-owned memory buffers and the
// explicit copy operation between them.
//
// A Buffer owns a contiguous N-dimensional allocation on one device. Host
// and device copies of the same logical data are independent buffers kept
// consistent only by explicit Copy calls sequenced on a queue:
//
//	host, _ := buffer.Alloc[float32](cpuDev, vec.New(n))
//	dev, _ := buffer.Alloc[float32](gpuDev, vec.New(n))
//	buffer.Copy(queue, dev, host, vec.New(n)) // host → device
//	... launch kernels ...
//	buffer.Copy(queue, host, dev, vec.New(n)) // device → host
//	queue.Wait()
//
// Kernels receive Span views, not Buffers; a Span is borrowed and carries
// the extent with it.
package buffer

import (
	"github.com/stride-hpc/stride/internal/accel"
	"github.com/stride-hpc/stride/internal/mem"
	"github.com/stride-hpc/stride/internal/vec"
)

// Element constrains buffer element types to fixed-size scalars.
type Element = mem.Element

// Buffer is an owning, typed, N-dimensional allocation on one device.
type Buffer[T Element] = mem.Buffer[T]

// Span is a non-owning view of a buffer: element data plus its extent.
type Span[T Element] = mem.Span[T]

// Alloc allocates a buffer of the given extent on the device.
// Returns an error wrapping stride.ErrAllocation if the device cannot
// satisfy the allocation.
func Alloc[T Element](dev *accel.Device, extent vec.Vec) (*Buffer[T], error) {
	return mem.Alloc[T](dev, extent)
}

// Copy enqueues a byte-exact transfer of extent elements from src to dst.
// Source and destination extents must both match extent in every dimension;
// mismatches are reported before anything is enqueued.
func Copy[T Element](q *accel.Queue, dst, src *Buffer[T], extent vec.Vec) error {
	return mem.Copy(q, dst, src, extent)
}
