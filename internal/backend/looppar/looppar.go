// Package looppar implements the loop-parallel CPU backend: blocks of a
// launch are chunked over a fixed pool of worker goroutines, and the threads
// within one block run sequentially on the worker that owns the block. This
// mirrors compiler-directive loop parallelism (one parallel loop over
// blocks) and is the fastest CPU backend for fine-grained kernels, since it
// maximizes cache reuse within a block.
package looppar

import (
	"fmt"
	"runtime"

	"github.com/stride-hpc/stride/internal/accel"
	"github.com/stride-hpc/stride/internal/backend/hostmem"
	"github.com/stride-hpc/stride/internal/parallel"
	"github.com/stride-hpc/stride/internal/vec"
)

// Options controls the worker pool.
type Options struct {
	// Workers is the number of worker goroutines a launch is chunked over.
	// Zero selects runtime.NumCPU(). Degree 1 executes all blocks
	// sequentially, which is useful for determinism comparisons.
	Workers int
}

// Platform enumerates the devices of the loop-parallel backend.
// There is exactly one device: the host CPU.
type Platform struct {
	workers int
}

// NewPlatform returns the platform with default options.
func NewPlatform() Platform {
	return NewPlatformWith(Options{})
}

// NewPlatformWith returns the platform with explicit options.
func NewPlatformWith(o Options) Platform {
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	return Platform{workers: o.Workers}
}

// Kind implements accel.Platform.
func (Platform) Kind() accel.BackendKind {
	return accel.BackendLoopPar
}

// DeviceCount implements accel.Platform.
func (Platform) DeviceCount() int {
	return 1
}

// Device implements accel.Platform.
func (p Platform) Device(index int) (*accel.Device, error) {
	if err := accel.CheckDeviceIndex(p, index); err != nil {
		return nil, err
	}
	name := fmt.Sprintf("CPU (%d workers, parallel over blocks)", p.workers)
	return accel.NewDevice(p.Kind(), index, name, executor{workers: p.workers}, hostmem.Allocator{}), nil
}

type executor struct {
	workers int
}

// Launch distributes the grid's blocks over the worker pool. Each worker
// owns a contiguous range of linear block indices and executes the block's
// threads sequentially.
func (e executor) Launch(div accel.WorkDiv, k accel.Kernel, args []any) error {
	blocks := div.BlocksPerGrid()
	threads := div.ThreadsPerBlock()

	return parallel.For(blocks.Size(), e.workers, func(blockID int) error {
		block := vec.Unflatten(blockID, blocks)
		var firstErr error
		vec.Coords(threads, func(thread vec.Vec) {
			if err := accel.Invoke(div, k, args, block, thread); err != nil && firstErr == nil {
				firstErr = err
			}
		})
		return firstErr
	})
}
