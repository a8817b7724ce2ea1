package accel

import (
	"fmt"

	"github.com/stride-hpc/stride/internal/vec"
)

// Kernel is one unit of user logic, run once per logical thread of a launch.
//
// Run must be safe to invoke concurrently: it may read its arguments and
// write to caller-supplied buffers, but each logical thread must only write
// to indices it owns (see ForEach). Kernels return nothing; failures are
// expressed by panicking, which the executing backend surfaces as a task
// error.
type Kernel interface {
	Run(idx Index, args ...any)
}

// KernelFunc adapts a plain function to the Kernel interface.
type KernelFunc func(idx Index, args ...any)

// Run implements Kernel.
func (f KernelFunc) Run(idx Index, args ...any) {
	f(idx, args...)
}

// Invoke runs a kernel for a single logical thread, converting a panic in the
// kernel body into an error. Backend executors call this once per logical
// thread.
func Invoke(div WorkDiv, k Kernel, args []any, gridBlockIdx, blockThreadIdx vec.Vec) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("kernel panicked at block %v thread %v: %v", gridBlockIdx, blockThreadIdx, r)
		}
	}()
	k.Run(NewIndex(div, gridBlockIdx, blockThreadIdx), args...)
	return nil
}
