// Copyright 2026 Stride HPC. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package stride provides the public API of the stride execution model:
// work divisions, per-thread indices, kernels, tasks, queues, and device
// selection.
//
// The package defines the portable core; the concrete execution targets live
// in the backend packages:
//   - backend/threads: one goroutine per logical thread
//   - backend/fiber: cooperative, one logical thread at a time
//   - backend/looppar: worker pool parallel over blocks
//   - backend/webgpu: WebGPU device-resident buffers
//
// Example:
//
//	dev, _ := stride.GetDevice(threads.NewPlatform(), 0)
//	queue := stride.NewQueue(dev, stride.Blocking)
//	defer queue.Close()
//
//	div := stride.MustWorkDiv(vec.New(8), vec.New(1), vec.New(1))
//	kernel := stride.KernelFunc(func(idx stride.Index, args ...any) {
//	    fmt.Printf("Hello, World from stride thread %v!\n", idx.GridThreadIdx())
//	})
//	queue.Enqueue(stride.NewKernelTask(div, kernel))
//	queue.Wait()
package stride

import (
	"github.com/stride-hpc/stride/internal/accel"
	"github.com/stride-hpc/stride/internal/vec"
)

// Vec is a D-dimensional integer extent or coordinate.
type Vec = vec.Vec

// NewVec returns a Vec with the given components.
func NewVec(components ...int) Vec {
	return vec.New(components...)
}

// WorkDiv describes the execution topology of a launch:
// blocks per grid, threads per block, elements per thread.
type WorkDiv = accel.WorkDiv

// Index is the per-logical-thread view of the launch topology.
type Index = accel.Index

// Kernel is one unit of user logic, run once per logical thread.
type Kernel = accel.Kernel

// KernelFunc adapts a plain function to the Kernel interface.
type KernelFunc = accel.KernelFunc

// Task is a unit of work accepted by a queue.
type Task = accel.Task

// Queue is an ordered execution context bound to one device.
type Queue = accel.Queue

// QueueMode selects the host-side blocking behavior of a queue.
type QueueMode = accel.QueueMode

// Queue modes.
const (
	NonBlocking QueueMode = accel.NonBlocking
	Blocking    QueueMode = accel.Blocking
)

// Device identifies one execution target of a backend.
type Device = accel.Device

// Platform enumerates the devices of one backend.
type Platform = accel.Platform

// BackendKind identifies the programming model a device belongs to.
type BackendKind = accel.BackendKind

// Supported backends.
const (
	BackendThreads BackendKind = accel.BackendThreads
	BackendFiber   BackendKind = accel.BackendFiber
	BackendLoopPar BackendKind = accel.BackendLoopPar
	BackendWebGPU  BackendKind = accel.BackendWebGPU
)

// TaskError reports the failure of a single enqueued task.
type TaskError = accel.TaskError

// Common errors.
var (
	ErrDeviceNotFound = accel.ErrDeviceNotFound
	ErrAllocation     = accel.ErrAllocation
	ErrExtentMismatch = accel.ErrExtentMismatch
	ErrBadWorkDiv     = accel.ErrBadWorkDiv
	ErrQueueClosed    = accel.ErrQueueClosed
)

// NewWorkDiv constructs a validated WorkDiv from the three extent vectors.
func NewWorkDiv(blocksPerGrid, threadsPerBlock, elementsPerThread Vec) (WorkDiv, error) {
	return accel.NewWorkDiv(blocksPerGrid, threadsPerBlock, elementsPerThread)
}

// MustWorkDiv is like NewWorkDiv but panics on invalid extents.
func MustWorkDiv(blocksPerGrid, threadsPerBlock, elementsPerThread Vec) WorkDiv {
	return accel.MustWorkDiv(blocksPerGrid, threadsPerBlock, elementsPerThread)
}

// GetDevice selects a device of the platform by zero-based index.
func GetDevice(p Platform, index int) (*Device, error) {
	return accel.GetDevice(p, index)
}

// NewQueue creates a queue bound to the device.
func NewQueue(dev *Device, mode QueueMode) *Queue {
	return accel.NewQueue(dev, mode)
}

// NewKernelTask pairs a work division, a kernel, and its arguments into a
// launch task. Creating the task has no side effects; it runs when enqueued.
func NewKernelTask(div WorkDiv, k Kernel, args ...any) *Task {
	return accel.NewKernelTask(div, k, args...)
}

// ForEach calls fn for every domain index owned by the calling logical
// thread, striding with loop blocking. The general form, correct for every
// domain size.
func ForEach(idx Index, n int, fn func(i int)) {
	accel.ForEach(idx, n, fn)
}

// ForEachStrided is the pure strided loop, one element per stride step.
func ForEachStrided(idx Index, n int, fn func(i int)) {
	accel.ForEachStrided(idx, n, fn)
}

// ForEachGuarded assigns at most one element per thread, guarded by i < n.
func ForEachGuarded(idx Index, n int, fn func(i int)) {
	accel.ForEachGuarded(idx, n, fn)
}

// ForEachExact assigns exactly one element per thread. Precondition: n
// equals the launch's total thread count; violations fail fast.
func ForEachExact(idx Index, n int, fn func(i int)) {
	accel.ForEachExact(idx, n, fn)
}
