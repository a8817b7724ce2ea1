// Package threads implements the CPU backend that realizes every logical
// thread of a launch as its own goroutine.
package threads

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/stride-hpc/stride/internal/accel"
	"github.com/stride-hpc/stride/internal/backend/hostmem"
	"github.com/stride-hpc/stride/internal/vec"
)

// Platform enumerates the devices of the goroutine-per-thread backend.
// There is exactly one device: the host CPU.
type Platform struct{}

// NewPlatform returns the platform.
func NewPlatform() Platform {
	return Platform{}
}

// Kind implements accel.Platform.
func (Platform) Kind() accel.BackendKind {
	return accel.BackendThreads
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
	name := fmt.Sprintf("CPU (%d cores, goroutine per thread)", runtime.NumCPU())
	return accel.NewDevice(p.Kind(), index, name, executor{}, hostmem.Allocator{}), nil
}

type executor struct{}

// Launch spawns one goroutine per logical thread and joins them all.
func (executor) Launch(div accel.WorkDiv, k accel.Kernel, args []any) error {
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	vec.Coords(div.BlocksPerGrid(), func(block vec.Vec) {
		vec.Coords(div.ThreadsPerBlock(), func(thread vec.Vec) {
			wg.Add(1)
			go func(block, thread vec.Vec) {
				defer wg.Done()
				if err := accel.Invoke(div, k, args, block, thread); err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
				}
			}(block, thread)
		})
	})

	wg.Wait()
	return firstErr
}
