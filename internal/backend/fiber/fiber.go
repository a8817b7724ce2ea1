// Package fiber implements the cooperative CPU backend: every logical thread
// of a launch is a goroutine, but a single run token is passed between them
// so that at most one executes at a time. Since kernels do not suspend
// mid-execution, each logical thread runs to completion before handing the
// token on, like cooperative fibers multiplexed on one OS thread.
package fiber

import (
	"sync"

	"github.com/stride-hpc/stride/internal/accel"
	"github.com/stride-hpc/stride/internal/backend/hostmem"
	"github.com/stride-hpc/stride/internal/vec"
)

// Platform enumerates the devices of the fiber backend.
// There is exactly one device: the host CPU.
type Platform struct{}

// NewPlatform returns the platform.
func NewPlatform() Platform {
	return Platform{}
}

// Kind implements accel.Platform.
func (Platform) Kind() accel.BackendKind {
	return accel.BackendFiber
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
	return accel.NewDevice(p.Kind(), index, "CPU (cooperative fibers)", executor{}, hostmem.Allocator{}), nil
}

type executor struct{}

// Launch runs every logical thread as a goroutine gated by a capacity-1
// token, so the launch is concurrent in structure but serial in execution.
func (executor) Launch(div accel.WorkDiv, k accel.Kernel, args []any) error {
	token := make(chan struct{}, 1)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	vec.Coords(div.BlocksPerGrid(), func(block vec.Vec) {
		vec.Coords(div.ThreadsPerBlock(), func(thread vec.Vec) {
			wg.Add(1)
			go func(block, thread vec.Vec) {
				defer wg.Done()
				token <- struct{}{}
				err := accel.Invoke(div, k, args, block, thread)
				<-token
				if err != nil {
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
