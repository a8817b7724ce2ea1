// Package webgpu implements the GPU backend on top of WebGPU via the
// zero-CGO go-webgpu bindings. Buffers live in device memory as
// wgpu.Buffers; transfers go through the WebGPU queue with staging buffers.
//
// Kernel bodies are Go code; they execute on the host against a coherent
// shadow of the device buffers, which is re-synchronized to the device after
// every launch. Compiling kernels to WGSL compute shaders is future work
// (see the TODO in launch.go); the data path and device residency are real.
package webgpu

import (
	"fmt"
	"sync"

	"github.com/go-webgpu/webgpu/wgpu"

	"github.com/stride-hpc/stride/internal/accel"
)

// Platform holds the WebGPU instance, adapter, device, and queue, and
// tracks live allocations for post-launch coherence.
type Platform struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
	info     *wgpu.AdapterInfoGo

	mu     sync.Mutex
	allocs map[*deviceMem]struct{}
}

// New initializes WebGPU and returns the platform.
// Returns an error if the native library or a compatible adapter is missing.
func New() (p *Platform, err error) {
	// Recover from panic if the wgpu_native library is not found.
	defer func() {
		if r := recover(); r != nil {
			p = nil
			err = fmt.Errorf("webgpu: native library not available: %v", r)
		}
	}()

	instance, instanceErr := wgpu.CreateInstance(nil)
	if instanceErr != nil {
		return nil, fmt.Errorf("webgpu: failed to create instance: %w", instanceErr)
	}
	adapter, adapterErr := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if adapterErr != nil {
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to request adapter: %w", adapterErr)
	}

	info, infoErr := adapter.GetInfo()
	if infoErr != nil {
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to get adapter info: %w", infoErr)
	}

	device, deviceErr := adapter.RequestDevice(nil)
	if deviceErr != nil {
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to request device: %w", deviceErr)
	}

	queue := device.GetQueue()
	if queue == nil {
		device.Release()
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to get queue")
	}

	return &Platform{
		instance: instance,
		adapter:  adapter,
		device:   device,
		queue:    queue,
		info:     info,
		allocs:   make(map[*deviceMem]struct{}),
	}, nil
}

// IsAvailable checks if WebGPU is usable on this system.
func IsAvailable() (available bool) {
	// Recover from panic if the wgpu_native library is not found.
	defer func() {
		if r := recover(); r != nil {
			available = false
		}
	}()

	instance, instanceErr := wgpu.CreateInstance(nil)
	if instanceErr != nil {
		return false
	}
	defer instance.Release()

	adapter, err := instance.RequestAdapter(nil)
	if err != nil {
		return false
	}
	adapter.Release()

	return true
}

// Kind implements accel.Platform.
func (*Platform) Kind() accel.BackendKind {
	return accel.BackendWebGPU
}

// DeviceCount implements accel.Platform. WebGPU exposes only the default
// adapter, so the count is always 1.
func (*Platform) DeviceCount() int {
	return 1
}

// Device implements accel.Platform.
func (p *Platform) Device(index int) (*accel.Device, error) {
	if err := accel.CheckDeviceIndex(p, index); err != nil {
		return nil, err
	}
	name := fmt.Sprintf("WebGPU (%s %s)", p.info.Device, p.info.Vendor)
	return accel.NewDevice(p.Kind(), index, name, &executor{p: p}, &allocator{p: p}), nil
}

// Release frees all GPU resources held by the platform.
// Buffers allocated on its device should be freed first.
func (p *Platform) Release() {
	if p.queue != nil {
		p.queue.Release()
		p.queue = nil
	}
	if p.device != nil {
		p.device.Release()
		p.device = nil
	}
	if p.adapter != nil {
		p.adapter.Release()
		p.adapter = nil
	}
	if p.instance != nil {
		p.instance.Release()
		p.instance = nil
	}
}
