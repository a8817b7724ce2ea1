// Package accel implements the core execution model of stride: work
// divisions, per-thread index computation, kernels, tasks, queues, and the
// device/platform abstraction the backends plug into.
package accel

import "fmt"

// BackendKind identifies the programming model a device belongs to.
type BackendKind string

// Supported backends.
const (
	BackendThreads BackendKind = "cpu-threads" // One goroutine per logical thread
	BackendFiber   BackendKind = "cpu-fiber"   // Cooperative, one logical thread at a time
	BackendLoopPar BackendKind = "cpu-looppar" // Worker pool parallel over blocks
	BackendWebGPU  BackendKind = "webgpu"      // WebGPU device-resident buffers
)

// Executor realizes the logical threads of a kernel launch. How a logical
// thread maps to a physical execution unit is entirely up to the backend;
// the per-element results must not depend on that choice.
type Executor interface {
	Launch(div WorkDiv, k Kernel, args []any) error
}

// Memory is one contiguous allocation owned by a buffer on some device.
//
// Bytes exposes a host-visible view of the allocation: for CPU devices the
// storage itself, for device-resident memory a coherent host shadow. Upload
// and Download move bytes between the host and the device-resident storage;
// on CPU devices they degenerate to plain copies.
type Memory interface {
	Size() int
	Bytes() []byte
	Upload(src []byte) error
	Download(dst []byte) error
	Free() error
}

// Allocator creates memory on a device.
type Allocator interface {
	AllocRaw(size int) (Memory, error)
}

// Device identifies one execution target: a backend plus a zero-based
// ordinal within that backend. Devices are immutable; they are obtained from
// a Platform and live for the duration of the program.
type Device struct {
	kind    BackendKind
	ordinal int
	name    string
	exec    Executor
	alloc   Allocator
}

// NewDevice assembles a device from its backend capabilities.
// Backend platform implementations call this; user code obtains devices
// through GetDevice.
func NewDevice(kind BackendKind, ordinal int, name string, exec Executor, alloc Allocator) *Device {
	return &Device{kind: kind, ordinal: ordinal, name: name, exec: exec, alloc: alloc}
}

// Kind returns the backend the device belongs to.
func (d *Device) Kind() BackendKind {
	return d.kind
}

// Ordinal returns the zero-based device index within its backend.
func (d *Device) Ordinal() int {
	return d.ordinal
}

// Name returns a human-readable device name.
func (d *Device) Name() string {
	return d.name
}

// AllocRaw allocates size bytes on the device.
func (d *Device) AllocRaw(size int) (Memory, error) {
	return d.alloc.AllocRaw(size)
}

func (d *Device) String() string {
	return fmt.Sprintf("%s[%d] %s", d.kind, d.ordinal, d.name)
}

// Platform enumerates the devices of one backend.
//
// Device selection is pure and idempotent: repeated calls with the same index
// return an equivalent handle.
type Platform interface {
	Kind() BackendKind
	DeviceCount() int
	Device(index int) (*Device, error)
}

// GetDevice selects a device of the platform by zero-based index.
// Returns ErrDeviceNotFound if the index is out of range.
func GetDevice(p Platform, index int) (*Device, error) {
	return p.Device(index)
}

// CheckDeviceIndex validates a device index against a platform's device
// count. Backends share this for their Device implementations.
func CheckDeviceIndex(p Platform, index int) error {
	if index < 0 || index >= p.DeviceCount() {
		return fmt.Errorf("%w: %s device %d (have %d)", ErrDeviceNotFound, p.Kind(), index, p.DeviceCount())
	}
	return nil
}
