package webgpu

import (
	"fmt"
	"unsafe"

	"github.com/go-webgpu/webgpu/wgpu"

	"github.com/stride-hpc/stride/internal/accel"
)

// WebGPU buffer copies require 4-byte aligned sizes.
func aligned(size int) uint64 {
	return (uint64(size) + 3) &^ 3
}

// deviceMem is one device-resident allocation: a storage wgpu.Buffer plus a
// coherent host shadow. The shadow is what kernels and spans see; Upload and
// Download move bytes through the WebGPU queue and keep the two in sync.
type deviceMem struct {
	p      *Platform
	buf    *wgpu.Buffer
	shadow []byte // logical size; the wgpu buffer is padded to 4-byte alignment
}

type allocator struct {
	p *Platform
}

// AllocRaw creates a zeroed storage buffer on the GPU with a matching host
// shadow.
func (a *allocator) AllocRaw(size int) (m accel.Memory, err error) {
	// Recover from wgpu panics on exhaustion so allocation failure surfaces
	// as an error at the allocating call.
	defer func() {
		if r := recover(); r != nil {
			m = nil
			err = fmt.Errorf("webgpu: buffer allocation: %v", r)
		}
	}()

	buf := a.p.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst,
		Size:  aligned(size),
	})

	dm := &deviceMem{p: a.p, buf: buf, shadow: make([]byte, size)}
	a.p.mu.Lock()
	a.p.allocs[dm] = struct{}{}
	a.p.mu.Unlock()
	return dm, nil
}

// Size returns the logical allocation size in bytes.
func (m *deviceMem) Size() int {
	return len(m.shadow)
}

// Bytes returns the host shadow of the device buffer.
func (m *deviceMem) Bytes() []byte {
	return m.shadow
}

// Upload copies src into the shadow and writes it through to the device
// buffer via a mapped-at-creation staging buffer.
func (m *deviceMem) Upload(src []byte) error {
	if len(src) != len(m.shadow) {
		return fmt.Errorf("upload size %d does not match allocation size %d", len(src), len(m.shadow))
	}
	copy(m.shadow, src)
	return m.flush()
}

// flush writes the current shadow contents to the device buffer.
func (m *deviceMem) flush() error {
	size := aligned(len(m.shadow))

	staging := m.p.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage:            wgpu.BufferUsageCopySrc,
		Size:             size,
		MappedAtCreation: wgpu.True,
	})
	defer staging.Release()

	mappedPtr := staging.GetMappedRange(0, size)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	mappedSlice := unsafe.Slice((*byte)(mappedPtr), size)
	copy(mappedSlice, m.shadow)
	staging.Unmap()

	encoder := m.p.device.CreateCommandEncoder(nil)
	encoder.CopyBufferToBuffer(staging, 0, m.buf, 0, size)
	cmdBuffer := encoder.Finish(nil)
	m.p.queue.Submit(cmdBuffer)
	return nil
}

// Download reads the device buffer back through a staging buffer, refreshes
// the shadow, and copies the result into dst.
func (m *deviceMem) Download(dst []byte) error {
	if len(dst) != len(m.shadow) {
		return fmt.Errorf("download size %d does not match allocation size %d", len(dst), len(m.shadow))
	}
	size := aligned(len(m.shadow))

	staging := m.p.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
		Size:  size,
	})
	defer staging.Release()

	encoder := m.p.device.CreateCommandEncoder(nil)
	encoder.CopyBufferToBuffer(m.buf, 0, staging, 0, size)
	cmdBuffer := encoder.Finish(nil)
	m.p.queue.Submit(cmdBuffer)

	if err := staging.MapAsync(m.p.device, wgpu.MapModeRead, 0, size); err != nil {
		return fmt.Errorf("failed to map staging buffer: %w", err)
	}
	mappedPtr := staging.GetMappedRange(0, size)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	mappedSlice := unsafe.Slice((*byte)(mappedPtr), size)
	copy(m.shadow, mappedSlice[:len(m.shadow)])
	staging.Unmap()

	copy(dst, m.shadow)
	return nil
}

// Free releases the device buffer and drops the allocation from the
// platform's coherence tracking.
func (m *deviceMem) Free() error {
	m.p.mu.Lock()
	delete(m.p.allocs, m)
	m.p.mu.Unlock()
	if m.buf != nil {
		m.buf.Release()
		m.buf = nil
	}
	m.shadow = nil
	return nil
}
