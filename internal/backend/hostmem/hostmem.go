// Package hostmem implements host-resident memory shared by the CPU
// backends. Upload and Download degenerate to plain copies since the
// "device" storage is host memory itself.
package hostmem

import (
	"fmt"

	"github.com/stride-hpc/stride/internal/accel"
)

// Mem is one contiguous host allocation.
type Mem struct {
	data []byte
}

// Size returns the allocation size in bytes.
func (m *Mem) Size() int {
	return len(m.data)
}

// Bytes returns the storage itself.
func (m *Mem) Bytes() []byte {
	return m.data
}

// Upload copies src into the allocation.
func (m *Mem) Upload(src []byte) error {
	if len(src) != len(m.data) {
		return fmt.Errorf("upload size %d does not match allocation size %d", len(src), len(m.data))
	}
	copy(m.data, src)
	return nil
}

// Download copies the allocation into dst.
func (m *Mem) Download(dst []byte) error {
	if len(dst) != len(m.data) {
		return fmt.Errorf("download size %d does not match allocation size %d", len(dst), len(m.data))
	}
	copy(dst, m.data)
	return nil
}

// Free releases the storage.
func (m *Mem) Free() error {
	m.data = nil
	return nil
}

// Allocator creates host memory.
type Allocator struct{}

// AllocRaw allocates size bytes of zeroed host memory.
func (Allocator) AllocRaw(size int) (accel.Memory, error) {
	if size < 0 {
		return nil, fmt.Errorf("negative allocation size %d", size)
	}
	return &Mem{data: make([]byte, size)}, nil
}
