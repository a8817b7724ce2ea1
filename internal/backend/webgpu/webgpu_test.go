package webgpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stride-hpc/stride/internal/accel"
	"github.com/stride-hpc/stride/internal/backend/hostmem"
	"github.com/stride-hpc/stride/internal/mem"
	"github.com/stride-hpc/stride/internal/vec"
)

func newTestPlatform(t *testing.T) *Platform {
	t.Helper()
	if !IsAvailable() {
		t.Skip("WebGPU not available on this system")
	}
	p, err := New()
	require.NoError(t, err)
	t.Cleanup(p.Release)
	return p
}

func TestDeviceSelection(t *testing.T) {
	p := newTestPlatform(t)

	require.Equal(t, 1, p.DeviceCount())

	dev, err := accel.GetDevice(p, 0)
	require.NoError(t, err)
	assert.Equal(t, accel.BackendWebGPU, dev.Kind())

	_, err = accel.GetDevice(p, 1)
	assert.ErrorIs(t, err, accel.ErrDeviceNotFound)
}

func TestHostDeviceRoundTrip(t *testing.T) {
	p := newTestPlatform(t)

	dev, err := accel.GetDevice(p, 0)
	require.NoError(t, err)
	host := accel.NewDevice(accel.BackendThreads, 0, "host", nil, hostmem.Allocator{})

	q := accel.NewQueue(dev, accel.NonBlocking)
	defer q.Close()

	// Odd byte count: the device buffer is padded to 4-byte alignment
	// internally, the logical extent must be preserved.
	extent := vec.New(1001)

	src, err := mem.Alloc[uint8](host, extent)
	require.NoError(t, err)
	devBuf, err := mem.Alloc[uint8](dev, extent)
	require.NoError(t, err)
	defer devBuf.Free()
	dst, err := mem.Alloc[uint8](host, extent)
	require.NoError(t, err)

	span := src.Span()
	for i := 0; i < span.Len(); i++ {
		span.Set(i, uint8(i*31))
	}

	require.NoError(t, mem.Copy(q, devBuf, src, extent))
	require.NoError(t, mem.Copy(q, dst, devBuf, extent))
	require.NoError(t, q.Wait())

	got := dst.Span()
	for i := 0; i < got.Len(); i++ {
		assert.Equal(t, uint8(i*31), got.At(i), "byte %d", i)
	}
}

func TestKernelLaunchOnDeviceBuffers(t *testing.T) {
	p := newTestPlatform(t)

	dev, err := accel.GetDevice(p, 0)
	require.NoError(t, err)
	q := accel.NewQueue(dev, accel.NonBlocking)
	defer q.Close()

	const n = 4096
	extent := vec.New(n)

	in, err := mem.Alloc[float32](dev, extent)
	require.NoError(t, err)
	defer in.Free()
	out, err := mem.Alloc[float32](dev, extent)
	require.NoError(t, err)
	defer out.Free()

	src := in.Span()
	for i := 0; i < n; i++ {
		src.Set(i, float32(i))
	}

	div := accel.MustWorkDiv(vec.New(16), vec.New(16), vec.New(4))
	kernel := accel.KernelFunc(func(idx accel.Index, args ...any) {
		a := args[0].(mem.Span[float32])
		b := args[1].(mem.Span[float32])
		accel.ForEach(idx, n, func(i int) {
			b.Set(i, a.At(i)*2)
		})
	})

	require.NoError(t, q.Enqueue(accel.NewKernelTask(div, kernel, in.Span(), out.Span())))
	require.NoError(t, q.Wait())

	got := out.Span()
	for i := 0; i < n; i++ {
		assert.Equal(t, float32(i)*2, got.At(i), "index %d", i)
	}
}
