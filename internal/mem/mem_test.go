package mem

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stride-hpc/stride/internal/accel"
	"github.com/stride-hpc/stride/internal/backend/hostmem"
	"github.com/stride-hpc/stride/internal/vec"
)

func hostDevice() *accel.Device {
	return accel.NewDevice(accel.BackendThreads, 0, "host", nil, hostmem.Allocator{})
}

func TestAllocAndSpan(t *testing.T) {
	dev := hostDevice()

	buf, err := Alloc[float32](dev, vec.New(2, 3))
	require.NoError(t, err)
	defer buf.Free()

	assert.Equal(t, 6, buf.Len())
	assert.True(t, buf.Extent().Equal(vec.New(2, 3)))

	span := buf.Span()
	require.Equal(t, 6, span.Len())

	// Fresh allocations are zeroed.
	for i := 0; i < span.Len(); i++ {
		assert.Zero(t, span.At(i))
	}

	span.SetCoord(vec.New(1, 2), 42.5)
	assert.Equal(t, float32(42.5), span.At(5)) // row-major: 1*3+2
}

func TestAllocRejectsInvalidExtent(t *testing.T) {
	dev := hostDevice()

	_, err := Alloc[float32](dev, vec.New(0))
	assert.Error(t, err)

	_, err = Alloc[float32](dev, vec.Vec{})
	assert.Error(t, err)
}

func TestCopyExtentMismatch(t *testing.T) {
	dev := hostDevice()
	q := accel.NewQueue(dev, accel.NonBlocking)
	defer q.Close()

	a, err := Alloc[int32](dev, vec.New(8))
	require.NoError(t, err)
	b, err := Alloc[int32](dev, vec.New(9))
	require.NoError(t, err)

	// Mismatch is detected before anything is enqueued.
	err = Copy(q, b, a, vec.New(8))
	assert.ErrorIs(t, err, accel.ErrExtentMismatch)
	err = Copy(q, a, b, vec.New(8))
	assert.ErrorIs(t, err, accel.ErrExtentMismatch)
	err = Copy(q, a, a, vec.New(4))
	assert.ErrorIs(t, err, accel.ErrExtentMismatch)

	require.NoError(t, q.Wait())
}

func TestCopyRoundTripExact(t *testing.T) {
	dev := hostDevice()
	q := accel.NewQueue(dev, accel.NonBlocking)
	defer q.Close()

	extent := vec.New(257) // deliberately not a power of two

	src, err := Alloc[float32](dev, extent)
	require.NoError(t, err)
	mid, err := Alloc[float32](dev, extent)
	require.NoError(t, err)
	dst, err := Alloc[float32](dev, extent)
	require.NoError(t, err)

	// Values with tricky bit patterns must survive bit-identically: a pure
	// copy performs no arithmetic.
	span := src.Span()
	span.Set(0, float32(math.NaN()))
	span.Set(1, float32(math.Inf(1)))
	span.Set(2, -0.0)
	for i := 3; i < span.Len(); i++ {
		span.Set(i, float32(i)*0.25)
	}

	require.NoError(t, Copy(q, mid, src, extent))
	require.NoError(t, Copy(q, dst, mid, extent))
	require.NoError(t, q.Wait())

	got, want := dst.Span(), src.Span()
	for i := 0; i < want.Len(); i++ {
		assert.Equal(t,
			math.Float32bits(want.At(i)),
			math.Float32bits(got.At(i)),
			"bit pattern at %d", i)
	}
}

func TestCopyBoolRoundTrip(t *testing.T) {
	dev := hostDevice()
	q := accel.NewQueue(dev, accel.Blocking)
	defer q.Close()

	extent := vec.New(10)
	src, err := Alloc[bool](dev, extent)
	require.NoError(t, err)
	dst, err := Alloc[bool](dev, extent)
	require.NoError(t, err)

	span := src.Span()
	for i := 0; i < span.Len(); i++ {
		span.Set(i, i%3 == 0)
	}

	require.NoError(t, Copy(q, dst, src, extent))

	got := dst.Span()
	for i := 0; i < got.Len(); i++ {
		assert.Equal(t, i%3 == 0, got.At(i), "index %d", i)
	}
}

func TestCopiesObeyQueueOrder(t *testing.T) {
	dev := hostDevice()
	q := accel.NewQueue(dev, accel.NonBlocking)
	defer q.Close()

	extent := vec.New(16)
	a, _ := Alloc[int64](dev, extent)
	b, _ := Alloc[int64](dev, extent)
	c, _ := Alloc[int64](dev, extent)

	span := a.Span()
	for i := 0; i < span.Len(); i++ {
		span.Set(i, int64(i*i))
	}

	// a → b → c must chain through the FIFO queue.
	require.NoError(t, Copy(q, b, a, extent))
	require.NoError(t, Copy(q, c, b, extent))
	require.NoError(t, q.Wait())

	got := c.Span()
	for i := 0; i < got.Len(); i++ {
		assert.Equal(t, int64(i*i), got.At(i))
	}
}

func TestBufferIndependence(t *testing.T) {
	dev := hostDevice()
	q := accel.NewQueue(dev, accel.Blocking)
	defer q.Close()

	extent := vec.New(4)
	a, _ := Alloc[int32](dev, extent)
	b, _ := Alloc[int32](dev, extent)

	a.Span().Set(0, 7)
	require.NoError(t, Copy(q, b, a, extent))

	// After the copy the buffers remain independent allocations.
	a.Span().Set(0, 99)
	assert.Equal(t, int32(7), b.Span().At(0))
}

func TestFreeRejectsFurtherUse(t *testing.T) {
	dev := hostDevice()

	buf, err := Alloc[float64](dev, vec.New(3))
	require.NoError(t, err)
	require.NoError(t, buf.Free())
}

func TestAllocErrorWrapsSentinel(t *testing.T) {
	dev := accel.NewDevice(accel.BackendThreads, 0, "broken", nil, failingAllocator{})
	_, err := Alloc[float32](dev, vec.New(8))
	require.Error(t, err)
	assert.True(t, errors.Is(err, accel.ErrAllocation))
}

type failingAllocator struct{}

func (failingAllocator) AllocRaw(int) (accel.Memory, error) {
	return nil, errors.New("out of memory")
}
