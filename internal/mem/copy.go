package mem

import (
	"fmt"

	"github.com/stride-hpc/stride/internal/accel"
	"github.com/stride-hpc/stride/internal/vec"
)

// Copy enqueues a transfer of extent elements from src to dst on the queue.
// Source and destination extents must both match the requested extent in
// every dimension; a mismatch is reported (wrapping accel.ErrExtentMismatch)
// before anything is enqueued.
//
// The transfer is byte-exact; no arithmetic or conversion occurs. It obeys
// the queue's FIFO ordering and blocking mode like any other task.
func Copy[T Element](q *accel.Queue, dst, src *Buffer[T], extent vec.Vec) error {
	if !src.extent.Equal(extent) {
		return fmt.Errorf("%w: source extent %v, requested %v", accel.ErrExtentMismatch, src.extent, extent)
	}
	if !dst.extent.Equal(extent) {
		return fmt.Errorf("%w: destination extent %v, requested %v", accel.ErrExtentMismatch, dst.extent, extent)
	}

	srcMem, dstMem := src.mem, dst.mem
	task := accel.NewTask("copy", func(*accel.Device) error {
		tmp := make([]byte, srcMem.Size())
		if err := srcMem.Download(tmp); err != nil {
			return fmt.Errorf("copy download: %w", err)
		}
		if err := dstMem.Upload(tmp); err != nil {
			return fmt.Errorf("copy upload: %w", err)
		}
		return nil
	})
	return q.Enqueue(task)
}
