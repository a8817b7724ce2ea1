package webgpu

import (
	"github.com/stride-hpc/stride/internal/accel"
	"github.com/stride-hpc/stride/internal/parallel"
	"github.com/stride-hpc/stride/internal/vec"
)

// executor realizes kernel launches for the WebGPU device.
//
// TODO(webgpu): compile kernels expressed as WGSL to compute pipelines and
// dispatch workgroups directly; until then logical threads execute on the
// host against the buffer shadows, parallel over blocks, and the shadows are
// flushed back to the device afterwards so device residency stays coherent.
type executor struct {
	p *Platform
}

func (e *executor) Launch(div accel.WorkDiv, k accel.Kernel, args []any) error {
	blocks := div.BlocksPerGrid()
	threads := div.ThreadsPerBlock()

	firstErr := parallel.For(blocks.Size(), 0, func(blockID int) error {
		block := vec.Unflatten(blockID, blocks)
		var blockErr error
		vec.Coords(threads, func(thread vec.Vec) {
			if err := accel.Invoke(div, k, args, block, thread); err != nil && blockErr == nil {
				blockErr = err
			}
		})
		return blockErr
	})

	if err := e.flushAll(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// flushAll writes every live shadow back to its device buffer, so the device
// copies reflect all kernel writes after the launch.
func (e *executor) flushAll() error {
	e.p.mu.Lock()
	allocs := make([]*deviceMem, 0, len(e.p.allocs))
	for m := range e.p.allocs {
		allocs = append(allocs, m)
	}
	e.p.mu.Unlock()

	for _, m := range allocs {
		if err := m.flush(); err != nil {
			return err
		}
	}
	return nil
}
