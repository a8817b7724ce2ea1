package accel

import (
	"fmt"

	"github.com/stride-hpc/stride/internal/vec"
)

// WorkDiv describes the execution topology of a kernel launch: how many
// blocks make up the grid, how many threads make up a block, and how many
// elements each thread processes per stride step.
//
// A WorkDiv is immutable once constructed and is passed by value into tasks.
// It places no constraint on the problem size; matching the topology to the
// data is the kernel body's responsibility (see ForEach and friends).
type WorkDiv struct {
	blocksPerGrid     vec.Vec
	threadsPerBlock   vec.Vec
	elementsPerThread vec.Vec
}

// NewWorkDiv constructs a WorkDiv from the three extent vectors.
// All three must have the same dimensionality and every component must be >= 1.
func NewWorkDiv(blocksPerGrid, threadsPerBlock, elementsPerThread vec.Vec) (WorkDiv, error) {
	if len(threadsPerBlock) != len(blocksPerGrid) || len(elementsPerThread) != len(blocksPerGrid) {
		return WorkDiv{}, fmt.Errorf("%w: mismatched dimensionality %d/%d/%d",
			ErrBadWorkDiv, len(blocksPerGrid), len(threadsPerBlock), len(elementsPerThread))
	}
	if err := blocksPerGrid.Validate(); err != nil {
		return WorkDiv{}, fmt.Errorf("%w: blocksPerGrid: %v", ErrBadWorkDiv, err)
	}
	if err := threadsPerBlock.Validate(); err != nil {
		return WorkDiv{}, fmt.Errorf("%w: threadsPerBlock: %v", ErrBadWorkDiv, err)
	}
	if err := elementsPerThread.Validate(); err != nil {
		return WorkDiv{}, fmt.Errorf("%w: elementsPerThread: %v", ErrBadWorkDiv, err)
	}
	return WorkDiv{
		blocksPerGrid:     blocksPerGrid.Clone(),
		threadsPerBlock:   threadsPerBlock.Clone(),
		elementsPerThread: elementsPerThread.Clone(),
	}, nil
}

// MustWorkDiv is like NewWorkDiv but panics on invalid extents.
// Intended for launch configurations written as literals.
func MustWorkDiv(blocksPerGrid, threadsPerBlock, elementsPerThread vec.Vec) WorkDiv {
	div, err := NewWorkDiv(blocksPerGrid, threadsPerBlock, elementsPerThread)
	if err != nil {
		panic(err)
	}
	return div
}

// Dim returns the dimensionality of the work division.
func (w WorkDiv) Dim() int {
	return w.blocksPerGrid.Dim()
}

// BlocksPerGrid returns the grid extent in blocks.
func (w WorkDiv) BlocksPerGrid() vec.Vec {
	return w.blocksPerGrid.Clone()
}

// ThreadsPerBlock returns the block extent in threads.
func (w WorkDiv) ThreadsPerBlock() vec.Vec {
	return w.threadsPerBlock.Clone()
}

// ElementsPerThread returns the thread extent in elements.
func (w WorkDiv) ElementsPerThread() vec.Vec {
	return w.elementsPerThread.Clone()
}

// GridThreadExtent returns the total grid extent in threads,
// the component-wise product of blocks per grid and threads per block.
func (w WorkDiv) GridThreadExtent() vec.Vec {
	return w.blocksPerGrid.Mul(w.threadsPerBlock)
}

// String returns a compact human-readable description.
func (w WorkDiv) String() string {
	return fmt.Sprintf("WorkDiv{blocks: %v, threads: %v, elements: %v}",
		w.blocksPerGrid, w.threadsPerBlock, w.elementsPerThread)
}
