package accel

import (
	"github.com/stride-hpc/stride/internal/vec"
)

// Index is the per-logical-thread view of the launch topology. It is produced
// fresh by the executing backend for every logical thread of a launch and
// passed to the kernel as its first argument.
//
// For each level of the hierarchy it exposes both the thread's position and
// the extent at that level:
//
//	GridBlockIdx / GridBlockExtent     block coordinate within the grid
//	BlockThreadIdx / BlockThreadExtent thread coordinate within its block
//	GridThreadIdx / GridThreadExtent   thread coordinate within the whole grid
//	ThreadElemExtent                   elements processed per stride step
//
// The grid-level thread coordinate is derived as
//
//	GridThreadIdx[d] = GridBlockIdx[d]*ThreadsPerBlock[d] + BlockThreadIdx[d]
//
// which maps distinct (block, thread) pairs to distinct grid coordinates and
// covers [0, GridThreadExtent) exactly.
type Index struct {
	div            WorkDiv
	gridBlockIdx   vec.Vec
	blockThreadIdx vec.Vec
}

// NewIndex builds the index view for one logical thread. It is called by
// backend executors, once per logical thread per launch.
func NewIndex(div WorkDiv, gridBlockIdx, blockThreadIdx vec.Vec) Index {
	return Index{
		div:            div,
		gridBlockIdx:   gridBlockIdx.Clone(),
		blockThreadIdx: blockThreadIdx.Clone(),
	}
}

// Dim returns the dimensionality of the launch.
func (x Index) Dim() int {
	return x.div.Dim()
}

// WorkDiv returns the work division of the launch.
func (x Index) WorkDiv() WorkDiv {
	return x.div
}

// GridBlockIdx returns the block coordinate within the grid.
func (x Index) GridBlockIdx() vec.Vec {
	return x.gridBlockIdx.Clone()
}

// GridBlockExtent returns the grid extent in blocks.
func (x Index) GridBlockExtent() vec.Vec {
	return x.div.BlocksPerGrid()
}

// BlockThreadIdx returns the thread coordinate within its block.
func (x Index) BlockThreadIdx() vec.Vec {
	return x.blockThreadIdx.Clone()
}

// BlockThreadExtent returns the block extent in threads.
func (x Index) BlockThreadExtent() vec.Vec {
	return x.div.ThreadsPerBlock()
}

// GridThreadIdx returns the thread coordinate within the whole grid.
func (x Index) GridThreadIdx() vec.Vec {
	t := x.div.ThreadsPerBlock()
	idx := make(vec.Vec, x.Dim())
	for d := range idx {
		idx[d] = x.gridBlockIdx[d]*t[d] + x.blockThreadIdx[d]
	}
	return idx
}

// GridThreadExtent returns the total grid extent in threads.
func (x Index) GridThreadExtent() vec.Vec {
	return x.div.GridThreadExtent()
}

// ThreadElemExtent returns the thread extent in elements.
func (x Index) ThreadElemExtent() vec.Vec {
	return x.div.ElementsPerThread()
}

// GridThreadLinear returns the row-major linearization of GridThreadIdx,
// the canonical thread rank used by the 1-D workload distribution loops.
func (x Index) GridThreadLinear() int {
	return vec.Flatten(x.GridThreadIdx(), x.GridThreadExtent())
}

// GridThreadCount returns the total number of logical threads in the launch.
func (x Index) GridThreadCount() int {
	return x.GridThreadExtent().Size()
}

// ElemCount returns the number of elements each thread processes per stride
// step, linearized over all dimensions.
func (x Index) ElemCount() int {
	return x.div.ElementsPerThread().Size()
}
