// Copyright 2026 Stride HPC. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package looppar provides the loop-parallel CPU backend: the blocks of a
// launch are chunked over a fixed worker pool and the threads within a block
// run sequentially. The fastest CPU backend for fine-grained kernels.
package looppar

import (
	internallooppar "github.com/stride-hpc/stride/internal/backend/looppar"
	"github.com/stride-hpc/stride/stride"
)

// Platform enumerates the devices of the loop-parallel backend.
type Platform = internallooppar.Platform

// Options controls the worker pool.
type Options = internallooppar.Options

// Compile-time check that Platform implements stride.Platform.
var _ stride.Platform = Platform{}

// NewPlatform returns the platform with default options (one worker per CPU).
func NewPlatform() Platform {
	return internallooppar.NewPlatform()
}

// NewPlatformWith returns the platform with explicit options.
func NewPlatformWith(o Options) Platform {
	return internallooppar.NewPlatformWith(o)
}
