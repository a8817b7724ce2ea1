// Copyright 2026 Stride HPC. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package threads provides the CPU backend that runs every logical thread of
// a launch as its own goroutine. It offers the highest degree of concurrency
// of the CPU backends and suits coarse-grained kernels.
package threads

import (
	internalthreads "github.com/stride-hpc/stride/internal/backend/threads"
	"github.com/stride-hpc/stride/stride"
)

// Platform enumerates the devices of the goroutine-per-thread backend.
type Platform = internalthreads.Platform

// Compile-time check that Platform implements stride.Platform.
var _ stride.Platform = Platform{}

// NewPlatform returns the platform.
func NewPlatform() Platform {
	return internalthreads.NewPlatform()
}
