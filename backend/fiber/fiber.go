// Copyright 2026 Stride HPC. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package fiber provides the cooperative CPU backend: logical threads are
// goroutines multiplexed through a single run token, so at most one executes
// at a time. Useful for debugging kernels without interleaving.
package fiber

import (
	internalfiber "github.com/stride-hpc/stride/internal/backend/fiber"
	"github.com/stride-hpc/stride/stride"
)

// Platform enumerates the devices of the fiber backend.
type Platform = internalfiber.Platform

// Compile-time check that Platform implements stride.Platform.
var _ stride.Platform = Platform{}

// NewPlatform returns the platform.
func NewPlatform() Platform {
	return internalfiber.NewPlatform()
}
