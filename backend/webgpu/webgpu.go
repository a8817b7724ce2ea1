// Copyright 2026 Stride HPC. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides the GPU backend built on WebGPU.
//
// WebGPU is a cross-platform graphics and compute API that works on:
//   - Windows (via D3D12)
//   - macOS (via Metal)
//   - Linux (via Vulkan)
//
// Buffers allocated on the WebGPU device are device-resident wgpu.Buffers;
// transfers run through the WebGPU queue. Kernel bodies execute on the host
// against a coherent shadow until WGSL kernel compilation lands.
//
// Example:
//
//	if webgpu.IsAvailable() {
//	    platform, _ := webgpu.New()
//	    defer platform.Release()
//	    dev, _ := stride.GetDevice(platform, 0)
//	    ...
//	}
package webgpu

import (
	internalwebgpu "github.com/stride-hpc/stride/internal/backend/webgpu"
	"github.com/stride-hpc/stride/stride"
)

// Platform holds the WebGPU instance, adapter, device, and queue.
type Platform = internalwebgpu.Platform

// Compile-time check that Platform implements stride.Platform.
var _ stride.Platform = (*Platform)(nil)

// New initializes WebGPU and returns the platform.
// Returns an error if the native library or a compatible adapter is missing.
func New() (*Platform, error) {
	return internalwebgpu.New()
}

// IsAvailable checks if WebGPU is usable on the current system.
// Useful for graceful fallback to a CPU backend:
//
//	var platform stride.Platform = looppar.NewPlatform()
//	if webgpu.IsAvailable() {
//	    platform, _ = webgpu.New()
//	}
func IsAvailable() bool {
	return internalwebgpu.IsAvailable()
}
