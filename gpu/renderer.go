// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"

	"github.com/cogentcore/webgpu/wgpu"
)

// Renderer is the interface for render targets: a window [Surface]
// or an offscreen [RenderTexture].
type Renderer interface {
	// Render returns the render pass manager for this target.
	Render() *Render

	// Device returns the device this target renders with.
	Device() *Device

	// Size returns the current size of the target.
	Size() image.Point

	// SetSize sets the size of the target and reconfigures it.
	// A size with a zero dimension is ignored. This is the only
	// way the dimensions of a target change.
	SetSize(size image.Point)

	// Configured reports whether the target has a valid nonzero-size
	// configuration and can produce textures.
	Configured() bool

	// GetCurrentTexture returns a view of the next texture to render
	// into. Errors are classified with [SurfaceError].
	GetCurrentTexture() (*wgpu.TextureView, error)

	// Present presents the current texture to the target and
	// releases it. No-op for offscreen targets.
	Present()

	// Release releases the target and its device resources.
	// The target must not be used after this.
	Release()
}
