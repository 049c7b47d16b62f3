// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// RenderTexture is an offscreen render target. It implements the
// same [Renderer] interface as [Surface], so rendering code runs
// identically with or without a display.
type RenderTexture struct {
	// GPU is the gpu handle.
	GPU *GPU

	// Format has the size and pixel format of the textures.
	Format TextureFormat

	// NFrames is the number of textures to rotate through.
	// 1 is sufficient offscreen, where nothing blocks on present.
	NFrames int

	// device is the rendering device. If ownDevice, it was created
	// here and is released with the target.
	device    *Device
	ownDevice bool

	render Render

	frames  []*wgpu.Texture
	current int
}

// NewRenderTexture returns a new offscreen render target of the
// given size. If dev is nil, a new device is created and owned by
// the target.
func NewRenderTexture(gp *GPU, dev *Device, size image.Point) (*RenderTexture, error) {
	rt := &RenderTexture{
		GPU:     gp,
		NFrames: 1,
		device:  dev,
	}
	if dev == nil {
		var err error
		rt.device, err = NewDevice(gp)
		if err != nil {
			return nil, err
		}
		rt.ownDevice = true
	}
	rt.Format.Format = wgpu.TextureFormatRGBA8UnormSrgb
	rt.SetSize(size)
	rt.render = Render{Format: rt.Format}
	return rt, nil
}

// Render returns the render pass manager for this target.
func (rt *RenderTexture) Render() *Render {
	return &rt.render
}

// Device returns the rendering device.
func (rt *RenderTexture) Device() *Device {
	return rt.device
}

// Size returns the current size.
func (rt *RenderTexture) Size() image.Point {
	return rt.Format.Size
}

// Configured reports whether the target has textures to render into.
func (rt *RenderTexture) Configured() bool {
	return len(rt.frames) > 0
}

// SetSize sets the size of the target, reallocating the textures.
// No-op if either dimension is zero or the size is unchanged.
func (rt *RenderTexture) SetSize(size image.Point) {
	if size.X == 0 || size.Y == 0 || size == rt.Format.Size {
		return
	}
	rt.releaseFrames()
	rt.Format.Size = size
	rt.render.Format.Size = size
	rt.frames = make([]*wgpu.Texture, rt.NFrames)
	for i := range rt.frames {
		tex, err := rt.device.Device.CreateTexture(&wgpu.TextureDescriptor{
			Size: wgpu.Extent3D{
				Width:              uint32(size.X),
				Height:             uint32(size.Y),
				DepthOrArrayLayers: 1,
			},
			MipLevelCount: 1,
			SampleCount:   1,
			Dimension:     wgpu.TextureDimension2D,
			Format:        rt.Format.Format,
			Usage:         wgpu.TextureUsageRenderAttachment | wgpu.TextureUsageCopySrc,
		})
		if err != nil {
			errors.Log(err)
			rt.releaseFrames()
			return
		}
		rt.frames[i] = tex
	}
	rt.current = 0
}

// GetCurrentTexture returns a view of the next texture to render
// into, rotating through the frames.
func (rt *RenderTexture) GetCurrentTexture() (*wgpu.TextureView, error) {
	if len(rt.frames) == 0 {
		return nil, errors.New("gpu: render texture is not configured")
	}
	tex := rt.frames[rt.current]
	rt.current = (rt.current + 1) % len(rt.frames)
	view, err := tex.CreateView(nil)
	if err != nil {
		return nil, SurfaceError(err)
	}
	return view, nil
}

// Present is a no-op for offscreen targets.
func (rt *RenderTexture) Present() {}

func (rt *RenderTexture) releaseFrames() {
	for _, tex := range rt.frames {
		if tex != nil {
			tex.Release()
		}
	}
	rt.frames = nil
}

// Release releases the textures, and the device if owned.
func (rt *RenderTexture) Release() {
	rt.releaseFrames()
	if rt.ownDevice && rt.device != nil {
		rt.device.Release()
	}
	rt.device = nil
}
