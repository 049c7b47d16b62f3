// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image/color"

	"cogentcore.org/core/colors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Render manages the render pass for a render target, holding the
// clear color and building the pass descriptors.
type Render struct {
	// Format has the texture format of the target.
	Format TextureFormat

	// ClearColor is the color to clear the target to at the start
	// of each pass.
	ClearColor color.Color
}

func NewRender(format *TextureFormat) *Render {
	rd := &Render{ClearColor: colors.Black}
	if format != nil {
		rd.Format = *format
	}
	return rd
}

// ClearRenderPass returns a render pass descriptor that clears the
// given view to ClearColor.
func (rd *Render) ClearRenderPass(view *wgpu.TextureView) *wgpu.RenderPassDescriptor {
	r, g, b, a := colors.ToFloat32(rd.ClearColor)
	return &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			ClearValue: wgpu.Color{R: float64(r), G: float64(g), B: float64(b), A: float64(a)},
			StoreOp:    wgpu.StoreOpStore,
		}},
	}
}

// LoadRenderPass returns a render pass descriptor that loads the
// existing contents of the given view.
func (rd *Render) LoadRenderPass(view *wgpu.TextureView) *wgpu.RenderPassDescriptor {
	return &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:    view,
			LoadOp:  wgpu.LoadOpLoad,
			StoreOp: wgpu.StoreOpStore,
		}},
	}
}

// BeginRenderPass begins a render pass on the given command encoder,
// clearing the view to ClearColor.
func (rd *Render) BeginRenderPass(cmd *wgpu.CommandEncoder, view *wgpu.TextureView) *wgpu.RenderPassEncoder {
	return cmd.BeginRenderPass(rd.ClearRenderPass(view))
}

// BeginRenderPassNoClear begins a render pass on the given command
// encoder, loading the existing contents of the view.
func (rd *Render) BeginRenderPassNoClear(cmd *wgpu.CommandEncoder, view *wgpu.TextureView) *wgpu.RenderPassEncoder {
	return cmd.BeginRenderPass(rd.LoadRenderPass(view))
}
