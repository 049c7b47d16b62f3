// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"image"
	"image/color"

	"cogentcore.org/spectrum/gpu"
	"github.com/cogentcore/webgpu/wgpu"
)

// scene is the GPU-backed renderer: adapter and device negotiation,
// a window surface, and a frame producer that clears the surface.
// Drawing beyond the clear hangs off the render pass here.
type scene struct {
	gp *gpu.GPU
	sf gpu.Renderer
}

// newScene negotiates the full GPU stack for the given window
// surface. It runs off the event-loop thread; the result crosses
// back over the ready channel.
func newScene(wsurf *wgpu.Surface, size image.Point, clear color.Color) (*scene, error) {
	gp, err := gpu.NewGPU(wsurf)
	if err != nil {
		return nil, err
	}
	sf, err := gpu.NewSurface(gp, wsurf, size)
	if err != nil {
		gp.Release()
		return nil, err
	}
	sf.Render().ClearColor = clear
	return &scene{gp: gp, sf: sf}, nil
}

func (sc *scene) SetSize(size image.Point) {
	sc.sf.SetSize(size)
}

func (sc *scene) Size() image.Point {
	return sc.sf.Size()
}

func (sc *scene) Configured() bool {
	return sc.sf.Configured()
}

// RenderFrame renders one frame: acquire the surface texture, encode
// a single clear render pass, submit the one command buffer, and
// present.
func (sc *scene) RenderFrame() error {
	view, err := sc.sf.GetCurrentTexture()
	if err != nil {
		return err
	}
	defer view.Release()

	dev := sc.sf.Device()
	cmd, err := dev.Device.CreateCommandEncoder(nil)
	if err != nil {
		return err
	}
	defer cmd.Release()

	rp := sc.sf.Render().BeginRenderPass(cmd, view)
	rp.End()
	rp.Release() // must be released before Finish

	cmdBuffer, err := cmd.Finish(nil)
	if err != nil {
		return err
	}
	defer cmdBuffer.Release()

	dev.Queue.Submit(cmdBuffer)
	sc.sf.Present()
	return nil
}

func (sc *scene) Release() {
	if sc.sf != nil {
		sc.sf.Release()
		sc.sf = nil
	}
	if sc.gp != nil {
		sc.gp.Release()
		sc.gp = nil
	}
}
