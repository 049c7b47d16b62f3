// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Surface is a render target connected to a window surface.
// It owns its device: the window surface is the definitive representation
// of what is being rendered, so everything rendering to it shares its
// device. The window that produced the underlying wgpu surface must
// outlive it.
type Surface struct {
	// GPU is the gpu handle.
	GPU *GPU

	// Format has the current size and pixel format of the surface.
	// The format is negotiated once at construction; only the size
	// changes afterward, through [Surface.SetSize].
	Format TextureFormat

	// NFrames bounds how many frames may be in flight before
	// rendering blocks on presentation. 2 trades a frame of input
	// latency for not stalling on every vsync.
	NFrames int

	// device is the device owned by the surface.
	device *Device

	// render manages the render pass for this surface.
	render Render

	surface *wgpu.Surface

	// config is the active surface configuration. Its width and
	// height always equal the most recent nonzero size observed.
	config *wgpu.SurfaceConfiguration

	// configured is set once a valid nonzero-size configuration has
	// been applied. Texture acquisition requires it.
	configured bool

	// curTexture is the texture acquired by GetCurrentTexture,
	// presented and released by Present.
	curTexture *wgpu.Texture
}

// NewSurface returns a new surface for the given wgpu surface handle,
// creating a new device for it. If size has a zero dimension (e.g.,
// a minimized window), the surface is left unconfigured until the
// first nonzero [Surface.SetSize].
func NewSurface(gp *GPU, wsurf *wgpu.Surface, size image.Point) (*Surface, error) {
	dev, err := NewDevice(gp)
	if err != nil {
		return nil, err
	}
	sf := &Surface{
		GPU:     gp,
		NFrames: 2,
		device:  dev,
		surface: wsurf,
	}
	if err := sf.initConfig(size); err != nil {
		dev.Release()
		return nil, err
	}
	sf.render = Render{Format: sf.Format}
	return sf, nil
}

// initConfig negotiates the surface configuration from the
// capabilities the surface reports for our adapter: the first
// sRGB-capable format else the first reported, and the first
// reported present and alpha modes.
func (sf *Surface) initConfig(size image.Point) error {
	caps := sf.surface.GetCapabilities(sf.GPU.GPU)
	format, err := PreferredFormat(caps.Formats)
	if err != nil {
		return err
	}
	if len(caps.PresentModes) == 0 {
		return errors.New("gpu: surface reports no present modes")
	}
	if len(caps.AlphaModes) == 0 {
		return errors.New("gpu: surface reports no alpha modes")
	}
	sf.Format.Format = format
	sf.config = &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      format,
		PresentMode: caps.PresentModes[0],
		AlphaMode:   caps.AlphaModes[0],
	}
	if Debug {
		slog.Info("gpu: surface configuration",
			"format", format.String(),
			"presentMode", sf.config.PresentMode,
			"alphaMode", sf.config.AlphaMode)
	}
	sf.SetSize(size)
	return nil
}

// Render returns the render pass manager for this surface.
func (sf *Surface) Render() *Render {
	return &sf.render
}

// Device returns the device owned by this surface.
func (sf *Surface) Device() *Device {
	return sf.device
}

// Size returns the current configured size.
func (sf *Surface) Size() image.Point {
	return sf.Format.Size
}

// Configured reports whether a valid nonzero-size configuration has
// been applied.
func (sf *Surface) Configured() bool {
	return sf.configured
}

// SetSize sets the size of the surface and reconfigures it.
// Sizes with a zero dimension are ignored entirely, leaving the
// current configuration in place. Nonzero sizes always reconfigure,
// including the current size, which is how a lost or outdated
// surface is recovered. This is the only way surface dimensions
// change.
func (sf *Surface) SetSize(size image.Point) {
	if size.X == 0 || size.Y == 0 {
		return
	}
	sf.Format.Size = size
	sf.render.Format.Size = size
	sf.config.Width = uint32(size.X)
	sf.config.Height = uint32(size.Y)
	sf.surface.Configure(sf.GPU.GPU, sf.device.Device, sf.config)
	sf.configured = true
}

// GetCurrentTexture returns a view of the next texture to render
// into. The texture remains held until [Surface.Present]. Errors
// are classified into the surface error sentinels.
func (sf *Surface) GetCurrentTexture() (*wgpu.TextureView, error) {
	if !sf.configured {
		return nil, errors.New("gpu: surface is not configured")
	}
	tex, err := sf.surface.GetCurrentTexture()
	if err != nil {
		return nil, SurfaceError(err)
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, SurfaceError(err)
	}
	sf.curTexture = tex
	return view, nil
}

// Present presents the current texture to the window and releases it.
func (sf *Surface) Present() {
	sf.surface.Present()
	sf.releaseCurrent()
}

func (sf *Surface) releaseCurrent() {
	if sf.curTexture == nil {
		return
	}
	sf.curTexture.Release()
	sf.curTexture = nil
}

// Release releases the surface and its device.
func (sf *Surface) Release() {
	sf.releaseCurrent()
	if sf.surface != nil {
		sf.surface.Release()
		sf.surface = nil
	}
	if sf.device != nil {
		sf.device.Release()
		sf.device = nil
	}
	sf.configured = false
}
