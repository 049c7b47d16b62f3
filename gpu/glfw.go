// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package gpu

import (
	"image"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// note: this file contains the glfw dependencies, for desktop platform builds.
// other platforms (mobile, web) need to provide their own Init() and Terminate()
// methods.

// Init initializes the windowing system for display-enabled use,
// using glfw.
// IMPORTANT: must be called on the main initial thread!
func Init() error {
	return errors.Log(glfw.Init())
}

// Terminate shuts down the windowing system. Call as the last thing
// before quitting.
// IMPORTANT: must be called on the main initial thread!
func Terminate() {
	glfw.Terminate()
}

// NewGLFWWindow makes a new glfw window of the given size, with no
// client graphics API, as required for WebGPU surfaces.
func NewGLFWWindow(size image.Point, title string) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	window, err := glfw.CreateWindow(size.X, size.Y, title, nil, nil)
	if err != nil {
		return nil, errors.Log(err)
	}
	return window, nil
}

// WindowSurface returns a WebGPU surface bound to the given window.
// The window must outlive the surface.
func WindowSurface(window *glfw.Window) (*wgpu.Surface, error) {
	sf := Instance().CreateSurface(wgpuglfw.GetSurfaceDescriptor(window))
	if sf == nil {
		return nil, errors.New("gpu: failed to bind WebGPU surface to window")
	}
	return sf, nil
}
