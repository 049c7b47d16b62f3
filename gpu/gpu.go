// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu negotiates a WebGPU instance, adapter, logical device and
// window-bound surface, and manages the surface presentation
// configuration (size, format, present mode) across resizes and
// transient presentation failures.
package gpu

import (
	"fmt"
	"log/slog"
	"os"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Debug enables additional logging of the GPU configuration process.
// It is set automatically if the SPECTRUM_DEBUG environment variable
// is non-empty.
var Debug = false

func init() {
	if os.Getenv("SPECTRUM_DEBUG") != "" {
		Debug = true
	}
}

// ErrNoGPU is returned when no adapter compatible with the target
// surface can be acquired.
var ErrNoGPU = errors.New("gpu: no compatible WebGPU adapter found")

var theInstance *wgpu.Instance

// Instance returns the process-wide WebGPU instance, creating it on
// first use. The instance outlives everything it produces and is
// only torn down with the process. On desktop platforms the binding
// exposes the full native backend set; on web it is restricted to
// the browser WebGPU backend.
func Instance() *wgpu.Instance {
	if theInstance == nil {
		theInstance = wgpu.CreateInstance(nil)
	}
	return theInstance
}

// GPU represents the GPU adapter (physical or virtual GPU) selected
// for rendering, along with its properties and limits.
type GPU struct {
	// Instance represents the WebGPU system overall.
	Instance *wgpu.Instance

	// GPU is the adapter in use.
	GPU *wgpu.Adapter

	// DeviceName is the name of the adapter.
	DeviceName string

	// Properties are the general properties of the adapter.
	Properties wgpu.AdapterInfo

	// Limits are the limits of the adapter.
	Limits wgpu.SupportedLimits
}

// NewGPU returns a new GPU with an adapter compatible with the given
// surface, preferring a high-performance (discrete) adapter and not
// permitting a software fallback. A nil surface is valid for
// offscreen (no display) use. Returns an error wrapping [ErrNoGPU]
// if negotiation with the driver fails.
func NewGPU(sf *wgpu.Surface) (*GPU, error) {
	gp := &GPU{}
	if err := gp.init(sf); err != nil {
		return nil, err
	}
	return gp, nil
}

// NoDisplayGPU returns a GPU and Device without any window surface,
// for offscreen rendering to a [RenderTexture].
func NoDisplayGPU() (*GPU, *Device, error) {
	gp, err := NewGPU(nil)
	if err != nil {
		return nil, nil, err
	}
	dev, err := NewDevice(gp)
	if err != nil {
		return nil, nil, err
	}
	return gp, dev, nil
}

func (gp *GPU) init(sf *wgpu.Surface) error {
	inst := Instance()
	gp.Instance = inst
	logAdapters(inst)
	adapter, err := inst.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface:    sf,
		PowerPreference:      wgpu.PowerPreferenceHighPerformance,
		ForceFallbackAdapter: false,
	})
	if err != nil {
		return errors.Log(fmt.Errorf("%w: %w", ErrNoGPU, err))
	}
	gp.GPU = adapter
	gp.Properties = adapter.GetInfo()
	gp.DeviceName = gp.Properties.Name
	gp.Limits = adapter.GetLimits()
	slog.Info("gpu: selected adapter",
		"name", gp.DeviceName,
		"type", gp.Properties.AdapterType,
		"backend", gp.Properties.BackendType)
	return nil
}

// logAdapters logs every available adapter. This is diagnostic only:
// it has no effect on which adapter is selected.
func logAdapters(inst *wgpu.Instance) {
	for i, ad := range inst.EnumerateAdapters(nil) {
		info := ad.GetInfo()
		slog.Info("gpu: available adapter",
			"index", i,
			"name", info.Name,
			"vendor", info.VendorName,
			"type", info.AdapterType,
			"backend", info.BackendType,
			"driver", info.DriverDescription)
	}
}

// Release releases the adapter. The instance persists for the
// lifetime of the process.
func (gp *GPU) Release() {
	if gp.GPU == nil {
		return
	}
	gp.GPU.Release()
	gp.GPU = nil
}
