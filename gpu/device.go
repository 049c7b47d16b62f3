// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// Device holds the logical Device and associated Queue.
// There is exactly one Queue per Device: all frame command buffers
// are submitted through it.
type Device struct {
	// Device is the logical device.
	Device *wgpu.Device

	// Queue is the default command queue for the device.
	Queue *wgpu.Queue
}

// NewDevice returns a new device for the given GPU, using the
// adapter's default features and limits.
func NewDevice(gp *GPU) (*Device, error) {
	wdev, err := gp.GPU.RequestDevice(nil)
	if err != nil {
		return nil, err
	}
	dev := &Device{Device: wdev}
	dev.Queue = wdev.GetQueue()
	return dev, nil
}

// WaitDone waits until the device is done with all outstanding work.
func (dv *Device) WaitDone() {
	if dv.Device == nil {
		return
	}
	dv.Device.Poll(true, nil)
}

// Release releases the device after waiting for outstanding work.
// The queue is released along with the device.
func (dv *Device) Release() {
	if dv.Device == nil {
		return
	}
	dv.WaitDone()
	dv.Device.Release()
	dv.Device = nil
	dv.Queue = nil
}
