// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command spectrum opens a window and renders a cleared frame in
// real time until the window is closed or Escape is pressed.
package main

import (
	"image"
	"os"
	"runtime"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/spectrum/host"
)

func init() {
	// the event loop must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	opts := host.Options{
		Title: "Spectrum",
		Size:  image.Pt(800, 600),
	}
	if errors.Log(host.Run(opts)) != nil {
		os.Exit(1)
	}
}
