// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"fmt"
	"image"
	"testing"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/spectrum/gpu"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

// fakeRenderer mirrors the surface resize contract: zero sizes are
// ignored, any nonzero size reconfigures, including the current one.
type fakeRenderer struct {
	size       image.Point
	configured bool
	setSizes   []image.Point
	frames     int
	frameSizes []image.Point
	renderErr  error
	released   bool
}

func (f *fakeRenderer) SetSize(size image.Point) {
	if size.X == 0 || size.Y == 0 {
		return
	}
	f.setSizes = append(f.setSizes, size)
	f.size = size
	f.configured = true
}

func (f *fakeRenderer) Size() image.Point { return f.size }

func (f *fakeRenderer) Configured() bool { return f.configured }

func (f *fakeRenderer) RenderFrame() error {
	if f.renderErr != nil {
		return f.renderErr
	}
	f.frames++
	f.frameSizes = append(f.frameSizes, f.size)
	return nil
}

func (f *fakeRenderer) Release() { f.released = true }

func activeApp(size image.Point) (*App, *fakeRenderer) {
	fr := &fakeRenderer{size: size, configured: true}
	return &App{rend: fr, state: Active, ready: make(chan sceneResult, 1)}, fr
}

func wrap(sentinel error) error {
	return fmt.Errorf("%w: driver says no", sentinel)
}

func TestResizeZeroIgnored(t *testing.T) {
	a, fr := activeApp(image.Pt(800, 600))
	a.resized(image.Pt(0, 600))
	a.resized(image.Pt(800, 0))
	a.resized(image.Pt(0, 0))
	assert.Empty(t, fr.setSizes)
	assert.Equal(t, image.Pt(800, 600), fr.size)
	assert.True(t, fr.configured)
}

func TestResizeApplied(t *testing.T) {
	a, fr := activeApp(image.Pt(800, 600))
	a.resized(image.Pt(1024, 768))
	assert.Equal(t, []image.Point{image.Pt(1024, 768)}, fr.setSizes)
	assert.Equal(t, image.Pt(1024, 768), fr.size)
}

func TestResizeIdempotent(t *testing.T) {
	a, fr := activeApp(image.Pt(800, 600))
	a.resized(image.Pt(1024, 768))
	a.resized(image.Pt(1024, 768))
	assert.Equal(t, image.Pt(1024, 768), fr.size)
	assert.True(t, fr.configured)
}

func TestResizeBeforeReady(t *testing.T) {
	a := &App{state: Uninitialized, ready: make(chan sceneResult, 1)}
	a.resized(image.Pt(1024, 768)) // must not panic
	a.redraw()
}

func TestRedrawBeforeConfigured(t *testing.T) {
	fr := &fakeRenderer{}
	a := &App{rend: fr, state: Active, ready: make(chan sceneResult, 1)}
	updates := 0
	a.Update = func() { updates++ }
	a.redraw()
	assert.Equal(t, 0, fr.frames)
	assert.Equal(t, 0, updates)
}

func TestUpdateRunsBeforeRender(t *testing.T) {
	a, fr := activeApp(image.Pt(800, 600))
	framesAtUpdate := -1
	a.Update = func() { framesAtUpdate = fr.frames }
	a.redraw()
	assert.Equal(t, 1, fr.frames)
	assert.Equal(t, 0, framesAtUpdate)
}

func TestLostReconfigures(t *testing.T) {
	a, fr := activeApp(image.Pt(800, 600))
	fr.renderErr = wrap(gpu.ErrSurfaceLost)
	a.redraw()
	assert.Equal(t, []image.Point{image.Pt(800, 600)}, fr.setSizes)
	assert.Equal(t, Active, a.state)
	assert.NoError(t, a.err)

	fr.renderErr = nil
	a.redraw()
	assert.Equal(t, 1, fr.frames)
}

func TestOutdatedReconfigures(t *testing.T) {
	a, fr := activeApp(image.Pt(800, 600))
	fr.renderErr = wrap(gpu.ErrSurfaceOutdated)
	a.redraw()
	assert.Equal(t, []image.Point{image.Pt(800, 600)}, fr.setSizes)
	assert.Equal(t, Active, a.state)
	assert.NoError(t, a.err)
}

func TestOutOfMemoryTerminates(t *testing.T) {
	a, fr := activeApp(image.Pt(800, 600))
	fr.renderErr = wrap(gpu.ErrOutOfMemory)
	a.redraw()
	assert.Equal(t, Terminating, a.state)
	assert.True(t, errors.Is(a.err, gpu.ErrOutOfMemory))
	assert.Empty(t, fr.setSizes)

	fr.renderErr = nil
	a.redraw()
	assert.Equal(t, 0, fr.frames)
}

func TestTimeoutDropsFrame(t *testing.T) {
	a, fr := activeApp(image.Pt(800, 600))
	fr.renderErr = wrap(gpu.ErrSurfaceTimeout)
	a.redraw()
	assert.Equal(t, Active, a.state)
	assert.NoError(t, a.err)
	assert.Empty(t, fr.setSizes)
	assert.Equal(t, 0, fr.frames)

	fr.renderErr = nil
	a.redraw()
	assert.Equal(t, 1, fr.frames)
}

func TestMinimizeRestore(t *testing.T) {
	a, fr := activeApp(image.Pt(800, 600))
	a.redraw()
	assert.Equal(t, image.Pt(800, 600), fr.frameSizes[0])

	a.resized(image.Pt(0, 0))
	assert.Equal(t, image.Pt(800, 600), fr.size)
	a.redraw()
	assert.Equal(t, image.Pt(800, 600), fr.frameSizes[1])

	a.resized(image.Pt(1024, 768))
	a.redraw()
	assert.Equal(t, image.Pt(1024, 768), fr.frameSizes[2])
}

func TestEscapeTerminates(t *testing.T) {
	a, _ := activeApp(image.Pt(800, 600))
	a.keyEvent(glfw.KeyEscape, glfw.Press, 0)
	assert.Equal(t, Terminating, a.state)
}

func TestEscapeReleaseIgnored(t *testing.T) {
	a, _ := activeApp(image.Pt(800, 600))
	a.keyEvent(glfw.KeyEscape, glfw.Release, 0)
	assert.Equal(t, Active, a.state)
}

func TestInputHook(t *testing.T) {
	a, _ := activeApp(image.Pt(800, 600))
	var got []Event
	a.Input = func(ev Event) bool {
		got = append(got, ev)
		return true
	}
	a.keyEvent(glfw.KeySpace, glfw.Press, 0)
	a.keyEvent(glfw.KeyEscape, glfw.Press, 0)
	if assert.Len(t, got, 1) {
		assert.Equal(t, glfw.KeySpace, got[0].Key)
	}
	assert.Equal(t, Terminating, a.state)
}

func TestCloseIdempotent(t *testing.T) {
	a, _ := activeApp(image.Pt(800, 600))
	a.closeReq()
	a.closeReq()
	assert.Equal(t, Terminating, a.state)
}

func TestAttachActivatesOnce(t *testing.T) {
	a := &App{state: Uninitialized, ready: make(chan sceneResult, 1)}
	fr := &fakeRenderer{size: image.Pt(800, 600), configured: true}
	err := a.attach(sceneResult{rend: fr})
	assert.NoError(t, err)
	assert.Equal(t, Active, a.state)
	a.redraw()
	assert.Equal(t, 1, fr.frames)
}

func TestAttachFailureTerminates(t *testing.T) {
	a := &App{state: Uninitialized, ready: make(chan sceneResult, 1)}
	boom := errors.New("no adapter")
	err := a.attach(sceneResult{err: boom})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, Terminating, a.state)
	assert.ErrorIs(t, a.err, boom)
}

func TestOptionsDefaults(t *testing.T) {
	var o Options
	o.defaults()
	assert.Equal(t, "Spectrum", o.Title)
	assert.Equal(t, image.Pt(1024, 768), o.Size)
	assert.NotNil(t, o.ClearColor)
}
