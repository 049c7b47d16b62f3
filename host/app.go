// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package host drives a single window through its lifecycle:
// construct the GPU scene asynchronously, then poll window events
// and render a frame per loop iteration, recovering from transient
// surface failures and terminating cleanly on fatal ones.
package host

import (
	"image"
	"image/color"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/spectrum/gpu"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// State is the lifecycle state of the [App]. It only moves forward:
// Uninitialized to Active exactly once, when the scene result
// arrives, and anything to Terminating, never out of it.
type State int32

const (
	// Uninitialized is the state before the scene is ready.
	// Resize and redraw events are ignored in this state.
	Uninitialized State = iota

	// Active is the normal running state: events are handled and
	// a frame is rendered every loop iteration.
	Active

	// Terminating means the loop is ending. No further events are
	// handled and no further frames are rendered.
	Terminating
)

func (st State) String() string {
	switch st {
	case Uninitialized:
		return "Uninitialized"
	case Active:
		return "Active"
	case Terminating:
		return "Terminating"
	}
	return "Invalid"
}

// Options configures [Run].
type Options struct {
	// Title is the window title.
	Title string

	// Size is the initial window size. Default 1024x768.
	Size image.Point

	// ClearColor is the color each frame is cleared to.
	ClearColor color.Color
}

func (o *Options) defaults() {
	if o.Title == "" {
		o.Title = "Spectrum"
	}
	if o.Size.X == 0 || o.Size.Y == 0 {
		o.Size = image.Pt(1024, 768)
	}
	if o.ClearColor == nil {
		o.ClearColor = color.RGBA{26, 51, 77, 255}
	}
}

// Event is a key event forwarded to the [App.Input] hook.
type Event struct {
	Key    glfw.Key
	Action glfw.Action
	Mods   glfw.ModifierKey
}

// Renderer is what the event loop needs from a render target.
// [gpu.Surface] satisfies it through the scene; tests substitute
// their own.
type Renderer interface {
	// SetSize resizes the target. Sizes with a zero dimension are
	// ignored; the current size always reconfigures.
	SetSize(size image.Point)

	// Size returns the current size of the target.
	Size() image.Point

	// Configured reports whether the target can render frames.
	Configured() bool

	// RenderFrame renders and presents one frame. Errors are
	// classified per the gpu surface error sentinels.
	RenderFrame() error

	// Release releases the target.
	Release()
}

// sceneResult is the one-shot result of asynchronous scene
// construction.
type sceneResult struct {
	rend Renderer
	err  error
}

// App owns the window, the renderer once ready, and the lifecycle
// state. All fields are confined to the event-loop thread; the only
// cross-thread communication is the ready channel.
type App struct {
	// Update is called once per rendered frame, before rendering.
	// Optional.
	Update func()

	// Input receives key events not handled by the app itself
	// (everything except Escape). It reports whether it handled
	// the event. Optional.
	Input func(ev Event) bool

	opts   Options
	window *glfw.Window
	rend   Renderer
	state  State

	// ready delivers the scene construction result exactly once.
	ready chan sceneResult

	// err is the fatal error Run returns, if any.
	err error
}

// Run opens a window and runs the event loop until the window is
// closed or a fatal error occurs. It blocks; it must be called on
// the main thread, locked with runtime.LockOSThread.
// It returns nil on a clean close, and the underlying error on a
// failed GPU negotiation or a fatal render error.
func Run(opts Options) error {
	opts.defaults()
	if err := gpu.Init(); err != nil {
		return err
	}
	defer gpu.Terminate()

	window, err := gpu.NewGLFWWindow(opts.Size, opts.Title)
	if err != nil {
		return err
	}
	defer window.Destroy()

	wsurf, err := gpu.WindowSurface(window)
	if err != nil {
		return err
	}

	app := &App{
		opts:   opts,
		window: window,
		ready:  make(chan sceneResult, 1),
	}
	app.setCallbacks()

	// framebuffer size can differ from the requested window size
	// on scaled displays; the surface is configured to it.
	fbw, fbh := window.GetFramebufferSize()
	size := image.Pt(fbw, fbh)

	go func() {
		sc, err := newScene(wsurf, size, opts.ClearColor)
		app.ready <- sceneResult{rend: sc, err: err}
	}()

	return app.loop()
}

func (a *App) setCallbacks() {
	a.window.SetCloseCallback(func(w *glfw.Window) {
		a.closeReq()
	})
	a.window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		a.keyEvent(key, action, mods)
	})
	a.window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		a.resized(image.Pt(width, height))
	})
	a.window.SetRefreshCallback(func(w *glfw.Window) {
		a.redraw()
	})
}

// closeReq moves to Terminating and stops the loop. Idempotent.
func (a *App) closeReq() {
	if a.state == Terminating {
		return
	}
	slog.Info("host: close requested")
	a.state = Terminating
	if a.window != nil {
		a.window.SetShouldClose(true)
	}
}

func (a *App) keyEvent(key glfw.Key, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		a.closeReq()
		return
	}
	if a.Input != nil {
		if a.Input(Event{Key: key, Action: action, Mods: mods}) {
			return
		}
	}
	if gpu.Debug {
		slog.Info("host: unhandled key event", "key", key, "action", action)
	}
}

// resized forwards new framebuffer sizes to the renderer. Zero
// dimensions (minimized window) are ignored here as well as in the
// renderer, so a minimize never touches the surface configuration.
func (a *App) resized(size image.Point) {
	if a.state != Active || a.rend == nil {
		return
	}
	if size.X == 0 || size.Y == 0 {
		return
	}
	a.rend.SetSize(size)
}

// redraw renders one frame if the app is active and the surface is
// configured, applying the render-error recovery policy:
// lost or outdated surfaces reconfigure at the current size and the
// loop continues; out of memory is fatal; a timeout drops the frame.
func (a *App) redraw() {
	if a.state != Active || a.rend == nil || !a.rend.Configured() {
		return
	}
	if a.Update != nil {
		a.Update()
	}
	err := a.rend.RenderFrame()
	switch {
	case err == nil:
	case errors.Is(err, gpu.ErrSurfaceLost) || errors.Is(err, gpu.ErrSurfaceOutdated):
		slog.Info("host: reconfiguring surface", "reason", err)
		a.rend.SetSize(a.rend.Size())
	case errors.Is(err, gpu.ErrOutOfMemory):
		slog.Error("host: fatal render error", "err", err)
		a.err = err
		a.closeReq()
	case errors.Is(err, gpu.ErrSurfaceTimeout):
		slog.Warn("host: frame dropped", "err", err)
	default:
		slog.Error("host: render error", "err", err)
	}
}

// attach installs the scene construction result, moving to Active,
// or to Terminating if construction failed.
func (a *App) attach(res sceneResult) error {
	if res.err != nil {
		a.err = res.err
		a.closeReq()
		return res.err
	}
	a.rend = res.rend
	a.state = Active
	slog.Info("host: scene ready", "size", a.rend.Size())
	return nil
}

// loop is the event loop: poll events, consume the readiness signal
// at most once, and render a frame every iteration. Pacing comes
// from the surface present mode, not from the loop.
func (a *App) loop() error {
	for !a.window.ShouldClose() {
		glfw.PollEvents()
		if a.state == Uninitialized {
			select {
			case res := <-a.ready:
				if err := a.attach(res); err != nil {
					return err
				}
			default:
			}
		}
		if a.state == Terminating {
			break
		}
		a.redraw()
	}
	a.state = Terminating
	if a.rend != nil {
		a.rend.Release()
		a.rend = nil
	}
	return a.err
}
