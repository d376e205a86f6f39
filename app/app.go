// Package app runs a lab: it owns the camera, routes input between the
// camera and the control panel and drives the per-frame sequence.
package app

import (
	"context"

	"render-labs/config"
	"render-labs/core"
	"render-labs/internal/watch"
	"render-labs/math"
	"render-labs/scene"
	"render-labs/ui"
)

// Frame is the per-frame state handed to a lab.
type Frame struct {
	Time  float32
	Delta float32

	Width, Height int
	Projection    math.Mat4
	View          math.Mat4

	Camera    *scene.FlyCamera
	UIFocused bool
}

// Lab is one viewer scene. Init, Render, Reload and Destroy run on the
// thread that owns the GL context.
type Lab interface {
	Name() string
	Init(cfg *config.Config) error
	// DrawPanel builds the control panel inside an open UI frame.
	DrawPanel(p ui.Panel, f *Frame)
	Render(f *Frame)
	// Reload rebuilds whatever was built from the changed file at path.
	Reload(path string)
	Destroy()
}

// Frontend is the immediate-mode UI layer.
type Frontend interface {
	NewFrame(dt float32)
	Panel() ui.Panel
	Render()
}

// Graphics is the frame-level GL state the loop changes.
type Graphics interface {
	SetViewport(width, height int)
	Clear(c core.Color)
}

// Events is the callback registration surface of the platform window.
type Events interface {
	SetKeyCallback(cb func(key core.Key, action core.Action))
	SetCursorPosCallback(cb func(x, y float64))
	SetScrollCallback(cb func(xoff, yoff float64))
	SetMouseButtonCallback(cb func(button core.MouseButton, action core.Action))
	SetCharCallback(cb func(char rune))
	OnFramebufferSize(cb func(width, height int))
}

// InputSink receives every raw window event, before the router. The UI
// bridge implements it.
type InputSink interface {
	OnKey(key core.Key, action core.Action)
	OnCursor(x, y float64)
	OnScroll(dx, dy float64)
	OnMouseButton(button core.MouseButton, action core.Action)
	OnChar(char rune)
}

type App struct {
	Config *config.Config
	Window Window
	Lab    Lab
	Camera *scene.FlyCamera
	Input  *InputRouter
	Clock  *core.FrameClock

	ui      Frontend
	gfx     Graphics
	changes <-chan string
	clear   core.Color
}

// New wires lab to the window. The camera starts at the configured pose.
func New(cfg *config.Config, window Window, lab Lab, frontend Frontend, gfx Graphics) *App {
	cam := cfg.NewCamera()
	a := &App{
		Config: cfg,
		Window: window,
		Lab:    lab,
		Camera: cam,
		Input:  NewInputRouter(window, cam),
		Clock:  core.NewFrameClock(window.Time, cfg.Render.MaxDelta),
		ui:     frontend,
		gfx:    gfx,
		clear: core.Color{
			R: cfg.Render.ClearColor[0],
			G: cfg.Render.ClearColor[1],
			B: cfg.Render.ClearColor[2],
			A: 1,
		},
	}
	a.Input.WantMouse = func() bool { return frontend.Panel().WantCaptureMouse() }
	a.Input.Viewport = gfx.SetViewport
	gfx.SetViewport(a.Input.Width, a.Input.Height)
	return a
}

// BindEvents registers the window callbacks. Every event reaches sink
// first, then the router.
func (a *App) BindEvents(events Events, sink InputSink) {
	events.SetKeyCallback(func(key core.Key, action core.Action) {
		sink.OnKey(key, action)
		a.Input.OnKey(key, action)
	})
	events.SetCursorPosCallback(func(x, y float64) {
		sink.OnCursor(x, y)
		a.Input.OnCursor(x, y)
	})
	events.SetScrollCallback(func(dx, dy float64) {
		sink.OnScroll(dx, dy)
		a.Input.OnScroll(dx, dy)
	})
	events.SetMouseButtonCallback(sink.OnMouseButton)
	events.SetCharCallback(sink.OnChar)
	events.OnFramebufferSize(a.Input.OnResize)
}

// WatchFiles makes Step hand every path received on changes to Lab.Reload.
func (a *App) WatchFiles(changes <-chan string) {
	a.changes = changes
}

// Step runs one frame.
func (a *App) Step() {
	dt := a.Clock.Tick()

	for _, path := range watch.Drain(a.changes) {
		core.LogInfo("reloading %s", path)
		a.Lab.Reload(path)
	}

	a.Input.PollMovement(a.Window, dt)

	frame := a.frame(dt)

	a.ui.NewFrame(dt)
	a.Lab.DrawPanel(a.ui.Panel(), frame)
	// Loading a preset from the panel may have moved the camera.
	a.updateMatrices(frame)

	a.gfx.Clear(a.clear)
	a.Lab.Render(frame)

	a.ui.Render()
	a.Window.SwapBuffers()
	a.Window.PollEvents()
}

func (a *App) frame(dt float32) *Frame {
	f := &Frame{
		Time:      a.Clock.Time(),
		Delta:     dt,
		Width:     a.Input.Width,
		Height:    a.Input.Height,
		Camera:    a.Camera,
		UIFocused: a.Input.UIFocused,
	}
	a.updateMatrices(f)
	return f
}

func (a *App) updateMatrices(f *Frame) {
	f.Projection = a.Camera.ProjectionMatrix(a.Input.Aspect(), a.Config.Render.Near, a.Config.Render.Far)
	f.View = a.Camera.ViewMatrix()
}

// Run initializes the lab and steps until the window is asked to close or
// ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if err := a.Lab.Init(a.Config); err != nil {
		return err
	}
	defer a.Lab.Destroy()

	core.LogInfo("%s lab running, press TAB to toggle UI/camera control", a.Lab.Name())
	for !a.Window.ShouldClose() {
		if ctx.Err() != nil {
			core.LogInfo("shutting down: %v", context.Cause(ctx))
			break
		}
		a.Step()
	}
	return nil
}
