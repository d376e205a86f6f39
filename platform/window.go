// Package platform owns the GLFW window and the OpenGL context.
package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"render-labs/core"
)

func init() {
	// GLFW and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

type Window struct {
	Handle *glfw.Window
	Width  int
	Height int
	Title  string

	onFramebufferSize []func(width, height int)
}

type WindowConfig struct {
	Width      int
	Height     int
	Title      string
	Resizable  bool
	VSync      bool
	Fullscreen bool
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:      1920,
		Height:     1080,
		Title:      "Render Labs",
		Resizable:  true,
		VSync:      true,
		Fullscreen: false,
	}
}

// NewWindow creates a window with a current OpenGL 4.1 core context.
func NewWindow(config WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, boolToInt(config.Resizable))

	monitor := (*glfw.Monitor)(nil)
	if config.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	handle, err := glfw.CreateWindow(config.Width, config.Height, config.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	handle.MakeContextCurrent()
	if config.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	window := &Window{
		Handle: handle,
		Title:  config.Title,
	}
	window.Width, window.Height = handle.GetFramebufferSize()

	handle.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		window.Width = width
		window.Height = height
		for _, cb := range window.onFramebufferSize {
			cb(width, height)
		}
	})

	return window, nil
}

func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose()
}

func (w *Window) SetShouldClose(v bool) {
	w.Handle.SetShouldClose(v)
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) SwapBuffers() {
	w.Handle.SwapBuffers()
}

func (w *Window) GetFramebufferSize() (int, int) {
	return w.Handle.GetFramebufferSize()
}

// GetSize returns the window size in screen coordinates.
func (w *Window) GetSize() (int, int) {
	return w.Handle.GetSize()
}

// Time is the GLFW timer in seconds since initialization.
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

func (w *Window) Destroy() {
	w.Handle.Destroy()
	glfw.Terminate()
}

func (w *Window) IsKeyPressed(key core.Key) bool {
	return w.Handle.GetKey(glfw.Key(key)) == glfw.Press
}

// SetCursorCaptured hides and locks the cursor for mouse look, or restores
// the normal pointer.
func (w *Window) SetCursorCaptured(captured bool) {
	mode := glfw.CursorNormal
	if captured {
		mode = glfw.CursorDisabled
	}
	w.Handle.SetInputMode(glfw.CursorMode, mode)
}

// OnFramebufferSize registers cb, called with the new size in pixels after
// the stored size has been updated.
func (w *Window) OnFramebufferSize(cb func(width, height int)) {
	w.onFramebufferSize = append(w.onFramebufferSize, cb)
}

func (w *Window) SetKeyCallback(cb func(key core.Key, action core.Action)) {
	w.Handle.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		cb(core.Key(key), core.Action(action))
	})
}

// SetCursorPosCallback reports the cursor in screen coordinates.
func (w *Window) SetCursorPosCallback(cb func(x, y float64)) {
	w.Handle.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		cb(x, y)
	})
}

func (w *Window) SetScrollCallback(cb func(xoff, yoff float64)) {
	w.Handle.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		cb(xoff, yoff)
	})
}

func (w *Window) SetMouseButtonCallback(cb func(button core.MouseButton, action core.Action)) {
	w.Handle.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		cb(core.MouseButton(button), core.Action(action))
	})
}

// SetCharCallback receives typed Unicode code points.
func (w *Window) SetCharCallback(cb func(char rune)) {
	w.Handle.SetCharCallback(func(_ *glfw.Window, char rune) {
		cb(char)
	})
}

func boolToInt(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}
