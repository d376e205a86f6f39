package app

import (
	"render-labs/core"
	"render-labs/scene"
)

// KeyState reports held keys.
type KeyState interface {
	IsKeyPressed(key core.Key) bool
}

// Window is the part of the platform window the router and loop drive.
type Window interface {
	KeyState

	ShouldClose() bool
	SetShouldClose(v bool)
	SetCursorCaptured(captured bool)
	GetFramebufferSize() (int, int)
	PollEvents()
	SwapBuffers()
	Time() float64
}

type keyBinding struct {
	Key       core.Key
	Direction scene.CameraMovement
}

var movementBindings = []keyBinding{
	{core.KeyW, scene.Forward},
	{core.KeyS, scene.Backward},
	{core.KeyA, scene.Left},
	{core.KeyD, scene.Right},
	{core.KeySpace, scene.Up},
	{core.KeyLeftShift, scene.Down},
}

// InputRouter decides whether window input steers the camera or belongs to
// the control panel. It starts with the panel focused and a normal cursor.
type InputRouter struct {
	Camera *scene.FlyCamera

	UIFocused    bool
	FirstMouse   bool
	LastX, LastY float64

	// Framebuffer size in pixels, kept current by OnResize.
	Width, Height int

	window Window

	// WantMouse reports whether the panel is using the mouse; scroll is not
	// forwarded to the camera while it returns true.
	WantMouse func() bool

	// Viewport is called from OnResize with the new framebuffer size.
	Viewport func(width, height int)
}

// NewInputRouter routes window input to cam. The cursor is released.
func NewInputRouter(window Window, cam *scene.FlyCamera) *InputRouter {
	r := &InputRouter{
		Camera:     cam,
		UIFocused:  true,
		FirstMouse: true,
		window:     window,
	}
	r.Width, r.Height = window.GetFramebufferSize()
	window.SetCursorCaptured(false)
	return r
}

// OnKey handles Escape (close) and Tab (toggle focus) presses. Held
// movement keys are polled by PollMovement instead.
func (r *InputRouter) OnKey(key core.Key, action core.Action) {
	if action != core.Press {
		return
	}
	switch key {
	case core.KeyEscape:
		r.window.SetShouldClose(true)
	case core.KeyTab:
		r.ToggleFocus()
	}
}

// ToggleFocus flips between panel and camera control. The next cursor
// sample only re-anchors the mouse so the camera does not jump.
func (r *InputRouter) ToggleFocus() {
	r.UIFocused = !r.UIFocused
	r.window.SetCursorCaptured(!r.UIFocused)
	r.FirstMouse = true
	if r.UIFocused {
		core.LogDebug("input: panel focused")
	} else {
		core.LogDebug("input: camera focused")
	}
}

func (r *InputRouter) OnCursor(x, y float64) {
	if r.UIFocused {
		return
	}
	if r.FirstMouse {
		r.LastX, r.LastY = x, y
		r.FirstMouse = false
		return
	}

	xoffset := x - r.LastX
	yoffset := r.LastY - y // window y grows downward
	r.LastX, r.LastY = x, y

	r.Camera.ProcessMouseMovement(float32(xoffset), float32(yoffset))
}

func (r *InputRouter) OnScroll(_, dy float64) {
	if r.UIFocused || (r.WantMouse != nil && r.WantMouse()) {
		return
	}
	r.Camera.ProcessMouseScroll(float32(dy))
}

// PollMovement moves the camera for every held movement key.
func (r *InputRouter) PollMovement(keys KeyState, dt float32) {
	if r.UIFocused {
		return
	}
	for _, b := range movementBindings {
		if keys.IsKeyPressed(b.Key) {
			r.Camera.Move(b.Direction, dt)
		}
	}
}

func (r *InputRouter) OnResize(width, height int) {
	r.Width, r.Height = width, height
	if r.Viewport != nil {
		r.Viewport(width, height)
	}
}

// Aspect is width/height of the framebuffer, or 1 while it is minimized.
func (r *InputRouter) Aspect() float32 {
	if r.Width <= 0 || r.Height <= 0 {
		return 1
	}
	return float32(r.Width) / float32(r.Height)
}
