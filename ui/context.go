package ui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"render-labs/core"
	"render-labs/internal/opengl"
)

// Surface is the window information the ImGui frame needs.
type Surface interface {
	GetSize() (int, int)
	GetFramebufferSize() (int, int)
}

// Context owns the ImGui context, its GL renderer and the input bridge that
// forwards window events to ImGui. It must be created after the GL context.
type Context struct {
	panel    ImGuiPanel
	ctx      *imgui.Context
	renderer *opengl.ImGuiRenderer
	surface  Surface
}

// NewContext creates the ImGui context with the dark style and uploads its
// font atlas.
func NewContext(surface Surface) (*Context, error) {
	ctx := imgui.CreateContext()
	io := imgui.CurrentIO()
	io.SetIniFilename("")
	io.SetBackendFlags(io.BackendFlags() | imgui.BackendFlagsRendererHasVtxOffset)

	imgui.StyleColorsDark()
	applyStyle(imgui.CurrentStyle())

	renderer, err := opengl.NewImGuiRenderer()
	if err != nil {
		imgui.DestroyContext()
		return nil, err
	}
	return &Context{ctx: ctx, renderer: renderer, surface: surface}, nil
}

func applyStyle(style *imgui.Style) {
	style.SetWindowRounding(6)
	style.SetFrameRounding(4)
	style.SetGrabRounding(4)
	style.SetWindowBorderSize(0)
}

// Panel returns the widget set drawing into the current frame.
func (c *Context) Panel() Panel {
	return &c.panel
}

// NewFrame starts a UI frame of dt seconds.
func (c *Context) NewFrame(dt float32) {
	io := imgui.CurrentIO()

	w, h := c.surface.GetSize()
	fbw, fbh := c.surface.GetFramebufferSize()
	io.SetDisplaySize(imgui.Vec2{X: float32(w), Y: float32(h)})
	if w > 0 && h > 0 {
		io.SetDisplayFramebufferScale(imgui.Vec2{X: float32(fbw) / float32(w), Y: float32(fbh) / float32(h)})
	}
	if dt <= 0 {
		dt = 1.0 / 60.0
	}
	io.SetDeltaTime(dt)

	imgui.NewFrame()
}

// Render finishes the frame and draws it. Call it even when no panel was
// built so ImGui's frame bookkeeping stays balanced.
func (c *Context) Render() {
	imgui.Render()
	c.renderer.Render(imgui.CurrentDrawData())
}

func (c *Context) Destroy() {
	c.renderer.Destroy()
	imgui.DestroyContext()
}

// ── Input bridge ──────────────────────────────────────────────────────────────

func (c *Context) OnKey(key core.Key, action core.Action) {
	io := imgui.CurrentIO()
	down := action != core.Release
	switch key {
	case core.KeyLeftControl, core.KeyRightControl:
		io.AddKeyEvent(imgui.ModCtrl, down)
	case core.KeyLeftShift, core.KeyRightShift:
		io.AddKeyEvent(imgui.ModShift, down)
	case core.KeyLeftAlt, core.KeyRightAlt:
		io.AddKeyEvent(imgui.ModAlt, down)
	case core.KeyLeftSuper, core.KeyRightSuper:
		io.AddKeyEvent(imgui.ModSuper, down)
	}
	if k, ok := imguiKey(key); ok {
		io.AddKeyEvent(k, down)
	}
}

func (c *Context) OnCursor(x, y float64) {
	imgui.CurrentIO().AddMousePosEvent(float32(x), float32(y))
}

func (c *Context) OnScroll(dx, dy float64) {
	imgui.CurrentIO().AddMouseWheelEvent(float32(dx), float32(dy))
}

func (c *Context) OnMouseButton(button core.MouseButton, action core.Action) {
	if button < 0 || button >= 5 {
		return
	}
	imgui.CurrentIO().AddMouseButtonEvent(int32(button), action == core.Press)
}

func (c *Context) OnChar(char rune) {
	imgui.CurrentIO().AddInputCharacter(uint32(char))
}
