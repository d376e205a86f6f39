package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"render-labs/config"
	"render-labs/core"
	"render-labs/math"
	"render-labs/scene"
	"render-labs/ui"
)

type fakeWindow struct {
	held        map[core.Key]bool
	shouldClose bool
	captured    bool
	width       int
	height      int
	now         float64
	swaps       int
	polls       int

	// closeAfter requests close once this many frames were swapped.
	closeAfter int
}

func newFakeWindow() *fakeWindow {
	return &fakeWindow{held: map[core.Key]bool{}, width: 1600, height: 900}
}

func (w *fakeWindow) IsKeyPressed(key core.Key) bool { return w.held[key] }
func (w *fakeWindow) ShouldClose() bool              { return w.shouldClose }
func (w *fakeWindow) SetShouldClose(v bool)          { w.shouldClose = v }
func (w *fakeWindow) SetCursorCaptured(c bool)       { w.captured = c }
func (w *fakeWindow) GetFramebufferSize() (int, int) { return w.width, w.height }
func (w *fakeWindow) PollEvents()                    { w.polls++ }
func (w *fakeWindow) Time() float64                  { return w.now }

func (w *fakeWindow) SwapBuffers() {
	w.swaps++
	if w.closeAfter > 0 && w.swaps >= w.closeAfter {
		w.shouldClose = true
	}
}

// fakePanel accepts every widget and changes nothing.
type fakePanel struct {
	wantMouse bool
}

func (p *fakePanel) Begin(string) bool                                   { return true }
func (p *fakePanel) End()                                                {}
func (p *fakePanel) Text(string, ...any)                                 {}
func (p *fakePanel) Separator()                                          {}
func (p *fakePanel) SameLine()                                           {}
func (p *fakePanel) Checkbox(string, *bool) bool                         { return false }
func (p *fakePanel) SliderFloat(string, *float32, float32, float32) bool { return false }
func (p *fakePanel) DragFloat3(string, *math.Vec3, float32) bool         { return false }
func (p *fakePanel) ColorEdit3(string, *core.Color) bool                 { return false }
func (p *fakePanel) Button(string) bool                                  { return false }
func (p *fakePanel) WantCaptureMouse() bool                              { return p.wantMouse }
func (p *fakePanel) WantCaptureKeyboard() bool                           { return false }
func (p *fakePanel) Framerate() float32                                  { return 60 }

type fakeFrontend struct {
	panel  fakePanel
	log    *[]string
	deltas []float32
}

func (f *fakeFrontend) NewFrame(dt float32) {
	f.deltas = append(f.deltas, dt)
	*f.log = append(*f.log, "ui.NewFrame")
}
func (f *fakeFrontend) Panel() ui.Panel { return &f.panel }
func (f *fakeFrontend) Render()         { *f.log = append(*f.log, "ui.Render") }

type fakeGraphics struct {
	log       *[]string
	viewports [][2]int
	cleared   []core.Color
}

func (g *fakeGraphics) SetViewport(w, h int) { g.viewports = append(g.viewports, [2]int{w, h}) }
func (g *fakeGraphics) Clear(c core.Color) {
	g.cleared = append(g.cleared, c)
	*g.log = append(*g.log, "clear")
}

type fakeLab struct {
	log       *[]string
	initErr   error
	frames    []Frame
	reloaded  []string
	destroyed bool
	// onPanel runs inside DrawPanel.
	onPanel func(f *Frame)
}

func (l *fakeLab) Name() string              { return "fake" }
func (l *fakeLab) Init(*config.Config) error { *l.log = append(*l.log, "init"); return l.initErr }
func (l *fakeLab) Reload(path string)        { l.reloaded = append(l.reloaded, path) }
func (l *fakeLab) Destroy()                  { l.destroyed = true }
func (l *fakeLab) DrawPanel(_ ui.Panel, f *Frame) {
	*l.log = append(*l.log, "panel")
	if l.onPanel != nil {
		l.onPanel(f)
	}
}
func (l *fakeLab) Render(f *Frame) {
	*l.log = append(*l.log, "render")
	l.frames = append(l.frames, *f)
}

type harness struct {
	app      *App
	window   *fakeWindow
	lab      *fakeLab
	frontend *fakeFrontend
	gfx      *fakeGraphics
	log      []string
}

func newHarness(t *testing.T, lab config.Lab) *harness {
	t.Helper()
	h := &harness{window: newFakeWindow()}
	h.lab = &fakeLab{log: &h.log}
	h.frontend = &fakeFrontend{log: &h.log}
	h.gfx = &fakeGraphics{log: &h.log}

	cfg := config.Default(lab)
	h.app = New(&cfg, h.window, h.lab, h.frontend, h.gfx)
	require.NotNil(t, h.app)
	return h
}

func TestNewAppStartsUIFocused(t *testing.T) {
	h := newHarness(t, config.Reflectance)

	assert.True(t, h.app.Input.UIFocused)
	assert.True(t, h.app.Input.FirstMouse)
	assert.False(t, h.window.captured)
	assert.Equal(t, [][2]int{{1600, 900}}, h.gfx.viewports)
	assert.Equal(t, scene.DefaultFlyCamera().Position, h.app.Camera.Position)
}

func TestStepOrder(t *testing.T) {
	h := newHarness(t, config.Reflectance)
	h.app.Step()

	assert.Equal(t, []string{"ui.NewFrame", "panel", "clear", "render", "ui.Render"}, h.log)
	assert.Equal(t, 1, h.window.swaps)
	assert.Equal(t, 1, h.window.polls)
	assert.Equal(t, []core.Color{{R: 0.1, G: 0.1, B: 0.15, A: 1}}, h.gfx.cleared)
}

func TestStepFrameMatrices(t *testing.T) {
	h := newHarness(t, config.Skybox)
	h.app.Step()

	require.Len(t, h.lab.frames, 1)
	f := h.lab.frames[0]
	cam := h.app.Camera
	assert.Equal(t, cam.ViewMatrix(), f.View)
	assert.Equal(t, cam.ProjectionMatrix(1600.0/900.0, 0.1, 100), f.Projection)
	assert.Equal(t, 1600, f.Width)
	assert.True(t, f.UIFocused)
	assert.Same(t, cam, f.Camera)
}

func TestStepPicksUpCameraChangesFromPanel(t *testing.T) {
	h := newHarness(t, config.Reflectance)
	h.lab.onPanel = func(f *Frame) {
		f.Camera.Restore(scene.CameraSnapshot{Position: [3]float32{5, 5, 5}, Yaw: 0, Pitch: 0, Zoom: 30})
	}
	h.app.Step()

	require.Len(t, h.lab.frames, 1)
	assert.Equal(t, h.app.Camera.ViewMatrix(), h.lab.frames[0].View)
}

func TestStepDeltaComesFromClock(t *testing.T) {
	h := newHarness(t, config.Reflectance)

	h.window.now = 10
	h.app.Step()
	h.window.now = 10.5
	h.app.Step()
	h.window.now = 30 // stall
	h.app.Step()

	assert.Equal(t, []float32{0, 0.5, 0.25}, h.frontend.deltas)
}

func TestStepMovesCameraOnlyWhenCameraFocused(t *testing.T) {
	h := newHarness(t, config.Reflectance)
	h.window.held[core.KeyW] = true
	start := h.app.Camera.Position

	h.window.now = 1
	h.app.Step()
	h.window.now = 1.1
	h.app.Step()
	assert.Equal(t, start, h.app.Camera.Position)

	h.app.Input.OnKey(core.KeyTab, core.Press)
	h.window.now = 1.2
	h.app.Step()
	assert.NotEqual(t, start, h.app.Camera.Position)
}

func TestStepForwardsReloads(t *testing.T) {
	h := newHarness(t, config.Reflectance)
	changes := make(chan string, 4)
	changes <- "assets/shaders/toon.frag"
	changes <- "assets/shaders/toon.frag"
	changes <- "assets/shaders/phong.vert"
	h.app.WatchFiles(changes)

	h.app.Step()
	assert.Equal(t, []string{"assets/shaders/toon.frag", "assets/shaders/phong.vert"}, h.lab.reloaded)

	h.app.Step()
	assert.Len(t, h.lab.reloaded, 2)
}

func TestRunStepsUntilClose(t *testing.T) {
	h := newHarness(t, config.Reflectance)
	h.window.closeAfter = 3

	require.NoError(t, h.app.Run(context.Background()))
	assert.Equal(t, "init", h.log[0])
	assert.Len(t, h.lab.frames, 3)
	assert.True(t, h.lab.destroyed)
}

func TestRunStopsWhenCancelled(t *testing.T) {
	h := newHarness(t, config.Reflectance)
	ctx, cancel := context.WithCancel(context.Background())
	h.lab.onPanel = func(*Frame) { cancel() }

	require.NoError(t, h.app.Run(ctx))
	assert.Len(t, h.lab.frames, 1)
	assert.True(t, h.lab.destroyed)
}

func TestRunReturnsInitError(t *testing.T) {
	h := newHarness(t, config.Reflectance)
	h.lab.initErr = fmt.Errorf("no GL")

	assert.EqualError(t, h.app.Run(context.Background()), "no GL")
	assert.Empty(t, h.lab.frames)
	assert.False(t, h.lab.destroyed)
}

type recordingEvents struct {
	key    func(core.Key, core.Action)
	cursor func(float64, float64)
	scroll func(float64, float64)
	button func(core.MouseButton, core.Action)
	char   func(rune)
	resize func(int, int)
}

func (e *recordingEvents) SetKeyCallback(cb func(core.Key, core.Action))                 { e.key = cb }
func (e *recordingEvents) SetCursorPosCallback(cb func(float64, float64))                { e.cursor = cb }
func (e *recordingEvents) SetScrollCallback(cb func(float64, float64))                   { e.scroll = cb }
func (e *recordingEvents) SetMouseButtonCallback(cb func(core.MouseButton, core.Action)) { e.button = cb }
func (e *recordingEvents) SetCharCallback(cb func(rune))                                 { e.char = cb }
func (e *recordingEvents) OnFramebufferSize(cb func(int, int))                           { e.resize = cb }

type recordingSink struct {
	events []string
}

func (s *recordingSink) OnKey(k core.Key, a core.Action) {
	s.events = append(s.events, fmt.Sprintf("key %d %d", k, a))
}
func (s *recordingSink) OnCursor(x, y float64) {
	s.events = append(s.events, fmt.Sprintf("cursor %g %g", x, y))
}
func (s *recordingSink) OnScroll(dx, dy float64) {
	s.events = append(s.events, fmt.Sprintf("scroll %g %g", dx, dy))
}
func (s *recordingSink) OnMouseButton(b core.MouseButton, a core.Action) {
	s.events = append(s.events, fmt.Sprintf("button %d %d", b, a))
}
func (s *recordingSink) OnChar(c rune) {
	s.events = append(s.events, fmt.Sprintf("char %c", c))
}

func TestBindEvents(t *testing.T) {
	h := newHarness(t, config.Reflectance)
	events := &recordingEvents{}
	sink := &recordingSink{}
	h.app.BindEvents(events, sink)

	events.key(core.KeyTab, core.Press)
	events.cursor(10, 20)
	events.scroll(0, 1)
	events.button(core.MouseButtonLeft, core.Press)
	events.char('x')
	events.resize(800, 600)

	assert.Equal(t, []string{
		"key 258 1",
		"cursor 10 20",
		"scroll 0 1",
		"button 0 1",
		"char x",
	}, sink.events)

	// Tab reached the router too
	assert.False(t, h.app.Input.UIFocused)
	assert.Equal(t, float32(44), h.app.Camera.Zoom)

	assert.Equal(t, 800, h.app.Input.Width)
	assert.Equal(t, [2]int{800, 600}, h.gfx.viewports[len(h.gfx.viewports)-1])
}
