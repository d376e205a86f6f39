package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"render-labs/core"
	"render-labs/scene"
)

func newRouter() (*InputRouter, *fakeWindow) {
	w := newFakeWindow()
	return NewInputRouter(w, scene.DefaultFlyCamera()), w
}

func TestEscapeRequestsClose(t *testing.T) {
	r, w := newRouter()

	r.OnKey(core.KeyEscape, core.Release)
	assert.False(t, w.shouldClose)

	r.OnKey(core.KeyEscape, core.Press)
	assert.True(t, w.shouldClose)
}

func TestTabTogglesFocusAndCursor(t *testing.T) {
	r, w := newRouter()

	r.OnKey(core.KeyTab, core.Press)
	assert.False(t, r.UIFocused)
	assert.True(t, w.captured)

	r.OnKey(core.KeyTab, core.Repeat)
	assert.False(t, r.UIFocused, "repeat must not toggle")

	r.OnKey(core.KeyTab, core.Press)
	assert.True(t, r.UIFocused)
	assert.False(t, w.captured)
}

func TestCursorIgnoredWhileUIFocused(t *testing.T) {
	r, _ := newRouter()
	before := *r.Camera

	r.OnCursor(100, 100)
	r.OnCursor(400, -300)

	assert.Equal(t, before, *r.Camera)
	assert.True(t, r.FirstMouse)
}

func TestFirstCursorSampleOnlyAnchors(t *testing.T) {
	r, _ := newRouter()
	r.ToggleFocus()
	yaw, pitch := r.Camera.Yaw, r.Camera.Pitch

	r.OnCursor(500, 300)
	assert.Equal(t, yaw, r.Camera.Yaw)
	assert.Equal(t, pitch, r.Camera.Pitch)
	assert.False(t, r.FirstMouse)

	// +x turns right, moving the cursor up (smaller y) looks up
	r.OnCursor(510, 290)
	assert.InDelta(t, yaw+1, r.Camera.Yaw, 1e-4)
	assert.InDelta(t, pitch+1, r.Camera.Pitch, 1e-4)
	assert.Equal(t, 510.0, r.LastX)
	assert.Equal(t, 290.0, r.LastY)
}

func TestToggleTwiceLeavesCameraAndResetsFirstMouse(t *testing.T) {
	r, _ := newRouter()
	r.ToggleFocus()
	r.OnCursor(0, 0)
	r.OnCursor(20, 0)
	before := *r.Camera

	r.ToggleFocus()
	r.ToggleFocus()

	assert.Equal(t, before, *r.Camera)
	assert.True(t, r.FirstMouse)
	assert.False(t, r.UIFocused)

	// the next delta is measured from the new cursor position
	r.OnCursor(900, 700)
	assert.Equal(t, before, *r.Camera)
	r.OnCursor(905, 700)
	assert.InDelta(t, before.Yaw+0.5, r.Camera.Yaw, 1e-4)
}

func TestScrollGuards(t *testing.T) {
	r, _ := newRouter()
	wantMouse := false
	r.WantMouse = func() bool { return wantMouse }

	r.OnScroll(0, 5)
	assert.Equal(t, float32(45), r.Camera.Zoom, "ignored while UI focused")

	r.ToggleFocus()
	wantMouse = true
	r.OnScroll(0, 5)
	assert.Equal(t, float32(45), r.Camera.Zoom, "ignored while the panel has the mouse")

	wantMouse = false
	r.OnScroll(0, 5)
	assert.Equal(t, float32(40), r.Camera.Zoom)
}

type heldKeys map[core.Key]bool

func (k heldKeys) IsKeyPressed(key core.Key) bool { return k[key] }

func TestPollMovementBindings(t *testing.T) {
	tests := []struct {
		key core.Key
		dir scene.CameraMovement
	}{
		{core.KeyW, scene.Forward},
		{core.KeyS, scene.Backward},
		{core.KeyA, scene.Left},
		{core.KeyD, scene.Right},
		{core.KeySpace, scene.Up},
		{core.KeyLeftShift, scene.Down},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			r, _ := newRouter()
			r.ToggleFocus()

			want := scene.DefaultFlyCamera()
			want.Move(tt.dir, 0.2)

			r.PollMovement(heldKeys{tt.key: true}, 0.2)
			assert.Equal(t, want.Position, r.Camera.Position)
		})
	}
}

func TestPollMovementIgnoredWhileUIFocused(t *testing.T) {
	r, _ := newRouter()
	start := r.Camera.Position

	r.PollMovement(heldKeys{core.KeyW: true, core.KeyD: true}, 1)

	assert.Equal(t, start, r.Camera.Position)
}

func TestResize(t *testing.T) {
	r, _ := newRouter()
	var got [2]int
	r.Viewport = func(w, h int) { got = [2]int{w, h} }

	assert.InDelta(t, 16.0/9.0, r.Aspect(), 1e-6)

	r.OnResize(1024, 512)
	assert.Equal(t, [2]int{1024, 512}, got)
	assert.Equal(t, float32(2), r.Aspect())

	r.OnResize(0, 0)
	assert.Equal(t, float32(1), r.Aspect())
}
