package skybox

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"render-labs/app"
	"render-labs/core"
	"render-labs/math"
	"render-labs/scene"
)

type fakeProgram struct {
	valid   bool
	path    string
	reloads int
	deleted bool
	log     *[]string

	vecs   map[string]math.Vec3
	mats   map[string]math.Mat4
	floats map[string]float32
	ints   map[string]int32
}

func newFakeProgram(path string, log *[]string) *fakeProgram {
	return &fakeProgram{
		valid:  true,
		path:   path,
		log:    log,
		vecs:   map[string]math.Vec3{},
		mats:   map[string]math.Mat4{},
		floats: map[string]float32{},
		ints:   map[string]int32{},
	}
}

func (p *fakeProgram) SetMat4(name string, m math.Mat4) { p.mats[name] = m }
func (p *fakeProgram) SetVec3(name string, v math.Vec3) { p.vecs[name] = v }
func (p *fakeProgram) SetFloat(name string, f float32)  { p.floats[name] = f }
func (p *fakeProgram) SetInt(name string, i int32)      { p.ints[name] = i }
func (p *fakeProgram) Uses(path string) bool            { return path == p.path }
func (p *fakeProgram) Reload() error                    { p.reloads++; return nil }
func (p *fakeProgram) Delete()                          { p.deleted = true }

func (p *fakeProgram) Use() bool {
	if p.valid {
		*p.log = append(*p.log, "use "+p.path)
	}
	return p.valid
}

type testLab struct {
	*Lab
	object *fakeProgram
	log    []string
}

func newTestLab() *testLab {
	tl := &testLab{Lab: New()}
	tl.object = newFakeProgram("transmittance.frag", &tl.log)
	tl.Lab.object = tl.object
	tl.Lab.sky = newFakeProgram("skybox.frag", &tl.log)
	tl.model = &scene.Model{}
	tl.draw = func(*scene.Model) { tl.log = append(tl.log, "draw object") }
	tl.bindCubemap = func() { tl.log = append(tl.log, "bind cubemap") }
	tl.drawSky = func(view, proj math.Mat4) { tl.log = append(tl.log, "draw sky") }
	return tl
}

func testFrame(dt float32) *app.Frame {
	cam := scene.DefaultFlyCamera()
	return &app.Frame{
		Delta:      dt,
		Projection: cam.ProjectionMatrix(1, 0.1, 100),
		View:       cam.ViewMatrix(),
		Camera:     cam,
		UIFocused:  true,
	}
}

func TestRenderDrawsSkyLast(t *testing.T) {
	l := newTestLab()
	l.Render(testFrame(0))

	assert.Equal(t, []string{"use transmittance.frag", "bind cubemap", "draw object", "draw sky"}, l.log)
}

func TestRenderObjectUniforms(t *testing.T) {
	l := newTestLab()
	l.Params.IOR = 1.33
	l.Params.Tint = core.Color{R: 0.5, G: 1, B: 1, A: 1}
	f := testFrame(0)

	l.Render(f)

	p := l.object
	assert.Equal(t, f.Projection, p.mats["projection"])
	assert.Equal(t, f.View, p.mats["view"])
	assert.Equal(t, math.Mat4RotationY(0), p.mats["model"])
	assert.Equal(t, f.Camera.Position, p.vecs["cameraPos"])
	assert.Equal(t, float32(1.33), p.floats["ior"])
	assert.Equal(t, float32(0.1), p.floats["reflectMix"])
	assert.Equal(t, math.Vec3{X: 0.5, Y: 1, Z: 1}, p.vecs["tint"])
	assert.Equal(t, int32(0), p.ints["skybox"])
}

func TestRenderSpin(t *testing.T) {
	l := newTestLab()
	l.Render(testFrame(0.5))
	assert.InDelta(t, 0.25, l.angle, 1e-6)

	l.Params.Spin = false
	l.Render(testFrame(0.5))
	assert.InDelta(t, 0.25, l.angle, 1e-6)
}

func TestRenderHonorsShowSkybox(t *testing.T) {
	l := newTestLab()
	l.Params.ShowSkybox = false
	l.Render(testFrame(0))
	assert.NotContains(t, l.log, "draw sky")
}

func TestRenderSkipsBrokenObjectProgram(t *testing.T) {
	l := newTestLab()
	l.object.valid = false
	l.Render(testFrame(0))
	assert.Equal(t, []string{"draw sky"}, l.log)
}

// countingPanel reports how many panels were opened.
type countingPanel struct {
	begins int
}

func (p *countingPanel) Begin(string) bool                                   { p.begins++; return true }
func (p *countingPanel) End()                                                {}
func (p *countingPanel) Text(string, ...any)                                 {}
func (p *countingPanel) Separator()                                          {}
func (p *countingPanel) SameLine()                                           {}
func (p *countingPanel) Checkbox(string, *bool) bool                         { return false }
func (p *countingPanel) SliderFloat(string, *float32, float32, float32) bool { return false }
func (p *countingPanel) DragFloat3(string, *math.Vec3, float32) bool         { return false }
func (p *countingPanel) ColorEdit3(string, *core.Color) bool                 { return false }
func (p *countingPanel) Button(string) bool                                  { return false }
func (p *countingPanel) WantCaptureMouse() bool                              { return false }
func (p *countingPanel) WantCaptureKeyboard() bool                           { return false }
func (p *countingPanel) Framerate() float32                                  { return 60 }

func TestPanelHiddenWhileCameraFocused(t *testing.T) {
	l := newTestLab()
	p := &countingPanel{}

	f := testFrame(0)
	l.DrawPanel(p, f)
	assert.Equal(t, 1, p.begins)

	f.UIFocused = false
	l.DrawPanel(p, f)
	assert.Equal(t, 1, p.begins)
}

func TestReloadMatchesProgram(t *testing.T) {
	l := newTestLab()
	l.Reload("skybox.frag")
	l.Reload("other.frag")

	assert.Equal(t, 0, l.object.reloads)
	assert.Equal(t, 1, l.Lab.sky.(*fakeProgram).reloads)
}

func TestPresetRoundTrip(t *testing.T) {
	l := newTestLab()
	l.presetPath = filepath.Join(t.TempDir(), "sky.toml")
	cam := scene.DefaultFlyCamera()
	cam.Move(scene.Forward, 1)
	l.Params.IOR = 2
	l.Params.ShowSkybox = false
	l.SavePreset(cam)

	l.Params = scene.DefaultTransmittanceParams()
	other := scene.DefaultFlyCamera()
	l.LoadPreset(other)

	assert.Equal(t, float32(2), l.Params.IOR)
	assert.False(t, l.Params.ShowSkybox)
	assert.Equal(t, cam.Position, other.Position)
}

func TestLoadPresetFromOtherLabIsRefused(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reflectance.toml")
	contents := fmt.Sprintf("version = %q\nlab = \"reflectance\"\n\n[camera]\nyaw = 10.0\n", "1.0")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	l := newTestLab()
	l.presetPath = path
	cam := scene.DefaultFlyCamera()
	l.LoadPreset(cam)

	assert.Equal(t, scene.DefaultFlyCamera().Yaw, cam.Yaw)
}

func TestDestroyDeletesPrograms(t *testing.T) {
	l := newTestLab()
	l.Destroy()
	assert.True(t, l.object.deleted)
	assert.True(t, l.Lab.sky.(*fakeProgram).deleted)
}
