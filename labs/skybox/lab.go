// Package skybox draws a cubemap environment around an object that refracts
// and reflects it.
package skybox

import (
	"render-labs/app"
	"render-labs/config"
	"render-labs/core"
	"render-labs/internal/opengl"
	labio "render-labs/io"
	"render-labs/math"
	"render-labs/scene"
	"render-labs/ui"
)

// SpinSpeed is the object's turn rate in radians per second.
const SpinSpeed float32 = 0.5

type program interface {
	scene.UniformSetter
	Use() bool
	Uses(path string) bool
	Reload() error
	Delete()
}

type Lab struct {
	Params scene.TransmittanceParams

	object     program
	sky        program
	model      *scene.Model
	angle      float32
	presetPath string

	cubemap *opengl.Cubemap
	skybox  *opengl.Skybox

	// GL entry points, replaced in tests.
	draw        func(*scene.Model)
	bindCubemap func()
	drawSky     func(view, proj math.Mat4)
}

func New() *Lab {
	return &Lab{
		Params:      scene.DefaultTransmittanceParams(),
		draw:        opengl.DrawModel,
		bindCubemap: func() {},
		drawSky:     func(math.Mat4, math.Mat4) {},
	}
}

func (l *Lab) Name() string { return config.Skybox.String() }

// Init loads both programs, the six cubemap faces and the object. Missing
// faces are replaced by placeholders; shader and model failures are logged
// and the broken pieces are skipped when drawing.
func (l *Lab) Init(cfg *config.Config) error {
	l.presetPath = cfg.Assets.Preset

	object, err := opengl.LoadProgram(cfg.ShaderPath("transmittance.vert"), cfg.ShaderPath("transmittance.frag"))
	if err != nil {
		core.LogError("transmittance program: %v", err)
	}
	l.object = object

	sky, err := opengl.LoadProgram(cfg.ShaderPath("skybox.vert"), cfg.ShaderPath("skybox.frag"))
	if err != nil {
		core.LogError("skybox program: %v", err)
	}
	l.sky = sky

	faces, err := scene.LoadCubemap(cfg.Assets.SkyboxFaces)
	if err != nil {
		core.LogError("skybox faces: %v", err)
	}
	cubemap, err := opengl.UploadCubemap(faces)
	if err != nil {
		core.LogError("skybox upload: %v", err)
	} else {
		core.LogInfo("skybox cubemap %dpx", faces.Size())
		l.cubemap = cubemap
		l.skybox = opengl.NewSkybox(sky, cubemap)
		l.bindCubemap = func() { cubemap.Bind(0) }
		l.drawSky = l.skybox.Draw
	}

	model, err := scene.OpenModel(cfg.Assets.Model)
	if err != nil {
		core.LogError("model: %v", err)
	} else {
		core.LogInfo("loaded %s (%d meshes)", model.Path, len(model.Meshes))
	}
	l.model = model
	return nil
}

// DrawPanel shows the controls only while the panel has focus.
func (l *Lab) DrawPanel(p ui.Panel, f *app.Frame) {
	if !f.UIFocused {
		return
	}
	actions := ui.SkyboxPanel(p, &l.Params, f.Camera.Position)
	if actions.SavePreset {
		l.SavePreset(f.Camera)
	}
	if actions.LoadPreset {
		l.LoadPreset(f.Camera)
	}
}

// Render draws the object first and the sky last so the sky only fills
// pixels the object left at the far plane.
func (l *Lab) Render(f *app.Frame) {
	if l.Params.Spin {
		l.angle = math.WrapRadians(l.angle + SpinSpeed*f.Delta)
	}

	if l.object != nil && l.object.Use() {
		setObjectUniforms(l.object, f, &l.Params, l.angle)
		l.bindCubemap()
		l.draw(l.model)
	}

	if l.Params.ShowSkybox {
		l.drawSky(f.View, f.Projection)
	}
}

func setObjectUniforms(u scene.UniformSetter, f *app.Frame, p *scene.TransmittanceParams, angle float32) {
	u.SetMat4("projection", f.Projection)
	u.SetMat4("view", f.View)
	u.SetMat4("model", math.Mat4RotationY(angle))
	u.SetVec3("cameraPos", f.Camera.Position)
	u.SetFloat("ior", p.IOR)
	u.SetFloat("reflectMix", p.ReflectMix)
	u.SetVec3("tint", p.Tint.RGB())
	u.SetInt("skybox", 0)
}

func (l *Lab) Reload(path string) {
	for name, prog := range map[string]program{"transmittance": l.object, "skybox": l.sky} {
		if prog == nil || !prog.Uses(path) {
			continue
		}
		if err := prog.Reload(); err != nil {
			core.LogError("%s program: %v", name, err)
			continue
		}
		core.LogInfo("%s program rebuilt", name)
	}
}

func (l *Lab) SavePreset(cam *scene.FlyCamera) {
	preset := labio.NewSkyboxPreset(cam.Snapshot(), &l.Params)
	if err := labio.SavePreset(l.presetPath, preset); err != nil {
		core.LogError("save preset: %v", err)
		return
	}
	core.LogInfo("preset saved to %s", l.presetPath)
}

func (l *Lab) LoadPreset(cam *scene.FlyCamera) {
	preset, err := labio.LoadPreset(l.presetPath)
	if err != nil {
		core.LogError("load preset: %v", err)
		return
	}
	if preset.Lab != l.Name() {
		core.LogWarn("preset %s belongs to the %s lab", l.presetPath, preset.Lab)
		return
	}
	preset.ApplyTransmittance(&l.Params)
	cam.Restore(preset.CameraSnapshot())
	core.LogInfo("preset loaded from %s", l.presetPath)
}

func (l *Lab) Destroy() {
	if l.skybox != nil {
		l.skybox.Destroy()
	}
	l.cubemap.Delete()
	for _, prog := range []program{l.object, l.sky} {
		if prog != nil {
			prog.Delete()
		}
	}
	opengl.ReleaseModel(l.model)
}
