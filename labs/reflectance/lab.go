// Package reflectance draws one model three times side by side, each copy
// lit by a different reflectance model from the material table.
package reflectance

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

// program is the part of *opengl.Program the lab uses.
type program interface {
	scene.UniformSetter
	Use() bool
	Uses(path string) bool
	Reload() error
	Delete()
}

type Lab struct {
	Params scene.Params

	programs   []program
	model      *scene.Model
	presetPath string

	// draw submits every mesh of a model with the bound program.
	draw func(*scene.Model)
}

func New() *Lab {
	return &Lab{
		Params: scene.DefaultParams(),
		draw:   opengl.DrawModel,
	}
}

func (l *Lab) Name() string { return config.Reflectance.String() }

// Init builds one program per material and loads the model. Shader or model
// failures are logged; the lab keeps running and skips what is broken.
func (l *Lab) Init(cfg *config.Config) error {
	l.presetPath = cfg.Assets.Preset

	for _, m := range scene.Materials {
		prog, err := opengl.LoadProgram(cfg.ShaderPath(m.VertexShader), cfg.ShaderPath(m.FragmentShader))
		if err != nil {
			core.LogError("%s program: %v", m.Name, err)
		}
		l.programs = append(l.programs, prog)
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

func (l *Lab) DrawPanel(p ui.Panel, f *app.Frame) {
	actions := ui.ReflectancePanel(p, &l.Params)
	if actions.SavePreset {
		l.SavePreset(f.Camera)
	}
	if actions.LoadPreset {
		l.LoadPreset(f.Camera)
	}
}

func (l *Lab) Render(f *app.Frame) {
	for i, m := range scene.Materials {
		if i >= len(l.programs) || !l.programs[i].Use() {
			continue
		}
		prog := l.programs[i]
		setInstanceUniforms(prog, f, &l.Params, i)
		m.Apply(prog, &l.Params)
		l.draw(l.model)
	}
}

// setInstanceUniforms writes the uniforms every material shares for the
// copy at table index i.
func setInstanceUniforms(u scene.UniformSetter, f *app.Frame, p *scene.Params, i int) {
	u.SetMat4("projection", f.Projection)
	u.SetMat4("view", f.View)
	u.SetVec3("lightPos", p.LightPos)
	u.SetVec3("lightColor", p.LightColorUniform())
	u.SetVec3("objectColor", p.InstanceColor(i))
	u.SetVec3("viewPos", f.Camera.Position)
	u.SetMat4("model", ModelMatrix(p.InstanceOffset(i), f.Time))
}

// ModelMatrix scales by 2, spins about Y by angle radians, then moves the
// copy to offset.
func ModelMatrix(offset math.Vec3, angle float32) math.Mat4 {
	return math.Mat4Scale(math.Vec3Splat(2)).
		Mul(math.Mat4RotationY(angle)).
		Mul(math.Mat4Translation(offset))
}

// Reload rebuilds every program compiled from path.
func (l *Lab) Reload(path string) {
	for i, prog := range l.programs {
		if !prog.Uses(path) {
			continue
		}
		if err := prog.Reload(); err != nil {
			core.LogError("%s program: %v", scene.Materials[i].Name, err)
			continue
		}
		core.LogInfo("%s program rebuilt", scene.Materials[i].Name)
	}
}

func (l *Lab) SavePreset(cam *scene.FlyCamera) {
	preset := labio.NewReflectancePreset(cam.Snapshot(), &l.Params)
	if err := labio.SavePreset(l.presetPath, preset); err != nil {
		core.LogError("save preset: %v", err)
		return
	}
	core.LogInfo("preset saved to %s", l.presetPath)
}

// LoadPreset restores parameters and camera from the preset file. A preset
// written by another lab is refused.
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
	preset.ApplyParams(&l.Params)
	cam.Restore(preset.CameraSnapshot())
	core.LogInfo("preset loaded from %s", l.presetPath)
}

func (l *Lab) Destroy() {
	for _, prog := range l.programs {
		prog.Delete()
	}
	l.programs = nil
	opengl.ReleaseModel(l.model)
}
