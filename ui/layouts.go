package ui

import (
	"render-labs/math"
	"render-labs/scene"
)

// PanelActions reports the buttons pressed while building a panel.
type PanelActions struct {
	SavePreset bool
	LoadPreset bool
}

const panelTitle = "Scene Controls"

// ReflectancePanel draws the lighting and material controls. Edited values
// are clamped back into their slider ranges before returning.
func ReflectancePanel(p Panel, params *scene.Params) PanelActions {
	var actions PanelActions
	if !p.Begin(panelTitle) {
		p.End()
		return actions
	}

	p.Text("Light")
	p.DragFloat3("Light Position", &params.LightPos, 0.5)
	p.ColorEdit3("Light Color", &params.LightColor)
	p.SliderFloat("Light Intensity", &params.LightIntensity, scene.MinIntensity, scene.MaxIntensity)

	p.Separator()

	p.Checkbox("Link Model Colors", &params.LinkColors)
	p.SliderFloat("Model Spacing", &params.Spacing, scene.MinSpacing, scene.MaxSpacing)
	if params.LinkColors {
		p.ColorEdit3("Model Color", &params.ObjectColor)
	} else {
		for i, m := range scene.Materials {
			if i >= scene.InstanceCount {
				break
			}
			p.ColorEdit3(m.Name+" Model", &params.ModelColors[i])
		}
	}

	p.Separator()
	p.SliderFloat("Oren Roughness", &params.Roughness, scene.MinRoughness, scene.MaxRoughness)

	p.Separator()
	p.SliderFloat("Toon Bands", &params.Bands, scene.MinBands, scene.MaxBands)
	p.SliderFloat("Toon Min Shade", &params.MinShade, scene.MinShade, scene.MaxShade)

	p.Separator()
	p.SliderFloat("Phong Shininess", &params.Shininess, scene.MinShininess, scene.MaxShininess)
	p.SliderFloat("Phong Specular Strength", &params.Specular, scene.MinSpecular, scene.MaxSpecular)

	p.Separator()
	p.Text("FPS: %.1f", p.Framerate())
	actions.SavePreset = p.Button("Save Preset")
	p.SameLine()
	actions.LoadPreset = p.Button("Load Preset")

	p.End()
	params.Clamp()
	return actions
}

// SkyboxPanel draws the camera readout and the transmittance controls.
func SkyboxPanel(p Panel, params *scene.TransmittanceParams, cameraPos math.Vec3) PanelActions {
	var actions PanelActions
	if !p.Begin(panelTitle) {
		p.End()
		return actions
	}

	p.Text("Skybox & Transmittance")
	p.Text("FPS: %.1f", p.Framerate())
	p.Separator()
	p.Text("Camera Position: (%.1f, %.1f, %.1f)", cameraPos.X, cameraPos.Y, cameraPos.Z)
	p.Text("Press TAB to toggle UI/Camera control")

	p.Separator()
	p.Checkbox("Show Skybox", &params.ShowSkybox)
	p.Checkbox("Spin Object", &params.Spin)
	p.SliderFloat("Index of Refraction", &params.IOR, scene.MinIOR, scene.MaxIOR)
	p.SliderFloat("Reflection Mix", &params.ReflectMix, 0, 1)
	p.ColorEdit3("Object Tint", &params.Tint)

	p.Separator()
	actions.SavePreset = p.Button("Save Preset")
	p.SameLine()
	actions.LoadPreset = p.Button("Load Preset")

	p.End()
	params.Clamp()
	return actions
}
