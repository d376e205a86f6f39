// Package io saves and restores lab presets: the panel parameters plus the
// camera pose, as TOML.
package io

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"render-labs/core"
	"render-labs/math"
	"render-labs/scene"
)

// PresetVersion is written into every preset file.
const PresetVersion = "1.0"

// PresetFile is the top-level structure of a preset.
type PresetFile struct {
	Version       string             `toml:"version"`
	Lab           string             `toml:"lab"`
	Camera        CameraData         `toml:"camera"`
	Light         *LightData         `toml:"light,omitempty"`
	Models        *ModelData         `toml:"models,omitempty"`
	Materials     *MaterialData      `toml:"materials,omitempty"`
	Transmittance *TransmittanceData `toml:"transmittance,omitempty"`
}

// CameraData stores the fly camera pose
type CameraData struct {
	Position [3]float32 `toml:"position"`
	Yaw      float32    `toml:"yaw"`
	Pitch    float32    `toml:"pitch"`
	Zoom     float32    `toml:"zoom"`
}

// LightData stores the point light
type LightData struct {
	Position  [3]float32 `toml:"position"`
	Color     [3]float32 `toml:"color"`
	Intensity float32    `toml:"intensity"`
}

// ModelData stores instance layout and colors
type ModelData struct {
	LinkColors bool         `toml:"link_colors"`
	Spacing    float32      `toml:"spacing"`
	Color      [3]float32   `toml:"color"`
	Colors     [][3]float32 `toml:"colors"`
}

// MaterialData stores the per-shading-model scalars
type MaterialData struct {
	Roughness float32 `toml:"roughness"`
	Bands     float32 `toml:"bands"`
	MinShade  float32 `toml:"min_shade"`
	Shininess float32 `toml:"shininess"`
	Specular  float32 `toml:"specular"`
}

// TransmittanceData stores the skybox lab object settings
type TransmittanceData struct {
	IOR        float32    `toml:"ior"`
	ReflectMix float32    `toml:"reflect_mix"`
	Tint       [3]float32 `toml:"tint"`
	Spin       bool       `toml:"spin"`
	ShowSkybox bool       `toml:"show_skybox"`
}

// SavePreset serializes a preset to a TOML file
func SavePreset(path string, preset *PresetFile) error {
	if preset.Version == "" {
		preset.Version = PresetVersion
	}
	data, err := toml.Marshal(preset)
	if err != nil {
		return fmt.Errorf("failed to marshal preset: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &core.IOError{Path: path, Err: err}
	}
	return nil
}

// LoadPreset deserializes a TOML preset file
func LoadPreset(path string) (*PresetFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &core.IOError{Path: path, Err: err}
	}

	preset := &PresetFile{}
	if err := toml.Unmarshal(data, preset); err != nil {
		return nil, fmt.Errorf("failed to parse preset %q: %w", path, err)
	}
	return preset, nil
}

// --- Conversions ---

// NewReflectancePreset captures the reflectance lab state.
func NewReflectancePreset(cam scene.CameraSnapshot, p *scene.Params) *PresetFile {
	colors := make([][3]float32, len(p.ModelColors))
	for i, c := range p.ModelColors {
		colors[i] = ColorToArray(c)
	}
	return &PresetFile{
		Version: PresetVersion,
		Lab:     "reflectance",
		Camera:  cameraData(cam),
		Light: &LightData{
			Position:  p.LightPos.Array(),
			Color:     ColorToArray(p.LightColor),
			Intensity: p.LightIntensity,
		},
		Models: &ModelData{
			LinkColors: p.LinkColors,
			Spacing:    p.Spacing,
			Color:      ColorToArray(p.ObjectColor),
			Colors:     colors,
		},
		Materials: &MaterialData{
			Roughness: p.Roughness,
			Bands:     p.Bands,
			MinShade:  p.MinShade,
			Shininess: p.Shininess,
			Specular:  p.Specular,
		},
	}
}

// NewSkyboxPreset captures the skybox lab state.
func NewSkyboxPreset(cam scene.CameraSnapshot, t *scene.TransmittanceParams) *PresetFile {
	return &PresetFile{
		Version: PresetVersion,
		Lab:     "skybox",
		Camera:  cameraData(cam),
		Transmittance: &TransmittanceData{
			IOR:        t.IOR,
			ReflectMix: t.ReflectMix,
			Tint:       ColorToArray(t.Tint),
			Spin:       t.Spin,
			ShowSkybox: t.ShowSkybox,
		},
	}
}

func cameraData(s scene.CameraSnapshot) CameraData {
	return CameraData{Position: s.Position, Yaw: s.Yaw, Pitch: s.Pitch, Zoom: s.Zoom}
}

// CameraSnapshot returns the stored camera pose.
func (f *PresetFile) CameraSnapshot() scene.CameraSnapshot {
	return scene.CameraSnapshot{
		Position: f.Camera.Position,
		Yaw:      f.Camera.Yaw,
		Pitch:    f.Camera.Pitch,
		Zoom:     f.Camera.Zoom,
	}
}

// ApplyParams overwrites the sections of p present in the preset and clamps
// the result into slider ranges.
func (f *PresetFile) ApplyParams(p *scene.Params) {
	if l := f.Light; l != nil {
		p.LightPos = ArrayToVec3(l.Position)
		p.LightColor = ArrayToColor(l.Color)
		p.LightIntensity = l.Intensity
	}
	if m := f.Models; m != nil {
		p.LinkColors = m.LinkColors
		p.Spacing = m.Spacing
		p.ObjectColor = ArrayToColor(m.Color)
		for i := 0; i < len(m.Colors) && i < len(p.ModelColors); i++ {
			p.ModelColors[i] = ArrayToColor(m.Colors[i])
		}
	}
	if m := f.Materials; m != nil {
		p.Roughness = m.Roughness
		p.Bands = m.Bands
		p.MinShade = m.MinShade
		p.Shininess = m.Shininess
		p.Specular = m.Specular
	}
	p.Clamp()
}

// ApplyTransmittance overwrites t from the preset, if present, and clamps.
func (f *PresetFile) ApplyTransmittance(t *scene.TransmittanceParams) {
	if d := f.Transmittance; d != nil {
		t.IOR = d.IOR
		t.ReflectMix = d.ReflectMix
		t.Tint = ArrayToColor(d.Tint)
		t.Spin = d.Spin
		t.ShowSkybox = d.ShowSkybox
	}
	t.Clamp()
}

// ArrayToVec3 converts a [3]float32 to Vec3
func ArrayToVec3(a [3]float32) math.Vec3 {
	return math.Vec3FromArray(a)
}

// ColorToArray converts a Color to [3]float32, dropping alpha
func ColorToArray(c core.Color) [3]float32 {
	return [3]float32{c.R, c.G, c.B}
}

// ArrayToColor converts [3]float32 to an opaque Color
func ArrayToColor(a [3]float32) core.Color {
	return core.Color{R: a[0], G: a[1], B: a[2], A: 1}
}
