package scene

import (
	"render-labs/core"
	"render-labs/math"
)

// Slider ranges shared by the control panel and Params.Clamp.
const (
	MinIntensity  float32 = 0
	MaxIntensity  float32 = 5
	MinSpacing    float32 = 1
	MaxSpacing    float32 = 20
	MinRoughness  float32 = 0
	MaxRoughness  float32 = 1
	MinBands      float32 = 1
	MaxBands      float32 = 10
	MinShade      float32 = 0
	MaxShade      float32 = 1
	MinShininess  float32 = 1
	MaxShininess  float32 = 256
	MinSpecular   float32 = 0
	MaxSpecular   float32 = 1
	InstanceCount         = 3
)

// Params is the live lighting and material state edited by the panel.
type Params struct {
	LightPos       math.Vec3
	LightColor     core.Color
	LightIntensity float32

	LinkColors  bool
	Spacing     float32
	ObjectColor core.Color
	ModelColors [InstanceCount]core.Color

	Roughness float32
	Bands     float32
	MinShade  float32
	Shininess float32
	Specular  float32
}

// DefaultParams returns the start-up values of the reflectance lab.
func DefaultParams() Params {
	return Params{
		LightPos:       math.Vec3{X: 50, Y: 50, Z: 50},
		LightColor:     core.ColorWhite,
		LightIntensity: 1,
		LinkColors:     true,
		Spacing:        4,
		ObjectColor:    core.ColorWhite,
		ModelColors: [InstanceCount]core.Color{
			{R: 1, G: 0.3, B: 0.3, A: 1},
			{R: 0.3, G: 1, B: 0.3, A: 1},
			{R: 0.3, G: 0.3, B: 1, A: 1},
		},
		Roughness: 0.5,
		Bands:     4,
		MinShade:  0.1,
		Shininess: 32,
		Specular:  0.5,
	}
}

// Clamp forces every scalar into its slider range.
func (p *Params) Clamp() {
	p.LightIntensity = math.Clamp(p.LightIntensity, MinIntensity, MaxIntensity)
	p.Spacing = math.Clamp(p.Spacing, MinSpacing, MaxSpacing)
	p.Roughness = math.Clamp(p.Roughness, MinRoughness, MaxRoughness)
	p.Bands = math.Clamp(p.Bands, MinBands, MaxBands)
	p.MinShade = math.Clamp(p.MinShade, MinShade, MaxShade)
	p.Shininess = math.Clamp(p.Shininess, MinShininess, MaxShininess)
	p.Specular = math.Clamp(p.Specular, MinSpecular, MaxSpecular)

	p.LightColor = clampColor(p.LightColor)
	p.ObjectColor = clampColor(p.ObjectColor)
	for i := range p.ModelColors {
		p.ModelColors[i] = clampColor(p.ModelColors[i])
	}
}

func clampColor(c core.Color) core.Color {
	return core.Color{
		R: math.Clamp(c.R, 0, 1),
		G: math.Clamp(c.G, 0, 1),
		B: math.Clamp(c.B, 0, 1),
		A: 1,
	}
}

// LightColorUniform is the light color premultiplied by intensity.
func (p *Params) LightColorUniform() math.Vec3 {
	return p.LightColor.RGB().Mul(p.LightIntensity)
}

// InstanceColor returns the color for model i, honoring LinkColors.
func (p *Params) InstanceColor(i int) math.Vec3 {
	if p.LinkColors || i < 0 || i >= InstanceCount {
		return p.ObjectColor.RGB()
	}
	return p.ModelColors[i].RGB()
}

// InstanceOffset places model i of InstanceCount symmetrically on X.
func (p *Params) InstanceOffset(i int) math.Vec3 {
	return math.Vec3{X: float32(i-InstanceCount/2) * p.Spacing}
}

// Transmittance slider ranges.
const (
	MinIOR float32 = 1
	MaxIOR float32 = 2.5
)

// TransmittanceParams drive the refracting object of the skybox lab.
type TransmittanceParams struct {
	IOR        float32
	ReflectMix float32
	Tint       core.Color
	Spin       bool
	ShowSkybox bool
}

// DefaultTransmittanceParams is crown glass with a faint reflection.
func DefaultTransmittanceParams() TransmittanceParams {
	return TransmittanceParams{
		IOR:        1.52,
		ReflectMix: 0.1,
		Tint:       core.ColorWhite,
		Spin:       true,
		ShowSkybox: true,
	}
}

func (p *TransmittanceParams) Clamp() {
	p.IOR = math.Clamp(p.IOR, MinIOR, MaxIOR)
	p.ReflectMix = math.Clamp(p.ReflectMix, 0, 1)
	p.Tint = clampColor(p.Tint)
}
