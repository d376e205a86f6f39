package scene

import "render-labs/math"

// UniformSetter is the subset of a GL program that material rows write to.
type UniformSetter interface {
	SetMat4(name string, m math.Mat4)
	SetVec3(name string, v math.Vec3)
	SetFloat(name string, f float32)
	SetInt(name string, i int32)
}

// MaterialKind selects one of the shading models drawn by the reflectance lab.
type MaterialKind int

const (
	MaterialPhong MaterialKind = iota
	MaterialToon
	MaterialOrenNayar
)

// MaterialDef is one row of the material table.
type MaterialDef struct {
	Kind MaterialKind
	Name string

	// Shader file names relative to the shader directory.
	VertexShader   string
	FragmentShader string

	// Uniforms lists the names written by Apply, for tests and diagnostics.
	Uniforms []string
	Apply    func(u UniformSetter, p *Params)
}

// Materials is drawn left to right; the index selects the instance offset
// and per-model color.
var Materials = []MaterialDef{
	{
		Kind:           MaterialPhong,
		Name:           "Phong",
		VertexShader:   "phong.vert",
		FragmentShader: "phong.frag",
		Uniforms:       []string{"shininess", "ks"},
		Apply: func(u UniformSetter, p *Params) {
			u.SetFloat("shininess", p.Shininess)
			u.SetFloat("ks", p.Specular)
		},
	},
	{
		Kind:           MaterialToon,
		Name:           "Toon",
		VertexShader:   "toon.vert",
		FragmentShader: "toon.frag",
		Uniforms:       []string{"bands", "minShade"},
		Apply: func(u UniformSetter, p *Params) {
			u.SetFloat("bands", p.Bands)
			u.SetFloat("minShade", p.MinShade)
		},
	},
	{
		Kind:           MaterialOrenNayar,
		Name:           "Oren-Nayar",
		VertexShader:   "oren_nayar.vert",
		FragmentShader: "oren_nayar.frag",
		Uniforms:       []string{"roughness"},
		Apply: func(u UniformSetter, p *Params) {
			u.SetFloat("roughness", p.Roughness)
		},
	},
}

func (k MaterialKind) String() string {
	for _, m := range Materials {
		if m.Kind == k {
			return m.Name
		}
	}
	return "unknown"
}
