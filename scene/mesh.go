package scene

import (
	"render-labs/core"
	"render-labs/math"
)

// Mesh holds CPU-side vertex/index data.
// GPU upload is managed by the renderer backend.
type Mesh struct {
	Name     string
	Vertices []core.Vertex
	Indices  []uint32

	// GPUData is set by the renderer backend (e.g. *opengl.GPUMesh).
	GPUData interface{}
}

func CreateMeshFromData(name string, vertices []core.Vertex, indices []uint32) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: vertices,
		Indices:  indices,
	}
}

// TriangleCount counts indexed triangles, or vertex triples when the mesh is
// not indexed.
func (m *Mesh) TriangleCount() int {
	if len(m.Indices) > 0 {
		return len(m.Indices) / 3
	}
	return len(m.Vertices) / 3
}

// Model is an imported asset: zero or more meshes sharing one model matrix.
// A model that failed to load has no meshes and draws nothing.
type Model struct {
	Path   string
	Meshes []*Mesh
}

func (m *Model) Empty() bool {
	return m == nil || len(m.Meshes) == 0
}

// Bounds returns the axis-aligned bounds over every vertex of the model.
func (m *Model) Bounds() (lo, hi math.Vec3, ok bool) {
	for _, mesh := range m.Meshes {
		for _, v := range mesh.Vertices {
			p := v.Position
			if !ok {
				lo, hi, ok = p, p, true
				continue
			}
			lo = math.Vec3{X: min(lo.X, p.X), Y: min(lo.Y, p.Y), Z: min(lo.Z, p.Z)}
			hi = math.Vec3{X: max(hi.X, p.X), Y: max(hi.Y, p.Y), Z: max(hi.Z, p.Z)}
		}
	}
	return lo, hi, ok
}
