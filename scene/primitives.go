package scene

import (
	"fmt"

	"github.com/chewxy/math32"

	"render-labs/core"
	"render-labs/math"
)

// CreateSphere generates a UV-sphere mesh
func CreateSphere(radius float32, segments, rings int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}

	var vertices []core.Vertex
	var indices []uint32

	for ring := 0; ring <= rings; ring++ {
		phi := float32(ring) * math32.Pi / float32(rings)
		sinPhi, cosPhi := math32.Sincos(phi)

		for seg := 0; seg <= segments; seg++ {
			theta := float32(seg) * 2 * math32.Pi / float32(segments)
			sinTheta, cosTheta := math32.Sincos(theta)

			normal := math.Vec3{X: sinPhi * cosTheta, Y: cosPhi, Z: sinPhi * sinTheta}
			vertices = append(vertices, core.Vertex{
				Position: normal.Mul(radius),
				Normal:   normal,
				UV:       math.Vec2{X: float32(seg) / float32(segments), Y: float32(ring) / float32(rings)},
			})
		}
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			current := uint32(ring*(segments+1) + seg)
			next := current + uint32(segments+1)

			indices = append(indices, current, next, current+1)
			indices = append(indices, current+1, next, next+1)
		}
	}

	return CreateMeshFromData("Sphere", vertices, indices)
}

// CreateTorus generates a torus lying in the XZ plane
func CreateTorus(majorRadius, minorRadius float32, majorSegments, minorSegments int) *Mesh {
	if majorSegments < 3 {
		majorSegments = 3
	}
	if minorSegments < 3 {
		minorSegments = 3
	}

	var vertices []core.Vertex
	var indices []uint32

	for i := 0; i <= majorSegments; i++ {
		sinTheta, cosTheta := math32.Sincos(float32(i) * 2 * math32.Pi / float32(majorSegments))

		for j := 0; j <= minorSegments; j++ {
			sinPhi, cosPhi := math32.Sincos(float32(j) * 2 * math32.Pi / float32(minorSegments))

			ring := majorRadius + minorRadius*cosPhi
			vertices = append(vertices, core.Vertex{
				Position: math.Vec3{X: ring * cosTheta, Y: minorRadius * sinPhi, Z: ring * sinTheta},
				Normal:   math.Vec3{X: cosPhi * cosTheta, Y: sinPhi, Z: cosPhi * sinTheta}.Normalize(),
				UV:       math.Vec2{X: float32(i) / float32(majorSegments), Y: float32(j) / float32(minorSegments)},
			})
		}
	}

	for i := 0; i < majorSegments; i++ {
		for j := 0; j < minorSegments; j++ {
			current := uint32(i*(minorSegments+1) + j)
			next := uint32((i+1)*(minorSegments+1) + j)

			indices = append(indices, current, next, current+1)
			indices = append(indices, current+1, next, next+1)
		}
	}

	return CreateMeshFromData("Torus", vertices, indices)
}

// CreateCube generates a cube with per-face normals, four vertices a face.
func CreateCube(size float32) *Mesh {
	s := size / 2

	// normal, then the two in-plane axes spanning the face (counter-clockwise
	// seen from outside)
	faces := [6][3]math.Vec3{
		{{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}},
		{{X: 0, Y: 0, Z: -1}, {X: -1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}},
		{{X: 0, Y: 1, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 0, Z: -1}},
		{{X: 0, Y: -1, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 1}},
		{{X: 1, Y: 0, Z: 0}, {X: 0, Y: 0, Z: -1}, {X: 0, Y: 1, Z: 0}},
		{{X: -1, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 1}, {X: 0, Y: 1, Z: 0}},
	}
	corners := [4]math.Vec2{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}}

	vertices := make([]core.Vertex, 0, 24)
	indices := make([]uint32, 0, 36)
	for _, f := range faces {
		n, u, v := f[0], f[1], f[2]
		base := uint32(len(vertices))
		for _, c := range corners {
			p := n.Add(u.Mul(c.X)).Add(v.Mul(c.Y)).Mul(s)
			vertices = append(vertices, core.Vertex{
				Position: p,
				Normal:   n,
				UV:       math.Vec2{X: (c.X + 1) / 2, Y: (c.Y + 1) / 2},
			})
		}
		indices = append(indices, base, base+1, base+2, base+2, base+3, base)
	}

	return CreateMeshFromData("Cube", vertices, indices)
}

// CreatePrimitive builds a unit-sized primitive by name: sphere, torus or
// cube.
func CreatePrimitive(name string) (*Mesh, error) {
	switch name {
	case "sphere":
		return CreateSphere(1, 48, 24), nil
	case "torus":
		return CreateTorus(0.8, 0.3, 48, 24), nil
	case "cube":
		return CreateCube(1.5), nil
	}
	return nil, fmt.Errorf("primitive %q: %w", name, core.ErrUnsupportedFormat)
}
