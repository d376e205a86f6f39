package scene

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"render-labs/core"
	"render-labs/math"
)

// LoadGLTF opens a .glb or .gltf file and flattens its default scene into a
// list of meshes with node transforms baked into the vertices. Materials and
// textures are ignored.
func LoadGLTF(path string) ([]*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}

	// ── 1. Mesh primitives ────────────────────────────────────────────────────
	// meshPrims[meshIdx] = []*Mesh (one entry per primitive)
	meshPrims := make([][]*Mesh, len(doc.Meshes))
	for mi, gm := range doc.Meshes {
		for pi, prim := range gm.Primitives {
			m, err := loadGLTFPrimitive(doc, gm.Name, pi, prim)
			if err != nil {
				core.LogWarn("gltf %s: mesh %d prim %d: %v", path, mi, pi, err)
				continue
			}
			meshPrims[mi] = append(meshPrims[mi], m)
		}
	}

	// ── 2. Walk the node hierarchy ───────────────────────────────────────────
	var out []*Mesh
	var visit func(idx int, parent math.Mat4, depth int)
	visit = func(idx int, parent math.Mat4, depth int) {
		if idx < 0 || idx >= len(doc.Nodes) || depth > len(doc.Nodes) {
			return
		}
		gn := doc.Nodes[idx]
		world := nodeMatrix(gn).Mul(parent)

		if gn.Mesh != nil && *gn.Mesh < len(meshPrims) {
			for _, prim := range meshPrims[*gn.Mesh] {
				out = append(out, bakeTransform(prim, world))
			}
		}
		for _, child := range gn.Children {
			visit(child, world, depth+1)
		}
	}
	for _, root := range gltfRoots(doc) {
		visit(root, math.Mat4Identity(), 0)
	}

	if len(out) == 0 {
		return nil, core.ErrNoGeometry
	}
	return out, nil
}

// gltfRoots returns the root node indices of the default scene, or every
// parentless node when the document names no scene.
func gltfRoots(doc *gltf.Document) []int {
	if doc.Scene != nil && *doc.Scene < len(doc.Scenes) {
		return doc.Scenes[*doc.Scene].Nodes
	}
	hasParent := make([]bool, len(doc.Nodes))
	for _, gn := range doc.Nodes {
		for _, c := range gn.Children {
			if c < len(hasParent) {
				hasParent[c] = true
			}
		}
	}
	var roots []int
	for i := range doc.Nodes {
		if !hasParent[i] {
			roots = append(roots, i)
		}
	}
	return roots
}

// nodeMatrix returns the local transform of gn. A non-default matrix wins
// over TRS; its column-major layout matches the rows of a row-vector Mat4.
func nodeMatrix(gn *gltf.Node) math.Mat4 {
	if m := gn.MatrixOrDefault(); m != gltf.DefaultMatrix {
		return math.Mat4{
			{float32(m[0]), float32(m[1]), float32(m[2]), float32(m[3])},
			{float32(m[4]), float32(m[5]), float32(m[6]), float32(m[7])},
			{float32(m[8]), float32(m[9]), float32(m[10]), float32(m[11])},
			{float32(m[12]), float32(m[13]), float32(m[14]), float32(m[15])},
		}
	}
	t := gn.TranslationOrDefault()
	sc := gn.ScaleOrDefault()
	r := gn.RotationOrDefault() // [x, y, z, w]

	return math.Mat4TRS(
		math.Vec3{X: float32(t[0]), Y: float32(t[1]), Z: float32(t[2])},
		math.Quaternion{X: float32(r[0]), Y: float32(r[1]), Z: float32(r[2]), W: float32(r[3])},
		math.Vec3{X: float32(sc[0]), Y: float32(sc[1]), Z: float32(sc[2])},
	)
}

// bakeTransform copies mesh with every vertex moved by world. Normals use the
// upper 3x3 block, which is exact for rotations and uniform scale.
func bakeTransform(mesh *Mesh, world math.Mat4) *Mesh {
	verts := make([]core.Vertex, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		verts[i] = core.Vertex{
			Position: world.TransformPoint(v.Position),
			Normal:   world.TransformDir(v.Normal).Normalize(),
			UV:       v.UV,
		}
	}
	return CreateMeshFromData(mesh.Name, verts, mesh.Indices)
}

// loadGLTFPrimitive converts one glTF mesh primitive into a scene.Mesh.
func loadGLTFPrimitive(doc *gltf.Document, meshName string, primIdx int, prim *gltf.Primitive) (*Mesh, error) {
	name := fmt.Sprintf("%s_p%d", meshName, primIdx)
	if meshName == "" {
		name = fmt.Sprintf("prim_%d", primIdx)
	}
	if prim.Mode != gltf.PrimitiveTriangles {
		return nil, fmt.Errorf("primitive mode %v: %w", prim.Mode, core.ErrUnsupportedFormat)
	}

	// Positions are required
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil, fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	var uvs [][2]float32

	if idx, ok := prim.Attributes[gltf.NORMAL]; ok {
		normals, _ = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
	}
	if idx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		uvs, _ = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
	}

	verts := make([]core.Vertex, len(positions))
	for i, p := range positions {
		v := core.Vertex{Position: math.Vec3{X: p[0], Y: p[1], Z: p[2]}}
		if i < len(normals) {
			n := normals[i]
			v.Normal = math.Vec3{X: n[0], Y: n[1], Z: n[2]}
		}
		if i < len(uvs) {
			v.UV = math.Vec2{X: uvs[i][0], Y: uvs[i][1]}
		}
		verts[i] = v
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("indices: %w", err)
		}
	}
	if len(normals) == 0 {
		if indices == nil {
			indices = make([]uint32, len(verts))
			for i := range indices {
				indices[i] = uint32(i)
			}
		}
		generateSmoothNormals(verts, indices)
	}

	return CreateMeshFromData(name, verts, indices), nil
}
