package scene

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"render-labs/core"
	remath "render-labs/math"
)

// objFace is an already-triangulated face (three vertex references).
type objFace struct {
	vIdx, vtIdx, vnIdx [3]int // 0-based position / UV / normal indices (-1 = absent)
}

type objObject struct {
	name  string
	faces []objFace
}

// LoadOBJ parses a Wavefront .obj file and returns one Mesh per object/group.
// Materials are ignored: the labs colour objects from the control panel.
func LoadOBJ(path string) ([]*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &core.IOError{Path: path, Err: err}
	}
	defer f.Close()

	meshes, err := ParseOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("obj %q: %w", path, err)
	}
	return meshes, nil
}

// maxOBJLine caps a single OBJ line. Exporters write large polygons as one
// long f record.
const maxOBJLine = 1 << 20

// ParseOBJ reads OBJ text from r.
func ParseOBJ(r io.Reader) ([]*Mesh, error) {
	var positions []remath.Vec3
	var normals []remath.Vec3
	var uvs []remath.Vec2

	var objects []objObject
	cur := &objObject{name: "default"}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxOBJLine)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)

		switch fields[0] {
		case "v", "vn":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: %s needs 3 components", line, fields[0])
			}
			v, err := parseFloats(fields[1:4])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			vec := remath.Vec3{X: v[0], Y: v[1], Z: v[2]}
			if fields[0] == "v" {
				positions = append(positions, vec)
			} else {
				normals = append(normals, vec)
			}

		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: vt needs 2 components", line)
			}
			v, err := parseFloats(fields[1:3])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			uvs = append(uvs, remath.Vec2{X: v[0], Y: v[1]})

		case "o", "g":
			// Push the current object if it has faces, then start a new one
			if len(cur.faces) > 0 {
				objects = append(objects, *cur)
			}
			name := "default"
			if len(fields) > 1 {
				name = fields[1]
			}
			cur = &objObject{name: name}

		case "f":
			if len(fields) < 4 {
				continue
			}
			fverts := make([]objRef, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				ref, err := parseFaceVertex(tok, len(positions), len(uvs), len(normals))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				fverts = append(fverts, ref)
			}
			// Fan triangulation: 0-1-2, 0-2-3, 0-3-4, ...
			for i := 1; i+1 < len(fverts); i++ {
				f0, f1, f2 := fverts[0], fverts[i], fverts[i+1]
				cur.faces = append(cur.faces, objFace{
					vIdx:  [3]int{f0.v, f1.v, f2.v},
					vtIdx: [3]int{f0.vt, f1.vt, f2.vt},
					vnIdx: [3]int{f0.vn, f1.vn, f2.vn},
				})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan obj: %w", err)
	}

	if len(cur.faces) > 0 {
		objects = append(objects, *cur)
	}
	if len(objects) == 0 {
		return nil, core.ErrNoGeometry
	}

	meshes := make([]*Mesh, 0, len(objects))
	for _, obj := range objects {
		meshes = append(meshes, buildMeshFromOBJ(obj.name, obj.faces, positions, normals, uvs))
	}
	return meshes, nil
}

func parseFloats(fields []string) ([]float32, error) {
	out := make([]float32, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(v)
	}
	return out, nil
}

type objRef struct{ v, vt, vn int }

// parseFaceVertex parses one face vertex token: "v", "v/vt", "v//vn", "v/vt/vn".
// OBJ indices are 1-based; negative indices count back from the end of the
// pools read so far. Returns 0-based indices (-1 if absent).
func parseFaceVertex(tok string, nv, nvt, nvn int) (objRef, error) {
	parseIdx := func(s string, n int) (int, error) {
		if s == "" {
			return -1, nil
		}
		i, err := strconv.Atoi(s)
		if err != nil {
			return -1, fmt.Errorf("face index %q: %w", s, err)
		}
		switch {
		case i > 0 && i <= n:
			return i - 1, nil
		case i < 0 && -i <= n:
			return n + i, nil
		}
		return -1, fmt.Errorf("face index %d out of range (%d)", i, n)
	}

	parts := strings.Split(tok, "/")
	res := objRef{v: -1, vt: -1, vn: -1}
	var err error
	if res.v, err = parseIdx(parts[0], nv); err != nil {
		return res, err
	}
	if res.v < 0 {
		return res, fmt.Errorf("face vertex %q has no position", tok)
	}
	if len(parts) > 1 {
		if res.vt, err = parseIdx(parts[1], nvt); err != nil {
			return res, err
		}
	}
	if len(parts) > 2 {
		if res.vn, err = parseIdx(parts[2], nvn); err != nil {
			return res, err
		}
	}
	return res, nil
}

// buildMeshFromOBJ converts parsed face data into a deduplicated Mesh.
func buildMeshFromOBJ(
	name string,
	faces []objFace,
	positions []remath.Vec3,
	normals []remath.Vec3,
	uvs []remath.Vec2,
) *Mesh {
	type key struct{ v, vt, vn int }
	vertMap := map[key]uint32{}
	var vertices []core.Vertex
	var indices []uint32

	missingNormals := false
	for _, face := range faces {
		for c := 0; c < 3; c++ {
			k := key{face.vIdx[c], face.vtIdx[c], face.vnIdx[c]}
			if idx, ok := vertMap[k]; ok {
				indices = append(indices, idx)
				continue
			}
			v := core.Vertex{Position: positions[k.v]}
			if k.vn >= 0 {
				v.Normal = normals[k.vn]
			} else {
				missingNormals = true
			}
			if k.vt >= 0 {
				v.UV = uvs[k.vt]
			}
			idx := uint32(len(vertices))
			vertices = append(vertices, v)
			vertMap[k] = idx
			indices = append(indices, idx)
		}
	}

	if missingNormals {
		generateSmoothNormals(vertices, indices)
	}

	return CreateMeshFromData(name, vertices, indices)
}

// generateSmoothNormals fills in area-weighted normals for vertices that
// have none.
func generateSmoothNormals(vertices []core.Vertex, indices []uint32) {
	accum := make([]remath.Vec3, len(vertices))

	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		v0 := vertices[i0].Position
		v1 := vertices[i1].Position
		v2 := vertices[i2].Position
		n := v1.Sub(v0).Cross(v2.Sub(v0)) // area-weighted normal
		accum[i0] = accum[i0].Add(n)
		accum[i1] = accum[i1].Add(n)
		accum[i2] = accum[i2].Add(n)
	}
	for i := range vertices {
		if vertices[i].Normal == remath.Vec3Zero && accum[i] != remath.Vec3Zero {
			vertices[i].Normal = accum[i].Normalize()
		}
	}
}
