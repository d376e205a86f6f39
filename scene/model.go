package scene

import (
	"fmt"
	"path/filepath"
	"strings"

	"render-labs/core"
)

// LoadModel imports a mesh asset, choosing the importer by file extension.
// On failure it still returns a usable, empty model alongside the error so
// a viewer can keep running and simply draw nothing.
func LoadModel(path string) (*Model, error) {
	model := &Model{Path: path}

	var (
		meshes []*Mesh
		err    error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		meshes, err = LoadOBJ(path)
	case ".gltf", ".glb":
		meshes, err = LoadGLTF(path)
	default:
		err = fmt.Errorf("extension %q: %w", ext, core.ErrUnsupportedFormat)
	}
	if err != nil {
		return model, &core.AssetLoadError{Path: path, Err: err}
	}

	model.Meshes = meshes
	return model, nil
}

// NewPrimitiveModel wraps a generated primitive as a model.
func NewPrimitiveModel(name string) (*Model, error) {
	mesh, err := CreatePrimitive(name)
	if err != nil {
		return &Model{Path: name}, err
	}
	return &Model{Path: name, Meshes: []*Mesh{mesh}}, nil
}

// OpenModel resolves a configured model source: a bare primitive name
// (sphere, torus, cube) or a path to a mesh file.
func OpenModel(source string) (*Model, error) {
	if filepath.Ext(source) == "" {
		return NewPrimitiveModel(source)
	}
	return LoadModel(source)
}
