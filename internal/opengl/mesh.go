package opengl

import (
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"render-labs/core"
	"render-labs/scene"
)

// GPUMesh holds the vertex array and buffers of an uploaded scene.Mesh.
type GPUMesh struct {
	VAO, VBO, EBO uint32
	IndexCount    int32
	VertexCount   int32
	HasIndices    bool
}

// ensureUploaded uploads vertex/index data if not already done.
func ensureUploaded(mesh *scene.Mesh) *GPUMesh {
	if gpu, ok := mesh.GPUData.(*GPUMesh); ok {
		return gpu
	}
	if len(mesh.Vertices) == 0 {
		return nil
	}

	stride := int32(unsafe.Sizeof(core.Vertex{}))

	gpu := &GPUMesh{
		IndexCount:  int32(len(mesh.Indices)),
		VertexCount: int32(len(mesh.Vertices)),
		HasIndices:  len(mesh.Indices) > 0,
	}

	gl.GenVertexArrays(1, &gpu.VAO)
	gl.GenBuffers(1, &gpu.VBO)
	gl.BindVertexArray(gpu.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.VBO)
	gl.BufferData(gl.ARRAY_BUFFER,
		len(mesh.Vertices)*int(stride),
		gl.Ptr(mesh.Vertices),
		gl.STATIC_DRAW)

	var v core.Vertex
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(v.Position))))

	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(v.Normal))))

	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(v.UV))))

	if gpu.HasIndices {
		gl.GenBuffers(1, &gpu.EBO)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gpu.EBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER,
			len(mesh.Indices)*4,
			gl.Ptr(mesh.Indices),
			gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)

	mesh.GPUData = gpu
	return gpu
}

// DrawMesh draws mesh with whatever program is bound, uploading it on first
// use.
func DrawMesh(mesh *scene.Mesh) {
	gpu := ensureUploaded(mesh)
	if gpu == nil {
		return
	}
	gl.BindVertexArray(gpu.VAO)
	if gpu.HasIndices {
		gl.DrawElements(gl.TRIANGLES, gpu.IndexCount, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, gpu.VertexCount)
	}
	gl.BindVertexArray(0)
}

// DrawModel draws every mesh of model. An empty model draws nothing.
func DrawModel(model *scene.Model) {
	if model.Empty() {
		return
	}
	for _, mesh := range model.Meshes {
		DrawMesh(mesh)
	}
}

// ReleaseModel frees the GPU buffers of every mesh of model.
func ReleaseModel(model *scene.Model) {
	if model == nil {
		return
	}
	for _, mesh := range model.Meshes {
		gpu, ok := mesh.GPUData.(*GPUMesh)
		if !ok {
			continue
		}
		gl.DeleteVertexArrays(1, &gpu.VAO)
		gl.DeleteBuffers(1, &gpu.VBO)
		if gpu.HasIndices {
			gl.DeleteBuffers(1, &gpu.EBO)
		}
		mesh.GPUData = nil
	}
}
