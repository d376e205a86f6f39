package opengl

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"

	"render-labs/math"
)

// Skybox draws a cubemap on an inside-out unit cube. The vertex shader is
// expected to use the xyww trick (gl_Position.z = gl_Position.w) so every
// fragment lands at NDC depth 1.0, behind scene geometry.
type Skybox struct {
	vao uint32
	vbo uint32

	Program *Program
	Cubemap *Cubemap
}

// ── Cube geometry ─────────────────────────────────────────────────────────────

// 36 positions (xyz) for a unit cube, CCW from the outside.
// Face culling is disabled during draw so we see the inside faces.
var skyboxVerts = []float32{
	// -Z face
	-1, -1, -1, 1, 1, -1, 1, -1, -1,
	1, 1, -1, -1, -1, -1, -1, 1, -1,
	// +Z face
	-1, -1, 1, 1, -1, 1, 1, 1, 1,
	1, 1, 1, -1, 1, 1, -1, -1, 1,
	// -X face
	-1, 1, 1, -1, 1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, 1, -1, 1, 1,
	// +X face
	1, 1, 1, 1, -1, -1, 1, 1, -1,
	1, -1, -1, 1, 1, 1, 1, -1, 1,
	// -Y face
	-1, -1, -1, 1, -1, -1, 1, -1, 1,
	1, -1, 1, -1, -1, 1, -1, -1, -1,
	// +Y face
	-1, 1, -1, 1, 1, 1, 1, 1, -1,
	1, 1, 1, -1, 1, -1, -1, 1, 1,
}

// NewSkybox uploads the cube geometry. prog samples the cubemap through a
// samplerCube uniform named "skybox".
func NewSkybox(prog *Program, cubemap *Cubemap) *Skybox {
	sb := &Skybox{Program: prog, Cubemap: cubemap}

	gl.GenVertexArrays(1, &sb.vao)
	gl.GenBuffers(1, &sb.vbo)
	gl.BindVertexArray(sb.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, sb.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(skyboxVerts)*4, gl.Ptr(skyboxVerts), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 12, gl.PtrOffset(0))
	gl.BindVertexArray(0)

	return sb
}

// Draw renders the sky. The translation is stripped from view here so the
// cube follows the camera.
func (sb *Skybox) Draw(view, proj math.Mat4) {
	if sb.Cubemap == nil || !sb.Program.Use() {
		return
	}

	// Depth LEQUAL so depth=1.0 fragments pass against the cleared depth value (1.0).
	gl.DepthFunc(gl.LEQUAL)
	gl.DepthMask(false)

	sb.Program.SetMat4("view", view.WithoutTranslation())
	sb.Program.SetMat4("projection", proj)
	sb.Program.SetInt("skybox", 0)
	sb.Cubemap.Bind(0)

	gl.BindVertexArray(sb.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 36)
	gl.BindVertexArray(0)

	// Restore depth state for scene geometry
	gl.DepthMask(true)
	gl.DepthFunc(gl.LESS)
}

// Destroy frees the cube geometry. The program and cubemap belong to the
// caller.
func (sb *Skybox) Destroy() {
	gl.DeleteVertexArrays(1, &sb.vao)
	gl.DeleteBuffers(1, &sb.vbo)
}
