package opengl

import (
	"fmt"
	"unsafe"

	"github.com/AllenDang/cimgui-go/imgui"
	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// ImGuiRenderer draws Dear ImGui draw data with an OpenGL 4.1 core context.
type ImGuiRenderer struct {
	prog uint32
	vao  uint32
	vbo  uint32
	ebo  uint32

	fontTexture uint32

	projLoc    int32
	textureLoc int32
}

const imguiVertSrc = `
#version 410 core
layout(location = 0) in vec2 inPosition;
layout(location = 1) in vec2 inUV;
layout(location = 2) in vec4 inColor;

uniform mat4 projection;

out vec2 fragUV;
out vec4 fragColor;

void main() {
    fragUV = inUV;
    fragColor = inColor;
    gl_Position = projection * vec4(inPosition, 0.0, 1.0);
}
` + "\x00"

const imguiFragSrc = `
#version 410 core
in vec2 fragUV;
in vec4 fragColor;

uniform sampler2D fontAtlas;

out vec4 outColor;

void main() {
    outColor = fragColor * texture(fontAtlas, fragUV);
}
` + "\x00"

// NewImGuiRenderer compiles the UI program and uploads the font atlas of the
// current ImGui context.
func NewImGuiRenderer() (*ImGuiRenderer, error) {
	prog, err := newProgram(imguiVertSrc, imguiFragSrc)
	if err != nil {
		return nil, fmt.Errorf("imgui shader: %w", err)
	}

	r := &ImGuiRenderer{
		prog:       prog,
		projLoc:    gl.GetUniformLocation(prog, gl.Str("projection\x00")),
		textureLoc: gl.GetUniformLocation(prog, gl.Str("fontAtlas\x00")),
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.GenBuffers(1, &r.ebo)

	vertexSize, posOff, uvOff, colOff := imgui.VertexBufferLayout()
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, int32(vertexSize), gl.PtrOffset(posOff))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, int32(vertexSize), gl.PtrOffset(uvOff))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.UNSIGNED_BYTE, true, int32(vertexSize), gl.PtrOffset(colOff))
	gl.BindVertexArray(0)

	r.uploadFonts()
	return r, nil
}

func (r *ImGuiRenderer) uploadFonts() {
	fonts := imgui.CurrentIO().Fonts()
	pixels, width, height, _ := fonts.GetTextureDataAsRGBA32()

	gl.GenTextures(1, &r.fontTexture)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTexture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, pixels)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	fonts.SetTexID(imgui.TextureID(r.fontTexture))
}

// Render draws the data produced by the last imgui.Render call.
func (r *ImGuiRenderer) Render(data *imgui.DrawData) {
	if data == nil {
		return
	}
	displaySize := data.DisplaySize()
	scale := data.FramebufferScale()
	fbWidth := int32(displaySize.X * scale.X)
	fbHeight := int32(displaySize.Y * scale.Y)
	if fbWidth <= 0 || fbHeight <= 0 {
		return
	}
	displayPos := data.DisplayPos()

	// UI state: alpha blending, no culling or depth, scissor per command.
	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFuncSeparate(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA, gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)
	gl.Viewport(0, 0, fbWidth, fbHeight)

	l, rgt := displayPos.X, displayPos.X+displaySize.X
	t, b := displayPos.Y, displayPos.Y+displaySize.Y
	ortho := [4][4]float32{
		{2 / (rgt - l), 0, 0, 0},
		{0, 2 / (t - b), 0, 0},
		{0, 0, -1, 0},
		{(rgt + l) / (l - rgt), (t + b) / (b - t), 0, 1},
	}

	gl.UseProgram(r.prog)
	gl.Uniform1i(r.textureLoc, 0)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &ortho[0][0])
	gl.BindVertexArray(r.vao)
	gl.ActiveTexture(gl.TEXTURE0)

	indexSize := imgui.IndexBufferLayout()
	indexType := uint32(gl.UNSIGNED_SHORT)
	if indexSize == 4 {
		indexType = gl.UNSIGNED_INT
	}

	for _, list := range data.CommandLists() {
		vtx, vtxBytes := list.GetVertexBuffer()
		idx, idxBytes := list.GetIndexBuffer()

		gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, vtxBytes, vtx, gl.STREAM_DRAW)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, idxBytes, idx, gl.STREAM_DRAW)

		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
				continue
			}
			clip := cmd.ClipRect()
			x0 := (clip.X - displayPos.X) * scale.X
			y0 := (clip.Y - displayPos.Y) * scale.Y
			x1 := (clip.Z - displayPos.X) * scale.X
			y1 := (clip.W - displayPos.Y) * scale.Y
			if x1 <= x0 || y1 <= y0 {
				continue
			}
			gl.Scissor(int32(x0), int32(float32(fbHeight)-y1), int32(x1-x0), int32(y1-y0))
			gl.BindTexture(gl.TEXTURE_2D, uint32(cmd.TextureId()))
			gl.DrawElementsBaseVertex(gl.TRIANGLES, int32(cmd.ElemCount()), indexType,
				indexOffset(cmd.IdxOffset(), indexSize), int32(cmd.VtxOffset()))
		}
	}

	gl.BindVertexArray(0)
	gl.Disable(gl.SCISSOR_TEST)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

// indexOffset is the byte offset of the first index of a draw command,
// passed to GL as a pointer into the bound element buffer.
func indexOffset(first uint32, indexSize int) unsafe.Pointer {
	return gl.PtrOffset(int(first) * indexSize)
}

// Destroy frees the program, buffers and font texture.
func (r *ImGuiRenderer) Destroy() {
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteBuffers(1, &r.ebo)
	gl.DeleteTextures(1, &r.fontTexture)
	gl.DeleteProgram(r.prog)
}
