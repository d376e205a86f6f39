package opengl

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"render-labs/scene"
)

// Cubemap is an uploaded GL_TEXTURE_CUBE_MAP.
type Cubemap struct {
	ID uint32
}

// UploadCubemap uploads six faces in right, left, top, bottom, front, back
// order to the positive/negative X, Y, Z targets.
func UploadCubemap(cm *scene.Cubemap) (*Cubemap, error) {
	for i, face := range cm.Faces {
		if face == nil || len(face.Pixels) == 0 {
			return nil, fmt.Errorf("cubemap face %s has no pixel data", scene.FaceName(i))
		}
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, id)

	for i, face := range cm.Faces {
		gl.TexImage2D(
			gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i),
			0,
			gl.RGBA,
			int32(face.Width),
			int32(face.Height),
			0,
			gl.RGBA,
			gl.UNSIGNED_BYTE,
			unsafe.Pointer(&face.Pixels[0]),
		)
	}

	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)

	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
	return &Cubemap{ID: id}, nil
}

// Bind binds the cubemap to texture unit.
func (c *Cubemap) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, c.ID)
}

// Delete frees the texture.
func (c *Cubemap) Delete() {
	if c == nil || c.ID == 0 {
		return
	}
	gl.DeleteTextures(1, &c.ID)
	c.ID = 0
}
