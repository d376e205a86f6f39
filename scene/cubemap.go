package scene

import (
	"errors"
	"fmt"

	"render-labs/core"
)

// Cubemap face order, matching GL_TEXTURE_CUBE_MAP_POSITIVE_X + i.
const (
	FaceRight = iota
	FaceLeft
	FaceTop
	FaceBottom
	FaceFront
	FaceBack
	FaceCount
)

var faceNames = [FaceCount]string{"right", "left", "top", "bottom", "front", "back"}

// FaceName returns the conventional file stem for face i.
func FaceName(i int) string {
	if i < 0 || i >= FaceCount {
		return "unknown"
	}
	return faceNames[i]
}

// Cubemap is six decoded faces ready for upload.
type Cubemap struct {
	Faces [FaceCount]*Texture
}

// LoadCubemap decodes six face images. A face that cannot be read or does
// not match the size of the first good face is replaced with a 1x1 magenta
// face; the returned error joins every per-face failure. The Cubemap is
// never nil.
func LoadCubemap(paths [FaceCount]string) (*Cubemap, error) {
	cm := &Cubemap{}
	var errs []error
	size := 0

	for i, path := range paths {
		tex, err := LoadTexture(path)
		if err == nil {
			err = checkFace(tex, size)
		}
		if err != nil {
			core.LogError("cubemap %s face %q: %v", FaceName(i), path, err)
			errs = append(errs, &core.AssetLoadError{Path: path, Err: err})
			cm.Faces[i] = missingFace(FaceName(i))
			continue
		}
		if size == 0 {
			size = tex.Width
		}
		cm.Faces[i] = tex
	}

	if size > 1 {
		// Scale magenta placeholders up so every face has the same size.
		for i, f := range cm.Faces {
			if f.Width != size {
				cm.Faces[i] = solidFace(f.Name, size, f.Pixels)
			}
		}
	}
	return cm, errors.Join(errs...)
}

func checkFace(tex *Texture, size int) error {
	if tex.Width != tex.Height {
		return fmt.Errorf("%dx%d is not square: %w", tex.Width, tex.Height, core.ErrFaceSize)
	}
	if size != 0 && tex.Width != size {
		return fmt.Errorf("size %d, want %d: %w", tex.Width, size, core.ErrFaceSize)
	}
	return nil
}

func missingFace(name string) *Texture {
	c := core.ColorMagenta
	return NewSolidTexture(name, uint8(c.R*255), uint8(c.G*255), uint8(c.B*255), 255)
}

func solidFace(name string, size int, px []byte) *Texture {
	pixels := make([]byte, size*size*4)
	for i := 0; i < len(pixels); i += 4 {
		copy(pixels[i:i+4], px[:4])
	}
	return &Texture{Name: name, Width: size, Height: size, Pixels: pixels}
}

// Size is the edge length shared by all faces.
func (c *Cubemap) Size() int {
	if c.Faces[0] == nil {
		return 0
	}
	return c.Faces[0].Width
}
