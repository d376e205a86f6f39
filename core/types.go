package core

import (
	"render-labs/math"
)

type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite   = Color{1, 1, 1, 1}
	ColorBlack   = Color{0, 0, 0, 1}
	ColorMagenta = Color{1, 0, 1, 1}
)

// RGB drops alpha.
func (c Color) RGB() math.Vec3 {
	return math.Vec3{X: c.R, Y: c.G, Z: c.B}
}

// Vertex is the interleaved layout uploaded to vertex buffers:
// location 0 position, 1 normal, 2 uv.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	UV       math.Vec2
}
