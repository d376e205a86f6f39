package math

import "github.com/chewxy/math32"

// Mat4 is a 4x4 matrix for row vectors: a point p is transformed as p*M, so
// transforms compose left to right (model.Mul(view).Mul(proj)). Its memory
// layout equals a column-major matrix for column vectors, which is what
// glUniformMatrix4fv expects with transpose=false.
type Mat4 [4][4]float32

func Mat4Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				result[i][j] += m[i][k] * other[k][j]
			}
		}
	}
	return result
}

// TransformPoint applies m to the point p (w = 1) and drops w.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	return p.ToVec4(1).MulMat(m).ToVec3()
}

// TransformDir applies m to the direction d (w = 0).
func (m Mat4) TransformDir(d Vec3) Vec3 {
	return d.ToVec4(0).MulMat(m).ToVec3()
}

// Ptr returns a pointer to the first element for GL uploads.
func (m *Mat4) Ptr() *float32 {
	return &m[0][0]
}

// WithoutTranslation keeps only the upper 3x3 block. Skyboxes use it so the
// camera never leaves the centre of the cube.
func (m Mat4) WithoutTranslation() Mat4 {
	m[3][0], m[3][1], m[3][2] = 0, 0, 0
	m[0][3], m[1][3], m[2][3] = 0, 0, 0
	m[3][3] = 1
	return m
}

func Mat4Translation(translation Vec3) Mat4 {
	m := Mat4Identity()
	m[3][0] = translation.X
	m[3][1] = translation.Y
	m[3][2] = translation.Z
	return m
}

func Mat4Scale(scale Vec3) Mat4 {
	m := Mat4Identity()
	m[0][0] = scale.X
	m[1][1] = scale.Y
	m[2][2] = scale.Z
	return m
}

func Mat4RotationY(angle float32) Mat4 {
	c := math32.Cos(angle)
	s := math32.Sin(angle)
	return Mat4{
		{c, 0, -s, 0},
		{0, 1, 0, 0},
		{s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

// Mat4Perspective builds a right-handed perspective projection. fovY is in
// radians.
func Mat4Perspective(fovY, aspect, near, far float32) Mat4 {
	tanHalfFovy := math32.Tan(fovY / 2)

	var m Mat4
	m[0][0] = 1 / (aspect * tanHalfFovy)
	m[1][1] = 1 / tanHalfFovy
	m[2][2] = -(far + near) / (far - near)
	m[2][3] = -1
	m[3][2] = -(2 * far * near) / (far - near)
	return m
}

func Mat4LookAt(eye, target, up Vec3) Mat4 {
	zAxis := eye.Sub(target).Normalize()
	xAxis := up.Cross(zAxis).Normalize()
	yAxis := zAxis.Cross(xAxis)

	return Mat4{
		{xAxis.X, yAxis.X, zAxis.X, 0},
		{xAxis.Y, yAxis.Y, zAxis.Y, 0},
		{xAxis.Z, yAxis.Z, zAxis.Z, 0},
		{-xAxis.Dot(eye), -yAxis.Dot(eye), -zAxis.Dot(eye), 1},
	}
}

// Mat4TRS composes scale, then rotation, then translation.
func Mat4TRS(translation Vec3, rotation Quaternion, scale Vec3) Mat4 {
	return Mat4Scale(scale).Mul(rotation.ToMat4()).Mul(Mat4Translation(translation))
}
