package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	reMath "render-labs/math"
)

const eps = 1e-5

func assertVec3(t *testing.T, want, got reMath.Vec3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, "x")
	assert.InDelta(t, want.Y, got.Y, eps, "y")
	assert.InDelta(t, want.Z, got.Z, eps, "z")
}

func TestDefaultFlyCamera(t *testing.T) {
	c := DefaultFlyCamera()

	assert.Equal(t, reMath.Vec3{X: 0, Y: 3, Z: 12}, c.Position)
	assert.Equal(t, float32(-90), c.Yaw)
	assert.Equal(t, float32(-10), c.Pitch)
	assert.Equal(t, float32(45), c.Zoom)

	// looking down -Z and slightly toward the floor
	assert.InDelta(t, 0, c.Front.X, eps)
	assert.Less(t, c.Front.Y, float32(0))
	assert.Less(t, c.Front.Z, float32(-0.9))
}

func TestFlyCameraBasisIsOrthonormal(t *testing.T) {
	c := DefaultFlyCamera()
	for _, d := range [][2]float32{{0, 0}, {37, 12}, {-200, -60}, {720, 300}} {
		c.UpdateOrientation(d[0], d[1])

		assert.InDelta(t, 1, c.Front.Length(), eps)
		assert.InDelta(t, 1, c.Right.Length(), eps)
		assert.InDelta(t, 1, c.Up.Length(), eps)
		assert.InDelta(t, 0, c.Front.Dot(c.Right), eps)
		assert.InDelta(t, 0, c.Front.Dot(c.Up), eps)
		assert.InDelta(t, 0, c.Right.Dot(c.Up), eps)
	}
}

func TestFlyCameraMove(t *testing.T) {
	tests := []struct {
		dir  CameraMovement
		axis func(c *FlyCamera) reMath.Vec3
	}{
		{Forward, func(c *FlyCamera) reMath.Vec3 { return c.Front }},
		{Backward, func(c *FlyCamera) reMath.Vec3 { return c.Front.Negate() }},
		{Left, func(c *FlyCamera) reMath.Vec3 { return c.Right.Negate() }},
		{Right, func(c *FlyCamera) reMath.Vec3 { return c.Right }},
		{Up, func(c *FlyCamera) reMath.Vec3 { return reMath.Vec3Up }},
		{Down, func(c *FlyCamera) reMath.Vec3 { return reMath.Vec3Down }},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			c := DefaultFlyCamera()
			start := c.Position

			c.Move(tt.dir, 0.5)

			want := start.Add(tt.axis(c).Mul(c.Speed * 0.5))
			assertVec3(t, want, c.Position)
		})
	}
}

func TestFlyCameraMoveIgnoresNonPositiveDelta(t *testing.T) {
	c := DefaultFlyCamera()
	start := c.Position

	c.Move(Forward, 0)
	c.Move(Left, -3)

	assert.Equal(t, start, c.Position)
}

func TestFlyCameraVerticalMoveIgnoresPitch(t *testing.T) {
	c := DefaultFlyCamera()
	c.UpdateOrientation(0, 60)
	start := c.Position

	c.Move(Up, 1)

	assertVec3(t, start.Add(reMath.Vec3{Y: c.Speed}), c.Position)
}

func TestFlyCameraPitchClamp(t *testing.T) {
	c := DefaultFlyCamera()
	for i := 0; i < 10; i++ {
		c.UpdateOrientation(0, 1e4)
		assert.Equal(t, MaxPitch, c.Pitch)
	}
	for i := 0; i < 10; i++ {
		c.ProcessMouseMovement(0, -1e6)
		assert.Equal(t, -MaxPitch, c.Pitch)
	}
}

func TestFlyCameraYawWraps(t *testing.T) {
	c := DefaultFlyCamera()
	c.UpdateOrientation(360, 0)
	assert.InDelta(t, -90, c.Yaw, 1e-3)

	c.UpdateOrientation(270, 0)
	assert.InDelta(t, -180, c.Yaw, 1e-3)
	assert.GreaterOrEqual(t, c.Yaw, float32(-180))
	assert.Less(t, c.Yaw, float32(180))
}

func TestFlyCameraViewMatrixIsPure(t *testing.T) {
	c := DefaultFlyCamera()
	c.UpdateOrientation(12.5, -3)
	c.Move(Forward, 0.1)

	first := c.ViewMatrix()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, c.ViewMatrix())
	}

	// camera position maps to the view-space origin
	assertVec3(t, reMath.Vec3Zero, first.TransformPoint(c.Position))
}

func TestFlyCameraZoomClamp(t *testing.T) {
	c := DefaultFlyCamera()
	spikes := []float32{3, 1e6, -1e6, 0.5, -44, 1e-3, 90}
	for _, s := range spikes {
		c.ProcessMouseScroll(s)
		assert.GreaterOrEqual(t, c.Zoom, c.MinZoom)
		assert.LessOrEqual(t, c.Zoom, c.MaxZoom)
	}

	c.Zoom = 45
	c.ProcessMouseScroll(5)
	assert.Equal(t, float32(40), c.Zoom)
}

func TestFlyCameraProjectionUsesZoom(t *testing.T) {
	c := DefaultFlyCamera()
	wide := c.ProjectionMatrix(16.0/9.0, 0.1, 100)

	c.ProcessMouseScroll(20)
	narrow := c.ProjectionMatrix(16.0/9.0, 0.1, 100)

	assert.Greater(t, narrow[1][1], wide[1][1])
	require.NotPanics(t, func() { c.ProjectionMatrix(0, 0.1, 100) })
}

func TestFlyCameraSnapshotRestore(t *testing.T) {
	c := DefaultFlyCamera()
	c.UpdateOrientation(40, 20)
	c.Move(Right, 2)
	c.ProcessMouseScroll(10)
	snap := c.Snapshot()

	other := DefaultFlyCamera()
	other.Restore(snap)

	assertVec3(t, c.Position, other.Position)
	assert.Equal(t, c.Yaw, other.Yaw)
	assert.Equal(t, c.Pitch, other.Pitch)
	assert.Equal(t, c.Zoom, other.Zoom)
	assertVec3(t, c.Front, other.Front)

	snap.Pitch = 400
	snap.Zoom = 0
	other.Restore(snap)
	assert.Equal(t, MaxPitch, other.Pitch)
	assert.Equal(t, other.MinZoom, other.Zoom)
}
