package scene

import (
	"github.com/chewxy/math32"

	reMath "render-labs/math"
)

// CameraMovement names a movement intent fed to FlyCamera.Move.
type CameraMovement int

const (
	Forward CameraMovement = iota
	Backward
	Left
	Right
	Up
	Down
)

func (m CameraMovement) String() string {
	switch m {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "unknown"
}

const (
	DefaultYaw         float32 = -90
	DefaultPitch       float32 = -10
	DefaultSpeed       float32 = 5
	DefaultSensitivity float32 = 0.1
	DefaultZoom        float32 = 45
	DefaultMinZoom     float32 = 1
	DefaultMaxZoom     float32 = 45

	// MaxPitch keeps the front vector away from world-up.
	MaxPitch float32 = 89
)

// FlyCamera is a free-fly camera driven by yaw/pitch in degrees. Front,
// Right and Up are derived state and are recomputed on every orientation
// change.
type FlyCamera struct {
	Position reMath.Vec3
	WorldUp  reMath.Vec3

	Yaw   float32
	Pitch float32

	Front reMath.Vec3
	Right reMath.Vec3
	Up    reMath.Vec3

	Speed       float32
	Sensitivity float32
	Zoom        float32
	MinZoom     float32
	MaxZoom     float32
}

// NewFlyCamera places a camera at position looking along yaw/pitch.
func NewFlyCamera(position reMath.Vec3, yaw, pitch float32) *FlyCamera {
	c := &FlyCamera{
		Position:    position,
		WorldUp:     reMath.Vec3Up,
		Speed:       DefaultSpeed,
		Sensitivity: DefaultSensitivity,
		Zoom:        DefaultZoom,
		MinZoom:     DefaultMinZoom,
		MaxZoom:     DefaultMaxZoom,
	}
	c.setOrientation(yaw, pitch)
	return c
}

// DefaultFlyCamera is the viewer start pose: slightly above the models and
// looking down the -Z axis.
func DefaultFlyCamera() *FlyCamera {
	return NewFlyCamera(reMath.Vec3{X: 0, Y: 3, Z: 12}, DefaultYaw, DefaultPitch)
}

// ProcessMouseMovement turns a cursor delta in pixels into a look change.
func (c *FlyCamera) ProcessMouseMovement(xoffset, yoffset float32) {
	c.UpdateOrientation(xoffset*c.Sensitivity, yoffset*c.Sensitivity)
}

// UpdateOrientation adds raw degrees to yaw and pitch.
func (c *FlyCamera) UpdateOrientation(yawDelta, pitchDelta float32) {
	c.setOrientation(c.Yaw+yawDelta, c.Pitch+pitchDelta)
}

func (c *FlyCamera) setOrientation(yaw, pitch float32) {
	c.Yaw = reMath.WrapDegrees(yaw)
	c.Pitch = reMath.Clamp(pitch, -MaxPitch, MaxPitch)
	c.updateVectors()
}

func (c *FlyCamera) updateVectors() {
	sinYaw, cosYaw := math32.Sincos(reMath.Radians(c.Yaw))
	sinPitch, cosPitch := math32.Sincos(reMath.Radians(c.Pitch))

	c.Front = reMath.Vec3{
		X: cosYaw * cosPitch,
		Y: sinPitch,
		Z: sinYaw * cosPitch,
	}.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}

// Move displaces the camera along the basis vector for dir. Up and Down use
// world-up so that vertical flight ignores pitch.
func (c *FlyCamera) Move(dir CameraMovement, dt float32) {
	if dt <= 0 {
		return
	}
	velocity := c.Speed * dt

	var axis reMath.Vec3
	switch dir {
	case Forward:
		axis = c.Front
	case Backward:
		axis = c.Front.Negate()
	case Left:
		axis = c.Right.Negate()
	case Right:
		axis = c.Right
	case Up:
		axis = c.WorldUp
	case Down:
		axis = c.WorldUp.Negate()
	default:
		return
	}
	c.Position = c.Position.Add(axis.Mul(velocity))
}

// ProcessMouseScroll narrows the field of view on positive yoffset.
func (c *FlyCamera) ProcessMouseScroll(yoffset float32) {
	c.Zoom = reMath.Clamp(c.Zoom-yoffset, c.MinZoom, c.MaxZoom)
}

// ViewMatrix returns the world-to-view transform.
func (c *FlyCamera) ViewMatrix() reMath.Mat4 {
	return reMath.Mat4LookAt(c.Position, c.Position.Add(c.Front), c.WorldUp)
}

// ProjectionMatrix returns a perspective projection using Zoom as the
// vertical field of view.
func (c *FlyCamera) ProjectionMatrix(aspect, near, far float32) reMath.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return reMath.Mat4Perspective(reMath.Radians(c.Zoom), aspect, near, far)
}

// CameraSnapshot is the persistent part of a FlyCamera.
type CameraSnapshot struct {
	Position [3]float32
	Yaw      float32
	Pitch    float32
	Zoom     float32
}

func (c *FlyCamera) Snapshot() CameraSnapshot {
	return CameraSnapshot{
		Position: c.Position.Array(),
		Yaw:      c.Yaw,
		Pitch:    c.Pitch,
		Zoom:     c.Zoom,
	}
}

// Restore applies a snapshot, re-deriving the basis and re-clamping.
func (c *FlyCamera) Restore(s CameraSnapshot) {
	c.Position = reMath.Vec3FromArray(s.Position)
	c.Zoom = reMath.Clamp(s.Zoom, c.MinZoom, c.MaxZoom)
	c.setOrientation(s.Yaw, s.Pitch)
}
