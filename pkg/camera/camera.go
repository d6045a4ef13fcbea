// Package camera implements the free-fly camera that feeds the raymarching
// shader: pose, orthonormal basis, mouse capture and the per-frame uniform set.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Config holds the startup values of a Camera.
type Config struct {
	Position    mgl32.Vec3
	Yaw         float32
	Pitch       float32
	FOV         float32
	MoveSpeed   float32
	Sensitivity float32
}

// DefaultConfig returns the startup pose of the viewer.
func DefaultConfig() Config {
	return Config{
		Position:    DefaultPosition,
		Yaw:         DefaultYaw,
		Pitch:       DefaultPitch,
		FOV:         DefaultFOV,
		MoveSpeed:   DefaultMoveSpeed,
		Sensitivity: DefaultSensitivity,
	}
}

// Camera implements a free-fly camera for navigating a raymarched scene
type Camera struct {
	// Position and orientation
	position mgl32.Vec3
	forward  mgl32.Vec3
	right    mgl32.Vec3
	up       mgl32.Vec3

	// Euler angles, in degrees
	yaw   float32
	pitch float32

	// Camera options
	fov         float32
	moveSpeed   float32
	sensitivity float32
}

// NewCamera creates a camera with the default configuration.
func NewCamera() *Camera {
	return New(DefaultConfig())
}

// New creates a camera from cfg. Pitch and move speed are brought into range.
func New(cfg Config) *Camera {
	c := &Camera{
		position:    cfg.Position,
		yaw:         cfg.Yaw,
		pitch:       clampPitch(cfg.Pitch),
		fov:         cfg.FOV,
		moveSpeed:   clampSpeed(cfg.MoveSpeed),
		sensitivity: cfg.Sensitivity,
	}
	c.updateCameraVectors()
	return c
}

// updateCameraVectors recalculates the basis from the Euler angles.
func (c *Camera) updateCameraVectors() {
	yaw := mgl32.DegToRad(c.yaw)
	pitch := mgl32.DegToRad(c.pitch)

	forward := mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}
	c.forward = forward.Normalize()

	// Pitch never reaches ±90 so forward is never parallel to worldUp.
	c.right = c.forward.Cross(worldUp).Normalize()
	c.up = c.right.Cross(c.forward).Normalize()
}

// Position returns the current camera position
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// Orientation returns the current camera orientation (yaw, pitch)
func (c *Camera) Orientation() (yaw, pitch float32) {
	return c.yaw, c.pitch
}

// SetRotation sets the camera rotation angles and rebuilds the basis.
func (c *Camera) SetRotation(yaw, pitch float32) {
	c.yaw = yaw
	c.pitch = clampPitch(pitch)
	c.updateCameraVectors()
}

// ForwardVector returns the camera's forward direction vector
func (c *Camera) ForwardVector() mgl32.Vec3 {
	return c.forward
}

// RightVector returns the camera's right direction vector
func (c *Camera) RightVector() mgl32.Vec3 {
	return c.right
}

// UpVector returns the camera's up direction vector
func (c *Camera) UpVector() mgl32.Vec3 {
	return c.up
}

// FOV returns the field of view in degrees.
func (c *Camera) FOV() float32 {
	return c.fov
}

// MoveSpeed returns the movement speed in units per second.
func (c *Camera) MoveSpeed() float32 {
	return c.moveSpeed
}

// Translate moves the camera along the basis vector for dir.
// The basis is the one computed at the last look update.
func (c *Camera) Translate(dir Direction, speed, dt float32) {
	step := speed * dt
	switch dir {
	case Forward:
		c.position = c.position.Add(c.forward.Mul(step))
	case Backward:
		c.position = c.position.Sub(c.forward.Mul(step))
	case Left:
		c.position = c.position.Sub(c.right.Mul(step))
	case Right:
		c.position = c.position.Add(c.right.Mul(step))
	case Up:
		c.position = c.position.Add(c.up.Mul(step))
	case Down:
		c.position = c.position.Sub(c.up.Mul(step))
	}
}

// Move translates the camera along dir at the current move speed.
func (c *Camera) Move(dir Direction, dt float32) {
	c.Translate(dir, c.moveSpeed, dt)
}

// ApplyLook turns the camera by a cursor delta. deltaY must already be
// inverted so that moving the mouse up is positive.
func (c *Camera) ApplyLook(deltaX, deltaY float64, dt float32) {
	scale := c.sensitivity * dt
	c.yaw += float32(deltaX) * scale
	c.pitch = clampPitch(c.pitch + float32(deltaY)*scale)
	c.updateCameraVectors()
}

// AdjustSpeed changes the movement speed by a scroll offset.
func (c *Camera) AdjustSpeed(scroll float64) {
	c.moveSpeed = clampSpeed(c.moveSpeed + float32(scroll))
}

func clampPitch(pitch float32) float32 {
	if pitch > MaxPitch {
		return MaxPitch
	}
	if pitch < MinPitch {
		return MinPitch
	}
	return pitch
}

func clampSpeed(speed float32) float32 {
	if speed < MinMoveSpeed {
		return MinMoveSpeed
	}
	if speed > MaxMoveSpeed {
		return MaxMoveSpeed
	}
	return speed
}
