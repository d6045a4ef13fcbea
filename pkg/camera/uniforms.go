package camera

import "github.com/go-gl/mathgl/mgl32"

// Uniform names shared with the fullscreen shader.
const (
	UniformResolution     = "resolution"
	UniformCameraPosition = "cameraPosition"
	UniformCameraForward  = "cameraForward"
	UniformCameraRight    = "cameraRight"
	UniformCameraUp       = "cameraUp"
	UniformFOV            = "fov"
	UniformTime           = "time"
)

// UniformSink receives uniform values; a compiled shader program implements it.
type UniformSink interface {
	SetVec2(name string, v mgl32.Vec2)
	SetVec3(name string, v mgl32.Vec3)
	SetFloat(name string, v float32)
}

// FrameUniforms is the camera state the shader sees for one frame.
type FrameUniforms struct {
	Position mgl32.Vec3
	Forward  mgl32.Vec3
	Right    mgl32.Vec3
	Up       mgl32.Vec3
	FOV      float32
	Time     float32
}

// Uniforms snapshots the camera for a frame at time seconds since start.
func (c *Camera) Uniforms(time float64) FrameUniforms {
	return FrameUniforms{
		Position: c.position,
		Forward:  c.forward,
		Right:    c.right,
		Up:       c.up,
		FOV:      c.fov,
		Time:     float32(time),
	}
}

// Push uploads every per-frame uniform to s.
func (u FrameUniforms) Push(s UniformSink) {
	s.SetVec3(UniformCameraPosition, u.Position)
	s.SetVec3(UniformCameraForward, u.Forward)
	s.SetVec3(UniformCameraRight, u.Right)
	s.SetVec3(UniformCameraUp, u.Up)
	s.SetFloat(UniformFOV, u.FOV)
	s.SetFloat(UniformTime, u.Time)
}

// PushResolution uploads the viewport size. It is sent at startup and on resize only.
func PushResolution(s UniformSink, width, height int) {
	s.SetVec2(UniformResolution, mgl32.Vec2{float32(width), float32(height)})
}
