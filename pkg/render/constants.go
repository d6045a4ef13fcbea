package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/leterax/go-raymarch/pkg/camera"
)

// Key constants for keyboard input
const (
	KeyW        = glfw.KeyW
	KeyA        = glfw.KeyA
	KeyS        = glfw.KeyS
	KeyD        = glfw.KeyD
	KeySpace    = glfw.KeySpace
	KeyEscape   = glfw.KeyEscape
	KeyLeftCtrl = glfw.KeyLeftControl
)

// LookButton is held to capture the cursor for mouse look.
const LookButton = glfw.MouseButtonLeft

// movementKeys binds each camera direction to the key that drives it.
var movementKeys = map[camera.Direction]glfw.Key{
	camera.Forward:  KeyW,
	camera.Backward: KeyS,
	camera.Left:     KeyA,
	camera.Right:    KeyD,
	camera.Up:       KeySpace,
	camera.Down:     KeyLeftCtrl,
}
