package render

import (
	"github.com/leterax/go-raymarch/internal/openglhelper"
	"github.com/leterax/go-raymarch/pkg/camera"
)

// windowInput exposes the window's polled key and mouse state to the camera
// controller.
type windowInput struct {
	*openglhelper.Window
}

func (in windowInput) IsHeld(dir camera.Direction) bool {
	key, ok := movementKeys[dir]
	return ok && in.IsKeyPressed(key)
}

func (in windowInput) IsLookPressed() bool {
	return in.IsMouseButtonPressed(LookButton)
}
