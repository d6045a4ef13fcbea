package camera

// Input is the per-tick view of the keyboard and mouse the controller reads.
type Input interface {
	Cursor
	IsHeld(dir Direction) bool
	IsLookPressed() bool
}

// Controller maps input state onto a Camera once per frame.
type Controller struct {
	camera  *Camera
	capture MouseCapture
}

// NewController wraps camera in a controller with the mouse released.
func NewController(camera *Camera) *Controller {
	return &Controller{camera: camera}
}

// Camera returns the controlled camera.
func (c *Controller) Camera() *Camera {
	return c.camera
}

// CaptureState returns the current mouse capture state.
func (c *Controller) CaptureState() CaptureState {
	return c.capture.State()
}

// Update applies held movement keys and then mouse look. Movement uses the
// basis from the previous look update; the look step rebuilds it for the
// next frame.
func (c *Controller) Update(in Input, dt float32) {
	for _, dir := range Directions {
		if in.IsHeld(dir) {
			c.camera.Move(dir, dt)
		}
	}

	if dx, dy, ok := c.capture.Update(in, in.IsLookPressed()); ok {
		c.camera.ApplyLook(dx, dy, dt)
	}
}

// Scroll adjusts the movement speed by a vertical scroll offset.
func (c *Controller) Scroll(yoffset float64) {
	c.camera.AdjustSpeed(yoffset)
}
