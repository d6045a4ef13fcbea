package camera

// CaptureState is the mouse-look state of the viewer.
type CaptureState int

const (
	Released CaptureState = iota
	Captured
)

func (s CaptureState) String() string {
	if s == Captured {
		return "captured"
	}
	return "released"
}

// Cursor is the part of the windowing layer the capture state machine drives.
type Cursor interface {
	CursorPos() (x, y float64)
	SetCursorPos(x, y float64)
	// SetCursorCaptured hides and locks the cursor when true and restores
	// the normal cursor when false.
	SetCursorCaptured(captured bool)
}

// MouseCapture gates mouse look behind the primary button. While captured,
// every delta is measured from the anchor recorded on the press edge and the
// cursor is put back on the anchor after each read.
type MouseCapture struct {
	state   CaptureState
	anchorX float64
	anchorY float64
}

// State returns the current capture state.
func (m *MouseCapture) State() CaptureState {
	return m.state
}

// Anchor returns the cursor position recorded when capture started.
// ok is false while released.
func (m *MouseCapture) Anchor() (x, y float64, ok bool) {
	if m.state != Captured {
		return 0, 0, false
	}
	return m.anchorX, m.anchorY, true
}

// Update advances the state machine by one tick given whether the look
// button is held. ok reports whether dx, dy carry a look delta; dy is
// positive when the cursor moved up the screen.
func (m *MouseCapture) Update(cursor Cursor, pressed bool) (dx, dy float64, ok bool) {
	switch {
	case pressed && m.state == Released:
		m.anchorX, m.anchorY = cursor.CursorPos()
		m.state = Captured
		cursor.SetCursorCaptured(true)
		return 0, 0, false

	case pressed:
		x, y := cursor.CursorPos()
		dx = x - m.anchorX
		dy = m.anchorY - y
		cursor.SetCursorPos(m.anchorX, m.anchorY)
		return dx, dy, true

	case m.state == Captured:
		m.state = Released
		m.anchorX, m.anchorY = 0, 0
		cursor.SetCursorCaptured(false)
	}
	return 0, 0, false
}
