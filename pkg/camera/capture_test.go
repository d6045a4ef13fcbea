package camera

import "testing"

// fakeCursor records what the capture state machine does to the cursor.
type fakeCursor struct {
	x, y         float64
	captured     bool
	captureCalls int
}

func (c *fakeCursor) CursorPos() (float64, float64) { return c.x, c.y }

func (c *fakeCursor) SetCursorPos(x, y float64) {
	c.x, c.y = x, y
}

func (c *fakeCursor) SetCursorCaptured(captured bool) {
	c.captured = captured
	c.captureCalls++
}

func TestMouseCapturePressRecordsAnchor(t *testing.T) {
	var m MouseCapture
	cur := &fakeCursor{x: 100, y: 200}

	if _, _, ok := m.Anchor(); ok {
		t.Fatal("anchor must be invalid while released")
	}

	_, _, ok := m.Update(cur, true)
	if ok {
		t.Error("press edge must not produce a look delta")
	}
	if m.State() != Captured {
		t.Fatalf("state = %v, want captured", m.State())
	}
	x, y, ok := m.Anchor()
	if !ok || x != 100 || y != 200 {
		t.Errorf("anchor = (%v, %v, %v), want (100, 200, true)", x, y, ok)
	}
	if !cur.captured {
		t.Error("cursor should be captured")
	}
}

func TestMouseCaptureHoldMeasuresFromAnchor(t *testing.T) {
	var m MouseCapture
	cur := &fakeCursor{x: 100, y: 200}
	m.Update(cur, true)

	// The environment reports the cursor moved right and up.
	cur.x, cur.y = 130, 180
	dx, dy, ok := m.Update(cur, true)
	if !ok {
		t.Fatal("hold must produce a look delta")
	}
	if dx != 30 || dy != 20 {
		t.Errorf("delta = (%v, %v), want (30, 20)", dx, dy)
	}
	if cur.x != 100 || cur.y != 200 {
		t.Errorf("cursor = (%v, %v), want reset to anchor (100, 200)", cur.x, cur.y)
	}

	// No drift: a second identical move yields the same delta.
	cur.x, cur.y = 130, 180
	dx, dy, _ = m.Update(cur, true)
	if dx != 30 || dy != 20 {
		t.Errorf("second delta = (%v, %v), want (30, 20)", dx, dy)
	}
	if cur.captureCalls != 1 {
		t.Errorf("cursor mode changed %d times while held, want 1", cur.captureCalls)
	}
}

func TestMouseCaptureRelease(t *testing.T) {
	var m MouseCapture
	cur := &fakeCursor{x: 10, y: 10}
	m.Update(cur, true)

	if _, _, ok := m.Update(cur, false); ok {
		t.Error("release must not produce a look delta")
	}
	if m.State() != Released {
		t.Errorf("state = %v, want released", m.State())
	}
	if _, _, ok := m.Anchor(); ok {
		t.Error("anchor must be invalid after release")
	}
	if cur.captured {
		t.Error("cursor should be restored")
	}

	// Further released ticks leave the cursor alone.
	calls := cur.captureCalls
	m.Update(cur, false)
	m.Update(cur, false)
	if cur.captureCalls != calls {
		t.Errorf("cursor mode changed while released: %d calls, want %d", cur.captureCalls, calls)
	}
}

func TestMouseCaptureRecapturesAtNewPosition(t *testing.T) {
	var m MouseCapture
	cur := &fakeCursor{x: 10, y: 10}
	m.Update(cur, true)
	m.Update(cur, false)

	cur.x, cur.y = 50, 60
	m.Update(cur, true)
	x, y, ok := m.Anchor()
	if !ok || x != 50 || y != 60 {
		t.Errorf("anchor = (%v, %v, %v), want (50, 60, true)", x, y, ok)
	}
}
