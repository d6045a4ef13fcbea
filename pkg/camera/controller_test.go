package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

type fakeInput struct {
	fakeCursor
	held        map[Direction]bool
	lookPressed bool
}

func (in *fakeInput) IsHeld(dir Direction) bool { return in.held[dir] }

func (in *fakeInput) IsLookPressed() bool { return in.lookPressed }

func TestControllerMovesWithPreviousBasis(t *testing.T) {
	cam := New(Config{Yaw: 90, FOV: DefaultFOV, MoveSpeed: 10, Sensitivity: 10})
	ctl := NewController(cam)
	in := &fakeInput{fakeCursor: fakeCursor{x: 0, y: 0}, held: map[Direction]bool{}}

	// Tick 1: press edge captures the cursor.
	in.lookPressed = true
	ctl.Update(in, 1)
	if ctl.CaptureState() != Captured {
		t.Fatalf("state = %v, want captured", ctl.CaptureState())
	}

	// Tick 2: forward held while turning 90° to yaw 180.
	in.held[Forward] = true
	in.x = 9
	ctl.Update(in, 1)

	if !approxVec(cam.Position(), mgl32.Vec3{0, 0, 10}, 1e-4) {
		t.Errorf("position = %v, want move along old forward to (0,0,10)", cam.Position())
	}
	if !approxVec(cam.ForwardVector(), mgl32.Vec3{-1, 0, 0}, 1e-5) {
		t.Errorf("forward = %v, want (-1,0,0) after look", cam.ForwardVector())
	}

	// Tick 3: the new basis drives movement.
	ctl.Update(in, 1)
	if !approxVec(cam.Position(), mgl32.Vec3{-10, 0, 10}, 1e-4) {
		t.Errorf("position = %v, want (-10,0,10)", cam.Position())
	}
}

func TestControllerIgnoresCursorWhileReleased(t *testing.T) {
	cam := NewCamera()
	ctl := NewController(cam)
	in := &fakeInput{held: map[Direction]bool{}}

	in.x, in.y = 500, 500
	ctl.Update(in, 0.016)

	yaw, pitch := cam.Orientation()
	if yaw != DefaultYaw || pitch != DefaultPitch {
		t.Errorf("orientation = (%v, %v), want unchanged", yaw, pitch)
	}
	if ctl.CaptureState() != Released {
		t.Errorf("state = %v, want released", ctl.CaptureState())
	}
}

func TestControllerScroll(t *testing.T) {
	ctl := NewController(NewCamera())
	ctl.Scroll(-3)
	if got := ctl.Camera().MoveSpeed(); got != 7 {
		t.Errorf("speed = %v, want 7", got)
	}
}
