package camera

import "github.com/go-gl/mathgl/mgl32"

// Camera constants
const (
	// Movement speeds
	DefaultMoveSpeed   = 10.0
	DefaultSensitivity = 10.0
	MinMoveSpeed       = 0.1
	MaxMoveSpeed       = 10.0

	// Default orientation
	DefaultYaw   = 90.0 // Facing +Z direction
	DefaultPitch = 0.0

	// Field of view
	DefaultFOV = 90.0

	// Constraints
	MaxPitch = 89.0
	MinPitch = -89.0
)

// DefaultPosition is where the camera starts when nothing else is configured.
var DefaultPosition = mgl32.Vec3{0, 2, -10}

// worldUp is the Y-up reference used to derive the right vector.
var worldUp = mgl32.Vec3{0, 1, 0}

// Direction names one of the six free-fly movement directions.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

// Directions lists every movement direction in the order input is applied.
var Directions = [...]Direction{Forward, Backward, Left, Right, Up, Down}

func (d Direction) String() string {
	switch d {
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
