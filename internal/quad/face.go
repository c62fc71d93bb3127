package quad

import (
	"github.com/go-gl/mathgl/mgl32"
)

// FaceDirection identifies one of the six outward cube face orientations.
type FaceDirection uint8

const (
	FaceUp    FaceDirection = iota // +Y
	FaceDown                       // -Y
	FaceRight                      // +X
	FaceLeft                       // -X
	FaceFront                      // +Z
	FaceBack                       // -Z
)

// faceFromBits maps the raw 3-bit face field to a FaceDirection. The values
// 6 and 7 are bit-pattern-reachable but have no defined meaning; they fall
// back to Back rather than being rejected.
func faceFromBits(bits uint32) FaceDirection {
	if bits > uint32(FaceBack) {
		return FaceBack
	}
	return FaceDirection(bits)
}

// Axis returns the canonical outward unit normal of the face.
func (f FaceDirection) Axis() mgl32.Vec3 {
	switch f {
	case FaceUp:
		return mgl32.Vec3{0, 1, 0}
	case FaceDown:
		return mgl32.Vec3{0, -1, 0}
	case FaceRight:
		return mgl32.Vec3{1, 0, 0}
	case FaceLeft:
		return mgl32.Vec3{-1, 0, 0}
	case FaceFront:
		return mgl32.Vec3{0, 0, 1}
	default:
		return mgl32.Vec3{0, 0, -1}
	}
}

func (f FaceDirection) String() string {
	switch f {
	case FaceUp:
		return "up"
	case FaceDown:
		return "down"
	case FaceRight:
		return "right"
	case FaceLeft:
		return "left"
	case FaceFront:
		return "front"
	default:
		return "back"
	}
}

// DebugColor returns a fixed per-face color, useful for eyeballing face
// orientation bugs.
func DebugColor(f FaceDirection) mgl32.Vec3 {
	switch f {
	case FaceUp:
		return mgl32.Vec3{1.0, 0.0, 0.0} // Red
	case FaceDown:
		return mgl32.Vec3{0.0, 1.0, 0.0} // Green
	case FaceRight:
		return mgl32.Vec3{0.0, 0.0, 1.0} // Blue
	case FaceLeft:
		return mgl32.Vec3{1.0, 1.0, 0.0} // Yellow
	case FaceFront:
		return mgl32.Vec3{1.0, 0.0, 1.0} // Magenta
	default:
		return mgl32.Vec3{0.0, 1.0, 1.0} // Cyan
	}
}
