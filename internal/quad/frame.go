package quad

import (
	"github.com/go-gl/mathgl/mgl32"
)

// QuadFrame is the local coordinate frame of a decoded quad: an origin
// corner P0 plus two edge vectors U and V spanning the quad, so that the
// quad occupies P0 + s*U + t*V for s,t in [0,1]. The sign of U and V is
// chosen per face so that cross(V, U) points outward.
type QuadFrame struct {
	P0, U, V mgl32.Vec3
	face     FaceDirection
}

// Frame builds the local frame for a decoded quad. Each cube face needs its
// own expansion-plane and winding choice; the six cases below are the single
// source of truth for orientation, the normal is derived from them rather
// than tabulated separately.
func Frame(q PackedQuad) QuadFrame {
	p0 := mgl32.Vec3{float32(q.X), float32(q.Y), float32(q.Z)}
	w := float32(q.W)
	h := float32(q.H)

	var u, v mgl32.Vec3
	switch q.Face {
	case FaceUp:
		u = mgl32.Vec3{w, 0, 0}
		v = mgl32.Vec3{0, 0, h}
	case FaceDown:
		u = mgl32.Vec3{-w, 0, 0}
		v = mgl32.Vec3{0, 0, h}
	case FaceRight:
		u = mgl32.Vec3{0, -w, 0}
		v = mgl32.Vec3{0, 0, h}
	case FaceLeft:
		u = mgl32.Vec3{0, w, 0}
		v = mgl32.Vec3{0, 0, h}
	case FaceFront:
		u = mgl32.Vec3{-w, 0, 0}
		v = mgl32.Vec3{0, h, 0}
	default:
		u = mgl32.Vec3{w, 0, 0}
		v = mgl32.Vec3{0, h, 0}
	}

	return QuadFrame{P0: p0, U: u, V: v, face: q.Face}
}

// Normal returns the outward unit normal, normalize(cross(V, U)). A quad
// with W or H of zero has a zero-length cross product; normalizing that
// would produce NaN, so the face's canonical axis is returned instead.
func (fr QuadFrame) Normal() mgl32.Vec3 {
	n := fr.V.Cross(fr.U)
	if n.LenSqr() == 0 {
		return fr.face.Axis()
	}
	return n.Normalize()
}

// PointAt returns the position on the quad's parallelogram at the given
// (s, t) corner parameters.
func (fr QuadFrame) PointAt(s, t float32) mgl32.Vec3 {
	return fr.P0.Add(fr.U.Mul(s)).Add(fr.V.Mul(t))
}
