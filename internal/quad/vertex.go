package quad

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is one assembled corner of a quad in local object space.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// VertexAt reconstructs the vertex for the given index of a decoded quad.
// The frame is computed fresh from the quad; callers expanding a whole quad
// should prefer FrameVertexAt with a precomputed frame.
func VertexAt(q PackedQuad, vertex int) Vertex {
	return FrameVertexAt(Frame(q), vertex)
}

// FrameVertexAt reconstructs the vertex for the given index from an already
// built frame. Pure and allocation-free; safe to call from any goroutine.
func FrameVertexAt(fr QuadFrame, vertex int) Vertex {
	s, t := CornerUV(vertex)
	return Vertex{
		Position: fr.PointAt(s, t),
		Normal:   fr.Normal(),
		UV:       mgl32.Vec2{s, t},
	}
}

// WorldPosition applies the object-to-world transform to a local position
// and then adds the per-instance translation offset. The packed local
// coordinates and the instance offset are deliberately separate mechanisms;
// folding the offset into the transform would misplace quads at chunk
// boundaries once instances share a draw batch.
//
// This is the CPU reference for the composition the terrain vertex shader
// performs on the GPU (model * pos + chunkOffset); the two must stay in
// lockstep.
func WorldPosition(model mgl32.Mat4, offset, local mgl32.Vec3) mgl32.Vec3 {
	p := model.Mul4x1(local.Vec4(1))
	return p.Vec3().Add(offset)
}

// WorldNormal applies the object-to-world transform to a direction, ignoring
// translation, and renormalizes. CPU reference for the shader's
// normalize(mat3(model) * normal).
func WorldNormal(model mgl32.Mat4, normal mgl32.Vec3) mgl32.Vec3 {
	n := model.Mat3().Mul3x1(normal)
	if n.LenSqr() == 0 {
		return normal
	}
	return n.Normalize()
}
