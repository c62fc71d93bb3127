package terrain

import (
	"voxmesh/internal/quad"
	"voxmesh/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// VertexStride is the number of float32 per vertex
// (pos.xyz + normal.xyz + uv + color.rgb).
const VertexStride = 11

// BuildVertices expands a packed instance stream (two uint32 words per quad)
// into an interleaved triangle-list vertex buffer: six vertices per quad in
// the codec's fixed corner order. Pure CPU work, safe off the render thread.
func BuildVertices(instances []uint32, debugFaceColors bool) []float32 {
	quadCount := len(instances) / 2
	out := make([]float32, 0, quadCount*quad.VerticesPerQuad*VertexStride)

	for i := 0; i+1 < len(instances); i += 2 {
		q := quad.Decode(instances[i], instances[i+1])
		fr := quad.Frame(q)

		var color mgl32.Vec3
		if debugFaceColors {
			color = quad.DebugColor(q.Face)
		} else {
			color = voxelColor(q.Voxel)
		}

		for v := 0; v < quad.VerticesPerQuad; v++ {
			vert := quad.FrameVertexAt(fr, v)
			out = append(out,
				vert.Position.X(), vert.Position.Y(), vert.Position.Z(),
				vert.Normal.X(), vert.Normal.Y(), vert.Normal.Z(),
				vert.UV.X(), vert.UV.Y(),
				color.X(), color.Y(), color.Z(),
			)
		}
	}
	return out
}

// voxelColor maps a voxel id to its flat render color. The codec treats the
// id as opaque; the palette is a renderer concern.
func voxelColor(v uint16) mgl32.Vec3 {
	switch world.VoxelType(v) {
	case world.VoxelGrass:
		return mgl32.Vec3{0.33, 0.63, 0.22}
	case world.VoxelDirt:
		return mgl32.Vec3{0.45, 0.32, 0.22}
	case world.VoxelStone:
		return mgl32.Vec3{0.52, 0.52, 0.54}
	case world.VoxelSand:
		return mgl32.Vec3{0.86, 0.80, 0.56}
	case world.VoxelWater:
		return mgl32.Vec3{0.20, 0.40, 0.75}
	default:
		return mgl32.Vec3{0.9, 0.2, 0.9}
	}
}
