package meshing

import (
	"testing"

	"voxmesh/internal/quad"
	"voxmesh/internal/world"
)

func TestSingleVoxelSixQuads(t *testing.T) {
	w := world.New()
	w.Set(0, 0, 0, world.VoxelGrass)
	c := w.GetChunk(world.ChunkCoord{}, false)

	quads := BuildChunkQuads(w, c)
	if len(quads) != 6 {
		t.Fatalf("single voxel: got %d quads, want 6", len(quads))
	}

	faces := make(map[quad.FaceDirection]bool)
	for _, q := range quads {
		if q.W != 1 || q.H != 1 {
			t.Fatalf("face %v: got extent %dx%d, want 1x1", q.Face, q.W, q.H)
		}
		if q.Voxel != uint16(world.VoxelGrass) {
			t.Fatalf("face %v: voxel %d, want %d", q.Face, q.Voxel, world.VoxelGrass)
		}
		faces[q.Face] = true
	}
	if len(faces) != 6 {
		t.Fatalf("got %d distinct faces, want 6", len(faces))
	}
}

func TestTouchingVoxelsMerge(t *testing.T) {
	w := world.New()
	w.Set(0, 0, 0, world.VoxelGrass)
	w.Set(1, 0, 0, world.VoxelGrass)
	c := w.GetChunk(world.ChunkCoord{}, false)

	// A 2x1x1 cuboid still has 6 faces after greedy merging.
	quads := BuildChunkQuads(w, c)
	if len(quads) != 6 {
		t.Fatalf("2x1x1 cuboid: got %d quads, want 6", len(quads))
	}
	for _, q := range quads {
		switch q.Face {
		case quad.FaceUp, quad.FaceDown, quad.FaceFront, quad.FaceBack:
			if q.W != 2 || q.H != 1 {
				t.Fatalf("face %v: got %dx%d, want 2x1", q.Face, q.W, q.H)
			}
		default: // Right/Left end caps stay 1x1
			if q.W != 1 || q.H != 1 {
				t.Fatalf("face %v: got %dx%d, want 1x1", q.Face, q.W, q.H)
			}
		}
	}
}

func TestDifferentVoxelsDoNotMerge(t *testing.T) {
	w := world.New()
	w.Set(0, 0, 0, world.VoxelGrass)
	w.Set(1, 0, 0, world.VoxelStone)
	c := w.GetChunk(world.ChunkCoord{}, false)

	quads := BuildChunkQuads(w, c)
	for _, q := range quads {
		if q.W != 1 || q.H != 1 {
			t.Fatalf("face %v voxel %d: got %dx%d, want no merging across voxel types",
				q.Face, q.Voxel, q.W, q.H)
		}
	}
	// 10 visible faces: 12 minus the 2 hidden touching faces.
	if len(quads) != 10 {
		t.Fatalf("got %d quads, want 10", len(quads))
	}
}

func TestCrossChunkFaceCulling(t *testing.T) {
	w := world.New()
	w.Set(world.ChunkSize-1, 0, 0, world.VoxelGrass)
	w.Set(world.ChunkSize, 0, 0, world.VoxelGrass)
	c := w.GetChunk(world.ChunkCoord{}, false)

	quads := BuildChunkQuads(w, c)
	// The +X face is hidden by the neighbor chunk's voxel.
	if len(quads) != 5 {
		t.Fatalf("got %d quads, want 5", len(quads))
	}
	for _, q := range quads {
		if q.Face == quad.FaceRight {
			t.Fatalf("+X face should be culled by neighbor chunk")
		}
	}
}

// Decoding every emitted record must reproduce a face whose corners lie on
// the surface of the meshed volume, for all six orientations.
func TestEmittedQuadsDecodeToSurface(t *testing.T) {
	w := world.New()
	// 3x2x1 slab at origin
	for x := 0; x < 3; x++ {
		for y := 0; y < 2; y++ {
			w.Set(x, y, 0, world.VoxelDirt)
		}
	}
	c := w.GetChunk(world.ChunkCoord{}, false)

	for _, stream := range [][]uint32{EncodeInstances(BuildChunkQuads(w, c))} {
		if len(stream)%2 != 0 {
			t.Fatalf("instance stream must be word pairs, got %d words", len(stream))
		}
		var area float32
		for i := 0; i < len(stream); i += 2 {
			q := quad.Decode(stream[i], stream[i+1])
			fr := quad.Frame(q)
			for v := 0; v < quad.VerticesPerQuad; v++ {
				p := quad.FrameVertexAt(fr, v).Position
				if p.X() < 0 || p.X() > 3 || p.Y() < 0 || p.Y() > 2 || p.Z() < 0 || p.Z() > 1 {
					t.Fatalf("face %v corner %v outside slab bounds", q.Face, p)
				}
			}
			area += float32(q.W) * float32(q.H)
		}
		// Surface area of a 3x2x1 cuboid: 2*(3*2 + 3*1 + 2*1) = 22.
		if area != 22 {
			t.Fatalf("total quad area %v, want 22", area)
		}
	}
}

func TestEmittedFieldsFitWireFormat(t *testing.T) {
	w := world.New()
	world.NewGenerator(7).GenerateArea(w, 1)

	for _, c := range w.Chunks() {
		for _, q := range BuildChunkQuads(w, c) {
			if q.X > 63 || q.Y > 63 || q.Z > 63 || q.W > 63 || q.H > 63 {
				t.Fatalf("quad %+v exceeds 6-bit fields", q)
			}
			lo, hi := q.Encode()
			if got := quad.Decode(lo, hi); got != q {
				t.Fatalf("wire round trip: got %+v, want %+v", got, q)
			}
		}
	}
}

func BenchmarkBuildChunkQuads(b *testing.B) {
	w := world.New()
	world.NewGenerator(3).GenerateArea(w, 1)
	c := w.GetChunk(world.ChunkCoord{}, false)
	if c == nil {
		b.Fatal("no chunk generated at origin")
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = BuildChunkQuads(w, c)
	}
}
