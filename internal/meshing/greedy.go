package meshing

import (
	"voxmesh/internal/quad"
	"voxmesh/internal/world"
)

// BuildChunkQuads greedy-meshes one chunk into packed quad records: visible
// faces of equal voxel type are merged into maximal axis-aligned rectangles,
// one PackedQuad each. Neighbor visibility uses world coordinates so faces
// against a loaded neighboring chunk are culled.
//
// The emitted origin corner and extents follow the decoder's frame table:
// faces with a negative u axis (Down, Right, Front) store their origin at
// the far end of the merged run, so that decoding reproduces the face
// geometry exactly.
func BuildChunkQuads(w *world.World, c *world.Chunk) []quad.PackedQuad {
	if c == nil || c.IsEmpty() {
		return nil
	}

	quads := make([]quad.PackedQuad, 0, 64)

	baseX := c.Coord.X * world.ChunkSize
	baseY := c.Coord.Y * world.ChunkSize
	baseZ := c.Coord.Z * world.ChunkSize

	// Up / Down: layers along Y, w merges along X, h along Z.
	for y := 0; y < world.ChunkSize; y++ {
		buildLayer(layerSpec{
			visible: func(a, b int) world.VoxelType {
				v := c.Get(a, y, b)
				if v == world.VoxelAir || !w.IsAir(baseX+a, baseY+y+1, baseZ+b) {
					return world.VoxelAir
				}
				return v
			},
			emit: func(a0, b0, extA, extB int, v world.VoxelType) {
				quads = append(quads, quad.PackedQuad{
					X: uint8(a0), Y: uint8(y + 1), Z: uint8(b0),
					W: uint8(extA), H: uint8(extB),
					Voxel: uint16(v), Face: quad.FaceUp,
				})
			},
		})
		buildLayer(layerSpec{
			visible: func(a, b int) world.VoxelType {
				v := c.Get(a, y, b)
				if v == world.VoxelAir || !w.IsAir(baseX+a, baseY+y-1, baseZ+b) {
					return world.VoxelAir
				}
				return v
			},
			emit: func(a0, b0, extA, extB int, v world.VoxelType) {
				quads = append(quads, quad.PackedQuad{
					X: uint8(a0 + extA), Y: uint8(y), Z: uint8(b0),
					W: uint8(extA), H: uint8(extB),
					Voxel: uint16(v), Face: quad.FaceDown,
				})
			},
		})
	}

	// Right / Left: layers along X, w merges along Y, h along Z.
	for x := 0; x < world.ChunkSize; x++ {
		buildLayer(layerSpec{
			visible: func(a, b int) world.VoxelType {
				v := c.Get(x, a, b)
				if v == world.VoxelAir || !w.IsAir(baseX+x+1, baseY+a, baseZ+b) {
					return world.VoxelAir
				}
				return v
			},
			emit: func(a0, b0, extA, extB int, v world.VoxelType) {
				quads = append(quads, quad.PackedQuad{
					X: uint8(x + 1), Y: uint8(a0 + extA), Z: uint8(b0),
					W: uint8(extA), H: uint8(extB),
					Voxel: uint16(v), Face: quad.FaceRight,
				})
			},
		})
		buildLayer(layerSpec{
			visible: func(a, b int) world.VoxelType {
				v := c.Get(x, a, b)
				if v == world.VoxelAir || !w.IsAir(baseX+x-1, baseY+a, baseZ+b) {
					return world.VoxelAir
				}
				return v
			},
			emit: func(a0, b0, extA, extB int, v world.VoxelType) {
				quads = append(quads, quad.PackedQuad{
					X: uint8(x), Y: uint8(a0), Z: uint8(b0),
					W: uint8(extA), H: uint8(extB),
					Voxel: uint16(v), Face: quad.FaceLeft,
				})
			},
		})
	}

	// Front / Back: layers along Z, w merges along X, h along Y.
	for z := 0; z < world.ChunkSize; z++ {
		buildLayer(layerSpec{
			visible: func(a, b int) world.VoxelType {
				v := c.Get(a, b, z)
				if v == world.VoxelAir || !w.IsAir(baseX+a, baseY+b, baseZ+z+1) {
					return world.VoxelAir
				}
				return v
			},
			emit: func(a0, b0, extA, extB int, v world.VoxelType) {
				quads = append(quads, quad.PackedQuad{
					X: uint8(a0 + extA), Y: uint8(b0), Z: uint8(z + 1),
					W: uint8(extA), H: uint8(extB),
					Voxel: uint16(v), Face: quad.FaceFront,
				})
			},
		})
		buildLayer(layerSpec{
			visible: func(a, b int) world.VoxelType {
				v := c.Get(a, b, z)
				if v == world.VoxelAir || !w.IsAir(baseX+a, baseY+b, baseZ+z-1) {
					return world.VoxelAir
				}
				return v
			},
			emit: func(a0, b0, extA, extB int, v world.VoxelType) {
				quads = append(quads, quad.PackedQuad{
					X: uint8(a0), Y: uint8(b0), Z: uint8(z),
					W: uint8(extA), H: uint8(extB),
					Voxel: uint16(v), Face: quad.FaceBack,
				})
			},
		})
	}

	return quads
}

// layerSpec describes one face direction within one layer: visible samples
// the mask (VoxelAir means no face), emit receives merged rectangles with
// extents along the layer's two in-plane axes.
type layerSpec struct {
	visible func(a, b int) world.VoxelType
	emit    func(a0, b0, extA, extB int, v world.VoxelType)
}

// buildLayer builds the visibility mask for one layer and greedy-merges it.
// Only cells of equal voxel type merge, since the voxel id rides along in
// the packed record.
func buildLayer(spec layerSpec) {
	const n = world.ChunkSize
	var mask [n * n]world.VoxelType

	any := false
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			if v := spec.visible(a, b); v != world.VoxelAir {
				mask[a*n+b] = v
				any = true
			}
		}
	}
	if !any {
		return
	}

	for i := 0; i < n*n; {
		v := mask[i]
		if v == world.VoxelAir {
			i++
			continue
		}
		a0 := i / n
		b0 := i % n

		// Extend along b first, then grow the run along a.
		extB := 1
		for b1 := b0 + 1; b1 < n && mask[a0*n+b1] == v; b1++ {
			extB++
		}
		extA := 1
	outer:
		for a1 := a0 + 1; a1 < n; a1++ {
			for b1 := b0; b1 < b0+extB; b1++ {
				if mask[a1*n+b1] != v {
					break outer
				}
			}
			extA++
		}

		spec.emit(a0, b0, extA, extB, v)

		for aa := a0; aa < a0+extA; aa++ {
			for bb := b0; bb < b0+extB; bb++ {
				mask[aa*n+bb] = world.VoxelAir
			}
		}
	}
}

// EncodeInstances packs quads into the two-word wire stream consumed by the
// renderer, lo word first.
func EncodeInstances(quads []quad.PackedQuad) []uint32 {
	out := make([]uint32, 0, len(quads)*2)
	for _, q := range quads {
		lo, hi := q.Encode()
		out = append(out, lo, hi)
	}
	return out
}
