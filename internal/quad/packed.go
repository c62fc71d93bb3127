package quad

// Wire layout of a packed quad record, two uint32 words per quad:
//
//	lo: x(0-5) y(6-11) z(12-17) w(18-23) h(24-29), bits 30-31 unused
//	hi: voxel(0-15), face(29-31)
//
// This layout is the contract with the greedy meshing stage and must stay
// bit-compatible with it.
const (
	coordMask = 0x3F

	xShift = 0
	yShift = 6
	zShift = 12
	wShift = 18
	hShift = 24

	voxelMask = 0xFFFF
	faceShift = 29
	faceMask  = 0x7
)

// PackedQuad is one greedy-meshed quad in decoded form. X, Y, Z are the grid
// coordinates of the quad's origin corner inside its chunk; W and H are the
// extents along the face's first and second expansion axes. Voxel is an
// opaque material identifier that is carried through but never interpreted
// here.
type PackedQuad struct {
	X, Y, Z uint8
	W, H    uint8
	Voxel   uint16
	Face    FaceDirection
}

// Decode unpacks a two-word quad record. It is total: out-of-range bit
// patterns are masked, never rejected, so corrupt input produces a wrong but
// well-defined quad instead of an error. Validation is the producer's job;
// this runs once per vertex on the hot path.
func Decode(lo, hi uint32) PackedQuad {
	return PackedQuad{
		X:     uint8(lo >> xShift & coordMask),
		Y:     uint8(lo >> yShift & coordMask),
		Z:     uint8(lo >> zShift & coordMask),
		W:     uint8(lo >> wShift & coordMask),
		H:     uint8(lo >> hShift & coordMask),
		Voxel: uint16(hi & voxelMask),
		Face:  faceFromBits(hi >> faceShift & faceMask),
	}
}

// Encode packs the quad into its two-word wire record. Field values wider
// than their bit allocation are truncated by masking, mirroring Decode.
func (q PackedQuad) Encode() (lo, hi uint32) {
	lo = uint32(q.X)&coordMask<<xShift |
		uint32(q.Y)&coordMask<<yShift |
		uint32(q.Z)&coordMask<<zShift |
		uint32(q.W)&coordMask<<wShift |
		uint32(q.H)&coordMask<<hShift
	hi = uint32(q.Voxel)&voxelMask | uint32(q.Face)&faceMask<<faceShift
	return lo, hi
}
