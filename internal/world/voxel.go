package world

// VoxelType identifies a voxel material. The renderer and mesher carry it
// through opaquely; only visibility (air or not) is interpreted here.
type VoxelType uint16

const (
	VoxelAir VoxelType = iota
	VoxelGrass
	VoxelDirt
	VoxelStone
	VoxelSand
	VoxelWater
)

func (v VoxelType) String() string {
	switch v {
	case VoxelAir:
		return "air"
	case VoxelGrass:
		return "grass"
	case VoxelDirt:
		return "dirt"
	case VoxelStone:
		return "stone"
	case VoxelSand:
		return "sand"
	case VoxelWater:
		return "water"
	default:
		return "unknown"
	}
}
