package world

// ChunkSize is the edge length of a cubic chunk. It must stay below 64 so
// that quad origin coordinates and extents fit the 6-bit fields of the
// packed quad wire format.
const (
	ChunkSize   = 32
	ChunkVolume = ChunkSize * ChunkSize * ChunkSize
)

// ChunkCoord addresses a chunk in the world grid.
type ChunkCoord struct {
	X, Y, Z int
}

// Chunk is a cubic volume of voxels addressed by local coordinates in
// [0, ChunkSize).
type Chunk struct {
	Coord  ChunkCoord
	voxels []VoxelType // lazily allocated, nil while all-air
	dirty  bool
}

// NewChunk creates an empty chunk at the given chunk coordinates.
func NewChunk(coord ChunkCoord) *Chunk {
	return &Chunk{Coord: coord, dirty: true}
}

func voxelIndex(x, y, z int) int {
	return (x*ChunkSize+y)*ChunkSize + z
}

// Get returns the voxel at local coordinates, or VoxelAir outside the chunk.
func (c *Chunk) Get(x, y, z int) VoxelType {
	if x < 0 || x >= ChunkSize || y < 0 || y >= ChunkSize || z < 0 || z >= ChunkSize {
		return VoxelAir
	}
	if c.voxels == nil {
		return VoxelAir
	}
	return c.voxels[voxelIndex(x, y, z)]
}

// Set writes the voxel at local coordinates and marks the chunk dirty when
// the value changes. Out-of-bounds writes are ignored.
func (c *Chunk) Set(x, y, z int, v VoxelType) {
	if x < 0 || x >= ChunkSize || y < 0 || y >= ChunkSize || z < 0 || z >= ChunkSize {
		return
	}
	if c.voxels == nil {
		if v == VoxelAir {
			return
		}
		c.voxels = make([]VoxelType, ChunkVolume)
	}
	idx := voxelIndex(x, y, z)
	if c.voxels[idx] != v {
		c.voxels[idx] = v
		c.dirty = true
	}
}

// IsAir reports whether the voxel at local coordinates is air.
func (c *Chunk) IsAir(x, y, z int) bool {
	return c.Get(x, y, z) == VoxelAir
}

// IsEmpty reports whether the chunk has never held a non-air voxel.
func (c *Chunk) IsEmpty() bool {
	return c.voxels == nil
}

// IsDirty returns whether the chunk changed since it was last meshed.
func (c *Chunk) IsDirty() bool {
	return c.dirty
}

// SetClean marks the chunk as meshed.
func (c *Chunk) SetClean() {
	c.dirty = false
}
