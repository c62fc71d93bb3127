package world

import (
	"sync"
)

// World holds the loaded chunks, keyed by chunk coordinates. Access is
// guarded by a RWMutex so mesh workers can read while the main thread edits.
type World struct {
	mu     sync.RWMutex
	chunks map[ChunkCoord]*Chunk
}

// New creates an empty world.
func New() *World {
	return &World{chunks: make(map[ChunkCoord]*Chunk)}
}

// chunkCoordAt converts world voxel coordinates to chunk coordinates using
// floor division, so negative coordinates land in the right chunk.
func chunkCoordAt(x, y, z int) (ChunkCoord, int, int, int) {
	cx, lx := floorDiv(x, ChunkSize)
	cy, ly := floorDiv(y, ChunkSize)
	cz, lz := floorDiv(z, ChunkSize)
	return ChunkCoord{cx, cy, cz}, lx, ly, lz
}

func floorDiv(v, size int) (int, int) {
	d := v / size
	m := v % size
	if m < 0 {
		d--
		m += size
	}
	return d, m
}

// GetChunk returns the chunk at the given chunk coordinates, creating it
// when create is true. Returns nil for missing chunks otherwise.
func (w *World) GetChunk(coord ChunkCoord, create bool) *Chunk {
	w.mu.RLock()
	c := w.chunks[coord]
	w.mu.RUnlock()
	if c != nil || !create {
		return c
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if c = w.chunks[coord]; c == nil {
		c = NewChunk(coord)
		w.chunks[coord] = c
	}
	return c
}

// Get returns the voxel at world coordinates, VoxelAir where no chunk is
// loaded.
func (w *World) Get(x, y, z int) VoxelType {
	coord, lx, ly, lz := chunkCoordAt(x, y, z)
	c := w.GetChunk(coord, false)
	if c == nil {
		return VoxelAir
	}
	return c.Get(lx, ly, lz)
}

// Set writes the voxel at world coordinates, creating the chunk if needed.
func (w *World) Set(x, y, z int, v VoxelType) {
	coord, lx, ly, lz := chunkCoordAt(x, y, z)
	w.GetChunk(coord, true).Set(lx, ly, lz, v)
}

// IsAir reports whether the voxel at world coordinates is air.
func (w *World) IsAir(x, y, z int) bool {
	return w.Get(x, y, z) == VoxelAir
}

// Chunks returns a snapshot of all loaded chunks.
func (w *World) Chunks() []*Chunk {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]*Chunk, 0, len(w.chunks))
	for _, c := range w.chunks {
		out = append(out, c)
	}
	return out
}

// DirtyChunks returns the loaded chunks that changed since their last mesh.
func (w *World) DirtyChunks() []*Chunk {
	w.mu.RLock()
	defer w.mu.RUnlock()
	var out []*Chunk
	for _, c := range w.chunks {
		if c.IsDirty() {
			out = append(out, c)
		}
	}
	return out
}
