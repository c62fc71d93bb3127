package world

import "testing"

func TestChunkSetGet(t *testing.T) {
	c := NewChunk(ChunkCoord{0, 0, 0})
	if !c.IsEmpty() {
		t.Fatalf("new chunk should be empty")
	}
	c.Set(1, 2, 3, VoxelStone)
	if got := c.Get(1, 2, 3); got != VoxelStone {
		t.Fatalf("got %v, want %v", got, VoxelStone)
	}
	if c.IsAir(1, 2, 3) {
		t.Fatalf("voxel should not be air after set")
	}
	if c.IsEmpty() {
		t.Fatalf("chunk should not be empty after set")
	}
}

func TestChunkOutOfBounds(t *testing.T) {
	c := NewChunk(ChunkCoord{0, 0, 0})
	c.Set(-1, 0, 0, VoxelStone)
	c.Set(0, ChunkSize, 0, VoxelStone)
	if !c.IsEmpty() {
		t.Fatalf("out-of-bounds writes must be ignored")
	}
	if got := c.Get(ChunkSize, 0, 0); got != VoxelAir {
		t.Fatalf("out-of-bounds read: got %v, want air", got)
	}
}

func TestChunkDirtyTracking(t *testing.T) {
	c := NewChunk(ChunkCoord{0, 0, 0})
	if !c.IsDirty() {
		t.Fatalf("new chunk starts dirty")
	}
	c.SetClean()
	c.Set(0, 0, 0, VoxelGrass)
	if !c.IsDirty() {
		t.Fatalf("set must mark chunk dirty")
	}
	c.SetClean()
	c.Set(0, 0, 0, VoxelGrass) // no change
	if c.IsDirty() {
		t.Fatalf("writing the same value must not dirty the chunk")
	}
}

func TestWorldCrossChunkCoordinates(t *testing.T) {
	w := New()
	w.Set(-1, 0, ChunkSize, VoxelDirt)
	if got := w.Get(-1, 0, ChunkSize); got != VoxelDirt {
		t.Fatalf("got %v, want %v", got, VoxelDirt)
	}
	c := w.GetChunk(ChunkCoord{-1, 0, 1}, false)
	if c == nil {
		t.Fatalf("expected chunk (-1,0,1) to exist")
	}
	if got := c.Get(ChunkSize-1, 0, 0); got != VoxelDirt {
		t.Fatalf("local voxel: got %v, want %v", got, VoxelDirt)
	}
}

func TestGeneratorDeterministic(t *testing.T) {
	a := NewGenerator(42)
	b := NewGenerator(42)
	for x := -10; x < 10; x++ {
		for z := -10; z < 10; z++ {
			ha := a.heightAt(x, z)
			hb := b.heightAt(x, z)
			if ha != hb {
				t.Fatalf("height at (%d,%d): %d != %d", x, z, ha, hb)
			}
			if ha < 1 || ha >= ChunkSize {
				t.Fatalf("height at (%d,%d) out of range: %d", x, z, ha)
			}
		}
	}
}

func TestGenerateAreaFillsColumns(t *testing.T) {
	w := New()
	NewGenerator(1).GenerateArea(w, 1)
	// Every column in range must have a solid voxel at y=0.
	for x := -ChunkSize; x < ChunkSize; x++ {
		for z := -ChunkSize; z < ChunkSize; z++ {
			if w.IsAir(x, 0, z) {
				t.Fatalf("column (%d,%d) has air at bedrock level", x, z)
			}
		}
	}
}
