package world

import (
	"math"
)

// Generator produces height-map terrain so the renderer has something to
// chew on. Deterministic for a given seed.
type Generator struct {
	seed int64
}

// NewGenerator creates a terrain generator with the given seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{seed: seed}
}

// GenerateArea fills the chunks covering [-radius, radius] chunk columns
// around the origin with terrain.
func (g *Generator) GenerateArea(w *World, radiusChunks int) {
	half := radiusChunks * ChunkSize
	for x := -half; x < half; x++ {
		for z := -half; z < half; z++ {
			g.generateColumn(w, x, z)
		}
	}
}

func (g *Generator) generateColumn(w *World, x, z int) {
	h := g.heightAt(x, z)
	for y := 0; y <= h; y++ {
		switch {
		case y == h && y > seaLevel+1:
			w.Set(x, y, z, VoxelGrass)
		case y == h:
			w.Set(x, y, z, VoxelSand)
		case y >= h-3:
			w.Set(x, y, z, VoxelDirt)
		default:
			w.Set(x, y, z, VoxelStone)
		}
	}
	for y := h + 1; y <= seaLevel; y++ {
		w.Set(x, y, z, VoxelWater)
	}
}

const (
	seaLevel   = 8
	baseHeight = 10
)

// heightAt samples two octaves of value noise and maps the result into
// [0, ChunkSize).
func (g *Generator) heightAt(x, z int) int {
	n := g.valueNoise(float64(x)/24, float64(z)/24)*0.7 +
		g.valueNoise(float64(x)/7, float64(z)/7)*0.3
	h := baseHeight + int(n*12)
	if h < 1 {
		h = 1
	}
	if h >= ChunkSize {
		h = ChunkSize - 1
	}
	return h
}

// valueNoise is bilinear-interpolated lattice noise in [-1, 1].
func (g *Generator) valueNoise(x, z float64) float64 {
	x0 := math.Floor(x)
	z0 := math.Floor(z)
	fx := x - x0
	fz := z - z0

	// Smoothstep fade
	fx = fx * fx * (3 - 2*fx)
	fz = fz * fz * (3 - 2*fz)

	v00 := g.lattice(int64(x0), int64(z0))
	v10 := g.lattice(int64(x0)+1, int64(z0))
	v01 := g.lattice(int64(x0), int64(z0)+1)
	v11 := g.lattice(int64(x0)+1, int64(z0)+1)

	a := v00 + (v10-v00)*fx
	b := v01 + (v11-v01)*fx
	return a + (b-a)*fz
}

// lattice hashes integer lattice coordinates to [-1, 1].
func (g *Generator) lattice(x, z int64) float64 {
	h := uint64(x)*0x9E3779B97F4A7C15 ^ uint64(z)*0xC2B2AE3D27D4EB4F ^ uint64(g.seed)
	h ^= h >> 33
	h *= 0xFF51AFD7ED558CCD
	h ^= h >> 33
	return float64(h&0xFFFFFF)/float64(0x7FFFFF) - 1
}
