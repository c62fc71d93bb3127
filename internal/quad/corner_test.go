package quad

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCornerClosure(t *testing.T) {
	q := PackedQuad{X: 10, Y: 20, Z: 30, W: 3, H: 7, Face: FaceFront}
	fr := Frame(q)

	distinct := make(map[mgl32.Vec3]int)
	for v := 0; v < VerticesPerQuad; v++ {
		distinct[FrameVertexAt(fr, v).Position]++
	}
	if len(distinct) != 4 {
		t.Fatalf("six corners produced %d distinct points, want 4", len(distinct))
	}

	// The (0,0) and (1,1) corners form the shared diagonal and appear twice.
	p00 := fr.PointAt(0, 0)
	p11 := fr.PointAt(1, 1)
	if distinct[p00] != 2 {
		t.Fatalf("corner (0,0) appears %d times, want 2", distinct[p00])
	}
	if distinct[p11] != 2 {
		t.Fatalf("corner (1,1) appears %d times, want 2", distinct[p11])
	}
}

func TestCornerOrder(t *testing.T) {
	want := [VerticesPerQuad][2]float32{
		{0, 0}, {0, 1}, {1, 1},
		{0, 0}, {1, 1}, {1, 0},
	}
	for v := 0; v < VerticesPerQuad; v++ {
		s, tt := CornerUV(v)
		if s != want[v][0] || tt != want[v][1] {
			t.Fatalf("vertex %d: got (%v,%v), want (%v,%v)", v, s, tt, want[v][0], want[v][1])
		}
	}
}

func TestCornerIndexWraps(t *testing.T) {
	for v := 0; v < VerticesPerQuad; v++ {
		s0, t0 := CornerUV(v)
		s1, t1 := CornerUV(v + 6*7)
		if s0 != s1 || t0 != t1 {
			t.Fatalf("vertex %d vs %d: (%v,%v) != (%v,%v)", v, v+42, s0, t0, s1, t1)
		}
	}
}

func TestCornerWindingIsCCW(t *testing.T) {
	// Both triangles must wind counter-clockwise when viewed from the
	// outward normal side, for every face direction.
	for f := FaceUp; f <= FaceBack; f++ {
		q := PackedQuad{W: 2, H: 3, Face: f}
		fr := Frame(q)
		n := fr.Normal()
		for _, tri := range [][3]int{{0, 1, 2}, {3, 4, 5}} {
			a := FrameVertexAt(fr, tri[0]).Position
			b := FrameVertexAt(fr, tri[1]).Position
			c := FrameVertexAt(fr, tri[2]).Position
			cross := b.Sub(a).Cross(c.Sub(a))
			if cross.Dot(n) <= 0 {
				t.Fatalf("face %v triangle %v: winding not CCW (dot=%v)", f, tri, cross.Dot(n))
			}
		}
	}
}
