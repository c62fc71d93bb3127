package quad

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestVertexAtConcrete(t *testing.T) {
	lo := uint32(5 | 3<<6 | 2<<12 | 4<<18 | 2<<24)
	hi := uint32(100)
	q := Decode(lo, hi)

	fr := Frame(q)
	if fr.P0 != (mgl32.Vec3{5, 3, 2}) || fr.U != (mgl32.Vec3{4, 0, 0}) || fr.V != (mgl32.Vec3{0, 0, 2}) {
		t.Fatalf("frame: got p0=%v u=%v v=%v, want p0=(5,3,2) u=(4,0,0) v=(0,0,2)", fr.P0, fr.U, fr.V)
	}

	// Vertex 2 is corner (1,1).
	v := VertexAt(q, 2)
	if v.Position != (mgl32.Vec3{9, 3, 4}) {
		t.Fatalf("position: got %v, want (9,3,4)", v.Position)
	}
	if v.UV != (mgl32.Vec2{1, 1}) {
		t.Fatalf("uv: got %v, want (1,1)", v.UV)
	}
	if !v.Normal.ApproxEqual(mgl32.Vec3{0, 1, 0}) {
		t.Fatalf("normal: got %v, want (0,1,0)", v.Normal)
	}
}

func TestWorldPositionAddsInstanceOffset(t *testing.T) {
	local := mgl32.Vec3{1, 2, 3}
	offset := mgl32.Vec3{32, 0, -64}

	got := WorldPosition(mgl32.Ident4(), offset, local)
	want := mgl32.Vec3{33, 2, -61}
	if !got.ApproxEqual(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	// The offset must not be rotated by the model transform.
	rot := mgl32.HomogRotate3DY(mgl32.DegToRad(90))
	got = WorldPosition(rot, offset, mgl32.Vec3{1, 0, 0})
	want = mgl32.Vec3{32, 0, -65}
	if !got.ApproxEqualThreshold(want, 1e-5) {
		t.Fatalf("rotated: got %v, want %v", got, want)
	}
}

func TestWorldNormalIgnoresTranslation(t *testing.T) {
	model := mgl32.Translate3D(100, 200, 300)
	got := WorldNormal(model, mgl32.Vec3{0, 1, 0})
	if !got.ApproxEqual(mgl32.Vec3{0, 1, 0}) {
		t.Fatalf("got %v, want (0,1,0)", got)
	}

	rot := mgl32.HomogRotate3DZ(mgl32.DegToRad(90))
	got = WorldNormal(rot, mgl32.Vec3{1, 0, 0})
	if !got.ApproxEqualThreshold(mgl32.Vec3{0, 1, 0}, 1e-5) {
		t.Fatalf("rotated: got %v, want (0,1,0)", got)
	}
}

func BenchmarkVertexAt(b *testing.B) {
	lo := uint32(5 | 3<<6 | 2<<12 | 4<<18 | 2<<24)
	hi := uint32(100 | 4<<faceShift)
	q := Decode(lo, hi)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = VertexAt(q, i%VerticesPerQuad)
	}
}
