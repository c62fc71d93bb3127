package quad

// VerticesPerQuad is the fixed vertex count of one quad instance: two
// triangles sharing the (0,0)-(1,1) diagonal. Draw calls must emit vertex
// counts in multiples of this.
const VerticesPerQuad = 6

// cornerUV lists the six corner instances in draw order. Triangle A is
// (0,0) (0,1) (1,1), triangle B is (0,0) (1,1) (1,0).
var cornerUV = [VerticesPerQuad][2]float32{
	{0, 0},
	{0, 1},
	{1, 1},
	{0, 0},
	{1, 1},
	{1, 0},
}

// CornerUV returns the (s, t) corner parameters for a vertex index. The
// index is taken modulo 6, so any global vertex index can be passed in
// directly.
func CornerUV(vertex int) (s, t float32) {
	i := vertex % VerticesPerQuad
	if i < 0 {
		i += VerticesPerQuad
	}
	c := cornerUV[i]
	return c[0], c[1]
}
