package geometry

// Stride is the number of scalars each triangle occupies in a VertexBuffer.
const Stride = 9

// VertexBuffer is the canonical in-memory mesh: a flat run of triangles, nine
// float32 components each (v1.xyz, v2.xyz, v3.xyz) in file order. There is no
// index structure, so vertices shared by neighbouring triangles are duplicated.
//
// Values are float32 to match the binary STL wire format exactly.
type VertexBuffer []float32

// TriangleCount returns len/9.
func (b VertexBuffer) TriangleCount() int {
	return len(b) / Stride
}

// Valid reports whether the length is an exact multiple of Stride.
func (b VertexBuffer) Valid() bool {
	return len(b)%Stride == 0
}

// Vertex returns the i-th vertex (0-based over all vertices, three per triangle).
func (b VertexBuffer) Vertex(i int) Vector3 {
	o := i * 3
	return Vector3{X: float64(b[o]), Y: float64(b[o+1]), Z: float64(b[o+2])}
}

// Triangle returns the three vertices of triangle t.
func (b VertexBuffer) Triangle(t int) Triangle {
	return Triangle{
		V1: b.Vertex(3 * t),
		V2: b.Vertex(3*t + 1),
		V3: b.Vertex(3*t + 2),
	}
}

// Clone returns a copy that shares no memory with b.
func (b VertexBuffer) Clone() VertexBuffer {
	out := make(VertexBuffer, len(b))
	copy(out, b)
	return out
}

// setVertex writes v at vertex index i, narrowing to float32.
func (b VertexBuffer) setVertex(i int, v Vector3) {
	o := i * 3
	b[o] = float32(v.X)
	b[o+1] = float32(v.Y)
	b[o+2] = float32(v.Z)
}

// mapVertices returns a new buffer with f applied to every vertex.
func (b VertexBuffer) mapVertices(f func(Vector3) Vector3) VertexBuffer {
	out := make(VertexBuffer, len(b))
	n := len(b) / 3
	for i := 0; i < n; i++ {
		out.setVertex(i, f(b.Vertex(i)))
	}
	return out
}
