package shape

import "github.com/chewxy/math32"

// MaxMeshSegments bounds generated meshes so every vertex index fits in a uint16.
const MaxMeshSegments = 128

const minMeshSegments = 3

// MeshData is CPU-side vertex data ready for upload: three floats per position and normal,
// two per texture coordinate and three indices per triangle.
type MeshData struct {
	Vertices  []float32
	Normals   []float32
	Texcoords []float32
	Indices   []uint16
}

// VertexCount returns the number of vertices.
func (m MeshData) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of indexed triangles.
func (m MeshData) TriangleCount() int {
	return len(m.Indices) / 3
}

// TorusMesh generates a torus centered on the origin in the XY plane. ring is the distance from
// the center to the middle of the tube and tube is the tube radius; both are used as given.
// rings counts segments around the ring and sides segments around the tube, each clamped to
// [3, MaxMeshSegments]. Triangles wind counter-clockwise seen from outside.
func TorusMesh(ring, tube float32, rings, sides int) MeshData {
	rings = min(max(rings, minMeshSegments), MaxMeshSegments)
	sides = min(max(sides, minMeshSegments), MaxMeshSegments)
	stride := rings + 1
	n := stride * (sides + 1)
	m := MeshData{
		Vertices:  make([]float32, 0, 3*n),
		Normals:   make([]float32, 0, 3*n),
		Texcoords: make([]float32, 0, 2*n),
		Indices:   make([]uint16, 0, 6*rings*sides),
	}
	for j := 0; j <= sides; j++ {
		v := float32(j) / float32(sides) * 2 * math32.Pi
		cosV, sinV := math32.Cos(v), math32.Sin(v)
		for i := 0; i <= rings; i++ {
			u := float32(i) / float32(rings) * 2 * math32.Pi
			cosU, sinU := math32.Cos(u), math32.Sin(u)
			m.Vertices = append(m.Vertices, (ring+tube*cosV)*cosU, (ring+tube*cosV)*sinU, tube*sinV)
			m.Normals = append(m.Normals, cosV*cosU, cosV*sinU, sinV)
			m.Texcoords = append(m.Texcoords, float32(i)/float32(rings), float32(j)/float32(sides))
		}
	}
	for j := 1; j <= sides; j++ {
		for i := 1; i <= rings; i++ {
			a := uint16(stride*j + i - 1)
			b := uint16(stride*(j-1) + i - 1)
			c := uint16(stride*(j-1) + i)
			d := uint16(stride*j + i)
			m.Indices = append(m.Indices, a, b, d, b, c, d)
		}
	}
	return m
}
