package mesh

import "github.com/go-gl/mathgl/mgl32"

// Stride is the number of float32 per vertex: position(3) texcoord(2) normal(3)
const Stride = 8

// Attribute offsets in floats within a vertex
const (
	PositionOffset = 0
	TexCoordOffset = 3
	NormalOffset   = 5
)

// Vertex is a single expanded mesh vertex
type Vertex struct {
	Position mgl32.Vec3
	TexCoord mgl32.Vec2
	Normal   mgl32.Vec3
}

// Mesh is a flat triangle list; every three vertices form one triangle
type Mesh struct {
	Name     string
	Vertices []Vertex
}

// VertexCount returns the number of vertices
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles
func (m *Mesh) TriangleCount() int {
	return len(m.Vertices) / 3
}

// Floats returns the interleaved vertex data ready for a GL array buffer
func (m *Mesh) Floats() []float32 {
	out := make([]float32, 0, len(m.Vertices)*Stride)
	for _, v := range m.Vertices {
		out = append(out,
			v.Position[0], v.Position[1], v.Position[2],
			v.TexCoord[0], v.TexCoord[1],
			v.Normal[0], v.Normal[1], v.Normal[2],
		)
	}
	return out
}

// Bounds returns the axis-aligned bounding box of the mesh
func (m *Mesh) Bounds() (min, max mgl32.Vec3) {
	if len(m.Vertices) == 0 {
		return mgl32.Vec3{}, mgl32.Vec3{}
	}
	min = m.Vertices[0].Position
	max = min
	for _, v := range m.Vertices[1:] {
		for i := 0; i < 3; i++ {
			if v.Position[i] < min[i] {
				min[i] = v.Position[i]
			}
			if v.Position[i] > max[i] {
				max[i] = v.Position[i]
			}
		}
	}
	return min, max
}

func faceNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Len() == 0 {
		return mgl32.Vec3{0, 1, 0}
	}
	return n.Normalize()
}
