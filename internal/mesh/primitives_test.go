package mesh

import (
	"bytes"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertOutward(t *testing.T, m *Mesh) {
	t.Helper()
	for i := 0; i < len(m.Vertices); i += 3 {
		a, b, c := m.Vertices[i].Position, m.Vertices[i+1].Position, m.Vertices[i+2].Position
		centroid := a.Add(b).Add(c).Mul(1.0 / 3)
		n := b.Sub(a).Cross(c.Sub(a))
		require.Greater(t, n.Dot(centroid), float32(0), "triangle %d winds inward", i/3)
	}
}

func TestUVSphereCounts(t *testing.T) {
	for _, tc := range []struct{ stacks, slices int }{{8, 12}, {32, 64}, {2, 3}} {
		m := UVSphere(tc.stacks, tc.slices, true)
		assert.Equal(t, tc.slices*(2*tc.stacks-2), m.TriangleCount(), "%dx%d", tc.stacks, tc.slices)
	}
}

func TestUVSphereOnUnitSphere(t *testing.T) {
	m := UVSphere(16, 24, true)
	assertOutward(t, m)
	for _, v := range m.Vertices {
		assert.InDelta(t, 1, v.Position.Len(), 1e-5)
		assert.True(t, v.Normal.ApproxEqualThreshold(v.Position, 1e-5))
	}
	min, max := m.Bounds()
	assert.True(t, min.ApproxEqualThreshold(mgl32.Vec3{-1, -1, -1}, 1e-2), "min %v", min)
	assert.True(t, max.ApproxEqualThreshold(mgl32.Vec3{1, 1, 1}, 1e-2), "max %v", max)
}

func TestCoarseSphereHasFlatNormals(t *testing.T) {
	m := UVSphere(6, 8, false)
	assertOutward(t, m)
	for i := 0; i < len(m.Vertices); i += 3 {
		n := m.Vertices[i].Normal
		assert.Equal(t, n, m.Vertices[i+1].Normal)
		assert.Equal(t, n, m.Vertices[i+2].Normal)
		assert.InDelta(t, 1, n.Len(), 1e-5)
	}
}

func TestCube(t *testing.T) {
	m := Cube()
	assert.Equal(t, 36, m.VertexCount())
	assertOutward(t, m)
	min, max := m.Bounds()
	assert.Equal(t, mgl32.Vec3{-1, -1, -1}, min)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, max)
	for _, v := range m.Vertices {
		// every corner lies on the face its normal points to
		assert.InDelta(t, 1, v.Position.Dot(v.Normal), 1e-6)
	}
}

func TestWriteThenParse(t *testing.T) {
	orig := UVSphere(6, 10, false)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, orig))

	parsed, err := Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, orig.Name, parsed.Name)
	require.Equal(t, orig.VertexCount(), parsed.VertexCount())
	for i := range orig.Vertices {
		assert.Equal(t, orig.Vertices[i], parsed.Vertices[i], "vertex %d", i)
	}
}

func TestWriteSharesPositions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Cube()))
	assert.Equal(t, 8, bytes.Count(buf.Bytes(), []byte("\nv ")))
	assert.Equal(t, 6, bytes.Count(buf.Bytes(), []byte("\nvn ")))
	assert.Equal(t, 12, bytes.Count(buf.Bytes(), []byte("\nf ")))
}
