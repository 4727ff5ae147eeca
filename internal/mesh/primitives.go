package mesh

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Tessellation of the stock spheres. The coarse one is low-poly so faceting is obvious.
const (
	SmoothStacks = 32
	SmoothSlices = 48
	CoarseStacks = 10
	CoarseSlices = 14
)

// SmoothSphere is the stock sphere_smooth.obj mesh
func SmoothSphere() *Mesh {
	return UVSphere(SmoothStacks, SmoothSlices, true)
}

// CoarseSphere is the stock sphere_coarse.obj mesh
func CoarseSphere() *Mesh {
	return UVSphere(CoarseStacks, CoarseSlices, false)
}

// UVSphere builds a unit sphere from stacks latitude bands and slices longitude segments.
// With smooth set every vertex carries the analytic normal; otherwise each
// triangle carries its face normal, which is what makes a coarse sphere look faceted.
func UVSphere(stacks, slices int, smooth bool) *Mesh {
	if stacks < 2 {
		stacks = 2
	}
	if slices < 3 {
		slices = 3
	}
	m := &Mesh{Name: "sphere"}

	at := func(i, j int) Vertex {
		theta := math32.Pi * float32(i) / float32(stacks)
		phi := 2 * math32.Pi * float32(j) / float32(slices)
		p := mgl32.Vec3{
			math32.Sin(theta) * math32.Cos(phi),
			math32.Cos(theta),
			math32.Sin(theta) * math32.Sin(phi),
		}
		return Vertex{
			Position: p,
			TexCoord: mgl32.Vec2{float32(j) / float32(slices), 1 - float32(i)/float32(stacks)},
			Normal:   p,
		}
	}
	emit := func(a, b, c Vertex) {
		if !smooth {
			n := faceNormal(a.Position, b.Position, c.Position)
			a.Normal, b.Normal, c.Normal = n, n, n
		}
		m.Vertices = append(m.Vertices, a, b, c)
	}

	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a, b := at(i, j), at(i+1, j)
			c, d := at(i+1, j+1), at(i, j+1)
			if i != stacks-1 {
				emit(a, c, b)
			}
			if i != 0 {
				emit(a, d, c)
			}
		}
	}
	return m
}

type cubeFace struct {
	n, u, v mgl32.Vec3
}

// u x v == n so corners emitted in (u, v) order wind counter-clockwise from outside
var cubeFaces = [6]cubeFace{
	{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
	{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
	{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
}

// Cube builds the [-1, 1]^3 cube with flat normals, 36 vertices
func Cube() *Mesh {
	m := &Mesh{Name: "cube"}
	for _, f := range cubeFaces {
		corner := func(i, j float32) Vertex {
			p := f.n.Add(f.u.Mul(2*i - 1)).Add(f.v.Mul(2*j - 1))
			return Vertex{Position: p, TexCoord: mgl32.Vec2{i, j}, Normal: f.n}
		}
		c00, c10, c11, c01 := corner(0, 0), corner(1, 0), corner(1, 1), corner(0, 1)
		m.Vertices = append(m.Vertices, c00, c10, c11, c00, c11, c01)
	}
	return m
}
