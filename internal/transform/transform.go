// Package transform composes model matrices the way glm does: every operation
// post-multiplies the current matrix, so the last call applies first to vertices.
package transform

import "github.com/go-gl/mathgl/mgl32"

// Transform is a local-to-world model matrix mutated in place
type Transform struct {
	M mgl32.Mat4
}

// Identity returns a transform with M = I
func Identity() Transform {
	return Transform{M: mgl32.Ident4()}
}

// Translate appends a translation by v
func (t *Transform) Translate(v mgl32.Vec3) *Transform {
	t.M = t.M.Mul4(mgl32.Translate3D(v[0], v[1], v[2]))
	return t
}

// Rotate appends a rotation of angle degrees around axis. A zero axis is ignored.
func (t *Transform) Rotate(angle float32, axis mgl32.Vec3) *Transform {
	if axis.Len() == 0 {
		return t
	}
	t.M = t.M.Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(angle), axis.Normalize()))
	return t
}

// Scale appends a non-uniform scale
func (t *Transform) Scale(v mgl32.Vec3) *Transform {
	t.M = t.M.Mul4(mgl32.Scale3D(v[0], v[1], v[2]))
	return t
}

// Orbit appends a rotation of angle degrees around axis through pivot,
// where pivot is expressed in the transform's local frame.
func (t *Transform) Orbit(pivot mgl32.Vec3, angle float32, axis mgl32.Vec3) *Transform {
	return t.Translate(pivot).Rotate(angle, axis).Translate(pivot.Mul(-1))
}

// Reset sets M back to the identity
func (t *Transform) Reset() {
	t.M = mgl32.Ident4()
}

// Position returns the world-space origin of the local frame
func (t *Transform) Position() mgl32.Vec3 {
	return t.M.Col(3).Vec3()
}

// NormalMatrix returns the inverse-transpose of M used to carry normals to world space.
// A singular M yields the zero matrix.
func (t *Transform) NormalMatrix() mgl32.Mat4 {
	return t.M.Inv().Transpose()
}
