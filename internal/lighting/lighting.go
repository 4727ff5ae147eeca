// Package lighting holds the point-light model used by the lit shaders and a
// CPU rendition of the same equations.
package lighting

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Uniforms is the subset of a shader program the light needs
type Uniforms interface {
	SetVec3(name string, v mgl32.Vec3)
	SetFloat(name string, value float32)
}

// Light is a point light with distance attenuation
type Light struct {
	Position mgl32.Vec3
	Ambient  float32
	Diffuse  float32
	Specular float32

	Constant  float32
	Linear    float32
	Quadratic float32
}

// DefaultLight returns the light used by the planet exercises
func DefaultLight(pos mgl32.Vec3) Light {
	return Light{
		Position:  pos,
		Ambient:   0.1,
		Diffuse:   0.9,
		Specular:  0.6,
		Constant:  1.0,
		Linear:    0.14,
		Quadratic: 0.07,
	}
}

// Attenuation returns 1/(c + l*d + q*d^2)
func (l Light) Attenuation(d float32) float32 {
	den := l.Constant + l.Linear*d + l.Quadratic*d*d
	if den <= 0 {
		return 1
	}
	return 1 / den
}

// Intensity evaluates ambient + attenuation*(diffuse + specular) at a surface point
func (l Light) Intensity(fragPos, normal, viewPos mgl32.Vec3, shininess float32) float32 {
	n := normal.Normalize()
	toLight := l.Position.Sub(fragPos)
	dist := toLight.Len()
	if dist == 0 {
		return l.Ambient + l.Diffuse + l.Specular
	}
	ld := toLight.Mul(1 / dist)
	vd := viewPos.Sub(fragPos).Normalize()

	diffuse := l.Diffuse * math32.Max(n.Dot(ld), 0)
	r := Reflect(ld.Mul(-1), n)
	specular := l.Specular * math32.Pow(math32.Max(r.Dot(vd), 0), shininess)

	return l.Ambient + l.Attenuation(dist)*(diffuse+specular)
}

// Apply uploads the light as the GLSL struct named prefix
func (l Light) Apply(u Uniforms, prefix string) {
	u.SetVec3(prefix+".light_pos", l.Position)
	u.SetFloat(prefix+".ambient_strength", l.Ambient)
	u.SetFloat(prefix+".diffuse_strength", l.Diffuse)
	u.SetFloat(prefix+".specular_strength", l.Specular)
	u.SetFloat(prefix+".constant", l.Constant)
	u.SetFloat(prefix+".linear", l.Linear)
	u.SetFloat(prefix+".quadratic", l.Quadratic)
}

// Reflect mirrors the incident direction i about the unit normal n, like GLSL reflect
func Reflect(i, n mgl32.Vec3) mgl32.Vec3 {
	return i.Sub(n.Mul(2 * n.Dot(i)))
}

// Refract bends the unit incident direction i through the unit normal n with
// eta = n1/n2, like GLSL refract. Total internal reflection yields the zero vector.
func Refract(i, n mgl32.Vec3, eta float32) mgl32.Vec3 {
	cosi := n.Dot(i)
	k := 1 - eta*eta*(1-cosi*cosi)
	if k < 0 {
		return mgl32.Vec3{}
	}
	return i.Mul(eta).Sub(n.Mul(eta*cosi + math32.Sqrt(k)))
}
