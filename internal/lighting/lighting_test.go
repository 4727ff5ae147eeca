package lighting

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-5

type recorder struct {
	vec3s  map[string]mgl32.Vec3
	floats map[string]float32
}

func newRecorder() *recorder {
	return &recorder{vec3s: map[string]mgl32.Vec3{}, floats: map[string]float32{}}
}

func (r *recorder) SetVec3(name string, v mgl32.Vec3) { r.vec3s[name] = v }
func (r *recorder) SetFloat(name string, value float32) { r.floats[name] = value }

func TestAttenuation(t *testing.T) {
	l := Light{Constant: 1, Linear: 0.5, Quadratic: 0.25}
	assert.InDelta(t, 1, l.Attenuation(0), eps)
	assert.InDelta(t, 1.0/3.0, l.Attenuation(2), eps)

	// decreasing with distance
	prev := l.Attenuation(0)
	for d := float32(0.5); d < 20; d += 0.5 {
		a := l.Attenuation(d)
		assert.Less(t, a, prev)
		prev = a
	}

	assert.Equal(t, float32(1), Light{}.Attenuation(3))
}

func TestReflect(t *testing.T) {
	n := mgl32.Vec3{0, 1, 0}
	i := mgl32.Vec3{1, -1, 0}.Normalize()
	r := Reflect(i, n)
	assert.True(t, mgl32.Vec3{1, 1, 0}.Normalize().ApproxEqualThreshold(r, eps), "got %v", r)
	assert.InDelta(t, 1, r.Len(), eps)
}

func TestRefractStraightThrough(t *testing.T) {
	n := mgl32.Vec3{0, 0, 1}
	i := mgl32.Vec3{0, 0, -1}
	assert.True(t, i.ApproxEqualThreshold(Refract(i, n, 1/1.52), eps))
}

func TestRefractSnell(t *testing.T) {
	n := mgl32.Vec3{0, 1, 0}
	theta1 := mgl32.DegToRad(40)
	i := mgl32.Vec3{math32.Sin(theta1), -math32.Cos(theta1), 0}
	eta := float32(1) / 1.33

	r := Refract(i, n, eta)
	assert.InDelta(t, 1, r.Len(), eps)
	sin2 := r.X()
	assert.InDelta(t, eta*math32.Sin(theta1), sin2, eps)
	assert.Less(t, r.Y(), float32(0))
}

func TestRefractTotalInternalReflection(t *testing.T) {
	n := mgl32.Vec3{0, 1, 0}
	theta := mgl32.DegToRad(60)
	i := mgl32.Vec3{math32.Sin(theta), -math32.Cos(theta), 0}
	// leaving glass into air beyond the critical angle
	assert.Equal(t, mgl32.Vec3{}, Refract(i, n, 1.52))
}

func TestIntensity(t *testing.T) {
	l := Light{
		Position: mgl32.Vec3{0, 2, 0},
		Ambient:  0.1,
		Diffuse:  0.8,
		Specular: 0.5,
		Constant: 1,
	}
	frag := mgl32.Vec3{}
	up := mgl32.Vec3{0, 1, 0}

	// viewer on the reflection ray: full diffuse and specular
	got := l.Intensity(frag, up, mgl32.Vec3{0, 5, 0}, 32)
	assert.InDelta(t, 1.4, got, eps)

	// surface facing away, viewer off the mirror direction: ambient only
	got = l.Intensity(frag, up.Mul(-1), mgl32.Vec3{5, 0, 0}, 32)
	assert.InDelta(t, 0.1, got, eps)

	// grazing viewer: no specular highlight
	got = l.Intensity(frag, up, mgl32.Vec3{5, 0, 0}, 32)
	assert.InDelta(t, 0.9, got, eps)
}

func TestIntensityAttenuates(t *testing.T) {
	l := DefaultLight(mgl32.Vec3{0, 1, 0})
	near := l.Intensity(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{3, 3, 0}, 32)
	l.Position = mgl32.Vec3{0, 10, 0}
	far := l.Intensity(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{3, 3, 0}, 32)
	assert.Greater(t, near, far)
	assert.Greater(t, far, l.Ambient)
}

func TestApply(t *testing.T) {
	r := newRecorder()
	l := DefaultLight(mgl32.Vec3{0.5, 5, -0.7})
	l.Apply(r, "light")

	assert.Equal(t, l.Position, r.vec3s["light.light_pos"])
	assert.Equal(t, l.Ambient, r.floats["light.ambient_strength"])
	assert.Equal(t, l.Diffuse, r.floats["light.diffuse_strength"])
	assert.Equal(t, l.Specular, r.floats["light.specular_strength"])
	assert.Equal(t, l.Constant, r.floats["light.constant"])
	assert.Equal(t, l.Linear, r.floats["light.linear"])
	assert.Equal(t, l.Quadratic, r.floats["light.quadratic"])
	assert.Len(t, r.floats, 6)
}

func TestNextMediumWraps(t *testing.T) {
	i := 0
	seen := map[string]bool{}
	for range Media {
		seen[Media[i].Name] = true
		i = NextMedium(i)
	}
	assert.Equal(t, 0, i)
	assert.Len(t, seen, len(Media))
	assert.InDelta(t, 1/1.52, Media[3].Ratio(), eps)
}
