package planets

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestToggleShading(t *testing.T) {
	p := NewDiffuse("assets")
	if got := p.ToggleShading(); got != Gouraud {
		t.Errorf("Expected Gouraud after first toggle, got %v", got)
	}
	if got := p.ToggleShading(); got != Phong {
		t.Errorf("Expected Phong after second toggle, got %v", got)
	}

	textured := NewTextured("assets")
	if got := textured.ToggleShading(); got != Phong {
		t.Errorf("Expected textured scene to stay Phong, got %v", got)
	}
}

func TestToggleMeshAndAnimation(t *testing.T) {
	p := NewDiffuse("assets")
	if p.ToggleMesh() {
		t.Error("Expected coarse sphere after first toggle")
	}
	if !p.ToggleMesh() {
		t.Error("Expected smooth sphere after second toggle")
	}
	if p.ToggleAnimation() {
		t.Error("Expected animation paused after toggle")
	}
}

func TestStepKeepsMoonDistance(t *testing.T) {
	p := NewDiffuse("assets")
	planet := p.planet.Position()
	before := p.moon.Position().Sub(planet).Len()

	for i := 0; i < 90; i++ {
		p.step(1.0 / 60)
	}

	assert.Equal(t, planet, p.planet.Position(), "spin must not move the planet")
	after := p.moon.Position().Sub(planet).Len()
	assert.InDelta(t, before, after, 1e-3)
	assert.NotEqual(t, mgl32.Vec3{1, 0, -3}, p.moon.Position())
}

func TestShadingString(t *testing.T) {
	assert.Equal(t, "Phong", Phong.String())
	assert.Equal(t, "Gouraud", Gouraud.String())
}

func TestTexturedMotionRates(t *testing.T) {
	p := NewTextured("assets")
	// 0.5 and 3 degrees per frame at 60 frames per second
	assert.InDelta(t, 30, p.Motion.PlanetSpin, 1e-6)
	assert.InDelta(t, 180, p.Motion.MoonOrbit, 1e-6)
}
