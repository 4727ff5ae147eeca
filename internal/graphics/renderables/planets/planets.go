package planets

import (
	"fmt"
	"path/filepath"

	"glabs/internal/graphics"
	renderer "glabs/internal/graphics/renderer"
	"glabs/internal/lighting"
	"glabs/internal/mesh"
	"glabs/internal/profiling"
	"glabs/internal/transform"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	ShadersDir  = "shaders/planets"
	ObjectsDir  = "objects"
	TexturesDir = "textures"
)

// Shading selects where the lighting equation is evaluated
type Shading int

const (
	Phong   Shading = iota // per fragment
	Gouraud                // per vertex
)

func (s Shading) String() string {
	if s == Gouraud {
		return "Gouraud"
	}
	return "Phong"
}

// Style selects the material of both bodies
type Style int

const (
	// Diffuse draws flat-colored bodies with the Phong or Gouraud program
	Diffuse Style = iota
	// Textured draws the earth and moon textures lit by an attenuated point light
	Textured
)

var (
	planetColor = mgl32.Vec3{0.2, 0.45, 0.9}
	moonColor   = mgl32.Vec3{0.75, 0.75, 0.7}
	yAxis       = mgl32.Vec3{0, 1, 0}
)

// Motion describes the per-second animation of a scene
type Motion struct {
	PlanetSpin float32    // degrees per second about +Y
	MoonOrbit  float32    // degrees per second around OrbitPivot
	OrbitPivot mgl32.Vec3 // in the moon's local frame
	OrbitAxis  mgl32.Vec3
}

// Planets draws a planet with an orbiting moon under a single point light
type Planets struct {
	assetsDir string
	style     Style
	shading   Shading
	smooth    bool
	animate   bool

	Light     lighting.Light
	Shininess float32
	Motion    Motion

	phong   *graphics.Shader
	gouraud *graphics.Shader
	earth   *graphics.Shader

	sphereSmooth *graphics.Object
	sphereCoarse *graphics.Object

	earthTex *graphics.Texture
	moonTex  *graphics.Texture

	planet transform.Transform
	moon   transform.Transform
}

// NewDiffuse creates the Phong vs Gouraud comparison scene
func NewDiffuse(assetsDir string) *Planets {
	p := &Planets{
		assetsDir: assetsDir,
		style:     Diffuse,
		smooth:    true,
		animate:   true,
		Light:     lighting.DefaultLight(mgl32.Vec3{0.5, 5, -0.7}),
		Shininess: 32,
		Motion: Motion{
			PlanetSpin: 240,
			MoonOrbit:  180,
			OrbitPivot: mgl32.Vec3{0, 0, 15},
			OrbitAxis:  yAxis,
		},
	}
	p.planet = transform.Identity()
	p.planet.Translate(mgl32.Vec3{1, 0, 0}).Scale(mgl32.Vec3{1.5, 1.5, 1.5})
	p.moon = transform.Identity()
	p.moon.Translate(mgl32.Vec3{1, 0, -3}).Scale(mgl32.Vec3{0.2, 0.2, 0.2})
	return p
}

// NewTextured creates the textured earth and moon scene
func NewTextured(assetsDir string) *Planets {
	p := &Planets{
		assetsDir: assetsDir,
		style:     Textured,
		smooth:    true,
		animate:   true,
		Light:     lighting.DefaultLight(mgl32.Vec3{1, 2, -4}),
		Shininess: 32,
		Motion: Motion{
			PlanetSpin: 30,
			MoonOrbit:  180,
			OrbitPivot: mgl32.Vec3{0, 0, 12},
			OrbitAxis:  mgl32.Vec3{0.5, 1, 0},
		},
	}
	p.planet = transform.Identity()
	p.moon = transform.Identity()
	p.moon.Translate(mgl32.Vec3{0, 0, -3}).Scale(mgl32.Vec3{0.25, 0.25, 0.25})
	return p
}

func (p *Planets) shader(name string) (*graphics.Shader, error) {
	dir := filepath.Join(p.assetsDir, ShadersDir)
	return graphics.NewShader(filepath.Join(dir, name+".vert"), filepath.Join(dir, name+".frag"))
}

// Init compiles the programs and uploads both sphere variants
func (p *Planets) Init() error {
	var err error
	if p.style == Textured {
		if p.earth, err = p.shader("earth"); err != nil {
			return fmt.Errorf("planets: %w", err)
		}
		p.earthTex = graphics.GetTexture(filepath.Join(p.assetsDir, TexturesDir, "earth.jpg"))
		p.moonTex = graphics.GetTexture(filepath.Join(p.assetsDir, TexturesDir, "moon.jpg"))
	} else {
		if p.phong, err = p.shader("phong"); err != nil {
			return fmt.Errorf("planets: %w", err)
		}
		if p.gouraud, err = p.shader("gouraud"); err != nil {
			return fmt.Errorf("planets: %w", err)
		}
	}

	// Programs share explicit attribute locations, so one VAO serves all of them.
	layout := p.active()
	if p.sphereSmooth, err = p.loadSphere("sphere_smooth.obj", mesh.SmoothSphere, layout); err != nil {
		return err
	}
	if p.sphereCoarse, err = p.loadSphere("sphere_coarse.obj", mesh.CoarseSphere, layout); err != nil {
		return err
	}
	return nil
}

// loadSphere prefers the OBJ from the assets tree and generates the sphere when it is absent
func (p *Planets) loadSphere(file string, generate func() *mesh.Mesh, shader *graphics.Shader) (*graphics.Object, error) {
	path := filepath.Join(p.assetsDir, ObjectsDir, file)
	obj, err := graphics.LoadObjectOr(path, shader, generate)
	if err != nil {
		return nil, fmt.Errorf("planets: %w", err)
	}
	return obj, nil
}

func (p *Planets) active() *graphics.Shader {
	switch {
	case p.style == Textured:
		return p.earth
	case p.shading == Gouraud:
		return p.gouraud
	default:
		return p.phong
	}
}

func (p *Planets) sphere() *graphics.Object {
	if p.smooth {
		return p.sphereSmooth
	}
	return p.sphereCoarse
}

// Render advances the animation and draws both bodies
func (p *Planets) Render(ctx renderer.RenderContext) {
	defer profiling.Track("render.planets")()

	if p.animate {
		p.step(float32(ctx.DT))
	}

	shader := p.active()
	shader.Use()
	shader.SetMatrix4("V", ctx.View)
	shader.SetMatrix4("P", ctx.Proj)
	shader.SetVec3("u_view_pos", ctx.ViewPos)
	shader.SetFloat("u_shininess", p.Shininess)

	if p.style == Textured {
		p.Light.Apply(shader, "light")
		shader.SetInt("tex_sampler", 0)
	} else {
		shader.SetVec3("u_light_pos", p.Light.Position)
		shader.SetFloat("u_ambient", p.Light.Ambient)
		shader.SetFloat("u_specular", p.Light.Specular)
	}

	obj := p.sphere()
	p.drawBody(shader, obj, p.planet, planetColor, p.earthTex)
	p.drawBody(shader, obj, p.moon, moonColor, p.moonTex)
}

func (p *Planets) drawBody(shader *graphics.Shader, obj *graphics.Object, t transform.Transform, color mgl32.Vec3, tex *graphics.Texture) {
	if p.style == Textured {
		tex.Bind(0)
	} else {
		shader.SetVec3("u_color", color)
	}
	obj.Transform = t
	obj.DrawWith(shader)
}

// step applies dt seconds of spin and orbit
func (p *Planets) step(dt float32) {
	p.planet.Rotate(p.Motion.PlanetSpin*dt, yAxis)
	p.moon.Orbit(p.Motion.OrbitPivot, p.Motion.MoonOrbit*dt, p.Motion.OrbitAxis)
}

// ToggleShading switches between Phong and Gouraud; textured scenes are always Phong
func (p *Planets) ToggleShading() Shading {
	if p.style == Diffuse {
		p.shading = 1 - p.shading
	}
	return p.shading
}

// ToggleMesh switches between the smooth and coarse sphere and reports whether smooth is active
func (p *Planets) ToggleMesh() bool {
	p.smooth = !p.smooth
	return p.smooth
}

// ToggleAnimation pauses or resumes the motion
func (p *Planets) ToggleAnimation() bool {
	p.animate = !p.animate
	return p.animate
}

// Shaders returns the programs eligible for hot reload
func (p *Planets) Shaders() []*graphics.Shader {
	return []*graphics.Shader{p.phong, p.gouraud, p.earth}
}

// SetViewport is a no-op; the projection comes from the camera
func (p *Planets) SetViewport(width, height int) {}

// Dispose releases GPU resources; textures belong to the shared cache
func (p *Planets) Dispose() {
	for _, obj := range []*graphics.Object{p.sphereSmooth, p.sphereCoarse} {
		if obj != nil {
			obj.Dispose()
		}
	}
	for _, s := range p.Shaders() {
		if s != nil {
			s.Dispose()
		}
	}
}
