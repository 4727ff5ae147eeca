package mirror

import (
	"fmt"
	"path/filepath"

	"glabs/internal/graphics"
	renderer "glabs/internal/graphics/renderer"
	"glabs/internal/lighting"
	"glabs/internal/mesh"
	"glabs/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	ShadersDir = "shaders/mirror"
	ObjectsDir = "objects"
)

// Mode selects how the environment is sampled
type Mode int

const (
	Reflection Mode = iota
	Refraction
)

func (m Mode) String() string {
	if m == Refraction {
		return "refraction"
	}
	return "reflection"
}

// Placement positions one mesh of the scene
type Placement struct {
	File     string // OBJ file under the objects directory
	Position mgl32.Vec3
	Scale    float32
	// Generate builds the mesh when File is missing; nil makes a missing file fatal
	Generate func() *mesh.Mesh
}

// EnvironmentSource provides the cubemap to sample
type EnvironmentSource interface {
	Texture() *graphics.Texture
}

// Mirror draws meshes that reflect or refract a cubemap environment
type Mirror struct {
	assetsDir  string
	placements []Placement
	env        EnvironmentSource

	mode   Mode
	medium int
	spin   float32 // degrees per second about +Y
	paused bool

	reflection *graphics.Shader
	refraction *graphics.Shader
	objects    []*graphics.Object
}

// NewMirror creates a mirror scene sampling env
func NewMirror(assetsDir string, env EnvironmentSource, placements ...Placement) *Mirror {
	return &Mirror{
		assetsDir:  assetsDir,
		placements: placements,
		env:        env,
		medium:     1,
		spin:       20,
	}
}

// Init compiles both programs and loads every placed mesh
func (m *Mirror) Init() error {
	dir := filepath.Join(m.assetsDir, ShadersDir)
	vert := filepath.Join(dir, "mirror.vert")

	var err error
	if m.reflection, err = graphics.NewShader(vert, filepath.Join(dir, "reflection.frag")); err != nil {
		return fmt.Errorf("mirror: %w", err)
	}
	if m.refraction, err = graphics.NewShader(vert, filepath.Join(dir, "refraction.frag")); err != nil {
		return fmt.Errorf("mirror: %w", err)
	}

	for _, pl := range m.placements {
		obj, err := graphics.LoadObjectOr(filepath.Join(m.assetsDir, ObjectsDir, pl.File), m.reflection, pl.Generate)
		if err != nil {
			return fmt.Errorf("mirror: %w", err)
		}
		scale := pl.Scale
		if scale == 0 {
			scale = 1
		}
		obj.Translate(pl.Position).Scale(mgl32.Vec3{scale, scale, scale})
		m.objects = append(m.objects, obj)
	}
	return nil
}

// Render draws every mesh with the active program
func (m *Mirror) Render(ctx renderer.RenderContext) {
	defer profiling.Track("render.mirror")()

	shader := m.reflection
	if m.mode == Refraction {
		shader = m.refraction
	}

	shader.Use()
	shader.SetMatrix4("V", ctx.View)
	shader.SetMatrix4("P", ctx.Proj)
	shader.SetVec3("u_view_pos", ctx.ViewPos)
	shader.SetInt("cubemap_sampler", 0)
	if m.mode == Refraction {
		shader.SetFloat("u_eta", lighting.Media[m.medium].Ratio())
	}
	m.env.Texture().Bind(0)

	for _, obj := range m.objects {
		if !m.paused {
			obj.Rotate(m.spin*float32(ctx.DT), mgl32.Vec3{0, 1, 0})
		}
		obj.DrawWith(shader)
	}
}

// ToggleMode switches between reflection and refraction
func (m *Mirror) ToggleMode() Mode {
	m.mode = 1 - m.mode
	return m.mode
}

// NextMedium advances the refraction index through lighting.Media
func (m *Mirror) NextMedium() lighting.Medium {
	m.medium = lighting.NextMedium(m.medium)
	return lighting.Media[m.medium]
}

// Medium returns the material used for refraction
func (m *Mirror) Medium() lighting.Medium {
	return lighting.Media[m.medium]
}

// ToggleAnimation pauses or resumes the spin
func (m *Mirror) ToggleAnimation() bool {
	m.paused = !m.paused
	return !m.paused
}

// Shaders returns the programs eligible for hot reload
func (m *Mirror) Shaders() []*graphics.Shader {
	return []*graphics.Shader{m.reflection, m.refraction}
}

// SetViewport is a no-op
func (m *Mirror) SetViewport(width, height int) {}

// Dispose releases meshes and programs
func (m *Mirror) Dispose() {
	for _, obj := range m.objects {
		obj.Dispose()
	}
	m.objects = nil
	for _, s := range m.Shaders() {
		if s != nil {
			s.Dispose()
		}
	}
}
