package wireframe

import (
	"fmt"
	"path/filepath"

	"glabs/internal/graphics"
	renderer "glabs/internal/graphics/renderer"
	"glabs/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	ShadersDir = "shaders/wireframe"
)

// CubeEdges lists the 12 edges of the unit cube centered at the origin as line pairs
var CubeEdges = []float32{
	// Front face
	-0.5, -0.5, 0.5, 0.5, -0.5, 0.5,
	0.5, -0.5, 0.5, 0.5, 0.5, 0.5,
	0.5, 0.5, 0.5, -0.5, 0.5, 0.5,
	-0.5, 0.5, 0.5, -0.5, -0.5, 0.5,

	// Back face
	-0.5, -0.5, -0.5, 0.5, -0.5, -0.5,
	0.5, -0.5, -0.5, 0.5, 0.5, -0.5,
	0.5, 0.5, -0.5, -0.5, 0.5, -0.5,
	-0.5, 0.5, -0.5, -0.5, -0.5, -0.5,

	// Connecting edges
	-0.5, -0.5, 0.5, -0.5, -0.5, -0.5,
	0.5, -0.5, 0.5, 0.5, -0.5, -0.5,
	0.5, 0.5, 0.5, 0.5, 0.5, -0.5,
	-0.5, 0.5, 0.5, -0.5, 0.5, -0.5,
}

// Wireframe outlines a point of interest, such as a light, with a small line cube
type Wireframe struct {
	assetsDir string
	target    func() mgl32.Vec3
	size      float32
	color     mgl32.Vec3

	shader *graphics.Shader
	vao    uint32
	vbo    uint32
}

// NewWireframe creates a marker of the given edge length following target
func NewWireframe(assetsDir string, target func() mgl32.Vec3, size float32, color mgl32.Vec3) *Wireframe {
	return &Wireframe{assetsDir: assetsDir, target: target, size: size, color: color}
}

// Init initializes the wireframe rendering system
func (w *Wireframe) Init() error {
	dir := filepath.Join(w.assetsDir, ShadersDir)
	var err error
	w.shader, err = graphics.NewShader(filepath.Join(dir, "wireframe.vert"), filepath.Join(dir, "wireframe.frag"))
	if err != nil {
		return fmt.Errorf("wireframe: %w", err)
	}

	w.setupWireframeVAO()
	return nil
}

// Model returns the marker transform for the current target position
func (w *Wireframe) Model() mgl32.Mat4 {
	p := w.target()
	return mgl32.Translate3D(p[0], p[1], p[2]).Mul4(mgl32.Scale3D(w.size, w.size, w.size))
}

// Render draws the marker
func (w *Wireframe) Render(ctx renderer.RenderContext) {
	defer profiling.Track("render.wireframe")()

	w.shader.Use()
	w.shader.SetMatrix4("P", ctx.Proj)
	w.shader.SetMatrix4("V", ctx.View)
	w.shader.SetMatrix4("M", w.Model())
	w.shader.SetVec3("u_color", w.color)

	gl.BindVertexArray(w.vao)
	gl.LineWidth(1.0)
	gl.DrawArrays(gl.LINES, 0, int32(len(CubeEdges)/3))
	gl.BindVertexArray(0)
}

// Shaders returns the programs eligible for hot reload
func (w *Wireframe) Shaders() []*graphics.Shader {
	return []*graphics.Shader{w.shader}
}

// SetViewport is a no-op
func (w *Wireframe) SetViewport(width, height int) {}

// Dispose cleans up OpenGL resources
func (w *Wireframe) Dispose() {
	if w.vao != 0 {
		gl.DeleteVertexArrays(1, &w.vao)
		w.vao = 0
	}
	if w.vbo != 0 {
		gl.DeleteBuffers(1, &w.vbo)
		w.vbo = 0
	}
	if w.shader != nil {
		w.shader.Dispose()
	}
}

func (w *Wireframe) setupWireframeVAO() {
	gl.GenVertexArrays(1, &w.vao)
	gl.BindVertexArray(w.vao)

	gl.GenBuffers(1, &w.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, w.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(CubeEdges)*4, gl.Ptr(CubeEdges), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.BindVertexArray(0)
}
