package triangle

import (
	"fmt"

	"glabs/internal/graphics"
	renderer "glabs/internal/graphics/renderer"
	"glabs/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const vertexSource = `#version 410 core
layout(location = 0) in vec3 position;
layout(location = 1) in vec3 color;

out vec3 v_color;

void main() {
    v_color = color;
    gl_Position = vec4(position, 1.0);
}
`

const fragmentSource = `#version 410 core
in vec3 v_color;

out vec4 frag_color;

void main() {
    frag_color = vec4(v_color, 1.0);
}
`

// Vertices interleaves clip-space position and RGB color
var Vertices = []float32{
	-0.5, -0.5, 0.0, 1.0, 0.0, 0.0,
	0.5, -0.5, 0.0, 0.0, 1.0, 0.0,
	0.0, 0.5, 0.0, 0.0, 0.0, 1.0,
}

// Triangle draws a single colored triangle in clip space
type Triangle struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
}

// NewTriangle creates a new triangle renderable
func NewTriangle() *Triangle {
	return &Triangle{}
}

// Init compiles the inline program and uploads the vertices
func (t *Triangle) Init() error {
	var err error
	t.shader, err = graphics.NewShaderFromSource(vertexSource, fragmentSource)
	if err != nil {
		return fmt.Errorf("triangle: %w", err)
	}

	gl.GenVertexArrays(1, &t.vao)
	gl.GenBuffers(1, &t.vbo)
	gl.BindVertexArray(t.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, t.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(Vertices)*4, gl.Ptr(Vertices), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 6*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 6*4, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return graphics.CheckError("triangle init")
}

// Render draws the triangle
func (t *Triangle) Render(ctx renderer.RenderContext) {
	defer profiling.Track("render.triangle")()

	t.shader.Use()
	gl.BindVertexArray(t.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
}

// SetViewport is a no-op; the triangle lives in clip space
func (t *Triangle) SetViewport(width, height int) {}

// Dispose releases the buffers and program
func (t *Triangle) Dispose() {
	if t.vao != 0 {
		gl.DeleteVertexArrays(1, &t.vao)
		t.vao = 0
	}
	if t.vbo != 0 {
		gl.DeleteBuffers(1, &t.vbo)
		t.vbo = 0
	}
	if t.shader != nil {
		t.shader.Dispose()
	}
}
