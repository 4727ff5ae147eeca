package skybox

import (
	"fmt"
	"path/filepath"

	"glabs/internal/graphics"
	renderer "glabs/internal/graphics/renderer"
	"glabs/internal/mesh"
	"glabs/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const (
	ShadersDir = "shaders/skybox"
	FacesDir   = "textures/skybox"
	CubeFile   = "objects/cube.obj"
)

// Skybox draws a cubemap around the camera behind all other geometry
type Skybox struct {
	assetsDir string
	ext       string

	shader  *graphics.Shader
	cubemap *graphics.Texture
	vao     uint32
	vbo     uint32
	count   int32
}

// NewSkybox creates a skybox reading right/left/top/bottom/front/back faces with the given extension
func NewSkybox(assetsDir, ext string) *Skybox {
	return &Skybox{assetsDir: assetsDir, ext: ext}
}

// Init compiles the program, loads the cubemap and uploads the unit cube
func (s *Skybox) Init() error {
	var err error
	dir := filepath.Join(s.assetsDir, ShadersDir)
	s.shader, err = graphics.NewShader(filepath.Join(dir, "skybox.vert"), filepath.Join(dir, "skybox.frag"))
	if err != nil {
		return fmt.Errorf("skybox: %w", err)
	}

	s.cubemap = graphics.GetCubemap(graphics.CubemapFaces(filepath.Join(s.assetsDir, FacesDir), s.ext))

	cube, err := mesh.LoadOr(filepath.Join(s.assetsDir, CubeFile), mesh.Cube)
	if err != nil {
		return fmt.Errorf("skybox: %w", err)
	}
	s.setupCubeVAO(cube)
	return graphics.CheckError("skybox init")
}

// setupCubeVAO uploads positions only; the direction doubles as the texture lookup
func (s *Skybox) setupCubeVAO(cube *mesh.Mesh) {
	positions := make([]float32, 0, len(cube.Vertices)*3)
	for _, v := range cube.Vertices {
		positions = append(positions, v.Position[0], v.Position[1], v.Position[2])
	}
	s.count = int32(len(cube.Vertices))

	gl.GenVertexArrays(1, &s.vao)
	gl.GenBuffers(1, &s.vbo)
	gl.BindVertexArray(s.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, gl.Ptr(positions), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)
}

// Texture exposes the cubemap for reflective objects
func (s *Skybox) Texture() *graphics.Texture {
	return s.cubemap
}

// Render draws the cube at the far plane
func (s *Skybox) Render(ctx renderer.RenderContext) {
	defer profiling.Track("render.skybox")()

	gl.DepthFunc(gl.LEQUAL)
	gl.DepthMask(false)
	// The cube is seen from inside.
	gl.Disable(gl.CULL_FACE)

	s.shader.Use()
	s.shader.SetMatrix4("V", ctx.View)
	s.shader.SetMatrix4("P", ctx.Proj)
	s.shader.SetInt("cubemap_sampler", 0)
	s.cubemap.Bind(0)

	gl.BindVertexArray(s.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, s.count)
	gl.BindVertexArray(0)

	gl.DepthMask(true)
	gl.DepthFunc(gl.LESS)
}

// Shaders returns the programs eligible for hot reload
func (s *Skybox) Shaders() []*graphics.Shader {
	return []*graphics.Shader{s.shader}
}

// SetViewport is a no-op for the skybox
func (s *Skybox) SetViewport(width, height int) {}

// Dispose releases the cube, cubemap and program
func (s *Skybox) Dispose() {
	if s.vao != 0 {
		gl.DeleteVertexArrays(1, &s.vao)
		s.vao = 0
	}
	if s.vbo != 0 {
		gl.DeleteBuffers(1, &s.vbo)
		s.vbo = 0
	}
	if s.cubemap != nil {
		s.cubemap.Dispose()
	}
	if s.shader != nil {
		s.shader.Dispose()
	}
}
