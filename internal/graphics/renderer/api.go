package renderer

import (
	"glabs/internal/camera"
	"glabs/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared per-frame state for all renderables
type RenderContext struct {
	Camera  *camera.Camera
	DT      float64 // seconds since the previous frame
	Time    float64 // seconds since start
	View    mgl32.Mat4
	Proj    mgl32.Mat4
	ViewPos mgl32.Vec3
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}

// ShaderOwner is implemented by renderables whose programs can be hot reloaded
type ShaderOwner interface {
	Shaders() []*graphics.Shader
}
