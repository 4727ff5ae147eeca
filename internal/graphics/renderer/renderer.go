package renderer

import (
	"glabs/internal/camera"
	"glabs/internal/config"
	"glabs/internal/graphics"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *camera.Camera
	clearColor  mgl32.Vec3
	elapsed     float64
}

// NewRenderer configures global GL state and initializes every renderable in order
func NewRenderer(cam *camera.Camera, clearColor mgl32.Vec3, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	initialized, err := initAll(rs)
	if err != nil {
		return nil, err
	}

	return &Renderer{
		renderables: initialized,
		camera:      cam,
		clearColor:  clearColor,
	}, nil
}

// initAll initializes rs in order. On failure the failing renderable and every
// one initialized before it are disposed, in reverse order.
func initAll(rs []Renderable) ([]Renderable, error) {
	var done []Renderable
	for _, r := range rs {
		if err := r.Init(); err != nil {
			// Init may have created part of its resources
			r.Dispose()
			for i := len(done) - 1; i >= 0; i-- {
				done[i].Dispose()
			}
			return nil, err
		}
		done = append(done, r)
	}
	return done, nil
}

// Render clears the frame and draws every renderable in registration order
func (r *Renderer) Render(dt float64) {
	r.elapsed += dt

	gl.ClearColor(r.clearColor[0], r.clearColor[1], r.clearColor[2], 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if config.GetWireframeMode() {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	ctx := RenderContext{
		Camera:  r.camera,
		DT:      dt,
		Time:    r.elapsed,
		View:    r.camera.ViewMatrix(),
		Proj:    r.camera.ProjectionMatrix(),
		ViewPos: r.camera.Position,
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
	r.renderables = nil
}

// Shaders returns every reloadable program owned by the renderables
func (r *Renderer) Shaders() []*graphics.Shader {
	var out []*graphics.Shader
	for _, renderable := range r.renderables {
		if owner, ok := renderable.(ShaderOwner); ok {
			out = append(out, owner.Shaders()...)
		}
	}
	return out
}

// Camera returns the camera instance
func (r *Renderer) Camera() *camera.Camera {
	return r.camera
}

// UpdateViewport propagates a framebuffer resize
func (r *Renderer) UpdateViewport(width, height int) {
	r.camera.SetViewport(width, height)
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}
