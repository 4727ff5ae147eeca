package main

import (
	"runtime"

	"glabs/internal/config"
	"glabs/internal/graphics/renderables/triangle"
	renderer "glabs/internal/graphics/renderer"
	"glabs/internal/input"
	"glabs/internal/lab"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

type exercise struct {
	triangle *triangle.Triangle
}

func (e *exercise) Renderables() []renderer.Renderable {
	return []renderer.Renderable{e.triangle}
}

func (e *exercise) HandleInput(im *input.InputManager) {}

func main() {
	settings, err := config.Load(config.DefaultPath)
	if err != nil {
		closer.Fatalln(err)
	}
	settings.Apply()

	cam := lab.NewCamera(settings.Camera, mgl32.Vec3{0, 0, 3}, 270)
	ex := &exercise{triangle: triangle.NewTriangle()}

	if err := lab.Run("Hello triangle", settings, cam, ex); err != nil {
		closer.Fatalln(err)
	}
	closer.Close()
}
