package main

import (
	"fmt"
	"runtime"

	"glabs/internal/config"
	"glabs/internal/graphics/renderables/planets"
	"glabs/internal/graphics/renderables/wireframe"
	"glabs/internal/graphics/renderables/skybox"
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
	scene *planets.Planets
	light *wireframe.Wireframe
	sky   *skybox.Skybox
}

func (e *exercise) Renderables() []renderer.Renderable {
	// Skybox last so it only fills pixels left at the far plane
	return []renderer.Renderable{e.scene, e.light, e.sky}
}

func (e *exercise) HandleInput(im *input.InputManager) {
	if im.JustPressed(input.ActionToggleMesh) {
		e.scene.ToggleMesh()
	}
	if im.JustPressed(input.ActionToggleAnimation) {
		fmt.Println("Animation:", e.scene.ToggleAnimation())
	}
}

func main() {
	settings, err := config.Load(config.DefaultPath)
	if err != nil {
		closer.Fatalln(err)
	}
	settings.Apply()

	cam := lab.NewCamera(settings.Camera, mgl32.Vec3{0, 0, -8}, 90)
	scene := planets.NewTextured(settings.Assets.Dir)
	ex := &exercise{
		scene: scene,
		light: lightMarker(settings.Assets.Dir, scene),
		sky:   skybox.NewSkybox(settings.Assets.Dir, ".jpg"),
	}

	if err := lab.Run("Earth and moon", settings, cam, ex); err != nil {
		closer.Fatalln(err)
	}
	closer.Close()
}

func lightMarker(assetsDir string, scene *planets.Planets) *wireframe.Wireframe {
	return wireframe.NewWireframe(assetsDir, func() mgl32.Vec3 { return scene.Light.Position }, 0.2, mgl32.Vec3{1, 1, 0.6})
}
