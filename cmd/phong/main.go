package main

import (
	"fmt"
	"runtime"

	"glabs/internal/config"
	"glabs/internal/graphics/renderables/planets"
	"glabs/internal/graphics/renderables/wireframe"
	renderer "glabs/internal/graphics/renderer"
	"glabs/internal/input"
	"glabs/internal/lab"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/xlab/closer"
)

const intro = `Phong vs Gouraud on a planet and its moon.

Compare per-vertex (Gouraud) and per-fragment (Phong) lighting on the coarse
and the smooth sphere. Where does the specular highlight break up, and why
does the coarse sphere look faceted under both models?

  G  toggle Phong / Gouraud
  C  toggle smooth / coarse sphere
  P  pause the animation
  F  wireframe
  F5 reload shaders
  WASD, Space, Shift  move    arrows  look    Esc  quit
`

func init() {
	runtime.LockOSThread()
}

type exercise struct {
	scene *planets.Planets
	light *wireframe.Wireframe
}

func (e *exercise) Renderables() []renderer.Renderable {
	return []renderer.Renderable{e.scene, e.light}
}

func (e *exercise) HandleInput(im *input.InputManager) {
	if im.JustPressed(input.ActionToggleShading) {
		fmt.Println("Shading:", e.scene.ToggleShading())
	}
	if im.JustPressed(input.ActionToggleMesh) {
		if e.scene.ToggleMesh() {
			fmt.Println("Mesh: smooth sphere")
		} else {
			fmt.Println("Mesh: coarse sphere")
		}
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

	fmt.Print(intro)

	cam := lab.NewCamera(settings.Camera, mgl32.Vec3{1, 0, -6}, 90)
	scene := planets.NewDiffuse(settings.Assets.Dir)
	ex := &exercise{
		scene: scene,
		light: lightMarker(settings.Assets.Dir, scene),
	}

	if err := lab.Run("Phong vs Gouraud", settings, cam, ex); err != nil {
		closer.Fatalln(err)
	}
	closer.Close()
}

func lightMarker(assetsDir string, scene *planets.Planets) *wireframe.Wireframe {
	return wireframe.NewWireframe(assetsDir, func() mgl32.Vec3 { return scene.Light.Position }, 0.2, mgl32.Vec3{1, 1, 0.6})
}
