package main

import (
	"fmt"
	"runtime"

	"glabs/internal/config"
	"glabs/internal/graphics/renderables/mirror"
	"glabs/internal/graphics/renderables/skybox"
	renderer "glabs/internal/graphics/renderer"
	"glabs/internal/input"
	"glabs/internal/lab"
	"glabs/internal/mesh"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

type exercise struct {
	objects *mirror.Mirror
	sky     *skybox.Skybox
}

func (e *exercise) Renderables() []renderer.Renderable {
	return []renderer.Renderable{e.sky, e.objects}
}

func (e *exercise) HandleInput(im *input.InputManager) {
	if im.JustPressed(input.ActionToggleMode) {
		fmt.Println("Mode:", e.objects.ToggleMode())
	}
	if im.JustPressed(input.ActionNextMedium) {
		m := e.objects.NextMedium()
		fmt.Printf("Refraction: %s (n = %.3f)\n", m.Name, m.Index)
	}
	if im.JustPressed(input.ActionToggleAnimation) {
		fmt.Println("Animation:", e.objects.ToggleAnimation())
	}
}

func main() {
	settings, err := config.Load(config.DefaultPath)
	if err != nil {
		closer.Fatalln(err)
	}
	settings.Apply()

	fmt.Println("R toggles reflection / refraction, N cycles the refraction index, P pauses")

	sky := skybox.NewSkybox(settings.Assets.Dir, ".jpg")
	objects := mirror.NewMirror(settings.Assets.Dir, sky,
		mirror.Placement{File: "bunny.obj", Position: mgl32.Vec3{-1.5, -0.5, 0}, Scale: 1},
		mirror.Placement{File: "sphere_smooth.obj", Position: mgl32.Vec3{1.5, 0, 0}, Scale: 0.8, Generate: mesh.SmoothSphere},
	)

	cam := lab.NewCamera(settings.Camera, mgl32.Vec3{0, 0, -6}, 90)
	ex := &exercise{objects: objects, sky: sky}

	if err := lab.Run("Cubemap reflection and refraction", settings, cam, ex); err != nil {
		closer.Fatalln(err)
	}
	closer.Close()
}
