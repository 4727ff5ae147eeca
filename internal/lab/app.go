package lab

import (
	"fmt"
	"log"
	"time"

	"glabs/internal/camera"
	"glabs/internal/config"
	"glabs/internal/graphics"
	renderer "glabs/internal/graphics/renderer"
	"glabs/internal/input"
	"glabs/internal/profiling"
	"glabs/internal/shaderwatch"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/xlab/closer"
)

// Exercise supplies the scene of one program and reacts to its toggles
type Exercise interface {
	Renderables() []renderer.Renderable
	HandleInput(im *input.InputManager)
}

const (
	fpsReportInterval = 500 * time.Millisecond
	slowFrame         = 16 * time.Millisecond
)

// App drives the render loop of a single exercise
type App struct {
	window       *glfw.Window
	inputManager *input.InputManager
	renderer     *renderer.Renderer
	camera       *camera.Camera
	settings     *config.Settings
	exercise     Exercise
	watcher      *shaderwatch.Watcher

	fpsLimiter *FPSLimiter
	fpsCounter *FPSCounter
	lastTime   time.Time

	// glCheck drains GL errors after each frame of a debug context
	glCheck func(op string) error
}

// NewApp initializes the exercise's renderables on the current context
func NewApp(window *glfw.Window, s *config.Settings, cam *camera.Camera, ex Exercise) (*App, error) {
	clearColor := mgl32.Vec3(s.Render.ClearColor)
	r, err := renderer.NewRenderer(cam, clearColor, ex.Renderables()...)
	if err != nil {
		return nil, err
	}

	app := &App{
		window:       window,
		inputManager: input.NewInputManager(),
		renderer:     r,
		camera:       cam,
		settings:     s,
		exercise:     ex,
		fpsLimiter:   NewFPSLimiter(),
		fpsCounter:   NewFPSCounter(fpsReportInterval),
		lastTime:     time.Now(),
		glCheck:      graphics.CheckError,
	}

	fbWidth, fbHeight := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	r.UpdateViewport(fbWidth, fbHeight)

	if s.Assets.HotReload {
		app.watchShaders()
	}
	app.setupCallbacks()
	return app, nil
}

// watchShaders starts the hot reload watcher; failure only disables reloading
func (a *App) watchShaders() {
	var files []string
	for _, s := range a.renderer.Shaders() {
		if s == nil {
			continue
		}
		vert, frag := s.Sources()
		if vert != "" {
			files = append(files, vert, frag)
		}
	}
	if len(files) == 0 {
		return
	}

	w, err := shaderwatch.New(shaderwatch.Dirs(files...)...)
	if err != nil {
		log.Printf("lab: shader hot reload disabled: %v", err)
		return
	}
	a.watcher = w
	closer.Bind(w.Close)
}

func (a *App) setupCallbacks() {
	im := a.inputManager
	im.SetKeyCallback(a.window)

	a.window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
		a.renderer.UpdateViewport(fbWidth, fbHeight)
	})

	// Keys released while unfocused never reach the callback
	a.window.SetFocusCallback(func(w *glfw.Window, focused bool) {
		if !focused {
			im.Reset()
		}
	})
}

// Run loops until the window is asked to close
func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	now := time.Now()
	dt := now.Sub(a.lastTime).Seconds()
	a.lastTime = now

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	a.update(float32(dt))

	a.renderer.Render(dt)
	func() { defer profiling.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()
	a.checkFrame()

	if fps, ok := a.fpsCounter.Frame(time.Now()); ok {
		fmt.Printf("FPS: %.1f\n", fps)
	}

	processing := time.Since(now)
	if a.settings.Window.VSync {
		processing -= profiling.SumWithPrefix("glfw.SwapBuffers")
	}
	if processing > slowFrame {
		log.Printf("Slow frame: %v. Top tasks: %s", processing, profiling.TopN(5))
	}

	a.inputManager.PostUpdate() // Clear "JustPressed" flags

	if !a.settings.Window.VSync {
		a.fpsLimiter.Wait()
	}
}

func (a *App) update(dt float32) {
	defer profiling.Track("lab.update")()
	im := a.inputManager

	if im.JustPressed(input.ActionQuit) {
		a.window.SetShouldClose(true)
		return
	}
	if im.JustPressed(input.ActionToggleWireframe) {
		log.Printf("lab: wireframe %v", config.ToggleWireframeMode())
	}

	UpdateCamera(a.camera, im, dt)
	a.exercise.HandleInput(im)

	shaders := a.renderer.Shaders()
	if im.JustPressed(input.ActionReloadShaders) {
		for _, s := range shaders {
			if s == nil {
				continue
			}
			if err := s.Reload(); err != nil {
				log.Printf("lab: reload failed, keeping previous program: %v", err)
			}
		}
	}
	if a.watcher != nil {
		if changed := a.watcher.Changed(); len(changed) > 0 {
			graphics.ReloadChanged(changed, shaders...)
		}
	}
}

// checkFrame reports GL errors raised during the frame when the debug context is on
func (a *App) checkFrame() error {
	if !a.settings.Window.Debug || a.glCheck == nil {
		return nil
	}
	err := a.glCheck("frame")
	if err != nil {
		log.Printf("lab: %v", err)
	}
	return err
}

// Dispose releases GPU resources in reverse creation order.
// The context must still be current.
func (a *App) Dispose() {
	if a.watcher != nil {
		a.watcher.Close()
	}
	a.renderer.Dispose()
	graphics.DisposeTextures()
	if err := graphics.CheckError("dispose"); err != nil {
		log.Printf("lab: %v", err)
	}
}

// Run opens the window, runs ex until it closes and tears everything down
func Run(title string, s *config.Settings, cam *camera.Camera, ex Exercise) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("could not initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	window, err := SetupWindow(s.Window, title)
	if err != nil {
		return err
	}
	defer window.Destroy()

	app, err := NewApp(window, s, cam, ex)
	if err != nil {
		return err
	}
	defer app.Dispose()

	app.Run()
	return nil
}

// NewCamera builds a camera from the configured lens and speeds
func NewCamera(cs config.CameraSettings, position mgl32.Vec3, yaw float32) *camera.Camera {
	cam := camera.New(position, mgl32.Vec3{0, 1, 0}, yaw)
	cam.FOV = cs.FOV
	cam.Near = cs.Near
	cam.Far = cs.Far
	cam.MoveSpeed = cs.MoveSpeed
	cam.TurnSpeed = cs.TurnSpeed
	return cam
}
