package lab

import (
	"fmt"
	"log"

	"glabs/internal/config"
	"glabs/internal/graphics"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// SetupWindow opens a 4.1 core window and makes its context current
func SetupWindow(ws config.WindowSettings, title string) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	if ws.Debug {
		glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	}

	window, err := glfw.CreateWindow(ws.Width, ws.Height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create window: %w", err)
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("could not initialize OpenGL: %w", err)
	}

	if ws.VSync {
		glfw.SwapInterval(1)
	} else {
		// The FPS limiter paces frames instead
		glfw.SwapInterval(0)
	}
	window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)

	log.Printf("lab: %s", graphics.ContextInfo())
	return window, nil
}
