package config

import "sync"

// RenderSettings holds the runtime render toggles shared by every exercise
type RenderSettings struct {
	mu        sync.RWMutex
	wireframe bool
	fpsLimit  int // frames per second, 0 = unlimited
}

var globalRenderSettings = &RenderSettings{
	fpsLimit: 0,
}

// GetWireframeMode reports whether polygons are drawn as lines
func GetWireframeMode() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.wireframe
}

// SetWireframeMode sets the polygon mode
func SetWireframeMode(enabled bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.wireframe = enabled
}

// ToggleWireframeMode flips the polygon mode and returns the new value
func ToggleWireframeMode() bool {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.wireframe = !globalRenderSettings.wireframe
	return globalRenderSettings.wireframe
}

// GetFPSLimit returns the frame cap used when vsync is off
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame cap
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	// Clamp to reasonable values
	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}

	globalRenderSettings.fpsLimit = limit
}
