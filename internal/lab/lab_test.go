package lab

import (
	"errors"
	"testing"
	"time"

	"glabs/internal/camera"
	"glabs/internal/config"
	"glabs/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestFPSCounter(t *testing.T) {
	c := NewFPSCounter(500 * time.Millisecond)
	start := time.Unix(100, 0)

	// The first frame only starts the interval
	for i := 0; i < 30; i++ {
		if _, ok := c.Frame(start.Add(time.Duration(i) * time.Second / 60)); ok {
			t.Fatalf("Expected no report before the interval elapsed (frame %d)", i)
		}
	}

	fps, ok := c.Frame(start.Add(500 * time.Millisecond))
	if !ok {
		t.Fatal("Expected a report once the interval elapsed")
	}
	assert.InDelta(t, 60.0, fps, 0.01)

	if _, ok := c.Frame(start.Add(520 * time.Millisecond)); ok {
		t.Error("Expected counter to restart after reporting")
	}
}

func TestFPSLimiterUnlimited(t *testing.T) {
	config.SetFPSLimit(0)
	l := NewFPSLimiter()

	begin := time.Now()
	for i := 0; i < 100; i++ {
		l.Wait()
	}
	if elapsed := time.Since(begin); elapsed > 50*time.Millisecond {
		t.Errorf("Expected unlimited waits to return immediately, took %v", elapsed)
	}
}

func TestFPSLimiterPaces(t *testing.T) {
	config.SetFPSLimit(100)
	defer config.SetFPSLimit(0)
	l := NewFPSLimiter()

	begin := time.Now()
	for i := 0; i < 5; i++ {
		l.Wait()
	}
	if elapsed := time.Since(begin); elapsed < 45*time.Millisecond {
		t.Errorf("Expected 5 frames at 100 FPS to take about 50ms, took %v", elapsed)
	}
}

func TestUpdateCameraMoves(t *testing.T) {
	cam := camera.New(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0}, 90)
	cam.MoveSpeed = 2
	im := input.NewInputManager()

	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	UpdateCamera(cam, im, 0.5)

	assert.InDelta(t, 0, cam.Position.X(), 1e-5)
	assert.InDelta(t, 1, cam.Position.Z(), 1e-5)

	im.HandleKeyEvent(glfw.KeyW, glfw.Release)
	im.HandleKeyEvent(glfw.KeySpace, glfw.Press)
	UpdateCamera(cam, im, 0.5)
	assert.InDelta(t, 1, cam.Position.Y(), 1e-5)
}

func TestUpdateCameraTurns(t *testing.T) {
	cam := camera.New(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, 90)
	cam.TurnSpeed = 60
	im := input.NewInputManager()

	im.HandleKeyEvent(glfw.KeyRight, glfw.Press)
	im.HandleKeyEvent(glfw.KeyUp, glfw.Press)
	UpdateCamera(cam, im, 0.5)

	assert.InDelta(t, 120, cam.Yaw, 1e-4)
	assert.InDelta(t, 30, cam.Pitch, 1e-4)

	// Opposing keys cancel out
	im.HandleKeyEvent(glfw.KeyLeft, glfw.Press)
	im.HandleKeyEvent(glfw.KeyUp, glfw.Release)
	UpdateCamera(cam, im, 0.5)
	assert.InDelta(t, 120, cam.Yaw, 1e-4)
	assert.InDelta(t, 30, cam.Pitch, 1e-4)
}

func TestCheckFrameOnlyInDebug(t *testing.T) {
	calls := 0
	failure := errors.New("frame: GL_INVALID_ENUM")
	a := &App{
		settings: config.Default(),
		glCheck: func(op string) error {
			calls++
			return failure
		},
	}

	if err := a.checkFrame(); err != nil {
		t.Errorf("Expected no check without debug, got %v", err)
	}
	if calls != 0 {
		t.Errorf("Expected 0 checks without debug, got %d", calls)
	}

	a.settings.Window.Debug = true
	if err := a.checkFrame(); !errors.Is(err, failure) {
		t.Errorf("Expected GL error to be reported, got %v", err)
	}
	if calls != 1 {
		t.Errorf("Expected 1 check in debug, got %d", calls)
	}
}

func TestNewCameraUsesSettings(t *testing.T) {
	cs := config.Default().Camera
	cs.FOV = 60
	cs.MoveSpeed = 3

	cam := NewCamera(cs, mgl32.Vec3{1, 0, -6}, 90)
	if cam.FOV != 60 {
		t.Errorf("Expected FOV 60, got %v", cam.FOV)
	}
	if cam.MoveSpeed != 3 {
		t.Errorf("Expected move speed 3, got %v", cam.MoveSpeed)
	}
	if cam.Position != (mgl32.Vec3{1, 0, -6}) {
		t.Errorf("Expected position (1,0,-6), got %v", cam.Position)
	}
}
