package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestPressAndRelease(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	if !im.IsActive(ActionMoveForward) {
		t.Fatalf("Expected move forward to be active")
	}
	if !im.JustPressed(ActionMoveForward) {
		t.Errorf("Expected move forward to be just pressed")
	}

	im.PostUpdate()
	if im.JustPressed(ActionMoveForward) {
		t.Errorf("Expected just pressed to clear after PostUpdate")
	}
	if !im.IsActive(ActionMoveForward) {
		t.Errorf("Expected move forward to stay held")
	}

	// key repeat keeps the action held without a new edge
	im.HandleKeyEvent(glfw.KeyW, glfw.Repeat)
	if im.JustPressed(ActionMoveForward) {
		t.Errorf("Repeat must not produce a press edge")
	}

	im.HandleKeyEvent(glfw.KeyW, glfw.Release)
	if im.IsActive(ActionMoveForward) {
		t.Errorf("Expected move forward to be released")
	}
	if !im.JustReleased(ActionMoveForward) {
		t.Errorf("Expected move forward to be just released")
	}
}

func TestUnboundKeyIsIgnored(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyZ, glfw.Press)
	for a := Action(0); a < ActionCount; a++ {
		if im.IsActive(a) {
			t.Errorf("Unexpected active action %v", a)
		}
	}
}

func TestRebinding(t *testing.T) {
	im := NewInputManager()
	im.UnbindKey(glfw.KeyW)
	im.BindKey(glfw.KeyUp, ActionMoveForward)

	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	if im.IsActive(ActionMoveForward) {
		t.Errorf("W should no longer move forward")
	}

	// arrow up now drives both look up and move forward
	im.HandleKeyEvent(glfw.KeyUp, glfw.Press)
	if !im.IsActive(ActionMoveForward) || !im.IsActive(ActionLookUp) {
		t.Errorf("Expected both actions bound to KeyUp to be active")
	}

	im.BindKey(glfw.KeyQ, ActionCount)
	im.HandleKeyEvent(glfw.KeyQ, glfw.Press)
}

func TestAxis(t *testing.T) {
	im := NewInputManager()
	if got := im.Axis(ActionLookLeft, ActionLookRight); got != 0 {
		t.Errorf("Expected 0, got %v", got)
	}
	im.HandleKeyEvent(glfw.KeyRight, glfw.Press)
	if got := im.Axis(ActionLookLeft, ActionLookRight); got != 1 {
		t.Errorf("Expected 1, got %v", got)
	}
	im.HandleKeyEvent(glfw.KeyLeft, glfw.Press)
	if got := im.Axis(ActionLookLeft, ActionLookRight); got != 0 {
		t.Errorf("Expected opposing keys to cancel, got %v", got)
	}
	im.HandleKeyEvent(glfw.KeyRight, glfw.Release)
	if got := im.Axis(ActionLookLeft, ActionLookRight); got != -1 {
		t.Errorf("Expected -1, got %v", got)
	}
}

func TestReset(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyEscape, glfw.Press)
	im.Reset()
	if im.IsActive(ActionQuit) || im.JustPressed(ActionQuit) {
		t.Errorf("Expected Reset to release every action")
	}
}

func TestOutOfRangeAction(t *testing.T) {
	im := NewInputManager()
	if im.IsActive(ActionCount) || im.JustPressed(-1) || im.JustReleased(ActionCount+3) {
		t.Errorf("Out of range actions must report inactive")
	}
	if ActionCount.String() != "unknown" || ActionQuit.String() != "quit" {
		t.Errorf("Unexpected action names %q %q", ActionCount, ActionQuit)
	}
}
