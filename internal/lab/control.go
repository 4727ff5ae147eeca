package lab

import (
	"glabs/internal/camera"
	"glabs/internal/input"
)

// UpdateCamera applies held movement and look keys for dt seconds
func UpdateCamera(cam *camera.Camera, im *input.InputManager, dt float32) {
	moves := [...]struct {
		action input.Action
		dir    camera.Direction
	}{
		{input.ActionMoveForward, camera.Forward},
		{input.ActionMoveBackward, camera.Backward},
		{input.ActionMoveLeft, camera.Left},
		{input.ActionMoveRight, camera.Right},
		{input.ActionMoveUp, camera.Up},
		{input.ActionMoveDown, camera.Down},
	}
	for _, m := range moves {
		if im.IsActive(m.action) {
			cam.Move(m.dir, dt)
		}
	}

	yaw := im.Axis(input.ActionLookLeft, input.ActionLookRight)
	pitch := im.Axis(input.ActionLookDown, input.ActionLookUp)
	if yaw != 0 || pitch != 0 {
		cam.Turn(yaw, pitch, dt)
	}
}
