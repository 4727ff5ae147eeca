package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Direction is a keyboard movement direction relative to the camera
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

const (
	maxPitch = 89.0
	minPitch = -89.0
)

// Camera is a free-fly camera driven by discrete keyboard input
type Camera struct {
	Position mgl32.Vec3
	WorldUp  mgl32.Vec3
	Yaw      float32 // degrees, kept in [0, 360)
	Pitch    float32 // degrees, kept in [-89, 89]

	front mgl32.Vec3
	right mgl32.Vec3
	up    mgl32.Vec3

	FOV    float32 // vertical, degrees
	Aspect float32
	Near   float32
	Far    float32

	MoveSpeed float32 // units per second
	TurnSpeed float32 // degrees per second
}

// New creates a camera at position looking along yaw (degrees) with zero pitch
func New(position, up mgl32.Vec3, yaw float32) *Camera {
	c := &Camera{
		Position:  position,
		WorldUp:   up.Normalize(),
		FOV:       45,
		Aspect:    1,
		Near:      0.01,
		Far:       100,
		MoveSpeed: 6,
		TurnSpeed: 60,
	}
	c.setAngles(yaw, 0)
	return c
}

// Front returns the unit view direction
func (c *Camera) Front() mgl32.Vec3 { return c.front }

// Right returns the unit right vector
func (c *Camera) Right() mgl32.Vec3 { return c.right }

// Up returns the unit up vector of the camera frame
func (c *Camera) Up() mgl32.Vec3 { return c.up }

// Move translates the camera by MoveSpeed*dt in the given direction
func (c *Camera) Move(dir Direction, dt float32) {
	velocity := c.MoveSpeed * dt
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.right.Mul(velocity))
	case Up:
		c.Position = c.Position.Add(c.WorldUp.Mul(velocity))
	case Down:
		c.Position = c.Position.Sub(c.WorldUp.Mul(velocity))
	}
}

// Turn rotates the camera. dYaw and dPitch are unit rates scaled by TurnSpeed*dt.
func (c *Camera) Turn(dYaw, dPitch, dt float32) {
	step := c.TurnSpeed * dt
	c.setAngles(c.Yaw+dYaw*step, c.Pitch+dPitch*step)
}

// ViewMatrix returns the world-to-camera transform
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.front), c.up)
}

// ProjectionMatrix returns the perspective camera-to-clip transform
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// SetViewport updates the aspect ratio; a zero height (minimised window) is ignored
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

func (c *Camera) setAngles(yaw, pitch float32) {
	yaw = math32.Mod(yaw, 360)
	if yaw < 0 {
		yaw += 360
	}
	// A tiny negative yaw rounds up to 360 in float32
	if yaw >= 360 {
		yaw -= 360
	}
	if pitch > maxPitch {
		pitch = maxPitch
	}
	if pitch < minPitch {
		pitch = minPitch
	}
	c.Yaw = yaw
	c.Pitch = pitch
	c.updateVectors()
}

func (c *Camera) updateVectors() {
	y := mgl32.DegToRad(c.Yaw)
	p := mgl32.DegToRad(c.Pitch)
	c.front = mgl32.Vec3{
		math32.Cos(y) * math32.Cos(p),
		math32.Sin(p),
		math32.Sin(y) * math32.Cos(p),
	}.Normalize()
	c.right = c.front.Cross(c.WorldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}
