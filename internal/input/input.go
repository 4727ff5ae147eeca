package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical exercise action, not a physical key
type Action int

// Action constants using iota
const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionLookLeft
	ActionLookRight
	ActionLookUp
	ActionLookDown
	ActionQuit
	ActionToggleShading
	ActionToggleMesh
	ActionToggleMode
	ActionNextMedium
	ActionToggleAnimation
	ActionToggleWireframe
	ActionReloadShaders
	ActionCount // Sentinel value for array sizing
)

var actionNames = [ActionCount]string{
	"move forward", "move backward", "move left", "move right", "move up", "move down",
	"look left", "look right", "look up", "look down",
	"quit", "toggle shading", "toggle mesh", "toggle mode", "next medium",
	"toggle animation", "toggle wireframe", "reload shaders",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// InputManager tracks keyboard state and maps physical keys to logical actions
type InputManager struct {
	mu sync.RWMutex

	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[glfw.Key][]Action

	// Current frame state (indexed by Action)
	currentState [ActionCount]bool

	// Just pressed/released flags (reset each frame)
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool
}

// NewInputManager creates a new InputManager with default key bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions: make(map[glfw.Key][]Action),
	}

	im.BindKey(glfw.KeyW, ActionMoveForward)
	im.BindKey(glfw.KeyS, ActionMoveBackward)
	im.BindKey(glfw.KeyA, ActionMoveLeft)
	im.BindKey(glfw.KeyD, ActionMoveRight)
	im.BindKey(glfw.KeySpace, ActionMoveUp)
	im.BindKey(glfw.KeyLeftShift, ActionMoveDown)

	im.BindKey(glfw.KeyLeft, ActionLookLeft)
	im.BindKey(glfw.KeyRight, ActionLookRight)
	im.BindKey(glfw.KeyUp, ActionLookUp)
	im.BindKey(glfw.KeyDown, ActionLookDown)

	im.BindKey(glfw.KeyEscape, ActionQuit)
	im.BindKey(glfw.KeyG, ActionToggleShading)
	im.BindKey(glfw.KeyC, ActionToggleMesh)
	im.BindKey(glfw.KeyR, ActionToggleMode)
	im.BindKey(glfw.KeyN, ActionNextMedium)
	im.BindKey(glfw.KeyP, ActionToggleAnimation)
	im.BindKey(glfw.KeyF, ActionToggleWireframe)
	im.BindKey(glfw.KeyF5, ActionReloadShaders)

	return im
}

// BindKey binds a physical key to a logical action
// Multiple keys can be bound to the same action
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key
func (im *InputManager) UnbindKey(key glfw.Key) {
	im.mu.Lock()
	defer im.mu.Unlock()

	delete(im.keyToActions, key)
}

// HandleKeyEvent processes a key event and updates internal state
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	actions, exists := im.keyToActions[key]
	if !exists {
		return
	}

	isPressed := action == glfw.Press || action == glfw.Repeat

	for _, act := range actions {
		// Detect edges immediately when event arrives
		if isPressed && !im.currentState[act] {
			im.justPressed[act] = true
		}
		if !isPressed && im.currentState[act] {
			im.justReleased[act] = true
		}
		im.currentState[act] = isPressed
	}
}

// SetKeyCallback installs the GLFW key callback for this input manager
func (im *InputManager) SetKeyCallback(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
}

// PostUpdate must be called at the end of each frame to clear edge flags
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()

	for i := range ActionCount {
		im.justPressed[i] = false
		im.justReleased[i] = false
	}
}

// Reset releases every action, e.g. when the window loses focus
func (im *InputManager) Reset() {
	im.mu.Lock()
	defer im.mu.Unlock()

	im.currentState = [ActionCount]bool{}
	im.justPressed = [ActionCount]bool{}
	im.justReleased = [ActionCount]bool{}
}

// IsActive returns true if the action is currently being held down
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.currentState[action]
}

// JustPressed returns true only if the action was pressed in the current frame
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justPressed[action]
}

// JustReleased returns true only if the action was released in the current frame
func (im *InputManager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justReleased[action]
}

// Axis returns -1, 0 or 1 from a pair of opposing held actions
func (im *InputManager) Axis(negative, positive Action) float32 {
	var v float32
	if im.IsActive(negative) {
		v--
	}
	if im.IsActive(positive) {
		v++
	}
	return v
}
