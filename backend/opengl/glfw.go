package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/pong"
)

// GLFWInputAdapter feeds GLFW key events into a pong.InputState.
//
// GLFW dispatches callbacks from glfw.PollEvents, on the same goroutine that
// steps the game, so the InputState needs no locking.
type GLFWInputAdapter struct {
	window   *glfw.Window
	input    *pong.InputState
	onResize func(width, height int)
}

// NewGLFWInputAdapter installs key and framebuffer callbacks on window.
func NewGLFWInputAdapter(window *glfw.Window, input *pong.InputState) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  input,
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetFramebufferSizeCallback(adapter.framebufferSizeCallback)

	return adapter
}

// Input returns the InputState written by the adapter.
func (a *GLFWInputAdapter) Input() *pong.InputState {
	return a.input
}

// OnResize registers fn to be called with the new framebuffer size.
func (a *GLFWInputAdapter) OnResize(fn func(width, height int)) {
	a.onResize = fn
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	pongKey := glfwKeyToPongKey(key)
	if pongKey == pong.KeyNone {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetKey(pongKey, true)
	case glfw.Release:
		a.input.SetKey(pongKey, false)
	}
}

func (a *GLFWInputAdapter) framebufferSizeCallback(w *glfw.Window, width, height int) {
	if a.onResize != nil {
		a.onResize(width, height)
	}
}

// glfwKeyToPongKey maps GLFW keys to game keys.
func glfwKeyToPongKey(key glfw.Key) pong.Key {
	switch key {
	case glfw.KeyUp:
		return pong.KeyUp
	case glfw.KeyDown:
		return pong.KeyDown
	default:
		return pong.KeyNone
	}
}
