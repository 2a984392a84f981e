package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Default window geometry. The ball is shaped for a 16:9 window.
const (
	DefaultWindowWidth  = 1920
	DefaultWindowHeight = 1080
	DefaultWindowTitle  = "Pong"
)

// WindowConfig describes the window OpenWindow creates.
type WindowConfig struct {
	Width   int
	Height  int
	Title   string
	Hidden  bool // offscreen rendering, e.g. screenshots
	VSync   bool
	Version [2]int
}

// DefaultWindowConfig returns a visible 1920x1080 vsynced GL 4.1 window.
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:   DefaultWindowWidth,
		Height:  DefaultWindowHeight,
		Title:   DefaultWindowTitle,
		VSync:   true,
		Version: [2]int{4, 1},
	}
}

// Window is a GLFW window with a current GL context.
type Window struct {
	*glfw.Window
}

// OpenWindow initializes GLFW, creates the window, makes its context current
// and loads GL. Must be called from the main thread; callers close the
// window with Close. Every failure wraps ErrResourceInit.
func OpenWindow(cfg WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: glfw init: %v", ErrResourceInit, err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, cfg.Version[0])
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.Version[1])
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if cfg.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: create window: %v", ErrResourceInit, err)
	}
	window.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	}

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("%w: gl init: %v", ErrResourceInit, err)
	}

	return &Window{Window: window}, nil
}

// FramebufferSize returns the drawable size in pixels.
func (w *Window) FramebufferSize() (int, int) {
	return w.GetFramebufferSize()
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	w.Destroy()
	glfw.Terminate()
}
