// Command pong runs the game in an OpenGL window.
//
// Prerequisites:
//
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./cmd/pong/        # run from the repository root so res/shaders is found
//
// Flags:
//
//	-v               log every game event
//	-shaders         directory holding Vertex.shader and Fragment.shader
//	-shader-file     combined #shader file, e.g. res/shaders/Basic.shader
//	-stepwise-clamp  push paddles back in 0.01 steps
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/pong"
	"github.com/go-theft-auto/pong/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	verbose := flag.Bool("v", false, "log every game event")
	shaderDir := flag.String("shaders", opengl.DefaultShaderDir, "shader directory")
	shaderFile := flag.String("shader-file", "", "combined shader file, overrides -shaders")
	stepwise := flag.Bool("stepwise-clamp", false, "push paddles back in 0.01 steps")
	flag.Parse()

	pong.SetVerbose(*verbose)

	window, err := opengl.OpenWindow(opengl.DefaultWindowConfig())
	if err != nil {
		return err
	}
	defer window.Close()

	w, h := window.FramebufferSize()
	renderOpts := []opengl.RendererOption{
		opengl.WithShaderDir(*shaderDir),
		opengl.WithViewport(w, h),
	}
	if *shaderFile != "" {
		src, err := opengl.LoadShaderFile(*shaderFile)
		if err != nil {
			return fmt.Errorf("pong shaders: %w", err)
		}
		renderOpts = append(renderOpts, opengl.WithShaderSource(src))
	}
	renderer, err := opengl.NewRenderer(renderOpts...)
	if err != nil {
		return fmt.Errorf("pong renderer: %w", err)
	}
	defer renderer.Delete()

	input := pong.NewInputState()
	adapter := opengl.NewGLFWInputAdapter(window.Window, input)

	var opts []pong.Option
	if *stepwise {
		opts = append(opts, pong.WithClampMode(pong.ClampStepwise))
	}
	game := pong.New(renderer, adapter.Input(), opts...)
	adapter.OnResize(game.Resize)

	// Main loop.
	for !window.ShouldClose() {
		if _, err := game.Frame(); err != nil {
			return fmt.Errorf("pong frame: %w", err)
		}
		window.SwapBuffers()
		glfw.PollEvents()
	}

	pong.Logger().Info("window closed", "frames", game.Frames(), "rallies", game.Rallies())
	return nil
}
