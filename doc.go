/*
Package pong implements a minimal real-time Pong game.

# Overview

All geometry lives in a single fixed Buffer of 20 points in normalized device
coordinates:

	0-3    human paddle corners (left)
	4-11   ball, a regular octagon
	12-15  AI paddle corners (right)
	16-19  background quad

Simulation.Step advances paddles and ball by one tick. Game wraps a
Simulation, turns the buffer into a DrawList each frame and hands it to a
Renderer. Concrete renderers live in backend/opengl, backend/terminal and
backend/ebitengine.

# Quick Start

	input := pong.NewInputState()
	renderer, _ := opengl.NewRenderer()
	opengl.NewGLFWInputAdapter(window, input)

	game := pong.New(renderer, input)

	for !window.ShouldClose() {
	    if _, err := game.Frame(); err != nil {
	        return err
	    }
	    window.SwapBuffers()
	    glfw.PollEvents()
	}

# Rally

After a reset the ball rests at the center for ServeDelay ticks, then moves
every tick at Speed along Angle. Top and bottom edges mirror the angle
(2π - θ), paddles mirror it the other way (π - θ) and speed the ball up. Both
bounces add a small random jitter. When the ball leaves through the left or
right edge the layout is restored and a new serve angle is picked.

The AI paddle follows the ball only while the ball is on its half and
heading its way.

# Controls

	Up Arrow     Move paddle up
	Down Arrow   Move paddle down
	Esc, q       Quit (terminal backend)
*/
package pong
