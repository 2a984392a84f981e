package opengl

import "errors"

var (
	// ErrResourceInit reports that GLFW, the window or the GL context could
	// not be created. Nothing can be drawn after it.
	ErrResourceInit = errors.New("resource init failed")

	// ErrShaderSource reports a missing or empty shader source.
	ErrShaderSource = errors.New("shader source unavailable")

	// ErrShaderCompile reports a shader that failed to compile or link. The
	// wrapping error carries the driver's info log.
	ErrShaderCompile = errors.New("shader compile failed")

	// ErrUniformNotFound reports that the program has no u_Color uniform.
	ErrUniformNotFound = errors.New("uniform not found")

	// ErrGL reports an error flag raised by a GL call.
	ErrGL = errors.New("opengl error")
)
