// Package opengl provides an OpenGL 4.1 backend for the pong package.
package opengl

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/pong"
)

// colorUniform is the fragment shader uniform set before every draw.
const colorUniform = "u_Color"

// Renderer implements pong.Renderer using OpenGL.
type Renderer struct {
	shader   uint32
	vao, vbo uint32
	ebo      uint32
	colorLoc int32
	width    int
	height   int
	logger   *slog.Logger
}

// RendererOption configures a Renderer.
type RendererOption func(*rendererConfig)

type rendererConfig struct {
	shaderDir string
	source    *ShaderSource
	width     int
	height    int
	logger    *slog.Logger
}

// WithShaderDir loads Vertex.shader and Fragment.shader from dir instead of
// res/shaders.
func WithShaderDir(dir string) RendererOption {
	return func(c *rendererConfig) { c.shaderDir = dir }
}

// WithShaderSource uses src instead of reading shader files.
func WithShaderSource(src ShaderSource) RendererOption {
	return func(c *rendererConfig) { c.source = &src }
}

// WithViewport sets the initial viewport size.
func WithViewport(width, height int) RendererOption {
	return func(c *rendererConfig) { c.width, c.height = width, height }
}

// WithLogger sets the logger used for shader diagnostics.
func WithLogger(l *slog.Logger) RendererOption {
	return func(c *rendererConfig) { c.logger = l }
}

// NewRenderer compiles the game shaders and creates the vertex and index
// buffers. A GL context must be current.
func NewRenderer(opts ...RendererOption) (*Renderer, error) {
	cfg := rendererConfig{
		shaderDir: DefaultShaderDir,
		width:     DefaultWindowWidth,
		height:    DefaultWindowHeight,
		logger:    pong.Logger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var src ShaderSource
	if cfg.source != nil {
		src = *cfg.source
	} else {
		var err error
		src, err = LoadShaderDir(cfg.shaderDir)
		if err != nil {
			return nil, err
		}
	}

	r := &Renderer{
		width:  cfg.width,
		height: cfg.height,
		logger: cfg.logger,
	}

	var err error
	r.shader, err = r.createShaderProgram(src.Vertex, src.Fragment)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}

	r.colorLoc = gl.GetUniformLocation(r.shader, gl.Str(colorUniform+"\x00"))
	if r.colorLoc == -1 {
		gl.DeleteProgram(r.shader)
		return nil, fmt.Errorf("%w: %s", ErrUniformNotFound, colorUniform)
	}

	// Create VAO
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	// Create VBO
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, pong.VertexCount*2*4, nil, gl.DYNAMIC_DRAW)

	// Create EBO
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	// Vertex layout: Pos (2 floats)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)

	if err := checkError("renderer setup"); err != nil {
		r.Delete()
		return nil, err
	}

	cfg.logger.Info("opengl renderer ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"viewport", fmt.Sprintf("%dx%d", r.width, r.height))

	return r, nil
}

// Resize updates the viewport size.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Render uploads the frame's vertices and draws every command in order.
func (r *Renderer) Render(dl *pong.DrawList) error {
	if dl == nil || len(dl.VtxBuffer) == 0 {
		return nil
	}

	clearErrors()

	gl.Viewport(0, 0, int32(r.width), int32(r.height))
	cr, cg, cb, ca := dl.ClearColor.Normalized()
	gl.ClearColor(cr, cg, cb, ca)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.shader)
	gl.BindVertexArray(r.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(dl.VtxBuffer)*4, gl.Ptr(dl.VtxBuffer), gl.DYNAMIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(dl.IdxBuffer)*4, gl.Ptr(dl.IdxBuffer), gl.STREAM_DRAW)

	if err := checkError("upload"); err != nil {
		return err
	}

	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount == 0 {
			continue
		}
		red, green, blue, alpha := cmd.Color.Normalized()
		gl.Uniform4f(r.colorLoc, red, green, blue, alpha)
		gl.DrawElementsWithOffset(gl.TRIANGLES, int32(cmd.ElemCount), gl.UNSIGNED_INT, uintptr(cmd.IndexOffset)*4)
		if err := checkError("draw " + cmd.Mesh.String()); err != nil {
			return err
		}
	}

	gl.BindVertexArray(0)
	return nil
}

// Delete releases OpenGL resources.
func (r *Renderer) Delete() {
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
	}
}

// createShaderProgram compiles and links a shader program.
func (r *Renderer) createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := r.compileShader(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := r.compileShader(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, r.shaderError("link", log)
	}

	gl.ValidateProgram(program)
	return program, nil
}

func (r *Renderer) compileShader(kind uint32, source string) (uint32, error) {
	if !strings.HasSuffix(source, "\x00") {
		source += "\x00"
	}

	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, r.shaderError(shaderKind(kind), log)
	}
	return shader, nil
}

func (r *Renderer) shaderError(stage string, log []byte) error {
	msg := strings.TrimRight(string(log), "\x00\n ")
	r.logger.Error("shader failed", "stage", stage, "log", msg)
	return fmt.Errorf("%w: %s: %s", ErrShaderCompile, stage, msg)
}

func shaderKind(kind uint32) string {
	switch kind {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	default:
		return fmt.Sprintf("shader 0x%x", kind)
	}
}

// clearErrors drops error flags left by earlier calls.
func clearErrors() {
	for gl.GetError() != gl.NO_ERROR {
	}
}

// checkError drains the GL error flags raised since the last clearErrors.
func checkError(call string) error {
	var codes []string
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		codes = append(codes, fmt.Sprintf("0x%04x", code))
	}
	if len(codes) == 0 {
		return nil
	}
	return fmt.Errorf("%w (%s): %s", ErrGL, strings.Join(codes, ","), call)
}
