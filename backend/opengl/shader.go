package opengl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Shader file locations, relative to the working directory.
const (
	DefaultShaderDir   = "res/shaders"
	VertexShaderFile   = "Vertex.shader"
	FragmentShaderFile = "Fragment.shader"
)

// ShaderSource holds the GLSL source of a program.
type ShaderSource struct {
	Vertex   string
	Fragment string
}

// LoadShaderDir reads Vertex.shader and Fragment.shader from dir.
func LoadShaderDir(dir string) (ShaderSource, error) {
	return LoadShaderFiles(filepath.Join(dir, VertexShaderFile), filepath.Join(dir, FragmentShaderFile))
}

// LoadShaderFiles reads the vertex and fragment stages from two files.
func LoadShaderFiles(vertexPath, fragmentPath string) (ShaderSource, error) {
	vs, err := readShader(vertexPath)
	if err != nil {
		return ShaderSource{}, err
	}
	frag, err := readShader(fragmentPath)
	if err != nil {
		return ShaderSource{}, err
	}
	return ShaderSource{Vertex: vs, Fragment: frag}, nil
}

// LoadShaderFile reads a combined shader file, see ParseShader.
func LoadShaderFile(path string) (ShaderSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return ShaderSource{}, shaderFileError(path, err)
	}
	defer f.Close()

	src, err := ParseShader(f)
	if err != nil {
		return ShaderSource{}, fmt.Errorf("%s: %w", path, err)
	}
	return src, nil
}

// ParseShader splits a combined shader file into its stages. Each stage
// starts with a marker line:
//
//	#shader vertex
//	...
//	#shader fragment
//	...
//
// Lines before the first marker are ignored.
func ParseShader(r io.Reader) (ShaderSource, error) {
	const (
		stageNone = iota
		stageVertex
		stageFragment
	)

	var out [3]strings.Builder
	stage := stageNone

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "#shader") {
			switch {
			case strings.Contains(line, "vertex"):
				stage = stageVertex
			case strings.Contains(line, "fragment"):
				stage = stageFragment
			default:
				return ShaderSource{}, fmt.Errorf("%w: unknown stage %q", ErrShaderSource, strings.TrimSpace(line))
			}
			continue
		}
		out[stage].WriteString(line)
		out[stage].WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return ShaderSource{}, fmt.Errorf("read shader: %w", err)
	}

	src := ShaderSource{Vertex: out[stageVertex].String(), Fragment: out[stageFragment].String()}
	if strings.TrimSpace(src.Vertex) == "" {
		return ShaderSource{}, fmt.Errorf("%w: no vertex stage", ErrShaderSource)
	}
	if strings.TrimSpace(src.Fragment) == "" {
		return ShaderSource{}, fmt.Errorf("%w: no fragment stage", ErrShaderSource)
	}
	return src, nil
}

func readShader(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", shaderFileError(path, err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("%w: %s is empty", ErrShaderSource, path)
	}
	return string(data), nil
}

func shaderFileError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s not found", ErrShaderSource, path)
	}
	return fmt.Errorf("%w: %v", ErrShaderSource, err)
}
