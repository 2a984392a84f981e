package opengl_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-theft-auto/pong/backend/opengl"
)

const combined = `// leading comment is dropped
#shader vertex
#version 410 core
layout(location = 0) in vec4 position;
void main() { gl_Position = position; }

#shader fragment
#version 410 core
uniform vec4 u_Color;
out vec4 color;
void main() { color = u_Color; }
`

func TestParseShader(t *testing.T) {
	src, err := opengl.ParseShader(strings.NewReader(combined))
	if err != nil {
		t.Fatalf("ParseShader: %v", err)
	}
	if !strings.HasPrefix(src.Vertex, "#version 410 core\n") {
		t.Errorf("vertex stage: %q", src.Vertex)
	}
	if !strings.Contains(src.Fragment, "uniform vec4 u_Color;") {
		t.Errorf("fragment stage: %q", src.Fragment)
	}
	if strings.Contains(src.Vertex, "u_Color") || strings.Contains(src.Vertex, "leading comment") {
		t.Errorf("vertex stage leaked other sections: %q", src.Vertex)
	}
}

func TestParseShaderErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"no fragment", "#shader vertex\nvoid main() {}\n"},
		{"no vertex", "#shader fragment\nvoid main() {}\n"},
		{"unknown stage", "#shader geometry\nvoid main() {}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := opengl.ParseShader(strings.NewReader(tt.input))
			if !errors.Is(err, opengl.ErrShaderSource) {
				t.Errorf("expected ErrShaderSource, got %v", err)
			}
		})
	}
}

func TestLoadShaderDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, opengl.VertexShaderFile), "void main() { gl_Position = vec4(0); }\n")
	writeFile(t, filepath.Join(dir, opengl.FragmentShaderFile), "uniform vec4 u_Color;\n")

	src, err := opengl.LoadShaderDir(dir)
	if err != nil {
		t.Fatalf("LoadShaderDir: %v", err)
	}
	if !strings.Contains(src.Vertex, "gl_Position") || !strings.Contains(src.Fragment, "u_Color") {
		t.Errorf("unexpected source: %+v", src)
	}
}

func TestLoadShaderDirMissing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, opengl.VertexShaderFile), "void main() {}\n")

	_, err := opengl.LoadShaderDir(dir)
	if !errors.Is(err, opengl.ErrShaderSource) {
		t.Fatalf("expected ErrShaderSource, got %v", err)
	}
	if !strings.Contains(err.Error(), opengl.FragmentShaderFile) {
		t.Errorf("error should name the missing file: %v", err)
	}
}

func TestLoadShaderDirEmptyFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, opengl.VertexShaderFile), "   \n")
	writeFile(t, filepath.Join(dir, opengl.FragmentShaderFile), "void main() {}\n")

	if _, err := opengl.LoadShaderDir(dir); !errors.Is(err, opengl.ErrShaderSource) {
		t.Fatalf("expected ErrShaderSource, got %v", err)
	}
}

func TestLoadShaderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Basic.shader")
	writeFile(t, path, combined)

	src, err := opengl.LoadShaderFile(path)
	if err != nil {
		t.Fatalf("LoadShaderFile: %v", err)
	}
	if src.Vertex == "" || src.Fragment == "" {
		t.Errorf("missing stage: %+v", src)
	}
}

func TestBundledShaders(t *testing.T) {
	root := filepath.Join("..", "..", opengl.DefaultShaderDir)

	split, err := opengl.LoadShaderDir(root)
	if err != nil {
		t.Fatalf("bundled shader files: %v", err)
	}
	basic, err := opengl.LoadShaderFile(filepath.Join(root, "Basic.shader"))
	if err != nil {
		t.Fatalf("bundled combined shader: %v", err)
	}
	for _, src := range []opengl.ShaderSource{split, basic} {
		if !strings.Contains(src.Fragment, "uniform vec4 u_Color") {
			t.Errorf("fragment shader must declare u_Color: %q", src.Fragment)
		}
	}
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}
