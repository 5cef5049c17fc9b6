package opengl

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/imgview"
)

// Shader file names, both in the embedded defaults and in override directories.
const (
	VertexShaderFile   = "vertex.glsl"
	FragmentShaderFile = "fragment.glsl"
)

//go:embed shaders/*.glsl
var defaultShaders embed.FS

// ShaderSources holds GLSL source text for the viewer's program.
type ShaderSources struct {
	Vertex   string
	Fragment string
}

// DefaultShaderSources returns the built-in shaders.
func DefaultShaderSources() ShaderSources {
	src, err := loadShaderSources(defaultShaders, "shaders")
	if err != nil {
		// The files are compiled into the binary.
		panic(err)
	}
	return src
}

// LoadShaderSources reads vertex.glsl and fragment.glsl from dir.
// An empty dir selects the built-in shaders.
func LoadShaderSources(dir string) (ShaderSources, error) {
	if dir == "" {
		return DefaultShaderSources(), nil
	}
	return loadShaderSources(os.DirFS(dir), ".")
}

func loadShaderSources(fsys fs.FS, dir string) (ShaderSources, error) {
	vertex, err := readShader(fsys, dir, VertexShaderFile)
	if err != nil {
		return ShaderSources{}, err
	}
	fragment, err := readShader(fsys, dir, FragmentShaderFile)
	if err != nil {
		return ShaderSources{}, err
	}
	return ShaderSources{Vertex: vertex, Fragment: fragment}, nil
}

func readShader(fsys fs.FS, dir, name string) (string, error) {
	data, err := fs.ReadFile(fsys, path.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", imgview.ErrShaderSource, name, err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return "", fmt.Errorf("%w: %s is empty", imgview.ErrShaderSource, name)
	}
	return string(data), nil
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	return linkProgram(vertexShader, fragmentShader)
}

func compileShader(shaderType uint32, source string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
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
		return 0, fmt.Errorf("%w: %s", imgview.ErrCompile, gl.GoStr(&log[0]))
	}
	return shader, nil
}

func linkProgram(vertexShader, fragmentShader uint32) (uint32, error) {
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
		return 0, fmt.Errorf("%w: %s", imgview.ErrLink, gl.GoStr(&log[0]))
	}

	if err := checkErrors("link program"); err != nil {
		gl.DeleteProgram(program)
		return 0, errors.Join(imgview.ErrLink, err)
	}
	return program, nil
}
