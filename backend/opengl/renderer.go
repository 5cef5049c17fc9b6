// Package opengl provides the OpenGL 4.1 backend for the image viewer.
package opengl

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/imgview"
)

// Vertex attribute locations, matching the layout qualifiers in vertex.glsl.
const (
	positionIndex = 0
	texCoordIndex = 1
)

// Renderer implements imgview.RenderBackend with one vertex array holding
// a position buffer and a texture coordinate buffer.
type Renderer struct {
	program     uint32
	vao         uint32
	positionVBO uint32
	texCoordVBO uint32
	count       int32

	uniforms map[string]int32
	log      *slog.Logger
}

// NewRenderer builds the shader program from src and creates the vertex
// array. A shader build failure is returned and leaves nothing allocated.
func NewRenderer(src ShaderSources, logger *slog.Logger) (*Renderer, error) {
	if logger == nil {
		logger = imgview.NewLogger()
	}
	r := &Renderer{
		uniforms: make(map[string]int32),
		log:      logger,
	}

	var err error
	r.program, err = createShaderProgram(src.Vertex, src.Fragment)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}

	vec2Size := int32(unsafe.Sizeof(mgl32.Vec2{}))

	// Create VAO
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	// Position attribute
	gl.GenBuffers(1, &r.positionVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.positionVBO)
	gl.VertexAttribPointerWithOffset(positionIndex, 2, gl.FLOAT, false, vec2Size, 0)
	gl.EnableVertexAttribArray(positionIndex)

	// TexCoord attribute
	gl.GenBuffers(1, &r.texCoordVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.texCoordVBO)
	gl.VertexAttribPointerWithOffset(texCoordIndex, 2, gl.FLOAT, false, vec2Size, 0)
	gl.EnableVertexAttribArray(texCoordIndex)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	if err := checkErrors("create vertex array"); err != nil {
		r.Delete()
		return nil, err
	}

	return r, nil
}

// UploadQuad replaces the vertex data with q.
func (r *Renderer) UploadQuad(q imgview.Quad) error {
	size := len(q.Positions) * int(unsafe.Sizeof(mgl32.Vec2{}))

	gl.BindBuffer(gl.ARRAY_BUFFER, r.positionVBO)
	gl.BufferData(gl.ARRAY_BUFFER, size, gl.Ptr(&q.Positions[0]), gl.STREAM_DRAW)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.texCoordVBO)
	gl.BufferData(gl.ARRAY_BUFFER, size, gl.Ptr(&q.TexCoords[0]), gl.STREAM_DRAW)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	r.count = int32(len(q.Positions))

	return r.report(checkErrors("upload quad"))
}

// BindTexture binds a rectangle texture to the viewer's texture unit.
func (r *Renderer) BindTexture(texture uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + imgview.TextureUnit)
	gl.BindTexture(gl.TEXTURE_RECTANGLE, texture)
	_ = r.report(checkErrors("bind texture"))
}

// SetUniform sets an integer uniform on the viewer's program.
// Unknown names are ignored, as the driver may optimise unused uniforms away.
func (r *Renderer) SetUniform(name string, value int32) {
	loc := r.uniformLocation(name)
	if loc < 0 {
		return
	}
	gl.UseProgram(r.program)
	gl.Uniform1i(loc, value)
	gl.UseProgram(0)
	_ = r.report(checkErrors("set uniform " + name))
}

// Draw draws the last uploaded quad as a triangle list.
func (r *Renderer) Draw() error {
	gl.UseProgram(r.program)
	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, r.count)

	// Reset state to default (no shader or geometry bound)
	gl.BindVertexArray(0)
	gl.UseProgram(0)

	return r.report(checkErrors("draw"))
}

// Clear fills the framebuffer with black.
func (r *Renderer) Clear() {
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	_ = r.report(checkErrors("clear"))
}

// Resize updates the viewport to the framebuffer size.
func (r *Renderer) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	_ = r.report(checkErrors("resize"))
}

// Delete releases OpenGL resources.
func (r *Renderer) Delete() {
	if r.texCoordVBO != 0 {
		gl.DeleteBuffers(1, &r.texCoordVBO)
	}
	if r.positionVBO != 0 {
		gl.DeleteBuffers(1, &r.positionVBO)
	}
	if r.vao != 0 {
		gl.BindVertexArray(0)
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.UseProgram(0)
		gl.DeleteProgram(r.program)
	}
}

func (r *Renderer) uniformLocation(name string) int32 {
	if loc, ok := r.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(r.program, gl.Str(name+"\x00"))
	r.uniforms[name] = loc
	return loc
}

func (r *Renderer) report(err error) error {
	if err != nil {
		r.log.Error("opengl", "err", err)
	}
	return err
}

// Info returns the OpenGL version, GLSL version and renderer strings.
func Info() (version, glsl, renderer string) {
	return gl.GoStr(gl.GetString(gl.VERSION)),
		gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
		gl.GoStr(gl.GetString(gl.RENDERER))
}

// getError reads one flag from the OpenGL error queue.
var getError = func() uint32 { return gl.GetError() }

// checkErrors drains the OpenGL error queue and attributes every flag to op.
// Renderer methods check before returning, so flags left by unchecked GL
// calls made outside the renderer are the only ones misattributed.
// It returns nil if no error flag was set.
func checkErrors(op string) error {
	var codes []string
	for flag := getError(); flag != gl.NO_ERROR; flag = getError() {
		codes = append(codes, errorName(flag))
	}
	if len(codes) == 0 {
		return nil
	}
	return &imgview.GraphicsAPIError{Op: op, Codes: codes}
}

func errorName(flag uint32) string {
	switch flag {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	default:
		return fmt.Sprintf("unknown error 0x%04X", flag)
	}
}
