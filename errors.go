package imgview

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyPlaylist is returned when no images are configured.
	ErrEmptyPlaylist = errors.New("imgview: no images configured")

	// ErrImageNotFound is returned when an image file is missing or unreadable.
	ErrImageNotFound = errors.New("image not found")

	// ErrImageDecode is returned when an image file cannot be decoded.
	ErrImageDecode = errors.New("image decode failed")

	// ErrShaderSource is returned when shader source text cannot be loaded.
	ErrShaderSource = errors.New("shader source unavailable")

	// ErrCompile is returned when the driver rejects a shader stage.
	ErrCompile = errors.New("shader compilation failed")

	// ErrLink is returned when the driver fails to link a shader program.
	ErrLink = errors.New("shader program linking failed")

	// ErrGraphicsAPI matches any *GraphicsAPIError.
	ErrGraphicsAPI = errors.New("graphics API error")
)

// GraphicsAPIError carries the error flags reported by the graphics API
// after a sequence of calls.
type GraphicsAPIError struct {
	Op    string
	Codes []string
}

func (e *GraphicsAPIError) Error() string {
	return fmt.Sprintf("%s: graphics API error: %s", e.Op, strings.Join(e.Codes, ", "))
}

// Is makes errors.Is(err, ErrGraphicsAPI) match.
func (e *GraphicsAPIError) Is(target error) bool {
	return target == ErrGraphicsAPI
}
