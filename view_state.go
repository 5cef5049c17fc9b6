package imgview

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// FilterMode selects a fragment shader effect.
type FilterMode int32

const (
	FilterNone      FilterMode = iota // Unfiltered image
	FilterGrayscale                   // Luma only
	FilterInvert                      // Inverted colours
	FilterEdges                       // Sobel edge detection
	FilterModeCount
)

// String returns the filter's display name.
func (f FilterMode) String() string {
	switch f {
	case FilterNone:
		return "none"
	case FilterGrayscale:
		return "grayscale"
	case FilterInvert:
		return "invert"
	case FilterEdges:
		return "edges"
	default:
		return fmt.Sprintf("FilterMode(%d)", int32(f))
	}
}

// Valid reports whether f is one of the defined filter modes.
func (f FilterMode) Valid() bool {
	return f >= 0 && f < FilterModeCount
}

// Default view parameters.
const (
	DefaultZoom       float32 = 1
	DefaultMinZoom    float32 = 0.1
	DefaultZoomStep   float32 = 25 // Scroll units per unit of zoom
	DefaultRotateStep         = 5  // Degrees per key press
)

// ViewState holds the user-controlled display parameters.
// Index is the position in the Playlist; the rest describe how the active
// image is drawn and are reset whenever the active image changes.
type ViewState struct {
	Zoom     float32
	Rotation int // Degrees, unbounded
	Pan      mgl32.Vec2
	Filter   FilterMode
	Index    int
}

// NewViewState returns a view showing the image at index with default
// parameters.
func NewViewState(index int) ViewState {
	v := ViewState{Index: index}
	v.Reset()
	return v
}

// Reset restores zoom, rotation, pan and filter to their defaults.
// The index is kept.
func (v *ViewState) Reset() {
	v.Zoom = DefaultZoom
	v.Rotation = 0
	v.Pan = mgl32.Vec2{}
	v.Filter = FilterNone
}

// Rotate adds delta degrees to the rotation.
func (v *ViewState) Rotate(delta int) {
	v.Rotation += delta
}

// ZoomBy applies a scroll offset. Scrolling up (positive) enlarges the image
// by lowering the zoom factor. The result never drops below minZoom.
func (v *ViewState) ZoomBy(scroll, step, minZoom float32) {
	v.Zoom -= scroll / step
	if v.Zoom <= minZoom {
		v.Zoom = minZoom
	}
}

// PanBy moves the image by delta in normalized device coordinates.
func (v *ViewState) PanBy(delta mgl32.Vec2) {
	v.Pan = v.Pan.Add(delta)
}

// SetFilter sets the filter mode. Unknown modes are ignored.
func (v *ViewState) SetFilter(f FilterMode) bool {
	if !f.Valid() {
		return false
	}
	v.Filter = f
	return true
}

// Angle returns the rotation normalized into [0, 360).
func (v ViewState) Angle() int {
	a := v.Rotation % 360
	if a < 0 {
		a += 360
	}
	return a
}
