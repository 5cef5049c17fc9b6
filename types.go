package imgview

import "github.com/go-gl/mathgl/mgl32"

// WindowSize is the window size in screen coordinates.
type WindowSize struct {
	Width, Height int
}

// ToNDC converts a cursor position in window pixels (origin top-left) into
// normalized device coordinates (origin centre, y up).
func (w WindowSize) ToNDC(x, y float64) mgl32.Vec2 {
	hw := float64(w.Width) / 2
	hh := float64(w.Height) / 2
	if hw == 0 || hh == 0 {
		return mgl32.Vec2{}
	}
	return mgl32.Vec2{
		float32((x - hw) / hw),
		float32(-(y - hh) / hh),
	}
}

// LoadedImage is a decoded image resident on the GPU.
type LoadedImage struct {
	Path    string
	Width   float32 // Source width in pixels
	Height  float32 // Source height in pixels
	Texture uint32  // Backend texture handle
	Bytes   int64   // Size of the source file
}
