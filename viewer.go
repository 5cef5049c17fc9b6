package imgview

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// Uniform names understood by the shaders.
const (
	UniformSampler = "s"
	UniformMode    = "mode"
)

// TextureUnit is the texture unit images are bound to.
const TextureUnit = 0

// TextureProvider loads image files into GPU textures.
type TextureProvider interface {
	// LoadImage decodes the file at path and uploads it.
	// Errors wrap ErrImageNotFound or ErrImageDecode.
	LoadImage(path string) (*LoadedImage, error)
	// Release frees an image previously returned by LoadImage.
	Release(img *LoadedImage)
}

// RenderBackend uploads quads and issues draw calls.
type RenderBackend interface {
	UploadQuad(q Quad) error
	BindTexture(texture uint32)
	SetUniform(name string, value int32)
	Draw() error
}

// Viewer owns the view state and the active image. It is not safe for
// concurrent use; all calls are expected from the thread owning the
// graphics context.
type Viewer struct {
	textures TextureProvider
	backend  RenderBackend
	playlist *Playlist

	drag  DragState
	view  ViewState
	image *LoadedImage

	closeRequested bool

	rotateStep int
	zoomStep   float32
	minZoom    float32
	panButton  MouseButton
	log        *slog.Logger
}

// New creates a Viewer over playlist. No image is loaded until Open is called.
func New(textures TextureProvider, backend RenderBackend, playlist *Playlist, opts ...Option) *Viewer {
	v := &Viewer{
		textures:   textures,
		backend:    backend,
		playlist:   playlist,
		view:       NewViewState(0),
		rotateStep: DefaultRotateStep,
		zoomStep:   DefaultZoomStep,
		minZoom:    DefaultMinZoom,
		panButton:  MouseButtonLeft,
		log:        NewLogger(),
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Open makes the image at index active. The index is wrapped into range and
// always becomes the current index. On success the view is reset and the
// previous image released; on failure the previous image and view stay in
// place and the error is returned.
func (v *Viewer) Open(index int) error {
	index = v.playlist.Wrap(index)
	v.view.Index = index
	path := v.playlist.Path(index)

	img, err := v.textures.LoadImage(path)
	if err != nil {
		v.log.Warn("keeping previous image", "index", index, "path", path, "err", err)
		if v.image != nil {
			// The loader may have left another texture bound.
			v.backend.BindTexture(v.image.Texture)
		}
		return fmt.Errorf("open image %d: %w", index, err)
	}

	if v.image != nil {
		v.textures.Release(v.image)
	}
	v.image = img
	v.view.Reset()
	v.drag.Reset()

	v.backend.BindTexture(img.Texture)
	v.backend.SetUniform(UniformSampler, TextureUnit)
	v.backend.SetUniform(UniformMode, int32(v.view.Filter))

	v.log.Debug("image opened", "index", index, "name", v.playlist.Name(index),
		"width", img.Width, "height", img.Height)
	return nil
}

// Next opens the following image, wrapping after the last one.
func (v *Viewer) Next() error {
	return v.Open(v.playlist.Next(v.view.Index))
}

// Prev opens the preceding image, wrapping before the first one.
func (v *Viewer) Prev() error {
	return v.Open(v.playlist.Prev(v.view.Index))
}

// HandleInput applies one frame of input to the view state.
// Load failures during navigation are logged, not returned.
func (v *Viewer) HandleInput(in *InputState) {
	if in.KeyPressed(KeyEscape) {
		v.closeRequested = true
	}

	for n := in.KeyPresses(KeyLeft); n > 0; n-- {
		_ = v.Prev()
	}
	for n := in.KeyPresses(KeyRight); n > 0; n-- {
		_ = v.Next()
	}

	for i, key := range [...]Key{Key0, Key1, Key2, Key3} {
		if in.KeyPressed(key) && v.view.SetFilter(FilterMode(i)) {
			v.log.Debug("filter", "key", KeyName(key), "mode", v.view.Filter)
		}
	}

	steps := in.KeyRepeats(KeyKPAdd) + in.KeyRepeats(KeyEqual) -
		in.KeyRepeats(KeyKPSubtract) - in.KeyRepeats(KeyMinus)
	if steps != 0 {
		v.view.Rotate(steps * v.rotateStep)
		v.log.Debug("rotate", "degrees", v.view.Rotation, "angle", v.view.Angle())
	}

	if in.MouseWheelY != 0 {
		v.view.ZoomBy(float32(in.MouseWheelY), v.zoomStep, v.minZoom)
		v.log.Debug("zoom", "factor", v.view.Zoom)
	}

	pos := in.Window.ToNDC(in.MouseX, in.MouseY)
	if delta := v.drag.Update(pos, in.MouseDown(v.panButton)); delta != (mgl32.Vec2{}) {
		v.view.PanBy(delta)
	}
}

// Render draws the active image into a window of size win.
// It is a no-op until an image has been opened.
func (v *Viewer) Render(win WindowSize) error {
	if v.image == nil {
		return nil
	}

	q := BuildQuad(v.image, v.view, win)

	v.backend.SetUniform(UniformMode, int32(v.view.Filter))
	if err := v.backend.UploadQuad(q); err != nil {
		return fmt.Errorf("upload quad: %w", err)
	}
	if err := v.backend.Draw(); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	return nil
}

// View returns a copy of the current view state.
func (v *Viewer) View() ViewState {
	return v.view
}

// Image returns the active image, or nil if none has been loaded.
func (v *Viewer) Image() *LoadedImage {
	return v.image
}

// ShouldClose returns true once the user asked to quit.
func (v *Viewer) ShouldClose() bool {
	return v.closeRequested
}

// Close releases the active image.
func (v *Viewer) Close() {
	if v.image != nil {
		v.textures.Release(v.image)
		v.image = nil
	}
}
