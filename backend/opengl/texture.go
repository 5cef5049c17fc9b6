package opengl

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"
	"log/slog"
	"os"

	"github.com/disintegration/imaging"
	"github.com/dustin/go-humanize"
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/imgview"
)

// TextureLoader implements imgview.TextureProvider with rectangle textures,
// so texture coordinates are in source pixels.
type TextureLoader struct {
	log *slog.Logger
}

// NewTextureLoader creates a TextureLoader. A nil logger selects the
// package default.
func NewTextureLoader(logger *slog.Logger) *TextureLoader {
	if logger == nil {
		logger = imgview.NewLogger()
	}
	return &TextureLoader{log: logger}
}

// LoadImage decodes the file at path and uploads it as a rectangle texture.
func (l *TextureLoader) LoadImage(path string) (*imgview.LoadedImage, error) {
	img, size, err := DecodeImage(path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	var prev int32
	gl.GetIntegerv(gl.TEXTURE_BINDING_RECTANGLE, &prev)

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_RECTANGLE, tex)
	gl.TexParameteri(gl.TEXTURE_RECTANGLE, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_RECTANGLE, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_RECTANGLE, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_RECTANGLE, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_RECTANGLE, 0, gl.RGBA, int32(bounds.Dx()), int32(bounds.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_RECTANGLE, uint32(prev))

	if err := checkErrors("upload texture"); err != nil {
		gl.DeleteTextures(1, &tex)
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	l.log.Info("loaded image", "path", path,
		"width", bounds.Dx(), "height", bounds.Dy(),
		"size", humanize.Bytes(uint64(size)))

	return &imgview.LoadedImage{
		Path:    path,
		Width:   float32(bounds.Dx()),
		Height:  float32(bounds.Dy()),
		Texture: tex,
		Bytes:   size,
	}, nil
}

// Release deletes the image's texture.
func (l *TextureLoader) Release(img *imgview.LoadedImage) {
	if img == nil || img.Texture == 0 {
		return
	}
	gl.DeleteTextures(1, &img.Texture)
	img.Texture = 0
}

// DecodeImage reads an image file into bottom-up RGBA rows, the order
// OpenGL expects, applying any EXIF orientation. It also returns the file
// size. Errors wrap imgview.ErrImageNotFound or imgview.ErrImageDecode.
func DecodeImage(path string) (*image.NRGBA, int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 0, fmt.Errorf("%w: %s", imgview.ErrImageNotFound, path)
		}
		return nil, 0, fmt.Errorf("%w: %w", imgview.ErrImageNotFound, err)
	}
	if info.IsDir() {
		return nil, 0, fmt.Errorf("%w: %s is a directory", imgview.ErrImageNotFound, path)
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, 0, openError(path, err)
	}

	return imaging.FlipV(img), info.Size(), nil
}

// openError classifies an imaging.Open failure. Failures to open or read the
// file itself come back as *fs.PathError and mean the image is unavailable;
// anything else is a decode failure.
func openError(path string, err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return fmt.Errorf("%w: %w", imgview.ErrImageNotFound, err)
	}
	return fmt.Errorf("%w: %s: %w", imgview.ErrImageDecode, path, err)
}
