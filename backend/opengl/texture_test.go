package opengl

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-theft-auto/imgview"
)

func TestDecodeImage_FlipsRows(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}

	src := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		src.SetNRGBA(x, 0, red)
		src.SetNRGBA(x, 1, blue)
	}

	path := filepath.Join(t.TempDir(), "rows.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	img, size, err := DecodeImage(path)
	if err != nil {
		t.Fatalf("DecodeImage: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 2 {
		t.Fatalf("bounds = %v, want 4x2", img.Bounds())
	}
	if size <= 0 {
		t.Errorf("size = %d, want > 0", size)
	}

	// First row in memory is the bottom of the picture.
	if got := img.NRGBAAt(0, 0); got != blue {
		t.Errorf("first row = %v, want blue", got)
	}
	if got := img.NRGBAAt(0, 1); got != red {
		t.Errorf("second row = %v, want red", got)
	}
}

func TestDecodeImage_NotFound(t *testing.T) {
	_, _, err := DecodeImage(filepath.Join(t.TempDir(), "missing.png"))
	if !errors.Is(err, imgview.ErrImageNotFound) {
		t.Errorf("error = %v, want ErrImageNotFound", err)
	}

	_, _, err = DecodeImage(t.TempDir())
	if !errors.Is(err, imgview.ErrImageNotFound) {
		t.Errorf("directory error = %v, want ErrImageNotFound", err)
	}
}

func TestDecodeImage_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	writeFile(t, path, "not an image")

	_, _, err := DecodeImage(path)
	if !errors.Is(err, imgview.ErrImageDecode) {
		t.Errorf("error = %v, want ErrImageDecode", err)
	}
}

func TestTextureLoaderReleaseIgnoresEmpty(t *testing.T) {
	l := NewTextureLoader(nil)
	l.Release(nil)
	l.Release(&imgview.LoadedImage{})
}

func TestOpenError(t *testing.T) {
	denied := &fs.PathError{Op: "open", Path: "a.png", Err: fs.ErrPermission}
	if err := openError("a.png", denied); !errors.Is(err, imgview.ErrImageNotFound) {
		t.Errorf("open failure = %v, want ErrImageNotFound", err)
	}
	if err := openError("a.png", denied); !errors.Is(err, fs.ErrPermission) {
		t.Errorf("open failure = %v, want cause kept", err)
	}

	if err := openError("a.png", image.ErrFormat); !errors.Is(err, imgview.ErrImageDecode) {
		t.Errorf("format failure = %v, want ErrImageDecode", err)
	}
}
