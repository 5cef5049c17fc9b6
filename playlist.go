package imgview

import "path/filepath"

// DefaultImages is the image list used when none is configured.
var DefaultImages = []string{
	"./images/image1-mandrill.png",
	"./images/image2-uclogo.png",
	"./images/image3-aerial.jpg",
	"./images/image4-thirsk.jpg",
	"./images/image5-pattern.png",
	"./images/bard.jpg",
}

// Playlist is a fixed, ordered list of image paths navigated cyclically.
type Playlist struct {
	paths []string
}

// NewPlaylist creates a playlist over paths. The slice is copied.
func NewPlaylist(paths []string) (*Playlist, error) {
	if len(paths) == 0 {
		return nil, ErrEmptyPlaylist
	}
	p := &Playlist{paths: make([]string, len(paths))}
	copy(p.paths, paths)
	return p, nil
}

// Len returns the number of entries.
func (p *Playlist) Len() int {
	return len(p.paths)
}

// Path returns the path at index, wrapped into range.
func (p *Playlist) Path(index int) string {
	return p.paths[p.Wrap(index)]
}

// Name returns the base name of the path at index.
func (p *Playlist) Name(index int) string {
	return filepath.Base(p.Path(index))
}

// Wrap maps any integer onto a valid index.
func (p *Playlist) Wrap(index int) int {
	n := len(p.paths)
	index %= n
	if index < 0 {
		index += n
	}
	return index
}

// Next returns the index after index, wrapping the last entry to 0.
func (p *Playlist) Next(index int) int {
	return p.Wrap(index + 1)
}

// Prev returns the index before index, wrapping 0 to the last entry.
func (p *Playlist) Prev(index int) int {
	return p.Wrap(index - 1)
}
