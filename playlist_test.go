package imgview

import (
	"errors"
	"testing"
)

func TestNewPlaylist_Empty(t *testing.T) {
	if _, err := NewPlaylist(nil); !errors.Is(err, ErrEmptyPlaylist) {
		t.Errorf("NewPlaylist(nil) error = %v, want ErrEmptyPlaylist", err)
	}
}

func TestPlaylist_NextWrapsAround(t *testing.T) {
	p, err := NewPlaylist(DefaultImages)
	if err != nil {
		t.Fatal(err)
	}
	if p.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", p.Len())
	}

	index := 0
	for i := 0; i < 6; i++ {
		index = p.Next(index)
	}
	if index != 0 {
		t.Errorf("six Next calls from 0 ended at %d, want 0", index)
	}
}

func TestPlaylist_PrevFromFirst(t *testing.T) {
	p, _ := NewPlaylist(DefaultImages)
	if got := p.Prev(0); got != 5 {
		t.Errorf("Prev(0) = %d, want 5", got)
	}
}

func TestPlaylist_Wrap(t *testing.T) {
	p, _ := NewPlaylist([]string{"a.png", "b.png", "c.png"})
	tests := []struct{ in, want int }{
		{0, 0}, {2, 2}, {3, 0}, {7, 1}, {-1, 2}, {-3, 0}, {-4, 2},
	}
	for _, tt := range tests {
		if got := p.Wrap(tt.in); got != tt.want {
			t.Errorf("Wrap(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPlaylist_CopiesPaths(t *testing.T) {
	paths := []string{"images/a.png", "images/b.png"}
	p, _ := NewPlaylist(paths)
	paths[0] = "changed.png"

	if got := p.Path(0); got != "images/a.png" {
		t.Errorf("Path(0) = %q, want images/a.png", got)
	}
	if got := p.Name(-1); got != "b.png" {
		t.Errorf("Name(-1) = %q, want b.png", got)
	}
}
