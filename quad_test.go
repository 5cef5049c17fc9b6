package imgview

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-5

func approx(a, b mgl32.Vec2) bool {
	return a.ApproxEqualThreshold(b, eps)
}

func TestAspectFit_Square(t *testing.T) {
	for _, size := range []float32{1, 2, 100, 512, 4096} {
		x, y := AspectFit(size, size)
		if x != 1 || y != 1 {
			t.Errorf("AspectFit(%v, %v) = (%v, %v), want (1, 1)", size, size, x, y)
		}
	}
}

func TestAspectFit_LongerSideIsOne(t *testing.T) {
	tests := []struct {
		w, h float32
		x, y float32
	}{
		{1024, 512, 1, 0.5},
		{512, 1024, 0.5, 1},
		{1000, 1530, 1000.0 / 1530.0, 1},
		{300, 100, 1, 1.0 / 3.0},
		{1, 4000, 1.0 / 4000.0, 1},
	}

	for _, tt := range tests {
		x, y := AspectFit(tt.w, tt.h)
		if !mgl32.FloatEqualThreshold(x, tt.x, eps) || !mgl32.FloatEqualThreshold(y, tt.y, eps) {
			t.Errorf("AspectFit(%v, %v) = (%v, %v), want (%v, %v)", tt.w, tt.h, x, y, tt.x, tt.y)
		}

		longer, shorter := x, y
		if tt.h > tt.w {
			longer, shorter = y, x
		}
		if longer != 1 {
			t.Errorf("AspectFit(%v, %v): longer half extent = %v, want 1", tt.w, tt.h, longer)
		}
		if shorter > 1 {
			t.Errorf("AspectFit(%v, %v): shorter half extent = %v, want <= 1", tt.w, tt.h, shorter)
		}
	}
}

func TestNewQuad_Layout(t *testing.T) {
	q := NewQuad(1024, 512, 1)

	wantPos := [QuadVertexCount]mgl32.Vec2{
		{-1, 0.5}, {-1, -0.5}, {1, -0.5},
		{-1, 0.5}, {1, 0.5}, {1, -0.5},
	}
	wantTex := [QuadVertexCount]mgl32.Vec2{
		{0, 512}, {0, 0}, {1024, 0},
		{0, 512}, {1024, 512}, {1024, 0},
	}
	if q.Positions != wantPos {
		t.Errorf("positions = %v, want %v", q.Positions, wantPos)
	}
	if q.TexCoords != wantTex {
		t.Errorf("tex coords = %v, want %v", q.TexCoords, wantTex)
	}
}

func TestNewQuad_ZoomShrinks(t *testing.T) {
	q := NewQuad(512, 512, 2)
	if q.Positions[0] != (mgl32.Vec2{-0.5, 0.5}) {
		t.Errorf("zoom 2 top-left = %v, want (-0.5, 0.5)", q.Positions[0])
	}

	q = NewQuad(512, 512, 0.5)
	if q.Positions[4] != (mgl32.Vec2{2, 2}) {
		t.Errorf("zoom 0.5 top-right = %v, want (2, 2)", q.Positions[4])
	}
}

func TestBuildQuad_WideImageSquareWindow(t *testing.T) {
	img := &LoadedImage{Width: 1024, Height: 512}
	win := WindowSize{Width: 512, Height: 512}

	q := BuildQuad(img, NewViewState(0), win)
	if q.Positions[0] != (mgl32.Vec2{-1, 0.5}) {
		t.Errorf("top-left = %v, want (-1, 0.5)", q.Positions[0])
	}
}

func TestBuildQuad_Rotate90(t *testing.T) {
	img := &LoadedImage{Width: 1024, Height: 512}
	win := WindowSize{Width: 512, Height: 512}
	view := NewViewState(0)
	view.Rotation = 90

	q := BuildQuad(img, view, win)
	if !approx(q.Positions[0], mgl32.Vec2{-0.5, -1}) {
		t.Errorf("top-left rotated 90 = %v, want (-0.5, -1)", q.Positions[0])
	}
}

func TestTransform_ZeroRotationIsIdentity(t *testing.T) {
	base := NewQuad(800, 600, 1.5)
	view := NewViewState(0)
	view.Zoom = 1.5
	win := WindowSize{Width: 640, Height: 640}

	q := Transform(base, view, win)
	if q != base {
		t.Errorf("Transform with no rotation, pan or aspect changed the quad:\n got %v\nwant %v", q, base)
	}
}

func TestTransform_FullTurnMatchesNoRotation(t *testing.T) {
	img := &LoadedImage{Width: 640, Height: 480}
	win := WindowSize{Width: 800, Height: 600}

	view := NewViewState(0)
	view.Pan = mgl32.Vec2{0.1, -0.2}
	want := BuildQuad(img, view, win)

	for _, step := range []int{5, -5} {
		v := view
		for i := 0; i < 360/DefaultRotateStep; i++ {
			v.Rotate(step)
		}
		got := BuildQuad(img, v, win)
		for i := range got.Positions {
			if !approx(got.Positions[i], want.Positions[i]) {
				t.Errorf("step %d: vertex %d = %v, want %v", step, i, got.Positions[i], want.Positions[i])
			}
		}
	}
}

func TestRotate_MatchesRotationMatrix(t *testing.T) {
	v := mgl32.Vec2{0.3, 0.7}
	for _, deg := range []int{5, 45, 90, 135, 180, 270, -30, 725} {
		theta := float64(mgl32.DegToRad(float32(deg)))
		want := mgl32.Vec2{
			float32(float64(v[0])*math.Cos(theta) - float64(v[1])*math.Sin(theta)),
			float32(float64(v[0])*math.Sin(theta) + float64(v[1])*math.Cos(theta)),
		}
		if got := Rotate(v, deg); !approx(got, want) {
			t.Errorf("Rotate(%v, %d) = %v, want %v", v, deg, got, want)
		}
	}
}

func TestAspectCorrect(t *testing.T) {
	v := mgl32.Vec2{-1, 1}
	tests := []struct {
		name string
		win  WindowSize
		want mgl32.Vec2
	}{
		{"square", WindowSize{512, 512}, mgl32.Vec2{-1, 1}},
		{"wide", WindowSize{1024, 512}, mgl32.Vec2{-0.5, 1}},
		{"tall", WindowSize{512, 1024}, mgl32.Vec2{-1, 0.5}},
		{"non-integer ratio", WindowSize{800, 600}, mgl32.Vec2{-0.75, 1}},
		{"minimized", WindowSize{0, 0}, mgl32.Vec2{-1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AspectCorrect(v, tt.win); !approx(got, tt.want) {
				t.Errorf("AspectCorrect(%v, %v) = %v, want %v", v, tt.win, got, tt.want)
			}
		})
	}
}

func TestTransform_Order(t *testing.T) {
	// Before the pan, rotating first gives (-0.5, -1) for the top-left
	// corner; correcting the aspect first would give (-1, -0.5).
	base := NewQuad(512, 512, 1)
	view := NewViewState(0)
	view.Rotation = 90
	view.Pan = mgl32.Vec2{0.25, 0.5}

	q := Transform(base, view, WindowSize{Width: 1024, Height: 512})
	if want := (mgl32.Vec2{-0.25, -0.5}); !approx(q.Positions[0], want) {
		t.Errorf("top-left = %v, want %v", q.Positions[0], want)
	}
}

func TestTransform_LeavesTexCoords(t *testing.T) {
	base := NewQuad(300, 200, 1)
	view := NewViewState(0)
	view.Rotation = 45
	view.Pan = mgl32.Vec2{1, 1}

	q := Transform(base, view, WindowSize{Width: 300, Height: 700})
	if q.TexCoords != base.TexCoords {
		t.Errorf("tex coords changed: %v", q.TexCoords)
	}
}
