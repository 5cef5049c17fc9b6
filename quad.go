package imgview

import "github.com/go-gl/mathgl/mgl32"

// QuadVertexCount is the number of vertices in a Quad (two triangles).
const QuadVertexCount = 6

// Quad is the two-triangle rectangle used to display one image.
// Positions are in normalized device coordinates, TexCoords in source pixels
// (the texture is sampled as a rectangle texture).
type Quad struct {
	Positions [QuadVertexCount]mgl32.Vec2
	TexCoords [QuadVertexCount]mgl32.Vec2
}

// AspectFit returns the half extents of an image scaled into [-1, 1] with
// its aspect ratio preserved. The longer side always maps to 1.
func AspectFit(width, height float32) (x, y float32) {
	switch {
	case height > width:
		ratio := 1 / (height / 2)
		return (width / 2) * ratio, 1
	case width > height:
		ratio := 1 / (width / 2)
		return 1, (height / 2) * ratio
	default:
		return 1, 1
	}
}

// NewQuad builds the untransformed quad for an image of the given size.
// Every position is divided by zoom, so a larger zoom factor shrinks the image.
func NewQuad(width, height, zoom float32) Quad {
	x, y := AspectFit(width, height)
	x /= zoom
	y /= zoom

	return Quad{
		Positions: [QuadVertexCount]mgl32.Vec2{
			{-x, y}, {-x, -y}, {x, -y},
			{-x, y}, {x, y}, {x, -y},
		},
		// v grows towards the top of the image
		TexCoords: [QuadVertexCount]mgl32.Vec2{
			{0, height}, {0, 0}, {width, 0},
			{0, height}, {width, height}, {width, 0},
		},
	}
}

// Rotate rotates v counter-clockwise by degrees around the origin.
func Rotate(v mgl32.Vec2, degrees int) mgl32.Vec2 {
	if degrees%360 == 0 {
		return v
	}
	return mgl32.Rotate2D(mgl32.DegToRad(float32(degrees))).Mul2x1(v)
}

// AspectCorrect compensates for a non-square window by shrinking the longer
// window axis by the window's aspect ratio. Square windows are left as is.
func AspectCorrect(v mgl32.Vec2, win WindowSize) mgl32.Vec2 {
	w, h := float32(win.Width), float32(win.Height)
	if w <= 0 || h <= 0 {
		return v
	}
	switch {
	case w > h:
		v[0] /= w / h
	case h > w:
		v[1] /= h / w
	}
	return v
}

// Transform applies rotation, window aspect correction and pan to every
// vertex of q, in that order. Texture coordinates are left untouched.
func Transform(q Quad, view ViewState, win WindowSize) Quad {
	for i := range q.Positions {
		p := Rotate(q.Positions[i], view.Rotation)
		p = AspectCorrect(p, win)
		q.Positions[i] = p.Add(view.Pan)
	}
	return q
}

// BuildQuad computes the fully transformed quad for img under view in a
// window of size win.
func BuildQuad(img *LoadedImage, view ViewState, win WindowSize) Quad {
	return Transform(NewQuad(img.Width, img.Height, view.Zoom), view, win)
}
