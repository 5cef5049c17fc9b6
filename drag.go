package imgview

import "github.com/go-gl/mathgl/mgl32"

// DragState tracks the cursor between frames so that moving it while the
// pan button is held translates the image by the same distance.
type DragState struct {
	Active bool       // Pan button held on the last update
	Last   mgl32.Vec2 // Cursor position in NDC at the last update
}

// Reset clears the drag state.
func (d *DragState) Reset() {
	d.Active = false
	d.Last = mgl32.Vec2{}
}

// Update records the cursor position (in NDC) and returns how far it moved
// since the previous update. Motion only counts while the button was held
// on both updates, so the frame that presses the button never jumps.
func (d *DragState) Update(pos mgl32.Vec2, held bool) mgl32.Vec2 {
	var delta mgl32.Vec2
	if held && d.Active {
		delta = pos.Sub(d.Last)
	}
	d.Active = held
	d.Last = pos
	return delta
}
