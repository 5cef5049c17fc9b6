package imgview

import "log/slog"

// Option configures a Viewer.
type Option func(*Viewer)

// WithRotateStep sets the rotation in degrees applied per rotate key event.
func WithRotateStep(degrees int) Option {
	return func(v *Viewer) { v.rotateStep = degrees }
}

// WithZoomStep sets how many scroll units change the zoom factor by one.
// Non-positive values are ignored.
func WithZoomStep(step float32) Option {
	return func(v *Viewer) {
		if step > 0 {
			v.zoomStep = step
		}
	}
}

// WithMinZoom sets the lower bound of the zoom factor.
// Non-positive values are ignored; the zoom factor must stay positive.
func WithMinZoom(minZoom float32) Option {
	return func(v *Viewer) {
		if minZoom > 0 {
			v.minZoom = minZoom
		}
	}
}

// WithPanButton sets the mouse button that drags the image.
func WithPanButton(button MouseButton) Option {
	return func(v *Viewer) { v.panButton = button }
}

// WithLogger sets the logger. The default follows SetVerbose.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Viewer) {
		if logger != nil {
			v.log = logger
		}
	}
}
