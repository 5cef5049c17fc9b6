/*
Package imgview is the core of a small OpenGL image viewer: it keeps the
user's view of one image out of a fixed playlist and turns it into a
transformed quad for a render backend.

# Overview

Each frame the application collects input into an InputState, hands it to
the Viewer, and asks the Viewer to render:

	renderer, _ := opengl.NewRenderer(opengl.DefaultShaderSources(), nil)
	playlist, _ := imgview.NewPlaylist(imgview.DefaultImages)
	viewer := imgview.New(opengl.NewTextureLoader(nil), renderer, playlist)
	_ = viewer.Open(0)

	for !window.ShouldClose() {
	    in := input.Poll()
	    viewer.HandleInput(in)
	    renderer.Clear()
	    _ = viewer.Render(in.Window)
	    window.SwapBuffers()
	}

# Quad transform

BuildQuad is a pure function of the image size, the ViewState and the window
size. The image is first fit into [-1, 1] with its aspect ratio kept (the
longer side spans the full range) and divided by the zoom factor. Every
vertex is then:

 1. rotated by ViewState.Rotation degrees,
 2. shrunk along the window's longer axis by the window aspect ratio,
 3. translated by ViewState.Pan.

Texture coordinates are in source pixels, for rectangle textures.

# Controls

	Left / Right        previous / next image (resets the view)
	0 1 2 3             filter mode
	Keypad + / -        rotate by 5 degrees; = and - do the same
	Scroll              zoom; the zoom factor never drops below 0.1
	Left mouse drag     pan
	Esc                 request close

If an image fails to load during navigation the previous image stays on
screen with its view unchanged, and the failure is logged.
*/
package imgview
