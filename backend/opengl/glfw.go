package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/imgview"
)

// GLFWInputAdapter adapts GLFW input to imgview.InputState.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *imgview.InputState

	// OnFramebufferResize, if set, is called with the new framebuffer size.
	OnFramebufferResize func(width, height int)
}

// NewGLFWInputAdapter creates a new GLFW input adapter.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	w, h := window.GetSize()
	adapter := &GLFWInputAdapter{
		window: window,
		input:  imgview.NewInputState(imgview.WindowSize{Width: w, Height: h}),
	}

	// Setup callbacks
	window.SetKeyCallback(adapter.keyCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)
	window.SetSizeCallback(adapter.sizeCallback)
	window.SetFramebufferSizeCallback(adapter.framebufferSizeCallback)

	return adapter
}

// Poll processes pending window events and returns the input collected
// for this frame.
func (a *GLFWInputAdapter) Poll() *imgview.InputState {
	a.input.Reset()
	glfw.PollEvents()
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	viewKey := glfwKeyToKey(key)
	if viewKey == imgview.KeyNone {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetKey(viewKey, true)
	case glfw.Repeat:
		a.input.RepeatKey(viewKey)
	case glfw.Release:
		a.input.SetKey(viewKey, false)
	}
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	viewButton := glfwMouseButtonToButton(button)
	if viewButton < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(viewButton, true)
	case glfw.Release:
		a.input.SetMouseButton(viewButton, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.AddMouseWheel(yoff)
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(xpos, ypos)
}

func (a *GLFWInputAdapter) sizeCallback(w *glfw.Window, width, height int) {
	a.input.SetWindowSize(width, height)
}

func (a *GLFWInputAdapter) framebufferSizeCallback(w *glfw.Window, width, height int) {
	if a.OnFramebufferResize != nil {
		a.OnFramebufferResize(width, height)
	}
}

// glfwKeyToKey maps GLFW keys to viewer keys.
func glfwKeyToKey(key glfw.Key) imgview.Key {
	switch key {
	case glfw.KeyLeft:
		return imgview.KeyLeft
	case glfw.KeyRight:
		return imgview.KeyRight
	case glfw.Key0, glfw.KeyKP0:
		return imgview.Key0
	case glfw.Key1, glfw.KeyKP1:
		return imgview.Key1
	case glfw.Key2, glfw.KeyKP2:
		return imgview.Key2
	case glfw.Key3, glfw.KeyKP3:
		return imgview.Key3
	case glfw.KeyKPAdd:
		return imgview.KeyKPAdd
	case glfw.KeyKPSubtract:
		return imgview.KeyKPSubtract
	case glfw.KeyEqual:
		return imgview.KeyEqual
	case glfw.KeyMinus:
		return imgview.KeyMinus
	case glfw.KeyEscape:
		return imgview.KeyEscape
	default:
		return imgview.KeyNone
	}
}

// glfwMouseButtonToButton maps GLFW mouse buttons to viewer mouse buttons.
func glfwMouseButtonToButton(button glfw.MouseButton) imgview.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return imgview.MouseButtonLeft
	case glfw.MouseButtonRight:
		return imgview.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return imgview.MouseButtonMiddle
	default:
		return -1
	}
}
