package imgview

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a keyboard key the viewer responds to.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	Key0
	Key1
	Key2
	Key3
	KeyKPAdd
	KeyKPSubtract
	KeyEqual
	KeyMinus
	KeyEscape
	KeyCount
)

// InputState holds input state for the current frame.
// It is populated from window system callbacks and consumed once per frame.
// Several events for the same key may arrive within one frame; they are
// counted, not merged.
type InputState struct {
	// Cursor position in window pixels
	MouseX, MouseY float64

	// Mouse buttons held
	mouseDown [MouseButtonCount]bool

	// Vertical scroll, accumulated over the frame
	MouseWheelY float64

	// Keyboard
	keyDown    [KeyCount]bool
	keyPresses [KeyCount]int // Press events this frame
	keyRepeats [KeyCount]int // Auto-repeat events this frame

	// Window size in screen coordinates, updated on resize
	Window WindowSize
}

// NewInputState creates a new InputState for a window of the given size.
func NewInputState(win WindowSize) *InputState {
	return &InputState{Window: win}
}

// Reset clears per-frame input state.
// Call this at the start of each frame before collecting input.
func (s *InputState) Reset() {
	s.keyPresses = [KeyCount]int{}
	s.keyRepeats = [KeyCount]int{}
	s.MouseWheelY = 0
}

// SetMousePos sets the cursor position.
func (s *InputState) SetMousePos(x, y float64) {
	s.MouseX = x
	s.MouseY = y
}

// SetMouseButton sets mouse button state.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}
	s.mouseDown[button] = down
}

// SetKey sets key state. Each transition to down counts as one press.
func (s *InputState) SetKey(key Key, down bool) {
	if key < 0 || key >= KeyCount {
		return
	}

	if down && !s.keyDown[key] {
		s.keyPresses[key]++
	}
	s.keyDown[key] = down
}

// RepeatKey records an auto-repeat event for a held key.
func (s *InputState) RepeatKey(key Key) {
	if key < 0 || key >= KeyCount {
		return
	}
	s.keyDown[key] = true
	s.keyRepeats[key]++
}

// AddMouseWheel accumulates a vertical scroll offset.
func (s *InputState) AddMouseWheel(y float64) {
	s.MouseWheelY += y
}

// SetWindowSize records a window resize.
func (s *InputState) SetWindowSize(width, height int) {
	s.Window = WindowSize{Width: width, Height: height}
}

// MouseDown returns true if a mouse button is currently held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// KeyPressed returns true if a key was pressed at least once this frame.
func (s *InputState) KeyPressed(key Key) bool {
	return s.KeyPresses(key) > 0
}

// KeyPresses returns how many times a key was pressed this frame.
func (s *InputState) KeyPresses(key Key) int {
	if key < 0 || key >= KeyCount {
		return 0
	}
	return s.keyPresses[key]
}

// KeyRepeats returns the number of presses plus auto-repeats the window
// system delivered for a key this frame.
func (s *InputState) KeyRepeats(key Key) int {
	if key < 0 || key >= KeyCount {
		return 0
	}
	return s.keyPresses[key] + s.keyRepeats[key]
}

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	names := map[Key]string{
		KeyNone:       "--",
		KeyLeft:       "Left",
		KeyRight:      "Right",
		Key0:          "0",
		Key1:          "1",
		Key2:          "2",
		Key3:          "3",
		KeyKPAdd:      "KP+",
		KeyKPSubtract: "KP-",
		KeyEqual:      "=",
		KeyMinus:      "-",
		KeyEscape:     "Esc",
	}
	if name, ok := names[k]; ok {
		return name
	}
	return "?"
}
