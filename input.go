package sketch

import "strings"

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonCount
)

// Key represents a keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeySpace
	KeyR
	KeyUp
	KeyDown
	KeyF1
	KeyCount
)

// InputState holds input state for the current frame.
// This is typically populated by the backend from GLFW.
type InputState struct {
	// Cursor position in window pixels, origin top-left.
	MouseX, MouseY float32

	mouseDown    [MouseButtonCount]bool
	mouseClicked [MouseButtonCount]bool // True on the frame button was pressed

	keyDown    [KeyCount]bool
	keyPressed [KeyCount]bool // True on the frame key was pressed
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{}
}

// Reset clears per-frame input state.
// Call this at the start of each frame before collecting input.
func (s *InputState) Reset() {
	s.mouseClicked = [MouseButtonCount]bool{}
	s.keyPressed = [KeyCount]bool{}
}

// SetMousePos sets the mouse position.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

// SetMouseButton sets mouse button state.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}

	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down

	if down && !wasDown {
		s.mouseClicked[button] = true
	}
}

// SetKey sets key state. Held keys report a press only once.
func (s *InputState) SetKey(key Key, down bool) {
	if key < 0 || key >= KeyCount {
		return
	}

	wasDown := s.keyDown[key]
	s.keyDown[key] = down

	if down && !wasDown {
		s.keyPressed[key] = true
	}
}

// MouseClicked returns true if a mouse button was pressed this frame.
func (s *InputState) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseClicked[button]
}

// KeyPressed returns true if a key was pressed this frame.
func (s *InputState) KeyPressed(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	switch k {
	case KeyNone:
		return "--"
	case KeyEscape:
		return "Esc"
	case KeySpace:
		return "Space"
	case KeyR:
		return "R"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyF1:
		return "F1"
	}
	return "?"
}

// KeyHelp pairs a key with what it does in a scene.
type KeyHelp struct {
	Key    Key
	Action string
}

// HelpLine formats bindings for the on-screen help, e.g. "Space pause  R reset".
func HelpLine(bindings ...KeyHelp) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, KeyName(b.Key)+" "+b.Action)
	}
	return strings.Join(parts, "  ")
}
