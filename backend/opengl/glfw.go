package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/sketch"
)

// GLFWInputAdapter adapts GLFW input to sketch.InputState.
type GLFWInputAdapter struct {
	window   *glfw.Window
	input    *sketch.InputState
	onResize func(fb sketch.Viewport)
}

// NewGLFWInputAdapter creates a new GLFW input adapter. onResize, if not
// nil, is called with the new framebuffer size whenever it changes.
func NewGLFWInputAdapter(window *glfw.Window, onResize func(fb sketch.Viewport)) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window:   window,
		input:    sketch.NewInputState(),
		onResize: onResize,
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)
	window.SetFramebufferSizeCallback(adapter.framebufferSizeCallback)

	return adapter
}

// Update clears last frame's edges and polls events into the input state.
// Call this at the start of each frame.
func (a *GLFWInputAdapter) Update() *sketch.InputState {
	a.input.Reset()
	glfw.PollEvents()

	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	return a.input
}

// WindowSize returns the window size in screen coordinates, the space
// cursor positions are reported in.
func (a *GLFWInputAdapter) WindowSize() sketch.Viewport {
	w, h := a.window.GetSize()
	return sketch.Viewport{Width: w, Height: h}
}

// FramebufferSize returns the drawable size in pixels.
func (a *GLFWInputAdapter) FramebufferSize() sketch.Viewport {
	w, h := a.window.GetFramebufferSize()
	return sketch.Viewport{Width: w, Height: h}
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKeyToKey(key)
	if k == sketch.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwMouseButtonToButton(button)
	if b < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

func (a *GLFWInputAdapter) framebufferSizeCallback(w *glfw.Window, width, height int) {
	if a.onResize != nil {
		a.onResize(sketch.Viewport{Width: width, Height: height})
	}
}

// glfwKeyToKey maps GLFW keys to sketch keys.
func glfwKeyToKey(key glfw.Key) sketch.Key {
	switch key {
	case glfw.KeyEscape:
		return sketch.KeyEscape
	case glfw.KeySpace:
		return sketch.KeySpace
	case glfw.KeyR:
		return sketch.KeyR
	case glfw.KeyUp:
		return sketch.KeyUp
	case glfw.KeyDown:
		return sketch.KeyDown
	case glfw.KeyF1:
		return sketch.KeyF1
	default:
		return sketch.KeyNone
	}
}

// glfwMouseButtonToButton maps GLFW mouse buttons to sketch mouse buttons.
func glfwMouseButtonToButton(button glfw.MouseButton) sketch.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return sketch.MouseButtonLeft
	default:
		return -1
	}
}
