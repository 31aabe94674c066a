package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// WindowConfig describes the window and context to create.
type WindowConfig struct {
	Width  int
	Height int
	Title  string
	VSync  bool
}

// Window owns the GLFW window and the library's global state.
type Window struct {
	*glfw.Window
	log *zap.Logger
}

// OpenWindow initialises GLFW, creates a 4.1 core context window, makes it
// current and loads the GL function pointers. The caller must be on the
// main OS thread and must call Close when done.
func OpenWindow(cfg WindowConfig, log *zap.Logger) (*Window, error) {
	if log == nil {
		log = zap.NewNop()
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	log.Debug("window opened",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.String("gl_version", gl.GoStr(gl.GetString(gl.VERSION))),
	)

	return &Window{Window: win, log: log}, nil
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	w.Window.Destroy()
	glfw.Terminate()
	w.log.Debug("window closed")
}

// Time returns seconds since GLFW was initialised.
func (w *Window) Time() float64 {
	return glfw.GetTime()
}
