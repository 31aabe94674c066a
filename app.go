package sketch

import (
	"fmt"

	"go.uber.org/zap"
)

// Renderer is the interface for rendering draw data.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// Frame is the per-frame state handed to a Scene.
type Frame struct {
	Input     *InputState
	Window    Viewport // window size in screen coordinates, matches cursor space
	Time      float64  // seconds since the first frame; fold with Phase before float32 math
	DeltaTime float32  // seconds since the previous frame

	closeRequested bool
}

// RequestClose asks the host loop to stop after this frame.
func (f *Frame) RequestClose() {
	f.closeRequested = true
}

// CursorNDC returns the cursor position in normalized device coordinates.
func (f *Frame) CursorNDC() Vec2 {
	if f.Input == nil {
		return Vec2{}
	}
	return f.Window.ToNDC(float64(f.Input.MouseX), float64(f.Input.MouseY))
}

// Scene is a program driven by App: a model updated once per frame and
// redrawn from scratch into a DrawList.
type Scene interface {
	Update(f *Frame)
	Draw(dl *DrawList, f *Frame)
}

// App drives a Scene against a Renderer one frame at a time.
type App struct {
	renderer   Renderer
	scene      Scene
	log        *zap.Logger
	clock      Clock
	clearColor Color
	quitKey    Key
	frames     uint64
	closing    bool
}

// AppOption configures an App instance.
type AppOption func(*App)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(log *zap.Logger) AppOption {
	return func(a *App) {
		if log != nil {
			a.log = log
		}
	}
}

// WithClearColor sets the background color.
func WithClearColor(c Color) AppOption {
	return func(a *App) { a.clearColor = c }
}

// WithQuitKey sets the key that closes the app. KeyNone disables it.
func WithQuitKey(k Key) AppOption {
	return func(a *App) { a.quitKey = k }
}

// New creates a new App.
func New(renderer Renderer, scene Scene, opts ...AppOption) *App {
	a := &App{
		renderer:   renderer,
		scene:      scene,
		log:        zap.NewNop(),
		clearColor: Color{R: 0, G: 0, B: 0, A: 1},
		quitKey:    KeyEscape,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// ClearColor returns the background color the backend should clear to.
func (a *App) ClearColor() Color {
	return a.clearColor
}

// Frames returns the number of frames rendered so far.
func (a *App) Frames() uint64 {
	return a.frames
}

// ShouldClose reports whether the quit key or the scene asked to stop.
func (a *App) ShouldClose() bool {
	return a.closing
}

// Resize forwards a framebuffer size change to the renderer.
func (a *App) Resize(fb Viewport) {
	if !fb.Valid() {
		return
	}
	a.renderer.Resize(fb.Width, fb.Height)
	a.log.Debug("framebuffer resized", zap.Int("width", fb.Width), zap.Int("height", fb.Height))
}

// Frame advances the scene to now (seconds) and renders it.
func (a *App) Frame(input *InputState, window Viewport, now float64) error {
	dt := a.clock.Tick(now)
	f := Frame{
		Input:     input,
		Window:    window,
		Time:      a.clock.Elapsed(),
		DeltaTime: dt,
	}

	if input != nil && a.quitKey != KeyNone && input.KeyPressed(a.quitKey) {
		f.RequestClose()
	}

	a.scene.Update(&f)

	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)
	dl.FontTextureID = a.renderer.FontTextureID()

	a.scene.Draw(dl, &f)

	if err := a.renderer.Render(dl); err != nil {
		return fmt.Errorf("render frame %d: %w", a.frames, err)
	}
	a.frames++

	if f.closeRequested && !a.closing {
		a.closing = true
		a.log.Debug("close requested", zap.Uint64("frames", a.frames))
	}
	return nil
}
