package opengl

import (
	"fmt"

	"github.com/go-theft-auto/sketch"
)

// Run drives app until the window is closed or the app asks to stop.
// Each iteration polls input, clears, renders one frame and swaps buffers,
// blocking on vsync when it is enabled.
func Run(win *Window, renderer *Renderer, app *sketch.App) error {
	adapter := NewGLFWInputAdapter(win.Window, app.Resize)
	app.Resize(adapter.FramebufferSize())

	for !win.ShouldClose() && !app.ShouldClose() {
		input := adapter.Update()

		renderer.Clear(app.ClearColor())
		if err := app.Frame(input, adapter.WindowSize(), win.Time()); err != nil {
			return fmt.Errorf("frame: %w", err)
		}

		win.SwapBuffers()
	}
	return nil
}
