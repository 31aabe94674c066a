/*
Package sketch provides the small amount of shared machinery behind the
clickbox and car demo programs: a per-frame DrawList of flat colored shapes in
normalized device coordinates, edge-detected input, coordinate mapping from
window pixels to NDC, and an App that drives a Scene against a Renderer.

# Overview

Every frame the scene is updated from elapsed wall-clock time and redrawn
from scratch. There is no retained scene graph; the DrawList is pooled and
cleared between frames.

# Quick Start

	renderer, _ := opengl.NewRenderer(800, 600)
	app := sketch.New(renderer, scene, sketch.WithClearColor(bg))

	for !window.ShouldClose() && !app.ShouldClose() {
	    input := adapter.Update()
	    if err := app.Frame(input, adapter.WindowSize(), glfw.GetTime()); err != nil {
	        return err
	    }
	    window.SwapBuffers()
	}

# Coordinates

All drawing happens in NDC: X and Y run from -1 to 1 with the origin in the
center and Y pointing up. Viewport.ToNDC converts cursor positions, which GLFW
reports in window coordinates with Y pointing down.

# Transforms

DrawList.PushTransform multiplies an mgl32.Mat4 onto every vertex added until
the matching PopTransform, in the same order as composing model matrices:

	dl.PushTransform(mgl32.Translate3D(x, y, 0).Mul4(mgl32.Scale3D(s, s, 1)))
	dl.AddRectCentered(sketch.Vec2{}, 0.2, 0.2, color)
	dl.PopTransform()
*/
package sketch
