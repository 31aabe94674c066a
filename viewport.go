package sketch

// Viewport is the framebuffer size in pixels.
type Viewport struct {
	Width, Height int
}

// Valid reports whether both dimensions are positive.
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// ToNDC maps window pixel coordinates (origin top-left, Y down) to
// normalized device coordinates (origin center, Y up, range -1..1).
// An invalid viewport maps everything to the origin.
func (v Viewport) ToNDC(x, y float64) Vec2 {
	if !v.Valid() {
		return Vec2{}
	}
	return Vec2{
		X: float32(x/(float64(v.Width)/2.0) - 1.0),
		Y: float32(1.0 - y/(float64(v.Height)/2.0)),
	}
}

// FromNDC is the inverse of ToNDC.
func (v Viewport) FromNDC(p Vec2) (x, y float64) {
	if !v.Valid() {
		return 0, 0
	}
	x = (float64(p.X) + 1.0) * float64(v.Width) / 2.0
	y = (1.0 - float64(p.Y)) * float64(v.Height) / 2.0
	return x, y
}
