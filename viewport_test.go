package sketch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToNDC(t *testing.T) {
	v := Viewport{Width: 800, Height: 600}

	tests := []struct {
		name string
		x, y float64
		want Vec2
	}{
		{"top-left", 0, 0, Vec2{X: -1, Y: 1}},
		{"bottom-right", 800, 600, Vec2{X: 1, Y: -1}},
		{"center", 400, 300, Vec2{X: 0, Y: 0}},
		{"quarter", 200, 450, Vec2{X: -0.5, Y: -0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.ToNDC(tt.x, tt.y))
		})
	}
}

func TestNDCRoundTrip(t *testing.T) {
	v := Viewport{Width: 1280, Height: 720}
	for _, p := range []Vec2{{-1, 1}, {0.3, -0.7}, {0.99, 0.01}} {
		x, y := v.FromNDC(p)
		got := v.ToNDC(x, y)
		assert.InDelta(t, p.X, got.X, 1e-6)
		assert.InDelta(t, p.Y, got.Y, 1e-6)
	}
}

func TestInvalidViewport(t *testing.T) {
	var v Viewport
	assert.False(t, v.Valid())
	assert.Equal(t, Vec2{}, v.ToNDC(10, 10))
	x, y := v.FromNDC(Vec2{X: 1, Y: 1})
	assert.Zero(t, x)
	assert.Zero(t, y)
}
