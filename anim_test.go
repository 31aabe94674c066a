package sketch

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOscillateRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		tm := float32(i) * 0.01
		for _, v := range []float32{Oscillate(tm, 1.2), OscillateCos(tm, 1.3)} {
			require.GreaterOrEqual(t, v, float32(0))
			require.LessOrEqual(t, v, float32(1))
		}
	}
	assert.InDelta(t, 0.5, Oscillate(0, 3), 1e-6)
	assert.InDelta(t, 1, OscillateCos(0, 3), 1e-6)
}

func TestPulse(t *testing.T) {
	assert.InDelta(t, 1, Pulse(0, 1, 0.5), 1e-6)
	assert.InDelta(t, 1.5, Pulse(1.5707964, 1, 0.5), 1e-6)
	assert.InDelta(t, 0.5, Pulse(-1.5707964, 1, 0.5), 1e-6)
}

func TestPhase(t *testing.T) {
	assert.InDelta(t, 1.5, Phase(1.5, 1, 2*math.Pi), 1e-6)
	assert.InDelta(t, 0.5, Phase(-1.5, 1, 2), 1e-6)
	assert.Zero(t, Phase(3, 1, 0))

	// A day in, the folded phase still steps by exactly one frame.
	day := 24 * 3600.0
	step := Phase(day+1.0/60, 1, 2*math.Pi) - Phase(day, 1, 2*math.Pi)
	assert.InDelta(t, 1.0/60, step, 1e-5)
	assert.InDelta(t, math.Sin(day), math32.Sin(Phase(day, 1, 2*math.Pi)), 1e-5)
}

func TestWrap(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float32
	}{
		{0, -1, 1, 0},
		{1, -1, 1, -1},
		{1.25, -1, 1, -0.75},
		{-1.25, -1, 1, 0.75},
		{5, 0, 2, 1},
		{-4, 0, 2, 0},
		{3, 2, 2, 2},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Wrap(tt.v, tt.lo, tt.hi), 1e-6, "Wrap(%v, %v, %v)", tt.v, tt.lo, tt.hi)
	}
}

func TestClock(t *testing.T) {
	var c Clock
	assert.Zero(t, c.Elapsed())
	assert.Zero(t, c.Tick(100))
	assert.Equal(t, float32(0.25), c.Tick(100.25))
	assert.Zero(t, c.Tick(100), "time going backwards yields zero")
	assert.Equal(t, float32(1), c.Tick(101))
	assert.Equal(t, 1.0, c.Elapsed())
}

func TestColorPacking(t *testing.T) {
	assert.Equal(t, ColorRed, RGBAf(1, 0, 0, 1))
	assert.Equal(t, ColorWhite, Color{R: 2, G: 1, B: 1, A: 1}.Packed(), "clamped")
	r, g, b, a := UnpackRGBA(RGBA(1, 2, 3, 4))
	assert.Equal(t, [4]uint8{1, 2, 3, 4}, [4]uint8{r, g, b, a})
}

func TestRect(t *testing.T) {
	r := RectFromCenter(Vec2{X: 0, Y: 0}, 0.5, 0.25)
	assert.Equal(t, Rect{X: -0.5, Y: -0.25, W: 1, H: 0.5}, r)

	assert.False(t, r.ContainsStrict(Vec2{X: -0.5, Y: 0}), "low edge")
	assert.False(t, r.ContainsStrict(Vec2{X: 0.5, Y: 0}), "high edge")
	assert.False(t, r.ContainsStrict(Vec2{X: 0, Y: 0.25}), "top edge")
	assert.True(t, r.ContainsStrict(Vec2{X: 0.1, Y: 0.1}))
	assert.True(t, r.ContainsStrict(Vec2{X: 0.4999, Y: -0.2499}))
}
