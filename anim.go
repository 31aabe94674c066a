package sketch

import (
	"math"

	"github.com/chewxy/math32"
)

// Oscillate maps sin(freq*t) from [-1, 1] into [0, 1].
func Oscillate(t, freq float32) float32 {
	return (math32.Sin(freq*t) + 1) / 2
}

// OscillateCos is Oscillate with a cosine, a quarter period ahead.
func OscillateCos(t, freq float32) float32 {
	return (math32.Cos(freq*t) + 1) / 2
}

// Pulse returns base + amp*sin(t), a value in [base-amp, base+amp].
func Pulse(t, base, amp float32) float32 {
	return base + amp*math32.Sin(t)
}

// Phase returns rate*t folded into [0, period) as a float32. Long-running
// animation clocks are kept in float64 and passed through Phase so the
// float32 trig that follows sees a small argument.
func Phase(t float64, rate float32, period float64) float32 {
	if period <= 0 {
		return 0
	}
	p := math.Mod(float64(rate)*t, period)
	if p < 0 {
		p += period
	}
	return float32(p)
}

// Wrap folds v periodically into [lo, hi).
// If hi <= lo, lo is returned.
func Wrap(v, lo, hi float32) float32 {
	span := hi - lo
	if span <= 0 {
		return lo
	}
	r := math32.Mod(v-lo, span)
	if r < 0 {
		r += span
	}
	// Mod can round up to exactly span for tiny negative inputs.
	if r >= span {
		r = 0
	}
	return lo + r
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	return clampf(v, lo, hi)
}
