package sketch

// Clock turns absolute timestamps into per-frame deltas.
// The zero value is ready to use.
type Clock struct {
	start   float64
	last    float64
	started bool
}

// Tick records now (seconds) and returns the time since the previous tick.
// The first tick returns 0. Time going backwards also yields 0.
func (c *Clock) Tick(now float64) float32 {
	if !c.started {
		c.start = now
		c.last = now
		c.started = true
		return 0
	}
	dt := now - c.last
	c.last = now
	if dt < 0 {
		return 0
	}
	return float32(dt)
}

// Elapsed returns seconds between the first and the last tick.
func (c *Clock) Elapsed() float64 {
	if !c.started {
		return 0
	}
	return c.last - c.start
}
