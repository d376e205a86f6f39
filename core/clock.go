package core

// FrameClock derives per-frame delta time from a monotonic time source in
// seconds (glfw.GetTime in the viewers).
type FrameClock struct {
	now      func() float64
	maxDelta float64

	started   bool
	current   float64
	lastFrame float64
	delta     float64
}

// NewFrameClock returns a clock reading now. A positive maxDelta caps the
// delta reported after a stall.
func NewFrameClock(now func() float64, maxDelta float64) *FrameClock {
	return &FrameClock{now: now, maxDelta: maxDelta}
}

// Tick samples the time source. The first tick reports a zero delta.
func (c *FrameClock) Tick() float32 {
	c.current = c.now()
	if !c.started {
		c.started = true
		c.lastFrame = c.current
	}
	c.delta = c.current - c.lastFrame
	if c.delta < 0 {
		c.delta = 0
	}
	if c.maxDelta > 0 && c.delta > c.maxDelta {
		c.delta = c.maxDelta
	}
	c.lastFrame = c.current
	return float32(c.delta)
}

// Delta is the value returned by the last Tick.
func (c *FrameClock) Delta() float32 {
	return float32(c.delta)
}

// Time is the time source value sampled by the last Tick.
func (c *FrameClock) Time() float32 {
	return float32(c.current)
}
