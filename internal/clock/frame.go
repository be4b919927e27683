package clock

import "time"

// TimeSource returns the current wall time.
type TimeSource func() time.Time

// FrameClock turns wall time into per-frame deltas for a Scheduler.
// Large gaps (window dragged, process suspended) are clamped so the field
// never jumps more than MaxDelta in one frame. While paused, Tick returns 0.
type FrameClock struct {
	now      TimeSource
	last     time.Time
	maxDelta time.Duration
	paused   bool
}

func NewFrameClock(maxDelta time.Duration, now TimeSource) *FrameClock {
	if now == nil {
		now = time.Now
	}
	return &FrameClock{
		now:      now,
		last:     now(),
		maxDelta: maxDelta,
	}
}

// Tick returns the time elapsed since the previous Tick.
func (c *FrameClock) Tick() time.Duration {
	t := c.now()
	delta := t.Sub(c.last)
	c.last = t
	if c.paused || delta < 0 {
		return 0
	}
	if c.maxDelta > 0 && delta > c.maxDelta {
		delta = c.maxDelta
	}
	return delta
}

func (c *FrameClock) Pause() {
	c.paused = true
}

func (c *FrameClock) Resume() {
	if !c.paused {
		return
	}
	c.paused = false
	c.last = c.now()
}

// Toggle flips the pause state and reports whether the clock is now paused.
func (c *FrameClock) Toggle() bool {
	if c.paused {
		c.Resume()
	} else {
		c.Pause()
	}
	return c.paused
}

func (c *FrameClock) Paused() bool {
	return c.paused
}
