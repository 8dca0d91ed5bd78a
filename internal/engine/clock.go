package engine

import "time"

// maxTicksPerAdvance bounds how many fixed steps a single host frame can
// afford. Beyond the cap the remainder is dropped, so a long host stall
// cannot snowball into an ever-growing tick debt.
const maxTicksPerAdvance = 8

// Clock converts irregular host frame timestamps into whole fixed-size
// simulation ticks using an accumulator: each frame adds its elapsed time,
// and the engine runs as many fixed steps as the accumulator can afford,
// carrying the remainder into the next frame. This keeps the simulation
// deterministic under variable frame delivery.
type Clock struct {
	step    time.Duration
	acc     time.Duration
	last    time.Time
	started bool
}

// NewClock creates a clock for the given tick rate (ticks per second).
func NewClock(tickRate int) *Clock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Clock{step: time.Second / time.Duration(tickRate)}
}

// Step returns the fixed tick duration.
func (c *Clock) Step() time.Duration {
	return c.step
}

// Advance feeds the accumulator with the elapsed time since the previous
// call and returns how many whole ticks to run. The first call primes the
// clock and returns zero. Non-monotonic timestamps contribute nothing.
func (c *Clock) Advance(now time.Time) int {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}

	elapsed := now.Sub(c.last)
	c.last = now
	if elapsed < 0 {
		elapsed = 0
	}
	c.acc += elapsed

	n := int(c.acc / c.step)
	if n > maxTicksPerAdvance {
		n = maxTicksPerAdvance
		c.acc = 0
		return n
	}
	c.acc -= time.Duration(n) * c.step
	return n
}

// Reset clears the accumulator and primes the clock on the next Advance.
func (c *Clock) Reset() {
	c.acc = 0
	c.started = false
}
