package engine

import (
	"testing"
	"time"
)

func TestClockAccumulatesWholeTicks(t *testing.T) {
	c := NewClock(60)
	base := time.Unix(0, 0)

	if n := c.Advance(base); n != 0 {
		t.Fatalf("priming Advance returned %d ticks, want 0", n)
	}

	// 25ms at 60Hz (step ~16.67ms) affords one tick with ~8.3ms left over.
	if n := c.Advance(base.Add(25 * time.Millisecond)); n != 1 {
		t.Errorf("25ms afforded %d ticks, want 1", n)
	}
	// Another 25ms: 33.3ms accumulated affords two ticks.
	if n := c.Advance(base.Add(50 * time.Millisecond)); n != 2 {
		t.Errorf("next 25ms afforded %d ticks, want 2", n)
	}
}

func TestClockRemainderCarries(t *testing.T) {
	c := NewClock(10) // step 100ms
	base := time.Unix(0, 0)
	c.Advance(base)

	if n := c.Advance(base.Add(90 * time.Millisecond)); n != 0 {
		t.Fatalf("90ms afforded %d ticks at 10Hz, want 0", n)
	}
	if n := c.Advance(base.Add(110 * time.Millisecond)); n != 1 {
		t.Errorf("carried remainder afforded %d ticks, want 1", n)
	}
}

func TestClockCapsStall(t *testing.T) {
	c := NewClock(60)
	base := time.Unix(0, 0)
	c.Advance(base)

	// A 5 second stall must not produce 300 ticks.
	n := c.Advance(base.Add(5 * time.Second))
	if n != maxTicksPerAdvance {
		t.Errorf("stall afforded %d ticks, want capped at %d", n, maxTicksPerAdvance)
	}

	// The dropped backlog must not leak into the next frame.
	if n := c.Advance(base.Add(5*time.Second + time.Millisecond)); n != 0 {
		t.Errorf("frame after stall afforded %d ticks, want 0", n)
	}
}

func TestClockNonMonotonicTime(t *testing.T) {
	c := NewClock(60)
	base := time.Unix(10, 0)
	c.Advance(base)

	if n := c.Advance(base.Add(-time.Second)); n != 0 {
		t.Errorf("backwards timestamp afforded %d ticks, want 0", n)
	}
}

func TestClockReset(t *testing.T) {
	c := NewClock(60)
	base := time.Unix(0, 0)
	c.Advance(base)
	c.Advance(base.Add(10 * time.Millisecond)) // partial accumulation

	c.Reset()
	if n := c.Advance(base.Add(time.Hour)); n != 0 {
		t.Errorf("first Advance after Reset returned %d ticks, want 0 (re-prime)", n)
	}
}
