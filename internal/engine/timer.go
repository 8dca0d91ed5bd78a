package engine

// Effect identifies a named countdown effect (shield, widened paddle,
// weapon upgrade). Effects are opaque to the engine; games define their
// meaning through expiry actions.
type Effect string

// TimerPolicy controls what starting an already-active effect does.
type TimerPolicy uint8

const (
	// TimerReplace resets the existing timer's duration. This is the
	// default: it avoids unbounded stacking.
	TimerReplace TimerPolicy = iota
	// TimerStack keeps independent timers per Start call.
	TimerStack
)

// Owner scopes a timer. GlobalOwner marks session-wide effects; any other
// value is an entity ID.
const GlobalOwner ID = 0

type timer struct {
	effect    Effect
	owner     ID
	remaining int
	onExpire  func()
}

// Timers tracks named countdown effects and fires their expiry transitions.
// One decrement pass per tick, one expiry dispatch path.
type Timers struct {
	timers   []timer
	policies map[Effect]TimerPolicy
}

// NewTimers creates an empty timer service with the given per-effect
// policies (nil means every effect replaces).
func NewTimers(policies map[Effect]TimerPolicy) *Timers {
	return &Timers{policies: policies}
}

// Start begins a countdown for the effect on the owner. Negative durations
// clamp to zero and expire on the next Tick. If the effect is already
// active on the owner, the per-effect policy decides: replace (reset the
// duration and expiry action) or stack (independent timer).
func (t *Timers) Start(effect Effect, owner ID, durationTicks int, onExpire func()) {
	if durationTicks < 0 {
		durationTicks = 0
	}

	if t.policies[effect] == TimerReplace {
		for i := range t.timers {
			if t.timers[i].effect == effect && t.timers[i].owner == owner {
				t.timers[i].remaining = durationTicks
				t.timers[i].onExpire = onExpire
				return
			}
		}
	}

	t.timers = append(t.timers, timer{
		effect:    effect,
		owner:     owner,
		remaining: durationTicks,
		onExpire:  onExpire,
	})
}

// Tick decrements every timer by one and fires each expiry action exactly
// once, removing the timer. Expiry actions run after the removal pass, so
// an action may start new timers without being decremented this tick.
func (t *Timers) Tick() {
	var fired []func()
	kept := t.timers[:0]
	for i := range t.timers {
		t.timers[i].remaining--
		if t.timers[i].remaining <= 0 {
			if t.timers[i].onExpire != nil {
				fired = append(fired, t.timers[i].onExpire)
			}
			continue
		}
		kept = append(kept, t.timers[i])
	}
	t.timers = kept

	for _, fn := range fired {
		fn()
	}
}

// Active reports whether the effect is running for the owner.
func (t *Timers) Active(effect Effect, owner ID) bool {
	for i := range t.timers {
		if t.timers[i].effect == effect && t.timers[i].owner == owner {
			return true
		}
	}
	return false
}

// ActiveAny reports whether the effect is running for any owner.
func (t *Timers) ActiveAny(effect Effect) bool {
	for i := range t.timers {
		if t.timers[i].effect == effect {
			return true
		}
	}
	return false
}

// Remaining returns the largest remaining tick count for the effect on the
// owner, or 0 when inactive.
func (t *Timers) Remaining(effect Effect, owner ID) int {
	max := 0
	for i := range t.timers {
		if t.timers[i].effect == effect && t.timers[i].owner == owner && t.timers[i].remaining > max {
			max = t.timers[i].remaining
		}
	}
	return max
}

// Cancel removes every timer for the effect on the owner without firing
// its expiry action.
func (t *Timers) Cancel(effect Effect, owner ID) {
	kept := t.timers[:0]
	for i := range t.timers {
		if t.timers[i].effect == effect && t.timers[i].owner == owner {
			continue
		}
		kept = append(kept, t.timers[i])
	}
	t.timers = kept
}

// Clear removes all timers without firing expiry actions. Used by session
// reset.
func (t *Timers) Clear() {
	t.timers = t.timers[:0]
}

// Len returns the number of running timers.
func (t *Timers) Len() int {
	return len(t.timers)
}
