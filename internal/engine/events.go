package engine

import "github.com/dkarpov/arcadium/internal/core"

// EventKind classifies an engine event.
type EventKind uint8

const (
	// EventWallHit fires when a clamp or reflect boundary policy triggers.
	EventWallHit EventKind = iota
	// EventBounce fires for each pair resolved with ResolveBounce.
	EventBounce
	// EventScore fires whenever points are awarded.
	EventScore
	// EventDestroyed fires when a collision removes an entity.
	EventDestroyed
	// EventPickup fires when an Absorb resolution attaches an effect.
	EventPickup
	// EventLifeLost fires when a pair rule with LoseLife resolves.
	EventLifeLost
	// EventBurst requests a particle burst at the contact point.
	EventBurst
)

// Event is a per-tick notification emitted by the engine and consumed by
// the game layer (particle effects, sound cues, paddle english). Events are
// cleared at the start of each tick; hosts read them between ticks.
type Event struct {
	Kind       EventKind
	Entity     ID
	Other      ID
	EntityKind Kind
	OtherKind  Kind
	Edge       Edge
	Points     int
	Tag        int
	Effect     Effect
	At         core.Vec2
}

// eventQueue is a simple append-only per-tick buffer.
type eventQueue struct {
	events []Event
}

func (q *eventQueue) emit(ev Event) {
	q.events = append(q.events, ev)
}

func (q *eventQueue) clear() {
	q.events = q.events[:0]
}
