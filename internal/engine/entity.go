// Package engine implements the shared real-time 2D simulation core that
// every arcade game variant configures with its own constants and shapes:
// entity lifecycle, fixed-timestep kinematics, collision detection and
// resolution, spawn policy, timed effects, and the session state machine.
//
// The engine is single-threaded by design. One fixed-timestep update owns
// all state; hosts embedding it in a concurrent environment must serialize
// every call (single-writer discipline).
package engine

import (
	"strconv"

	"github.com/dkarpov/arcadium/internal/core"
)

// Kind tags an entity with its role in the simulation. Collision pair rules
// and per-kind physics constants are keyed by Kind.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindProjectile
	KindObstacle
	KindCollectible
	KindParticle
	KindNPC
	KindCount // sentinel
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindProjectile:
		return "projectile"
	case KindObstacle:
		return "obstacle"
	case KindCollectible:
		return "collectible"
	case KindParticle:
		return "particle"
	case KindNPC:
		return "npc"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ID is a stable entity handle: slot index in the low 32 bits, slot
// generation in the high 32 bits. A released slot bumps its generation, so
// stale handles from previous ticks miss instead of aliasing a new entity.
type ID uint64

const idSlotBits = 32

func makeID(slot int, gen uint32) ID {
	return ID(uint64(gen)<<idSlotBits | uint64(uint32(slot)))
}

func (id ID) slot() int {
	return int(uint32(id))
}

func (id ID) generation() uint32 {
	return uint32(uint64(id) >> idSlotBits)
}

// Valid reports whether the handle refers to any slot at all.
func (id ID) Valid() bool {
	return id != 0
}

// String returns the numeric handle, for logging and debugging.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Entity is a simulated object. Entities never reference each other by
// pointer; cross-references use IDs resolved through the Store each tick.
type Entity struct {
	ID   ID
	Kind Kind
	Tag  int // game-defined variant (brick type, power-up kind, lane index)

	Pos   core.Vec2
	Vel   core.Vec2
	Angle float64 // heading in radians, used by steering kinds

	Hits     int // remaining hits before destruction; 0 = destroyed on first hit
	Lifetime int // remaining ticks; 0 = unbounded

	// Active marks the entity as live. Inactive entities are excluded from
	// integration, collision, and spawn-overlap checks but stay in storage
	// until the end-of-tick sweep, so mid-tick removal never invalidates
	// iteration or other entities' references.
	Active bool

	prevPos core.Vec2 // position before this tick's integration
}

// Store owns all live entities in stable slots: a slab with a free list.
// Slots are reused, and each reuse bumps the slot generation so stale IDs
// resolve to nil rather than to the new occupant.
type Store struct {
	slots []*Entity
	gens  []uint32
	free  []int
	order []ID // insertion order of live entities, drives deterministic iteration
}

// NewStore creates an empty entity store.
func NewStore() *Store {
	return &Store{}
}

// Spawn allocates a new active entity of the given kind and returns it.
// The returned pointer stays valid until the sweep that releases the slot.
func (s *Store) Spawn(kind Kind) *Entity {
	var slot int
	if n := len(s.free); n > 0 {
		slot = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		slot = len(s.slots)
		s.slots = append(s.slots, nil)
		s.gens = append(s.gens, 1)
	}

	e := &Entity{
		ID:     makeID(slot, s.gens[slot]),
		Kind:   kind,
		Active: true,
	}
	s.slots[slot] = e
	s.order = append(s.order, e.ID)
	return e
}

// Get resolves an ID to its entity. Returns nil for stale or unknown
// handles; callers treat a miss as a no-op, never a fault. The entity may
// be inactive if it was deactivated earlier in the current tick.
func (s *Store) Get(id ID) *Entity {
	slot := id.slot()
	if slot < 0 || slot >= len(s.slots) {
		return nil
	}
	if s.gens[slot] != id.generation() {
		return nil
	}
	return s.slots[slot]
}

// Deactivate marks an entity inactive. The slot is reclaimed by the next
// Sweep. Stale handles are ignored.
func (s *Store) Deactivate(id ID) {
	if e := s.Get(id); e != nil {
		e.Active = false
	}
}

// ForEach calls fn for every active entity in insertion order.
func (s *Store) ForEach(fn func(*Entity)) {
	for _, id := range s.order {
		if e := s.Get(id); e != nil && e.Active {
			fn(e)
		}
	}
}

// ForEachKind calls fn for every active entity of the given kind, in
// insertion order.
func (s *Store) ForEachKind(kind Kind, fn func(*Entity)) {
	for _, id := range s.order {
		if e := s.Get(id); e != nil && e.Active && e.Kind == kind {
			fn(e)
		}
	}
}

// CountKind returns the number of active entities of the given kind.
func (s *Store) CountKind(kind Kind) int {
	n := 0
	s.ForEachKind(kind, func(*Entity) { n++ })
	return n
}

// Len returns the number of active entities.
func (s *Store) Len() int {
	n := 0
	s.ForEach(func(*Entity) { n++ })
	return n
}

// Sweep releases all inactive entities: their slots return to the free
// list and their generations bump, invalidating outstanding IDs. Returns
// the number of entities released. Called once at the end of each tick.
func (s *Store) Sweep() int {
	released := 0
	kept := s.order[:0]
	for _, id := range s.order {
		slot := id.slot()
		e := s.slots[slot]
		if e == nil || s.gens[slot] != id.generation() {
			continue
		}
		if e.Active {
			kept = append(kept, id)
			continue
		}
		s.slots[slot] = nil
		s.gens[slot]++
		s.free = append(s.free, slot)
		released++
	}
	s.order = kept
	return released
}

// Clear releases every entity, active or not. Used by session reset.
func (s *Store) Clear() {
	for _, id := range s.order {
		slot := id.slot()
		if s.slots[slot] != nil && s.gens[slot] == id.generation() {
			s.slots[slot] = nil
			s.gens[slot]++
			s.free = append(s.free, slot)
		}
	}
	s.order = s.order[:0]
}
