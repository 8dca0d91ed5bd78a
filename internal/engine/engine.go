package engine

import (
	"math/rand"
	"time"

	"github.com/dkarpov/arcadium/internal/core"
)

// Engine owns all simulation state for one game session: the entity store,
// the timer service, the session record, the spawner, and the per-tick
// event queue. All mutation happens inside Tick; a host reads snapshots
// between ticks and must never mutate engine state.
type Engine struct {
	cfg Config

	store   *Store
	timers  *Timers
	spawner *spawner
	session Session
	events  eventQueue
	rng     *rand.Rand
	clock   *Clock

	difficulty float64
	waveTimer  int
	reported   bool
}

// New creates an engine for the given variant configuration, in the Idle
// state.
func New(cfg Config) *Engine {
	cfg.normalize()
	e := &Engine{cfg: cfg}
	e.Reset()
	return e
}

// Reset performs a full atomic reinitialization: entity store, timer
// service, session, RNG, spawner, and event queue together, never
// partially. From any state it yields the identical Idle snapshot, so
// resetting twice is the same as resetting once.
func (e *Engine) Reset() {
	e.store = NewStore()
	e.timers = NewTimers(e.cfg.TimerPolicies)
	e.spawner = newSpawner(e.cfg.Spawns)
	e.session = Session{
		Lives: e.cfg.Rules.Lives,
		Level: 1,
		State: StateIdle,
	}
	e.events.clear()
	e.rng = rand.New(rand.NewSource(e.cfg.Seed))
	e.clock = NewClock(int(1/e.cfg.DT + 0.5))
	e.difficulty = 0
	e.waveTimer = 0
	e.reported = false
}

// Start moves the session from Idle to Playing and populates the first
// wave. Ignored in any other state.
func (e *Engine) Start() {
	if e.session.State != StateIdle {
		return
	}
	e.session.State = StatePlaying
	if e.cfg.OnWave != nil {
		e.cfg.OnWave(e, e.session.Level)
	}
}

// TogglePause flips between Playing and Paused. Pause is a scheduling
// gate, not a teardown: entity and timer state stays resident and the last
// snapshot remains renderable.
func (e *Engine) TogglePause() {
	switch e.session.State {
	case StatePlaying:
		e.session.State = StatePaused
	case StatePaused:
		e.session.State = StatePlaying
	}
}

// Tick runs one fixed simulation step: integrate kinematics, spawn,
// resolve collisions, advance timers, re-evaluate the session state, then
// sweep inactive entities. All mutation for the tick completes before it
// returns.
func (e *Engine) Tick(in core.InputFrame) {
	e.events.clear()

	// Edge events first: they drive transitions even while frozen.
	if in.WasPressed(core.ActionConfirm) || in.WasPressed(core.ActionFire) {
		e.Start()
	}
	if in.WasPressed(core.ActionPause) {
		e.TogglePause()
	}

	switch e.session.State {
	case StateIdle, StatePaused, StateGameOver:
		return
	case StateLevelComplete:
		e.waveTimer--
		if e.waveTimer <= 0 {
			e.nextWave()
		}
		return
	}

	e.session.Ticks++

	e.integrate(in)
	e.spawner.tick(e)
	e.collide()
	e.timers.Tick()
	e.evalState()
	e.store.Sweep()
}

// Advance feeds the accumulator with a host frame timestamp and runs as
// many fixed ticks as it affords, reusing the same input frame. Edge
// events are consumed after the first tick so a single key press cannot
// toggle twice. Returns the number of ticks run.
func (e *Engine) Advance(now time.Time, in core.InputFrame) int {
	n := e.clock.Advance(now)
	for i := 0; i < n; i++ {
		e.Tick(in)
		in.ClearPressed()
	}
	return n
}

// nextWave advances the level and repopulates through the wave callback.
func (e *Engine) nextWave() {
	e.session.Level++
	e.session.State = StatePlaying
	if e.cfg.OnWave != nil {
		e.cfg.OnWave(e, e.session.Level)
	}
}

// SpawnAt creates an active entity at the position with the kind's default
// hits and lifetime applied.
func (e *Engine) SpawnAt(kind Kind, pos core.Vec2) *Entity {
	ent := e.store.Spawn(kind)
	p := e.cfg.Kinds[kind]
	ent.Pos = pos
	ent.prevPos = pos
	ent.Hits = p.Hits
	ent.Lifetime = p.Lifetime
	return ent
}

// Kind returns the current parameters for an entity kind.
func (e *Engine) Kind(kind Kind) KindParams {
	return e.cfg.Kinds[kind]
}

// SetKind replaces the parameters for an entity kind, taking effect on the
// next tick. Games use this for timed effects that change physics, like a
// widened paddle or a speed boost.
func (e *Engine) SetKind(kind Kind, p KindParams) {
	e.cfg.Kinds[kind] = p
}

// SetDifficulty sets the externally-advancing difficulty level, clamped to
// [0, 1]. Spawn rates and spawn speeds scale against it.
func (e *Engine) SetDifficulty(level float64) {
	e.difficulty = core.ClampF(level, 0, 1)
}

// Difficulty returns the current difficulty level.
func (e *Engine) Difficulty() float64 {
	return e.difficulty
}

// Store exposes the entity store for game-layer queries and spawns.
func (e *Engine) Store() *Store {
	return e.store
}

// Timers exposes the timer service for game-layer effects.
func (e *Engine) Timers() *Timers {
	return e.timers
}

// Session returns a copy of the current session record.
func (e *Engine) Session() Session {
	return e.session
}

// Rand exposes the engine's seeded RNG so game-layer randomness stays
// reproducible under the session seed.
func (e *Engine) Rand() *rand.Rand {
	return e.rng
}

// Events returns the events emitted by the most recent tick. The slice is
// valid until the next tick; hosts copy what they keep.
func (e *Engine) Events() []Event {
	return e.events.events
}

// Snapshot is the immutable between-ticks view consumed by the render
// collaborator: value copies of all active entities in insertion order
// plus the session record.
type Snapshot struct {
	Entities   []Entity
	Session    Session
	Difficulty float64
}

// Snapshot captures the current state. The returned value shares nothing
// with engine storage.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Session:    e.session,
		Difficulty: e.difficulty,
	}
	e.store.ForEach(func(ent *Entity) {
		snap.Entities = append(snap.Entities, *ent)
	})
	return snap
}
