package engine

import "github.com/dkarpov/arcadium/internal/core"

// ShapeType selects the narrow-phase test used for an entity kind.
type ShapeType uint8

const (
	ShapeRect ShapeType = iota
	ShapeCircle
)

// Shape is the collision footprint of an entity kind. Rect shapes may carry
// a hitbox shrink factor: the fraction of the full size trimmed off before
// overlap tests, making collisions more forgiving.
type Shape struct {
	Type   ShapeType
	W, H   float64 // rect extents
	R      float64 // circle radius
	Shrink float64 // rect only: fraction of full size removed (0 = exact)
}

// RectShape creates a rectangular shape with the given full extents.
func RectShape(w, h float64) Shape {
	return Shape{Type: ShapeRect, W: w, H: h}
}

// CircleShape creates a circular shape with the given radius.
func CircleShape(r float64) Shape {
	return Shape{Type: ShapeCircle, R: r}
}

// WithShrink returns the shape with a hitbox shrink factor applied.
func (s Shape) WithShrink(f float64) Shape {
	s.Shrink = core.ClampF(f, 0, 0.9)
	return s
}

// halfExtents returns the half-width and half-height of the shape's
// bounding box, before any hitbox shrink.
func (s Shape) halfExtents() core.Vec2 {
	if s.Type == ShapeCircle {
		return core.Vec(s.R, s.R)
	}
	return core.Vec(s.W/2, s.H/2)
}

// hitboxHalf returns half extents after hitbox shrink, for rect overlap
// tests.
func (s Shape) hitboxHalf() core.Vec2 {
	h := s.halfExtents()
	if s.Type == ShapeRect && s.Shrink > 0 {
		h = h.Scale(1 - s.Shrink)
	}
	return h
}

// Edge identifies one side of the simulation bounds.
type Edge uint8

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

// String returns a human-readable name for the edge.
func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeTop:
		return "top"
	default:
		return "bottom"
	}
}

// BoundaryPolicy controls what happens when an entity crosses one edge of
// the simulation bounds.
type BoundaryPolicy uint8

const (
	// BoundaryNone lets the entity leave the bounds freely.
	BoundaryNone BoundaryPolicy = iota
	// BoundaryClamp pins the entity at the edge and zeroes the velocity
	// component into the wall.
	BoundaryClamp
	// BoundaryReflect pins the entity at the edge and reverses the velocity
	// component, scaled by the kind's restitution.
	BoundaryReflect
	// BoundaryWrap teleports the entity to the opposite edge once it has
	// fully left the bounds.
	BoundaryWrap
)

// KindParams are the per-kind physics constants. Every game variant supplies
// its own table; the engine itself carries no tuning.
type KindParams struct {
	Shape Shape

	MaxSpeed float64 // speed cap, units/s
	Drag     float64 // velocity multiplier per tick; 0 is normalized to 1 (no drag)
	Gravity  float64 // constant downward acceleration, units/s²

	// Input-driven movement. InputDriven kinds read the held action set each
	// tick. Steering kinds integrate a heading with a speed-sensitive turn
	// rate and derive velocity from it; others accelerate per axis.
	InputDriven bool
	Accel       float64 // input acceleration, units/s²
	Steering    bool
	TurnRate    float64 // radians/s at full speed

	Restitution float64 // speed fraction kept after a boundary reflect

	Edges [4]BoundaryPolicy // indexed by Edge

	Hits     int // default remaining hits for new entities
	Lifetime int // default lifetime in ticks; 0 = unbounded
}

// AllEdges is a convenience constructor for a uniform boundary policy.
func AllEdges(p BoundaryPolicy) [4]BoundaryPolicy {
	return [4]BoundaryPolicy{p, p, p, p}
}

// Resolution is the data-driven outcome applied when a configured kind pair
// overlaps.
type Resolution uint8

const (
	// ResolveDestroyBoth removes both entities (hits-aware).
	ResolveDestroyBoth Resolution = iota
	// ResolveDestroyOneScore removes the Destroy target and awards points;
	// when the rule carries a restitution the survivor reflects along the
	// collision normal.
	ResolveDestroyOneScore
	// ResolveBounce reflects each entity's velocity component along the
	// collision normal, scaled by the rule's restitution.
	ResolveBounce
	// ResolveAbsorb removes the Destroy target and attaches a timed effect
	// to the survivor through the timer service.
	ResolveAbsorb
	// ResolveBlock cancels the movement that caused the overlap, as used for
	// solid-obstacle traversal.
	ResolveBlock
)

// Target selects which side of a pair a destructive resolution removes.
type Target uint8

const (
	TargetNone Target = iota
	TargetA
	TargetB
	TargetBoth
)

// PairRule configures collision behavior for one ordered kind pair.
// Rules are evaluated in the order they appear in the config; within a rule,
// entities pair up in insertion order. That fixed ordering is the tie-break
// for simultaneous hits in one tick.
type PairRule struct {
	A, B    Kind
	Resolve Resolution
	Destroy Target // which side is removed (DestroyOneScore, Absorb)

	Points int  // base points for this pair
	Scored bool // award through the streak engine (base + bonus)

	Restitution float64 // bounce energy retention, ≤ 1

	Effect      Effect // Absorb: effect started on the surviving entity
	EffectTicks int

	LoseLife bool // decrement lives and reset the scoring streak
	Burst    bool // request a particle burst at the contact point
}

// SpawnRule configures one spawn stream: what kind to create, where
// candidates are drawn from, and how placement is constrained. At most one
// spawn attempt batch runs per rule per tick.
type SpawnRule struct {
	Kind Kind
	Tag  int

	Every        int // base interval between spawns, in ticks
	InitialDelay int // ticks before the first spawn

	// Placement: a fixed lane set or a continuous horizontal band.
	Lanes []float64  // candidate x positions; empty means use Band
	Band  [2]float64 // min/max x for uniform sampling
	Y     float64    // spawn row

	Vel core.Vec2 // initial velocity before difficulty scaling

	// Difficulty scaling against the engine's externally-advanced level
	// (0..1): spawn interval shrinks by RateScale, speed grows by SpeedScale.
	RateScale  float64
	SpeedScale float64

	MinSeparation float64 // rejection-sampling margin against live entities
	MaxAttempts   int     // candidate draws per tick before giving up; default 5
	MaxLive       int     // skip spawning while this many of Kind are live; 0 = unlimited
}

// Rules are the session-level predicates and constants of a game variant.
type Rules struct {
	Lives int

	// Loss and Win are evaluated once per tick from the current engine
	// state. A nil predicate never fires.
	Loss func(*Engine) bool
	Win  func(*Engine) bool

	// AdvanceOnWin loops a met win condition into the next, harder wave via
	// OnWave; otherwise winning terminates the session.
	AdvanceOnWin bool
	WaveDelay    int // ticks spent in LevelComplete before the next wave

	// EndBonus computes extra points added to the final reported score.
	EndBonus func(Session) int
}

// Config assembles a complete game variant: bounds, timestep, the per-kind
// parameter table, the pair rule list, spawn streams, scoring constants,
// and session rules.
type Config struct {
	Width, Height float64 // simulation bounds; entities live in [0,W)×[0,H)
	DT            float64 // fixed tick duration in seconds
	Seed          int64

	Kinds  map[Kind]KindParams
	Pairs  []PairRule
	Spawns []SpawnRule

	Scoring Scoring
	Rules   Rules

	// OnWave populates entities for a wave. Called with level 1 on Start and
	// with the incremented level on each wave advance.
	OnWave func(*Engine, int)

	// OnEffectExpire fires when an Absorb-attached effect runs out.
	OnEffectExpire func(Effect, ID)

	// OnGameOver receives the final score exactly once when the session
	// reaches its terminal state.
	OnGameOver func(int)

	// TimerPolicies overrides the default replace policy per effect.
	TimerPolicies map[Effect]TimerPolicy
}

// normalize fills config defaults in place.
func (c *Config) normalize() {
	if c.DT == 0 {
		c.DT = 1.0 / 60
	}
	if c.Seed == 0 {
		c.Seed = 1
	}
	for k, p := range c.Kinds {
		if p.Drag == 0 {
			p.Drag = 1
		}
		c.Kinds[k] = p
	}
	for i := range c.Spawns {
		if c.Spawns[i].MaxAttempts <= 0 {
			c.Spawns[i].MaxAttempts = 5
		}
		if c.Spawns[i].Every <= 0 {
			c.Spawns[i].Every = 1
		}
	}
	if c.Scoring.Cap == 0 {
		c.Scoring.Cap = 10
	}
}
