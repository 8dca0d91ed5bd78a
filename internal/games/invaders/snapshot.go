package invaders

import "math"

// Snapshot contains the observable game state, flattened to primitive
// values for determinism checks and headless inspection.
type Snapshot struct {
	Tick   uint64
	Score  int
	Lives  int
	Level  int
	Streak int
	State  string

	ShieldTicks int

	// Each entity contributes 6 values: kind, tag, and the raw bits of
	// position and velocity.
	EntityCount int
	EntityData  []uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	es := g.eng.Snapshot()

	data := make([]uint64, 0, len(es.Entities)*6)
	for _, ent := range es.Entities {
		data = append(data,
			uint64(ent.Kind),
			uint64(ent.Tag), //#nosec G115 -- tags are small non-negative constants
			math.Float64bits(ent.Pos.X),
			math.Float64bits(ent.Pos.Y),
			math.Float64bits(ent.Vel.X),
			math.Float64bits(ent.Vel.Y),
		)
	}

	return Snapshot{
		Tick:        es.Session.Ticks,
		Score:       es.Session.Score,
		Lives:       es.Session.Lives,
		Level:       es.Session.Level,
		Streak:      es.Session.Streak,
		State:       es.Session.State.String(),
		ShieldTicks: g.eng.Timers().Remaining(EffectShield, g.ship),
		EntityCount: len(es.Entities),
		EntityData:  data,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Streak)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShieldTicks) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EntityCount) //#nosec G115 -- hash computation
	for _, v := range snap.EntityData {
		h = h*31 + v
	}
	return h
}
