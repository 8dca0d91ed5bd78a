package drift

import (
	"math"
)

// Snapshot captures the full game state for deterministic replay testing.
type Snapshot struct {
	Tick       uint64
	Score      int
	Level      int
	Streak     int
	State      string
	BoostTicks int

	EntityCount int
	EntityData  []uint64
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	es := g.eng.Snapshot()

	data := make([]uint64, 0, len(es.Entities)*6)
	for i := range es.Entities {
		ent := &es.Entities[i]
		data = append(data,
			uint64(ent.Kind),
			math.Float64bits(ent.Pos.X),
			math.Float64bits(ent.Pos.Y),
			math.Float64bits(ent.Vel.X),
			math.Float64bits(ent.Vel.Y),
			math.Float64bits(ent.Angle),
		)
	}

	return Snapshot{
		Tick:        es.Session.Ticks,
		Score:       es.Session.Score,
		Level:       es.Session.Level,
		Streak:      es.Session.Streak,
		State:       es.Session.State.String(),
		BoostTicks:  g.eng.Timers().Remaining(EffectBoost, g.car),
		EntityCount: len(es.Entities),
		EntityData:  data,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Streak)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BoostTicks)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EntityCount) //#nosec G115 -- hash computation
	for _, v := range snap.EntityData {
		h = h*31 + v
	}
	return h
}
