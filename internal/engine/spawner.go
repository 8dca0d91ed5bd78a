package engine

import "github.com/dkarpov/arcadium/internal/core"

// spawner drives the configured spawn streams. Each rule attempts at most
// one placement batch per tick: a candidate position is drawn from the
// rule's lanes or band and rejected if it sits within the minimum
// separation of any live entity or of a same-tick spawn. After the
// attempt cap the rule simply skips this tick.
type spawner struct {
	rules    []SpawnRule
	cooldown []int
	// positions spawned this tick, checked alongside live entities
	fresh []core.Vec2
}

func newSpawner(rules []SpawnRule) *spawner {
	sp := &spawner{
		rules:    rules,
		cooldown: make([]int, len(rules)),
	}
	sp.reset()
	return sp
}

func (sp *spawner) reset() {
	for i := range sp.rules {
		d := sp.rules[i].InitialDelay
		if d <= 0 {
			d = sp.rules[i].Every
		}
		sp.cooldown[i] = d
	}
	sp.fresh = sp.fresh[:0]
}

// tick runs every spawn rule once against the current difficulty level.
func (sp *spawner) tick(e *Engine) {
	sp.fresh = sp.fresh[:0]

	for i := range sp.rules {
		rule := &sp.rules[i]

		sp.cooldown[i]--
		if sp.cooldown[i] > 0 {
			continue
		}

		if rule.MaxLive > 0 && e.store.CountKind(rule.Kind) >= rule.MaxLive {
			sp.cooldown[i] = 1 // re-check next tick
			continue
		}

		pos, ok := sp.place(e, rule)
		if !ok {
			// Placement exhausted: skip this tick, retry on the next.
			sp.cooldown[i] = 1
			continue
		}

		ent := e.SpawnAt(rule.Kind, pos)
		ent.Tag = rule.Tag
		ent.Vel = rule.Vel.Scale(1 + rule.SpeedScale*e.difficulty)
		sp.fresh = append(sp.fresh, pos)

		interval := float64(rule.Every) * (1 - rule.RateScale*e.difficulty)
		if interval < 1 {
			interval = 1
		}
		sp.cooldown[i] = int(interval)
	}
}

// place draws candidate positions by rejection sampling until one clears
// the separation margin or the attempt cap runs out.
func (sp *spawner) place(e *Engine, rule *SpawnRule) (core.Vec2, bool) {
	for attempt := 0; attempt < rule.MaxAttempts; attempt++ {
		var x float64
		if len(rule.Lanes) > 0 {
			x = rule.Lanes[e.rng.Intn(len(rule.Lanes))]
		} else {
			x = rule.Band[0] + e.rng.Float64()*(rule.Band[1]-rule.Band[0])
		}
		pos := core.Vec(x, rule.Y)

		if rule.MinSeparation <= 0 || sp.clear(e, rule, pos) {
			return pos, true
		}
	}
	return core.Vec2{}, false
}

// clear reports whether pos keeps the minimum separation from every live
// entity and from positions already spawned this tick. All kinds count:
// a collectible must not land inside an obstacle any more than inside
// another collectible.
func (sp *spawner) clear(e *Engine, rule *SpawnRule, pos core.Vec2) bool {
	ok := true
	e.store.ForEach(func(other *Entity) {
		if other.Pos.Sub(pos).Len() < rule.MinSeparation {
			ok = false
		}
	})
	if !ok {
		return false
	}
	for _, p := range sp.fresh {
		if p.Sub(pos).Len() < rule.MinSeparation {
			return false
		}
	}
	return true
}
