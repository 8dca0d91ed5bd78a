package engine

import (
	"math"

	"github.com/dkarpov/arcadium/internal/core"
)

// CirclesOverlap reports whether two circles overlap: Euclidean distance
// between centers at most the sum of radii.
func CirclesOverlap(c1 core.Vec2, r1 float64, c2 core.Vec2, r2 float64) bool {
	return c2.Sub(c1).Len() <= r1+r2
}

// RectsOverlap reports whether two center-positioned axis-aligned boxes
// with the given half extents overlap.
func RectsOverlap(c1, half1, c2, half2 core.Vec2) bool {
	if math.Abs(c1.X-c2.X) >= half1.X+half2.X {
		return false
	}
	if math.Abs(c1.Y-c2.Y) >= half1.Y+half2.Y {
		return false
	}
	return true
}

// RectCircleOverlap tests a center-positioned box against a circle by
// clamping the circle center into the box and comparing the clamped
// distance against the radius. Returns the clamp point for normal
// derivation.
func RectCircleOverlap(rc, half core.Vec2, cc core.Vec2, r float64) (bool, core.Vec2) {
	closest := core.Vec(
		core.ClampF(cc.X, rc.X-half.X, rc.X+half.X),
		core.ClampF(cc.Y, rc.Y-half.Y, rc.Y+half.Y),
	)
	return cc.Sub(closest).Len() <= r, closest
}

// contact is the outcome of one narrow-phase test: whether the shapes
// overlap, the collision normal pointing from a toward b, and the contact
// point.
type contact struct {
	hit    bool
	normal core.Vec2
	at     core.Vec2
}

// testPair runs the narrow-phase test appropriate to the two kinds' shapes.
func testPair(a *Entity, sa Shape, b *Entity, sb Shape) contact {
	switch {
	case sa.Type == ShapeCircle && sb.Type == ShapeCircle:
		return circleCircle(a, sa, b, sb)
	case sa.Type == ShapeRect && sb.Type == ShapeRect:
		return rectRect(a, sa, b, sb)
	case sa.Type == ShapeRect && sb.Type == ShapeCircle:
		c := circleRect(b, sb, a, sa)
		c.normal = c.normal.Scale(-1)
		return c
	default: // circle vs rect
		return circleRect(a, sa, b, sb)
	}
}

func circleCircle(a *Entity, sa Shape, b *Entity, sb Shape) contact {
	if !CirclesOverlap(a.Pos, sa.R, b.Pos, sb.R) {
		return contact{}
	}
	n := b.Pos.Sub(a.Pos).Normalized()
	if n == (core.Vec2{}) {
		n = core.Vec(0, -1) // coincident centers: arbitrary fixed normal
	}
	return contact{
		hit:    true,
		normal: n,
		at:     a.Pos.Add(n.Scale(sa.R)),
	}
}

func rectRect(a *Entity, sa Shape, b *Entity, sb Shape) contact {
	ha, hb := sa.hitboxHalf(), sb.hitboxHalf()
	if !RectsOverlap(a.Pos, ha, b.Pos, hb) {
		return contact{}
	}

	// Normal along the axis of least penetration.
	dx := b.Pos.X - a.Pos.X
	dy := b.Pos.Y - a.Pos.Y
	px := ha.X + hb.X - math.Abs(dx)
	py := ha.Y + hb.Y - math.Abs(dy)

	var n core.Vec2
	if px < py {
		n = core.Vec(math.Copysign(1, dx), 0)
	} else {
		n = core.Vec(0, math.Copysign(1, dy))
	}
	return contact{
		hit:    true,
		normal: n,
		at:     a.Pos.Add(b.Pos.Sub(a.Pos).Scale(0.5)),
	}
}

// circleRect tests circle a against rect b using the clamp-then-distance
// algorithm.
func circleRect(a *Entity, sa Shape, b *Entity, sb Shape) contact {
	hit, closest := RectCircleOverlap(b.Pos, sb.hitboxHalf(), a.Pos, sa.R)
	if !hit {
		return contact{}
	}
	// Normal from circle toward rect. With the circle center inside the
	// rect the clamp point coincides with the center; fall back to the
	// least-penetration axis.
	n := closest.Sub(a.Pos).Normalized()
	if n == (core.Vec2{}) {
		d := b.Pos.Sub(a.Pos)
		if math.Abs(d.X) > math.Abs(d.Y) {
			n = core.Vec(math.Copysign(1, d.X), 0)
		} else {
			n = core.Vec(0, math.Copysign(1, d.Y))
		}
	}
	return contact{hit: true, normal: n, at: closest}
}

// collide evaluates every configured pair rule in order. Within a rule,
// entities pair in insertion order; that fixed ordering is the tie-break
// for simultaneous hits. A destroy-level resolution deactivates the entity
// immediately, so later pair tests in the same tick skip it.
func (e *Engine) collide() {
	// Bucket active entities by kind once per tick, preserving insertion
	// order. Active flags are re-checked before each test because earlier
	// rules may have deactivated members.
	var byKind [KindCount][]*Entity
	e.store.ForEach(func(ent *Entity) {
		byKind[ent.Kind] = append(byKind[ent.Kind], ent)
	})

	for i := range e.cfg.Pairs {
		rule := &e.cfg.Pairs[i]
		sa := e.cfg.Kinds[rule.A].Shape
		sb := e.cfg.Kinds[rule.B].Shape

		for ai, a := range byKind[rule.A] {
			if !a.Active {
				continue
			}
			// A same-kind rule pairs each couple once, earlier slot as a.
			bs := byKind[rule.B]
			if rule.A == rule.B {
				bs = bs[ai+1:]
			}
			for _, b := range bs {
				if !a.Active {
					break
				}
				if !b.Active {
					continue
				}
				c := testPair(a, sa, b, sb)
				if !c.hit {
					continue
				}
				e.resolve(rule, a, b, c)
			}
		}
	}
}

// resolve applies a rule's resolution policy and side effects to one
// overlapping pair.
func (e *Engine) resolve(rule *PairRule, a, b *Entity, c contact) {
	switch rule.Resolve {
	case ResolveDestroyBoth:
		e.destroy(a, b.ID)
		e.destroy(b, a.ID)

	case ResolveDestroyOneScore:
		victim, survivor := e.pickTarget(rule.Destroy, a, b)
		if victim != nil {
			e.destroy(victim, survivor.ID)
		}
		if survivor != nil && rule.Restitution > 0 {
			reflect(survivor, c.normal, rule.Restitution)
		}

	case ResolveBounce:
		// Reflect each body's velocity component along the normal when it
		// moves into the other. A head-on pair with restitution 1 keeps
		// both speed magnitudes.
		if a.Vel.Dot(c.normal) > 0 {
			reflect(a, c.normal, rule.Restitution)
		}
		if b.Vel.Dot(c.normal) < 0 {
			reflect(b, c.normal, rule.Restitution)
		}
		e.events.emit(Event{
			Kind: EventBounce, Entity: a.ID, Other: b.ID,
			EntityKind: a.Kind, OtherKind: b.Kind, At: c.at,
		})

	case ResolveAbsorb:
		victim, survivor := e.pickTarget(rule.Destroy, a, b)
		if survivor != nil && rule.Effect != "" {
			owner := survivor.ID
			effect := rule.Effect
			e.timers.Start(effect, owner, rule.EffectTicks, func() {
				if e.cfg.OnEffectExpire != nil {
					e.cfg.OnEffectExpire(effect, owner)
				}
			})
			tag := 0
			if victim != nil {
				tag = victim.Tag
			}
			e.events.emit(Event{
				Kind: EventPickup, Entity: owner, Effect: effect,
				EntityKind: survivor.Kind, Tag: tag, At: c.at,
			})
		}
		if victim != nil {
			victim.Active = false
		}

	case ResolveBlock:
		e.block(a, b, c)
	}

	e.applyRuleEffects(rule, a, b, c)
}

// applyRuleEffects handles the scoring, life, and particle side effects a
// rule carries, independent of its geometric resolution.
func (e *Engine) applyRuleEffects(rule *PairRule, a, b *Entity, c contact) {
	if rule.Scored {
		pts := e.scoreHit(rule.Points)
		e.events.emit(Event{
			Kind: EventScore, Entity: a.ID, Other: b.ID,
			EntityKind: a.Kind, OtherKind: b.Kind, Points: pts, At: c.at,
		})
	} else if rule.Points != 0 {
		e.addScore(rule.Points)
		e.events.emit(Event{
			Kind: EventScore, Entity: a.ID, Other: b.ID,
			EntityKind: a.Kind, OtherKind: b.Kind, Points: rule.Points, At: c.at,
		})
	}

	if rule.LoseLife {
		e.loseLife()
		e.events.emit(Event{
			Kind: EventLifeLost, Entity: a.ID, Other: b.ID,
			EntityKind: a.Kind, OtherKind: b.Kind, At: c.at,
		})
	}

	if rule.Burst {
		e.events.emit(Event{Kind: EventBurst, At: c.at, Tag: a.Tag})
	}
}

// destroy decrements remaining hits and deactivates the entity when they
// run out. The entity stays in storage until the end-of-tick sweep.
func (e *Engine) destroy(ent *Entity, other ID) {
	if ent.Hits > 1 {
		ent.Hits--
		return
	}
	ent.Active = false
	e.events.emit(Event{
		Kind: EventDestroyed, Entity: ent.ID, Other: other,
		EntityKind: ent.Kind, Tag: ent.Tag, At: ent.Pos,
	})
}

func (e *Engine) pickTarget(t Target, a, b *Entity) (victim, survivor *Entity) {
	switch t {
	case TargetA:
		return a, b
	case TargetB:
		return b, a
	case TargetBoth:
		return a, nil
	default:
		return nil, a
	}
}

// reflect mirrors the entity's velocity component along the unit normal,
// scaled by restitution.
func reflect(ent *Entity, n core.Vec2, restitution float64) {
	if restitution <= 0 {
		restitution = 1
	}
	d := ent.Vel.Dot(n)
	ent.Vel = ent.Vel.Sub(n.Scale(2 * d)).Scale(restitution)
}

// block cancels the movement that caused entity a to overlap b, trying each
// axis separately so sliding along a wall still works.
func (e *Engine) block(a, b *Entity, _ contact) {
	sa := e.cfg.Kinds[a.Kind].Shape
	sb := e.cfg.Kinds[b.Kind].Shape

	overlapAt := func(pos core.Vec2) bool {
		probe := *a
		probe.Pos = pos
		return testPair(&probe, sa, b, sb).hit
	}

	// Revert x only.
	tryX := core.Vec(a.prevPos.X, a.Pos.Y)
	if !overlapAt(tryX) {
		a.Pos = tryX
		a.Vel.X = 0
		return
	}
	// Revert y only.
	tryY := core.Vec(a.Pos.X, a.prevPos.Y)
	if !overlapAt(tryY) {
		a.Pos = tryY
		a.Vel.Y = 0
		return
	}
	// Revert fully.
	a.Pos = a.prevPos
	a.Vel = core.Vec2{}
}
