package engine

import (
	"math"

	"github.com/dkarpov/arcadium/internal/core"
)

// integrate advances every active entity's kinematics by one fixed tick:
// input acceleration, gravity, drag, speed clamp, position update, and the
// per-edge boundary policy. Lifetimes tick down here as well.
//
// Velocity integrates as v' = (v + a·dt)·drag, then clamps to the kind's
// max speed; position as p' = p + v'·dt. Opposite held directions are not
// validated — both accelerations apply and drag contains the divergence.
func (e *Engine) integrate(in core.InputFrame) {
	dt := e.cfg.DT

	e.store.ForEach(func(ent *Entity) {
		p := e.cfg.Kinds[ent.Kind]
		ent.prevPos = ent.Pos

		if ent.Lifetime > 0 {
			ent.Lifetime--
			if ent.Lifetime == 0 {
				ent.Active = false
				return
			}
		}

		if p.Steering {
			e.integrateSteering(ent, p, in, dt)
		} else {
			e.integrateLinear(ent, p, in, dt)
		}

		e.applyBounds(ent, p)
	})
}

// integrateLinear handles per-axis acceleration kinds (paddles, ships,
// projectiles, falling pickups).
func (e *Engine) integrateLinear(ent *Entity, p KindParams, in core.InputFrame, dt float64) {
	var a core.Vec2
	if p.InputDriven {
		if in.IsHeld(core.ActionLeft) {
			a.X -= p.Accel
		}
		if in.IsHeld(core.ActionRight) {
			a.X += p.Accel
		}
		if in.IsHeld(core.ActionUp) {
			a.Y -= p.Accel
		}
		if in.IsHeld(core.ActionDown) {
			a.Y += p.Accel
		}
	}
	a.Y += p.Gravity

	v := ent.Vel.Add(a.Scale(dt)).Scale(p.Drag)
	if p.MaxSpeed > 0 {
		v = v.ClampLen(p.MaxSpeed)
	}
	ent.Vel = v
	ent.Pos = ent.Pos.Add(v.Scale(dt))
}

// integrateSteering handles heading-based kinds (racers): the heading turns
// at a speed-sensitive rate, thrust and drag act on scalar speed, and
// velocity is derived from the heading.
func (e *Engine) integrateSteering(ent *Entity, p KindParams, in core.InputFrame, dt float64) {
	speed := ent.Vel.Len()

	// Turning authority scales with speed: a standing car does not rotate.
	turnFactor := 1.0
	if p.MaxSpeed > 0 {
		turnFactor = core.ClampF(speed/p.MaxSpeed, 0.25, 1)
	}
	turn := p.TurnRate * dt * turnFactor
	if p.InputDriven {
		if in.IsHeld(core.ActionLeft) {
			ent.Angle -= turn
		}
		if in.IsHeld(core.ActionRight) {
			ent.Angle += turn
		}
	}

	thrust := 0.0
	if p.InputDriven {
		if in.IsHeld(core.ActionAccelerate) {
			thrust += p.Accel
		}
		if in.IsHeld(core.ActionBrake) {
			thrust -= p.Accel
		}
	}

	speed = (speed + thrust*dt) * p.Drag
	speed = core.ClampF(speed, 0, p.MaxSpeed)

	dir := core.Vec(math.Sin(ent.Angle), -math.Cos(ent.Angle))
	ent.Vel = dir.Scale(speed)
	ent.Pos = ent.Pos.Add(ent.Vel.Scale(dt))
}

// applyBounds enforces the kind's per-edge boundary policy against the
// simulation bounds, accounting for the shape's half extents.
func (e *Engine) applyBounds(ent *Entity, p KindParams) {
	half := p.Shape.halfExtents()
	w, h := e.cfg.Width, e.cfg.Height

	// Left
	if ent.Pos.X-half.X < 0 {
		switch p.Edges[EdgeLeft] {
		case BoundaryClamp:
			ent.Pos.X = half.X
			if ent.Vel.X < 0 {
				ent.Vel.X = 0
			}
			e.emitWallHit(ent, EdgeLeft)
		case BoundaryReflect:
			ent.Pos.X = half.X
			if ent.Vel.X < 0 {
				ent.Vel.X = -ent.Vel.X * p.Restitution
			}
			e.emitWallHit(ent, EdgeLeft)
		case BoundaryWrap:
			if ent.Pos.X+half.X < 0 {
				ent.Pos.X = w + half.X
			}
		}
	}

	// Right
	if ent.Pos.X+half.X > w {
		switch p.Edges[EdgeRight] {
		case BoundaryClamp:
			ent.Pos.X = w - half.X
			if ent.Vel.X > 0 {
				ent.Vel.X = 0
			}
			e.emitWallHit(ent, EdgeRight)
		case BoundaryReflect:
			ent.Pos.X = w - half.X
			if ent.Vel.X > 0 {
				ent.Vel.X = -ent.Vel.X * p.Restitution
			}
			e.emitWallHit(ent, EdgeRight)
		case BoundaryWrap:
			if ent.Pos.X-half.X > w {
				ent.Pos.X = -half.X
			}
		}
	}

	// Top
	if ent.Pos.Y-half.Y < 0 {
		switch p.Edges[EdgeTop] {
		case BoundaryClamp:
			ent.Pos.Y = half.Y
			if ent.Vel.Y < 0 {
				ent.Vel.Y = 0
			}
			e.emitWallHit(ent, EdgeTop)
		case BoundaryReflect:
			ent.Pos.Y = half.Y
			if ent.Vel.Y < 0 {
				ent.Vel.Y = -ent.Vel.Y * p.Restitution
			}
			e.emitWallHit(ent, EdgeTop)
		case BoundaryWrap:
			if ent.Pos.Y+half.Y < 0 {
				ent.Pos.Y = h + half.Y
			}
		}
	}

	// Bottom
	if ent.Pos.Y+half.Y > h {
		switch p.Edges[EdgeBottom] {
		case BoundaryClamp:
			ent.Pos.Y = h - half.Y
			if ent.Vel.Y > 0 {
				ent.Vel.Y = 0
			}
			e.emitWallHit(ent, EdgeBottom)
		case BoundaryReflect:
			ent.Pos.Y = h - half.Y
			if ent.Vel.Y > 0 {
				ent.Vel.Y = -ent.Vel.Y * p.Restitution
			}
			e.emitWallHit(ent, EdgeBottom)
		case BoundaryWrap:
			if ent.Pos.Y-half.Y > h {
				ent.Pos.Y = -half.Y
			}
		}
	}
}

func (e *Engine) emitWallHit(ent *Entity, edge Edge) {
	e.events.emit(Event{
		Kind:       EventWallHit,
		Entity:     ent.ID,
		EntityKind: ent.Kind,
		Edge:       edge,
		At:         ent.Pos,
	})
}
