// Package physics wraps the Box2D rigid-body engine behind a small handle-based
// API. Game code talks to World and Body only, so the engine stays a black box:
// create bodies, query transforms, apply forces, and advance by a fixed step.
package physics

import (
	"github.com/ByteArena/box2d"

	"github.com/vovakirdan/phys-arcade/internal/core"
)

// BodyKind selects static vs dynamic simulation for a body.
type BodyKind int

const (
	// Static bodies never move; they collide with dynamic bodies.
	Static BodyKind = iota
	// Dynamic bodies are fully simulated under gravity and contacts.
	Dynamic
)

// BoxDef describes a box-shaped body to create.
type BoxDef struct {
	Kind     BodyKind
	Position core.Vec2
	HalfW    float64 // Half-width in simulation units
	HalfH    float64 // Half-height in simulation units
	Density  float64 // Ignored for static bodies
	Friction float64
}

// World owns the Box2D world and the bodies created through it.
type World struct {
	b2     box2d.B2World
	bodies []*Body
}

// Body is an opaque handle to a simulated rigid body. Position and rotation
// are authoritative only after a World.Step completes.
type Body struct {
	b2    *box2d.B2Body
	halfW float64
	halfH float64
}

// NewWorld creates an empty physics world with the given gravity vector.
func NewWorld(gravity core.Vec2) *World {
	return &World{
		b2: box2d.MakeB2World(box2d.MakeB2Vec2(gravity.X, gravity.Y)),
	}
}

// CreateBox adds a box-shaped body to the world and returns its handle.
func (w *World) CreateBox(def BoxDef) *Body {
	bd := box2d.MakeB2BodyDef()
	if def.Kind == Dynamic {
		bd.Type = box2d.B2BodyType.B2_dynamicBody
	} else {
		bd.Type = box2d.B2BodyType.B2_staticBody
	}
	bd.Position.Set(def.Position.X, def.Position.Y)

	b2body := w.b2.CreateBody(&bd)

	shape := box2d.MakeB2PolygonShape()
	shape.SetAsBox(def.HalfW, def.HalfH)

	fd := box2d.MakeB2FixtureDef()
	fd.Shape = &shape
	fd.Density = def.Density
	fd.Friction = def.Friction
	b2body.CreateFixtureFromDef(&fd)

	body := &Body{b2: b2body, halfW: def.HalfW, halfH: def.HalfH}
	w.bodies = append(w.bodies, body)
	return body
}

// Step advances the simulation by dt seconds using the given solver iteration
// counts. Callers are expected to pass a constant dt every frame; variable
// steps destabilize the solver.
func (w *World) Step(dt float64, velocityIters, positionIters int) {
	w.b2.Step(dt, velocityIters, positionIters)
}

// Destroy removes a body from the world and invalidates its handle.
func (w *World) Destroy(b *Body) {
	if b == nil || b.b2 == nil {
		return
	}
	w.b2.DestroyBody(b.b2)
	b.b2 = nil
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
}

// Position returns the body's current center position.
func (b *Body) Position() core.Vec2 {
	p := b.b2.GetPosition()
	return core.Vec2{X: p.X, Y: p.Y}
}

// Angle returns the body's rotation in radians.
func (b *Body) Angle() float64 {
	return b.b2.GetAngle()
}

// Velocity returns the body's linear velocity.
func (b *Body) Velocity() core.Vec2 {
	v := b.b2.GetLinearVelocity()
	return core.Vec2{X: v.X, Y: v.Y}
}

// SetVelocity overwrites the body's linear velocity.
func (b *Body) SetVelocity(v core.Vec2) {
	b.b2.SetLinearVelocity(box2d.MakeB2Vec2(v.X, v.Y))
}

// SetTransform teleports the body to a position and rotation, bypassing the
// solver. Used for resets only.
func (b *Body) SetTransform(pos core.Vec2, angle float64) {
	b.b2.SetTransform(box2d.MakeB2Vec2(pos.X, pos.Y), angle)
}

// ApplyForce applies a continuous force at the body's center of mass.
func (b *Body) ApplyForce(f core.Vec2) {
	b.b2.ApplyForce(box2d.MakeB2Vec2(f.X, f.Y), b.b2.GetWorldCenter(), true)
}

// ApplyImpulse applies an instantaneous linear impulse at the center of mass.
func (b *Body) ApplyImpulse(i core.Vec2) {
	b.b2.ApplyLinearImpulse(box2d.MakeB2Vec2(i.X, i.Y), b.b2.GetWorldCenter(), true)
}

// HalfExtents returns the box half-width and half-height the body was
// created with.
func (b *Body) HalfExtents() (float64, float64) {
	return b.halfW, b.halfH
}

// AABB returns the body's axis-aligned bounding box inflated by margin on
// every side. Recomputed from the current position, so it is only meaningful
// after a step.
func (b *Body) AABB(margin float64) core.AABB {
	return core.AABBAround(b.Position(), b.halfW, b.halfH, margin)
}
