// internal/component/projectile.go
package component

import (
	"fmt"

	"electro-shoot/internal/config"
	"electro-shoot/internal/defs"
	"electro-shoot/internal/types"
	"electro-shoot/pkg/geom"
)

// Projectile is a fired shot and its contact bookkeeping.
type Projectile struct {
	Object

	Kind *defs.ProjectileKind

	// Colliding holds enemies still inside the widened hitbox.
	Colliding types.IDSet
	// Intersecting holds enemies inside the exact hitbox.
	Intersecting types.IDSet
	// Hit holds every enemy this projectile ever damaged. It only grows.
	Hit types.IDSet

	TimeSinceCollision float64
	TimeSinceTrail     float64
}

// NewProjectile creates a projectile at pose flying along its heading.
// It panics if the kind has no subticks.
func NewProjectile(pose geom.Isometry, kind *defs.ProjectileKind) Projectile {
	if kind.Subticks < 1 {
		panic(fmt.Sprintf("component: projectile %q has %d subticks", kind.ID, kind.Subticks))
	}
	p := Projectile{
		Object: Object{
			Shape: kind.Hitbox,
			Body:  Body{Transform: pose},
		},
		Kind:         kind,
		Colliding:    make(types.IDSet),
		Intersecting: make(types.IDSet),
		Hit:          make(types.IDSet),
	}
	p.LinearVelocity = p.Heading().Scale(kind.Speed)
	return p
}

// Heading is the unit flight direction.
func (p *Projectile) Heading() geom.Vec2 {
	return p.Transform.Rotation.Apply(geom.V(1, 0))
}

// CurrentSpeed is the nominal speed, slowed while embedded in a target.
func (p *Projectile) CurrentSpeed() float64 {
	if p.Colliding.Len() > 0 {
		return p.Kind.Speed * config.EmbeddedSpeedFactor
	}
	return p.Kind.Speed
}

// Tip is the world position of the projectile's front.
func (p *Projectile) Tip() geom.Vec2 {
	return p.Transform.TransformPoint(geom.V(p.Kind.DistanceToFront(), 0))
}

// Tail is the world position of the projectile's back.
func (p *Projectile) Tail() geom.Vec2 {
	return p.Transform.TransformPoint(geom.V(-p.Kind.DistanceToFront(), 0))
}

// WidenedHitbox is the exact hitbox grown by the contact margins.
func (p *Projectile) WidenedHitbox() Object {
	widened, local := p.Shape.Widened(config.ContactFrontMargin, config.ContactBackMargin)
	return Object{
		Shape: widened,
		Body: Body{
			Transform:      p.Transform.Mul(local),
			LinearVelocity: p.LinearVelocity,
		},
	}
}

// ShouldDelete is true once a non-piercing projectile has hit anything.
func (p *Projectile) ShouldDelete() bool {
	return !p.Kind.Piercing && p.Hit.Len() > 0
}
