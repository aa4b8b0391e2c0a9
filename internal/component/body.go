// internal/component/body.go
package component

import "electro-shoot/pkg/geom"

// Body is the rigid pose of an entity and its velocities. It is only mutated
// by the owning entity's tick.
type Body struct {
	Transform       geom.Isometry
	LinearVelocity  geom.Vec2
	AngularVelocity float64
}

// Tick integrates one fixed step. The rotation is applied about the body's
// own center, so the translation only follows the linear velocity.
func (b *Body) Tick(dt float64) {
	b.Transform.Translation = b.Transform.Translation.Add(b.LinearVelocity.Scale(dt))
	b.Transform.Rotation = geom.Rot(b.AngularVelocity * dt).Mul(b.Transform.Rotation)
}

// Position is the world-space center.
func (b *Body) Position() geom.Vec2 { return b.Transform.Translation }

// PointVelocity is the world velocity of a point rigidly attached to the body.
func (b *Body) PointVelocity(world geom.Vec2) geom.Vec2 {
	r := world.Sub(b.Transform.Translation)
	return b.LinearVelocity.Add(r.Perp().Scale(b.AngularVelocity))
}
