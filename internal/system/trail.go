// internal/system/trail.go
package system

import (
	"electro-shoot/internal/component"
	"electro-shoot/internal/config"
	"electro-shoot/internal/entity"
	"electro-shoot/internal/types"
	"electro-shoot/pkg/geom"
)

// TrailSystem leaves a fading dot at the tail of every projectile at a
// fixed rate.
type TrailSystem struct {
	world *entity.World
}

func NewTrailSystem(world *entity.World) *TrailSystem {
	return &TrailSystem{world: world}
}

func (s *TrailSystem) Update(deltaTime float64) {
	s.world.Projectiles.Each(func(_ types.EntityID, p *component.Projectile) {
		p.TimeSinceTrail += deltaTime
		for p.TimeSinceTrail >= config.TrailInterval {
			p.TimeSinceTrail -= config.TrailInterval
			s.world.Particles.Insert(component.Particle{
				Body:     component.Body{Transform: geom.Isometry{Translation: p.Tail(), Rotation: p.Transform.Rotation}},
				Color:    config.TrailColor,
				Size:     config.TrailSize,
				Age:      p.TimeSinceTrail,
				Lifetime: config.TrailLifetime,
			})
		}
	})
}
