// internal/system/contact.go
package system

import (
	"github.com/sirupsen/logrus"

	"electro-shoot/internal/component"
	"electro-shoot/internal/entity"
	"electro-shoot/internal/event"
	"electro-shoot/internal/types"
	"electro-shoot/pkg/geom"
	"electro-shoot/pkg/logger"
)

// Shatterer turns a destroyed enemy into fragment particles.
type Shatterer interface {
	Shatter(enemy *component.Enemy, hit, hitVelocity geom.Vec2) []component.Particle
}

// ContactSystem moves projectiles in subticks and resolves their contacts
// with enemies.
type ContactSystem struct {
	shatterer       Shatterer
	eventDispatcher *event.Dispatcher
}

func NewContactSystem(shatterer Shatterer, eventDispatcher *event.Dispatcher) *ContactSystem {
	return &ContactSystem{
		shatterer:       shatterer,
		eventDispatcher: eventDispatcher,
	}
}

// Tick advances one projectile by dt. Enemies killed on the way are shattered
// into particles and removed from their pool before Tick returns.
func (s *ContactSystem) Tick(id types.EntityID, p *component.Projectile,
	enemies *entity.Pool[component.Enemy], particles *entity.Pool[component.Particle], dt float64) {
	if dt == 0 {
		return
	}

	subDt := dt / float64(p.Kind.Subticks)
	for i := 0; i < p.Kind.Subticks; i++ {
		p.LinearVelocity = p.Heading().Scale(p.CurrentSpeed())
		p.Body.Tick(subDt)
		p.TimeSinceCollision += subDt

		s.strike(id, p, enemies, particles)

		widened := p.WidenedHitbox()
		p.Colliding.Retain(func(eid types.EntityID) bool {
			e, ok := enemies.Get(eid)
			return ok && widened.IsColliding(&e.Object)
		})
		p.Intersecting.Retain(func(eid types.EntityID) bool {
			e, ok := enemies.Get(eid)
			return ok && p.IsColliding(&e.Object)
		})

		if p.ShouldDelete() {
			break
		}
	}
}

func (s *ContactSystem) strike(id types.EntityID, p *component.Projectile,
	enemies *entity.Pool[component.Enemy], particles *entity.Pool[component.Particle]) {
	for _, eid := range enemies.IDs() {
		if p.Hit.Has(eid) {
			continue
		}
		enemy, ok := enemies.Get(eid)
		if !ok || enemy.Health == 0 || !p.IsColliding(&enemy.Object) {
			continue
		}

		enemy.Hit(p.Kind.Damage)
		p.Colliding.Add(eid)
		p.Intersecting.Add(eid)
		p.Hit.Add(eid)
		p.TimeSinceCollision = 0

		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyHit, Data: event.EnemyHitData{
			Enemy:      eid,
			Projectile: id,
			Damage:     p.Kind.Damage,
			Health:     enemy.Health,
		}})

		if enemy.ShouldDelete() {
			s.Destroy(eid, enemy, p.Tip(), p.LinearVelocity, enemies, particles)
		}
	}
}

// Destroy shatters a dead enemy at hit, moves its fragments into particles
// and removes it from enemies.
func (s *ContactSystem) Destroy(eid types.EntityID, enemy *component.Enemy, hit, hitVelocity geom.Vec2,
	enemies *entity.Pool[component.Enemy], particles *entity.Pool[component.Particle]) {
	fragments := s.shatterer.Shatter(enemy, hit, hitVelocity)
	for _, f := range fragments {
		particles.Insert(f)
	}

	data := event.EnemyDestroyedData{
		Enemy:     eid,
		Kind:      enemy.Kind.ID,
		Position:  enemy.Position(),
		Fragments: len(fragments),
	}
	enemies.Remove(eid)

	logger.Log.WithFields(logrus.Fields{
		"enemy":     eid,
		"kind":      data.Kind,
		"fragments": data.Fragments,
	}).Debug("Enemy destroyed")
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: data})
}
