// internal/entity/ecs.go
package entity

import "electro-shoot/internal/component"

// World owns the three entity pools of a simulation.
type World struct {
	GameTime    float64
	Enemies     *Pool[component.Enemy]
	Projectiles *Pool[component.Projectile]
	Particles   *Pool[component.Particle]
}

func NewWorld() *World {
	return &World{
		Enemies:     NewPool[component.Enemy](),
		Projectiles: NewPool[component.Projectile](),
		Particles:   NewPool[component.Particle](),
	}
}

// Clear empties every pool and rewinds the clock.
func (w *World) Clear() {
	w.GameTime = 0
	w.Enemies = NewPool[component.Enemy]()
	w.Projectiles = NewPool[component.Projectile]()
	w.Particles = NewPool[component.Particle]()
}
