// internal/component/enemy.go
package component

import (
	"math"

	"electro-shoot/internal/config"
	"electro-shoot/internal/defs"
	"electro-shoot/pkg/geom"
	"electro-shoot/pkg/utils"
)

// Enemy is a target drifting towards the turret.
type Enemy struct {
	Object

	Kind         *defs.EnemyKind
	Health       uint32
	TimeSinceHit float64
	// BaseVelocity is the cruise velocity before the hit slow-down.
	BaseVelocity geom.Vec2
}

// NewEnemy spawns an enemy at pose, flying along its heading.
func NewEnemy(pose geom.Isometry, kind *defs.EnemyKind) Enemy {
	velocity := pose.Rotation.Apply(geom.V(kind.Speed, 0))
	return Enemy{
		Object: Object{
			Shape: kind.Hitbox,
			Body: Body{
				Transform:       pose,
				LinearVelocity:  velocity,
				AngularVelocity: kind.AngularVelocity,
			},
		},
		Kind:         kind,
		Health:       kind.MaxHealth,
		TimeSinceHit: math.Inf(1),
		BaseVelocity: velocity,
	}
}

func (e *Enemy) Tick(dt float64) {
	e.TimeSinceHit += dt
	e.LinearVelocity = e.BaseVelocity.Scale(e.SpeedFactor())
	e.Body.Tick(dt)
}

// Hit applies damage, saturating at zero health.
func (e *Enemy) Hit(damage uint32) {
	if damage >= e.Health {
		e.Health = 0
	} else {
		e.Health -= damage
	}
	e.TimeSinceHit = 0
}

func (e *Enemy) ShouldDelete() bool {
	return e.Health == 0
}

// SpeedFactor ramps from config.HitSlowFactor back to 1 after a hit.
func (e *Enemy) SpeedFactor() float64 {
	if e.TimeSinceHit >= config.HitSlowDuration {
		return 1
	}
	return utils.Lerp(config.HitSlowFactor, 1, e.TimeSinceHit/config.HitSlowDuration)
}

// Brightness is the hit flash intensity in [0, 1].
func (e *Enemy) Brightness() float64 {
	return utils.Clamp(1-e.TimeSinceHit/config.HitFlashDuration, 0, 1)
}

// HealthFraction is the remaining share of max health.
func (e *Enemy) HealthFraction() float64 {
	return float64(e.Health) / float64(e.Kind.MaxHealth)
}
