// internal/defs/kinds.go
package defs

import (
	"electro-shoot/internal/assets"
	"electro-shoot/internal/shape"
	"electro-shoot/pkg/geom"
)

// SpriteDef points at an embedded SVG and the size it is rasterised at.
type SpriteDef struct {
	Name   string  `json:"name"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Scale  float64 `json:"scale"` // world units per pixel
}

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Shape           ShapeDef  `json:"shape"`
	Speed           float64   `json:"speed"`
	AngularVelocity float64   `json:"angular_velocity"`
	MaxHealth       uint32    `json:"max_health"`
	SpawnWeight     int       `json:"spawn_weight"`
	Sprite          SpriteDef `json:"sprite"`
}

// ProjectileDefinition holds all the static data for a specific projectile.
type ProjectileDefinition struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Size          [2]float64 `json:"size"` // length along the flight direction, width
	Damage        uint32     `json:"damage"`
	Piercing      bool       `json:"piercing"`
	Speed         float64    `json:"speed"`
	Subticks      int        `json:"subticks"`
	ShootCooldown float64    `json:"shoot_cooldown"`
}

// EnemyKind is an EnemyDefinition with its shape and sprite resolved.
type EnemyKind struct {
	EnemyDefinition
	Hitbox shape.Shape
	Sprite *assets.Sprite
}

// ProjectileKind is a ProjectileDefinition with its hitbox resolved.
type ProjectileKind struct {
	ProjectileDefinition
	Hitbox shape.Shape
}

// HalfSize of the projectile's rectangle.
func (k *ProjectileKind) HalfSize() geom.Vec2 {
	return geom.V(k.Size[0]/2, k.Size[1]/2)
}

// DistanceToFront is the distance from the projectile center to its tip.
func (k *ProjectileKind) DistanceToFront() float64 {
	return k.Size[0] / 2
}
