// internal/event/types.go
package event

import (
	"electro-shoot/internal/types"
	"electro-shoot/pkg/geom"
)

const (
	EnemySpawned    EventType = "EnemySpawned"
	EnemyHit        EventType = "EnemyHit"
	EnemyDestroyed  EventType = "EnemyDestroyed"
	ProjectileFired EventType = "ProjectileFired"
)

// EnemyHitData is the payload of EnemyHit.
type EnemyHitData struct {
	Enemy      types.EntityID
	Projectile types.EntityID
	Damage     uint32
	Health     uint32
}

// EnemyDestroyedData is the payload of EnemyDestroyed.
type EnemyDestroyedData struct {
	Enemy     types.EntityID
	Kind      string
	Position  geom.Vec2
	Fragments int
}
