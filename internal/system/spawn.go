// internal/system/spawn.go
package system

import (
	"math"

	"github.com/sirupsen/logrus"

	"electro-shoot/internal/component"
	"electro-shoot/internal/config"
	"electro-shoot/internal/defs"
	"electro-shoot/internal/entity"
	"electro-shoot/internal/event"
	"electro-shoot/internal/utils"
	"electro-shoot/pkg/geom"
	"electro-shoot/pkg/logger"
)

// SpawnSystem drops a new enemy on a ring around the turret at a fixed
// interval, aimed roughly at the center.
type SpawnSystem struct {
	world           *entity.World
	registry        *defs.Registry
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	weights         []int
	timer           float64
}

func NewSpawnSystem(world *entity.World, registry *defs.Registry, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *SpawnSystem {
	weights := make([]int, len(registry.Enemies))
	for i, kind := range registry.Enemies {
		weights[i] = kind.SpawnWeight
	}
	return &SpawnSystem{
		world:           world,
		registry:        registry,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		weights:         weights,
	}
}

func (s *SpawnSystem) Update(deltaTime float64) {
	s.timer += deltaTime
	for s.timer >= config.SpawnInterval {
		s.timer -= config.SpawnInterval
		s.spawnEnemy()
	}
}

func (s *SpawnSystem) spawnEnemy() {
	i := s.rng.ChooseWeighted(s.weights)
	if i < 0 {
		logger.Log.Warn("No enemy kind can spawn")
		return
	}
	kind := s.registry.Enemies[i]

	angle := s.rng.Range(0, 2*math.Pi)
	position := geom.V(math.Cos(angle), math.Sin(angle)).Scale(config.SpawnDistance)
	target := position.Perp().Normalize().Scale(s.rng.Range(-config.SpawnSpread/2, config.SpawnSpread/2))
	heading := geom.RotationTowards(target.Sub(position), geom.Identity)

	id := s.world.Enemies.Insert(component.NewEnemy(geom.Isometry{Translation: position, Rotation: heading}, kind))

	logger.Log.WithFields(logrus.Fields{
		"enemy": id,
		"kind":  kind.ID,
	}).Debug("Enemy spawned")
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: id})
}
