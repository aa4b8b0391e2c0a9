// internal/app/game.go
package app

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"electro-shoot/internal/assets"
	"electro-shoot/internal/component"
	"electro-shoot/internal/config"
	"electro-shoot/internal/defs"
	"electro-shoot/internal/entity"
	"electro-shoot/internal/event"
	"electro-shoot/internal/shatter"
	"electro-shoot/internal/system"
	"electro-shoot/internal/types"
	"electro-shoot/internal/utils"
	"electro-shoot/pkg/geom"
	"electro-shoot/pkg/logger"
)

// Game holds the simulation and advances it one fixed step at a time.
type Game struct {
	World           *entity.World
	Turret          component.Turret
	Registry        *defs.Registry
	Rng             *utils.PRNGService
	EventDispatcher *event.Dispatcher

	ContactSystem *system.ContactSystem
	TrailSystem   *system.TrailSystem
	SpawnSystem   *system.SpawnSystem

	// SpawnEnabled turns the periodic spawner on or off.
	SpawnEnabled bool
	Kills        int

	weapon    int
	playfield component.Object
}

// NewGame builds a simulation over the given catalog. Fragment atlases are
// uploaded through uploader; seed fixes every random draw.
func NewGame(registry *defs.Registry, uploader assets.Uploader, seed int64) *Game {
	if len(registry.Projectiles) == 0 {
		panic("app: registry has no projectile kinds")
	}

	world := entity.NewWorld()
	rng := utils.NewPRNGService(seed)
	eventDispatcher := event.NewDispatcher()

	g := &Game{
		World:           world,
		Turret:          component.NewTurret(registry.Projectiles[0]),
		Registry:        registry,
		Rng:             rng,
		EventDispatcher: eventDispatcher,
		ContactSystem:   system.NewContactSystem(shatter.NewDecomposer(uploader, rng), eventDispatcher),
		TrailSystem:     system.NewTrailSystem(world),
		SpawnSystem:     system.NewSpawnSystem(world, registry, rng, eventDispatcher),
		SpawnEnabled:    true,
		playfield:       system.NewCamera(config.ScreenWidth, config.ScreenHeight, config.ViewHeight).Bounds(),
	}

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.EnemyDestroyed, listener)
	eventDispatcher.Subscribe(event.EnemySpawned, listener)

	return g
}

// SetPlayfield replaces the area outside of which projectiles are dropped.
func (g *Game) SetPlayfield(bounds component.Object) {
	g.playfield = bounds
}

// SelectWeapon switches the turret to the i-th projectile kind.
func (g *Game) SelectWeapon(i int) error {
	if i < 0 || i >= len(g.Registry.Projectiles) {
		return fmt.Errorf("no weapon in slot %d", i+1)
	}
	g.weapon = i
	g.Turret.Kind = g.Registry.Projectiles[i]
	logger.Log.WithField("weapon", g.Turret.Kind.ID).Info("Weapon selected")
	return nil
}

func (g *Game) Weapon() *defs.ProjectileKind {
	return g.Turret.Kind
}

// TickInput samples the shoot button for this frame.
func (g *Game) TickInput(pressed bool, dt float64) {
	g.Turret.Input.Tick(pressed, dt)
}

// Tick advances the world by dt with the turret aiming at aim.
func (g *Game) Tick(aim geom.Vec2, dt float64) {
	g.World.GameTime += dt

	if p, ok := g.Turret.Tick(aim, dt); ok {
		id := g.World.Projectiles.Insert(p)
		g.EventDispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: id})
	}

	g.World.Projectiles.Retain(func(id types.EntityID, p *component.Projectile) bool {
		g.ContactSystem.Tick(id, p, g.World.Enemies, g.World.Particles, dt)
		return !p.ShouldDelete() && g.playfield.IsColliding(&p.Object)
	})
	g.TrailSystem.Update(dt)

	g.reapEnemies()
	g.World.Enemies.Retain(func(_ types.EntityID, e *component.Enemy) bool {
		e.Tick(dt)
		return e.Position().Length() < config.DespawnDistance
	})

	g.World.Particles.Retain(func(_ types.EntityID, p *component.Particle) bool {
		p.Tick(dt)
		return !p.ShouldDelete()
	})

	if g.SpawnEnabled {
		g.SpawnSystem.Update(dt)
	}
}

// HitEnemy deals damage to an enemy outside of projectile contact. A kill
// shatters the enemy at its center and is reported like any other.
// It returns false when no such enemy exists or it is already dead.
func (g *Game) HitEnemy(id types.EntityID, damage uint32) bool {
	e, ok := g.World.Enemies.Get(id)
	if !ok || e.ShouldDelete() {
		return false
	}

	e.Hit(damage)
	g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyHit, Data: event.EnemyHitData{
		Enemy:  id,
		Damage: damage,
		Health: e.Health,
	}})
	if e.ShouldDelete() {
		g.ContactSystem.Destroy(id, e, e.Position(), geom.Vec2{}, g.World.Enemies, g.World.Particles)
	}
	return true
}

// reapEnemies destroys enemies whose health reached zero through a direct
// Enemy.Hit.
func (g *Game) reapEnemies() {
	for _, id := range g.World.Enemies.IDs() {
		e, ok := g.World.Enemies.Get(id)
		if ok && e.ShouldDelete() {
			g.ContactSystem.Destroy(id, e, e.Position(), geom.Vec2{}, g.World.Enemies, g.World.Particles)
		}
	}
}

// SpawnEnemy places an enemy of the given kind directly.
func (g *Game) SpawnEnemy(kindID string, pose geom.Isometry) (types.EntityID, error) {
	kind, ok := g.Registry.Enemy(kindID)
	if !ok {
		return 0, fmt.Errorf("unknown enemy kind %q", kindID)
	}
	return g.World.Enemies.Insert(component.NewEnemy(pose, kind)), nil
}

// Reset clears every pool and rearms the turret.
func (g *Game) Reset() {
	g.World.Clear()
	g.Turret = component.NewTurret(g.Turret.Kind)
	g.Kills = 0
	logger.Log.Info("Game reset")
}

// GameEventListener keeps score and logs notable events.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyDestroyed:
		data := e.Data.(event.EnemyDestroyedData)
		l.game.Kills++
		logger.Log.WithFields(logrus.Fields{
			"kind":      data.Kind,
			"fragments": data.Fragments,
			"kills":     l.game.Kills,
		}).Info("Enemy destroyed")
	case event.EnemySpawned:
		logger.Log.WithField("enemies", l.game.World.Enemies.Len()).Debug("Enemy count changed")
	}
}
