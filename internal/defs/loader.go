// internal/defs/loader.go
package defs

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"electro-shoot/internal/assets"
	"electro-shoot/internal/shape"
	"electro-shoot/pkg/geom"
	"electro-shoot/pkg/logger"

	"github.com/sirupsen/logrus"
)

//go:embed catalog.json
var defaultCatalog []byte

// SpriteLoader resolves a SpriteDef into pixels.
type SpriteLoader func(name string, width, height int, scale float64) (*assets.Sprite, error)

// Registry is the immutable catalog of enemy and projectile kinds.
// It is loaded once at startup and shared by reference.
type Registry struct {
	Enemies     []*EnemyKind
	Projectiles []*ProjectileKind

	enemyByID      map[string]*EnemyKind
	projectileByID map[string]*ProjectileKind
}

type catalog struct {
	Enemies     []EnemyDefinition      `json:"enemies"`
	Projectiles []ProjectileDefinition `json:"projectiles"`
}

// LoadDefault loads the embedded catalog with the embedded sprites.
func LoadDefault() (*Registry, error) {
	return Load(defaultCatalog, assets.LoadSprite)
}

// Load parses and validates a catalog. Sprites are rasterised through sprites.
func Load(data []byte, sprites SpriteLoader) (*Registry, error) {
	var c catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}

	r := &Registry{
		enemyByID:      make(map[string]*EnemyKind),
		projectileByID: make(map[string]*ProjectileKind),
	}

	for _, def := range c.Enemies {
		kind, err := buildEnemy(def, sprites)
		if err != nil {
			return nil, fmt.Errorf("enemy %q: %w", def.ID, err)
		}
		if _, dup := r.enemyByID[def.ID]; dup {
			return nil, fmt.Errorf("duplicate enemy id %q", def.ID)
		}
		r.enemyByID[def.ID] = kind
		r.Enemies = append(r.Enemies, kind)
	}

	for _, def := range c.Projectiles {
		kind, err := buildProjectile(def)
		if err != nil {
			return nil, fmt.Errorf("projectile %q: %w", def.ID, err)
		}
		if _, dup := r.projectileByID[def.ID]; dup {
			return nil, fmt.Errorf("duplicate projectile id %q", def.ID)
		}
		r.projectileByID[def.ID] = kind
		r.Projectiles = append(r.Projectiles, kind)
	}

	if len(r.Enemies) == 0 || len(r.Projectiles) == 0 {
		return nil, fmt.Errorf("catalog needs at least one enemy and one projectile")
	}

	logger.Log.WithFields(logrus.Fields{
		"enemies":     len(r.Enemies),
		"projectiles": len(r.Projectiles),
	}).Info("catalog loaded")
	return r, nil
}

// Enemy looks up an enemy kind by ID.
func (r *Registry) Enemy(id string) (*EnemyKind, bool) {
	k, ok := r.enemyByID[id]
	return k, ok
}

// Projectile looks up a projectile kind by ID.
func (r *Registry) Projectile(id string) (*ProjectileKind, bool) {
	k, ok := r.projectileByID[id]
	return k, ok
}

func buildEnemy(def EnemyDefinition, sprites SpriteLoader) (*EnemyKind, error) {
	hitbox, err := def.Shape.Build()
	if err != nil {
		return nil, err
	}
	if def.MaxHealth == 0 {
		return nil, fmt.Errorf("max_health must be positive")
	}
	sprite, err := sprites(def.Sprite.Name, def.Sprite.Width, def.Sprite.Height, def.Sprite.Scale)
	if err != nil {
		return nil, err
	}
	return &EnemyKind{EnemyDefinition: def, Hitbox: hitbox, Sprite: sprite}, nil
}

func buildProjectile(def ProjectileDefinition) (*ProjectileKind, error) {
	if def.Subticks < 1 {
		return nil, fmt.Errorf("subticks must be at least 1, got %d", def.Subticks)
	}
	if !(def.Size[0] > 0) || !(def.Size[1] > 0) {
		return nil, fmt.Errorf("size must be positive, got %v", def.Size)
	}
	if def.ShootCooldown < 0 {
		return nil, fmt.Errorf("shoot_cooldown must not be negative")
	}
	kind := &ProjectileKind{ProjectileDefinition: def}
	kind.Hitbox = shape.Rectangle(geom.V(def.Size[0]/2, def.Size[1]/2))
	return kind, nil
}
