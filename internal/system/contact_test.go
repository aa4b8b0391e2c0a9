package system

import (
	"math"
	"testing"

	"electro-shoot/internal/component"
	"electro-shoot/internal/defs"
	"electro-shoot/internal/entity"
	"electro-shoot/internal/event"
	"electro-shoot/internal/shape"
	"electro-shoot/internal/types"
	"electro-shoot/pkg/geom"
)

type countingShatterer struct {
	calls   int
	healths []uint32
}

func (c *countingShatterer) Shatter(enemy *component.Enemy, _, _ geom.Vec2) []component.Particle {
	c.calls++
	c.healths = append(c.healths, enemy.Health)
	return []component.Particle{{Lifetime: 1}, {Lifetime: 1}, {Lifetime: 1}}
}

func enemyKind(health uint32, hitbox shape.Shape) *defs.EnemyKind {
	return &defs.EnemyKind{
		EnemyDefinition: defs.EnemyDefinition{ID: "TARGET", MaxHealth: health},
		Hitbox:          hitbox,
	}
}

func projectileKind(damage uint32, piercing bool, speed float64, subticks int) *defs.ProjectileKind {
	return &defs.ProjectileKind{
		ProjectileDefinition: defs.ProjectileDefinition{
			ID: "SHOT", Size: [2]float64{0.6, 0.2}, Damage: damage, Piercing: piercing,
			Speed: speed, Subticks: subticks,
		},
		Hitbox: shape.Rectangle(geom.V(0.3, 0.1)),
	}
}

type contactFixture struct {
	world     *entity.World
	shatterer *countingShatterer
	system    *ContactSystem
	hits      []event.EnemyHitData
	destroyed []event.EnemyDestroyedData
}

func newContactFixture() *contactFixture {
	f := &contactFixture{world: entity.NewWorld(), shatterer: &countingShatterer{}}
	d := event.NewDispatcher()
	d.Subscribe(event.EnemyHit, event.ListenerFunc(func(e event.Event) {
		f.hits = append(f.hits, e.Data.(event.EnemyHitData))
	}))
	d.Subscribe(event.EnemyDestroyed, event.ListenerFunc(func(e event.Event) {
		f.destroyed = append(f.destroyed, e.Data.(event.EnemyDestroyedData))
	}))
	f.system = NewContactSystem(f.shatterer, d)
	return f
}

func (f *contactFixture) addEnemy(x, y float64, kind *defs.EnemyKind) types.EntityID {
	return f.world.Enemies.Insert(component.NewEnemy(geom.Pose(x, y, 0), kind))
}

func (f *contactFixture) fire(x float64, kind *defs.ProjectileKind) (types.EntityID, *component.Projectile) {
	id := f.world.Projectiles.Insert(component.NewProjectile(geom.Pose(x, 0, 0), kind))
	p, _ := f.world.Projectiles.Get(id)
	return id, p
}

func (f *contactFixture) tick(id types.EntityID, p *component.Projectile, dt float64) {
	f.system.Tick(id, p, f.world.Enemies, f.world.Particles, dt)
}

func TestNonPiercingKillStopsAtFirstContact(t *testing.T) {
	f := newContactFixture()
	enemy := f.addEnemy(1, 0, enemyKind(2, shape.Rectangle(geom.V(0.6, 0.6))))
	id, p := f.fire(0, projectileKind(2, false, 10, 4))

	f.tick(id, p, 0.1)

	if !p.ShouldDelete() {
		t.Fatal("projectile should be spent")
	}
	if f.world.Enemies.Contains(enemy) {
		t.Error("killed enemy still in the pool")
	}
	if f.shatterer.calls != 1 {
		t.Errorf("shatter called %d times, want 1", f.shatterer.calls)
	}
	if f.world.Particles.Len() != 3 {
		t.Errorf("particles = %d, want 3", f.world.Particles.Len())
	}
	if len(f.destroyed) != 1 || f.destroyed[0].Enemy != enemy || f.destroyed[0].Fragments != 3 {
		t.Errorf("destroyed events = %+v", f.destroyed)
	}
	// the first substep already overlaps, the rest are skipped
	if x := p.Position().X; math.Abs(x-0.25) > 1e-12 {
		t.Errorf("projectile x = %v, want 0.25", x)
	}
	if p.Colliding.Len() != 0 || p.Intersecting.Len() != 0 {
		t.Error("contact sets should drop removed enemies")
	}
}

func TestPiercingHitsEveryOverlappingEnemyOnce(t *testing.T) {
	f := newContactFixture()
	kind := enemyKind(10, shape.Circle(0.3))
	ids := []types.EntityID{
		f.addEnemy(0.5, 0, kind),
		f.addEnemy(0.5, 0.05, kind),
		f.addEnemy(0.5, -0.05, kind),
	}
	id, p := f.fire(0, projectileKind(1, true, 10, 4))

	f.tick(id, p, 0.01)

	if p.Hit.Len() != len(ids) {
		t.Fatalf("hit %d enemies, want %d", p.Hit.Len(), len(ids))
	}
	for _, eid := range ids {
		if !p.Colliding.Has(eid) || !p.Intersecting.Has(eid) {
			t.Errorf("enemy %d missing from contact sets", eid)
		}
	}

	// keep flying through and past them
	for i := 0; i < 200; i++ {
		f.tick(id, p, 0.01)
	}
	if p.Hit.Len() != len(ids) {
		t.Errorf("hit grew to %d", p.Hit.Len())
	}
	for _, eid := range ids {
		e, _ := f.world.Enemies.Get(eid)
		if e.Health != 9 {
			t.Errorf("enemy %d health = %d, want 9", eid, e.Health)
		}
	}
	if len(f.hits) != len(ids) {
		t.Errorf("hit events = %d, want %d", len(f.hits), len(ids))
	}
	if p.Colliding.Len() != 0 || p.Intersecting.Len() != 0 {
		t.Error("contact sets should be empty once past the enemies")
	}
}

func TestPiercingThroughARow(t *testing.T) {
	f := newContactFixture()
	kind := enemyKind(5, shape.Circle(0.4))
	for x := 2.0; x <= 8; x += 2 {
		f.addEnemy(x, 0, kind)
	}
	id, p := f.fire(0, projectileKind(1, true, 20, 8))

	for i := 0; i < 120; i++ {
		f.tick(id, p, 1.0/60)
	}

	if p.Hit.Len() != 4 {
		t.Errorf("hit %d enemies, want 4", p.Hit.Len())
	}
	if p.ShouldDelete() {
		t.Error("piercing projectile should never be spent")
	}
}

func TestTwoShotsKillOnce(t *testing.T) {
	f := newContactFixture()
	enemy := f.addEnemy(1, 0, enemyKind(4, shape.Rectangle(geom.V(0.6, 0.6))))

	first, p1 := f.fire(0, projectileKind(2, false, 10, 4))
	f.tick(first, p1, 0.1)
	if f.shatterer.calls != 0 {
		t.Fatalf("shattered after the first hit")
	}
	e, ok := f.world.Enemies.Get(enemy)
	if !ok || e.Health != 2 {
		t.Fatalf("enemy after first hit: present=%v", ok)
	}

	second, p2 := f.fire(0, projectileKind(2, false, 10, 4))
	f.tick(second, p2, 0.1)

	if f.shatterer.calls != 1 {
		t.Errorf("shatter called %d times, want 1", f.shatterer.calls)
	}
	if len(f.shatterer.healths) != 1 || f.shatterer.healths[0] != 0 {
		t.Errorf("shattered at health %v, want 0", f.shatterer.healths)
	}
	var seq []uint32
	for _, h := range f.hits {
		seq = append(seq, h.Health)
	}
	if len(seq) != 2 || seq[0] != 2 || seq[1] != 0 {
		t.Errorf("health sequence = %v, want [2 0]", seq)
	}
	if f.world.Enemies.Contains(enemy) {
		t.Error("enemy survived")
	}
}

func TestZeroTickIsNoOp(t *testing.T) {
	f := newContactFixture()
	kind := enemyKind(10, shape.Circle(0.3))
	a := f.addEnemy(0.5, 0, kind)
	f.addEnemy(5, 0, kind)
	id, p := f.fire(0, projectileKind(1, true, 10, 4))
	f.tick(id, p, 0.01)

	before := *p
	colliding, intersecting, hit := p.Colliding.Len(), p.Intersecting.Len(), p.Hit.Len()
	health := func() uint32 { e, _ := f.world.Enemies.Get(a); return e.Health }()

	f.tick(id, p, 0)

	if p.Transform != before.Transform || p.LinearVelocity != before.LinearVelocity ||
		p.AngularVelocity != before.AngularVelocity || p.TimeSinceCollision != before.TimeSinceCollision {
		t.Error("zero tick moved the projectile")
	}
	if p.Colliding.Len() != colliding || p.Intersecting.Len() != intersecting || p.Hit.Len() != hit {
		t.Error("zero tick changed contact sets")
	}
	if e, _ := f.world.Enemies.Get(a); e.Health != health {
		t.Error("zero tick changed enemy health")
	}
}

func TestWidenedHitboxKeepsContact(t *testing.T) {
	f := newContactFixture()
	enemy := f.addEnemy(0, 0, enemyKind(10, shape.Circle(0.3)))
	id, p := f.fire(0.8, projectileKind(1, true, 1, 1))
	p.Colliding.Add(enemy)
	p.Intersecting.Add(enemy)
	p.Hit.Add(enemy)

	f.tick(id, p, 0.01)

	if !p.Colliding.Has(enemy) {
		t.Error("enemy inside the widened hitbox dropped from colliding")
	}
	if p.Intersecting.Has(enemy) {
		t.Error("enemy outside the exact hitbox kept in intersecting")
	}
	if p.LinearVelocity.X != 0.25 {
		t.Errorf("embedded velocity = %v, want 0.25", p.LinearVelocity.X)
	}

	f.world.Enemies.Remove(enemy)
	f.tick(id, p, 0.01)
	if p.Colliding.Has(enemy) {
		t.Error("removed enemy kept in colliding")
	}
	if !p.Hit.Has(enemy) {
		t.Error("hit set shrank")
	}
}

func TestContactDoesNotReachPastTheTip(t *testing.T) {
	f := newContactFixture()
	// the tip ends short of 0.31, the circle's edge is at 0.34, inside the front margin
	enemy := f.addEnemy(0.64, 0, enemyKind(10, shape.Circle(0.3)))
	id, p := f.fire(0, projectileKind(1, true, 1, 1))
	p.Colliding.Add(enemy)
	p.Hit.Add(enemy)

	f.tick(id, p, 0.01)

	if p.Colliding.Has(enemy) {
		t.Error("enemy ahead of the tip kept in colliding")
	}
}

func TestDeadEnemyIsNotStruckAgain(t *testing.T) {
	f := newContactFixture()
	enemy := f.addEnemy(0.5, 0, enemyKind(3, shape.Rectangle(geom.V(0.6, 0.6))))
	e, _ := f.world.Enemies.Get(enemy)
	e.Hit(3)
	id, p := f.fire(0, projectileKind(1, false, 10, 2))

	f.tick(id, p, 0.1)

	if f.shatterer.calls != 0 || len(f.hits) != 0 || len(f.destroyed) != 0 {
		t.Errorf("dead enemy struck: shatter=%d hits=%d destroyed=%d",
			f.shatterer.calls, len(f.hits), len(f.destroyed))
	}
	if p.Hit.Len() != 0 || p.ShouldDelete() {
		t.Error("projectile spent on a dead enemy")
	}
}

func TestDestroyRemovesAndReports(t *testing.T) {
	f := newContactFixture()
	enemy := f.addEnemy(2, 3, enemyKind(1, shape.Circle(0.5)))
	e, _ := f.world.Enemies.Get(enemy)
	e.Hit(1)

	f.system.Destroy(enemy, e, e.Position(), geom.Vec2{}, f.world.Enemies, f.world.Particles)

	if f.world.Enemies.Contains(enemy) {
		t.Error("destroyed enemy still in the pool")
	}
	if f.world.Particles.Len() != 3 {
		t.Errorf("particles = %d, want 3", f.world.Particles.Len())
	}
	if len(f.destroyed) != 1 || f.destroyed[0].Position != geom.V(2, 3) {
		t.Errorf("destroyed events = %+v", f.destroyed)
	}
}
