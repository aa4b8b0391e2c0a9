// internal/component/turret.go
package component

import (
	"math"

	"electro-shoot/internal/config"
	"electro-shoot/internal/defs"
	"electro-shoot/internal/shape"
	"electro-shoot/pkg/geom"
	"electro-shoot/pkg/utils"
)

// PlayerInput buffers the shoot button so a press shortly before the
// cooldown ends still fires.
type PlayerInput struct {
	Shoot          bool
	TimeSincePress float64
}

// Tick samples the button state.
func (in *PlayerInput) Tick(pressed bool, dt float64) {
	if pressed {
		in.Shoot = true
		in.TimeSincePress = 0
		return
	}
	in.TimeSincePress += dt
	if in.TimeSincePress > config.InputBufferTime {
		in.Shoot = false
	}
}

// Turret is the player's gun. It aims at a world point and fires the
// selected projectile kind.
type Turret struct {
	Shape     shape.Shape
	Transform geom.Isometry

	TimeSinceShoot     float64
	TimeSinceRecharged float64
	Kind               *defs.ProjectileKind

	Input PlayerInput
}

func NewTurret(kind *defs.ProjectileKind) Turret {
	return Turret{
		Shape:     shape.Circle(config.TurretRadius),
		Transform: geom.Pose(0, 0, 0),
		Kind:      kind,
	}
}

// Tick turns towards aim and fires when asked and recharged.
// The fired projectile, if any, is returned for the caller to insert.
func (t *Turret) Tick(aim geom.Vec2, dt float64) (Projectile, bool) {
	direction := geom.RotationTowards(aim.Sub(t.Transform.Translation), t.Transform.Rotation)

	t.TimeSinceShoot += dt

	var (
		fired Projectile
		ok    bool
	)
	if t.Input.Shoot && t.CanShoot() {
		t.Transform.Rotation = direction
		fired, ok = t.shoot(), true
	} else {
		t.Transform.Rotation = t.Transform.Rotation.Slerp(direction, utils.ExpDecay(0, 1, config.TurretAimDecay, dt))
	}

	if t.CanShoot() {
		t.TimeSinceRecharged += dt
	} else {
		t.TimeSinceRecharged = 0
	}
	return fired, ok
}

func (t *Turret) shoot() Projectile {
	t.TimeSinceShoot = 0
	t.Input.Shoot = false

	muzzle := t.Transform.TransformPoint(geom.V(config.BarrelLength+t.Kind.DistanceToFront(), 0))
	pose := geom.Isometry{Translation: muzzle, Rotation: t.Transform.Rotation}
	return NewProjectile(pose, t.Kind)
}

func (t *Turret) CanShoot() bool {
	return t.TimeSinceShoot >= t.Kind.ShootCooldown
}

// RechargeProgress goes from 0 right after a shot to 1 when ready.
func (t *Turret) RechargeProgress() float64 {
	if t.Kind.ShootCooldown <= 0 {
		return 1
	}
	return utils.Clamp(t.TimeSinceShoot/t.Kind.ShootCooldown, 0, 1)
}

// RecoilOffset is how far the barrel is pushed back, snapped to 0.1 steps.
func (t *Turret) RecoilOffset() float64 {
	progress := math.Pow(1-t.RechargeProgress(), 2)
	return math.Ceil(progress*0.5/0.1) * 0.1
}

// ShowRechargeFlash is true shortly after the turret becomes ready.
func (t *Turret) ShowRechargeFlash() bool {
	return t.CanShoot() && t.TimeSinceRecharged < config.RechargeFlashLength
}
