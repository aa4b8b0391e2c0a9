// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720

	// ViewHeight is the number of world units visible vertically.
	ViewHeight = 36.0

	// TickRate is the fixed simulation step per frame.
	TickRate     = 1.0 / 120.0
	MaxDeltaTime = 0.06

	Seed = 1234980

	// Turret
	TurretRadius        = 0.6
	BarrelLength        = 1.0
	BarrelWidth         = 0.2
	InputBufferTime     = 1.0 / 6.0
	TurretAimDecay      = 20.0
	RechargeFlashLength = 0.5

	// Projectile contact
	EmbeddedSpeedFactor = 0.25 // speed multiplier while Colliding is non-empty
	ContactFrontMargin  = 0.05
	ContactBackMargin   = 0.4
	TrailInterval       = 1.0 / 60.0
	TrailLifetime       = 0.25
	TrailSize           = 0.08

	// Enemies
	HitFlashDuration = 0.15
	HitSlowDuration  = 0.3
	HitSlowFactor    = 0.3
	SpawnInterval    = 1.5
	SpawnDistance    = 25.0
	SpawnSpread      = 12.0
	DespawnDistance  = 40.0

	// Shatter
	ShatterStampMin     = 2
	ShatterStampMax     = 4
	ShatterStampsMax    = 2
	FragmentLifetime    = 1.5
	ImpulseMin          = 0.5
	ImpulseMax          = 5.0
	HitVelocityShare    = 0.05
	FragmentJitterMin   = 0.6
	FragmentJitterMax   = 1.4
	FragmentFadeSeconds = 0.5
)

var (
	BackgroundColor = color.RGBA{16, 18, 28, 255}
	TurretColor     = color.RGBA{0x00, 0xb6, 0xbf, 255}
	BarrelColor     = color.RGBA{0x00, 0xd8, 0xe4, 255}
	ProjectileColor = color.RGBA{120, 230, 255, 255}
	TrailColor      = color.RGBA{60, 160, 255, 200}
	HitboxColor     = color.RGBA{255, 0, 255, 255}
	TextColor       = color.RGBA{240, 240, 240, 255}
	PausedColor     = color.RGBA{0, 0, 0, 128}
)
