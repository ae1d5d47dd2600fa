// Package config centralizes all tunable game parameters.
package config

import "time"

// Canvas - the play area in logical units. Every backend scales from here.
const (
	CanvasWidth  = 512
	CanvasHeight = 512
)

// Shooter
const (
	ShooterSize         = 20.0
	ShooterBarrelLength = 0.25 // Fraction of the radius the barrel extends past the body
	ShooterBarrelWidth  = 2.0
)

// Hostiles
const (
	HostileSize  = 15.0
	HostileSpeed = 0.5 // Units per frame
)

// Projectiles
const (
	ProjectileSpeed = 5.0               // Units per frame
	ProjectileSize  = ShooterSize / 4.0 // A quarter of the shooter
)

// Spawning. A batch spawns on frames where frame % round(uniform(min,max)) == 0.
const (
	SpawnGateMinFrames = 30
	SpawnGateMaxFrames = 60
	SpawnBatchMin      = 2
	SpawnBatchMax      = 24 // Inclusive
)

// Frequency ramps
const (
	InitialBulletFrequency   = 1.0
	InitialDotSpawnFrequency = 0.5
	BulletFrequencyRamp      = 0.01 // Added every active frame
	BoostBulletFrequency     = 0.1
	BoostDotSpawnFrequency   = 0.025
	FramesPerCooldownUnit    = 60.0 // Cooldown after a shot is this / bulletFrequency
)

// Frame timing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Labels
const (
	StartLabel   = "Start Game"
	RestartLabel = "Restart Game"
	Title        = "Welcome to Stress Game"
	GameOverText = "Game Over"
)
