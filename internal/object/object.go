// Package object defines the entities of the game: the shooter, the
// hostile dots and the projectiles, plus the wave spawner.
package object

import (
	"github.com/tomz197/stressgame/internal/physics"
	"github.com/tomz197/stressgame/internal/render"
)

// Spawner allows objects to spawn projectiles during update.
type Spawner interface {
	Spawn(p *Projectile)
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Screen          Screen
	Hostiles        []*Hostile
	BulletFrequency float64 // Shots per second at 60 FPS
	Spawner         Spawner
}

// Screen holds the logical canvas dimensions.
type Screen struct {
	Width   int
	Height  int
	CenterX int
	CenterY int
}

// NewScreen returns a screen of the given size with its centre filled in.
func NewScreen(width, height int) Screen {
	return Screen{
		Width:   width,
		Height:  height,
		CenterX: width / 2,
		CenterY: height / 2,
	}
}

// Center returns the centre as floats.
func (s Screen) Center() (float64, float64) {
	return float64(s.Width) / 2, float64(s.Height) / 2
}

// Contains reports whether (x,y) lies within [0,Width]x[0,Height].
func (s Screen) Contains(x, y float64) bool {
	return physics.InRect(x, y, float64(s.Width), float64(s.Height))
}

// Object is a drawable and updatable game entity.
type Object interface {
	// Update advances the object by one frame. Returns true if the object should be removed.
	Update(ctx UpdateContext) (remove bool)

	// Draw appends the object's draw commands to the frame.
	Draw(f *render.Frame)
}

// Rand is the source of randomness for spawning.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}
