package object

import (
	"github.com/tomz197/stressgame/internal/game/config"
	"github.com/tomz197/stressgame/internal/physics"
	"github.com/tomz197/stressgame/internal/render"
)

// Projectile is a bullet fired by the shooter.
type Projectile struct {
	X, Y      float64 // Position
	Size      float64 // Diameter
	Speed     float64 // Units per frame
	Direction float64 // Heading in radians, the shooter's angle at fire time
}

// NewProjectile creates a projectile at (x,y) traveling along angle.
func NewProjectile(x, y, angle float64) *Projectile {
	return &Projectile{
		X:         x,
		Y:         y,
		Size:      config.ProjectileSize,
		Speed:     config.ProjectileSpeed,
		Direction: angle,
	}
}

// Update moves the projectile and reports removal once it leaves the screen.
func (p *Projectile) Update(ctx UpdateContext) bool {
	p.X, p.Y = physics.Advance(p.X, p.Y, p.Direction, p.Speed)
	return !ctx.Screen.Contains(p.X, p.Y)
}

// Draw renders the projectile.
func (p *Projectile) Draw(f *render.Frame) {
	f.Circle(p.X, p.Y, p.Size, render.Projectile)
}
