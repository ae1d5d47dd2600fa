package object

import (
	"math"

	"github.com/tomz197/stressgame/internal/game/config"
	"github.com/tomz197/stressgame/internal/physics"
	"github.com/tomz197/stressgame/internal/render"
)

// Shooter is the stationary turret at the canvas centre. It turns toward
// the nearest hostile every frame and fires on a frame cooldown.
type Shooter struct {
	X, Y         float64 // Position (center), fixed for the session
	Size         float64 // Diameter
	BarrelLength float64 // Fraction of the radius the barrel extends past the body
	Angle        float64 // Facing in radians (0 = right, increases clockwise on screen)
	Cooldown     float64 // Frames until the next shot
}

// NewShooter creates a shooter at the screen centre.
func NewShooter(screen Screen) *Shooter {
	x, y := screen.Center()
	return &Shooter{
		X:            x,
		Y:            y,
		Size:         config.ShooterSize,
		BarrelLength: config.ShooterBarrelLength,
	}
}

// Update aims at the nearest hostile and fires when the cooldown allows.
// The shooter is never removed.
func (s *Shooter) Update(ctx UpdateContext) bool {
	if target := s.Nearest(ctx.Hostiles); target != nil {
		s.Angle = physics.AngleTo(s.X, s.Y, target.X, target.Y)
	}

	if s.Cooldown <= 0 {
		mx, my := s.Muzzle()
		ctx.Spawner.Spawn(NewProjectile(mx, my, s.Angle))
		s.Cooldown = config.FramesPerCooldownUnit / ctx.BulletFrequency
	} else {
		s.Cooldown--
	}
	return false
}

// Nearest returns the closest hostile, or nil if there are none.
// Ties go to the earliest hostile in the slice.
func (s *Shooter) Nearest(hostiles []*Hostile) *Hostile {
	var closest *Hostile
	best := math.Inf(1)
	for _, h := range hostiles {
		d := physics.DistanceSquared(s.X, s.Y, h.X, h.Y)
		if d < best {
			best = d
			closest = h
		}
	}
	return closest
}

// Muzzle returns the point on the shooter's edge along its facing.
func (s *Shooter) Muzzle() (float64, float64) {
	return physics.Advance(s.X, s.Y, s.Angle, s.Size/2)
}

// Draw renders the body and the barrel.
func (s *Shooter) Draw(f *render.Frame) {
	f.Circle(s.X, s.Y, s.Size, render.Shooter)
	ex, ey := physics.Advance(s.X, s.Y, s.Angle, s.Size/2*(1+s.BarrelLength))
	f.Line(s.X, s.Y, ex, ey, config.ShooterBarrelWidth, render.Shooter)
}
