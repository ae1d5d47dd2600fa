package object

import (
	"github.com/tomz197/stressgame/internal/game/config"
	"github.com/tomz197/stressgame/internal/physics"
	"github.com/tomz197/stressgame/internal/render"
)

// Hostile is a dot drifting from the perimeter toward the canvas centre.
type Hostile struct {
	X, Y      float64 // Position (center)
	Size      float64 // Diameter
	Speed     float64 // Units per frame
	Direction float64 // Heading in radians, fixed at spawn
}

// NewHostile creates a hostile at (x,y) heading toward the screen centre.
func NewHostile(x, y float64, screen Screen) *Hostile {
	cx, cy := screen.Center()
	return &Hostile{
		X:         x,
		Y:         y,
		Size:      config.HostileSize,
		Speed:     config.HostileSpeed,
		Direction: physics.AngleTo(x, y, cx, cy),
	}
}

// Update moves the hostile along its heading. Hostiles never remove
// themselves; collisions and game over are decided by the session.
func (h *Hostile) Update(_ UpdateContext) bool {
	h.X, h.Y = physics.Advance(h.X, h.Y, h.Direction, h.Speed)
	return false
}

// Draw renders the hostile as a filled circle.
func (h *Hostile) Draw(f *render.Frame) {
	f.Circle(h.X, h.Y, h.Size, render.Hostile)
}

// Hits reports whether the projectile is within the removal distance.
func (h *Hostile) Hits(p *Projectile) bool {
	return physics.Within(h.X, h.Y, p.X, p.Y, (h.Size+p.Size)/2)
}

// ReachedCenter reports whether the hostile is closer to the screen centre
// than half its size.
func (h *Hostile) ReachedCenter(screen Screen) bool {
	cx, cy := screen.Center()
	return physics.Within(h.X, h.Y, cx, cy, h.Size/2)
}

// Touches reports whether the hostile overlaps the shooter.
func (h *Hostile) Touches(s *Shooter) bool {
	return physics.Within(h.X, h.Y, s.X, s.Y, h.Size/2+s.Size/2)
}
