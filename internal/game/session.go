package game

import (
	"fmt"
	"time"

	"github.com/tomz197/stressgame/internal/game/config"
	"github.com/tomz197/stressgame/internal/object"
	"github.com/tomz197/stressgame/internal/physics"
	"github.com/tomz197/stressgame/internal/render"
)

// collisionCellSize must be at least the largest hostile/projectile
// removal distance, (HostileSize+ProjectileSize)/2.
const collisionCellSize = 32

// Session is the complete state of one game from start to game over.
// It is only mutated by its own methods, one frame at a time.
type Session struct {
	Screen      object.Screen
	Shooter     *object.Shooter
	Hostiles    []*object.Hostile
	Projectiles []*object.Projectile

	BulletFrequency   float64 // Ramps every frame and on boost, never decreases
	DotSpawnFrequency float64 // Raised by boost only; the wave spawner ignores it
	Elapsed           float64 // Seconds survived
	Frame             int     // Frames stepped so far
	Over              bool

	waves    object.WaveSource
	grid     *physics.SpatialGrid
	consumed []bool // Per-projectile hit flags, reused between frames
}

// NewSession creates a session with the shooter at the centre of screen
// and hostiles supplied by waves.
func NewSession(screen object.Screen, waves object.WaveSource) *Session {
	if waves == nil {
		waves = object.NoWaves
	}
	return &Session{
		Screen:            screen,
		Shooter:           object.NewShooter(screen),
		BulletFrequency:   config.InitialBulletFrequency,
		DotSpawnFrequency: config.InitialDotSpawnFrequency,
		waves:             waves,
		grid:              physics.NewSpatialGrid(float64(screen.Width), float64(screen.Height), collisionCellSize),
	}
}

// Spawn adds a projectile fired this frame. Implements object.Spawner.
func (s *Session) Spawn(p *object.Projectile) {
	s.Projectiles = append(s.Projectiles, p)
}

// Step advances the session by one frame. delta is the real time since the
// previous frame and only feeds the elapsed timer. Once the session is
// over Step does nothing.
func (s *Session) Step(delta time.Duration) {
	if s.Over {
		return
	}
	s.Frame++

	s.spawnHostiles()
	s.advanceHostiles()
	s.advanceProjectiles()
	s.advanceShooter()

	if s.breached() {
		s.Over = true
		return
	}
	s.Elapsed += delta.Seconds()
}

// Boost raises both frequencies by a fixed step.
func (s *Session) Boost() {
	s.BulletFrequency += config.BoostBulletFrequency
	s.DotSpawnFrequency += config.BoostDotSpawnFrequency
}

func (s *Session) updateContext() object.UpdateContext {
	return object.UpdateContext{
		Screen:          s.Screen,
		Hostiles:        s.Hostiles,
		BulletFrequency: s.BulletFrequency,
		Spawner:         s,
	}
}

func (s *Session) spawnHostiles() {
	s.Hostiles = append(s.Hostiles, s.waves.Wave(s.Frame, s.Screen)...)
}

// advanceHostiles moves every hostile and resolves hostile/projectile hits.
// Hostiles are visited in index order; each takes out at most one
// projectile, the lowest-index live one within reach, and both are removed.
func (s *Session) advanceHostiles() {
	ctx := s.updateContext()

	s.grid.Clear()
	for i, p := range s.Projectiles {
		s.grid.Insert(p.X, p.Y, i)
	}
	if cap(s.consumed) < len(s.Projectiles) {
		s.consumed = make([]bool, len(s.Projectiles))
	} else {
		s.consumed = s.consumed[:len(s.Projectiles)]
		clear(s.consumed)
	}

	kept := s.Hostiles[:0]
	for _, h := range s.Hostiles {
		h.Update(ctx)
		if j := s.firstHit(h); j >= 0 {
			s.consumed[j] = true
			continue
		}
		kept = append(kept, h)
	}
	clear(s.Hostiles[len(kept):])
	s.Hostiles = kept

	live := s.Projectiles[:0]
	for i, p := range s.Projectiles {
		if !s.consumed[i] {
			live = append(live, p)
		}
	}
	clear(s.Projectiles[len(live):])
	s.Projectiles = live
}

// firstHit returns the lowest index of a live projectile hitting h, or -1.
func (s *Session) firstHit(h *object.Hostile) int {
	best := -1
	s.grid.QueryAround(h.X, h.Y, func(j int) bool {
		if s.consumed[j] || (best >= 0 && j > best) {
			return false
		}
		if h.Hits(s.Projectiles[j]) {
			best = j
		}
		return false
	})
	return best
}

func (s *Session) advanceProjectiles() {
	ctx := s.updateContext()
	kept := s.Projectiles[:0]
	for _, p := range s.Projectiles {
		if !p.Update(ctx) {
			kept = append(kept, p)
		}
	}
	clear(s.Projectiles[len(kept):])
	s.Projectiles = kept
}

func (s *Session) advanceShooter() {
	s.Shooter.Update(s.updateContext())
	s.BulletFrequency += config.BulletFrequencyRamp
}

// breached reports whether any hostile reached the centre or the shooter.
func (s *Session) breached() bool {
	for _, h := range s.Hostiles {
		if h.ReachedCenter(s.Screen) || h.Touches(s.Shooter) {
			return true
		}
	}
	return false
}

// Draw appends the play area and HUD to f.
func (s *Session) Draw(f *render.Frame) {
	for _, h := range s.Hostiles {
		h.Draw(f)
	}
	for _, p := range s.Projectiles {
		p.Draw(f)
	}
	s.Shooter.Draw(f)

	w := float64(s.Screen.Width)
	f.Text(w-10, 10, 16, render.AlignRight, fmt.Sprintf("Time: %.2f", s.Elapsed), render.Label)

	if s.Over {
		cx, cy := s.Screen.Center()
		f.Text(cx, cy, 90, render.AlignCenter, config.GameOverText, render.Banner)
	}
}
