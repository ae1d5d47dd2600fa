package game

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/tomz197/stressgame/internal/game/config"
	"github.com/tomz197/stressgame/internal/object"
	"github.com/tomz197/stressgame/internal/render"
	"pgregory.net/rapid"
)

var screen = object.NewScreen(config.CanvasWidth, config.CanvasHeight)

func TestSessionNoHostilesTimer(t *testing.T) {
	s := NewSession(screen, object.NoWaves)

	const frames = 600
	for range frames {
		s.Step(config.TargetFrameTime)
	}

	want := float64(frames) / config.TargetFPS
	if math.Abs(s.Elapsed-want) > 1e-6 {
		t.Fatalf("elapsed = %v, want %v", s.Elapsed, want)
	}
	if s.Over {
		t.Fatal("session without hostiles must not end")
	}
	if s.Frame != frames {
		t.Fatalf("frame = %d, want %d", s.Frame, frames)
	}
}

func TestSessionHostileAtCenterEndsSameFrame(t *testing.T) {
	waves := object.WaveFunc(func(frame int, sc object.Screen) []*object.Hostile {
		if frame != 1 {
			return nil
		}
		cx, cy := sc.Center()
		return []*object.Hostile{object.NewHostile(cx, cy, sc)}
	})
	s := NewSession(screen, waves)

	s.Step(config.TargetFrameTime)
	if !s.Over {
		t.Fatal("hostile spawned at the centre must end the session on that frame")
	}
	if s.Elapsed != 0 {
		t.Fatalf("elapsed = %v, want 0 once over", s.Elapsed)
	}

	frame := s.Frame
	s.Step(config.TargetFrameTime)
	if s.Frame != frame || s.Elapsed != 0 {
		t.Fatal("Step must not advance a finished session")
	}
}

func TestSessionProjectileRemovedAfterCrossingWidth(t *testing.T) {
	s := NewSession(screen, object.NoWaves)
	s.Step(config.TargetFrameTime)
	if len(s.Projectiles) != 1 {
		t.Fatalf("projectiles after first frame = %d, want 1", len(s.Projectiles))
	}
	p := s.Projectiles[0]

	for range 200 {
		s.Step(config.TargetFrameTime)
		present := slices.Contains(s.Projectiles, p)
		if p.X > float64(screen.Width) {
			if present {
				t.Fatalf("projectile at x=%v still present", p.X)
			}
			return
		}
		if !present {
			t.Fatalf("projectile at x=%v removed while inside", p.X)
		}
	}
	t.Fatal("projectile never crossed the canvas width")
}

func TestSessionCollisionOrder(t *testing.T) {
	t.Run("hostile takes the lowest index projectile", func(t *testing.T) {
		s := NewSession(screen, object.NoWaves)
		h := object.NewHostile(100, 256, screen)
		s.Hostiles = []*object.Hostile{h}
		first := object.NewProjectile(101, 256, 0)
		second := object.NewProjectile(100, 257, 0)
		s.Projectiles = []*object.Projectile{first, second}

		s.advanceHostiles()

		if len(s.Hostiles) != 0 {
			t.Fatalf("hostiles = %d, want 0", len(s.Hostiles))
		}
		if len(s.Projectiles) != 1 || s.Projectiles[0] != second {
			t.Fatalf("remaining projectiles = %v, want only the second", s.Projectiles)
		}
	})

	t.Run("earlier hostile wins a shared projectile", func(t *testing.T) {
		s := NewSession(screen, object.NoWaves)
		a := object.NewHostile(100, 250, screen)
		b := object.NewHostile(100, 262, screen)
		s.Hostiles = []*object.Hostile{a, b}
		s.Projectiles = []*object.Projectile{object.NewProjectile(100, 256, 0)}

		s.advanceHostiles()

		if len(s.Projectiles) != 0 {
			t.Fatalf("projectiles = %d, want 0", len(s.Projectiles))
		}
		if len(s.Hostiles) != 1 || s.Hostiles[0] != b {
			t.Fatalf("surviving hostiles = %v, want only the second", s.Hostiles)
		}
	})
}

func TestSessionBoost(t *testing.T) {
	s := NewSession(screen, object.NoWaves)
	s.Boost()
	if math.Abs(s.BulletFrequency-(config.InitialBulletFrequency+config.BoostBulletFrequency)) > 1e-12 {
		t.Fatalf("bullet frequency = %v", s.BulletFrequency)
	}
	if math.Abs(s.DotSpawnFrequency-(config.InitialDotSpawnFrequency+config.BoostDotSpawnFrequency)) > 1e-12 {
		t.Fatalf("dot spawn frequency = %v", s.DotSpawnFrequency)
	}
}

func TestSessionDraw(t *testing.T) {
	s := NewSession(screen, object.NoWaves)
	s.Hostiles = []*object.Hostile{object.NewHostile(10, 10, screen), object.NewHostile(20, 20, screen)}
	s.Projectiles = []*object.Projectile{object.NewProjectile(300, 300, 0)}
	s.Elapsed = 3.14159

	var f render.Frame
	s.Draw(&f)

	if got := f.Count(render.KindCircle, render.Hostile); got != 2 {
		t.Fatalf("hostile circles = %d, want 2", got)
	}
	if got := f.Count(render.KindCircle, render.Projectile); got != 1 {
		t.Fatalf("projectile circles = %d, want 1", got)
	}
	if !slices.ContainsFunc(f.Commands, func(c render.Command) bool {
		return c.Kind == render.KindText && c.Text == "Time: 3.14" && c.Align == render.AlignRight
	}) {
		t.Fatalf("timer label missing from %+v", f.Commands)
	}
	if slices.ContainsFunc(f.Commands, func(c render.Command) bool { return c.Text == config.GameOverText }) {
		t.Fatal("game over banner drawn for a running session")
	}

	s.Over = true
	f.Reset(512, 512, render.Background)
	s.Draw(&f)
	if !slices.ContainsFunc(f.Commands, func(c render.Command) bool { return c.Text == config.GameOverText }) {
		t.Fatal("game over banner missing")
	}
}

func TestSessionSeededRunsAreReproducible(t *testing.T) {
	run := func() (int, float64, int) {
		s := NewSession(screen, object.NewWaveSpawner(rand.New(rand.NewPCG(3, 5))))
		for !s.Over && s.Frame < 20000 {
			s.Step(config.TargetFrameTime)
		}
		return s.Frame, s.Elapsed, len(s.Hostiles)
	}

	f1, e1, h1 := run()
	f2, e2, h2 := run()
	if f1 != f2 || e1 != e2 || h1 != h2 {
		t.Fatalf("runs differ: (%d,%v,%d) vs (%d,%v,%d)", f1, e1, h1, f2, e2, h2)
	}
}

func TestPropertyNoOverlapAfterCollisions(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		coord := rapid.Float64Range(200, 300)
		s := NewSession(screen, object.NoWaves)

		nh := rapid.IntRange(0, 25).Draw(t, "hostiles")
		for i := range nh {
			x := coord.Draw(t, fmt.Sprintf("hx%d", i))
			y := coord.Draw(t, fmt.Sprintf("hy%d", i))
			s.Hostiles = append(s.Hostiles, object.NewHostile(x, y, screen))
		}
		np := rapid.IntRange(0, 25).Draw(t, "projectiles")
		for i := range np {
			x := coord.Draw(t, fmt.Sprintf("px%d", i))
			y := coord.Draw(t, fmt.Sprintf("py%d", i))
			angle := rapid.Float64Range(-math.Pi, math.Pi).Draw(t, fmt.Sprintf("pa%d", i))
			s.Projectiles = append(s.Projectiles, object.NewProjectile(x, y, angle))
		}

		s.advanceHostiles()

		for _, h := range s.Hostiles {
			for _, p := range s.Projectiles {
				if h.Hits(p) {
					t.Fatalf("hostile (%v,%v) and projectile (%v,%v) both survived in range", h.X, h.Y, p.X, p.Y)
				}
			}
		}
		if nh-len(s.Hostiles) != np-len(s.Projectiles) {
			t.Fatalf("removed %d hostiles but %d projectiles", nh-len(s.Hostiles), np-len(s.Projectiles))
		}
	})
}

func TestPropertyActiveFrames(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64().Draw(t, "seed")
		frames := rapid.IntRange(1, 900).Draw(t, "frames")
		boosts := rapid.SliceOfN(rapid.Bool(), frames, frames).Draw(t, "boosts")

		s := NewSession(screen, object.NewWaveSpawner(rand.New(rand.NewPCG(seed, ^seed))))
		prev := s.BulletFrequency
		for i := range frames {
			if s.Over {
				break
			}
			if boosts[i] {
				s.Boost()
			}
			s.Step(config.TargetFrameTime)

			if s.BulletFrequency < prev {
				t.Fatalf("frame %d: bullet frequency dropped from %v to %v", s.Frame, prev, s.BulletFrequency)
			}
			prev = s.BulletFrequency

			for _, p := range s.Projectiles {
				if !screen.Contains(p.X, p.Y) {
					t.Fatalf("frame %d: projectile outside canvas at (%v,%v)", s.Frame, p.X, p.Y)
				}
			}
		}
	})
}
