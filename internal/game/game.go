// Package game runs the shooter simulation: a Session per played game and
// a Game that moves between the start screen, play and game over.
package game

import (
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/stressgame/internal/game/config"
	"github.com/tomz197/stressgame/internal/object"
	"github.com/tomz197/stressgame/internal/render"
)

// Phase is the current game phase.
type Phase int

const (
	PhaseInactive Phase = iota // Start screen
	PhaseActive                // Playing
	PhaseTerminal              // Game over, frozen until restart
)

func (p Phase) String() string {
	switch p {
	case PhaseInactive:
		return "inactive"
	case PhaseActive:
		return "active"
	case PhaseTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Game owns the phase machine, the current session and the chrome theme.
//
//	Inactive -(toggle)-> Active -(breach)-> Terminal -(toggle)-> Inactive
//	Active -(toggle)-> Inactive
type Game struct {
	phase   Phase
	session *Session
	theme   render.Theme
	screen  object.Screen
	waves   func() object.WaveSource
	logger  *log.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithWaves sets the factory called for the hostile source of every new session.
func WithWaves(factory func() object.WaveSource) Option {
	return func(g *Game) {
		g.waves = factory
	}
}

// WithSeed makes hostile spawning reproducible. All sessions of the game
// draw from one generator seeded with the given pair.
func WithSeed(seed1, seed2 uint64) Option {
	return func(g *Game) {
		spawner := object.NewWaveSpawner(rand.New(rand.NewPCG(seed1, seed2)))
		g.waves = func() object.WaveSource { return spawner }
	}
}

// WithLogger sets the logger for phase transitions.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// WithTheme sets the initial chrome theme.
func WithTheme(theme render.Theme) Option {
	return func(g *Game) {
		g.theme = theme
	}
}

// New creates a game on the start screen.
func New(opts ...Option) *Game {
	g := &Game{
		phase:  PhaseInactive,
		screen: object.NewScreen(config.CanvasWidth, config.CanvasHeight),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.waves == nil {
		WithSeed(rand.Uint64(), rand.Uint64())(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	return g
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Session returns the current session, nil on the start screen.
func (g *Game) Session() *Session {
	return g.session
}

// Theme returns the chrome theme.
func (g *Game) Theme() render.Theme {
	return g.theme
}

// ControlLabel is the caption of the start/restart control.
func (g *Game) ControlLabel() string {
	if g.phase == PhaseInactive {
		return config.StartLabel
	}
	return config.RestartLabel
}

// Toggle presses the start/restart control: a fresh session from the start
// screen, otherwise back to the start screen.
func (g *Game) Toggle() {
	if g.phase == PhaseInactive {
		g.start()
		return
	}
	g.stop()
}

func (g *Game) start() {
	g.session = NewSession(g.screen, g.waves())
	g.setPhase(PhaseActive)
}

func (g *Game) stop() {
	if g.phase == PhaseActive {
		g.logger.Debug("session abandoned", "elapsed", g.session.Elapsed)
	}
	g.session = nil
	g.setPhase(PhaseInactive)
}

// Boost raises the firing and spawn frequencies while playing.
func (g *Game) Boost() {
	if g.phase != PhaseActive {
		return
	}
	g.session.Boost()
	g.logger.Debug("boost", "bulletFrequency", g.session.BulletFrequency)
}

// ToggleTheme switches between the light and dark chrome.
func (g *Game) ToggleTheme() {
	g.theme = g.theme.Toggle()
	g.logger.Debug("theme changed", "theme", g.theme)
}

// Tick advances the game by one frame.
func (g *Game) Tick(delta time.Duration) {
	if g.phase != PhaseActive {
		return
	}
	g.session.Step(delta)
	if g.session.Over {
		g.setPhase(PhaseTerminal)
		g.logger.Info("game over", "elapsed", g.session.Elapsed, "frames", g.session.Frame)
	}
}

func (g *Game) setPhase(p Phase) {
	if g.phase == p {
		return
	}
	g.logger.Debug("phase change", "from", g.phase, "to", p)
	g.phase = p
}

// Draw fills f with the current frame.
func (g *Game) Draw(f *render.Frame) {
	f.Reset(float64(g.screen.Width), float64(g.screen.Height), render.Background)
	f.Theme = g.theme
	f.ControlLabel = g.ControlLabel()

	if g.phase == PhaseInactive {
		cx, cy := g.screen.Center()
		f.Text(cx, cy-50, 32, render.AlignCenter, config.Title, render.Label)
		f.Text(cx, cy+50, 32, render.AlignCenter, "Press '"+config.StartLabel+"' to begin", render.Label)
		return
	}
	g.session.Draw(f)
}
