// Package loop drives a game at a fixed frame rate: input, update, draw.
package loop

//go:generate go tool mockgen -source=loop.go -destination=mocks/mock_loop.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/stressgame/internal/game"
	"github.com/tomz197/stressgame/internal/game/config"
	"github.com/tomz197/stressgame/internal/input"
	"github.com/tomz197/stressgame/internal/render"
)

// ErrIdle is returned by Run when no input arrived within the idle timeout.
var ErrIdle = errors.New("client idle")

// Presenter draws a finished frame.
type Presenter interface {
	Present(f *render.Frame) error
}

// ActionSource yields the actions received since the previous poll without blocking.
type ActionSource interface {
	Poll() []input.Action
}

// ClientOptions configures the client.
type ClientOptions struct {
	FrameTime   time.Duration // Defaults to the game's target frame time
	IdleTimeout time.Duration // Zero disables the idle disconnect
	Logger      *log.Logger
}

// Client runs one game for one player.
type Client struct {
	game      *game.Game
	actions   ActionSource
	presenter Presenter
	frame     render.Frame
	opts      ClientOptions
	logger    *log.Logger
	lastInput time.Time
}

// NewClient creates a client playing g with input from actions and output to p.
func NewClient(g *game.Game, actions ActionSource, p Presenter, opts ClientOptions) *Client {
	if opts.FrameTime <= 0 {
		opts.FrameTime = config.TargetFrameTime
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Client{
		game:      g,
		actions:   actions,
		presenter: p,
		opts:      opts,
		logger:    logger,
	}
}

// Run plays until the player quits (nil), the client idles out (ErrIdle),
// presenting fails, or ctx is cancelled (ctx.Err()).
func (c *Client) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.opts.FrameTime)
	defer ticker.Stop()

	last := time.Now()
	c.lastInput = last
	delta := time.Duration(0)

	for {
		done, err := c.Step(last, delta)
		if done || err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			delta = now.Sub(last)
			last = now
		}
	}
}

// Step processes one frame at time now, delta after the previous one.
// It reports done when the client should stop.
func (c *Client) Step(now time.Time, delta time.Duration) (done bool, err error) {
	if c.lastInput.IsZero() {
		c.lastInput = now
	}

	actions := c.actions.Poll()
	if len(actions) > 0 {
		c.lastInput = now
	}
	for _, a := range actions {
		switch a {
		case input.ActionToggle:
			c.game.Toggle()
		case input.ActionBoost:
			c.game.Boost()
		case input.ActionTheme:
			c.game.ToggleTheme()
		case input.ActionQuit:
			c.logger.Debug("player quit")
			return true, nil
		}
	}

	if c.opts.IdleTimeout > 0 && now.Sub(c.lastInput) > c.opts.IdleTimeout {
		c.logger.Info("disconnecting idle client", "idle", now.Sub(c.lastInput).Round(time.Second))
		return true, ErrIdle
	}

	c.game.Tick(delta)
	c.game.Draw(&c.frame)
	if err := c.presenter.Present(&c.frame); err != nil {
		return true, fmt.Errorf("present frame: %w", err)
	}
	return false, nil
}
