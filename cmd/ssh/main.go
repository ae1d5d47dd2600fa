package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/google/uuid"

	"github.com/tomz197/stressgame/internal/config"
	"github.com/tomz197/stressgame/internal/draw"
	"github.com/tomz197/stressgame/internal/game"
	"github.com/tomz197/stressgame/internal/input"
	"github.com/tomz197/stressgame/internal/loop"
)

const shutdownGrace = 15 * time.Second

func main() {
	cfg, err := config.FromEnvironment()
	if err != nil {
		log.Fatal("load config", "err", err)
	}
	logger := config.NewLogger(cfg.Log, os.Stderr, "ssh")

	if err := serve(cfg, logger); err != nil {
		logger.Fatal("ssh server", "err", err)
	}
}

func serve(cfg config.Config, logger *log.Logger) error {
	ctx, cancelSessions := context.WithCancel(context.Background())
	defer cancelSessions()

	var sessions sync.WaitGroup
	games := &gameHandler{
		ctx:      ctx,
		cfg:      cfg,
		logger:   logger,
		sessions: &sessions,
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(cfg.SSH.Host, cfg.SSH.Port)),
		wish.WithMiddleware(
			games.middleware,
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
		// TCP_NODELAY keeps input latency down
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if cfg.SSH.HostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(cfg.SSH.HostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	listenErr := make(chan error, 1)
	logger.Info("starting SSH server", "host", cfg.SSH.Host, "port", cfg.SSH.Port, "idleTimeout", cfg.SSH.IdleTimeout)
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			listenErr <- err
		}
	}()

	select {
	case err := <-listenErr:
		return fmt.Errorf("listen: %w", err)
	case <-done:
	}

	logger.Info("shutting down, notifying players")
	cancelSessions()
	if !waitTimeout(&sessions, shutdownGrace) {
		logger.Warn("sessions still running after grace period", "grace", shutdownGrace)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// gameHandler gives every SSH session its own game.
type gameHandler struct {
	ctx      context.Context
	cfg      config.Config
	logger   *log.Logger
	sessions *sync.WaitGroup
}

func (h *gameHandler) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		h.sessions.Add(1)
		defer h.sessions.Done()

		logger := h.logger.With("session", uuid.NewString(), "user", sess.User())
		logger.Info("session started", "term", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		sizes := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				sizes.update(win.Width, win.Height)
			}
		}()

		ctx, cancel := context.WithCancel(h.ctx)
		defer cancel()
		go func() {
			<-sess.Context().Done()
			cancel()
		}()

		screen := draw.NewTerminal(sess, sizes.getSize, h.cfg.Terminal.MaxWidth, h.cfg.Terminal.MaxHeight)
		screen.Open()

		g := game.New(game.WithLogger(logger))
		actions := input.StartStream(bufio.NewReader(sess))
		client := loop.NewClient(g, actions, screen, loop.ClientOptions{
			IdleTimeout: h.cfg.SSH.IdleTimeout,
			Logger:      logger,
		})

		err := client.Run(ctx)
		screen.Close()
		switch {
		case err == nil:
		case errors.Is(err, loop.ErrIdle):
			fmt.Fprintln(sess, "Disconnected after being idle. Bye!")
		case errors.Is(err, context.Canceled) && h.ctx.Err() != nil:
			fmt.Fprintln(sess, "Server is shutting down. Thanks for playing!")
		case errors.Is(err, context.Canceled):
		default:
			logger.Error("game error", "err", err)
		}

		logger.Info("session ended")
		next(sess)
	}
}

// waitTimeout waits for wg and reports whether it finished within d.
func waitTimeout(wg *sync.WaitGroup, d time.Duration) bool {
	finished := make(chan struct{})
	go func() {
		wg.Wait()
		close(finished)
	}()
	select {
	case <-finished:
		return true
	case <-time.After(d):
		return false
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
