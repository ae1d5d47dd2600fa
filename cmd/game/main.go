package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomz197/stressgame/internal/config"
	"github.com/tomz197/stressgame/internal/draw"
	"github.com/tomz197/stressgame/internal/game"
	"github.com/tomz197/stressgame/internal/input"
	"github.com/tomz197/stressgame/internal/loop"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnvironment()
	if err != nil {
		return err
	}

	// The screen belongs to the game while it runs; logs are held back
	// until the terminal is restored.
	var logs bytes.Buffer
	logger := config.NewLogger(cfg.Log, &logs, "game")
	defer func() {
		_, _ = logs.WriteTo(os.Stderr)
	}()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	screen := draw.NewTerminal(os.Stdout, draw.DefaultTermSizeFunc, cfg.Terminal.MaxWidth, cfg.Terminal.MaxHeight)
	screen.Open()
	defer screen.Close()

	g := game.New(game.WithLogger(logger))
	actions := input.StartStream(bufio.NewReader(os.Stdin))
	client := loop.NewClient(g, actions, screen, loop.ClientOptions{Logger: logger})

	err = client.Run(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Info("terminated by signal")
		return nil
	}
	return err
}
