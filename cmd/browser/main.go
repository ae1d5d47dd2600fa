package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/stressgame/internal/browser"
	"github.com/tomz197/stressgame/internal/config"
	"github.com/tomz197/stressgame/internal/game"
	gameconfig "github.com/tomz197/stressgame/internal/game/config"
)

func main() {
	cfg, err := config.FromEnvironment()
	if err != nil {
		log.Fatal("load config", "err", err)
	}
	logger := config.NewLogger(cfg.Log, os.Stderr, "browser")

	app, err := browser.NewApp(game.New(game.WithLogger(logger)), logger)
	if err != nil {
		logger.Fatal("create app", "err", err)
	}

	w, h := app.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Stress Game")
	ebiten.SetTPS(gameconfig.TargetFPS)

	if err := ebiten.RunGame(app); err != nil {
		logger.Fatal("run game", "err", err)
	}
}
