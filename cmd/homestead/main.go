package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"chosenoffset.com/homestead/internal/config"
	"chosenoffset.com/homestead/internal/game"
	"chosenoffset.com/homestead/internal/input"
	"chosenoffset.com/homestead/internal/logging"
	ebitenrender "chosenoffset.com/homestead/internal/render/ebiten"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	log := logging.Setup(cfg.Settings)

	store, err := game.OpenStore(cfg, log)
	if err != nil {
		log.Error("failed to open save store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	g := game.Build(cfg, renderer, store, log)
	g.FPS = ebitenrender.ActualFPS

	ctx := context.Background()
	manager := game.NewManager(ctx, g, renderer, input.NewPoller(inputMgr, nil),
		engine.TPS(), cfg.WindowWidth, cfg.WindowHeight, log)

	// Set up the window
	engine.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	engine.SetWindowTitle("Homestead")
	engine.SetWindowResizable(true)

	log.Info("starting game", "env", cfg.Environment, "backend", cfg.SaveBackend)
	runErr := engine.RunGame(manager)
	if err := manager.Shutdown(ctx); err != nil {
		log.Error("final autosave failed", "error", err)
	}
	if runErr != nil && !errors.Is(runErr, game.ErrQuit) {
		log.Error("game exited with error", "error", runErr)
		store.Close()
		os.Exit(1)
	}
	log.Info("goodbye")
}
