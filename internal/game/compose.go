package game

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"chosenoffset.com/homestead/internal/config"
	"chosenoffset.com/homestead/internal/core/clock"
	"chosenoffset.com/homestead/internal/core/events"
	"chosenoffset.com/homestead/internal/core/gamestate"
	"chosenoffset.com/homestead/internal/render"
	"chosenoffset.com/homestead/internal/save"
	"chosenoffset.com/homestead/internal/scene"
	"chosenoffset.com/homestead/internal/scenes"
	"chosenoffset.com/homestead/internal/ui/hud"
)

// OpenStore opens the save backend selected by the configuration.
func OpenStore(cfg *config.Config, log *slog.Logger) (save.Store, error) {
	switch cfg.SaveBackend {
	case config.BackendSQLite:
		path := cfg.SQLitePath
		if !filepath.IsAbs(path) {
			path = filepath.Join(cfg.SaveDir, path)
		}
		store, err := save.OpenSQLite(path, log)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return store, nil
	case config.BackendFile, "":
		return save.NewFileStore(cfg.SaveDir, log), nil
	default:
		return nil, fmt.Errorf("unknown save backend %q", cfg.SaveBackend)
	}
}

// Build composes a session. The save service subscribes to the bus before
// the scene manager so scene-change autosaves are written before the old
// scene unloads.
func Build(cfg *config.Config, r render.Renderer, store save.Store, log *slog.Logger) *Game {
	if log == nil {
		log = slog.Default()
	}
	t := cfg.Tuning
	if t == nil {
		t = config.DefaultTuning()
	}

	clk := clock.New(t.Clock.MinutesPerSecond)
	gs := gamestate.New()
	bus := events.NewBus()
	mgr := scene.NewManager(log)

	scenes.Register(mgr, &scenes.Context{
		Clock:      clk,
		State:      gs,
		Bus:        bus,
		Tuning:     t,
		Log:        log,
		Renderer:   r,
		SceneDir:   filepath.Join(cfg.DataDir, "scenes"),
		ViewWidth:  cfg.WindowWidth,
		ViewHeight: cfg.WindowHeight,
	})

	saves := save.NewService(store, clk, gs, mgr, log)
	saves.DefaultScene = scenes.Town
	saves.DefaultSpawn = "start"
	saves.Subscribe(bus)
	mgr.Subscribe(bus)

	h := hud.New(r, clk, gs, cfg.WindowWidth, cfg.WindowHeight, cfg.DebugOverlay)
	h.Subscribe(bus)

	g := NewGame(clk, gs, bus, mgr, saves, h, t, log)
	g.Debug = cfg.DebugOverlay
	return g
}
