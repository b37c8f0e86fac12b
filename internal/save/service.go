package save

import (
	"context"
	"fmt"
	"log/slog"

	"chosenoffset.com/homestead/internal/core/clock"
	"chosenoffset.com/homestead/internal/core/events"
	"chosenoffset.com/homestead/internal/core/gamestate"
	"chosenoffset.com/homestead/internal/scene"
)

// Service ties the store to the live session: it captures the clock, the
// game state and the scene manager's position into snapshots and restores
// them.
type Service struct {
	store  Store
	clock  *clock.Clock
	state  *gamestate.GameState
	scenes *scene.Manager
	log    *slog.Logger

	// DefaultScene and DefaultSpawn are used for new games and for saves
	// naming an unknown scene.
	DefaultScene string
	DefaultSpawn string
}

// NewService creates a save service.
func NewService(store Store, clk *clock.Clock, gs *gamestate.GameState, mgr *scene.Manager, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		store:        store,
		clock:        clk,
		state:        gs,
		scenes:       mgr,
		log:          log,
		DefaultScene: "town",
		DefaultSpawn: "start",
	}
}

// Store returns the backing store.
func (s *Service) Store() Store { return s.store }

// Subscribe autosaves on every scene change. It must be subscribed before
// the scene manager so the save is written before the old scene unloads.
func (s *Service) Subscribe(bus *events.Bus) {
	bus.OnSceneChange(func(e events.SceneChange) {
		snap := s.capture(e.Target)
		snap.SetSpawn(e.Spawn)
		if err := s.store.WriteAutosave(context.Background(), snap); err != nil {
			s.log.Warn("autosave on scene change failed", "target", e.Target, "error", err)
			return
		}
		s.log.Debug("autosaved", "scene", e.Target, "spawn", e.Spawn)
	})
}

func (s *Service) capture(sceneName string) *Snapshot {
	minutes := s.clock.Minutes()
	rec := s.state.ToRecord()
	return &Snapshot{
		Scene:       sceneName,
		TimeMinutes: &minutes,
		GameState:   &rec,
	}
}

// Capture snapshots the live session at the player's exact position.
func (s *Service) Capture() (*Snapshot, error) {
	name := s.scenes.CurrentName()
	if name == "" {
		return nil, fmt.Errorf("no active scene to save")
	}
	snap := s.capture(name)
	if pos, ok := s.scenes.PlayerPosition(); ok {
		snap.SetPosition(pos)
	}
	return snap, nil
}

// Autosave writes the live session to the autosave slot (used on exit).
func (s *Service) Autosave(ctx context.Context) error {
	snap, err := s.Capture()
	if err != nil {
		return err
	}
	if err := s.store.WriteAutosave(ctx, snap); err != nil {
		return fmt.Errorf("failed to autosave: %w", err)
	}
	s.log.Info("autosaved", "scene", snap.Scene)
	return nil
}

// SaveNamed writes the live session as a new named save.
func (s *Service) SaveNamed(ctx context.Context, name string) (Slot, error) {
	snap, err := s.Capture()
	if err != nil {
		return Slot{}, err
	}
	slot, err := s.store.WriteNamed(ctx, name, snap)
	if err != nil {
		return Slot{}, fmt.Errorf("failed to save %q: %w", name, err)
	}
	return slot, nil
}

// Restore applies a snapshot: game state, clock, then the scene at its
// saved spawn or position. A snapshot naming an unregistered scene falls
// back to the default scene.
func (s *Service) Restore(snap *Snapshot) error {
	if snap.GameState != nil {
		s.state.FromRecord(*snap.GameState)
	} else {
		s.state.Reset()
	}
	if snap.TimeMinutes != nil {
		s.clock.SetMinutes(*snap.TimeMinutes)
	} else {
		s.clock.SetMorning()
	}

	target, payload := snap.Scene, scene.Payload{}
	switch pos, ok := snap.Position(); {
	case snap.SpawnName() != "":
		payload = scene.AtSpawn(snap.SpawnName())
	case ok:
		payload = scene.AtPosition(pos)
	}
	if !s.scenes.Has(target) {
		s.log.Warn("save names unknown scene, starting at default", "scene", target)
		target, payload = s.DefaultScene, scene.AtSpawn(s.DefaultSpawn)
	}

	if err := s.scenes.Replace(target, payload); err != nil {
		return fmt.Errorf("failed to restore save: %w", err)
	}
	return nil
}

// LoadAndRestore reads a save by ref and restores it.
func (s *Service) LoadAndRestore(ctx context.Context, ref string) error {
	snap, err := s.store.Load(ctx, ref)
	if err != nil {
		return err
	}
	return s.Restore(snap)
}

// NewGame resets progression and the clock and enters the default scene.
func (s *Service) NewGame() error {
	s.state.Reset()
	s.clock.SetMorning()
	return s.scenes.Replace(s.DefaultScene, scene.AtSpawn(s.DefaultSpawn))
}

// Continue restores the autosave if there is one, otherwise starts a new
// game. It reports whether a save was restored.
func (s *Service) Continue(ctx context.Context) (bool, error) {
	snap, err := s.store.LoadAutosave(ctx)
	if err != nil {
		return false, err
	}
	if snap == nil {
		return false, s.NewGame()
	}
	return true, s.Restore(snap)
}
