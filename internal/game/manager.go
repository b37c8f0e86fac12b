package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"chosenoffset.com/homestead/internal/input"
	"chosenoffset.com/homestead/internal/render"
	"chosenoffset.com/homestead/internal/save"
)

// ErrQuit is returned from Update when the player chose to quit.
var ErrQuit = errors.New("quit requested")

// Manager handles the overall application state: the title menu, play and
// the pause menu. It implements render.Game.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	State        State

	Game     *Game
	Renderer render.Renderer
	Poller   *input.Poller

	title *Menu
	pause *Menu

	// dtMillis is the fixed frame step derived from the engine's TPS.
	dtMillis float64

	ctx context.Context
	log *slog.Logger
}

// NewManager creates a manager that starts at the title menu.
func NewManager(ctx context.Context, g *Game, r render.Renderer, poller *input.Poller, tps, width, height int, log *slog.Logger) *Manager {
	if tps <= 0 {
		tps = 60
	}
	if log == nil {
		log = slog.Default()
	}
	m := &Manager{
		ScreenWidth:  width,
		ScreenHeight: height,
		State:        StateTitle,
		Game:         g,
		Renderer:     r,
		Poller:       poller,
		dtMillis:     1000.0 / float64(tps),
		ctx:          ctx,
		log:          log,
	}
	m.pause = &Menu{Title: "Paused", Items: []MenuItem{
		{Label: "Resume", kind: itemResume},
		{Label: "Save and return to title", kind: itemToTitle},
		{Label: "Quit", kind: itemQuit},
	}}
	m.RefreshTitle()
	return m
}

// RefreshTitle rebuilds the title menu from the save store.
func (m *Manager) RefreshTitle() {
	items := []MenuItem{}
	store := m.Game.Saves.Store()

	hasAny, err := store.HasAny(m.ctx)
	if err != nil {
		m.log.Warn("could not check for saves", "error", err)
	}
	if err == nil && !hasAny {
		items = append(items,
			MenuItem{Label: "New Game", kind: itemNewGame},
			MenuItem{Label: "Quit", kind: itemQuit})
		m.title = &Menu{Title: "Homestead", Items: items}
		return
	}

	if snap, err := store.LoadAutosave(m.ctx); err != nil {
		m.log.Warn("could not read autosave", "error", err)
	} else if snap != nil {
		items = append(items, MenuItem{Label: "Continue", kind: itemContinue})
	}
	items = append(items, MenuItem{Label: "New Game", kind: itemNewGame})

	slots, err := store.List(m.ctx)
	if err != nil {
		m.log.Warn("could not list saves", "error", err)
	}
	listed := 0
	for _, s := range slots {
		if s.IsAutosave || listed == maxListedSaves {
			continue
		}
		label := "Load: " + save.DisplayName(s.Name)
		if s.CreatedAt != "" {
			label += " (" + s.CreatedAt + ")"
		}
		items = append(items, MenuItem{Label: label, Ref: s.Ref, kind: itemLoad})
		listed++
	}
	items = append(items, MenuItem{Label: "Quit", kind: itemQuit})
	m.title = &Menu{Title: "Homestead", Items: items}
}

// TitleMenu returns the current title menu.
func (m *Manager) TitleMenu() *Menu { return m.title }

// PauseMenu returns the pause menu.
func (m *Manager) PauseMenu() *Menu { return m.pause }

// Update implements render.Game.
func (m *Manager) Update() error {
	actions := m.Poller.Poll()
	return m.Tick(&actions)
}

// Tick runs one frame with the given actions.
func (m *Manager) Tick(actions *input.Actions) error {
	switch m.State {
	case StateTitle:
		if it, ok := m.title.Update(actions); ok {
			return m.choose(it)
		}
	case StatePlaying:
		if err := m.Game.Step(m.ctx, m.dtMillis, actions); err != nil {
			return err
		}
		// A cancel still unconsumed after the scene ran was not used by a
		// dialogue, so it opens the pause menu.
		if actions.Pressed(input.Cancel) {
			m.State = StatePaused
		}
	case StatePaused:
		if actions.Pressed(input.Cancel) {
			m.State = StatePlaying
			return nil
		}
		if it, ok := m.pause.Update(actions); ok {
			return m.choose(it)
		}
	}
	return nil
}

func (m *Manager) choose(it MenuItem) error {
	switch it.kind {
	case itemContinue:
		restored, err := m.Game.Saves.Continue(m.ctx)
		if err != nil {
			return fmt.Errorf("continue: %w", err)
		}
		m.log.Info("session started", "restored", restored)
		m.State = StatePlaying
	case itemNewGame:
		// A new game replaces the session Continue would resume.
		if err := m.Game.Saves.Store().DeleteAutosave(m.ctx); err != nil {
			m.log.Warn("could not delete autosave", "error", err)
		}
		if err := m.Game.Saves.NewGame(); err != nil {
			return fmt.Errorf("new game: %w", err)
		}
		m.State = StatePlaying
	case itemLoad:
		if err := m.Game.Saves.LoadAndRestore(m.ctx, it.Ref); err != nil {
			m.log.Warn("failed to load save", "ref", it.Ref, "error", err)
			m.RefreshTitle()
			return nil
		}
		m.State = StatePlaying
	case itemResume:
		m.State = StatePlaying
	case itemToTitle:
		if err := m.Game.Close(m.ctx); err != nil {
			m.log.Warn("autosave failed", "error", err)
		}
		m.RefreshTitle()
		m.State = StateTitle
	case itemQuit:
		return ErrQuit
	}
	return nil
}

// Draw implements render.Game.
func (m *Manager) Draw(screen render.Image) {
	switch m.State {
	case StateTitle:
		m.title.Draw(m.Renderer, screen, true)
	case StatePlaying:
		m.drawPlaying(screen)
	case StatePaused:
		m.drawPlaying(screen)
		m.drawDim(screen)
		m.pause.Draw(m.Renderer, screen, false)
	}
}

// Layout implements render.Game.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != m.ScreenWidth || outsideHeight != m.ScreenHeight {
		m.ScreenWidth = outsideWidth
		m.ScreenHeight = outsideHeight
		if m.Game.HUD != nil {
			m.Game.HUD.SetScreenSize(outsideWidth, outsideHeight)
		}
	}
	return m.ScreenWidth, m.ScreenHeight
}

// Shutdown autosaves a live session. main calls it after the loop ends.
func (m *Manager) Shutdown(ctx context.Context) error {
	return m.Game.Close(ctx)
}
