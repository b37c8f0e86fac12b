package game

import (
	"context"
	"fmt"
	"log/slog"

	"chosenoffset.com/homestead/internal/config"
	"chosenoffset.com/homestead/internal/core/clock"
	"chosenoffset.com/homestead/internal/core/events"
	"chosenoffset.com/homestead/internal/core/gamestate"
	"chosenoffset.com/homestead/internal/farming"
	"chosenoffset.com/homestead/internal/input"
	"chosenoffset.com/homestead/internal/save"
	"chosenoffset.com/homestead/internal/scene"
	"chosenoffset.com/homestead/internal/ui/hud"
)

// Game is one play session: the shared clock and progression, the scene
// stack, the save service and the HUD, stepped once per frame.
type Game struct {
	Clock  *clock.Clock
	State  *gamestate.GameState
	Bus    *events.Bus
	Scenes *scene.Manager
	Saves  *save.Service
	HUD    *hud.HUD
	Tuning *config.Tuning

	// Debug enables the time-skip key and the debug panel.
	Debug bool

	// FPS reports the measured frame rate for the debug panel.
	FPS func() float64

	log *slog.Logger
}

// NewGame wires a session over already composed parts.
func NewGame(clk *clock.Clock, gs *gamestate.GameState, bus *events.Bus, mgr *scene.Manager, saves *save.Service, h *hud.HUD, t *config.Tuning, log *slog.Logger) *Game {
	if t == nil {
		t = config.DefaultTuning()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Game{
		Clock:  clk,
		State:  gs,
		Bus:    bus,
		Scenes: mgr,
		Saves:  saves,
		HUD:    h,
		Tuning: t,
		log:    log,
	}
}

// Step advances the session by one frame. The clock advances first, then
// persisted plots ripen, then global keys are handled and the current scene
// runs.
func (g *Game) Step(ctx context.Context, dtMillis float64, actions *input.Actions) error {
	g.Clock.Advance(dtMillis)
	farming.TickRecords(g.State, g.Clock.Minutes(), g.Tuning.Farming.GrowthMinutes)

	if g.Debug && actions.Pressed(input.TimeSkip) {
		g.Clock.AddMinutes(g.Tuning.Clock.TimeSkipMinutes)
		g.Bus.Publish(events.Notify{Text: "Time skipped to " + g.Clock.Text()})
	}
	if actions.Pressed(input.DebugToggle) {
		g.Bus.Publish(events.PanelToggle{Panel: events.PanelDebug})
	}
	if actions.Pressed(input.InventoryToggle) {
		g.Bus.Publish(events.PanelToggle{Panel: events.PanelInventory})
	}
	if actions.Pressed(input.QuickSave) {
		g.quickSave(ctx)
	}

	if err := g.Scenes.Update(dtMillis, actions); err != nil {
		return fmt.Errorf("scene update: %w", err)
	}

	if g.HUD != nil {
		g.HUD.Update(dtMillis)
		info := hud.DebugInfo{Scene: g.Scenes.CurrentName()}
		if g.FPS != nil {
			info.FPS = g.FPS()
		}
		info.Player, info.HasPlayer = g.Scenes.PlayerPosition()
		g.HUD.SetDebugInfo(info)
	}
	return nil
}

func (g *Game) quickSave(ctx context.Context) {
	slot, err := g.Saves.SaveNamed(ctx, QuicksaveName)
	if err != nil {
		g.log.Error("quick save failed", "error", err)
		g.Bus.Publish(events.Notify{Text: "Save failed"})
		return
	}
	g.log.Info("quick saved", "ref", slot.Ref)
	g.Bus.Publish(events.Notify{Text: "Game saved"})
}

// View returns the current scene as seen by the HUD, or nil.
func (g *Game) View() hud.View {
	if v, ok := g.Scenes.Current().(hud.View); ok {
		return v
	}
	return nil
}

// Close autosaves at the player's exact position and unloads every scene.
// It is a no-op when no scene is live.
func (g *Game) Close(ctx context.Context) error {
	if g.Scenes.Depth() == 0 {
		return nil
	}
	err := g.Saves.Autosave(ctx)
	g.Scenes.Shutdown()
	return err
}
