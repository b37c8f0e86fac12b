// Package scenes holds the playable scenes: the town, the player's home, the
// shop and the farmland. Each one is a scene.World loaded from its JSON
// document plus the behavior of the interactables it contains.
package scenes

import (
	"log/slog"

	"chosenoffset.com/homestead/internal/config"
	"chosenoffset.com/homestead/internal/core/clock"
	"chosenoffset.com/homestead/internal/core/events"
	"chosenoffset.com/homestead/internal/core/gamestate"
	"chosenoffset.com/homestead/internal/render"
	"chosenoffset.com/homestead/internal/scene"
)

// Scene names as used by documents, triggers and saves.
const (
	Town         = "town"
	HomeInterior = "home_interior"
	ShopInterior = "shop_interior"
	Farmland     = "farmland"
)

// Context is the shared session state every scene works against.
type Context struct {
	Clock    *clock.Clock
	State    *gamestate.GameState
	Bus      *events.Bus
	Tuning   *config.Tuning
	Log      *slog.Logger
	Renderer render.Renderer

	// SceneDir holds one <name>.json document per scene.
	SceneDir   string
	ViewWidth  int
	ViewHeight int
}

// worldTuning converts the gameplay tuning into World parameters.
func (c *Context) worldTuning() scene.Tuning {
	t := scene.DefaultTuning()
	if c.Tuning != nil {
		t.Speed = c.Tuning.Movement.Speed
		t.RunMultiplier = c.Tuning.Movement.RunMultiplier
		t.InteractRadius = c.Tuning.Movement.InteractRadius
	}
	if c.ViewWidth > 0 && c.ViewHeight > 0 {
		t.ViewWidth = float64(c.ViewWidth)
		t.ViewHeight = float64(c.ViewHeight)
	}
	return t
}

func (c *Context) tuning() *config.Tuning {
	if c.Tuning == nil {
		c.Tuning = config.DefaultTuning()
	}
	return c.Tuning
}

func (c *Context) logger() *slog.Logger {
	if c.Log == nil {
		return slog.Default()
	}
	return c.Log
}

func (c *Context) notify(text string) {
	c.Bus.Publish(events.Notify{Text: text})
}

// Register adds every scene to mgr.
func Register(mgr *scene.Manager, ctx *Context) {
	mgr.Register(Town, func() scene.Scene { return NewTown(ctx) })
	mgr.Register(HomeInterior, func() scene.Scene { return NewHomeInterior(ctx) })
	mgr.Register(ShopInterior, func() scene.Scene { return NewShopInterior(ctx) })
	mgr.Register(Farmland, func() scene.Scene { return NewFarmland(ctx) })
}
