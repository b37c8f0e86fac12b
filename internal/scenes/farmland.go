package scenes

import (
	"image/color"

	"chosenoffset.com/homestead/internal/farming"
	"chosenoffset.com/homestead/internal/input"
	"chosenoffset.com/homestead/internal/render"
	"chosenoffset.com/homestead/internal/scene"
)

var soilColors = map[farming.State]color.RGBA{
	farming.Untilled: {130, 105, 70, 255},
	farming.Tilled:   {110, 85, 55, 255},
	farming.Planted:  {60, 130, 60, 255},
	farming.Ready:    {200, 170, 60, 255},
}

var plotOutline = color.RGBA{0, 0, 0, 255}

// Plot prompts shown when no interactable is in reach.
var plotPrompts = map[farming.State]string{
	farming.Untilled: "T: till soil",
	farming.Tilled:   "P: plant seeds",
	farming.Planted:  "Growing...",
	farming.Ready:    "Space: harvest",
}

// FarmlandScene is the field of plots north of town.
type FarmlandScene struct {
	*base
	farm *farming.Engine
}

// NewFarmland creates the farmland scene.
func NewFarmland(ctx *Context) *FarmlandScene {
	p := scene.DefaultPalette()
	p.Ground = color.RGBA{150, 130, 80, 255}
	p.Collider = color.RGBA{100, 80, 60, 255}
	return &FarmlandScene{base: newBase(ctx, Farmland, "south_entry", p, true)}
}

// Farm returns the plot engine. It is nil before Load.
func (s *FarmlandScene) Farm() *farming.Engine { return s.farm }

// Load implements scene.Scene.
func (s *FarmlandScene) Load() error {
	if err := s.base.Load(); err != nil {
		return err
	}
	plots := make([]*farming.Plot, len(s.Doc.Plots))
	for i, def := range s.Doc.Plots {
		plots[i] = &farming.Plot{ID: def.ID, Rect: def.Rect, State: farming.Untilled}
	}
	t := s.ctx.tuning().Farming
	s.farm = farming.NewEngine(s.ctx.State, plots, t.GrowthMinutes)
	s.farm.SeedItem = t.SeedItem
	s.farm.CropItem = t.CropItem
	return nil
}

// Enter implements scene.Scene. Plot state is restored from the game state
// and caught up to the current time.
func (s *FarmlandScene) Enter(p scene.Payload) error {
	if err := s.base.Enter(p); err != nil {
		return err
	}
	s.farm.Restore()
	s.farm.Tick(s.ctx.Clock.Minutes())
	return nil
}

// Update implements scene.Scene.
func (s *FarmlandScene) Update(dtMillis float64, actions *input.Actions) error {
	now := s.ctx.Clock.Minutes()
	if n := s.farm.Tick(now); n > 0 {
		s.log.Debug("plots ripened", "count", n)
	}

	res, done := s.step(dtMillis, actions)
	if done || res.Found {
		return nil
	}

	plot, ok := s.farm.Near(s.Player)
	if !ok {
		return nil
	}
	gs := s.ctx.State
	switch {
	case actions.Pressed(input.Till):
		if s.farm.Till(plot) {
			s.ctx.notify("Tilled the soil")
		}
	case actions.Pressed(input.Plant):
		if plot.State != farming.Tilled {
			break
		}
		if s.farm.Plant(plot, now) {
			s.ctx.notify("-1 " + gs.DisplayName(s.farm.SeedItem))
		} else {
			s.ctx.notify("You need seeds")
		}
	case actions.Pressed(input.Interact):
		if s.farm.Harvest(plot) {
			s.ctx.notify("+1 " + gs.DisplayName(s.farm.CropItem))
		}
	}
	s.Prompt = plotPrompts[plot.State]
	return nil
}

// Unload implements scene.Scene. Plot state is written back to the game
// state before the scene is dropped.
func (s *FarmlandScene) Unload() {
	if s.farm != nil {
		s.farm.Persist()
	}
	s.base.Unload()
}

// Draw implements scene.Scene.
func (s *FarmlandScene) Draw(screen render.Image) {
	s.draw(screen, func(r render.Renderer, screen render.Image) {
		for _, p := range s.farm.Plots() {
			rect := s.Camera.Apply(p.Rect)
			r.FillRect(screen, rect, soilColors[p.State])
			r.StrokeRect(screen, rect, 1, plotOutline)
		}
	})
}
