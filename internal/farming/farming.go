// Package farming implements the plot growth state machine. Plots move
// untilled → tilled → planted → ready → tilled; only planted → ready is driven
// by the clock, every other step by a player action.
package farming

import (
	"fmt"

	"chosenoffset.com/homestead/internal/core/clock"
	"chosenoffset.com/homestead/internal/core/gamestate"
	"chosenoffset.com/homestead/internal/core/geom"
	"chosenoffset.com/homestead/internal/interaction"
)

// DefaultGrowthMinutes is the in-game time a planted plot needs to ripen.
const DefaultGrowthMinutes = 720.0

// State is a plot's lifecycle stage.
type State string

const (
	Untilled State = "untilled"
	Tilled   State = "tilled"
	Planted  State = "planted"
	Ready    State = "ready"
)

// ParseState converts a persisted state name. Unknown names are untilled.
func ParseState(s string) State {
	switch State(s) {
	case Tilled, Planted, Ready:
		return State(s)
	default:
		return Untilled
	}
}

// Plot is one farmable tile.
type Plot struct {
	ID             string
	Rect           geom.Rect
	State          State
	PlantedMinutes *float64
}

// Bounds implements interaction.Locatable.
func (p *Plot) Bounds() geom.Rect { return p.Rect }

func (p *Plot) String() string {
	return fmt.Sprintf("Plot{%s %s}", p.ID, p.State)
}

// Record converts the plot to its persisted form.
func (p *Plot) Record() gamestate.PlotRecord {
	rec := gamestate.PlotRecord{State: string(p.State)}
	if p.PlantedMinutes != nil {
		m := *p.PlantedMinutes
		rec.PlantedMinutes = &m
	}
	return rec
}

// Elapsed returns the wrap-aware minutes since planting at time now.
func Elapsed(planted, now float64) float64 {
	return clock.Wrap(now - planted)
}

// Ripe reports whether a plot planted at planted has grown by now.
func Ripe(planted, now, growth float64) bool {
	return Elapsed(planted, now) >= growth
}

// Engine owns the live plots of a farmland scene and mirrors every change into
// the shared game state.
type Engine struct {
	plots  []*Plot
	byID   map[string]*Plot
	state  *gamestate.GameState
	growth float64
	radius float64

	SeedItem string
	CropItem string
}

// NewEngine creates an engine over plots. A non-positive growth uses
// DefaultGrowthMinutes.
func NewEngine(gs *gamestate.GameState, plots []*Plot, growth float64) *Engine {
	if growth <= 0 {
		growth = DefaultGrowthMinutes
	}
	e := &Engine{
		plots:    plots,
		byID:     make(map[string]*Plot, len(plots)),
		state:    gs,
		growth:   growth,
		radius:   interaction.DefaultRadius,
		SeedItem: gamestate.ItemSeeds,
		CropItem: gamestate.ItemCarrot,
	}
	for _, p := range plots {
		if p.State == "" {
			p.State = Untilled
		}
		e.byID[p.ID] = p
	}
	return e
}

// Plots returns the live plots in document order.
func (e *Engine) Plots() []*Plot { return e.plots }

// Plot looks up a plot by id.
func (e *Engine) Plot(id string) (*Plot, bool) {
	p, ok := e.byID[id]
	return p, ok
}

// GrowthMinutes returns the configured growth duration.
func (e *Engine) GrowthMinutes() float64 { return e.growth }

// Restore loads persisted plot state from the game state. Plots with no
// record keep their current state.
func (e *Engine) Restore() {
	for _, p := range e.plots {
		rec, ok := e.state.Plot(p.ID)
		if !ok {
			continue
		}
		p.State = ParseState(rec.State)
		p.PlantedMinutes = nil
		if rec.PlantedMinutes != nil {
			m := *rec.PlantedMinutes
			p.PlantedMinutes = &m
		}
		if p.State == Planted && p.PlantedMinutes == nil {
			p.State = Tilled
		}
	}
}

// Persist mirrors every plot into the game state.
func (e *Engine) Persist() {
	for _, p := range e.plots {
		e.mirror(p)
	}
}

func (e *Engine) mirror(p *Plot) {
	e.state.SetPlot(p.ID, p.Record())
}

// Tick ripens every planted plot whose growth time has elapsed at now. It
// returns the number of plots that became ready.
func (e *Engine) Tick(now float64) int {
	ripened := 0
	for _, p := range e.plots {
		if p.State != Planted || p.PlantedMinutes == nil {
			continue
		}
		if Ripe(*p.PlantedMinutes, now, e.growth) {
			p.State = Ready
			e.mirror(p)
			ripened++
		}
	}
	return ripened
}

// Till turns untilled soil into a seed bed.
func (e *Engine) Till(p *Plot) bool {
	if p == nil || p.State != Untilled {
		return false
	}
	p.State = Tilled
	e.mirror(p)
	return true
}

// Plant sows one seed into a tilled plot at time now. It fails without any
// change when the plot is not tilled or no seed is held.
func (e *Engine) Plant(p *Plot, now float64) bool {
	if p == nil || p.State != Tilled {
		return false
	}
	if !e.state.RemoveItem(e.SeedItem, 1) {
		return false
	}
	p.State = Planted
	p.PlantedMinutes = &now
	e.mirror(p)
	return true
}

// Harvest collects one crop from a ready plot and returns it to tilled.
func (e *Engine) Harvest(p *Plot) bool {
	if p == nil || p.State != Ready {
		return false
	}
	p.State = Tilled
	p.PlantedMinutes = nil
	e.state.AddItem(e.CropItem, 1)
	e.mirror(p)
	return true
}

// Near returns the plot closest to the player within reach.
func (e *Engine) Near(player geom.Rect) (*Plot, bool) {
	return interaction.Closest(player, e.plots, e.radius)
}

// TickRecords ripens persisted plots directly in the game state. The game
// loop calls it every frame so crops keep growing while the player is in
// another scene. It returns the number of plots that became ready.
func TickRecords(gs *gamestate.GameState, now, growth float64) int {
	if growth <= 0 {
		growth = DefaultGrowthMinutes
	}
	ripened := 0
	for id, rec := range gs.FarmingPlots {
		if State(rec.State) != Planted || rec.PlantedMinutes == nil {
			continue
		}
		if Ripe(*rec.PlantedMinutes, now, growth) {
			rec.State = string(Ready)
			gs.FarmingPlots[id] = rec
			ripened++
		}
	}
	return ripened
}
