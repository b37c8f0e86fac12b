package scene

import (
	"image/color"
	"math"

	"chosenoffset.com/homestead/internal/core/events"
	"chosenoffset.com/homestead/internal/core/gamestate"
	"chosenoffset.com/homestead/internal/core/geom"
	"chosenoffset.com/homestead/internal/dialogue"
	"chosenoffset.com/homestead/internal/input"
	"chosenoffset.com/homestead/internal/interaction"
	"chosenoffset.com/homestead/internal/render"
)

// PlayerSize is the side length of the player's square hitbox.
const PlayerSize = 16.0

// Movement defaults.
const (
	DefaultSpeed         = 140.0 // px per second
	DefaultRunMultiplier = 1.5
	baseSPD              = 10.0
	minSpeedScale        = 0.5
)

// Tuning holds the movement and view parameters of a World.
type Tuning struct {
	Speed          float64
	RunMultiplier  float64
	InteractRadius float64
	ViewWidth      float64
	ViewHeight     float64
}

// DefaultTuning returns the stock movement parameters for a 1280×720 view.
func DefaultTuning() Tuning {
	return Tuning{
		Speed:          DefaultSpeed,
		RunMultiplier:  DefaultRunMultiplier,
		InteractRadius: interaction.DefaultRadius,
		ViewWidth:      1280,
		ViewHeight:     720,
	}
}

// World is the state and behavior every playable scene shares: the player
// avatar, movement with collision, triggers, the interaction prompt, the
// camera and the dialogue session. Concrete scenes embed it.
type World struct {
	Doc      *Document
	Player   geom.Rect
	Camera   Camera
	Tuning   Tuning
	State    *gamestate.GameState
	Bus      *events.Bus
	Dialogue *dialogue.Engine
	Resolver *interaction.Resolver

	// Prompt is the text of the interactable in reach, "" if none.
	Prompt string

	colliders []geom.Rect
}

// NewWorld builds a world over doc. The dialogue engine starts without a
// dispatcher; scenes install their own.
func NewWorld(doc *Document, t Tuning, gs *gamestate.GameState, bus *events.Bus) *World {
	if t.Speed <= 0 {
		t.Speed = DefaultSpeed
	}
	if t.RunMultiplier <= 0 {
		t.RunMultiplier = DefaultRunMultiplier
	}
	return &World{
		Doc:       doc,
		Camera:    NewCamera(t.ViewWidth, t.ViewHeight, doc.Bounds),
		Tuning:    t,
		State:     gs,
		Bus:       bus,
		Dialogue:  dialogue.NewEngine(nil),
		Resolver:  interaction.NewResolver(bus, t.InteractRadius),
		colliders: doc.ColliderRects(),
	}
}

// AddColliders appends extra blocking rectangles (e.g. scene props).
func (w *World) AddColliders(rects ...geom.Rect) {
	w.colliders = append(w.colliders, rects...)
}

// Colliders returns every blocking rectangle.
func (w *World) Colliders() []geom.Rect {
	return w.colliders
}

// Spawn places the player. A named spawn that exists wins; otherwise an
// explicit position; otherwise defaultSpawn; otherwise the first spawn.
func (w *World) Spawn(p Payload, defaultSpawn string) {
	pos, ok := geom.Point{}, false
	if p.Spawn != "" {
		pos, ok = w.Doc.Spawn(p.Spawn)
	}
	if !ok && p.Position != nil {
		pos, ok = *p.Position, true
	}
	if !ok {
		pos, ok = w.Doc.Spawn(defaultSpawn)
	}
	if !ok && len(w.Doc.Spawns) > 0 {
		pos = w.Doc.Spawns[0].Pos
	}
	w.Player = geom.RectAround(pos, PlayerSize, PlayerSize)
	w.Camera.Follow(w.Player)
}

// PlayerPosition implements Positioned.
func (w *World) PlayerPosition() geom.Point {
	return w.Player.Center()
}

// Speed returns the current movement speed in px/s given whether run is held.
func (w *World) Speed(running bool) float64 {
	speed := w.Tuning.Speed
	spd := baseSPD
	if w.State != nil {
		spd = float64(w.State.Stats.SPD)
	}
	speed *= math.Max(minSpeedScale, spd/baseSPD)
	if running && w.State != nil && w.State.Upgrade(gamestate.UpgradeBoots) {
		speed *= w.Tuning.RunMultiplier
	}
	return speed
}

// Move applies held movement for dtMillis. Each axis is moved and resolved
// against colliders separately so the player slides along walls.
func (w *World) Move(dtMillis float64, actions *input.Actions) {
	vx, vy := actions.Axis()
	if mag := math.Hypot(vx, vy); mag > 0 {
		vx, vy = vx/mag, vy/mag
	} else {
		return
	}
	speed := w.Speed(actions.Held(input.Run))
	dt := dtMillis / 1000.0
	dx, dy := vx*speed*dt, vy*speed*dt

	r := w.Player.Translate(dx, 0)
	for _, c := range w.colliders {
		if !r.Overlaps(c) {
			continue
		}
		if dx > 0 {
			r.X = c.Left() - r.W
		} else if dx < 0 {
			r.X = c.Right()
		}
	}

	r = r.Translate(0, dy)
	for _, c := range w.colliders {
		if !r.Overlaps(c) {
			continue
		}
		if dy > 0 {
			r.Y = c.Top() - r.H
		} else if dy < 0 {
			r.Y = c.Bottom()
		}
	}

	w.Player = r.ClampInside(w.Doc.Bounds)
}

// CheckTriggers publishes the action of the first trigger the player
// overlaps. It returns true when a trigger fired.
func (w *World) CheckTriggers() bool {
	for _, t := range w.Doc.Triggers {
		if !w.Player.Overlaps(t.Rect) {
			continue
		}
		if ev, ok := t.OnEnter.Event(); ok && w.Bus != nil {
			w.Bus.Publish(ev)
			return true
		}
	}
	return false
}

// Step runs the shared per-frame sequence: the dialogue gate, movement,
// triggers, the interaction prompt and the camera. It returns the
// interaction result and whether the caller should stop processing this
// frame (a dialogue consumed it or a trigger fired).
func (w *World) Step(dtMillis float64, actions *input.Actions) (interaction.Result, bool) {
	if w.Dialogue.Update(actions) {
		w.Prompt = ""
		w.Camera.Follow(w.Player)
		return interaction.Result{}, true
	}

	w.Move(dtMillis, actions)
	if w.CheckTriggers() {
		return interaction.Result{}, true
	}

	res := w.Resolver.Resolve(w.Player, w.Doc.Interactables, actions)
	w.Prompt = res.Prompt
	w.Camera.Follow(w.Player)
	return res, false
}

// PromptText returns the prompt of the interactable in reach.
func (w *World) PromptText() string { return w.Prompt }

// Session returns the scene's dialogue engine.
func (w *World) Session() *dialogue.Engine { return w.Dialogue }

// Leave flushes the dialogue session. Scenes call it from Unload.
func (w *World) Leave() {
	w.Dialogue.Reset()
	w.Prompt = ""
}

// Palette colors the world's layers.
type Palette struct {
	Ground   color.Color
	Road     color.Color
	Collider color.Color
	Door     color.Color
	NPC      color.Color
	Sign     color.Color
	Prop     color.Color
	Player   color.Color
}

// DefaultPalette returns the outdoor palette.
func DefaultPalette() Palette {
	return Palette{
		Ground:   color.RGBA{80, 170, 90, 255},
		Road:     color.RGBA{180, 180, 180, 255},
		Collider: color.RGBA{120, 120, 160, 255},
		Door:     color.RGBA{200, 80, 40, 255},
		NPC:      color.RGBA{90, 140, 230, 255},
		Sign:     color.RGBA{255, 215, 0, 255},
		Prop:     color.RGBA{180, 60, 180, 255},
		Player:   color.RGBA{240, 230, 100, 255},
	}
}

// DrawBase draws the ground, roads, colliders and interactables. Scenes draw
// their own layers on top and finish with DrawPlayer.
func (w *World) DrawBase(r render.Renderer, screen render.Image, pal Palette) {
	screen.Fill(color.RGBA{30, 30, 40, 255})
	r.FillRect(screen, w.Camera.Apply(w.Doc.Bounds), pal.Ground)
	for _, road := range w.Doc.Roads {
		r.FillRect(screen, w.Camera.Apply(road), pal.Road)
	}
	for _, c := range w.Doc.Colliders {
		r.FillRect(screen, w.Camera.Apply(c.Rect), pal.Collider)
	}
	for _, e := range w.Doc.Interactables {
		r.FillRect(screen, w.Camera.Apply(e.Rect), kindColor(e.Kind, pal))
	}
}

// DrawPlayer draws the player avatar.
func (w *World) DrawPlayer(r render.Renderer, screen render.Image, pal Palette) {
	r.FillRect(screen, w.Camera.Apply(w.Player), pal.Player)
}

func kindColor(k interaction.Kind, pal Palette) color.Color {
	switch {
	case k.IsDoor():
		return pal.Door
	case k.IsSign():
		return pal.Sign
	case k.Family() == "npc":
		return pal.NPC
	default:
		return pal.Prop
	}
}
