package scenes

import (
	"fmt"
	"image/color"
	"log/slog"

	"chosenoffset.com/homestead/internal/input"
	"chosenoffset.com/homestead/internal/interaction"
	"chosenoffset.com/homestead/internal/render"
	"chosenoffset.com/homestead/internal/render/lighting"
	"chosenoffset.com/homestead/internal/scene"
)

var doorLampColor = color.NRGBA{255, 190, 90, 255}

// base is the behavior shared by every concrete scene: document loading,
// spawning, the per-frame World step, dispatching activated interactables
// and drawing with the optional day/night tint.
type base struct {
	*scene.World

	ctx          *Context
	name         string
	defaultSpawn string
	palette      scene.Palette
	light        *lighting.Manager // nil for scenes without a day/night tint
	log          *slog.Logger
}

func newBase(ctx *Context, name, defaultSpawn string, palette scene.Palette, tinted bool) *base {
	b := &base{
		ctx:          ctx,
		name:         name,
		defaultSpawn: defaultSpawn,
		palette:      palette,
		log:          ctx.logger().With("scene", name),
	}
	if tinted {
		b.light = lighting.NewManager()
	}
	return b
}

// Load implements scene.Scene.
func (b *base) Load() error {
	doc, err := scene.LoadDocument(scene.DocumentPath(b.ctx.SceneDir, b.name))
	if err != nil {
		return fmt.Errorf("load %s: %w", b.name, err)
	}
	b.World = scene.NewWorld(doc, b.ctx.worldTuning(), b.ctx.State, b.ctx.Bus)
	b.Dialogue.SetDispatcher(newEffects(b.ctx, b.Dialogue))

	if b.light != nil {
		for _, e := range doc.Interactables {
			if !e.Kind.IsDoor() {
				continue
			}
			c := e.Rect.Center()
			b.light.AddLight(lighting.LightSource{X: c.X, Y: c.Y, Radius: 32, Intensity: 0.6, Color: doorLampColor})
		}
	}
	b.log.Debug("scene loaded", "interactables", len(doc.Interactables), "triggers", len(doc.Triggers))
	return nil
}

// Enter implements scene.Scene.
func (b *base) Enter(p scene.Payload) error {
	b.Spawn(p, b.defaultSpawn)
	return nil
}

// step runs the shared frame and dispatches an activated interactable. It
// returns the interaction result and whether the frame was consumed.
func (b *base) step(dtMillis float64, actions *input.Actions) (interaction.Result, bool) {
	res, done := b.Step(dtMillis, actions)
	if done {
		return res, true
	}
	if res.Activated {
		b.activate(res.Target)
	}
	return res, false
}

// Update implements scene.Scene.
func (b *base) Update(dtMillis float64, actions *input.Actions) error {
	b.step(dtMillis, actions)
	return nil
}

// Unload implements scene.Scene.
func (b *base) Unload() {
	if b.World != nil {
		b.Leave()
	}
}

// Draw implements scene.Scene.
func (b *base) Draw(screen render.Image) {
	b.draw(screen, nil)
}

// draw renders the world, then extra (scene-specific layers under the
// player), the player and the tint.
func (b *base) draw(screen render.Image, extra func(r render.Renderer, screen render.Image)) {
	r := b.ctx.Renderer
	if r == nil || b.World == nil {
		return
	}
	b.DrawBase(r, screen, b.palette)
	if extra != nil {
		extra(r, screen)
	}
	b.DrawPlayer(r, screen, b.palette)

	if b.light != nil {
		b.light.Update(b.ctx.Clock.Minutes())
		b.light.UpdatePlayerLightPosition(b.PlayerPosition())
		b.light.Draw(r, screen, b.Camera.Apply)
	}
}
