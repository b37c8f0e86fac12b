package scenes

import (
	"image/color"

	"chosenoffset.com/homestead/internal/render"
	"chosenoffset.com/homestead/internal/scene"
)

// Collider tag marking the player's house in the town document.
const tagHomeBuilding = "building.home"

var homeMarkerColor = color.RGBA{255, 215, 0, 255}

// TownScene is the outdoor hub linking the home, the shop and the farmland.
type TownScene struct {
	*base
}

// NewTown creates the town scene.
func NewTown(ctx *Context) *TownScene {
	return &TownScene{base: newBase(ctx, Town, "start", scene.DefaultPalette(), true)}
}

// Draw implements scene.Scene. The player's house is outlined and labeled.
func (s *TownScene) Draw(screen render.Image) {
	s.draw(screen, func(r render.Renderer, screen render.Image) {
		for _, c := range s.Doc.Colliders {
			if c.Tag != tagHomeBuilding {
				continue
			}
			applied := s.Camera.Apply(c.Rect)
			r.StrokeRect(screen, applied, 3, homeMarkerColor)
			w, h := r.MeasureText("Home")
			x := int(applied.Center().X) - w/2
			y := max(0, int(applied.Top())-h-4)
			r.DrawText(screen, "Home", x, y, homeMarkerColor)
			return
		}
	})
}
