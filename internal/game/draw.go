package game

import (
	"image/color"

	"chosenoffset.com/homestead/internal/core/geom"
	"chosenoffset.com/homestead/internal/render"
)

var dimOverlay = color.RGBA{0, 0, 0, 140}

// drawPlaying draws the scene (which applies its own lighting) and then the
// HUD on top, unaffected by the tint.
func (m *Manager) drawPlaying(screen render.Image) {
	m.Game.Scenes.Draw(screen)
	if m.Game.HUD != nil {
		m.Game.HUD.Draw(screen, m.Game.View())
	}
}

func (m *Manager) drawDim(screen render.Image) {
	w, h := screen.Size()
	m.Renderer.FillRect(screen, rectAt(0, 0, w, h), dimOverlay)
}

func rectAt(x, y, w, h int) geom.Rect {
	return geom.NewRect(float64(x), float64(y), float64(w), float64(h))
}
