package game

import (
	"image/color"

	"chosenoffset.com/homestead/internal/input"
	"chosenoffset.com/homestead/internal/render"
)

// MenuItem is one selectable menu line.
type MenuItem struct {
	Label string
	Ref   string // save reference for load entries
	kind  itemKind
}

type itemKind int

const (
	itemContinue itemKind = iota
	itemNewGame
	itemLoad
	itemResume
	itemToTitle
	itemQuit
)

// Menu is a vertical list navigated with up/down and confirmed with
// interact.
type Menu struct {
	Title    string
	Items    []MenuItem
	selected int
}

// Selected returns the highlighted index.
func (m *Menu) Selected() int { return m.selected }

// Update moves the highlight and reports the confirmed item, if any.
func (m *Menu) Update(actions *input.Actions) (MenuItem, bool) {
	if len(m.Items) == 0 {
		return MenuItem{}, false
	}
	if actions.Pressed(input.MoveUp) {
		m.selected = (m.selected - 1 + len(m.Items)) % len(m.Items)
	}
	if actions.Pressed(input.MoveDown) {
		m.selected = (m.selected + 1) % len(m.Items)
	}
	if actions.Pressed(input.Interact) {
		return m.Items[m.selected], true
	}
	return MenuItem{}, false
}

var (
	menuBackground = color.RGBA{30, 30, 40, 255}
	menuText       = color.RGBA{255, 255, 255, 255}
	menuHighlight  = color.RGBA{60, 60, 90, 255}
)

// Draw renders the menu centered horizontally.
func (m *Menu) Draw(r render.Renderer, screen render.Image, fill bool) {
	w, _ := screen.Size()
	if fill {
		screen.Fill(menuBackground)
	}
	y := 120
	tw, _ := r.MeasureText(m.Title)
	r.DrawText(screen, m.Title, (w-tw)/2, y, menuText)
	y += 50
	for i, it := range m.Items {
		label := "  " + it.Label
		if i == m.selected {
			label = "> " + it.Label
			lw, lh := r.MeasureText(label)
			r.FillRect(screen, rectAt((w-lw)/2-6, y-2, lw+12, lh+4), menuHighlight)
		}
		lw, _ := r.MeasureText(label)
		r.DrawText(screen, label, (w-lw)/2, y, menuText)
		y += 28
	}
	hint := "Up/Down: select  |  Space: confirm"
	hw, _ := r.MeasureText(hint)
	r.DrawText(screen, hint, (w-hw)/2, y+20, menuText)
}
