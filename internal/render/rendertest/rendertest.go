// Package rendertest provides an in-memory Renderer that records draw calls,
// for testing scene and UI drawing without a graphics backend.
package rendertest

import (
	"image"
	"image/color"

	"chosenoffset.com/homestead/internal/core/geom"
	"chosenoffset.com/homestead/internal/render"
)

// CharWidth and CharHeight are the fixed text cell size MeasureText reports.
const (
	CharWidth  = 6
	CharHeight = 16
)

// Text is one recorded DrawText call.
type Text struct {
	S    string
	X, Y int
}

// Rect is one recorded FillRect or StrokeRect call.
type Rect struct {
	R      geom.Rect
	Color  color.Color
	Stroke bool
}

// Renderer records every call made against it.
type Renderer struct {
	Texts []Text
	Rects []Rect
}

// NewRenderer returns an empty recorder.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// FillRect implements render.Renderer.
func (r *Renderer) FillRect(_ render.Image, rect geom.Rect, clr color.Color) {
	r.Rects = append(r.Rects, Rect{R: rect, Color: clr})
}

// StrokeRect implements render.Renderer.
func (r *Renderer) StrokeRect(_ render.Image, rect geom.Rect, _ float32, clr color.Color) {
	r.Rects = append(r.Rects, Rect{R: rect, Color: clr, Stroke: true})
}

// DrawText implements render.Renderer.
func (r *Renderer) DrawText(_ render.Image, s string, x, y int, _ color.Color) {
	r.Texts = append(r.Texts, Text{S: s, X: x, Y: y})
}

// MeasureText implements render.Renderer.
func (r *Renderer) MeasureText(s string) (int, int) {
	return len(s) * CharWidth, CharHeight
}

// Strings returns the recorded text in draw order.
func (r *Renderer) Strings() []string {
	out := make([]string, len(r.Texts))
	for i, t := range r.Texts {
		out[i] = t.S
	}
	return out
}

// Reset forgets every recorded call.
func (r *Renderer) Reset() {
	r.Texts = nil
	r.Rects = nil
}

// Image is a size-only render.Image.
type Image struct {
	W, H  int
	Fills []color.Color
}

// NewImage returns an image of the given size.
func NewImage(w, h int) *Image {
	return &Image{W: w, H: h}
}

// Bounds implements render.Image.
func (i *Image) Bounds() image.Rectangle { return image.Rect(0, 0, i.W, i.H) }

// Size implements render.Image.
func (i *Image) Size() (int, int) { return i.W, i.H }

// Fill records the fill color.
func (i *Image) Fill(c color.Color) { i.Fills = append(i.Fills, c) }
