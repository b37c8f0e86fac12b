// Package render abstracts the graphics backend so scene and UI code never
// import the engine directly. The ebiten implementation lives in
// render/ebiten; tests use lightweight fakes.
package render

import (
	"image"
	"image/color"

	"chosenoffset.com/homestead/internal/core/geom"
)

// Renderer is the drawing interface used by scenes and UI. All coordinates are
// screen-space pixels.
type Renderer interface {
	// Shape operations
	FillRect(dst Image, r geom.Rect, clr color.Color)
	StrokeRect(dst Image, r geom.Rect, strokeWidth float32, clr color.Color)

	// Text operations
	DrawText(dst Image, text string, x, y int, clr color.Color)
	MeasureText(text string) (width, height int)
}

// Image represents a renderable surface that can be drawn to.
type Image interface {
	Bounds() image.Rectangle
	Size() (width, height int)
	Fill(clr color.Color)
}

// InputManager reports raw key state from the backend.
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the game binds
const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyT
	KeyP
	KeyI
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEnter
	KeyEscape
	KeyShift
	KeyF1
	KeyF2
	KeyF5
)

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60 times per second).
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetWindowResizable(resizable bool)

	// TPS returns the target ticks per second of the update loop.
	TPS() int

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
