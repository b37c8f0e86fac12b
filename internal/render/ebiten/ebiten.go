package ebiten

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/homestead/internal/core/geom"
	"chosenoffset.com/homestead/internal/render"
)

// Debug font cell size used by ebitenutil.DebugPrintAt.
const (
	debugCharWidth  = 6
	debugCharHeight = 16
)

// EbitenRenderer implements the Renderer interface using Ebiten.
type EbitenRenderer struct{}

// NewRenderer creates a new Ebiten-based renderer.
func NewRenderer() render.Renderer {
	return &EbitenRenderer{}
}

// FillRect draws a filled rectangle on the destination image.
func (r *EbitenRenderer) FillRect(dst render.Image, rect geom.Rect, clr color.Color) {
	img := dst.(*EbitenImage).img
	vector.DrawFilledRect(img, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), clr, false)
}

// StrokeRect draws a rectangle outline on the destination image.
func (r *EbitenRenderer) StrokeRect(dst render.Image, rect geom.Rect, strokeWidth float32, clr color.Color) {
	img := dst.(*EbitenImage).img
	vector.StrokeRect(img, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), strokeWidth, clr, false)
}

// DrawText draws text using the debug font.
// Note: Color parameter is currently ignored, text is always white.
func (r *EbitenRenderer) DrawText(dst render.Image, str string, x, y int, clr color.Color) {
	img := dst.(*EbitenImage).img
	ebitenutil.DebugPrintAt(img, str, x, y)
}

// MeasureText approximates the size of str in the debug font.
func (r *EbitenRenderer) MeasureText(str string) (width, height int) {
	return len(str) * debugCharWidth, debugCharHeight
}

// EbitenImage wraps an ebiten.Image to implement the render.Image interface.
type EbitenImage struct {
	img *ebiten.Image
}

// Bounds returns the bounds of the image.
func (i *EbitenImage) Bounds() image.Rectangle {
	return i.img.Bounds()
}

// Size returns the width and height of the image.
func (i *EbitenImage) Size() (width, height int) {
	return i.img.Bounds().Dx(), i.img.Bounds().Dy()
}

// Fill fills the entire image with the given color.
func (i *EbitenImage) Fill(clr color.Color) {
	i.img.Fill(clr)
}

// WrapEbitenImage wraps an existing ebiten.Image as a render.Image.
func WrapEbitenImage(img *ebiten.Image) render.Image {
	return &EbitenImage{img: img}
}

// EbitenInputManager implements the InputManager interface using Ebiten.
type EbitenInputManager struct{}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() render.InputManager {
	return &EbitenInputManager{}
}

// IsKeyPressed returns whether the specified key is currently held.
func (m *EbitenInputManager) IsKeyPressed(key render.Key) bool {
	k, ok := keyToEbitenKey(key)
	return ok && ebiten.IsKeyPressed(k)
}

// IsKeyJustPressed returns whether the specified key went down this tick.
func (m *EbitenInputManager) IsKeyJustPressed(key render.Key) bool {
	k, ok := keyToEbitenKey(key)
	return ok && inpututil.IsKeyJustPressed(k)
}

// keyToEbitenKey converts a render.Key to an ebiten.Key.
func keyToEbitenKey(key render.Key) (ebiten.Key, bool) {
	switch key {
	case render.KeyW:
		return ebiten.KeyW, true
	case render.KeyA:
		return ebiten.KeyA, true
	case render.KeyS:
		return ebiten.KeyS, true
	case render.KeyD:
		return ebiten.KeyD, true
	case render.KeyQ:
		return ebiten.KeyQ, true
	case render.KeyT:
		return ebiten.KeyT, true
	case render.KeyP:
		return ebiten.KeyP, true
	case render.KeyI:
		return ebiten.KeyI, true
	case render.KeyUp:
		return ebiten.KeyArrowUp, true
	case render.KeyDown:
		return ebiten.KeyArrowDown, true
	case render.KeyLeft:
		return ebiten.KeyArrowLeft, true
	case render.KeyRight:
		return ebiten.KeyArrowRight, true
	case render.KeySpace:
		return ebiten.KeySpace, true
	case render.KeyEnter:
		return ebiten.KeyEnter, true
	case render.KeyEscape:
		return ebiten.KeyEscape, true
	case render.KeyShift:
		return ebiten.KeyShift, true
	case render.KeyF1:
		return ebiten.KeyF1, true
	case render.KeyF2:
		return ebiten.KeyF2, true
	case render.KeyF5:
		return ebiten.KeyF5, true
	default:
		return 0, false
	}
}

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct{}

// NewEngine creates a new Ebiten-based game engine.
func NewEngine() render.Engine {
	return &EbitenEngine{}
}

// SetWindowSize sets the window size in pixels.
func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetWindowResizable enables or disables window resizing.
func (e *EbitenEngine) SetWindowResizable(resizable bool) {
	if resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
}

// TPS returns ebiten's target ticks per second.
func (e *EbitenEngine) TPS() int {
	return ebiten.TPS()
}

// RunGame runs the game loop with the provided game.
func (e *EbitenEngine) RunGame(game render.Game) error {
	return ebiten.RunGame(&gameAdapter{game: game})
}

// gameAdapter adapts a render.Game to ebiten.Game interface.
type gameAdapter struct {
	game render.Game
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	return a.game.Update()
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&EbitenImage{img: screen})
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}

// ActualFPS reports the measured frames per second.
func ActualFPS() float64 {
	return ebiten.ActualFPS()
}
