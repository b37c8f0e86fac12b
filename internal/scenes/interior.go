package scenes

import (
	"image/color"

	"chosenoffset.com/homestead/internal/scene"
)

func interiorPalette() scene.Palette {
	p := scene.DefaultPalette()
	p.Ground = color.RGBA{170, 150, 120, 255}
	p.Prop = color.RGBA{180, 60, 180, 255}
	p.NPC = color.RGBA{90, 160, 255, 255}
	return p
}

// HomeInteriorScene is the player's house. The bed lets the player sleep
// until morning.
type HomeInteriorScene struct {
	*base
}

// NewHomeInterior creates the home scene.
func NewHomeInterior(ctx *Context) *HomeInteriorScene {
	return &HomeInteriorScene{base: newBase(ctx, HomeInterior, "door_in", interiorPalette(), false)}
}

// ShopInteriorScene holds the shopkeeper.
type ShopInteriorScene struct {
	*base
}

// NewShopInterior creates the shop scene.
func NewShopInterior(ctx *Context) *ShopInteriorScene {
	return &ShopInteriorScene{base: newBase(ctx, ShopInterior, "door_in", interiorPalette(), true)}
}
