package scene

import "chosenoffset.com/homestead/internal/core/geom"

// Camera maps world space to the viewport.
type Camera struct {
	View   geom.Rect // viewport position in world space
	Bounds geom.Rect // world extent
}

// NewCamera creates a camera with a w×h viewport over bounds.
func NewCamera(w, h float64, bounds geom.Rect) Camera {
	return Camera{View: geom.NewRect(0, 0, w, h), Bounds: bounds}
}

// Follow centers the view on target, then clamps it to the world. An axis on
// which the world is smaller than the view is centered on the world instead.
func (c *Camera) Follow(target geom.Rect) {
	center := target.Center()
	c.View.X = center.X - c.View.W/2
	c.View.Y = center.Y - c.View.H/2
	c.clamp()
}

func (c *Camera) clamp() {
	b := c.Bounds
	if b.W <= c.View.W {
		c.View.X = b.Center().X - c.View.W/2
	} else {
		c.View.X = max(b.Left(), min(c.View.X, b.Right()-c.View.W))
	}
	if b.H <= c.View.H {
		c.View.Y = b.Center().Y - c.View.H/2
	} else {
		c.View.Y = max(b.Top(), min(c.View.Y, b.Bottom()-c.View.H))
	}
}

// Apply converts a world rectangle to screen space.
func (c *Camera) Apply(r geom.Rect) geom.Rect {
	return r.Translate(-c.View.X, -c.View.Y)
}
