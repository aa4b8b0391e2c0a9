// internal/system/camera.go
package system

import (
	"electro-shoot/internal/component"
	"electro-shoot/internal/shape"
	"electro-shoot/pkg/geom"
)

// Camera maps world units to screen pixels. The world origin sits at the
// center of the screen and both y axes point down.
type Camera struct {
	Center        geom.Vec2
	Width, Height int
	// Zoom is pixels per world unit.
	Zoom float64
}

// NewCamera shows viewHeight world units across the screen height.
func NewCamera(width, height int, viewHeight float64) *Camera {
	c := &Camera{}
	c.Resize(width, height, viewHeight)
	return c
}

// Resize keeps the vertical extent and lets the horizontal one follow the
// aspect ratio.
func (c *Camera) Resize(width, height int, viewHeight float64) {
	c.Width, c.Height = width, height
	c.Zoom = float64(height) / viewHeight
}

func (c *Camera) WorldToScreen(p geom.Vec2) (float64, float64) {
	d := p.Sub(c.Center).Scale(c.Zoom)
	return d.X + float64(c.Width)/2, d.Y + float64(c.Height)/2
}

func (c *Camera) ScreenToWorld(x, y int) geom.Vec2 {
	d := geom.V(float64(x)-float64(c.Width)/2, float64(y)-float64(c.Height)/2)
	return c.Center.Add(d.Scale(1 / c.Zoom))
}

// Bounds is the visible playfield as a collision object.
func (c *Camera) Bounds() component.Object {
	half := geom.V(float64(c.Width)/2, float64(c.Height)/2).Scale(1 / c.Zoom)
	return component.Object{
		Shape: shape.Rectangle(half),
		Body:  component.Body{Transform: geom.Isometry{Translation: c.Center, Rotation: geom.Identity}},
	}
}
