// internal/shatter/box.go
package shatter

import (
	"fmt"
	"image"
)

// BoundingBox is an axis-aligned pixel box. Both Min and Max are inclusive.
type BoundingBox struct {
	Min, Max image.Point
}

// NewBoundingBox panics if min is greater than max on either axis.
func NewBoundingBox(min, max image.Point) BoundingBox {
	if min.X > max.X || min.Y > max.Y {
		panic(fmt.Sprintf("shatter: inverted bounding box %v..%v", min, max))
	}
	return BoundingBox{Min: min, Max: max}
}

// PointBox is the box covering the single pixel p.
func PointBox(p image.Point) BoundingBox {
	return BoundingBox{Min: p, Max: p}
}

// Extend grows the box to cover p.
func (b BoundingBox) Extend(p image.Point) BoundingBox {
	b.Min.X = min(b.Min.X, p.X)
	b.Min.Y = min(b.Min.Y, p.Y)
	b.Max.X = max(b.Max.X, p.X)
	b.Max.Y = max(b.Max.Y, p.Y)
	return b
}

func (b BoundingBox) Contains(p image.Point) bool {
	return b.Min.X <= p.X && p.X <= b.Max.X && b.Min.Y <= p.Y && p.Y <= b.Max.Y
}

// Intersects is true when the boxes share at least one pixel.
func (b BoundingBox) Intersects(o BoundingBox) bool {
	return b.Min.X <= o.Max.X && o.Min.X <= b.Max.X &&
		b.Min.Y <= o.Max.Y && o.Min.Y <= b.Max.Y
}

// Rect is the half-open image.Rectangle covering the same pixels.
func (b BoundingBox) Rect() image.Rectangle {
	return image.Rect(b.Min.X, b.Min.Y, b.Max.X+1, b.Max.Y+1)
}

// Center is the middle of the covered pixel area, in pixel units.
func (b BoundingBox) Center() (float64, float64) {
	return float64(b.Min.X+b.Max.X+1) / 2, float64(b.Min.Y+b.Max.Y+1) / 2
}
