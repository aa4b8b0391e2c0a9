// internal/defs/shapes.go
package defs

import (
	"fmt"

	"electro-shoot/internal/shape"
	"electro-shoot/pkg/geom"
)

// ShapeDef is the catalog form of a collision shape.
type ShapeDef struct {
	Kind     string     `json:"kind"` // "point", "circle" or "rectangle"
	Radius   float64    `json:"radius,omitempty"`
	HalfSize [2]float64 `json:"half_size,omitempty"`
}

// Build validates the definition and returns the shape.
func (d ShapeDef) Build() (shape.Shape, error) {
	switch d.Kind {
	case "point":
		return shape.Point(), nil
	case "circle":
		if !(d.Radius > 0) {
			return shape.Shape{}, fmt.Errorf("circle radius must be positive, got %v", d.Radius)
		}
		return shape.Circle(d.Radius), nil
	case "rectangle":
		if !(d.HalfSize[0] > 0) || !(d.HalfSize[1] > 0) {
			return shape.Shape{}, fmt.Errorf("rectangle half size must be positive, got %v", d.HalfSize)
		}
		return shape.Rectangle(geom.V(d.HalfSize[0], d.HalfSize[1])), nil
	}
	return shape.Shape{}, fmt.Errorf("unknown shape kind %q", d.Kind)
}
