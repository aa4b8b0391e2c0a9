// internal/component/object.go
package component

import (
	"electro-shoot/internal/shape"
	"electro-shoot/pkg/geom"
)

// Object is a collision shape carried by a body.
type Object struct {
	Shape shape.Shape
	Body
}

// OffsetTo is other's pose expressed in o's frame.
func (o *Object) OffsetTo(other *Object) geom.Isometry {
	return o.Transform.Inverse().Mul(other.Transform)
}

// IsColliding runs the broad phase and then the exact shape test.
func (o *Object) IsColliding(other *Object) bool {
	offset := o.OffsetTo(other)
	if !shape.BoundingCirclesOverlap(o.Shape, other.Shape, offset) {
		return false
	}
	return o.Shape.IsColliding(other.Shape, offset)
}
