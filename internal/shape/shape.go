// internal/shape/shape.go
package shape

import (
	"fmt"
	"math"

	"electro-shoot/pkg/geom"
)

// Kind selects the shape variant.
type Kind uint8

const (
	KindPoint Kind = iota
	KindCircle
	KindRectangle
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindCircle:
		return "circle"
	case KindRectangle:
		return "rectangle"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Shape is an immutable collision shape centered on its owner's origin.
// Only the field matching Kind is meaningful.
type Shape struct {
	Kind     Kind
	Radius   float64
	HalfSize geom.Vec2
}

// Point never collides with another point.
func Point() Shape { return Shape{Kind: KindPoint} }

// Circle panics unless radius > 0.
func Circle(radius float64) Shape {
	if !(radius > 0) {
		panic(fmt.Sprintf("shape: circle radius must be positive, got %v", radius))
	}
	return Shape{Kind: KindCircle, Radius: radius}
}

// Rectangle panics unless both half extents are > 0.
func Rectangle(halfSize geom.Vec2) Shape {
	if !(halfSize.X > 0) || !(halfSize.Y > 0) {
		panic(fmt.Sprintf("shape: rectangle half size must be positive, got %v", halfSize))
	}
	return Shape{Kind: KindRectangle, HalfSize: halfSize}
}

// IsColliding reports whether s and other strictly overlap. offset carries
// s's frame into other's frame, i.e. other's pose expressed relative to s.
func (s Shape) IsColliding(other Shape, offset geom.Isometry) bool {
	switch s.Kind {
	case KindPoint:
		switch other.Kind {
		case KindPoint:
			return false
		case KindCircle:
			return circlePoint(other.Radius, offset.Translation)
		case KindRectangle:
			return rectanglePoint(other.HalfSize, offset.Inverse().Translation)
		}
	case KindCircle:
		switch other.Kind {
		case KindPoint:
			return circlePoint(s.Radius, offset.Translation)
		case KindCircle:
			return circleCircle(s.Radius, other.Radius, offset.Translation)
		case KindRectangle:
			return rectangleCircle(other.HalfSize, s.Radius, offset.Inverse().Translation)
		}
	case KindRectangle:
		switch other.Kind {
		case KindPoint:
			return rectanglePoint(s.HalfSize, offset.Translation)
		case KindCircle:
			return rectangleCircle(s.HalfSize, other.Radius, offset.Translation)
		case KindRectangle:
			return rectangleRectangle(s.HalfSize, other.HalfSize, offset)
		}
	}
	panic(fmt.Sprintf("shape: unknown pair %v/%v", s.Kind, other.Kind))
}

// BoundingRadius is the largest distance from the center to any point of the shape.
func (s Shape) BoundingRadius() float64 {
	switch s.Kind {
	case KindCircle:
		return s.Radius
	case KindRectangle:
		return s.HalfSize.Length()
	}
	return 0
}

// boundingSlack keeps the broad phase inclusive of points that sit exactly
// on a rectangle corner after sqrt rounding.
const boundingSlack = 1e-9

// BoundingCirclesOverlap is the broad phase: when it is false, IsColliding
// is false for the same arguments.
func BoundingCirclesOverlap(a, b Shape, offset geom.Isometry) bool {
	r := a.BoundingRadius() + b.BoundingRadius()
	return offset.Translation.LengthSquared() <= r*r*(1+boundingSlack)
}

// Widened returns a rectangle extended along -x by front+back, together with
// the local pose of its center. The +x edge stays where it was.
// Non-rectangles are returned as is.
func (s Shape) Widened(front, back float64) (Shape, geom.Isometry) {
	if s.Kind != KindRectangle {
		return s, geom.Translation(0, 0)
	}
	grow := front + back
	half := geom.V(s.HalfSize.X+grow/2, s.HalfSize.Y)
	return Rectangle(half), geom.Translation(-grow/2, 0)
}

func circlePoint(radius float64, offset geom.Vec2) bool {
	return offset.LengthSquared() < radius*radius
}

func circleCircle(radiusA, radiusB float64, offset geom.Vec2) bool {
	r := radiusA + radiusB
	return offset.LengthSquared() < r*r
}

func rectanglePoint(halfSize, offset geom.Vec2) bool {
	return math.Abs(offset.X) <= halfSize.X && math.Abs(offset.Y) <= halfSize.Y
}

func rectangleCircle(halfSize geom.Vec2, radius float64, offset geom.Vec2) bool {
	// symmetric about both axes
	offset = offset.Abs()

	switch {
	case offset.Y <= halfSize.Y:
		return offset.X < halfSize.X+radius
	case offset.X <= halfSize.X:
		return offset.Y < halfSize.Y+radius
	default:
		// both components exceed the half size, so the corner delta is positive
		return circlePoint(radius, offset.Sub(halfSize))
	}
}

func rectangleRectangle(halfSizeA, halfSizeB geom.Vec2, offset geom.Isometry) bool {
	return rectangleRectangleOneSided(halfSizeA, halfSizeB, offset) &&
		rectangleRectangleOneSided(halfSizeB, halfSizeA, offset.Inverse())
}

// A false result separates the rectangles. A true result only means they
// overlap along a's axes; the caller must also test the swapped direction.
func rectangleRectangleOneSided(halfSizeA, halfSizeB geom.Vec2, offset geom.Isometry) bool {
	extent := boundingExtent(halfSizeB, offset.Rotation)
	d := offset.Translation.Abs()
	return d.X < halfSizeA.X+extent.X && d.Y < halfSizeA.Y+extent.Y
}

// boundingExtent is the axis-aligned half extent of a rotated rectangle.
func boundingExtent(halfSize geom.Vec2, rotation geom.Rotation) geom.Vec2 {
	a := rotation.Apply(halfSize).Abs()
	b := rotation.Apply(geom.V(halfSize.X, -halfSize.Y)).Abs()
	return geom.V(math.Max(a.X, b.X), math.Max(a.Y, b.Y))
}
