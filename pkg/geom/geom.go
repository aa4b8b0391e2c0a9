// pkg/geom/geom.go
package geom

import "math"

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Neg() Vec2            { return Vec2{-v.X, -v.Y} }
func (v Vec2) Abs() Vec2            { return Vec2{math.Abs(v.X), math.Abs(v.Y)} }
func (v Vec2) Dot(o Vec2) float64   { return v.X*o.X + v.Y*o.Y }

// LengthSquared avoids the square root for comparisons.
func (v Vec2) LengthSquared() float64 { return v.X*v.X + v.Y*v.Y }

func (v Vec2) Length() float64 { return math.Sqrt(v.LengthSquared()) }

// Normalize returns the unit vector, or the zero vector for a zero input.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Perp returns v rotated by +90 degrees, so that w×r == r.Perp()*w.
func (v Vec2) Perp() Vec2 { return Vec2{-v.Y, v.X} }

// Rotation is a unit complex number (cos, sin).
type Rotation struct {
	Cos, Sin float64
}

// Identity rotation.
var Identity = Rotation{Cos: 1}

// Rot builds a rotation from an angle in radians.
func Rot(angle float64) Rotation {
	s, c := math.Sincos(angle)
	return Rotation{Cos: c, Sin: s}
}

// RotationTowards returns the rotation whose x axis points along dir.
// A zero dir yields fallback.
func RotationTowards(dir Vec2, fallback Rotation) Rotation {
	l := dir.Length()
	if l == 0 {
		return fallback
	}
	return Rotation{Cos: dir.X / l, Sin: dir.Y / l}
}

func (r Rotation) Angle() float64 { return math.Atan2(r.Sin, r.Cos) }

// Mul composes two rotations: (r*o) applies o first.
func (r Rotation) Mul(o Rotation) Rotation {
	return Rotation{
		Cos: r.Cos*o.Cos - r.Sin*o.Sin,
		Sin: r.Sin*o.Cos + r.Cos*o.Sin,
	}
}

func (r Rotation) Inverse() Rotation { return Rotation{Cos: r.Cos, Sin: -r.Sin} }

// Apply rotates v.
func (r Rotation) Apply(v Vec2) Vec2 {
	return Vec2{r.Cos*v.X - r.Sin*v.Y, r.Sin*v.X + r.Cos*v.Y}
}

// Slerp interpolates the shortest way from r to o.
func (r Rotation) Slerp(o Rotation, t float64) Rotation {
	delta := r.Inverse().Mul(o).Angle()
	return r.Mul(Rot(delta * t))
}

// Isometry is a rigid 2D pose: rotation followed by translation.
type Isometry struct {
	Translation Vec2
	Rotation    Rotation
}

// Pose builds an isometry from a translation and an angle.
func Pose(x, y, angle float64) Isometry {
	return Isometry{Translation: Vec2{x, y}, Rotation: Rot(angle)}
}

// Translation builds a pure translation.
func Translation(x, y float64) Isometry {
	return Isometry{Translation: Vec2{x, y}, Rotation: Identity}
}

// Mul composes two isometries: (a*b) maps b's frame through a.
func (a Isometry) Mul(b Isometry) Isometry {
	return Isometry{
		Translation: a.Translation.Add(a.Rotation.Apply(b.Translation)),
		Rotation:    a.Rotation.Mul(b.Rotation),
	}
}

func (a Isometry) Inverse() Isometry {
	inv := a.Rotation.Inverse()
	return Isometry{
		Translation: inv.Apply(a.Translation).Neg(),
		Rotation:    inv,
	}
}

// TransformPoint maps a local point into the parent frame.
func (a Isometry) TransformPoint(p Vec2) Vec2 {
	return a.Rotation.Apply(p).Add(a.Translation)
}

// TransformVector maps a local direction, ignoring translation.
func (a Isometry) TransformVector(v Vec2) Vec2 {
	return a.Rotation.Apply(v)
}
