package geom

import (
	"math"
	"testing"
)

const eps = 1e-12

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestIsometryInverse(t *testing.T) {
	tests := []struct {
		name string
		iso  Isometry
	}{
		{"identity", Pose(0, 0, 0)},
		{"translation", Translation(3, -2)},
		{"rotation", Pose(0, 0, 1.2)},
		{"both", Pose(-4.5, 7, -2.9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.iso.Mul(tt.iso.Inverse())
			if !near(got.Translation.X, 0) || !near(got.Translation.Y, 0) {
				t.Errorf("translation = %v, want zero", got.Translation)
			}
			if !near(got.Rotation.Cos, 1) || !near(got.Rotation.Sin, 0) {
				t.Errorf("rotation = %v, want identity", got.Rotation)
			}
		})
	}
}

func TestTransformPoint(t *testing.T) {
	iso := Pose(1, 2, math.Pi/2)
	p := iso.TransformPoint(V(1, 0))
	if !near(p.X, 1) || !near(p.Y, 3) {
		t.Errorf("TransformPoint = %v, want (1, 3)", p)
	}

	back := iso.Inverse().TransformPoint(p)
	if !near(back.X, 1) || !near(back.Y, 0) {
		t.Errorf("inverse round trip = %v, want (1, 0)", back)
	}
}

func TestRotationsCompose(t *testing.T) {
	r := Rot(0.3).Mul(Rot(0.4))
	if !near(r.Angle(), 0.7) {
		t.Errorf("angle = %v, want 0.7", r.Angle())
	}
}

func TestSlerpTakesShortestPath(t *testing.T) {
	from := Rot(3.0)
	to := Rot(-3.0)
	half := from.Slerp(to, 0.5)
	if math.Abs(math.Abs(half.Angle())-math.Pi) > 1e-9 {
		t.Errorf("midpoint angle = %v, want ±π", half.Angle())
	}
}

func TestRotationTowardsZero(t *testing.T) {
	fallback := Rot(1)
	if got := RotationTowards(Vec2{}, fallback); got != fallback {
		t.Errorf("zero direction = %v, want fallback", got)
	}
}
