package vecmath

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestFromPolar(t *testing.T) {
	v := FromPolar(2, math.Pi/2)
	if !near(v.X, 0) || !near(v.Y, 2) {
		t.Fatalf("FromPolar(2, π/2) = %+v, want (0,2)", v)
	}
	if got := v.Len(); !near(got, 2) {
		t.Fatalf("magnitude %f, want 2", got)
	}
	if got := v.Angle(); !near(got, math.Pi/2) {
		t.Fatalf("angle %f, want π/2", got)
	}
}

func TestRotate(t *testing.T) {
	tests := []struct {
		name  string
		in    Vec2
		angle float64
		want  Vec2
	}{
		{"quarter turn", Vec2{1, 0}, math.Pi / 2, Vec2{0, 1}},
		{"half turn", Vec2{1, 2}, math.Pi, Vec2{-1, -2}},
		{"negative", Vec2{0, 1}, -math.Pi / 2, Vec2{1, 0}},
		{"identity", Vec2{3, -4}, 0, Vec2{3, -4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Rotate(tt.angle)
			if !near(got.X, tt.want.X) || !near(got.Y, tt.want.Y) {
				t.Fatalf("Rotate = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	v := Vec2{3, 4}.Normalize()
	if !near(v.X, 0.6) || !near(v.Y, 0.8) {
		t.Fatalf("Normalize = %+v", v)
	}
	if z := (Vec2{}).Normalize(); z != (Vec2{}) {
		t.Fatalf("zero vector normalized to %+v", z)
	}
}

func TestArithmetic(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 5}
	if got := a.Add(b); got != (Vec2{4, 7}) {
		t.Fatalf("Add = %+v", got)
	}
	if got := b.Sub(a); got != (Vec2{2, 3}) {
		t.Fatalf("Sub = %+v", got)
	}
	if got := a.Scale(-2); got != (Vec2{-2, -4}) {
		t.Fatalf("Scale = %+v", got)
	}
	if got := a.Dot(b); got != 13 {
		t.Fatalf("Dot = %f", got)
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
		{0.25, 0.25},
	}
	for _, tt := range tests {
		if got := WrapAngle(tt.in); !near(got, tt.want) {
			t.Fatalf("WrapAngle(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}
