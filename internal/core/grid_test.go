package core

import (
	"math"
	"testing"
)

func TestGridWrap(t *testing.T) {
	g := NewGrid(10, 4)
	tests := []struct {
		x, y   int
		wx, wy int
	}{
		{0, 0, 0, 0},
		{10, 4, 0, 0},
		{-1, -1, 9, 3},
		{23, -9, 3, 3},
	}
	for _, tt := range tests {
		x, y := g.Wrap(tt.x, tt.y)
		if x != tt.wx || y != tt.wy {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), want (%d,%d)", tt.x, tt.y, x, y, tt.wx, tt.wy)
		}
	}
	if got := g.WrapIndex(-1, 0); got != 9 {
		t.Fatalf("WrapIndex(-1,0) = %d, want 9", got)
	}
}

func TestGridWrapPoint(t *testing.T) {
	g := NewGrid(10, 10)
	x, y := g.WrapPoint(10.5, -0.25)
	if math.Abs(x-0.5) > 1e-12 || math.Abs(y-9.75) > 1e-12 {
		t.Fatalf("WrapPoint = (%f,%f)", x, y)
	}
	x, _ = g.WrapPoint(-1e-18, 0)
	if x < 0 || x >= 10 {
		t.Fatalf("WrapPoint must stay inside [0,10), got %v", x)
	}
}

func TestGridCell(t *testing.T) {
	g := NewGrid(8, 8)
	x, y := g.Cell(7.99, -0.5)
	if x != 7 || y != 7 {
		t.Fatalf("Cell = (%d,%d), want (7,7)", x, y)
	}
}

func TestNewGridClampsDimensions(t *testing.T) {
	g := NewGrid(0, -3)
	if g.W != 1 || g.H != 1 {
		t.Fatalf("NewGrid(0,-3) = %+v", g)
	}
}
