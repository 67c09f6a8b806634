package core

import "math"

// Grid describes a toroidal W×H lattice stored in row-major order. It carries
// no cell data; field types embed it for indexing and wrapping.
type Grid struct {
	W, H int
}

// NewGrid returns a grid with the given dimensions. Non-positive dimensions are
// raised to 1 so indexing never divides by zero.
func NewGrid(w, h int) Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return Grid{W: w, H: h}
}

// Len returns the number of cells.
func (g Grid) Len() int { return g.W * g.H }

// Index returns the linear slice index for coordinates (x, y).
func (g Grid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// WrapIndex wraps (x, y) and returns its linear index.
func (g Grid) WrapIndex(x, y int) int {
	x, y = g.Wrap(x, y)
	return y*g.W + x
}

// WrapPoint wraps a continuous position into [0, W) × [0, H).
func (g Grid) WrapPoint(x, y float64) (float64, float64) {
	return wrapFloat(x, float64(g.W)), wrapFloat(y, float64(g.H))
}

// Cell returns the integer cell containing the continuous position (x, y),
// already wrapped.
func (g Grid) Cell(x, y float64) (int, int) {
	return g.Wrap(int(math.Floor(x)), int(math.Floor(y)))
}

func wrapFloat(v, size float64) float64 {
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	// v+size can round up to size for tiny negative v.
	if v >= size {
		v = 0
	}
	return v
}
