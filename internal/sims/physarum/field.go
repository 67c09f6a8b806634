package physarum

import (
	"physarum/internal/core"
	"physarum/internal/vecmath"
)

// TrailField is the double-buffered scalar grid agents communicate through.
// Reads always target the current buffer; Step writes the next buffer and
// Swap publishes it.
type TrailField struct {
	grid core.Grid
	cur  []float32
	next []float32
}

// NewTrailField allocates a zeroed w×h field.
func NewTrailField(w, h int) *TrailField {
	g := core.NewGrid(w, h)
	return &TrailField{
		grid: g,
		cur:  make([]float32, g.Len()),
		next: make([]float32, g.Len()),
	}
}

// Size returns the field dimensions.
func (f *TrailField) Size() core.Size { return core.Size{W: f.grid.W, H: f.grid.H} }

// Grid returns the field geometry.
func (f *TrailField) Grid() core.Grid { return f.grid }

// Sample returns the intensity at (x, y), wrapping both coordinates.
func (f *TrailField) Sample(x, y int) float32 {
	return f.cur[f.grid.WrapIndex(x, y)]
}

// SampleAt returns the mean intensity over a size×size square centred on the
// cell containing p. The footprint wraps toroidally and is clamped to the
// field, so the call never fails.
func (f *TrailField) SampleAt(p vecmath.Vec2, size int) float32 {
	cx, cy := f.grid.Cell(p.X, p.Y)
	if size <= 1 {
		return f.cur[f.grid.Index(cx, cy)]
	}
	size = min(size, f.grid.W, f.grid.H)
	lo := -(size - 1) / 2
	hi := lo + size - 1
	var sum float32
	for dy := lo; dy <= hi; dy++ {
		for dx := lo; dx <= hi; dx++ {
			sum += f.cur[f.grid.WrapIndex(cx+dx, cy+dy)]
		}
	}
	return sum / float32(size*size)
}

// Deposit raises the cell at (x, y) to at least value. Deposits commute and
// repeating one has no further effect.
func (f *TrailField) Deposit(x, y int, value float32) {
	value = clampIntensity(value)
	i := f.grid.WrapIndex(x, y)
	if value > f.cur[i] {
		f.cur[i] = value
	}
}

// Step computes the next buffer from the current one: every cell loses
// decay, and while diffusion is enabled the result is blended with the
// unweighted 3×3 neighbourhood sum of the current buffer:
//
//	next = (decayed*diffuse + sum) / (9 + diffuse)
//
// Step never writes the current buffer. Call Swap to publish the result.
func (f *TrailField) Step(decay, diffuse float32, workers int) {
	w, h := f.grid.W, f.grid.H
	cur, next := f.cur, f.next
	blend := diffuse < DiffusionOffThreshold
	forEachBand(workers, h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			row := y * w
			if !blend {
				for x := 0; x < w; x++ {
					next[row+x] = clampIntensity(cur[row+x] - decay)
				}
				continue
			}
			up := ((y - 1 + h) % h) * w
			down := ((y + 1) % h) * w
			for x := 0; x < w; x++ {
				l := (x - 1 + w) % w
				r := (x + 1) % w
				sum := cur[up+l] + cur[up+x] + cur[up+r] +
					cur[row+l] + cur[row+x] + cur[row+r] +
					cur[down+l] + cur[down+x] + cur[down+r]
				decayed := max(cur[row+x]-decay, 0)
				next[row+x] = clampIntensity((decayed*diffuse + sum) / (9 + diffuse))
			}
		}
	})
}

// Swap publishes the buffer produced by the last Step.
func (f *TrailField) Swap() {
	f.cur, f.next = f.next, f.cur
}

// View returns a read-only view of the current buffer.
func (f *TrailField) View() core.FieldView {
	return core.NewFieldView(f.grid.W, f.grid.H, MaxIntensity, f.cur)
}

// Total returns the sum of all intensities in the current buffer.
func (f *TrailField) Total() float64 {
	var sum float64
	for _, v := range f.cur {
		sum += float64(v)
	}
	return sum
}

// Coverage returns the fraction of cells at or above threshold.
func (f *TrailField) Coverage(threshold float32) float64 {
	n := 0
	for _, v := range f.cur {
		if v >= threshold {
			n++
		}
	}
	return float64(n) / float64(len(f.cur))
}

// Clear zeroes both buffers.
func (f *TrailField) Clear() {
	clear(f.cur)
	clear(f.next)
}

func clampIntensity(v float32) float32 {
	if !(v > 0) {
		return 0
	}
	if v > MaxIntensity {
		return MaxIntensity
	}
	return v
}
