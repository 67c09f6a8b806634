package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// FieldView is a read-only window onto a scalar field buffer. It is only
// valid until the owning simulation advances.
type FieldView struct {
	W, H  int
	Max   float32
	cells []float32
}

// NewFieldView wraps cells (row-major, w*h long) as a view.
func NewFieldView(w, h int, max float32, cells []float32) FieldView {
	return FieldView{W: w, H: h, Max: max, cells: cells}
}

// At returns the intensity at (x, y). Coordinates must be in range.
func (v FieldView) At(x, y int) float32 { return v.cells[y*v.W+x] }

// Values exposes the backing slice. Callers must not modify it.
func (v FieldView) Values() []float32 { return v.cells }

// Len returns the number of cells in the view.
func (v FieldView) Len() int { return len(v.cells) }

// Sim defines the minimal contract the presentation layer drives.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Field() FieldView
}
