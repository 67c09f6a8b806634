//go:build ebiten

package render

import (
	"physarum/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// FieldPainter keeps a single RGBA image in sync with a scalar field.
type FieldPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
	ramp *Ramp
}

// NewFieldPainter allocates a painter for a w*h field drawn with ramp.
func NewFieldPainter(w, h int, ramp *Ramp) *FieldPainter {
	if ramp == nil {
		ramp = GrayRamp()
	}
	return &FieldPainter{
		w:    w,
		h:    h,
		img:  ebiten.NewImage(w, h),
		buf:  make([]byte, 4*w*h),
		ramp: ramp,
	}
}

// Blit uploads the view into the painter image and draws it scaled.
func (fp *FieldPainter) Blit(dst *ebiten.Image, view core.FieldView, scale int) {
	if view.W != fp.w || view.H != fp.h {
		return
	}
	fillIntensityRGBA(fp.buf, view.Values(), view.Max, fp.ramp)
	fp.img.WritePixels(fp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(fp.img, op)
}

// Size returns the dimensions of the underlying image.
func (fp *FieldPainter) Size() (int, int) { return fp.w, fp.h }
