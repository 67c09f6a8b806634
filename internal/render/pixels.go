package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"physarum/internal/core"
)

// Ramp maps intensity levels 0..255 to colors.
type Ramp [256]color.RGBA

// GrayRamp is the plain black-to-white intensity ramp.
func GrayRamp() *Ramp {
	var r Ramp
	for i := range r {
		v := uint8(i)
		r[i] = color.RGBA{R: v, G: v, B: v, A: 255}
	}
	return &r
}

// level maps v in [0, max] onto 0..255. Values outside the range saturate.
func level(v, max float32) uint8 {
	if max <= 0 || v <= 0 {
		return 0
	}
	if v >= max {
		return 255
	}
	return uint8(math.Round(float64(v) / float64(max) * 255))
}

// fillIntensityRGBA converts field intensities into RGBA pixels in buf using
// ramp. A nil ramp clears the buffer to transparent black.
func fillIntensityRGBA(buf []byte, cells []float32, max float32, ramp *Ramp) {
	if ramp == nil {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}
	for i, c := range cells {
		col := ramp[level(c, max)]
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Gray converts a field view into an 8-bit grayscale image.
func Gray(view core.FieldView) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, view.W, view.H))
	for i, v := range view.Values() {
		img.Pix[i] = level(v, view.Max)
	}
	return img
}

// WritePNG encodes view as a grayscale PNG.
func WritePNG(w io.Writer, view core.FieldView) error {
	return png.Encode(w, Gray(view))
}
