package particles

import (
	"image/color"
	"math"
)

// Tint is a colour with a floating point opacity in [0, 1].
type Tint struct {
	R, G, B uint8
	A       float64
}

// Accent is the hue every particle and connection is drawn with.
var Accent = Tint{R: 108, G: 99, B: 255}

// WithAlpha returns t with its opacity replaced.
func (t Tint) WithAlpha(a float64) Tint {
	t.A = a
	return t
}

// NRGBA converts the tint to a non-premultiplied 8-bit colour.
func (t Tint) NRGBA() color.NRGBA {
	a := math.Round(clamp01(t.A) * 255)
	return color.NRGBA{R: t.R, G: t.G, B: t.B, A: uint8(a)}
}

// Surface is the 2D drawing target a Field renders onto.
type Surface interface {
	Clear()
	FillCircle(x, y, r float64, t Tint)
	StrokeLine(x1, y1, x2, y2, width float64, t Tint)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
