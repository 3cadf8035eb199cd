package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/portfolio-fx/internal/particles"
)

// imageSurface draws particles onto an offscreen image, the window's
// equivalent of the hero canvas.
type imageSurface struct {
	img *ebiten.Image
}

func (s imageSurface) Clear() { s.img.Clear() }

func (s imageSurface) FillCircle(x, y, r float64, t particles.Tint) {
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(r), t.NRGBA(), true)
}

func (s imageSurface) StrokeLine(x1, y1, x2, y2, width float64, t particles.Tint) {
	vector.StrokeLine(s.img, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), t.NRGBA(), true)
}
