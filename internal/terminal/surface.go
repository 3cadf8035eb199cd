package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/portfolio-fx/internal/config"
	"github.com/iburimskiy/portfolio-fx/internal/particles"
)

// Cells cannot blend, so link opacity is boosted before being mapped to brightness.
const linkBoost = 8

var background = [3]uint8{11, 11, 20}

// cellSurface maps surface pixels onto terminal cells of
// config.CellWidth x config.CellHeight pixels.
type cellSurface struct {
	screen tcell.Screen
}

func (s cellSurface) Clear() { s.screen.Fill(' ', tcell.StyleDefault.Background(bgColor())) }

func (s cellSurface) FillCircle(x, y, r float64, t particles.Tint) {
	cx, cy, ok := s.cell(x, y)
	if !ok {
		return
	}
	ch := '•'
	if r >= 1.5 {
		ch = '●'
	}
	// Scale up: a 0.1 alpha dot is invisible in a cell.
	s.screen.SetContent(cx, cy, ch, nil, styleFor(t.WithAlpha(0.4+t.A)))
}

// StrokeLine rasterises the line in cell space and never overwrites particles.
func (s cellSurface) StrokeLine(x1, y1, x2, y2, width float64, t particles.Tint) {
	style := styleFor(t.WithAlpha(t.A * linkBoost))
	c0x, c0y := cellCoord(x1, y1)
	c1x, c1y := cellCoord(x2, y2)
	bresenham(c0x, c0y, c1x, c1y, func(x, y int) {
		w, h := s.screen.Size()
		if x < 0 || y < 0 || x >= w || y >= h {
			return
		}
		if mainc, _, _, _ := s.screen.GetContent(x, y); mainc != ' ' && mainc != 0 {
			return
		}
		s.screen.SetContent(x, y, '·', nil, style)
	})
}

func (s cellSurface) cell(x, y float64) (int, int, bool) {
	cx, cy := cellCoord(x, y)
	w, h := s.screen.Size()
	if cx < 0 || cy < 0 || cx >= w || cy >= h {
		return 0, 0, false
	}
	return cx, cy, true
}

func cellCoord(x, y float64) (int, int) {
	return int(math.Floor(x / config.CellWidth)), int(math.Floor(y / config.CellHeight))
}

func styleFor(t particles.Tint) tcell.Style {
	a := math.Max(0, math.Min(1, t.A))
	mix := func(fg, bg uint8) int32 {
		return int32(math.Round(float64(fg)*a + float64(bg)*(1-a)))
	}
	fg := tcell.NewRGBColor(mix(t.R, background[0]), mix(t.G, background[1]), mix(t.B, background[2]))
	return tcell.StyleDefault.Foreground(fg).Background(bgColor())
}

func bgColor() tcell.Color {
	return tcell.NewRGBColor(int32(background[0]), int32(background[1]), int32(background[2]))
}

func bresenham(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
