package terminal

import (
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/portfolio-fx/internal/config"
	"github.com/iburimskiy/portfolio-fx/internal/particles"
)

func newScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(cols, rows)
	t.Cleanup(s.Fini)
	return s
}

func contentAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestFillCircleMapsToCell(t *testing.T) {
	s := newScreen(t, 20, 10)
	surf := cellSurface{screen: s}
	surf.Clear()

	surf.FillCircle(3*config.CellWidth+1, 2*config.CellHeight+1, 2, particles.Accent.WithAlpha(0.3))
	if got := contentAt(s, 3, 2); got != '●' {
		t.Errorf("expected large dot at (3,2), got %q", got)
	}
	surf.FillCircle(0, 0, 0.7, particles.Accent.WithAlpha(0.3))
	if got := contentAt(s, 0, 0); got != '•' {
		t.Errorf("expected small dot at (0,0), got %q", got)
	}

	// Out of bounds is ignored.
	surf.FillCircle(-5, 10, 1, particles.Accent)
	surf.FillCircle(1000, 1000, 1, particles.Accent)
}

func TestStrokeLineKeepsParticles(t *testing.T) {
	s := newScreen(t, 20, 10)
	surf := cellSurface{screen: s}
	surf.Clear()

	surf.FillCircle(0, 0, 2, particles.Accent.WithAlpha(0.3))
	surf.StrokeLine(0, 0, 5*config.CellWidth, 0, particles.LinkWidth, particles.Accent.WithAlpha(0.05))

	if got := contentAt(s, 0, 0); got != '●' {
		t.Errorf("line overwrote particle: %q", got)
	}
	for x := 1; x <= 5; x++ {
		if got := contentAt(s, x, 0); got != '·' {
			t.Errorf("expected line cell at (%v,0), got %q", x, got)
		}
	}
	if got := contentAt(s, 6, 0); got != ' ' {
		t.Errorf("line ran past its end: %q", got)
	}
}

func TestBresenhamEndpoints(t *testing.T) {
	tests := []struct {
		x0, y0, x1, y1 int
		n              int
	}{
		{0, 0, 4, 0, 5},
		{0, 0, 0, 3, 4},
		{0, 0, 3, 3, 4},
		{4, 2, 0, 0, 5},
		{2, 2, 2, 2, 1},
	}
	for _, tt := range tests {
		var pts [][2]int
		bresenham(tt.x0, tt.y0, tt.x1, tt.y1, func(x, y int) { pts = append(pts, [2]int{x, y}) })
		if len(pts) != tt.n {
			t.Errorf("%+v: expected %v cells, got %v", tt, tt.n, len(pts))
			continue
		}
		if pts[0] != [2]int{tt.x0, tt.y0} || pts[len(pts)-1] != [2]int{tt.x1, tt.y1} {
			t.Errorf("%+v: wrong endpoints %v", tt, pts)
		}
	}
}

func TestHostResizeAndQuit(t *testing.T) {
	s := newScreen(t, 40, 12)
	cfg := config.Default()
	h := New(s, cfg, rand.New(rand.NewSource(1)))

	if w, ht := h.field.Size(); w != 40*config.CellWidth || ht != 12*config.CellHeight {
		t.Fatalf("unexpected field size %vx%v", w, ht)
	}

	if !h.handleEvent(tcell.NewEventResize(20, 6)) {
		t.Fatalf("resize stopped the host")
	}
	if w, ht := h.field.Size(); w != 20*config.CellWidth || ht != 6*config.CellHeight {
		t.Errorf("field not resized: %vx%v", w, ht)
	}
	if h.field.Len() != cfg.Particles {
		t.Errorf("resize changed particle count")
	}

	if h.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Errorf("escape did not stop the host")
	}
	if h.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Errorf("q did not stop the host")
	}
	if !h.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)) {
		t.Errorf("x stopped the host")
	}
}

func TestHostFrame(t *testing.T) {
	s := newScreen(t, 40, 12)
	cfg := config.Default()
	cfg.Title = "Hi"
	cfg.Debug = true
	h := New(s, cfg, rand.New(rand.NewSource(2)))

	h.frame()
	if h.stats.Pairs != cfg.Particles*(cfg.Particles-1)/2 {
		t.Errorf("expected all pairs evaluated, got %v", h.stats.Pairs)
	}
	if contentAt(s, 1, 0) != 'H' || contentAt(s, 2, 0) != 'i' {
		t.Errorf("status line not drawn")
	}
}
