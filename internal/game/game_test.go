package game

import (
	"math/rand"
	"testing"

	"github.com/iburimskiy/portfolio-fx/internal/config"
)

func newTestGame(w, h int) *Game {
	cfg := config.Default()
	cfg.Width, cfg.Height = w, h
	cfg.Sound = false
	return NewGame(cfg, rand.New(rand.NewSource(1)), nil)
}

func TestLayoutResizesField(t *testing.T) {
	g := newTestGame(1024, 640)
	before := g.field.Particle(0)

	w, h := g.Layout(800, 500)
	if w != 800 || h != 500 {
		t.Fatalf("expected layout 800x500, got %vx%v", w, h)
	}
	if fw, fh := g.field.Size(); fw != 800 || fh != 500 {
		t.Errorf("field not resized: %vx%v", fw, fh)
	}
	if g.field.Len() != config.ParticleCount {
		t.Errorf("resize changed particle count to %v", g.field.Len())
	}
	if g.field.Particle(0) != before {
		t.Errorf("resize touched particle state")
	}
	if pw, ph := g.page.Size(); pw != 800 || ph != 500 {
		t.Errorf("page not resized: %vx%v", pw, ph)
	}
}

func TestMenuButtonClick(t *testing.T) {
	g := newTestGame(480, 640)
	r := menuButtonRect(480)
	x, y := r.x+r.w/2, r.y+r.h/2

	g.pointer(x, y, true, false)
	if !g.buttonPressed || !g.buttonHovered {
		t.Fatalf("expected pressed and hovered button")
	}
	g.pointer(x, y, false, true)
	if !g.page.Menu.Open || !g.page.Menu.Active {
		t.Fatalf("menu did not open")
	}
	if g.buttonPressed {
		t.Errorf("button still pressed after release")
	}

	// Releasing elsewhere after pressing the button does nothing.
	g.pointer(x, y, true, false)
	g.pointer(0, 300, false, true)
	if !g.page.Menu.Open {
		t.Errorf("menu closed by a release outside the button")
	}
}

func TestMobileLinkFollow(t *testing.T) {
	g := newTestGame(480, 640)
	g.toggleMenu()

	targets := navTargets(480, true, g.page.Nav.Links)
	about := targets[1]
	g.pointer(about.rect.x+10, about.rect.y+10, true, false)
	g.pointer(about.rect.x+10, about.rect.y+10, false, true)

	if g.page.Menu.Open {
		t.Errorf("menu still open after following a link")
	}
	if g.page.Scroll.Y != 640 {
		t.Errorf("expected scroll to the about section at 640, got %v", g.page.Scroll.Y)
	}
}

func TestNavTargets(t *testing.T) {
	g := newTestGame(1024, 640)
	links := g.page.Nav.Links

	wide := navTargets(1024, false, links)
	if len(wide) != len(links) {
		t.Fatalf("expected %v inline links, got %v", len(links), len(wide))
	}
	for i := range wide {
		if wide[i].link != links[i] {
			t.Errorf("link %v out of order", i)
		}
		if i > 0 && wide[i].rect.x <= wide[i-1].rect.x {
			t.Errorf("link %v not to the right of link %v", i, i-1)
		}
	}
	if last := wide[len(wide)-1].rect; last.x+last.w != 1024-16 {
		t.Errorf("links not right aligned: %+v", last)
	}

	if got := navTargets(480, false, links); got != nil {
		t.Errorf("closed mobile menu exposes %v links", len(got))
	}
	if got := hitTarget(navTargets(480, true, links), 470, config.NavbarHeight+5); got != links[0] {
		t.Errorf("expected first mobile link hit, got %+v", got)
	}
	if got := hitTarget(wide, 0, 500); got != nil {
		t.Errorf("unexpected hit %+v", got)
	}
}

func TestHsvToRgb(t *testing.T) {
	tests := []struct {
		h       float64
		r, g, b uint8
	}{
		{0, 255, 0, 0},
		{120, 0, 255, 0},
		{240, 0, 0, 255},
		{360, 255, 0, 0},
		{-120, 0, 0, 255},
	}
	for _, tt := range tests {
		r, g, b := hsvToRgb(tt.h, 1, 1)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("hue %v: expected (%v,%v,%v), got (%v,%v,%v)", tt.h, tt.r, tt.g, tt.b, r, g, b)
		}
	}
}
