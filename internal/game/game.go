// Package game runs the portfolio page in an Ebiten window. Ebiten's frame
// callbacks drive the particle field; window resizes reach it through Layout.
package game

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/portfolio-fx/internal/audio"
	"github.com/iburimskiy/portfolio-fx/internal/config"
	"github.com/iburimskiy/portfolio-fx/internal/page"
	"github.com/iburimskiy/portfolio-fx/internal/particles"
)

var (
	backgroundColor = color.RGBA{R: 11, G: 11, B: 20, A: 255}
	textColor       = color.RGBA{R: 220, G: 220, B: 235, A: 255}
	accentColor     = particles.Accent.WithAlpha(1).NRGBA()
)

// Game is the ebiten.Game of the portfolio window.
type Game struct {
	cfg   config.Config
	cues  *audio.Player
	page  *page.Page
	field *particles.Field

	canvas *ebiten.Image
	stats  particles.FrameStats

	width, height int
	elapsed       time.Duration

	// input edge detection
	prevKey map[ebiten.Key]bool

	// menu button state
	buttonHovered bool
	buttonPressed bool
	hoveredLink   *page.NavLink
}

// NewGame builds the page and its particle field. cues may be nil.
func NewGame(cfg config.Config, rng *rand.Rand, cues *audio.Player) *Game {
	g := &Game{
		cfg:     cfg,
		cues:    cues,
		page:    page.New(page.Options{SectionHeight: config.SectionHeight}),
		field:   particles.NewField(cfg.Width, cfg.Height, cfg.Particles, cfg.LinkDistance, rng),
		prevKey: map[ebiten.Key]bool{},
	}
	g.resize(cfg.Width, cfg.Height)
	return g
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeyM) {
		g.toggleMenu()
	}
	switch {
	case justPressed(ebiten.KeyPageDown), justPressed(ebiten.KeySpace):
		g.page.ScrollBy(float64(g.height) * 0.9)
	case justPressed(ebiten.KeyPageUp):
		g.page.ScrollBy(-float64(g.height) * 0.9)
	case justPressed(ebiten.KeyHome):
		g.page.ScrollBy(-g.page.Scroll.DocHeight)
	case justPressed(ebiten.KeyEnd):
		g.page.ScrollBy(g.page.Scroll.DocHeight)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.page.ScrollBy(config.WheelSpeed / 4)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.page.ScrollBy(-config.WheelSpeed / 4)
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		g.page.ScrollBy(-dy * config.WheelSpeed)
	}

	mouseX, mouseY := ebiten.CursorPosition()
	g.page.MouseMove(float64(mouseX), float64(mouseY))
	g.pointer(mouseX, mouseY,
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft))

	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	dt := time.Second / time.Duration(tps)
	g.elapsed += dt
	g.page.Advance(dt)
	return nil
}

// pointer handles hover and clicks on the menu button and the nav links.
func (g *Game) pointer(x, y int, pressed, released bool) {
	mobile := isMobile(g.width)
	g.buttonHovered = mobile && menuButtonRect(g.width).contains(x, y)
	if g.buttonHovered && pressed {
		g.buttonPressed = true
	}

	targets := navTargets(g.width, g.page.Menu.Open, g.page.Nav.Links)
	g.hoveredLink = hitTarget(targets, x, y)

	if !released {
		return
	}
	if g.buttonPressed && g.buttonHovered {
		g.toggleMenu()
	} else if g.hoveredLink != nil {
		g.page.Follow(g.hoveredLink)
		g.cues.Play(audio.LinkFollow)
	}
	g.buttonPressed = false
}

func (g *Game) toggleMenu() {
	g.page.ToggleMenu()
	g.cues.Play(audio.MenuToggle)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// resize follows the hero container: the field keeps its particles and only
// learns the new bounds.
func (g *Game) resize(w, h int) {
	g.width, g.height = w, h
	g.field.Resize(w, h)
	g.page.Resize(float64(w), float64(h))
}

// ensureCanvas reallocates the particle canvas after a resize.
func (g *Game) ensureCanvas() {
	w, h := max(g.width, 1), max(g.height, 1)
	if g.canvas != nil {
		b := g.canvas.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return
		}
		g.canvas.Deallocate()
	}
	g.canvas = ebiten.NewImage(w, h)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	g.drawBlob(screen)
	g.drawParticles(screen)
	g.drawHero(screen)
	g.drawSections(screen)
	g.drawNavbar(screen)
	g.drawMenu(screen)
	g.drawProgressBar(screen)

	if g.cfg.Debug {
		msg := fmt.Sprintf("FPS %.0f  particles %d  pairs %d  links %d",
			ebiten.ActualFPS(), g.field.Len(), g.stats.Pairs, g.stats.Links)
		ebitenutil.DebugPrintAt(screen, msg, 12, g.height-20)
	}
}

// drawParticles advances the field by one frame on its canvas and composites
// the canvas where the hero currently is.
func (g *Game) drawParticles(screen *ebiten.Image) {
	g.ensureCanvas()
	g.stats = g.field.Step(imageSurface{img: g.canvas})

	scrollY := g.page.Scroll.Y
	if scrollY >= float64(g.height) {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, -scrollY)
	screen.DrawImage(g.canvas, op)
}

func (g *Game) drawBlob(screen *ebiten.Image) {
	cx := float64(g.width)*0.7 + g.page.BlobX
	cy := float64(g.height)*0.35 + g.page.BlobY - g.page.Scroll.Y
	hue := 245 + 20*float64(g.elapsed%(10*time.Second))/float64(10*time.Second)
	r, gv, b := hsvToRgb(hue, 0.6, 1)

	// Glow
	for i := 0; i < 6; i++ {
		radius := 180 - float64(i)*25
		c := color.NRGBA{R: r, G: gv, B: b, A: uint8(6 + i*3)}
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(radius), c, true)
	}
}

func (g *Game) drawHero(screen *ebiten.Image) {
	hero := g.page.Hero()
	if hero == nil {
		return
	}
	top := hero.Span.Top - g.page.Scroll.Y
	if top+hero.Span.Height < 0 {
		return
	}

	x := 48
	y := int(top + hero.Span.Height*0.38)
	ebitenutil.DebugPrintAt(screen, hero.Title, x, y)
	ebitenutil.DebugPrintAt(screen, g.cfg.Title, x, y+20)

	if tw := g.page.Typewriter; tw != nil {
		typed := tw.Text()
		ebitenutil.DebugPrintAt(screen, typed, x, y+48)
		if caretVisible(g.elapsed) {
			cx := float32(x + len(typed)*6 + 2)
			vector.DrawFilledRect(screen, cx, float32(y+50), 2, 14, accentColor, false)
		}
	}

	// Hero image frame, shifted by the parallax offset.
	if !isMobile(g.width) {
		fw, fh := 220.0, 260.0
		fx := float64(g.width) - fw - 72
		fy := top + hero.Span.Height*0.25 + g.page.Scroll.Parallax()
		vector.DrawFilledRect(screen, float32(fx), float32(fy), float32(fw), float32(fh), color.RGBA{R: 24, G: 22, B: 48, A: 220}, false)
		vector.StrokeRect(screen, float32(fx), float32(fy), float32(fw), float32(fh), 2, accentColor, false)
	}

	block := g.page.StatsBlock()
	sy := int(block.Top - g.page.Scroll.Y)
	for i, c := range g.page.Counters.Items {
		cx := x + i*170
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d+", c.Value()), cx, sy)
		ebitenutil.DebugPrintAt(screen, c.Label, cx, sy+18)
	}
}

func (g *Game) drawSections(screen *ebiten.Image) {
	for _, s := range g.page.Sections[1:] {
		top := s.Span.Top - g.page.Scroll.Y
		if top > float64(g.height) || top+s.Span.Height < 0 || !s.Revealed() {
			continue
		}
		y := int(top) + 64
		vector.DrawFilledRect(screen, 48, float32(y-8), 3, 28, accentColor, false)
		ebitenutil.DebugPrintAt(screen, s.Title, 60, y)
		for i, line := range s.Body {
			ebitenutil.DebugPrintAt(screen, line, 60, y+36+i*22)
		}
		vector.StrokeLine(screen, 48, float32(top+s.Span.Height), float32(g.width-48), float32(top+s.Span.Height), 1, color.RGBA{R: 40, G: 40, B: 60, A: 255}, false)
	}
}

func (g *Game) drawNavbar(screen *ebiten.Image) {
	if g.page.Scroll.NavbarScrolled() {
		vector.DrawFilledRect(screen, 0, 0, float32(g.width), config.NavbarHeight, color.RGBA{R: 16, G: 16, B: 30, A: 235}, false)
		vector.StrokeLine(screen, 0, config.NavbarHeight, float32(g.width), config.NavbarHeight, 1, color.RGBA{R: 60, G: 60, B: 90, A: 255}, false)
	}
	ebitenutil.DebugPrintAt(screen, g.cfg.Title, 16, (config.NavbarHeight-16)/2)

	if isMobile(g.width) {
		g.drawMenuButton(screen)
		return
	}
	for _, t := range navTargets(g.width, false, g.page.Nav.Links) {
		g.drawLink(screen, t)
	}
}

func (g *Game) drawLink(screen *ebiten.Image, t navTarget) {
	r := t.rect
	switch {
	case t.link.CTA:
		vector.DrawFilledRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), accentColor, false)
	case t.link == g.hoveredLink:
		vector.DrawFilledRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), color.RGBA{R: 40, G: 38, B: 80, A: 200}, false)
	}
	ebitenutil.DebugPrintAt(screen, t.link.Label, r.x+12, r.y+(r.h-16)/2)
	if t.link.Active {
		vector.StrokeLine(screen, float32(r.x+12), float32(r.y+r.h-2), float32(r.x+r.w-12), float32(r.y+r.h-2), 2, accentColor, false)
	}
}

func (g *Game) drawMenuButton(screen *ebiten.Image) {
	r := menuButtonRect(g.width)

	var bgColor color.Color
	if g.buttonPressed {
		bgColor = color.RGBA{R: 60, G: 56, B: 140, A: 255} // Pressed
	} else if g.buttonHovered {
		bgColor = color.RGBA{R: 80, G: 76, B: 170, A: 255} // Hovered
	} else {
		bgColor = color.RGBA{R: 30, G: 28, B: 60, A: 255} // Normal
	}
	vector.DrawFilledRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), bgColor, false)
	vector.StrokeRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), 1, accentColor, false)

	x0, x1 := float32(r.x+8), float32(r.x+r.w-8)
	if g.page.Menu.Active {
		y0, y1 := float32(r.y+8), float32(r.y+r.h-8)
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, textColor, true)
		vector.StrokeLine(screen, x0, y1, x1, y0, 2, textColor, true)
		return
	}
	for i := 0; i < 3; i++ {
		y := float32(r.y + 10 + i*6)
		vector.StrokeLine(screen, x0, y, x1, y, 2, textColor, false)
	}
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	if !isMobile(g.width) || !g.page.Menu.Open {
		return
	}
	targets := navTargets(g.width, true, g.page.Nav.Links)
	if len(targets) == 0 {
		return
	}
	first, last := targets[0].rect, targets[len(targets)-1].rect
	vector.DrawFilledRect(screen, float32(first.x), float32(first.y), float32(first.w), float32(last.y+last.h-first.y), color.RGBA{R: 16, G: 16, B: 30, A: 245}, false)
	for _, t := range targets {
		g.drawLink(screen, t)
	}
}

func (g *Game) drawProgressBar(screen *ebiten.Image) {
	progress := clamp01(g.page.Scroll.Progress() / 100)
	if progress <= 0 {
		return
	}
	fillWidth := progress * float64(g.width)
	hue := 245 + progress*60
	r, gv, b := hsvToRgb(hue, 0.6, 1)
	vector.DrawFilledRect(screen, 0, 0, float32(fillWidth), config.ProgressHeight, color.RGBA{R: r, G: gv, B: b, A: 255}, false)
}
