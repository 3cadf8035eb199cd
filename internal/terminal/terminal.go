// Package terminal renders the particle field into a terminal with tcell.
package terminal

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/portfolio-fx/internal/config"
	"github.com/iburimskiy/portfolio-fx/internal/particles"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

// Host drives a Field from a ticker and feeds it terminal resizes.
type Host struct {
	screen tcell.Screen
	field  *particles.Field
	title  string
	debug  bool
	stats  particles.FrameStats
}

// New sizes the field to the screen. The screen must already be initialised.
func New(screen tcell.Screen, cfg config.Config, rng *rand.Rand) *Host {
	cols, rows := screen.Size()
	return &Host{
		screen: screen,
		field:  particles.NewField(cols*config.CellWidth, rows*config.CellHeight, cfg.Particles, cfg.LinkDistance, rng),
		title:  cfg.Title,
		debug:  cfg.Debug,
	}
}

// Run renders frames until ctx is done or the user quits.
func (h *Host) Run(ctx context.Context) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-eventChan:
			if !h.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			h.frame()
		}
	}
}

func (h *Host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
	case *tcell.EventResize:
		cols, rows := ev.Size()
		h.field.Resize(cols*config.CellWidth, rows*config.CellHeight)
		h.screen.Sync()
	}
	return true
}

func (h *Host) frame() {
	h.stats = h.field.Step(cellSurface{screen: h.screen})

	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(220, 220, 235)).Background(bgColor())
	status := h.title
	if h.debug {
		status += fmt.Sprintf("  particles %d  pairs %d  links %d", h.field.Len(), h.stats.Pairs, h.stats.Links)
	}
	for i, r := range []rune(status) {
		h.screen.SetContent(1+i, 0, r, nil, style)
	}
	h.screen.Show()
}
