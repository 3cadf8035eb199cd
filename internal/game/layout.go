package game

import (
	"github.com/iburimskiy/portfolio-fx/internal/config"
	"github.com/iburimskiy/portfolio-fx/internal/page"
)

// Below this width the navbar collapses into the mobile menu.
const mobileBreakpoint = 720

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x <= r.x+r.w && y >= r.y && y <= r.y+r.h
}

// navTarget is a clickable navigation link on screen.
type navTarget struct {
	rect rect
	link *page.NavLink
}

func isMobile(width int) bool { return width < mobileBreakpoint }

func menuButtonRect(width int) rect {
	s := config.MenuButtonSize
	return rect{x: width - s - 16, y: (config.NavbarHeight - s) / 2, w: s, h: s}
}

// navTargets lays out the visible links: inline on the right of the navbar on
// wide screens, stacked in a panel below it when the mobile menu is open.
func navTargets(width int, menuOpen bool, links []*page.NavLink) []navTarget {
	var out []navTarget
	if isMobile(width) {
		if !menuOpen {
			return nil
		}
		const panelWidth, rowHeight = 200, 40
		for i, l := range links {
			out = append(out, navTarget{
				rect: rect{x: width - panelWidth, y: config.NavbarHeight + i*rowHeight, w: panelWidth, h: rowHeight},
				link: l,
			})
		}
		return out
	}

	x := width - 16
	for i := len(links) - 1; i >= 0; i-- {
		w := len(links[i].Label)*charWidth + 24
		x -= w
		out = append(out, navTarget{
			rect: rect{x: x, y: 8, w: w, h: config.NavbarHeight - 16},
			link: links[i],
		})
	}
	// restore link order
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func hitTarget(targets []navTarget, x, y int) *page.NavLink {
	for _, t := range targets {
		if t.rect.contains(x, y) {
			return t.link
		}
	}
	return nil
}
