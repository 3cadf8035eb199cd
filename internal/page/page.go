// Package page holds the state of the portfolio page around the particle field:
// the hero typewriter, scroll driven effects, counters, reveal-on-scroll
// sections, the navigation bar and its mobile menu.
package page

import "time"

// Section is a block of the page. The hero is always the first section.
type Section struct {
	ID    string
	Title string
	Body  []string
	Span  Span

	reveal   Reveal
	aboveNav bool
}

func (s *Section) Revealed() bool { return s.reveal.Visible() }

// Options configure the page content.
type Options struct {
	Phrases       []string
	SectionHeight float64
}

// Page is the whole document. All methods must be called from the frame goroutine.
type Page struct {
	Typewriter *Typewriter
	Counters   Counters
	Scroll     Scroll
	Menu       Menu
	Nav        Nav
	Sections   []*Section

	BlobX, BlobY float64

	width, height float64
	sectionHeight float64
}

func New(opts Options) *Page {
	if opts.SectionHeight <= 0 {
		opts.SectionHeight = 480
	}
	p := &Page{
		sectionHeight: opts.SectionHeight,
		Counters: Counters{Items: []*Counter{
			{Label: "Years Experience", Target: 3},
			{Label: "Projects", Target: 25},
			{Label: "Certifications", Target: 12},
		}},
		Nav: Nav{Links: []*NavLink{
			{Label: "Home", Href: "#hero"},
			{Label: "About", Href: "#about"},
			{Label: "Skills", Href: "#skills"},
			{Label: "Projects", Href: "#projects"},
			{Label: "Contact", Href: "#contact", CTA: true},
		}},
		Sections: []*Section{
			{ID: "hero", Title: "Hello, I'm"},
			{ID: "about", Title: "About", Body: []string{
				"Analyst turning campaign data into decisions.",
				"Focused on marketing analytics, forecasting and automation.",
			}},
			{ID: "skills", Title: "Skills", Body: []string{
				"Python, SQL, pandas, scikit-learn",
				"Google Analytics, Looker Studio, SEO and SEM",
			}},
			{ID: "projects", Title: "Projects", Body: []string{
				"Customer churn prediction",
				"Campaign attribution dashboard",
				"Sentiment analysis of product reviews",
			}},
			{ID: "contact", Title: "Contact", Body: []string{
				"Open to analytics and data science roles.",
			}},
		},
	}
	if opts.Phrases != nil {
		p.Typewriter = NewTypewriter(opts.Phrases)
	} else {
		p.Typewriter = NewTypewriter(DefaultPhrases)
	}
	return p
}

// Resize lays the sections out for a viewport of w x h. The hero fills the viewport.
func (p *Page) Resize(w, h float64) {
	p.width, p.height = w, h
	top := 0.0
	for i, s := range p.Sections {
		height := p.sectionHeight
		if i == 0 {
			height = h
		}
		s.Span = Span{Top: top, Height: height}
		top += height
	}
	p.Scroll.DocHeight = top
	p.Scroll.ViewportHeight = h
	p.Scroll.HeroHeight = h
	p.Scroll.ScrollTo(p.Scroll.Y)
	p.observe()
}

func (p *Page) Size() (float64, float64) { return p.width, p.height }

// Hero returns the hero section, or nil for a page without sections.
func (p *Page) Hero() *Section {
	if len(p.Sections) == 0 {
		return nil
	}
	return p.Sections[0]
}

// StatsBlock is where the counters sit inside the hero.
func (p *Page) StatsBlock() Span {
	hero := p.Hero()
	if hero == nil {
		return Span{}
	}
	return Span{Top: hero.Span.Top + hero.Span.Height*0.72, Height: 60}
}

func (p *Page) ScrollBy(dy float64) {
	p.Scroll.ScrollBy(dy)
	p.observe()
}

// MouseMove updates the glow blob for a cursor at viewport position (x, y).
func (p *Page) MouseMove(x, y float64) {
	p.BlobX, p.BlobY = BlobOffset(x, y, p.width, p.height)
}

// ToggleMenu flips the mobile menu.
func (p *Page) ToggleMenu() { p.Menu.Toggle() }

// Follow navigates to the link's target section and closes the menu.
func (p *Page) Follow(l *NavLink) {
	p.Menu.LinkClicked()
	for _, s := range p.Sections {
		if "#"+s.ID == l.Href {
			p.Scroll.ScrollTo(s.Span.Top)
			break
		}
	}
	p.observe()
}

// Advance runs the time based animations.
func (p *Page) Advance(dt time.Duration) {
	if p.Typewriter != nil {
		p.Typewriter.Advance(dt)
	}
	p.Counters.Advance(dt)
}

func (p *Page) observe() {
	view := p.Scroll.Viewport()
	for _, s := range p.Sections {
		s.reveal.Observe(s.Span, view)

		ratio := VisibleRatio(s.Span, view)
		above := ratio > 0 && ratio >= NavThreshold
		if above && !s.aboveNav {
			p.Nav.SectionVisible(s.ID, ratio)
		}
		s.aboveNav = above
	}
	p.Counters.Observe(p.StatsBlock(), view)
}
