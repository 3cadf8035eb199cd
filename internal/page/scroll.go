package page

const (
	NavbarScrollOffset = 60
	ParallaxFactor     = 0.12
	BlobSpeed          = 0.02
)

// Scroll tracks the document scroll position and the effects bound to it.
type Scroll struct {
	Y              float64
	DocHeight      float64
	ViewportHeight float64
	HeroHeight     float64
	parallax       float64
}

// ScrollTo moves to y, clamped to the scrollable range.
func (s *Scroll) ScrollTo(y float64) {
	s.Y = max(0, min(y, s.maxY()))
	if s.Y < s.HeroHeight {
		s.parallax = s.Y * ParallaxFactor
	}
}

func (s *Scroll) ScrollBy(dy float64) { s.ScrollTo(s.Y + dy) }

func (s *Scroll) maxY() float64 { return max(0, s.DocHeight-s.ViewportHeight) }

// NavbarScrolled reports whether the navbar shows its compact style.
func (s *Scroll) NavbarScrolled() bool { return s.Y > NavbarScrollOffset }

// Progress is the scroll position as a percentage of the scrollable height.
func (s *Scroll) Progress() float64 {
	h := s.DocHeight - s.ViewportHeight
	if h <= 0 {
		return 0
	}
	return s.Y / h * 100
}

// Parallax is the hero image's vertical offset. It keeps its last value once
// the hero has scrolled out of view.
func (s *Scroll) Parallax() float64 { return s.parallax }

func (s *Scroll) Viewport() Span { return Span{Top: s.Y, Height: s.ViewportHeight} }

// BlobOffset is the translation of the glow blob for a cursor at (mx, my).
func BlobOffset(mx, my, vw, vh float64) (dx, dy float64) {
	return (mx - vw/2) * BlobSpeed, (my - vh/2) * BlobSpeed
}
