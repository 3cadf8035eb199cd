package page

// Visible-ratio thresholds of the page observers.
const (
	RevealThreshold  = 0.12
	RevealMargin     = 30 // px trimmed off the bottom of the viewport
	CounterThreshold = 0.5
	NavThreshold     = 0.25
)

// Span is a vertical extent in page coordinates.
type Span struct {
	Top, Height float64
}

func (s Span) Bottom() float64 { return s.Top + s.Height }

// VisibleRatio is the fraction of s that lies inside view.
func VisibleRatio(s, view Span) float64 {
	top := max(s.Top, view.Top)
	bottom := min(s.Bottom(), view.Bottom())
	if bottom < top {
		return 0
	}
	if s.Height <= 0 {
		return 1
	}
	return (bottom - top) / s.Height
}

// Reveal latches once its element has been visible enough.
type Reveal struct {
	visible bool
}

// Observe reports the element's extent against the viewport and returns
// whether the element is revealed.
func (r *Reveal) Observe(el, viewport Span) bool {
	if r.visible {
		return true
	}
	view := viewport
	view.Height -= RevealMargin
	if ratio := VisibleRatio(el, view); ratio > 0 && ratio >= RevealThreshold {
		r.visible = true
	}
	return r.visible
}

func (r *Reveal) Visible() bool { return r.visible }
