package page

import (
	"math"
	"time"
)

// CounterDuration is how long a counter takes to reach its target.
const CounterDuration = 2000 * time.Millisecond

// Counter animates a number from 0 up to Target with a cubic ease-out.
type Counter struct {
	Label   string
	Target  int
	elapsed time.Duration
	running bool
}

func (c *Counter) Start() { c.running = true }

func (c *Counter) Running() bool { return c.running }

func (c *Counter) Advance(dt time.Duration) {
	if c.running && c.elapsed < CounterDuration {
		c.elapsed += dt
	}
}

// Value is the number currently displayed.
func (c *Counter) Value() int {
	p := math.Min(float64(c.elapsed)/float64(CounterDuration), 1)
	if p >= 1 {
		return c.Target
	}
	eased := 1 - math.Pow(1-p, 3)
	return int(math.Round(float64(c.Target) * eased))
}

// Counters start together, once, the first time their block is half visible.
type Counters struct {
	Items []*Counter
	done  bool
}

func (cs *Counters) Observe(block, viewport Span) {
	if cs.done || len(cs.Items) == 0 {
		return
	}
	if ratio := VisibleRatio(block, viewport); ratio > 0 && ratio >= CounterThreshold {
		cs.done = true
		for _, c := range cs.Items {
			c.Start()
		}
	}
}

func (cs *Counters) Advance(dt time.Duration) {
	for _, c := range cs.Items {
		c.Advance(dt)
	}
}
