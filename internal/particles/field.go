// Package particles implements the drifting particle field drawn behind the hero
// section: a fixed set of points bouncing inside the surface, joined by faint lines
// whenever two of them come close.
package particles

import (
	"math"
	"math/rand"
)

const (
	// DefaultCount is the number of particles in a field.
	DefaultCount = 60
	// DefaultMaxLinkDistance is the distance below which two particles are joined.
	DefaultMaxLinkDistance = 130.0

	// LinkWidth is the stroke width of connection lines.
	LinkWidth = 0.5
	linkAlpha = 0.08
)

// FrameStats describes what one Step did.
type FrameStats struct {
	Pairs int // pairs whose distance was measured
	Links int // connection lines drawn
}

// Field owns a fixed collection of particles and the surface dimensions they
// bounce within. It is not safe for concurrent use; the frame driver and the
// resize handler must run on the same goroutine.
type Field struct {
	particles       []Particle
	width, height   int
	maxLinkDistance float64
}

// NewField creates count particles with random kinematics inside width x height.
// Particles are never re-seeded after this.
func NewField(width, height, count int, maxLinkDistance float64, rng *rand.Rand) *Field {
	f := &Field{
		particles:       make([]Particle, 0, count),
		width:           width,
		height:          height,
		maxLinkDistance: maxLinkDistance,
	}
	for i := 0; i < count; i++ {
		f.particles = append(f.particles, newParticle(rng, width, height))
	}
	return f
}

// FromParticles builds a field around an explicit particle set.
func FromParticles(width, height int, maxLinkDistance float64, ps []Particle) *Field {
	return &Field{
		particles:       append([]Particle(nil), ps...),
		width:           width,
		height:          height,
		maxLinkDistance: maxLinkDistance,
	}
}

// Resize changes the bounds. Existing particles keep their state and may sit
// outside the new bounds until their own reflection brings them back.
func (f *Field) Resize(width, height int) {
	f.width = width
	f.height = height
}

func (f *Field) Size() (int, int) { return f.width, f.height }

func (f *Field) Len() int { return len(f.particles) }

func (f *Field) MaxLinkDistance() float64 { return f.maxLinkDistance }

// Particle returns a copy of the i-th particle.
func (f *Field) Particle(i int) Particle { return f.particles[i] }

// Step renders one frame: clear, update and draw each particle, then join every
// close pair. Pairs are visited i < j in collection order with no pruning.
func (f *Field) Step(s Surface) FrameStats {
	s.Clear()

	for i := range f.particles {
		p := &f.particles[i]
		p.Update(f.width, f.height)
		p.Draw(s)
	}

	var stats FrameStats
	for i := 0; i < len(f.particles); i++ {
		a := &f.particles[i]
		for j := i + 1; j < len(f.particles); j++ {
			b := &f.particles[j]
			stats.Pairs++
			dist := math.Hypot(a.X-b.X, a.Y-b.Y)
			alpha, ok := LinkAlpha(dist, f.maxLinkDistance)
			if !ok {
				continue
			}
			s.StrokeLine(a.X, a.Y, b.X, b.Y, LinkWidth, Accent.WithAlpha(alpha))
			stats.Links++
		}
	}
	return stats
}

// LinkAlpha is the stroke opacity of a connection of length dist. It fades
// linearly to 0 at maxDist; ok is false when no line should be drawn.
func LinkAlpha(dist, maxDist float64) (alpha float64, ok bool) {
	if dist >= maxDist {
		return 0, false
	}
	return linkAlpha * (1 - dist/maxDist), true
}
