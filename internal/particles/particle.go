package particles

import "math/rand"

const (
	speedSpread = 0.35
	minRadius   = 0.5
	radiusRange = 1.8
	minAlpha    = 0.1
	alphaRange  = 0.4
)

// Particle is a single drifting point. Radius and Alpha never change after creation.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Alpha  float64
}

func newParticle(rng *rand.Rand, width, height int) Particle {
	return Particle{
		X:      rng.Float64() * float64(width),
		Y:      rng.Float64() * float64(height),
		VX:     (rng.Float64() - 0.5) * speedSpread,
		VY:     (rng.Float64() - 0.5) * speedSpread,
		Radius: rng.Float64()*radiusRange + minRadius,
		Alpha:  rng.Float64()*alphaRange + minAlpha,
	}
}

// Update moves the particle one frame and reverses any velocity component whose
// coordinate ended up outside [0, width] or [0, height]. The position is not
// clamped, so an overshoot is visible for one frame.
func (p *Particle) Update(width, height int) {
	p.X += p.VX
	p.Y += p.VY
	if p.X < 0 || p.X > float64(width) {
		p.VX = -p.VX
	}
	if p.Y < 0 || p.Y > float64(height) {
		p.VY = -p.VY
	}
}

// Draw renders the particle as a filled circle.
func (p *Particle) Draw(s Surface) {
	s.FillCircle(p.X, p.Y, p.Radius, Accent.WithAlpha(p.Alpha))
}
