package field

import "math"

// Motion is the drift and spin state of a shape, relative to its origin.
type Motion struct {
	OffsetX, OffsetY float64
	VX, VY           float64
	Speed            float64
	Rotation         float64 // degrees
	SpinDir          float64 // +1 or -1
	SpinSpeed        float64 // degrees per tick
}

// Bounds is the box a shape's top-left corner must stay in for one tick.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
	Damping    float64
}

// BoundsFor returns the bounce box for a shape of the given size inside a
// viewport, keeping margin clear on every edge.
func BoundsFor(vp Viewport, size, margin, damping float64) Bounds {
	return Bounds{
		MinX:    margin,
		MaxX:    vp.Width - size - margin,
		MinY:    margin,
		MaxY:    vp.Height - size - margin,
		Damping: damping,
	}
}

// Step advances m by one movement tick for a shape whose origin is at
// origin. Crossing an edge clamps the offset onto it and sends the velocity
// component back inward, scaled by the damping factor.
func Step(m Motion, origin Point, b Bounds) Motion {
	m.OffsetX += m.VX * m.Speed
	m.OffsetY += m.VY * m.Speed
	m.Rotation += m.SpinDir * m.SpinSpeed

	var hit int
	if m.OffsetX, hit = clampAxis(origin.X, m.OffsetX, b.MinX, b.MaxX); hit != 0 {
		m.VX = -float64(hit) * math.Abs(m.VX) * b.Damping
	}
	if m.OffsetY, hit = clampAxis(origin.Y, m.OffsetY, b.MinY, b.MaxY); hit != 0 {
		m.VY = -float64(hit) * math.Abs(m.VY) * b.Damping
	}
	return m
}

// clampAxis keeps origin+off within [lo, hi]. hit is -1 or +1 when the
// low or high edge was crossed, 0 otherwise. The clamped offset is nudged
// inward one ulp at a time because (hi-origin)+origin may round past hi.
func clampAxis(origin, off, lo, hi float64) (float64, int) {
	switch {
	case origin+off < lo:
		off = lo - origin
		for origin+off < lo {
			off = math.Nextafter(off, math.Inf(1))
		}
		return off, -1
	case origin+off > hi:
		off = hi - origin
		for origin+off > hi {
			off = math.Nextafter(off, math.Inf(-1))
		}
		return off, 1
	}
	return off, 0
}

const (
	glowStart = 0.6
	glowLow   = 0.55
	glowHigh  = 0.65
	glowStep  = 0.008

	GlowRadius = 30.0
)

// Glow is a triangle-wave oscillator between glowLow and glowHigh.
type Glow struct {
	Intensity float64
	Dir       float64
}

func NewGlow() Glow {
	return Glow{Intensity: glowStart, Dir: 1}
}

// Step moves the intensity one increment and reverses at either bound.
func (g Glow) Step() Glow {
	g.Intensity += g.Dir * glowStep
	if g.Intensity >= glowHigh || g.Intensity <= glowLow {
		g.Dir = -g.Dir
	}
	return g
}

// Radius is the shadow blur radius in pixels.
func (g Glow) Radius() float64 {
	return GlowRadius * g.Intensity
}

// Alpha is the shadow colour alpha.
func (g Glow) Alpha() float64 {
	return g.Intensity
}
