package particle

import (
	"math"
	"time"

	"github.com/iburimskiy/shape-field/internal/config"
	"github.com/iburimskiy/shape-field/internal/rng"
)

// Particle is a small glowing dot that loops a rise-and-fade animation.
// Everything about it after creation is a function of elapsed time.
type Particle struct {
	X, Y     float64 // start position, px
	Size     float64 // px
	Duration time.Duration
}

// GlowRadius is the shadow radius around the dot.
func (p Particle) GlowRadius() float64 {
	return p.Size * 4
}

// Frame is the animated state of a particle at one instant.
type Frame struct {
	TranslateY float64 // px, added to Y
	Scale      float64
	Opacity    float64
}

// Position returns the dot centre for frame f.
func (p Particle) Position(f Frame) (x, y float64) {
	return p.X + p.Size/2, p.Y + f.TranslateY + p.Size/2
}

// Radius returns the scaled dot radius for frame f.
func (p Particle) Radius(f Frame) float64 {
	return p.Size / 2 * f.Scale
}

// Field is the fixed batch created at start-up.
type Field struct {
	Particles []Particle
}

// NewField creates count particles spread uniformly over a viewport.
func NewField(cfg config.Particles, width, height float64, src rng.Source) *Field {
	f := &Field{Particles: make([]Particle, 0, cfg.Count)}
	for i := 0; i < cfg.Count; i++ {
		size := rng.Range(src, cfg.SizeMin, cfg.SizeMin+cfg.SizeSpread)
		x := src.Float64() * width
		y := src.Float64() * height
		f.Particles = append(f.Particles, Particle{
			X:        x,
			Y:        y,
			Size:     size,
			Duration: rng.Duration(src, cfg.DurationMin, cfg.DurationMin+cfg.DurationSpread),
		})
	}
	return f
}

type keyframe struct {
	at      float64 // fraction of the loop
	vh      float64 // translateY in viewport heights
	px      float64 // translateY in pixels
	scale   float64
	opacity float64
}

// Rise from below the viewport, hold, then leave over the top edge.
var keyframes = []keyframe{
	{at: 0, vh: 1, scale: 0.5, opacity: 0},
	{at: 0.1, vh: 0.9, scale: 1, opacity: 1},
	{at: 0.9, vh: 0.1, scale: 1, opacity: 1},
	{at: 1, px: -100, scale: 0.5, opacity: 0},
}

// Sample returns the particle's frame at elapsed time, for a viewport of
// the given height. The animation is linear and loops forever.
func (p Particle) Sample(elapsed time.Duration, viewportHeight float64) Frame {
	if p.Duration <= 0 {
		return Frame{}
	}
	t := math.Mod(float64(elapsed), float64(p.Duration)) / float64(p.Duration)
	if t < 0 {
		t += 1
	}
	for i := 1; i < len(keyframes); i++ {
		a, b := keyframes[i-1], keyframes[i]
		if t > b.at {
			continue
		}
		u := (t - a.at) / (b.at - a.at)
		ya := a.vh*viewportHeight + a.px
		yb := b.vh*viewportHeight + b.px
		return Frame{
			TranslateY: lerp(ya, yb, u),
			Scale:      lerp(a.scale, b.scale, u),
			Opacity:    lerp(a.opacity, b.opacity, u),
		}
	}
	last := keyframes[len(keyframes)-1]
	return Frame{TranslateY: last.vh*viewportHeight + last.px, Scale: last.scale, Opacity: last.opacity}
}

func lerp(a, b, u float64) float64 {
	return a + (b-a)*u
}
