package field

import (
	"math"

	"github.com/iburimskiy/shape-field/internal/rng"
)

// Viewport is the visible surface size in pixels.
type Viewport struct {
	Width, Height float64
}

// Placement configures the spawn position search.
type Placement struct {
	Margin   float64
	Padding  float64
	Attempts int
}

// FindPosition looks for a top-left corner for a new shape of the given size
// whose centre is at least Padding away from the current centre of every
// shape in active. Candidates are uniform over the viewport inset by Margin.
//
// The search is greedy: after Attempts rejected candidates it returns one
// more random candidate without checking it, and ok is false. Overlap is
// accepted on that path rather than blocking the spawn.
func FindPosition(src rng.Source, vp Viewport, size float64, p Placement, active []*Shape) (pos Point, ok bool) {
	for attempt := 0; attempt < p.Attempts; attempt++ {
		c := candidate(src, vp, size, p.Margin)
		if clearOf(c, size, p.Padding, active) {
			return c, true
		}
	}
	return candidate(src, vp, size, p.Margin), false
}

func candidate(src rng.Source, vp Viewport, size, margin float64) Point {
	spanX := math.Max(0, vp.Width-size-2*margin)
	spanY := math.Max(0, vp.Height-size-2*margin)
	return Point{
		X: src.Float64()*spanX + margin,
		Y: src.Float64()*spanY + margin,
	}
}

func clearOf(pos Point, size, padding float64, active []*Shape) bool {
	cx := pos.X + size/2
	cy := pos.Y + size/2
	for _, s := range active {
		c := s.Center()
		if math.Hypot(cx-c.X, cy-c.Y) < padding {
			return false
		}
	}
	return true
}
