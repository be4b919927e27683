package field

import (
	"time"

	"github.com/iburimskiy/shape-field/internal/clock"
)

// Phase is the lifecycle stage of a shape. Transitions are time driven and
// only move forward: Spawning → Visible → FadingOut → Removed.
type Phase int

const (
	Spawning Phase = iota
	Visible
	FadingOut
	Removed
)

func (p Phase) String() string {
	switch p {
	case Spawning:
		return "spawning"
	case Visible:
		return "visible"
	case FadingOut:
		return "fading-out"
	case Removed:
		return "removed"
	}
	return "unknown"
}

// Point is a position in viewport pixels, origin top-left.
type Point struct {
	X, Y float64
}

// Style is the look of a shape.
type Style struct {
	Round bool
}

// Transition eases a value from From to To over Duration, starting at Start.
type Transition struct {
	From, To float64
	Start    time.Duration
	Duration time.Duration
}

// At returns the eased value at virtual time now.
func (t Transition) At(now time.Duration) float64 {
	if t.Duration <= 0 || now >= t.Start+t.Duration {
		return t.To
	}
	if now <= t.Start {
		return t.From
	}
	p := float64(now-t.Start) / float64(t.Duration)
	return t.From + (t.To-t.From)*easeInOut(p)
}

// easeInOut approximates the CSS ease-in-out curve with a cubic smoothstep.
func easeInOut(p float64) float64 {
	return p * p * (3 - 2*p)
}

// Shape is the full state of one floating shape.
type Shape struct {
	ID     int
	Origin Point
	Size   float64
	Style  Style
	Motion Motion
	Glow   Glow
	Phase  Phase
	Fade   Transition

	Lifetime time.Duration
	BornAt   time.Duration

	move clock.Handle
	glow clock.Handle
}

// Position returns the current top-left corner.
func (s *Shape) Position() Point {
	return Point{X: s.Origin.X + s.Motion.OffsetX, Y: s.Origin.Y + s.Motion.OffsetY}
}

// Center returns the current rendered centre.
func (s *Shape) Center() Point {
	p := s.Position()
	return Point{X: p.X + s.Size/2, Y: p.Y + s.Size/2}
}

// Age is how long the shape has been registered at virtual time now.
func (s *Shape) Age(now time.Duration) time.Duration {
	return now - s.BornAt
}

// Opacity returns the opacity at virtual time now.
func (s *Shape) Opacity(now time.Duration) float64 {
	if s.Phase == Spawning || s.Phase == Removed {
		return 0
	}
	return s.Fade.At(now)
}
