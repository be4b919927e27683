package field

import (
	"math"
	"testing"

	"github.com/iburimskiy/shape-field/internal/rng"
)

func TestFindPositionEmptyFieldFirstAttempt(t *testing.T) {
	vp := Viewport{Width: 1000, Height: 800}
	p := Placement{Margin: 40, Padding: 100, Attempts: 50}

	for _, v := range []float64{0, 0.25, 0.5, 0.999999} {
		src := &rng.Script{Values: []float64{v}}
		pos, ok := FindPosition(src, vp, 50, p, nil)
		if !ok {
			t.Fatalf("v=%v: empty field must accept the first candidate", v)
		}
		if pos.X < 40 || pos.X > 910 || pos.Y < 40 || pos.Y > 710 {
			t.Fatalf("v=%v: position %+v outside [40,910]x[40,710]", v, pos)
		}
	}

	src := &rng.Script{Values: []float64{0, 0}}
	pos, _ := FindPosition(src, vp, 50, p, nil)
	if pos.X != 40 || pos.Y != 40 {
		t.Fatalf("lowest draw should land on the margin, got %+v", pos)
	}
}

func TestFindPositionRandomStaysInside(t *testing.T) {
	vp := Viewport{Width: 1000, Height: 800}
	p := Placement{Margin: 40, Padding: 100, Attempts: 50}
	src := rng.New(7)
	for i := 0; i < 1000; i++ {
		pos, _ := FindPosition(src, vp, 50, p, nil)
		if pos.X < 40 || pos.X > 910 || pos.Y < 40 || pos.Y > 710 {
			t.Fatalf("position %+v outside viewport bounds", pos)
		}
	}
}

func TestFindPositionSkipsCrowdedCandidates(t *testing.T) {
	vp := Viewport{Width: 1000, Height: 800}
	p := Placement{Margin: 0, Padding: 100, Attempts: 10}
	// Centre at (475, 375), 35px from the first candidate's centre.
	blocker := &Shape{Origin: Point{X: 450, Y: 350}, Size: 50}

	src := &rng.Script{Values: []float64{
		0.5, 0.5, // rejected: inside the blocker's padding
		0.0, 0.0, // accepted: far corner
	}}
	pos, ok := FindPosition(src, vp, 50, p, []*Shape{blocker})
	if !ok {
		t.Fatalf("expected the second candidate to be accepted")
	}
	if pos.X != 0 || pos.Y != 0 {
		t.Fatalf("got %+v, want the corner candidate", pos)
	}
}

func TestFindPositionUsesCurrentCentre(t *testing.T) {
	vp := Viewport{Width: 1000, Height: 800}
	p := Placement{Margin: 0, Padding: 100, Attempts: 1}
	// Spawned in the corner but drifted to the middle.
	moved := &Shape{Origin: Point{X: 0, Y: 0}, Size: 50, Motion: Motion{OffsetX: 450, OffsetY: 350}}

	src := &rng.Script{Values: []float64{0.5, 0.5}}
	if _, ok := FindPosition(src, vp, 50, p, []*Shape{moved}); ok {
		t.Fatalf("candidate on the drifted shape's centre must be rejected")
	}
}

func TestFindPositionFallbackWhenBudgetExhausted(t *testing.T) {
	vp := Viewport{Width: 300, Height: 300}
	p := Placement{Margin: 10, Padding: 1000, Attempts: 25}
	blocker := &Shape{Origin: Point{X: 100, Y: 100}, Size: 50}

	src := rng.New(3)
	counter := &countingSource{src: src}
	pos, ok := FindPosition(counter, vp, 50, p, []*Shape{blocker})
	if ok {
		t.Fatalf("no candidate can clear a 1000px padding in a 300px viewport")
	}
	if want := 2*p.Attempts + 2; counter.n != want {
		t.Fatalf("drew %d numbers, want %d (budget plus one unchecked candidate)", counter.n, want)
	}
	if pos.X < 10 || pos.X > 240 || pos.Y < 10 || pos.Y > 240 {
		t.Fatalf("fallback position %+v outside the inset viewport", pos)
	}
}

func TestAcceptedCandidatesKeepPadding(t *testing.T) {
	vp := Viewport{Width: 1000, Height: 800}
	p := Placement{Margin: 40, Padding: 100, Attempts: 50}
	src := rng.New(11)

	var placed []*Shape
	for i := 0; i < 20; i++ {
		pos, ok := FindPosition(src, vp, 50, p, placed)
		s := &Shape{Origin: pos, Size: 50}
		if ok {
			c := s.Center()
			for _, other := range placed {
				o := other.Center()
				if d := math.Hypot(c.X-o.X, c.Y-o.Y); d < p.Padding {
					t.Fatalf("accepted shape %d is %.1fpx from another, want >= %.0f", i, d, p.Padding)
				}
			}
		}
		placed = append(placed, s)
	}
}

type countingSource struct {
	src rng.Source
	n   int
}

func (c *countingSource) Float64() float64 {
	c.n++
	return c.src.Float64()
}
