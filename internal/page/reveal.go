package page

import "math"

const ClassRevealed = "revealed"

// Element is a block of page content laid out at a fixed document offset.
type Element struct {
	Title   string
	Body    string
	Top     float64
	Height  float64
	Classes ClassList
}

// Reveal adds ClassRevealed to each observed element the first time enough
// of it scrolls into view, then stops watching it.
type Reveal struct {
	Threshold float64 // visible fraction needed, 0..1
	watching  []*Element
}

func NewReveal(threshold float64, elements ...*Element) *Reveal {
	r := &Reveal{Threshold: threshold}
	for _, e := range elements {
		r.Observe(e)
	}
	return r
}

func (r *Reveal) Observe(e *Element) {
	r.watching = append(r.watching, e)
}

// Watching returns how many elements are still unrevealed.
func (r *Reveal) Watching() int {
	return len(r.watching)
}

// Update checks intersections for a viewport at scrollY with the given
// height and returns the elements revealed by this call.
func (r *Reveal) Update(scrollY, viewportHeight float64) []*Element {
	var revealed []*Element
	kept := r.watching[:0]
	for _, e := range r.watching {
		if visibleFraction(e, scrollY, viewportHeight) >= r.Threshold && e.Height > 0 {
			e.Classes.Add(ClassRevealed)
			revealed = append(revealed, e)
			continue
		}
		kept = append(kept, e)
	}
	r.watching = kept
	return revealed
}

func visibleFraction(e *Element, scrollY, viewportHeight float64) float64 {
	if e.Height <= 0 {
		return 0
	}
	top := math.Max(e.Top, scrollY)
	bottom := math.Min(e.Top+e.Height, scrollY+viewportHeight)
	if bottom <= top {
		return 0
	}
	return (bottom - top) / e.Height
}
