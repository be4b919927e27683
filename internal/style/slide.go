package style

import "github.com/charmbracelet/harmonica"

// Slide springs a value between 0 (hidden) and 1 (shown). The menu overlay
// uses it for its open/close motion.
type Slide struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

func NewSlide(fps int, frequency, damping float64) Slide {
	return Slide{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// Step advances one frame towards target and returns the new position.
func (s *Slide) Step(target float64) float64 {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, target)
	return s.pos
}

func (s *Slide) Pos() float64 {
	return s.pos
}
