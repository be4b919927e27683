// Package scene assembles the shape field, the particle field and the page
// chrome behind one scheduler. Every surface (window, terminal, snapshot)
// drives a Scene and draws what it holds.
package scene

import (
	"log"
	"time"

	"github.com/iburimskiy/shape-field/internal/clock"
	"github.com/iburimskiy/shape-field/internal/config"
	"github.com/iburimskiy/shape-field/internal/field"
	"github.com/iburimskiy/shape-field/internal/media"
	"github.com/iburimskiy/shape-field/internal/page"
	"github.com/iburimskiy/shape-field/internal/particle"
	"github.com/iburimskiy/shape-field/internal/rng"
)

type Scene struct {
	Settings   config.Settings
	Sched      *clock.Scheduler
	Field      *field.Controller
	Particles  *particle.Field
	Page       *page.Page
	Soundtrack *media.Soundtrack
	Showreel   *page.Placeholder

	logger  *log.Logger
	started bool
}

// New builds a scene for a viewport of the settings' size. Nothing moves
// until Start.
func New(s config.Settings, logger *log.Logger) *Scene {
	if logger == nil {
		logger = log.Default()
	}
	src := rng.New(s.Seed)
	w, h := float64(s.Width), float64(s.Height)
	sched := clock.NewScheduler()

	showreel := &page.Placeholder{Label: "Showreel"}
	placeholders := page.NewPlaceholders(logger, showreel)
	sections := page.DefaultSections()

	sc := &Scene{
		Settings:   s,
		Sched:      sched,
		Field:      field.NewController(s.Field, sched, src, field.Viewport{Width: w, Height: h}, logger),
		Particles:  particle.NewField(s.Particles, w, h, src),
		Page:       page.New(sections, config.SectionHeight, config.SectionGap, config.RevealThreshold, placeholders),
		Soundtrack: media.NewSoundtrack(s.Autoplay, logger),
		Showreel:   showreel,
		logger:     logger,
	}
	sc.Soundtrack.OnEvent(func(ev page.MediaEvent, err error) {
		placeholders.Handle(showreel, ev, err)
	})
	return sc
}

// Start runs the page initialisers, fills the shape field and starts its
// replenishment loop, then loads the configured soundtrack if any.
func (s *Scene) Start() {
	if s.started {
		return
	}
	s.started = true
	s.Page.Placeholders.Init()
	_, h := s.Size()
	s.Page.Reveal.Update(s.Page.ScrollY, h)
	s.Field.Start()
	s.logger.Printf("Scene started: revision %d, %d shapes, %d particles",
		s.Settings.Revision, s.Field.Live(), len(s.Particles.Particles))

	if s.Settings.Media != "" {
		if err := s.LoadSoundtrack(s.Settings.Media, false); err != nil {
			s.logger.Printf("Soundtrack unavailable: %v", err)
		}
	}
}

// Advance moves the scene forward by dt.
func (s *Scene) Advance(dt time.Duration) {
	s.Sched.Advance(dt)
}

// Elapsed is the scene's virtual time.
func (s *Scene) Elapsed() time.Duration {
	return s.Sched.Now()
}

// Resize updates the viewport for the field and the reveal check.
func (s *Scene) Resize(width, height float64) {
	if vp := s.Field.Viewport(); width == vp.Width && height == vp.Height {
		return
	}
	s.Field.Resize(width, height)
	s.Page.Reveal.Update(s.Page.ScrollY, height)
}

// Size is the current viewport, as the field sees it.
func (s *Scene) Size() (width, height float64) {
	vp := s.Field.Viewport()
	return vp.Width, vp.Height
}

// Scroll moves the page by dy pixels.
func (s *Scene) Scroll(dy float64) {
	_, h := s.Size()
	s.Page.Scroll(dy, h)
}

// LoadSoundtrack attaches the soundtrack to the showreel placeholder and
// loads path. A user-initiated load lifts the autoplay restriction.
func (s *Scene) LoadSoundtrack(path string, userInitiated bool) error {
	if userInitiated {
		s.Soundtrack.AllowPlayback()
	}
	s.Showreel.Media = s.Soundtrack
	s.Page.Placeholders.Init()
	return s.Soundtrack.Load(path)
}

// Close stops every timer and releases media.
func (s *Scene) Close() {
	s.Field.Stop()
	s.Sched.Reset()
	s.Soundtrack.Close()
}
