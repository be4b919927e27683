package config

import (
	"fmt"
	"image/color"
	"time"
)

const (
	WindowWidth  = 1000
	WindowHeight = 800

	VisualRingSize = 8192
	MaxFrameDelta  = 60 * time.Millisecond

	// Hamburger button dimensions
	ButtonWidth  = 36
	ButtonHeight = 28
	ButtonX      = 20
	ButtonY      = 20

	// Menu overlay
	MenuWidth         = 320
	MenuSpringFreq    = 6.0
	MenuSpringDamping = 0.9

	// Page layout, px
	ScrollStep      = 60
	RevealThreshold = 0.1
	SectionHeight   = 520
	SectionGap      = 80

	// One terminal cell covers this many viewport pixels
	TerminalCellWidth  = 10
	TerminalCellHeight = 20
	TerminalFrame      = 50 * time.Millisecond
)

const (
	DefaultRevision = 3
	EnvPrefix       = "SHAPEFIELD_"
)

var (
	BackgroundColor = color.RGBA{R: 6, G: 10, B: 24, A: 255}
	ShapeColor      = color.RGBA{R: 0, G: 150, B: 255, A: 255}
	ParticleColor   = color.RGBA{R: 0, G: 150, B: 255, A: 230}
	TextColor       = color.RGBA{R: 220, G: 230, B: 245, A: 255}
	OverlayColor    = color.RGBA{R: 8, G: 14, B: 32, A: 235}
)

// Field holds the tuning of the floating shape field.
type Field struct {
	Target   int     // live shapes to maintain
	SizeMin  float64 // px
	SizeMax  float64 // px
	Margin   float64 // px kept clear on every viewport edge
	Padding  float64 // minimum centre distance at placement
	Attempts int     // placement retry budget

	MoveInterval time.Duration
	GlowInterval time.Duration
	Damping      float64 // velocity kept after a bounce

	LifetimeMin    time.Duration
	LifetimeSpread time.Duration
	FadeInDelay    time.Duration
	FadeIn         time.Duration
	FadeOut        time.Duration

	ReplenishInterval time.Duration
	SpawnDelayMin     time.Duration
	SpawnDelayMax     time.Duration
}

// Particles holds the tuning of the rising particle field.
type Particles struct {
	Count          int
	SizeMin        float64
	SizeSpread     float64
	DurationMin    time.Duration
	DurationSpread time.Duration
}

// Profile is one published revision of the effect. Later revisions trade
// population and tick rate for smoothness.
type Profile struct {
	Field     Field
	Particles Particles
}

var profiles = map[int]Profile{
	1: {
		Field: Field{
			Target:            15,
			SizeMin:           40,
			SizeMax:           120,
			Margin:            50,
			Padding:           80,
			Attempts:          100,
			MoveInterval:      80 * time.Millisecond,
			GlowInterval:      300 * time.Millisecond,
			Damping:           0.7,
			LifetimeMin:       25 * time.Second,
			LifetimeSpread:    30 * time.Second,
			FadeInDelay:       100 * time.Millisecond,
			FadeIn:            3 * time.Second,
			FadeOut:           4 * time.Second,
			ReplenishInterval: 10 * time.Second,
			SpawnDelayMin:     8 * time.Second,
			SpawnDelayMax:     20 * time.Second,
		},
		Particles: Particles{
			Count:          30,
			SizeMin:        2,
			SizeSpread:     5,
			DurationMin:    20 * time.Second,
			DurationSpread: 20 * time.Second,
		},
	},
	2: {
		Field: Field{
			Target:            8,
			SizeMin:           40,
			SizeMax:           100,
			Margin:            40,
			Padding:           90,
			Attempts:          50,
			MoveInterval:      100 * time.Millisecond,
			GlowInterval:      400 * time.Millisecond,
			Damping:           0.75,
			LifetimeMin:       25 * time.Second,
			LifetimeSpread:    30 * time.Second,
			FadeInDelay:       100 * time.Millisecond,
			FadeIn:            3 * time.Second,
			FadeOut:           4 * time.Second,
			ReplenishInterval: 12 * time.Second,
			SpawnDelayMin:     10 * time.Second,
			SpawnDelayMax:     22 * time.Second,
		},
		Particles: Particles{
			Count:          20,
			SizeMin:        2,
			SizeSpread:     5,
			DurationMin:    20 * time.Second,
			DurationSpread: 20 * time.Second,
		},
	},
	3: {
		Field: Field{
			Target:            8,
			SizeMin:           40,
			SizeMax:           100,
			Margin:            40,
			Padding:           100,
			Attempts:          50,
			MoveInterval:      100 * time.Millisecond,
			GlowInterval:      500 * time.Millisecond,
			Damping:           0.8,
			LifetimeMin:       25 * time.Second,
			LifetimeSpread:    30 * time.Second,
			FadeInDelay:       100 * time.Millisecond,
			FadeIn:            3 * time.Second,
			FadeOut:           4 * time.Second,
			ReplenishInterval: 15 * time.Second,
			SpawnDelayMin:     10 * time.Second,
			SpawnDelayMax:     25 * time.Second,
		},
		Particles: Particles{
			Count:          15,
			SizeMin:        2,
			SizeSpread:     5,
			DurationMin:    20 * time.Second,
			DurationSpread: 20 * time.Second,
		},
	},
}

// Revision returns the tuning profile for revision n (1, 2 or 3).
func Revision(n int) (Profile, error) {
	p, ok := profiles[n]
	if !ok {
		return Profile{}, fmt.Errorf("unknown revision %d (want 1, 2 or 3)", n)
	}
	return p, nil
}
