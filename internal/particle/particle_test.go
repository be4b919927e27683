package particle

import (
	"math"
	"testing"
	"time"

	"github.com/iburimskiy/shape-field/internal/config"
	"github.com/iburimskiy/shape-field/internal/rng"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestSampleKeyframes(t *testing.T) {
	p := Particle{X: 10, Y: 20, Size: 4, Duration: 20 * time.Second}
	const vh = 800.0

	tests := []struct {
		name    string
		at      time.Duration
		ty      float64
		scale   float64
		opacity float64
	}{
		{"start", 0, 800, 0.5, 0},
		{"rise done", 2 * time.Second, 720, 1, 1},
		{"mid hold", 10 * time.Second, 400, 1, 1},
		{"hold done", 18 * time.Second, 80, 1, 1},
		{"halfway out", 19 * time.Second, -10, 0.75, 0.5},
		{"loops", 20 * time.Second, 800, 0.5, 0},
		{"second loop", 22 * time.Second, 720, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := p.Sample(tt.at, vh)
			if !near(f.TranslateY, tt.ty) || !near(f.Scale, tt.scale) || !near(f.Opacity, tt.opacity) {
				t.Fatalf("got %+v, want ty=%v scale=%v opacity=%v", f, tt.ty, tt.scale, tt.opacity)
			}
		})
	}
}

func TestNewFieldRanges(t *testing.T) {
	p, err := config.Revision(1)
	if err != nil {
		t.Fatal(err)
	}
	f := NewField(p.Particles, 1000, 800, rng.New(9))
	if len(f.Particles) != 30 {
		t.Fatalf("count = %d, want 30", len(f.Particles))
	}
	for i, pt := range f.Particles {
		if pt.Size < 2 || pt.Size >= 7 {
			t.Fatalf("particle %d size %v outside [2, 7)", i, pt.Size)
		}
		if pt.X < 0 || pt.X >= 1000 || pt.Y < 0 || pt.Y >= 800 {
			t.Fatalf("particle %d start (%v, %v) outside the viewport", i, pt.X, pt.Y)
		}
		if pt.Duration < 20*time.Second || pt.Duration >= 40*time.Second {
			t.Fatalf("particle %d duration %v outside [20s, 40s)", i, pt.Duration)
		}
		if pt.GlowRadius() != pt.Size*4 {
			t.Fatalf("glow radius should be four times the size")
		}
	}
}

func TestZeroDurationIsInert(t *testing.T) {
	f := Particle{Size: 3}.Sample(time.Second, 800)
	if f != (Frame{}) {
		t.Fatalf("zero-duration particle should not animate, got %+v", f)
	}
}
