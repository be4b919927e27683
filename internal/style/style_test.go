package style

import (
	"image/color"
	"math"
	"testing"
)

var blue = color.RGBA{R: 0, G: 150, B: 255, A: 255}

func TestFillAlphaRunsAlongDiagonal(t *testing.T) {
	start := Fill(blue, 0)
	end := Fill(blue, 1)
	if !within(start.A, 127) {
		t.Fatalf("start alpha = %d, want about 127", start.A)
	}
	if !within(end.A, 51) {
		t.Fatalf("end alpha = %d, want about 51", end.A)
	}
	if end.B > end.A || start.B > start.A {
		t.Fatalf("colours must be premultiplied: %+v %+v", start, end)
	}
}

func TestGlowAlphaFollowsIntensity(t *testing.T) {
	if a := Glow(blue, 0.6).A; !within(a, 153) {
		t.Fatalf("alpha = %d", a)
	}
	if a := Glow(blue, 2).A; a != 255 {
		t.Fatalf("alpha should clamp, got %d", a)
	}
}

func TestOverBlendsTowardsForeground(t *testing.T) {
	bg := color.RGBA{A: 255}
	if c := Over(bg, blue, 0); c.R != 0 || c.G != 0 || c.B != 0 || c.A != 255 {
		t.Fatalf("zero opacity should keep the background, got %+v", c)
	}
	if c := Over(bg, blue, 1); c.G != 150 || c.B != 255 {
		t.Fatalf("full opacity should give the foreground, got %+v", c)
	}
	half := Over(bg, blue, 0.5)
	if math.Abs(float64(half.B)-127) > 1 {
		t.Fatalf("half opacity blue = %d, want about 127", half.B)
	}
}

func TestSlideSettles(t *testing.T) {
	s := NewSlide(60, 6, 0.9)
	for i := 0; i < 240; i++ {
		s.Step(1)
	}
	if math.Abs(s.Pos()-1) > 0.01 {
		t.Fatalf("slide should settle on the target, at %v", s.Pos())
	}
	for i := 0; i < 240; i++ {
		s.Step(0)
	}
	if math.Abs(s.Pos()) > 0.01 {
		t.Fatalf("slide should settle back on zero, at %v", s.Pos())
	}
}

func within(got, want uint8) bool {
	d := int(got) - int(want)
	return d >= -1 && d <= 1
}
