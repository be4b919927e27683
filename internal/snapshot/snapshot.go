// Package snapshot writes the state of a scene as a standalone SVG image.
package snapshot

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/iburimskiy/shape-field/internal/config"
	"github.com/iburimskiy/shape-field/internal/field"
	"github.com/iburimskiy/shape-field/internal/scene"
	"github.com/iburimskiy/shape-field/internal/style"
)

const gradientID = "shapefill"

// Write renders sc at its current virtual time. Shapes that are not yet
// visible are omitted.
func Write(w io.Writer, sc *scene.Scene) {
	width, height := sc.Size()
	canvas := svg.New(w)
	canvas.Start(int(width), int(height))
	canvas.Title(fmt.Sprintf("Shape field at %v", sc.Elapsed()))

	base := config.ShapeColor
	canvas.Def()
	canvas.LinearGradient(gradientID, 0, 0, 100, 100, []svg.Offcolor{
		offset(0, style.Fill(base, 0)),
		offset(100, style.Fill(base, 1)),
	})
	canvas.DefEnd()

	bg := config.BackgroundColor
	canvas.Rect(0, 0, int(width), int(height), canvas.RGB(int(bg.R), int(bg.G), int(bg.B)))

	now := sc.Elapsed()
	pc := config.ParticleColor
	for _, p := range sc.Particles.Particles {
		f := p.Sample(now, height)
		if f.Opacity <= 0 {
			continue
		}
		x, y := p.Position(f)
		r := int(math.Max(1, math.Round(p.Radius(f))))
		canvas.Circle(int(x), int(y), r, canvas.RGBA(int(pc.R), int(pc.G), int(pc.B), f.Opacity))
	}

	for _, s := range sc.Field.Shapes() {
		if o := s.Opacity(now); o > 0 {
			writeShape(canvas, s, o)
		}
	}
	canvas.End()
}

func writeShape(canvas *svg.SVG, s *field.Shape, opacity float64) {
	c := s.Center()
	border := offset(0, style.Border(config.ShapeColor))
	attrs := fmt.Sprintf(`fill="url(#%s)" stroke="%s" stroke-opacity="%.2f" stroke-width="%d" opacity="%.3f"`,
		gradientID, border.Color, border.Opacity, int(style.BorderWidth), opacity)

	canvas.Gtransform(fmt.Sprintf("rotate(%.2f %d %d)", s.Motion.Rotation, int(c.X), int(c.Y)))
	size := int(math.Round(s.Size))
	if s.Style.Round {
		canvas.Circle(int(c.X), int(c.Y), size/2, attrs)
	} else {
		canvas.Rect(int(c.X)-size/2, int(c.Y)-size/2, size, size, attrs)
	}
	canvas.Gend()
}

// offset turns a premultiplied colour into a gradient stop.
func offset(at uint8, c color.RGBA) svg.Offcolor {
	a := float64(c.A) / 255
	if a == 0 {
		return svg.Offcolor{Offset: at, Color: "#000000", Opacity: 0}
	}
	straight := color.RGBA{R: uint8(float64(c.R) / a), G: uint8(float64(c.G) / a), B: uint8(float64(c.B) / a)}
	return svg.Offcolor{Offset: at, Color: hex(straight), Opacity: a}
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
