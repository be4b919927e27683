package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/shape-field/internal/field"
	"github.com/iburimskiy/shape-field/internal/style"
)

const (
	haloSize       = 64
	innerGlowWidth = 20.0
)

// shapeSprite renders the unrotated body of a shape: diagonal gradient
// fill, inset glow and border, clipped to a circle for round shapes.
func shapeSprite(s *field.Shape, base color.RGBA) *ebiten.Image {
	n := int(math.Ceil(s.Size))
	if n < 1 {
		n = 1
	}
	pix := make([]byte, 4*n*n)
	half := float64(n) / 2
	border := style.Border(base)
	inner := style.InnerGlow(base)

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			fx, fy := float64(x)+0.5, float64(y)+0.5
			var edge float64 // distance to the outline, px
			if s.Style.Round {
				edge = half - math.Hypot(fx-half, fy-half)
			} else {
				edge = math.Min(math.Min(fx, fy), math.Min(float64(n)-fx, float64(n)-fy))
			}
			if edge < 0 {
				continue
			}

			var c color.RGBA
			if edge < style.BorderWidth {
				c = border
			} else {
				c = style.Fill(base, (fx+fy)/(2*float64(n)))
				if edge < style.BorderWidth+innerGlowWidth {
					w := 1 - (edge-style.BorderWidth)/innerGlowWidth
					c = over(c, scale(inner, w))
				}
			}
			i := 4 * (y*n + x)
			pix[i], pix[i+1], pix[i+2], pix[i+3] = c.R, c.G, c.B, c.A
		}
	}

	img := ebiten.NewImage(n, n)
	img.WritePixels(pix)
	return img
}

// haloSprite is a white radial falloff tinted per draw for outer glows.
func haloSprite() *ebiten.Image {
	pix := make([]byte, 4*haloSize*haloSize)
	half := float64(haloSize) / 2
	for y := 0; y < haloSize; y++ {
		for x := 0; x < haloSize; x++ {
			d := math.Hypot(float64(x)+0.5-half, float64(y)+0.5-half) / half
			if d >= 1 {
				continue
			}
			a := uint8(255 * (1 - d) * (1 - d))
			i := 4 * (y*haloSize + x)
			pix[i], pix[i+1], pix[i+2], pix[i+3] = a, a, a, a
		}
	}
	img := ebiten.NewImage(haloSize, haloSize)
	img.WritePixels(pix)
	return img
}

// over composites premultiplied src onto premultiplied dst.
func over(dst, src color.RGBA) color.RGBA {
	k := 1 - float64(src.A)/255
	return color.RGBA{
		R: src.R + uint8(float64(dst.R)*k),
		G: src.G + uint8(float64(dst.G)*k),
		B: src.B + uint8(float64(dst.B)*k),
		A: src.A + uint8(float64(dst.A)*k),
	}
}

func scale(c color.RGBA, w float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * w),
		G: uint8(float64(c.G) * w),
		B: uint8(float64(c.B) * w),
		A: uint8(float64(c.A) * w),
	}
}
