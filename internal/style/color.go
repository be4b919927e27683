package style

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	fillAlphaStart = 0.5
	fillAlphaEnd   = 0.2
	borderAlpha    = 0.8
	innerGlowAlpha = 0.1
	BorderWidth    = 3.0
)

// highlight is blended into the fill towards the lit corner.
var highlight = colorful.Color{R: 0.75, G: 0.9, B: 1}

func toColorful(c color.RGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func toRGBA(c colorful.Color, alpha float64) color.RGBA {
	alpha = clamp01(alpha)
	r, g, b := c.Clamped().RGB255()
	// premultiplied, as image/color expects
	return color.RGBA{
		R: uint8(float64(r) * alpha),
		G: uint8(float64(g) * alpha),
		B: uint8(float64(b) * alpha),
		A: uint8(alpha * 255),
	}
}

// Fill returns the gradient fill colour at t along the 45° diagonal
// (0 = lit top-left corner, 1 = bottom-right).
func Fill(base color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	c := toColorful(base).BlendLab(highlight, 0.25*(1-t))
	return toRGBA(c, fillAlphaStart+(fillAlphaEnd-fillAlphaStart)*t)
}

// Border returns the outline colour.
func Border(base color.RGBA) color.RGBA {
	return toRGBA(toColorful(base), borderAlpha)
}

// InnerGlow returns the faint inset shadow colour.
func InnerGlow(base color.RGBA) color.RGBA {
	return toRGBA(toColorful(base), innerGlowAlpha)
}

// Glow returns the outer shadow colour for a glow intensity.
func Glow(base color.RGBA, intensity float64) color.RGBA {
	return toRGBA(toColorful(base), intensity)
}

// Over composites fg with the given opacity onto an opaque background.
// Surfaces without an alpha channel (terminals) use it for fades.
func Over(bg, fg color.RGBA, opacity float64) color.RGBA {
	c := toColorful(bg).BlendRgb(toColorful(fg), clamp01(opacity))
	return toRGBA(c, 1)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
