package render

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/shape-field/internal/config"
	"github.com/iburimskiy/shape-field/internal/field"
	"github.com/iburimskiy/shape-field/internal/page"
	"github.com/iburimskiy/shape-field/internal/scene"
	"github.com/iburimskiy/shape-field/internal/style"
)

// Renderer draws a scene onto an ebiten screen. Shape sprites are built
// once per shape and dropped when the shape is removed.
type Renderer struct {
	sprites map[int]*ebiten.Image
	halo    *ebiten.Image
	face    font.Face
	slide   style.Slide
}

func New() *Renderer {
	return &Renderer{
		sprites: make(map[int]*ebiten.Image),
		face:    basicfont.Face7x13,
		slide:   style.NewSlide(ebiten.TPS(), config.MenuSpringFreq, config.MenuSpringDamping),
	}
}

// Watch subscribes the renderer to the field so sprites of removed shapes
// are released.
func (r *Renderer) Watch(c *field.Controller) {
	c.Subscribe(func(ev field.Event) {
		if ev.Type != field.ShapeRemoved {
			return
		}
		if img, ok := r.sprites[ev.Shape.ID]; ok {
			img.Deallocate()
			delete(r.sprites, ev.Shape.ID)
		}
	})
}

// Draw renders the whole frame. status goes in the HUD line.
func (r *Renderer) Draw(screen *ebiten.Image, sc *scene.Scene, status string) {
	if r.halo == nil {
		r.halo = haloSprite()
	}
	screen.Fill(config.BackgroundColor)

	r.drawParticles(screen, sc)
	r.drawShapes(screen, sc)
	r.drawSections(screen, sc)
	r.drawMenu(screen, sc)
	r.drawHamburger(screen, sc.Page.Menu.Open())

	ebitenutil.DebugPrintAt(screen, status, 70, 26)
}

func (r *Renderer) drawParticles(screen *ebiten.Image, sc *scene.Scene) {
	_, h := sc.Size()
	elapsed := sc.Elapsed()
	for _, p := range sc.Particles.Particles {
		f := p.Sample(elapsed, h)
		if f.Opacity <= 0 {
			continue
		}
		x, y := p.Position(f)
		glow := p.GlowRadius() * f.Scale
		r.drawHalo(screen, x, y, glow, config.ParticleColor, 0.8*f.Opacity)

		c := config.ParticleColor
		a := f.Opacity * float64(c.A) / 255
		dot := color.RGBA{R: uint8(float64(c.R) * a), G: uint8(float64(c.G) * a), B: uint8(float64(c.B) * a), A: uint8(255 * a)}
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(p.Radius(f)), dot, true)
	}
}

func (r *Renderer) drawShapes(screen *ebiten.Image, sc *scene.Scene) {
	now := sc.Elapsed()
	for _, s := range sc.Field.Shapes() {
		opacity := s.Opacity(now)
		if opacity <= 0 {
			continue
		}
		c := s.Center()
		r.drawHalo(screen, c.X, c.Y, s.Size/2+s.Glow.Radius(), config.ShapeColor, s.Glow.Alpha()*opacity)

		img, ok := r.sprites[s.ID]
		if !ok {
			img = shapeSprite(s, config.ShapeColor)
			r.sprites[s.ID] = img
		}
		w, h := img.Bounds().Dx(), img.Bounds().Dy()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
		op.GeoM.Rotate(s.Motion.Rotation * math.Pi / 180)
		op.GeoM.Translate(c.X, c.Y)
		op.ColorScale.ScaleAlpha(float32(opacity))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)
	}
}

// drawHalo draws a soft disc of the given radius around (x, y).
func (r *Renderer) drawHalo(screen *ebiten.Image, x, y, radius float64, c color.RGBA, alpha float64) {
	if radius <= 0 || alpha <= 0 {
		return
	}
	k := 2 * radius / haloSize
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-haloSize/2, -haloSize/2)
	op.GeoM.Scale(k, k)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(r.halo, op)
}

const (
	sectionLeft      = 80
	placeholderW     = 240
	placeholderH     = 135
	lineHeight       = 18
	titleLineSpacing = 28
)

func (r *Renderer) drawSections(screen *ebiten.Image, sc *scene.Scene) {
	_, h := sc.Size()
	scroll := sc.Page.ScrollY
	for _, s := range sc.Page.Sections {
		top := s.Top - scroll
		if top > h || top+s.Height < 0 || !s.Classes.Has(page.ClassRevealed) {
			continue
		}
		y := int(top) + 40
		text.Draw(screen, strings.ToUpper(s.Title), r.face, sectionLeft, y, config.TextColor)
		y += titleLineSpacing
		for _, line := range strings.Split(s.Body, "\n") {
			text.Draw(screen, line, r.face, sectionLeft, y, config.TextColor)
			y += lineHeight
		}
		for _, ph := range sc.Page.Placeholders.Items() {
			if ph.Label == s.Title {
				r.drawPlaceholder(screen, ph, sc, sectionLeft, float32(y+20))
			}
		}
	}
}

func (r *Renderer) drawPlaceholder(screen *ebiten.Image, ph *page.Placeholder, sc *scene.Scene, x, y float32) {
	frame := color.RGBA{R: 60, G: 90, B: 140, A: 255}
	vector.DrawFilledRect(screen, x, y, placeholderW, placeholderH, color.RGBA{R: 12, G: 20, B: 40, A: 220}, false)
	vector.StrokeRect(screen, x, y, placeholderW, placeholderH, 2, frame, false)

	if !ph.Classes.Has(page.ClassMediaPresent) || ph.Media != sc.Soundtrack {
		vector.StrokeLine(screen, x, y, x+placeholderW, y+placeholderH, 2, frame, true)
		vector.StrokeLine(screen, x+placeholderW, y, x, y+placeholderH, 2, frame, true)
		return
	}

	st := sc.Soundtrack
	level := float32(math.Min(1, st.Level()*3))
	vector.DrawFilledRect(screen, x+10, y+placeholderH-30, (placeholderW-20)*level, 12, config.ShapeColor, false)
	label := fmt.Sprintf("%s / %s", formatDuration(st.Position()), formatDuration(st.Length()))
	text.Draw(screen, label, r.face, int(x)+10, int(y)+24, config.TextColor)
}

func (r *Renderer) drawMenu(screen *ebiten.Image, sc *scene.Scene) {
	target := 0.0
	if sc.Page.Menu.Open() {
		target = 1
	}
	pos := r.slide.Step(target)
	if pos < 0.001 {
		return
	}
	w, h := sc.Size()
	x := float32(w - config.MenuWidth*pos)
	vector.DrawFilledRect(screen, x, 0, config.MenuWidth, float32(h), config.OverlayColor, false)
	for i, s := range sc.Page.Sections {
		y := menuEntryTop + i*menuEntryHeight + 26
		text.Draw(screen, s.Title, r.face, int(x)+menuEntryInset, y, config.TextColor)
	}
}

func (r *Renderer) drawHamburger(screen *ebiten.Image, open bool) {
	x, y := float32(config.ButtonX), float32(config.ButtonY)
	w, h := float32(config.ButtonWidth), float32(config.ButtonHeight)
	c := config.TextColor
	if open {
		vector.StrokeLine(screen, x+6, y+4, x+w-6, y+h-4, 3, c, true)
		vector.StrokeLine(screen, x+w-6, y+4, x+6, y+h-4, 3, c, true)
		return
	}
	for i := 0; i < 3; i++ {
		by := y + 4 + float32(i)*(h-8)/2
		vector.StrokeLine(screen, x+4, by, x+w-4, by, 3, c, true)
	}
}
