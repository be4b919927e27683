// Package term draws the shape field in a terminal. Each cell stands for a
// TerminalCellWidth x TerminalCellHeight block of viewport pixels.
package term

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/shape-field/internal/clock"
	"github.com/iburimskiy/shape-field/internal/config"
	"github.com/iburimskiy/shape-field/internal/field"
	"github.com/iburimskiy/shape-field/internal/scene"
	"github.com/iburimskiy/shape-field/internal/style"
)

const (
	glyphRound    = 'o'
	glyphSquare   = '#'
	glyphParticle = '.'

	minOpacity = 0.05
)

// Renderer paints a scene onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	bg     tcell.Style
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		bg:     tcell.StyleDefault.Background(rgb(config.BackgroundColor)),
	}
}

// Fit resizes the scene to the pixel size of the screen.
func (r *Renderer) Fit(sc *scene.Scene) {
	cols, rows := r.screen.Size()
	sc.Resize(float64(cols*config.TerminalCellWidth), float64(rows*config.TerminalCellHeight))
}

// Draw paints one frame. It does not call Show.
func (r *Renderer) Draw(sc *scene.Scene, status string) {
	cols, rows := r.screen.Size()
	r.screen.Fill(' ', r.bg)

	_, h := sc.Size()
	now := sc.Elapsed()
	for _, p := range sc.Particles.Particles {
		f := p.Sample(now, h)
		if f.Opacity < minOpacity {
			continue
		}
		x, y := p.Position(f)
		r.set(cols, rows, cell(x, config.TerminalCellWidth), cell(y, config.TerminalCellHeight),
			glyphParticle, config.ParticleColor, f.Opacity)
	}

	for _, s := range sc.Field.Shapes() {
		if o := s.Opacity(now); o >= minOpacity {
			r.drawShape(cols, rows, s, o)
		}
	}

	st := tcell.StyleDefault.Background(rgb(config.BackgroundColor)).Foreground(rgb(config.TextColor))
	for i, ch := range status {
		if i >= cols {
			break
		}
		r.screen.SetContent(i, rows-1, ch, nil, st)
	}
}

// drawShape fills the cells whose centres fall inside the shape's outline.
func (r *Renderer) drawShape(cols, rows int, s *field.Shape, opacity float64) {
	glyph := glyphSquare
	if s.Style.Round {
		glyph = glyphRound
	}
	c := s.Center()
	half := s.Size / 2
	x0, x1 := cell(c.X-half, config.TerminalCellWidth), cell(c.X+half, config.TerminalCellWidth)
	y0, y1 := cell(c.Y-half, config.TerminalCellHeight), cell(c.Y+half, config.TerminalCellHeight)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			px := (float64(cx) + 0.5) * config.TerminalCellWidth
			py := (float64(cy) + 0.5) * config.TerminalCellHeight
			if s.Style.Round && math.Hypot(px-c.X, py-c.Y) > half {
				continue
			}
			if !s.Style.Round && (math.Abs(px-c.X) > half || math.Abs(py-c.Y) > half) {
				continue
			}
			r.set(cols, rows, cx, cy, glyph, config.ShapeColor, opacity)
		}
	}
	// Always mark the centre so small shapes stay visible.
	r.set(cols, rows, cell(c.X, config.TerminalCellWidth), cell(c.Y, config.TerminalCellHeight), glyph, config.ShapeColor, opacity)
}

func (r *Renderer) set(cols, rows, x, y int, ch rune, c color.RGBA, opacity float64) {
	if x < 0 || y < 0 || x >= cols || y >= rows {
		return
	}
	fg := style.Over(config.BackgroundColor, c, opacity)
	r.screen.SetContent(x, y, ch, nil, r.bg.Foreground(rgb(fg)))
}

func cell(v float64, size int) int {
	return int(math.Floor(v / float64(size)))
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Run takes over the terminal and animates sc until Esc, q or Ctrl-C.
func Run(sc *scene.Scene, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	r := NewRenderer(screen)
	r.Fit(sc)
	sc.Start()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, events, done)

	ticker := time.NewTicker(config.TerminalFrame)
	defer ticker.Stop()
	frame := clock.NewFrameClock(config.MaxFrameDelta, nil)

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if quitKey(ev) {
					logger.Printf("Terminal field stopped after %v", sc.Elapsed().Round(time.Second))
					return nil
				}
				if ev.Key() == tcell.KeyRune && ev.Rune() == 'p' {
					frame.Toggle()
				}
			case *tcell.EventResize:
				screen.Sync()
				r.Fit(sc)
			}
		case <-ticker.C:
			sc.Advance(frame.Tick())
			st := sc.Field.Stats()
			r.Draw(sc, fmt.Sprintf(" shapes %d/%d  fallbacks %d  p: pause  q: quit",
				st.Live, sc.Settings.Field.Target, st.Fallbacks))
			screen.Show()
		}
	}
}

// pollEvents forwards screen events until the screen is finalised or done
// is closed. events is closed when the screen stops delivering.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func quitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
