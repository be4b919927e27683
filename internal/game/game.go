package game

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/shape-field/internal/clock"
	"github.com/iburimskiy/shape-field/internal/config"
	"github.com/iburimskiy/shape-field/internal/media"
	"github.com/iburimskiy/shape-field/internal/page"
	"github.com/iburimskiy/shape-field/internal/render"
	"github.com/iburimskiy/shape-field/internal/scene"
)

// Game adapts a Scene to ebiten's game loop.
type Game struct {
	scene    *scene.Scene
	frame    *clock.FrameClock
	renderer *render.Renderer
	logger   *log.Logger

	lastErr error
}

func New(sc *scene.Scene, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	r := render.New()
	r.Watch(sc.Field)
	return &Game{
		scene:    sc,
		frame:    clock.NewFrameClock(config.MaxFrameDelta, nil),
		renderer: r,
		logger:   logger,
	}
}

func (g *Game) Update() error {
	if err := g.handleInput(); err != nil {
		return err
	}
	g.scene.Advance(g.frame.Tick())
	return nil
}

func (g *Game) handleInput() error {
	menu := &g.scene.Page.Menu

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		w, _ := g.scene.Size()
		switch {
		case render.HamburgerHit(x, y):
			menu.Toggle()
		case menu.Open():
			if i := render.MenuEntryAt(x, y, int(w), len(g.scene.Page.Sections)); i >= 0 {
				g.jumpTo(i)
			}
		}
	}

	for _, k := range commandKeys {
		if inpututil.IsKeyJustPressed(k) {
			if err := g.handleKey(k); err != nil {
				return err
			}
		}
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		g.scene.Scroll(-dy * config.ScrollStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) || inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		g.scene.Scroll(config.ScrollStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		g.scene.Scroll(-config.ScrollStep)
	}
	return nil
}

var commandKeys = []ebiten.Key{
	ebiten.KeyQ, ebiten.KeyEscape, ebiten.KeyM, ebiten.KeyEnter,
	ebiten.KeySpace, ebiten.KeyP, ebiten.KeyO,
}

// handleKey runs the command bound to k. Only Q ends the game; Escape
// just closes the menu.
func (g *Game) handleKey(k ebiten.Key) error {
	menu := &g.scene.Page.Menu
	switch k {
	case ebiten.KeyQ:
		return ebiten.Termination
	case ebiten.KeyEscape:
		menu.HandleKey(page.KeyEscape)
	case ebiten.KeyM, ebiten.KeyEnter:
		menu.HandleKey(page.KeyEnter)
	case ebiten.KeySpace:
		menu.HandleKey(page.KeySpace)
	case ebiten.KeyP:
		paused := g.frame.Toggle()
		g.scene.Soundtrack.TogglePause()
		g.logger.Printf("Paused: %v", paused)
	case ebiten.KeyO:
		g.openSoundtrack()
	}
	return nil
}

// jumpTo closes the menu and scrolls section i to the top.
func (g *Game) jumpTo(i int) {
	p := g.scene.Page
	p.Menu.Close()
	g.scene.Scroll(p.Sections[i].Top - config.SectionGap - p.ScrollY)
}

func (g *Game) openSoundtrack() {
	path, err := media.Pick()
	if err != nil {
		g.lastErr = err
		return
	}
	if path == "" {
		return
	}
	g.logger.Printf("Selected soundtrack %v", path)
	if err := g.scene.LoadSoundtrack(path, true); err != nil {
		g.lastErr = err
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.scene, g.status())
}

func (g *Game) status() string {
	st := g.scene.Field.Stats()
	s := fmt.Sprintf("shapes %d/%d  oldest %v  particles %d  rev %d  fallbacks %d",
		st.Live, g.scene.Settings.Field.Target, st.Oldest.Round(time.Second),
		len(g.scene.Particles.Particles), g.scene.Settings.Revision, st.Fallbacks)
	if g.frame.Paused() {
		s += "  [paused]"
	}
	if g.lastErr != nil {
		s += " | Error: " + g.lastErr.Error()
	}
	return s
}

// Layout follows the window size so the field always fills the viewport.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func Run(sc *scene.Scene, logger *log.Logger) error {
	w, h := sc.Size()
	ebiten.SetWindowSize(int(w), int(h))
	ebiten.SetWindowTitle("Shape Field - M: menu, Esc: close menu, O: soundtrack, P: pause, Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := New(sc, logger)
	sc.Start()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
