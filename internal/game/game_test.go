package game

import (
	"errors"
	"io"
	"log"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/shape-field/internal/config"
	"github.com/iburimskiy/shape-field/internal/scene"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	s := config.Defaults()
	s.Seed = 3
	s.Autoplay = false
	logger := log.New(io.Discard, "", 0)
	sc := scene.New(s, logger)
	t.Cleanup(sc.Close)
	return New(sc, logger)
}

func TestEscapeOnlyClosesMenu(t *testing.T) {
	g := newTestGame(t)
	menu := &g.scene.Page.Menu

	if err := g.handleKey(ebiten.KeyEscape); err != nil {
		t.Fatalf("Escape with the menu closed returned %v", err)
	}

	if err := g.handleKey(ebiten.KeyM); err != nil || !menu.Open() {
		t.Fatalf("M should open the menu (err %v)", err)
	}
	if err := g.handleKey(ebiten.KeyEscape); err != nil || menu.Open() {
		t.Fatalf("Escape should close the menu (err %v)", err)
	}
	if menu.ScrollLocked() {
		t.Fatalf("scroll lock should be released with the menu")
	}
}

func TestQuitKey(t *testing.T) {
	g := newTestGame(t)
	if err := g.handleKey(ebiten.KeyQ); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("Q returned %v, want ebiten.Termination", err)
	}
}

func TestPauseKeyStopsFrameClock(t *testing.T) {
	g := newTestGame(t)
	if err := g.handleKey(ebiten.KeyP); err != nil {
		t.Fatal(err)
	}
	if !g.frame.Paused() {
		t.Fatalf("P should pause the frame clock")
	}
	if d := g.frame.Tick(); d != 0 {
		t.Fatalf("paused tick = %v, want 0", d)
	}
}
