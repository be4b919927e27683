package page

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
)

func TestMenuToggle(t *testing.T) {
	var m Menu
	m.Toggle()
	if !m.Overlay.Has(ClassActive) || !m.ScrollLocked() {
		t.Fatalf("first click should open the overlay and lock scroll: overlay=%q body=%q", m.Overlay.String(), m.Body.String())
	}
	m.Toggle()
	if m.Overlay.Has(ClassActive) || m.ScrollLocked() {
		t.Fatalf("second click should revert both flags: overlay=%q body=%q", m.Overlay.String(), m.Body.String())
	}
}

func TestMenuKeys(t *testing.T) {
	var m Menu
	if m.HandleKey(KeyEscape) {
		t.Fatalf("escape on a closed menu should not be consumed")
	}
	if !m.HandleKey(KeyEnter) || !m.Open() {
		t.Fatalf("enter should open the menu")
	}
	if !m.HandleKey(KeyEscape) || m.Open() || m.ScrollLocked() {
		t.Fatalf("escape should close the menu and unlock scroll")
	}
	if !m.HandleKey(KeySpace) || !m.Open() {
		t.Fatalf("space should toggle the menu")
	}
	if m.HandleKey(KeyOther) {
		t.Fatalf("unrelated keys are not consumed")
	}
	m.Close()
	m.Close()
	if m.Open() {
		t.Fatalf("close should be idempotent")
	}
}

func TestRevealOnce(t *testing.T) {
	a := &Element{Title: "a", Top: 0, Height: 400}
	b := &Element{Title: "b", Top: 1000, Height: 400}
	r := NewReveal(0.1, a, b)

	got := r.Update(0, 800)
	if len(got) != 1 || got[0] != a {
		t.Fatalf("expected only a to be revealed, got %d elements", len(got))
	}
	if !a.Classes.Has(ClassRevealed) || b.Classes.Has(ClassRevealed) {
		t.Fatalf("wrong classes: a=%q b=%q", a.Classes.String(), b.Classes.String())
	}

	// b is 20px in view: 5%, below the threshold.
	if got := r.Update(220, 800); len(got) != 0 {
		t.Fatalf("b should not be revealed at 5%% visibility")
	}

	if got := r.Update(300, 800); len(got) != 1 || got[0] != b {
		t.Fatalf("expected b to be revealed")
	}
	if r.Watching() != 0 {
		t.Fatalf("revealed elements must be unobserved")
	}

	// Scrolling away keeps the class.
	r.Update(5000, 800)
	if !a.Classes.Has(ClassRevealed) || !b.Classes.Has(ClassRevealed) {
		t.Fatalf("reveal must be permanent")
	}
}

type fakeMedia struct {
	src     string
	playErr error
	plays   int
}

func (f *fakeMedia) Source() string { return f.src }

func (f *fakeMedia) Play() error {
	f.plays++
	return f.playErr
}

func TestPlaceholderLifecycle(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	media := &fakeMedia{src: "intro.mp3"}
	withMedia := &Placeholder{Label: "intro", Media: media}
	empty := &Placeholder{Label: "empty"}
	p := NewPlaceholders(logger, withMedia, empty)
	p.Init()
	if items := p.Items(); len(items) != 2 || items[0] != withMedia || items[1] != empty {
		t.Fatalf("items = %v, want both containers in order", items)
	}

	if !withMedia.Classes.Has(ClassMediaPresent) {
		t.Fatalf("container with media should hide its placeholder")
	}
	if empty.Classes.Has(ClassMediaPresent) {
		t.Fatalf("empty container keeps its placeholder")
	}

	p.Handle(withMedia, MediaLoaded, nil)
	if !strings.Contains(buf.String(), "intro.mp3") {
		t.Fatalf("load should be logged, got %q", buf.String())
	}

	p.Handle(withMedia, MediaCanPlay, nil)
	if media.plays != 1 {
		t.Fatalf("canplay should attempt playback once, got %d", media.plays)
	}

	p.Handle(withMedia, MediaError, errors.New("decode failed"))
	if withMedia.Classes.Has(ClassMediaPresent) {
		t.Fatalf("load error should bring the placeholder back")
	}
}

func TestPlaybackRefusalIsLoggedOnly(t *testing.T) {
	var buf bytes.Buffer
	media := &fakeMedia{src: "loop.wav", playErr: errors.New("autoplay disabled")}
	ph := &Placeholder{Media: media}
	p := NewPlaceholders(log.New(&buf, "", 0), ph)
	p.Init()

	p.Handle(ph, MediaCanPlay, nil)
	if media.plays != 1 {
		t.Fatalf("playback must not be retried, got %d attempts", media.plays)
	}
	if !ph.Classes.Has(ClassMediaPresent) {
		t.Fatalf("refused playback keeps the media visible")
	}
	if !strings.Contains(buf.String(), "Autoplay prevented") {
		t.Fatalf("refusal should be logged, got %q", buf.String())
	}
}

func TestPageScrollRespectsMenuLock(t *testing.T) {
	p := New(DefaultSections(), 500, 100, 0.1, NewPlaceholders(log.New(bytes.NewBuffer(nil), "", 0)))
	if h := p.Height(); h != 100+4*600-100 {
		t.Fatalf("height = %v", h)
	}

	p.Scroll(300, 800)
	if p.ScrollY != 300 {
		t.Fatalf("scrollY = %v, want 300", p.ScrollY)
	}

	p.Menu.Toggle()
	p.Scroll(300, 800)
	if p.ScrollY != 300 {
		t.Fatalf("scroll must be locked while the menu is open, got %v", p.ScrollY)
	}

	p.Menu.Toggle()
	p.Scroll(1e6, 800)
	if want := p.Height() - 800; p.ScrollY != want {
		t.Fatalf("scrollY = %v, want clamp to %v", p.ScrollY, want)
	}
	p.Scroll(-1e6, 800)
	if p.ScrollY != 0 {
		t.Fatalf("scrollY = %v, want 0", p.ScrollY)
	}
	if p.Reveal.Watching() != 0 {
		t.Fatalf("scrolling the whole page should reveal every section")
	}
}
