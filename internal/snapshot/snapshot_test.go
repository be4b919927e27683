package snapshot

import (
	"bytes"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/iburimskiy/shape-field/internal/config"
	"github.com/iburimskiy/shape-field/internal/scene"
)

func render(t *testing.T, after time.Duration) (string, *scene.Scene) {
	t.Helper()
	s := config.Defaults()
	s.Seed = 11
	s.Autoplay = false
	sc := scene.New(s, log.New(io.Discard, "", 0))
	t.Cleanup(sc.Close)
	sc.Start()
	sc.Advance(after)

	var buf bytes.Buffer
	Write(&buf, sc)
	return buf.String(), sc
}

func TestWriteDrawsEveryVisibleShape(t *testing.T) {
	out, sc := render(t, 2*time.Second)

	if !strings.HasPrefix(strings.TrimSpace(out), "<?xml") || !strings.Contains(out, "<svg") {
		t.Fatalf("not an SVG document:\n%.200s", out)
	}
	if !strings.Contains(out, `width="1000"`) || !strings.Contains(out, `height="800"`) {
		t.Fatalf("document does not match the viewport:\n%.300s", out)
	}

	visible := 0
	for _, s := range sc.Field.Shapes() {
		if s.Opacity(sc.Elapsed()) > 0 {
			visible++
		}
	}
	if visible == 0 {
		t.Fatalf("expected visible shapes after fade-in")
	}
	if got := strings.Count(out, "url(#"+gradientID+")"); got != visible {
		t.Fatalf("shapes in document = %d, want %d", got, visible)
	}
	if got := strings.Count(out, "rotate("); got != visible {
		t.Fatalf("rotated groups = %d, want %d", got, visible)
	}
}

func TestWriteOmitsSpawningShapes(t *testing.T) {
	out, sc := render(t, 0)

	if sc.Field.Live() == 0 {
		t.Fatalf("field should be populated")
	}
	if strings.Contains(out, "url(#"+gradientID+")") {
		t.Fatalf("shapes drawn before their fade-in")
	}
}
