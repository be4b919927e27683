package page

import "math"

// Page is the scrollable content the field animates behind.
type Page struct {
	Sections     []*Element
	Menu         Menu
	Reveal       *Reveal
	Placeholders *Placeholders

	ScrollY float64
}

// New lays sections out top to bottom and observes each for reveal.
func New(sections []*Element, sectionHeight, gap, threshold float64, placeholders *Placeholders) *Page {
	y := gap
	for _, s := range sections {
		s.Top = y
		if s.Height == 0 {
			s.Height = sectionHeight
		}
		y += s.Height + gap
	}
	return &Page{
		Sections:     sections,
		Reveal:       NewReveal(threshold, sections...),
		Placeholders: placeholders,
	}
}

// Height is the full document height.
func (p *Page) Height() float64 {
	if len(p.Sections) == 0 {
		return 0
	}
	last := p.Sections[len(p.Sections)-1]
	return last.Top + last.Height
}

// Scroll moves the document by dy for a viewport of height vh. It does
// nothing while the menu holds the scroll lock.
func (p *Page) Scroll(dy, vh float64) {
	if p.Menu.ScrollLocked() {
		return
	}
	maxY := math.Max(0, p.Height()-vh)
	p.ScrollY = math.Min(maxY, math.Max(0, p.ScrollY+dy))
	p.Reveal.Update(p.ScrollY, vh)
}

// DefaultSections is the personal page content.
func DefaultSections() []*Element {
	return []*Element{
		{Title: "About", Body: "Engineer building small, sharp tools.\nScroll to explore."},
		{Title: "Projects", Body: "Floating shape field - this background.\nTerminal and SVG renderers of the same field."},
		{Title: "Showreel", Body: "Press O to choose a soundtrack.\nThe placeholder hides once media loads."},
		{Title: "Contact", Body: "Open the menu with M or the button top-left."},
	}
}
