package page

import "log"

const ClassMediaPresent = "video-present"

// Media is the playable element inside a placeholder container.
type Media interface {
	Source() string
	Play() error
}

// MediaEvent is a lifecycle notification from a media element.
type MediaEvent int

const (
	MediaLoaded MediaEvent = iota
	MediaError
	MediaCanPlay
)

func (e MediaEvent) String() string {
	switch e {
	case MediaLoaded:
		return "loaded"
	case MediaError:
		return "error"
	case MediaCanPlay:
		return "canplay"
	}
	return "unknown"
}

// Placeholder is a container that shows a cross until its media is usable.
type Placeholder struct {
	Label   string
	Classes ClassList
	Media   Media // nil when the container is empty
}

// Placeholders wires media lifecycle events to placeholder classes.
// Playback refusal is logged and otherwise ignored.
type Placeholders struct {
	items  []*Placeholder
	logger *log.Logger
}

func NewPlaceholders(logger *log.Logger, items ...*Placeholder) *Placeholders {
	if logger == nil {
		logger = log.Default()
	}
	return &Placeholders{items: items, logger: logger}
}

// Init hides the placeholder cross on every container holding media.
func (p *Placeholders) Init() {
	for _, ph := range p.items {
		if ph.Media != nil {
			ph.Classes.Add(ClassMediaPresent)
		}
	}
}

func (p *Placeholders) Items() []*Placeholder {
	return p.items
}

// Handle reacts to one media event on ph.
func (p *Placeholders) Handle(ph *Placeholder, ev MediaEvent, err error) {
	if ph.Media == nil {
		return
	}
	switch ev {
	case MediaLoaded:
		p.logger.Printf("Media loaded successfully: %s", ph.Media.Source())
	case MediaError:
		p.logger.Printf("Media error: %s: %v", ph.Media.Source(), err)
		ph.Classes.Remove(ClassMediaPresent)
	case MediaCanPlay:
		if err := ph.Media.Play(); err != nil {
			p.logger.Printf("Autoplay prevented: %v", err)
		}
	}
}
