package field

import (
	"log"
	"time"

	"github.com/iburimskiy/shape-field/internal/clock"
	"github.com/iburimskiy/shape-field/internal/config"
	"github.com/iburimskiy/shape-field/internal/rng"
)

// EventType names a shape lifecycle notification.
type EventType string

const (
	ShapeSpawned EventType = "ShapeSpawned"
	ShapeExpired EventType = "ShapeExpired" // fade-out started
	ShapeRemoved EventType = "ShapeRemoved" // detached from the surface
)

// Event is delivered to listeners from inside scheduler callbacks.
type Event struct {
	Type  EventType
	Shape *Shape
	At    time.Duration
}

type Listener func(Event)

// Stats are running counters for the HUD.
type Stats struct {
	Live      int
	Spawned   int
	Removed   int
	Fallbacks int // spawns placed without the overlap check
	Oldest    time.Duration
}

// Controller owns the active-shape registry and keeps Target shapes alive.
// All mutation happens in Scheduler callbacks or in direct calls from the
// goroutine that advances the Scheduler.
type Controller struct {
	cfg    config.Field
	sched  *clock.Scheduler
	src    rng.Source
	vp     Viewport
	logger *log.Logger

	shapes    []*Shape
	nextID    int
	owned     map[clock.Handle]struct{}
	replenish clock.Handle
	listeners []Listener
	stats     Stats
}

func NewController(cfg config.Field, sched *clock.Scheduler, src rng.Source, vp Viewport, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.Default()
	}
	return &Controller{
		cfg:    cfg,
		sched:  sched,
		src:    src,
		vp:     vp,
		logger: logger,
		nextID: 1,
		owned:  make(map[clock.Handle]struct{}),
	}
}

// Subscribe registers fn for every lifecycle event.
func (c *Controller) Subscribe(fn Listener) {
	c.listeners = append(c.listeners, fn)
}

func (c *Controller) emit(t EventType, s *Shape) {
	ev := Event{Type: t, Shape: s, At: c.sched.Now()}
	for _, fn := range c.listeners {
		fn(ev)
	}
}

// Start fills the field up to Target and starts the replenishment loop.
func (c *Controller) Start() {
	for c.Live() < c.cfg.Target {
		c.Spawn()
	}
	c.replenish = c.sched.Every(c.cfg.ReplenishInterval, c.checkPopulation)
}

// Stop cancels every callback the controller scheduled. Shapes stay in the
// registry as they are.
func (c *Controller) Stop() {
	c.sched.Cancel(c.replenish)
	for h := range c.owned {
		c.sched.Cancel(h)
	}
	c.owned = make(map[clock.Handle]struct{})
	for _, s := range c.shapes {
		c.sched.Cancel(s.move)
		c.sched.Cancel(s.glow)
	}
}

// Resize changes the viewport used by later placements and ticks.
func (c *Controller) Resize(width, height float64) {
	c.vp = Viewport{Width: width, Height: height}
}

func (c *Controller) Viewport() Viewport {
	return c.vp
}

// Live returns the number of registered shapes, fading ones included.
func (c *Controller) Live() int {
	return len(c.shapes)
}

// Shapes returns the registry in spawn order. Callers must not modify it.
func (c *Controller) Shapes() []*Shape {
	return c.shapes
}

func (c *Controller) Stats() Stats {
	s := c.stats
	s.Live = c.Live()
	now := c.sched.Now()
	for _, sh := range c.shapes {
		if age := sh.Age(now); age > s.Oldest {
			s.Oldest = age
		}
	}
	return s
}

// Now is the virtual time of the driving scheduler.
func (c *Controller) Now() time.Duration {
	return c.sched.Now()
}

// Spawn creates one shape, registers it and schedules its lifecycle.
func (c *Controller) Spawn() *Shape {
	size := rng.Range(c.src, c.cfg.SizeMin, c.cfg.SizeMax)
	origin, ok := FindPosition(c.src, c.vp, size, Placement{
		Margin:   c.cfg.Margin,
		Padding:  c.cfg.Padding,
		Attempts: c.cfg.Attempts,
	}, c.shapes)
	if !ok {
		c.stats.Fallbacks++
		c.logger.Printf("field: no clear spot for a %.0fpx shape after %d attempts", size, c.cfg.Attempts)
	}

	spinDir := rng.Sign(c.src)
	spinSpeed := rng.Range(c.src, 0.4, 1.2)
	vx := (c.src.Float64() - 0.5) * 1.2
	vy := (c.src.Float64() - 0.5) * 1.2
	speed := rng.Range(c.src, 0.2, 0.5)
	lifetime := rng.Duration(c.src, c.cfg.LifetimeMin, c.cfg.LifetimeMin+c.cfg.LifetimeSpread)

	s := &Shape{
		ID:     c.nextID,
		Origin: origin,
		Size:   size,
		Style:  Style{Round: rng.Coin(c.src)},
		Motion: Motion{
			VX:        vx,
			VY:        vy,
			Speed:     speed,
			SpinDir:   spinDir,
			SpinSpeed: spinSpeed,
		},
		Glow:     NewGlow(),
		Phase:    Spawning,
		Lifetime: lifetime,
		BornAt:   c.sched.Now(),
	}
	c.nextID++
	c.shapes = append(c.shapes, s)
	c.stats.Spawned++

	c.after(c.cfg.FadeInDelay, func() { c.show(s) })
	s.move = c.sched.Every(c.cfg.MoveInterval, func() { c.moveTick(s) })
	s.glow = c.sched.Every(c.cfg.GlowInterval, func() { s.Glow = s.Glow.Step() })
	c.after(lifetime, func() { c.expire(s) })

	c.emit(ShapeSpawned, s)
	return s
}

func (c *Controller) moveTick(s *Shape) {
	b := BoundsFor(c.vp, s.Size, c.cfg.Margin, c.cfg.Damping)
	s.Motion = Step(s.Motion, s.Origin, b)
}

func (c *Controller) show(s *Shape) {
	if s.Phase != Spawning {
		return
	}
	s.Phase = Visible
	s.Fade = Transition{From: 0, To: 1, Start: c.sched.Now(), Duration: c.cfg.FadeIn}
}

// expire starts the fade-out. The movement and glow tickers are cancelled
// here, before the shape can be detached.
func (c *Controller) expire(s *Shape) {
	if s.Phase == FadingOut || s.Phase == Removed {
		return
	}
	now := c.sched.Now()
	c.sched.Cancel(s.move)
	c.sched.Cancel(s.glow)

	s.Fade = Transition{From: s.Opacity(now), To: 0, Start: now, Duration: c.cfg.FadeOut}
	s.Phase = FadingOut
	c.emit(ShapeExpired, s)

	c.after(c.cfg.FadeOut, func() { c.remove(s) })
}

func (c *Controller) remove(s *Shape) {
	for i, other := range c.shapes {
		if other == s {
			c.shapes = append(c.shapes[:i], c.shapes[i+1:]...)
			s.Phase = Removed
			c.stats.Removed++
			c.emit(ShapeRemoved, s)
			return
		}
	}
}

// checkPopulation runs on the replenishment period. When the field is
// short it schedules a single delayed spawn, which re-checks the count when
// it fires so concurrent expiries and spawns cannot overshoot Target.
func (c *Controller) checkPopulation() {
	if c.Live() >= c.cfg.Target {
		return
	}
	delay := rng.Duration(c.src, c.cfg.SpawnDelayMin, c.cfg.SpawnDelayMax)
	c.after(delay, func() {
		if c.Live() < c.cfg.Target {
			c.Spawn()
		}
	})
}

// after schedules a one-shot callback that Stop can cancel.
func (c *Controller) after(d time.Duration, fn func()) {
	var h clock.Handle
	h = c.sched.After(d, func() {
		delete(c.owned, h)
		fn()
	})
	c.owned[h] = struct{}{}
}
