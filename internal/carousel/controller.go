// Package carousel implements the story carousel transition state machine.
//
// A Controller owns the focus index, the busy guard and the per-slot
// animation targets. It never draws: callers read Slots and Chrome after
// every update and paint them however they like. All methods must be called
// from a single goroutine (the UI loop); the deferred commit is delivered
// through the same loop by the Scheduler.
package carousel

import (
	"log/slog"
	"time"

	"github.com/llehouerou/storytray/internal/schedule"
	"github.com/llehouerou/storytray/internal/transform"
	"github.com/llehouerou/storytray/internal/ui/layout"
	"github.com/llehouerou/storytray/internal/window"
)

// TransitionDuration is how long a navigation animates before it commits.
const TransitionDuration = 500 * time.Millisecond

// Item is the contract stories must satisfy to be shown in the carousel.
type Item interface {
	ID() string
	Variant() string
}

// Driver animates slot transforms. Interpolation and easing are entirely
// up to the implementation.
type Driver interface {
	// Start animates every slot from its current transform toward targets[i].
	Start(targets []transform.Transform, d time.Duration)
	// Snap sets every slot to targets[i] without animation.
	Snap(targets []transform.Transform)
	// Stop halts every slot where it is.
	Stop()
	// Current returns the present transform of slot i.
	Current(i int) transform.Transform
	// Animating reports whether any slot is moving.
	Animating() bool
}

// State is the navigation state.
type State int

const (
	Idle State = iota
	Animating
)

func (s State) String() string {
	if s == Animating {
		return "animating"
	}
	return "idle"
}

// Direction is a navigation direction.
type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

// Activation describes what activating a slot did.
type Activation int

const (
	// ActivationNone means nothing happened (guard, bounds, or empty slot).
	ActivationNone Activation = iota
	ActivationAdvance
	ActivationRetreat
	// ActivationContent means the focused card was activated; handling it
	// is up to the caller.
	ActivationContent
)

// Option configures a Controller.
type Option func(*options)

type options struct {
	duration time.Duration
	logger   *slog.Logger
}

// WithDuration overrides TransitionDuration.
func WithDuration(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.duration = d
		}
	}
}

// WithLogger sets the logger used for navigation events.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Controller coordinates the window, geometry and animation targets.
type Controller[T Item] struct {
	items []T
	focus int
	win   window.Window[T]

	state   State
	shift   int // slot shift of the in-flight targets: -1 advancing, +1 retreating
	pending schedule.Task
	closed  bool

	measured bool
	width    float64
	height   float64
	cache    layout.Cache
	geom     layout.Geometry

	driver   Driver
	sched    schedule.Scheduler
	duration time.Duration
	logger   *slog.Logger
}

// New creates a controller focused on the first item. Nothing is rendered
// until SetViewport receives a measurable viewport.
func New[T Item](items []T, driver Driver, sched schedule.Scheduler, opts ...Option) *Controller[T] {
	o := options{
		duration: TransitionDuration,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Controller[T]{
		items:    items,
		driver:   driver,
		sched:    sched,
		duration: o.duration,
		logger:   o.logger,
	}
	c.win = window.New(c.items, c.focus)
	return c
}

// SetViewport updates the viewport size. A viewport that cannot hold a card
// suppresses rendering. While idle the slots are re-targeted to the settled
// layout; while animating the in-flight targets follow the new geometry and
// the pending commit is left alone.
func (c *Controller[T]) SetViewport(width, height float64) {
	if c.closed {
		return
	}
	if !layout.Measurable(width, height) {
		c.measured = false
		return
	}

	first := !c.measured
	c.measured = true
	c.width, c.height = width, height
	c.refreshGeometry()

	if first {
		c.driver.Snap(c.targets())
		return
	}
	c.driver.Start(c.targets(), c.duration)
}

// SetItems replaces the item sequence. If the focus no longer fits it is
// clamped and the slots snap to their new positions; an in-flight
// navigation clamps when it commits instead.
func (c *Controller[T]) SetItems(items []T) {
	if c.closed {
		return
	}
	c.items = items

	if c.state == Animating {
		c.win = window.New(c.items, c.focus)
		return
	}

	clamped := window.Clamp(c.focus, len(c.items))
	if clamped != c.focus {
		c.logger.Info("focus clamped", "from", c.focus, "to", clamped, "len", len(c.items))
		c.focus = clamped
	}
	c.win = window.New(c.items, c.focus)

	if c.measured {
		c.refreshGeometry()
		c.driver.Snap(c.targets())
	}
}

// Advance starts a transition to the next item. Returns false when the
// request was dropped: a transition is running, there is no next item, or
// there is no viewport yet.
func (c *Controller[T]) Advance() bool {
	return c.navigate(Forward)
}

// Retreat starts a transition to the previous item. See Advance.
func (c *Controller[T]) Retreat() bool {
	return c.navigate(Backward)
}

// Activate handles a click on window slot i. Slots right of the focused
// card advance, slots left of it retreat.
func (c *Controller[T]) Activate(i int) Activation {
	if i < 0 || i >= window.Size || !c.win.Slots[i].OK {
		return ActivationNone
	}
	switch {
	case i > window.Middle:
		if c.Advance() {
			return ActivationAdvance
		}
	case i < window.Middle:
		if c.Retreat() {
			return ActivationRetreat
		}
	default:
		return ActivationContent
	}
	return ActivationNone
}

// Close cancels a pending commit. The controller ignores all further input.
func (c *Controller[T]) Close() {
	if c.closed {
		return
	}
	c.closed = true
	if c.pending != nil {
		c.pending.Cancel()
		c.pending = nil
		c.logger.Debug("pending commit cancelled")
	}
}

func (c *Controller[T]) navigate(dir Direction) bool {
	if c.closed || c.state == Animating || !c.measured {
		return false
	}
	if dir == Forward && !c.win.HasNext {
		return false
	}
	if dir == Backward && !c.win.HasPrev {
		return false
	}

	c.state = Animating
	c.shift = -int(dir)
	c.driver.Start(c.targets(), c.duration)
	c.pending = c.sched.After(c.duration, func() { c.commit(dir) })
	return true
}

func (c *Controller[T]) commit(dir Direction) {
	c.pending = nil
	if c.closed {
		return
	}

	c.driver.Stop()
	c.focus = window.Clamp(c.focus+int(dir), len(c.items))
	c.shift = 0
	c.win = window.New(c.items, c.focus)

	if c.measured {
		c.refreshGeometry()
		settled := c.targets()
		c.driver.Snap(settled)
		c.driver.Start(settled, c.duration)
	}

	c.state = Idle
	c.logger.Debug("navigation committed", "focus", c.focus, "len", len(c.items))
}

func (c *Controller[T]) refreshGeometry() {
	c.geom = c.cache.Get(layout.Key{Width: c.width, Height: c.height, Length: len(c.items)})
}

func (c *Controller[T]) targets() []transform.Transform {
	return transform.Shifted(c.geom, c.shift)
}

// Focus returns the index of the focused item.
func (c *Controller[T]) Focus() int {
	return c.focus
}

// State returns the navigation state.
func (c *Controller[T]) State() State {
	return c.state
}

// Window returns the current window.
func (c *Controller[T]) Window() window.Window[T] {
	return c.win
}

// Len returns the number of items.
func (c *Controller[T]) Len() int {
	return len(c.items)
}

// Measured reports whether a usable viewport is known.
func (c *Controller[T]) Measured() bool {
	return c.measured
}

// Geometry returns the geometry of the last measured viewport.
func (c *Controller[T]) Geometry() layout.Geometry {
	return c.geom
}

// Current returns the focused item, if any.
func (c *Controller[T]) Current() (T, bool) {
	s := c.win.Center()
	return s.Item, s.OK
}
