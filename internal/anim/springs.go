// Package anim animates carousel slot transforms with damped springs.
package anim

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"github.com/llehouerou/storytray/internal/transform"
	"github.com/llehouerou/storytray/internal/window"
)

const (
	// DefaultFPS is the frame rate used when none is configured.
	DefaultFPS = 60

	// settleFactor is omega*t at which a critically damped spring is within
	// about half a percent of its target.
	settleFactor = 7.5

	// Rest thresholds: a slot closer than this to its target, and slower than
	// this, snaps and stops.
	positionEpsilon = 0.5
	scaleEpsilon    = 0.001
)

// FrameMsg is sent once per animation frame.
type FrameMsg time.Time

// FrameCmd returns a command that sends FrameMsg after one frame at fps.
func FrameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

type slot struct {
	pos    [3]float64
	vel    [3]float64
	target [3]float64
	spring harmonica.Spring
	active bool
}

// Springs drives one spring triple (x, y, scale) per window slot. It is
// stepped explicitly, once per frame.
type Springs struct {
	fps   int
	slots [window.Size]slot
}

// New creates a spring driver stepping at fps frames per second.
func New(fps int) *Springs {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Springs{fps: fps}
}

// FPS returns the frame rate the driver steps at.
func (s *Springs) FPS() int {
	return s.fps
}

// AngularFrequency returns the spring frequency that settles within d.
func AngularFrequency(d time.Duration) float64 {
	secs := d.Seconds()
	if secs <= 0 {
		secs = 0.5
	}
	return settleFactor / secs
}

// Start animates each slot from its current state toward its target.
// Velocities are kept so a retarget mid-flight stays smooth.
func (s *Springs) Start(targets []transform.Transform, d time.Duration) {
	spring := harmonica.NewSpring(harmonica.FPS(s.fps), AngularFrequency(d), 1.0)
	for i := range s.slots {
		if i >= len(targets) {
			break
		}
		sl := &s.slots[i]
		sl.target = components(targets[i])
		sl.spring = spring
		sl.active = !sl.atRest()
		if !sl.active {
			sl.pos = sl.target
			sl.vel = [3]float64{}
		}
	}
}

// Snap moves each slot to its target instantly.
func (s *Springs) Snap(targets []transform.Transform) {
	for i := range s.slots {
		if i >= len(targets) {
			break
		}
		c := components(targets[i])
		s.slots[i] = slot{pos: c, target: c}
	}
}

// Stop halts every slot where it currently is.
func (s *Springs) Stop() {
	for i := range s.slots {
		sl := &s.slots[i]
		sl.target = sl.pos
		sl.vel = [3]float64{}
		sl.active = false
	}
}

// Current returns the present transform of a slot.
func (s *Springs) Current(i int) transform.Transform {
	if i < 0 || i >= len(s.slots) {
		return transform.Transform{}
	}
	p := s.slots[i].pos
	return transform.Transform{X: p[0], Y: p[1], Scale: p[2]}
}

// Animating reports whether any slot is still moving.
func (s *Springs) Animating() bool {
	for i := range s.slots {
		if s.slots[i].active {
			return true
		}
	}
	return false
}

// Step advances every active slot by one frame. Returns whether any slot is
// still moving afterwards.
func (s *Springs) Step() bool {
	moving := false
	for i := range s.slots {
		sl := &s.slots[i]
		if !sl.active {
			continue
		}
		for c := range sl.pos {
			sl.pos[c], sl.vel[c] = sl.spring.Update(sl.pos[c], sl.vel[c], sl.target[c])
		}
		if sl.atRest() {
			sl.pos = sl.target
			sl.vel = [3]float64{}
			sl.active = false
			continue
		}
		moving = true
	}
	return moving
}

func (sl *slot) atRest() bool {
	for c := range sl.pos {
		eps := positionEpsilon
		if c == 2 {
			eps = scaleEpsilon
		}
		if math.Abs(sl.pos[c]-sl.target[c]) > eps || math.Abs(sl.vel[c]) > eps {
			return false
		}
	}
	return true
}

func components(t transform.Transform) [3]float64 {
	return [3]float64{t.X, t.Y, t.Scale}
}
