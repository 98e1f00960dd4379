package carousel

import (
	"github.com/llehouerou/storytray/internal/transform"
	"github.com/llehouerou/storytray/internal/ui/layout"
	"github.com/llehouerou/storytray/internal/window"
)

// Slot is what a renderer needs to paint one card. Transform is viewport
// absolute: X/Y is the top-left corner, and the card is Width x Height
// scaled by Transform.Scale around that corner.
type Slot[T Item] struct {
	Slot      int
	Item      T
	ItemID    string
	Variant   string
	Transform transform.Transform
	Width     float64
	Height    float64
	Animating bool
}

// Focused reports whether the slot is the focused card.
func (s Slot[T]) Focused() bool {
	return s.Slot == window.Middle
}

// Bounds returns the on-screen rectangle of the scaled card.
func (s Slot[T]) Bounds() (x, y, w, h float64) {
	return s.Transform.X, s.Transform.Y, s.Width * s.Transform.Scale, s.Height * s.Transform.Scale
}

// Slots returns the non-empty slots in slot order. It returns nil while
// the viewport is unmeasured.
func (c *Controller[T]) Slots() []Slot[T] {
	if !c.measured {
		return nil
	}
	animating := c.state == Animating || c.driver.Animating()

	result := make([]Slot[T], 0, window.Size)
	for i, s := range c.win.Slots {
		if !s.OK {
			continue
		}
		result = append(result, Slot[T]{
			Slot:      i,
			Item:      s.Item,
			ItemID:    s.Item.ID(),
			Variant:   s.Item.Variant(),
			Transform: c.driver.Current(i),
			Width:     c.geom.CardWidth,
			Height:    c.geom.CardHeight,
			Animating: animating,
		})
	}
	return result
}

// Button is the viewport-absolute placement of a navigation button.
type Button struct {
	X, Y float64
	Size float64
}

// Chrome is the navigation affordance state.
type Chrome struct {
	HasPrev bool
	HasNext bool
	Prev    Button
	Next    Button
}

// Chrome returns the prev/next button state. Button geometry is zero while
// the viewport is unmeasured.
func (c *Controller[T]) Chrome() Chrome {
	ch := Chrome{
		HasPrev: c.win.HasPrev,
		HasNext: c.win.HasNext,
	}
	if !c.measured {
		return ch
	}

	b := layout.ButtonLayout(c.geom.CardWidth, c.geom.GapWidth)
	px, py := c.geom.PrevButtonOrigin(b)
	nx, ny := c.geom.NextButtonOrigin(b)
	ch.Prev = Button{X: px, Y: py, Size: b.Size}
	ch.Next = Button{X: nx, Y: ny, Size: b.Size}
	return ch
}
