// Package transform computes where each window slot's card is placed.
package transform

import (
	"github.com/llehouerou/storytray/internal/ui/layout"
	"github.com/llehouerou/storytray/internal/window"
)

// Transform is a 2-D placement of a card's top-left corner plus a uniform
// scale applied around that corner.
type Transform struct {
	X     float64
	Y     float64
	Scale float64
}

// Translate returns t moved by (dx, dy).
func (t Transform) Translate(dx, dy float64) Transform {
	return Transform{X: t.X + dx, Y: t.Y + dy, Scale: t.Scale}
}

// TranslateX returns the horizontal offset of slot i from the viewport center.
//
// Slots right of the focused card count one preview width fewer than slots
// on the left, so the two preview stacks are not mirror images. This spacing
// is kept as designed and awaits product confirmation.
func TranslateX(i int, g layout.Geometry) float64 {
	centerCardX := -g.CardWidth / 2
	offset := float64(i - window.Middle)

	if offset <= 0 {
		return centerCardX + offset*g.PreviewCardWidth + offset*g.GapWidth
	}
	return -centerCardX + (offset-1)*g.PreviewCardWidth + offset*g.GapWidth
}

// TranslateY returns the vertical offset of slot i from the viewport center.
func TranslateY(i int, g layout.Geometry) float64 {
	if i == window.Middle {
		return -g.CardHeight / 2
	}
	return -g.PreviewCardHeight / 2
}

// Scale returns the scale of slot i.
func Scale(i int, g layout.Geometry) float64 {
	if i == window.Middle {
		return 1
	}
	return g.PreviewScale()
}

// Relative returns the transform of slot i relative to the viewport center.
// Indices outside the window follow the same formulas, which is what the
// shifted transition targets rely on.
func Relative(i int, g layout.Geometry) Transform {
	return Transform{
		X:     TranslateX(i, g),
		Y:     TranslateY(i, g),
		Scale: Scale(i, g),
	}
}

// Resolve returns the viewport-absolute transform of slot i.
func Resolve(i int, g layout.Geometry) Transform {
	cx, cy := g.Center()
	return Relative(i, g).Translate(cx, cy)
}

// Settled returns the resting transforms of every window slot.
func Settled(g layout.Geometry) []Transform {
	return Shifted(g, 0)
}

// Shifted returns, for every window slot i, the transform of slot i+shift.
// A shift of -1 previews the layout after advancing, +1 after retreating.
func Shifted(g layout.Geometry, shift int) []Transform {
	result := make([]Transform, window.Size)
	for i := range result {
		result[i] = Resolve(i+shift, g)
	}
	return result
}
