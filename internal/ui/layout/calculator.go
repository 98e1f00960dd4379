// Package layout provides pure functions for carousel dimension calculations.
// All values are in device-independent pixels.
package layout

import "math"

const (
	// VerticalReserve is the height kept free above and below the focused card.
	VerticalReserve = 160

	// CardAspect is the height/width ratio shared by focused and preview cards.
	CardAspect = 1.8

	// LandscapeHeightDivisor bounds the card height relative to a landscape viewport.
	LandscapeHeightDivisor = 1.25

	// DefaultButtonSize is the prev/next button size when the gap is wide enough.
	DefaultButtonSize = 24

	// ButtonGapFraction is the largest share of a gap a button may occupy.
	ButtonGapFraction = 0.7
)

// Aspect ratio thresholds selecting the preview bucket.
const (
	WideRatio    = 1.5
	RegularRatio = 0.98
)

// Bucket classifies the viewport aspect ratio for preview layout.
type Bucket int

const (
	// Narrow is for portrait viewports (ratio <= 0.98).
	Narrow Bucket = iota
	// Regular is for roughly square viewports (0.98 < ratio <= 1.5).
	Regular
	// Wide is for landscape viewports (ratio > 1.5).
	Wide
)

// String returns a human-readable name for the bucket.
func (b Bucket) String() string {
	switch b {
	case Narrow:
		return "narrow"
	case Regular:
		return "regular"
	case Wide:
		return "wide"
	default:
		return "unknown"
	}
}

// DetectBucket returns the preview bucket for the given viewport.
func DetectBucket(width, height float64) Bucket {
	ratio := width / height
	switch {
	case ratio > WideRatio:
		return Wide
	case ratio > RegularRatio:
		return Regular
	default:
		return Narrow
	}
}

// CardSize calculates the focused card dimensions for a viewport.
// Callers must only pass positive dimensions.
func CardSize(width, height float64) (cardWidth, cardHeight float64) {
	maxHeight := height - VerticalReserve

	if width > height {
		cardHeight = math.Min(height/LandscapeHeightDivisor, maxHeight)
		cardWidth = cardHeight / CardAspect
		return cardWidth, cardHeight
	}

	cardWidth = width / CardAspect
	cardHeight = cardWidth * CardAspect
	if cardHeight > maxHeight {
		cardHeight = maxHeight
		cardWidth = cardHeight / CardAspect
	}
	return cardWidth, cardHeight
}

// Preview describes how preview cards are spread beside the focused card.
type Preview struct {
	Bucket Bucket
	// CardNum is the number of preview cards visible per side. Fractional
	// values mean the outermost card is partially off screen.
	CardNum float64
	// GapNum is the number of gaps per side.
	GapNum     int
	GapWidth   float64
	CardWidth  float64
	CardHeight float64
}

// PreviewLayout calculates the preview card layout for a viewport and a
// focused card width.
func PreviewLayout(width, height, cardWidth float64) Preview {
	spaceLeft := (width - cardWidth) / 2

	var p Preview
	p.Bucket = DetectBucket(width, height)
	switch p.Bucket {
	case Wide:
		p.CardNum = 2
		p.GapNum = 3
		p.GapWidth = spaceLeft / 9
		p.CardWidth = p.GapWidth * 3
	case Regular:
		p.CardNum = 1.5
		p.GapNum = 2
		p.GapWidth = spaceLeft / 5
		p.CardWidth = p.GapWidth * 2
	default:
		p.CardNum = 0.5
		p.GapNum = 1
		p.GapWidth = spaceLeft / 2
		p.CardWidth = p.GapWidth * 2
	}
	p.CardHeight = p.CardWidth * CardAspect
	return p
}

// Geometry holds every dimension derived from a viewport.
type Geometry struct {
	ViewportWidth     float64
	ViewportHeight    float64
	CardWidth         float64
	CardHeight        float64
	GapWidth          float64
	PreviewCardWidth  float64
	PreviewCardHeight float64
	Bucket            Bucket
}

// Resolve derives the full geometry for a viewport.
func Resolve(width, height float64) Geometry {
	cardWidth, cardHeight := CardSize(width, height)
	p := PreviewLayout(width, height, cardWidth)
	return Geometry{
		ViewportWidth:     width,
		ViewportHeight:    height,
		CardWidth:         cardWidth,
		CardHeight:        cardHeight,
		GapWidth:          p.GapWidth,
		PreviewCardWidth:  p.CardWidth,
		PreviewCardHeight: p.CardHeight,
		Bucket:            p.Bucket,
	}
}

// Center returns the viewport center.
func (g Geometry) Center() (x, y float64) {
	return g.ViewportWidth / 2, g.ViewportHeight / 2
}

// PreviewScale returns the scale applied to non-focused cards.
func (g Geometry) PreviewScale() float64 {
	if g.CardWidth == 0 {
		return 0
	}
	return g.PreviewCardWidth / g.CardWidth
}

// Measurable reports whether a viewport can hold a card at all.
func Measurable(width, height float64) bool {
	return width > 0 && height > VerticalReserve
}

// Button describes the size and anchor offsets of the prev/next buttons.
type Button struct {
	Size float64
	// X is the horizontal distance from the viewport center to the prev
	// button's left edge.
	X float64
	// Y is the vertical distance from the viewport center to the button top.
	Y float64
	// Gap is the padding between the focused card and a button.
	Gap float64
}

// ButtonLayout calculates the navigation button geometry. The default size
// is clamped down when the gap cannot fit it with padding.
func ButtonLayout(cardWidth, gapWidth float64) Button {
	size := math.Min(DefaultButtonSize, gapWidth*ButtonGapFraction)
	gap := (gapWidth - size) / 2
	return Button{
		Size: size,
		X:    math.Abs(-cardWidth/2 - gap - size),
		Y:    size / 2,
		Gap:  gap,
	}
}

// PrevButtonOrigin returns the viewport-absolute top-left of the prev button.
func (g Geometry) PrevButtonOrigin(b Button) (x, y float64) {
	cx, cy := g.Center()
	return cx - b.X, cy - b.Y
}

// NextButtonOrigin returns the viewport-absolute top-left of the next button.
func (g Geometry) NextButtonOrigin(b Button) (x, y float64) {
	cx, cy := g.Center()
	return cx + g.CardWidth/2 + b.Gap, cy - b.Y
}
