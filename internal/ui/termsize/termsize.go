// Package termsize converts between terminal cells and pixels.
package termsize

import "math"

// Fallback cell size used when the terminal does not report pixels.
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

// Cell is the pixel size of one terminal cell.
type Cell struct {
	Width, Height int
}

// Default returns the fallback cell size.
func Default() Cell {
	return Cell{Width: DefaultCellWidth, Height: DefaultCellHeight}
}

// Resolve returns the configured cell size when both dimensions are set,
// otherwise the size reported by the terminal.
func Resolve(width, height int) Cell {
	if width > 0 && height > 0 {
		return Cell{Width: width, Height: height}
	}
	return Detect()
}

// Pixels returns the pixel size of a cols x rows area.
func (c Cell) Pixels(cols, rows int) (width, height float64) {
	return float64(cols * c.Width), float64(rows * c.Height)
}

// Col maps a pixel x coordinate to a column. Partially covered cells round to
// the nearest column.
func (c Cell) Col(x float64) int {
	return int(math.Round(x / float64(c.Width)))
}

// Row maps a pixel y coordinate to a row.
func (c Cell) Row(y float64) int {
	return int(math.Round(y / float64(c.Height)))
}

// Cols maps a pixel width to a column count, never less than one for a
// positive width.
func (c Cell) Cols(w float64) int {
	n := int(math.Round(w / float64(c.Width)))
	if n < 1 && w > 0 {
		return 1
	}
	return n
}

// Rows maps a pixel height to a row count, never less than one for a
// positive height.
func (c Cell) Rows(h float64) int {
	n := int(math.Round(h / float64(c.Height)))
	if n < 1 && h > 0 {
		return 1
	}
	return n
}
