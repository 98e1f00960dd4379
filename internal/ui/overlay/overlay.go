// Package overlay composes styled text blocks onto a fixed-size canvas.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Place draws block on top of base with its top-left corner at column x and
// row y. The block is opaque: spaces inside it hide the base.
// Parts of the block outside the width x len(base lines) area are clipped, so
// x and y may be negative.
func Place(base, block string, x, y, width int) string {
	baseLines := strings.Split(base, "\n")
	blockLines := strings.Split(block, "\n")

	for i, blockLine := range blockLines {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}

		blockWidth := ansi.StringWidth(blockLine)
		start, end := x, x+blockWidth
		cutFrom, cutTo := 0, blockWidth
		if start < 0 {
			cutFrom = -start
			start = 0
		}
		if end > width {
			cutTo -= end - width
			end = width
		}
		if start >= end {
			continue
		}

		baseLine := baseLines[row]
		if w := ansi.StringWidth(baseLine); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}

		result := ansi.Cut(baseLine, 0, start) + ansi.Cut(blockLine, cutFrom, cutTo)
		if end < width {
			result += ansi.Cut(baseLine, end, width)
		}
		baseLines[row] = result
	}

	return strings.Join(baseLines, "\n")
}

// Blank returns an empty canvas of the given size.
func Blank(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
