// Package testutil provides common testing utilities for UI components.
package testutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes escape sequences so rendered output can be compared
// as plain text.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// VisibleWidth returns the cell width of s, ignoring escape sequences.
func VisibleWidth(s string) int {
	return ansi.StringWidth(s)
}

// ContainsLine checks if any line in the output contains the given substring.
func ContainsLine(output, substr string) bool {
	_, _, ok := Locate(output, substr)
	return ok
}

// SplitLines splits output into lines, removing trailing empty lines.
func SplitLines(output string) []string {
	lines := strings.Split(output, "\n")
	for len(lines) > 0 && strings.TrimSpace(ansi.Strip(lines[len(lines)-1])) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// LineAt returns row of the output as plain text, or "" past the end.
func LineAt(output string, row int) string {
	lines := strings.Split(output, "\n")
	if row < 0 || row >= len(lines) {
		return ""
	}
	return ansi.Strip(lines[row])
}

// Locate finds the first occurrence of substr in the rendered output and
// returns its cell position. Columns count terminal cells, so wide runes
// before the match shift it by two.
func Locate(output, substr string) (col, row int, ok bool) {
	for i, line := range strings.Split(output, "\n") {
		plain := ansi.Strip(line)
		if idx := strings.Index(plain, substr); idx >= 0 {
			return ansi.StringWidth(plain[:idx]), i, true
		}
	}
	return 0, 0, false
}
