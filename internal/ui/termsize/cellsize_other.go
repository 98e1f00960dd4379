//go:build !unix

package termsize

// Detect returns the default cell size; pixel queries need TIOCGWINSZ.
func Detect() Cell {
	return Default()
}
