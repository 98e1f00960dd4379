//go:build unix

package termsize

import (
	"os"

	"golang.org/x/sys/unix"
)

// Detect returns the terminal cell dimensions in pixels
// by querying TIOCGWINSZ. Falls back to defaults if unavailable.
func Detect() Cell {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 || ws.Xpixel == 0 || ws.Ypixel == 0 {
		return Default()
	}
	return Cell{Width: int(ws.Xpixel) / int(ws.Col), Height: int(ws.Ypixel) / int(ws.Row)}
}
