// Package window provides the fixed-size sliding window over an ordered
// item sequence that the carousel renders.
package window

// Size is the number of slots in a window.
const Size = 7

// Middle is the index of the focused slot.
const Middle = Size / 2

// Slot holds an optional item. OK is false for slots that fall outside the
// sequence; such slots render nothing.
type Slot[T any] struct {
	Item  T
	Index int // index into the sequence, meaningful only when OK
	OK    bool
}

// Window is a read-only view of Size items centered on a focus index.
type Window[T any] struct {
	Slots   [Size]Slot[T]
	Focus   int
	HasPrev bool
	HasNext bool
}

// New builds the window centered on focus. Focus is not clamped; callers
// clamp with Clamp before building.
func New[T any](items []T, focus int) Window[T] {
	w := Window[T]{
		Focus:   focus,
		HasPrev: focus > 0,
		HasNext: focus < len(items)-1,
	}
	for k := range Size {
		idx := focus + k - Middle
		if idx < 0 || idx >= len(items) {
			continue
		}
		w.Slots[k] = Slot[T]{Item: items[idx], Index: idx, OK: true}
	}
	return w
}

// Center returns the focused slot.
func (w Window[T]) Center() Slot[T] {
	return w.Slots[Middle]
}

// Clamp returns the nearest valid focus index for a sequence of length n.
// An empty sequence clamps to 0.
func Clamp(focus, n int) int {
	if n <= 0 || focus < 0 {
		return 0
	}
	if focus >= n {
		return n - 1
	}
	return focus
}
