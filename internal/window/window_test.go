package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func seq(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func indices(w Window[int]) []int {
	result := make([]int, Size)
	for k, s := range w.Slots {
		if s.OK {
			result[k] = s.Item
		} else {
			result[k] = -1
		}
	}
	return result
}

func filled(w Window[int]) int {
	n := 0
	for _, s := range w.Slots {
		if s.OK {
			n++
		}
	}
	return n
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		focus    int
		want     []int
		hasPrev  bool
		hasNext  bool
		wantSize int
	}{
		{
			name:     "middle of sequence",
			n:        10,
			focus:    4,
			want:     []int{1, 2, 3, 4, 5, 6, 7},
			hasPrev:  true,
			hasNext:  true,
			wantSize: 7,
		},
		{
			name:     "start of sequence",
			n:        10,
			focus:    0,
			want:     []int{-1, -1, -1, 0, 1, 2, 3},
			hasNext:  true,
			wantSize: 4,
		},
		{
			name:     "end of sequence",
			n:        10,
			focus:    9,
			want:     []int{6, 7, 8, 9, -1, -1, -1},
			hasPrev:  true,
			wantSize: 4,
		},
		{
			name:     "single item",
			n:        1,
			focus:    0,
			want:     []int{-1, -1, -1, 0, -1, -1, -1},
			wantSize: 1,
		},
		{
			name:     "empty sequence",
			n:        0,
			focus:    0,
			want:     []int{-1, -1, -1, -1, -1, -1, -1},
			wantSize: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New(seq(tt.n), tt.focus)
			assert.Equal(t, tt.want, indices(w))
			assert.Equal(t, tt.hasPrev, w.HasPrev)
			assert.Equal(t, tt.hasNext, w.HasNext)
			assert.Equal(t, tt.wantSize, filled(w))
		})
	}
}

func TestNew_SlotIndex(t *testing.T) {
	w := New([]string{"a", "b", "c", "d", "e"}, 2)

	center := w.Center()
	assert.True(t, center.OK)
	assert.Equal(t, "c", center.Item)
	assert.Equal(t, 2, center.Index)

	assert.Equal(t, 0, w.Slots[1].Index)
	assert.Equal(t, 4, w.Slots[5].Index)
	assert.False(t, w.Slots[0].OK)
	assert.False(t, w.Slots[6].OK)
}

func TestClamp(t *testing.T) {
	tests := []struct {
		focus, n, want int
	}{
		{3, 10, 3},
		{10, 10, 9},
		{42, 5, 4},
		{-1, 5, 0},
		{0, 0, 0},
		{7, 0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Clamp(tt.focus, tt.n), "Clamp(%d, %d)", tt.focus, tt.n)
	}
}
