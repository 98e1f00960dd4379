package tray

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/storytray/internal/anim"
	"github.com/llehouerou/storytray/internal/carousel"
	"github.com/llehouerou/storytray/internal/icons"
	"github.com/llehouerou/storytray/internal/schedule"
	"github.com/llehouerou/storytray/internal/stories"
	"github.com/llehouerou/storytray/internal/ui/termsize"
	"github.com/llehouerou/storytray/internal/window"
)

var posted = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func sample() []stories.Story {
	return []stories.Story{
		{StoryID: "a", Author: "ana", Content: "Morning run by the river", Kind: stories.VariantPurple, PostedAt: posted},
		{StoryID: "b", Author: "bo", Content: "Lunch", Kind: stories.VariantGold},
		{StoryID: "c", Content: "No author", Kind: stories.VariantGreen},
		{StoryID: "d", Author: "dee", Content: "Sunset", Kind: stories.VariantRed},
		{StoryID: "e", Author: "eli", Content: "Night", Kind: stories.VariantBlue},
	}
}

func setup(t *testing.T, cols, rows int) (*Renderer, *carousel.Controller[stories.Story]) {
	t.Helper()
	icons.Init("none")

	cell := termsize.Default()
	c := carousel.New(sample(), anim.New(anim.DefaultFPS), &schedule.Manual{})
	w, h := cell.Pixels(cols, rows)
	c.SetViewport(w, h)
	require.True(t, c.Measured())

	r := New(cell)
	r.now = func() time.Time { return posted.Add(3 * time.Hour) }
	return r, c
}

func TestRender_CanvasSize(t *testing.T) {
	r, c := setup(t, 150, 50)
	f := r.Render(c.Slots(), c.Chrome(), 150, 50)

	lines := strings.Split(f.View, "\n")
	require.Len(t, lines, 50)
	for i, line := range lines {
		assert.Equal(t, 150, ansi.StringWidth(line), "line %d", i)
	}
}

func TestRender_FocusedCardContent(t *testing.T) {
	r, c := setup(t, 150, 50)
	plain := ansi.Strip(r.Render(c.Slots(), c.Chrome(), 150, 50).View)

	assert.Contains(t, plain, "@ana")
	assert.Contains(t, plain, "Morning run by the river")
	assert.Contains(t, plain, "3 hours ago")
	assert.Contains(t, plain, "@bo", "next preview is painted")
}

func TestRender_Empty(t *testing.T) {
	r, c := setup(t, 150, 50)
	f := r.Render(c.Slots(), c.Chrome(), 0, 0)

	assert.Empty(t, f.View)
	assert.Equal(t, TargetNone, f.HitTest(0, 0).Target)
}

func TestHitTest_CenterCard(t *testing.T) {
	r, c := setup(t, 150, 50)
	f := r.Render(c.Slots(), c.Chrome(), 150, 50)

	// The center card spans the middle of the canvas.
	hit := f.HitTest(75, 25)
	assert.Equal(t, Hit{Target: TargetCard, Slot: window.Middle}, hit)

	assert.Equal(t, TargetNone, f.HitTest(0, 0).Target)
}

func TestHitTest_Preview(t *testing.T) {
	r, c := setup(t, 150, 50)
	f := r.Render(c.Slots(), c.Chrome(), 150, 50)

	var next carousel.Slot[stories.Story]
	for _, s := range c.Slots() {
		if s.Slot == window.Middle+1 {
			next = s
		}
	}
	require.Equal(t, "b", next.ItemID)

	x, y, w, h := next.Bounds()
	cell := r.Cell()
	hit := f.HitTest(cell.Col(x+w/2), cell.Row(y+h/2))
	assert.Equal(t, Hit{Target: TargetCard, Slot: window.Middle + 1}, hit)
}

func TestHitTest_Buttons(t *testing.T) {
	r, c := setup(t, 150, 50)
	chrome := c.Chrome()
	require.False(t, chrome.HasPrev)
	require.True(t, chrome.HasNext)

	f := r.Render(c.Slots(), chrome, 150, 50)
	cell := r.Cell()

	hit := f.HitTest(cell.Col(chrome.Next.X), cell.Row(chrome.Next.Y))
	assert.Equal(t, TargetNext, hit.Target, "buttons sit above cards")

	hit = f.HitTest(cell.Col(chrome.Prev.X), cell.Row(chrome.Prev.Y))
	assert.NotEqual(t, TargetPrev, hit.Target, "no prev button at the first story")
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 0, distance(window.Middle))
	assert.Equal(t, 3, distance(0))
	assert.Equal(t, 3, distance(window.Size-1))
}

func TestRenderer_SetCell(t *testing.T) {
	r, c := setup(t, 150, 50)

	// The same 1200x800 px tray on a terminal with twice the cell size.
	big := termsize.Cell{Width: 16, Height: 32}
	r.SetCell(big)
	assert.Equal(t, big, r.Cell())

	f := r.Render(c.Slots(), c.Chrome(), 75, 25)
	lines := strings.Split(f.View, "\n")
	require.Len(t, lines, 25)
	assert.Equal(t, 75, ansi.StringWidth(lines[0]))

	hit := f.HitTest(37, 12)
	assert.Equal(t, TargetCard, hit.Target)
	assert.Equal(t, window.Middle, hit.Slot)
	assert.Equal(t, TargetNone, f.HitTest(5, 12).Target, "nothing precedes the first story")
}
