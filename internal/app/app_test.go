package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/storytray/internal/anim"
	"github.com/llehouerou/storytray/internal/carousel"
	"github.com/llehouerou/storytray/internal/icons"
	"github.com/llehouerou/storytray/internal/schedule"
	"github.com/llehouerou/storytray/internal/stories"
	"github.com/llehouerou/storytray/internal/ui/layout"
	"github.com/llehouerou/storytray/internal/ui/termsize"
	"github.com/llehouerou/storytray/internal/ui/testutil"
	"github.com/llehouerou/storytray/internal/window"
)

type staticSource struct {
	stories []stories.Story
	err     error
}

func (s staticSource) Load() ([]stories.Story, error) {
	return s.stories, s.err
}

func sample(n int) []stories.Story {
	result := make([]stories.Story, n)
	for i := range result {
		result[i] = stories.Story{
			StoryID: fmt.Sprintf("s%d", i),
			Author:  fmt.Sprintf("author%d", i),
			Content: fmt.Sprintf("content of story %d", i),
			Kind:    stories.VariantDefault,
		}
	}
	return result
}

// newHarness returns a harness with n stories loaded on a 150x51 terminal,
// which maps to a 1200x800 pixel tray with the default cell size.
func newHarness(t *testing.T, n int) *testutil.Harness {
	t.Helper()
	icons.Init("none")

	h := testutil.NewHarness(New(Options{Source: staticSource{stories: sample(n)}}))
	h.SendResize(150, 51)
	h.SendMsg(StoriesLoadedMsg{Stories: sample(n)})
	h.ClearCommands()

	require.True(t, model(h).Carousel.Measured())
	return h
}

func model(h *testutil.Harness) Model {
	return h.Model().(Model)
}

// commit fires the pending commit of the last navigation.
func commit(h *testutil.Harness, id uint64) {
	h.SendMsg(schedule.FireMsg{ID: id})
}

func focusedSlot(m Model) (carousel.Slot[stories.Story], bool) {
	for _, s := range m.Carousel.Slots() {
		if s.Focused() {
			return s, true
		}
	}
	return carousel.Slot[stories.Story]{}, false
}

func TestInit_LoadsStories(t *testing.T) {
	m := New(Options{Source: staticSource{stories: sample(3)}})
	assert.True(t, m.Loading)

	msg := testutil.ExecuteCmd(LoadStoriesCmd(m.Source))
	loaded, ok := msg.(StoriesLoadedMsg)
	require.True(t, ok)
	assert.Len(t, loaded.Stories, 3)
	require.NoError(t, loaded.Err)

	assert.NotNil(t, m.Init())
}

func TestView_Layout(t *testing.T) {
	h := newHarness(t, 5)

	lines := strings.Split(h.View(), "\n")
	require.Len(t, lines, 51)
	assert.True(t, h.ViewContains("1/5"))
	assert.True(t, h.ViewContains("@author0"))
	assert.True(t, h.ViewContains("5 stories loaded"))

	// The focused card spans columns 53..96 and rows 5..44.
	col, row, ok := testutil.Locate(h.View(), "@author0")
	require.True(t, ok)
	assert.GreaterOrEqual(t, col, 53)
	assert.LessOrEqual(t, col, 96)
	assert.GreaterOrEqual(t, row, 5)
	assert.LessOrEqual(t, row, 44)

	col, _, ok = testutil.Locate(h.View(), "@author1")
	require.True(t, ok)
	assert.Greater(t, col, 96, "the next story previews right of the focused card")
}

func TestView_Placeholders(t *testing.T) {
	icons.Init("none")
	h := testutil.NewHarness(New(Options{}))
	assert.Empty(t, h.View(), "nothing before the first resize")

	h.SendResize(80, 24)
	assert.True(t, h.ViewContains("Loading stories"))

	h.SendMsg(StoriesLoadedMsg{})
	assert.True(t, h.ViewContains("No stories"))

	// 10 tray rows of 16px is not enough for a card.
	h.SendResize(80, 11)
	assert.False(t, model(h).Carousel.Measured())
	assert.True(t, h.ViewContains("Window too small"))
}

func TestResize_ReprobesCellSize(t *testing.T) {
	icons.Init("none")
	cell := termsize.Cell{Width: 10, Height: 20}
	probes := 0
	h := testutil.NewHarness(New(Options{
		CellProbe: func() termsize.Cell {
			probes++
			return cell
		},
	}))
	h.SendMsg(StoriesLoadedMsg{Stories: sample(3)})

	h.SendResize(150, 51)
	m := model(h)
	assert.Equal(t, 1, probes)
	assert.Equal(t, cell, m.Renderer.Cell())
	// 150x50 tray cells of 10x20 px.
	assert.Equal(t, layout.Resolve(1500, 1000), m.Carousel.Geometry())

	// A failed probe keeps the last good size.
	cell = termsize.Cell{}
	h.SendResize(150, 51)
	assert.Equal(t, termsize.Cell{Width: 10, Height: 20}, model(h).Renderer.Cell())
}

func TestResize_FixedCellSize(t *testing.T) {
	h := newHarness(t, 3)
	assert.Equal(t, termsize.Default(), model(h).Renderer.Cell())
	assert.Equal(t, layout.Resolve(1200, 800), model(h).Carousel.Geometry())
}

func TestKeys_AdvanceCommitsAfterTick(t *testing.T) {
	h := newHarness(t, 5)

	cmd := h.SendKey("l")
	require.NotNil(t, cmd, "commit tick and frame loop are scheduled")

	m := model(h)
	assert.Equal(t, carousel.Animating, m.Carousel.State())
	assert.Equal(t, 0, m.Carousel.Focus())
	assert.Equal(t, 1, m.Sched.Pending())
	assert.True(t, m.frameLoop)

	commit(h, 1)
	m = model(h)
	assert.Equal(t, carousel.Idle, m.Carousel.State())
	assert.Equal(t, 1, m.Carousel.Focus())
	assert.True(t, h.ViewContains("2/5"))
}

func TestKeys_GuardDropsInput(t *testing.T) {
	h := newHarness(t, 5)

	h.SendSpecialKey(tea.KeyRight)
	h.SendSpecialKey(tea.KeyRight)
	h.SendSpecialKey(tea.KeyLeft)

	assert.Equal(t, 1, model(h).Sched.Pending(), "only the first navigation is scheduled")

	commit(h, 1)
	assert.Equal(t, 1, model(h).Carousel.Focus())
}

func TestKeys_RetreatAtStartIsNoop(t *testing.T) {
	h := newHarness(t, 5)

	h.SendKey("h")
	m := model(h)
	assert.Equal(t, carousel.Idle, m.Carousel.State())
	assert.Zero(t, m.Sched.Pending())
}

func TestKeys_AdvanceAtEndIsNoop(t *testing.T) {
	h := newHarness(t, 2)

	h.SendKey(" ")
	commit(h, 1)
	require.Equal(t, 1, model(h).Carousel.Focus())

	h.SendKey(" ")
	assert.Equal(t, carousel.Idle, model(h).Carousel.State())
}

func TestKeys_DetailPopup(t *testing.T) {
	h := newHarness(t, 3)

	h.SendEnter()
	m := model(h)
	require.NotNil(t, m.Detail)
	assert.Equal(t, "s0", m.Detail.ID())
	assert.True(t, h.ViewContains("content of story 0"))
	assert.True(t, h.ViewContains("esc/enter close"))

	// Navigation keys are ignored while the popup is open.
	h.SendKey("l")
	assert.Equal(t, carousel.Idle, model(h).Carousel.State())

	h.SendEscape()
	assert.Nil(t, model(h).Detail)
}

func TestKeys_Help(t *testing.T) {
	h := newHarness(t, 3)

	h.SendKey("?")
	require.True(t, model(h).ShowHelp)
	assert.True(t, h.ViewContains("Previous story"))

	h.SendKey("?")
	assert.False(t, model(h).ShowHelp)
}

func TestKeys_Quit(t *testing.T) {
	h := newHarness(t, 3)

	h.SendKey("l")
	cmd := h.SendKey("q")
	assert.Equal(t, tea.QuitMsg{}, testutil.ExecuteCmd(cmd))

	// The pending commit was cancelled with the controller.
	commit(h, 1)
	assert.Equal(t, 0, model(h).Carousel.Focus())
}

func TestKeys_Reload(t *testing.T) {
	h := newHarness(t, 3)

	cmd := h.SendKey("r")
	msg, ok := testutil.ExecuteCmd(cmd).(StoriesLoadedMsg)
	require.True(t, ok)
	assert.Len(t, msg.Stories, 3)
}

func TestMouse_ClickCenterOpensDetail(t *testing.T) {
	h := newHarness(t, 5)

	h.SendClick(75, 25)
	m := model(h)
	require.NotNil(t, m.Detail)
	assert.Equal(t, "s0", m.Detail.ID())

	// Any click closes it again.
	h.SendClick(0, 0)
	assert.Nil(t, model(h).Detail)
}

func TestMouse_ClickNextButton(t *testing.T) {
	h := newHarness(t, 5)
	m := model(h)

	chrome := m.Carousel.Chrome()
	require.True(t, chrome.HasNext)
	cell := m.Renderer.Cell()

	h.SendClick(cell.Col(chrome.Next.X), cell.Row(chrome.Next.Y))
	assert.Equal(t, carousel.Animating, model(h).Carousel.State())

	commit(h, 1)
	assert.Equal(t, 1, model(h).Carousel.Focus())
}

func TestMouse_ClickPreviewAdvances(t *testing.T) {
	h := newHarness(t, 5)
	m := model(h)

	var next carousel.Slot[stories.Story]
	for _, s := range m.Carousel.Slots() {
		if s.Slot == window.Middle+1 {
			next = s
		}
	}
	x, y, w, hh := next.Bounds()
	cell := m.Renderer.Cell()

	h.SendClick(cell.Col(x+w/2), cell.Row(y+hh/2))
	assert.Equal(t, carousel.Animating, model(h).Carousel.State())
}

func TestMouse_Swipe(t *testing.T) {
	h := newHarness(t, 5)

	h.SendDrag(100, 80, 25)
	assert.Equal(t, carousel.Animating, model(h).Carousel.State(), "swipe left advances")
	commit(h, 1)
	require.Equal(t, 1, model(h).Carousel.Focus())

	h.SendDrag(80, 100, 25)
	commit(h, 2)
	assert.Equal(t, 0, model(h).Carousel.Focus(), "swipe right retreats")
}

func TestMouse_SmallDragIsClick(t *testing.T) {
	h := newHarness(t, 5)

	h.SendDrag(75, 76, 25)
	assert.NotNil(t, model(h).Detail)
}

func TestMouse_Wheel(t *testing.T) {
	h := newHarness(t, 5)

	h.SendMsg(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	commit(h, 1)
	assert.Equal(t, 1, model(h).Carousel.Focus())

	h.SendMsg(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	commit(h, 2)
	assert.Equal(t, 0, model(h).Carousel.Focus())
}

func TestFrameLoop_StopsWhenSettled(t *testing.T) {
	h := newHarness(t, 5)
	h.SendKey("l")
	require.True(t, model(h).frameLoop)

	var cmd tea.Cmd
	for range 200 {
		cmd = h.SendMsg(anim.FrameMsg(time.Now()))
		if cmd == nil {
			break
		}
	}
	assert.Nil(t, cmd, "springs settle")
	assert.False(t, model(h).frameLoop)
}

func TestStories_LoadError(t *testing.T) {
	h := newHarness(t, 3)

	h.SendMsg(StoriesLoadedMsg{Err: errors.New("boom")})
	m := model(h)
	assert.Contains(t, m.ErrorMsg, "Failed to load stories")
	assert.Equal(t, 3, m.Carousel.Len(), "previous stories stay")
	assert.True(t, h.ViewContains("boom"))
}

func TestStories_ReloadClampsFocus(t *testing.T) {
	h := newHarness(t, 5)
	h.SendKey("l")
	commit(h, 1)
	h.SendKey("l")
	commit(h, 2)
	require.Equal(t, 2, model(h).Carousel.Focus())

	h.SendMsg(StoriesLoadedMsg{Stories: sample(2)})
	m := model(h)
	assert.Equal(t, 1, m.Carousel.Focus())
	s, ok := focusedSlot(m)
	require.True(t, ok)
	assert.Equal(t, "s1", s.ItemID)
}

func TestStories_ReloadClosesStaleDetail(t *testing.T) {
	h := newHarness(t, 3)
	h.SendEnter()
	require.NotNil(t, model(h).Detail)

	replaced := sample(3)
	replaced[0].StoryID = "other"
	h.SendMsg(StoriesLoadedMsg{Stories: replaced})
	assert.Nil(t, model(h).Detail)
}

func TestStatusTimeout(t *testing.T) {
	h := newHarness(t, 3)
	m := model(h)
	require.NotEmpty(t, m.StatusMsg)

	h.SendMsg(StatusTimeoutMsg{Version: m.StatusVersion - 1})
	assert.NotEmpty(t, model(h).StatusMsg, "stale timeout ignored")

	h.SendMsg(StatusTimeoutMsg{Version: m.StatusVersion})
	assert.Empty(t, model(h).StatusMsg)
}

func TestWatchCmd(t *testing.T) {
	assert.Nil(t, WatchCmd(nil))

	path := filepath.Join(t.TempDir(), "stories.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stories: []\n"), 0o644))

	w, err := stories.Watch(path, 10*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	done := make(chan tea.Msg, 1)
	go func() { done <- testutil.ExecuteCmd(WatchCmd(w)) }()

	require.NoError(t, os.WriteFile(path, []byte("stories: []\n\n"), 0o644))
	select {
	case msg := <-done:
		assert.Equal(t, StoriesChangedMsg{}, msg)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	require.NoError(t, w.Close())
	assert.Nil(t, testutil.ExecuteCmd(WatchCmd(w)))
}
