// internal/app/update.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/storytray/internal/anim"
	"github.com/llehouerou/storytray/internal/errmsg"
	"github.com/llehouerou/storytray/internal/schedule"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if sm, ok := msg.(StoryMessage); ok {
		return m.handleStoryMsg(sm)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case schedule.FireMsg:
		m.Sched.Fire(msg.ID)
		cmd := m.afterNavigation()
		return m, cmd

	case anim.FrameMsg:
		return m.handleFrame()

	case StatusTimeoutMsg:
		if msg.Version == m.StatusVersion {
			m.StatusMsg = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	return m, nil
}

// handleWindowSize converts the terminal size to pixels and re-lays out the tray.
func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Help.Width = msg.Width

	// Font size changes arrive as resizes too.
	if m.cellProbe != nil {
		if cell := m.cellProbe(); cell.Width > 0 && cell.Height > 0 && cell != m.Renderer.Cell() {
			m.logger.Debug("cell size changed", "width", cell.Width, "height", cell.Height)
			m.Renderer.SetCell(cell)
		}
	}

	w, h := m.Renderer.Cell().Pixels(m.Width, m.trayRows())
	m.Carousel.SetViewport(w, h)
	m.logger.Debug("viewport resized", "cols", m.Width, "rows", m.Height, "width", w, "height", h,
		"measured", m.Carousel.Measured())

	cmd := m.afterNavigation()
	return m, cmd
}

// handleFrame steps the springs and keeps the frame loop alive while they move.
func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	if m.Springs.Step() {
		return m, anim.FrameCmd(m.Springs.FPS())
	}
	m.frameLoop = false
	return m, nil
}

// afterNavigation collects the commands a carousel call may have queued:
// the deferred commit and, if slots started moving, the frame loop.
func (m *Model) afterNavigation() tea.Cmd {
	cmds := []tea.Cmd{m.Sched.Cmds()}
	if !m.frameLoop && m.Springs.Animating() {
		m.frameLoop = true
		cmds = append(cmds, anim.FrameCmd(m.Springs.FPS()))
	}
	return tea.Batch(cmds...)
}

// handleStoryMsg routes story source messages.
func (m Model) handleStoryMsg(msg StoryMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case StoriesLoadedMsg:
		m.Loading = false
		if msg.Err != nil {
			m.ErrorMsg = errmsg.Format(errmsg.OpStoriesLoad, msg.Err)
			m.logger.Error("load stories", "err", msg.Err)
			return m, nil
		}
		m.ErrorMsg = ""
		m.Carousel.SetItems(msg.Stories)
		m.syncDetail()
		m.logger.Info("stories loaded", "count", len(msg.Stories), "focus", m.Carousel.Focus())
		cmd := tea.Batch(m.setStatus(storyCount(len(msg.Stories))+" loaded"), m.afterNavigation())
		return m, cmd

	case StoriesChangedMsg:
		m.logger.Debug("story file changed", "path", m.Watcher.Path())
		return m, tea.Batch(LoadStoriesCmd(m.Source), WatchCmd(m.Watcher))

	case WatchErrorMsg:
		m.ErrorMsg = errmsg.Format(errmsg.OpStoriesWatch, msg.Err)
		m.logger.Warn("watch story file", "path", m.Watcher.Path(), "err", msg.Err)
		return m, WatchCmd(m.Watcher)
	}
	return m, nil
}

// syncDetail closes the detail popup if its story disappeared from the source.
func (m *Model) syncDetail() {
	if m.Detail == nil {
		return
	}
	if cur, ok := m.Carousel.Current(); !ok || cur.ID() != m.Detail.ID() {
		m.Detail = nil
	}
}

// setStatus shows a transient message and schedules its removal.
func (m *Model) setStatus(text string) tea.Cmd {
	m.StatusVersion++
	m.StatusMsg = text
	return StatusTimeoutCmd(m.StatusVersion)
}

// quit releases the carousel and watcher before exiting.
func (m *Model) quit() tea.Cmd {
	m.Carousel.Close()
	if m.Watcher != nil {
		if err := m.Watcher.Close(); err != nil {
			m.logger.Warn("close watcher", "err", err)
		}
	}
	m.logger.Info("quit")
	return tea.Quit
}

func (m Model) trayRows() int {
	return max(m.Height-StatusRows, 0)
}
