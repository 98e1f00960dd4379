// internal/app/update_input.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/storytray/internal/carousel"
	"github.com/llehouerou/storytray/internal/keymap"
	"github.com/llehouerou/storytray/internal/ui/tray"
)

// SwipeThreshold is the horizontal drag distance, in cells, that counts as
// a swipe instead of a click.
const SwipeThreshold = 3

// handleKeyMsg resolves a key press to an action.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.ShowHelp || m.Detail != nil {
		switch m.overlayKeys.Resolve(key) {
		case keymap.ActionClose:
			m.ShowHelp = false
			m.Detail = nil
		case keymap.ActionHelp:
			m.ShowHelp = !m.ShowHelp
		case keymap.ActionQuit:
			return m, m.quit()
		}
		return m, nil
	}

	switch m.carouselKeys.Resolve(key) {
	case keymap.ActionQuit:
		return m, m.quit()
	case keymap.ActionHelp:
		m.ShowHelp = true
		return m, nil
	case keymap.ActionReload:
		m.logger.Debug("reload requested")
		return m, LoadStoriesCmd(m.Source)
	case keymap.ActionAdvance:
		m.Carousel.Advance()
		cmd := m.afterNavigation()
		return m, cmd
	case keymap.ActionRetreat:
		m.Carousel.Retreat()
		cmd := m.afterNavigation()
		return m, cmd
	case keymap.ActionOpen:
		m.openDetail()
		return m, nil
	}
	return m, nil
}

// handleMouseMsg handles clicks, wheel scrolling and horizontal swipes.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.ShowHelp || m.Detail != nil {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.ShowHelp = false
			m.Detail = nil
		}
		return m, nil
	}

	switch {
	case msg.Button == tea.MouseButtonWheelDown || msg.Button == tea.MouseButtonWheelRight:
		m.Carousel.Advance()
		cmd := m.afterNavigation()
		return m, cmd

	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelLeft:
		m.Carousel.Retreat()
		cmd := m.afterNavigation()
		return m, cmd

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.drag = dragState{active: true, col: msg.X, row: msg.Y}
		return m, nil

	case msg.Action == tea.MouseActionRelease && m.drag.active:
		start := m.drag
		m.drag = dragState{}
		dx := msg.X - start.col
		switch {
		case dx <= -SwipeThreshold:
			m.Carousel.Advance()
		case dx >= SwipeThreshold:
			m.Carousel.Retreat()
		default:
			m.click(start.col, start.row)
		}
		cmd := m.afterNavigation()
		return m, cmd
	}
	return m, nil
}

// click hit-tests the tray at a cell and activates what is there.
func (m *Model) click(col, row int) {
	if row >= m.trayRows() {
		return
	}
	hit := m.frame().HitTest(col, row)
	switch hit.Target {
	case tray.TargetPrev:
		m.Carousel.Retreat()
	case tray.TargetNext:
		m.Carousel.Advance()
	case tray.TargetCard:
		if m.Carousel.Activate(hit.Slot) == carousel.ActivationContent {
			m.openDetail()
		}
	case tray.TargetNone:
	}
}

// openDetail shows the focused story in the detail popup.
func (m *Model) openDetail() {
	if m.Carousel.State() != carousel.Idle {
		return
	}
	if cur, ok := m.Carousel.Current(); ok {
		m.Detail = &cur
		m.logger.Debug("story opened", "id", cur.ID())
	}
}
