// internal/app/view.go
package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/llehouerou/storytray/internal/icons"
	"github.com/llehouerou/storytray/internal/keymap"
	"github.com/llehouerou/storytray/internal/ui/popup"
	"github.com/llehouerou/storytray/internal/ui/render"
	"github.com/llehouerou/storytray/internal/ui/styles"
	"github.com/llehouerou/storytray/internal/ui/tray"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	view := m.renderTray() + "\n" + m.renderStatus()

	switch {
	case m.ShowHelp:
		view = m.renderHelp().Over(view, m.Width)
	case m.Detail != nil:
		view = m.renderDetail().Over(view, m.Width)
	}
	return view
}

// frame renders the carousel into cells. Mouse handling uses the same frame
// for hit testing, so what is clicked is what was drawn.
func (m Model) frame() tray.Frame {
	return m.Renderer.Render(m.Carousel.Slots(), m.Carousel.Chrome(), m.Width, m.trayRows())
}

func (m Model) renderTray() string {
	rows := m.trayRows()
	var text string
	switch {
	case m.Loading:
		text = "Loading stories…"
	case !m.Carousel.Measured():
		text = "Window too small"
	case m.Carousel.Len() == 0:
		text = "No stories"
	default:
		return m.frame().View
	}
	return lipgloss.Place(m.Width, rows, lipgloss.Center, lipgloss.Center,
		styles.T().S().Muted.Render(text))
}

func (m Model) renderStatus() string {
	s := styles.T().S()

	var left string
	if n := m.Carousel.Len(); n > 0 {
		left = fmt.Sprintf("%d/%d", m.Carousel.Focus()+1, n)
	}
	switch {
	case m.ErrorMsg != "":
		left += "  " + s.Error.Render(m.ErrorMsg)
	case m.StatusMsg != "":
		left += "  " + s.Status.Render(m.StatusMsg)
	}

	right := m.Help.ShortHelpView(keymap.Help("carousel"))
	if lipgloss.Width(left)+lipgloss.Width(right)+1 > m.Width {
		right = ""
	}
	return render.Row(s.Status.Render(left), right, m.Width)
}

func (m Model) renderHelp() popup.Box {
	h := m.Help
	h.ShowAll = true
	content := h.FullHelpView([][]key.Binding{
		keymap.Help("carousel"),
		keymap.Help("global"),
	})
	return popup.Bordered(content, m.Width, m.Height)
}

func (m Model) renderDetail() popup.Box {
	story := m.Detail
	p := styles.T().Palette(story.Variant())

	d := popup.New()
	d.Style.BorderColor = p.From
	d.Title = icons.FormatAuthor(story.Author)
	if d.Title == "" {
		d.Title = icons.FormatStory(story.ID())
	}
	d.Width = max(min(m.Width*2/3, 72), 20)

	textWidth := d.Width - 2
	lines := render.Wrap(story.Content, textWidth, max(m.Height-10, 1))
	if !story.PostedAt.IsZero() {
		posted := icons.FormatPosted(humanize.Time(story.PostedAt))
		lines = append(lines, "", styles.T().S().Muted.Render(posted))
	}
	d.Content = strings.Join(lines, "\n")
	d.Footer = strings.Join(m.overlayKeys.KeysFor(keymap.ActionClose), "/") + " close"

	return d.Render(m.Width, m.Height)
}

// storyCount formats a story count for status messages.
func storyCount(n int) string {
	return english.Plural(n, "story", "stories")
}
