// Package popup renders bordered dialogs centered over the tray.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/storytray/internal/ui/overlay"
	"github.com/llehouerou/storytray/internal/ui/render"
	"github.com/llehouerou/storytray/internal/ui/styles"
)

// Style configures the popup appearance.
type Style struct {
	Border      lipgloss.Border
	BorderColor lipgloss.Color
	TitleStyle  lipgloss.Style
	FooterStyle lipgloss.Style
}

// DefaultStyle returns the default popup style.
func DefaultStyle() Style {
	t := styles.T()
	return Style{
		Border:      lipgloss.RoundedBorder(),
		BorderColor: t.Border,
		TitleStyle:  t.S().Title,
		FooterStyle: t.S().Subtle,
	}
}

// Box is a rendered popup and the cell where its top-left corner sits.
type Box struct {
	View string
	Col  int
	Row  int
}

// Width returns the widest line of the box in cells.
func (b Box) Width() int {
	return maxLineWidth(b.View)
}

// Height returns the number of lines in the box.
func (b Box) Height() int {
	if b.View == "" {
		return 0
	}
	return strings.Count(b.View, "\n") + 1
}

// Over draws the box on top of base. The box is opaque, so the tray does
// not show through its padding.
func (b Box) Over(base string, width int) string {
	if b.View == "" {
		return base
	}
	return overlay.Place(base, b.View, b.Col, b.Row, width)
}

// Dialog is a popup with a centered title, left-aligned content and a
// centered footer.
type Dialog struct {
	Title   string
	Content string
	Footer  string
	Width   int // inner width including padding, 0 fits the content
	Style   Style
}

// New creates a new dialog with default style.
func New() *Dialog {
	return &Dialog{
		Style: DefaultStyle(),
	}
}

// Render lays the dialog out for a termWidth x termHeight screen.
func (p *Dialog) Render(termWidth, termHeight int) Box {
	innerWidth := p.Width
	if innerWidth == 0 {
		innerWidth = max(maxLineWidth(p.Content), lipgloss.Width(p.Title), lipgloss.Width(p.Footer)) + 2
	}
	innerWidth = max(min(innerWidth, termWidth-4), 1)

	// lipgloss counts padding in Width
	textWidth := max(innerWidth-2, 1)

	var lines []string
	if p.Title != "" {
		title := p.Style.TitleStyle.Render(render.Truncate(p.Title, textWidth))
		lines = append(lines, render.Center(title, textWidth), "")
	}
	for line := range strings.SplitSeq(p.Content, "\n") {
		lines = append(lines, render.Pad(render.Truncate(line, textWidth), textWidth))
	}
	if p.Footer != "" {
		footer := p.Style.FooterStyle.Render(render.Truncate(p.Footer, textWidth))
		lines = append(lines, "", render.Center(footer, textWidth))
	}

	// Border rows and the blank rows around the title and footer still
	// have to fit on screen.
	if maxLines := termHeight - 2; maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}

	view := lipgloss.NewStyle().
		Border(p.Style.Border).
		BorderForeground(p.Style.BorderColor).
		Padding(0, 1).
		Width(innerWidth).
		Render(strings.Join(lines, "\n"))

	return Centered(view, termWidth, termHeight)
}

// Centered positions pre-rendered content in the middle of the screen.
// Content larger than the screen is anchored at the top-left corner.
func Centered(view string, termWidth, termHeight int) Box {
	b := Box{View: view}
	b.Col = max((termWidth-b.Width())/2, 0)
	b.Row = max((termHeight-b.Height())/2, 0)
	return b
}

// Bordered wraps content in a rounded, padded border sized to fit it.
func Bordered(content string, termWidth, termHeight int) Box {
	width, height := fitDimensions(content, termWidth, termHeight)

	view := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border).
		Width(width-2). // Account for border
		Height(height-2).
		Padding(1, 2).
		Render(content)

	return Centered(view, termWidth, termHeight)
}

func fitDimensions(content string, termWidth, termHeight int) (width, height int) {
	width = min(maxLineWidth(content)+6, termWidth-4) // padding + border
	height = min(strings.Count(content, "\n")+5, termHeight-4)
	return max(width, 6), max(height, 4)
}

func maxLineWidth(s string) int {
	maxW := 0
	for line := range strings.SplitSeq(s, "\n") {
		maxW = max(maxW, lipgloss.Width(line))
	}
	return maxW
}
