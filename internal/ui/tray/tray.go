// Package tray paints the story carousel into terminal cells.
package tray

import (
	"slices"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/storytray/internal/carousel"
	"github.com/llehouerou/storytray/internal/icons"
	"github.com/llehouerou/storytray/internal/stories"
	"github.com/llehouerou/storytray/internal/ui/overlay"
	"github.com/llehouerou/storytray/internal/ui/render"
	"github.com/llehouerou/storytray/internal/ui/styles"
	"github.com/llehouerou/storytray/internal/ui/termsize"
	"github.com/llehouerou/storytray/internal/window"
)

// Target identifies what a cell belongs to.
type Target int

const (
	TargetNone Target = iota
	TargetCard
	TargetPrev
	TargetNext
)

// Hit is the result of a hit test. Slot is set for TargetCard.
type Hit struct {
	Target Target
	Slot   int
}

type region struct {
	hit        Hit
	col, row   int
	cols, rows int
}

func (r region) contains(col, row int) bool {
	return col >= r.col && col < r.col+r.cols && row >= r.row && row < r.row+r.rows
}

// Frame is one rendered tray.
type Frame struct {
	View    string
	regions []region // paint order
}

// HitTest returns the top-most target under the cell at col, row.
func (f Frame) HitTest(col, row int) Hit {
	for i := len(f.regions) - 1; i >= 0; i-- {
		if f.regions[i].contains(col, row) {
			return f.regions[i].hit
		}
	}
	return Hit{Target: TargetNone}
}

// Renderer maps pixel geometry onto terminal cells.
type Renderer struct {
	cell termsize.Cell
	now  func() time.Time
}

// New creates a renderer for the given cell size.
func New(cell termsize.Cell) *Renderer {
	return &Renderer{cell: cell, now: time.Now}
}

// Cell returns the cell size used for mapping.
func (r *Renderer) Cell() termsize.Cell {
	return r.cell
}

// SetCell changes the cell size.
func (r *Renderer) SetCell(cell termsize.Cell) {
	r.cell = cell
}

// Render paints slots and chrome onto a cols x rows canvas. Previews are
// painted outermost first and the focused card last, so it stays on top.
func (r *Renderer) Render(slots []carousel.Slot[stories.Story], chrome carousel.Chrome, cols, rows int) Frame {
	canvas := overlay.Blank(cols, rows)
	if canvas == "" {
		return Frame{}
	}

	ordered := slices.Clone(slots)
	slices.SortStableFunc(ordered, func(a, b carousel.Slot[stories.Story]) int {
		return distance(b.Slot) - distance(a.Slot)
	})

	var regions []region
	for _, s := range ordered {
		x, y, w, h := s.Bounds()
		reg := region{
			hit:  Hit{Target: TargetCard, Slot: s.Slot},
			col:  r.cell.Col(x),
			row:  r.cell.Row(y),
			cols: r.cell.Cols(w),
			rows: r.cell.Rows(h),
		}
		if reg.cols <= 0 || reg.rows <= 0 {
			continue
		}
		canvas = overlay.Place(canvas, r.card(s, reg.cols, reg.rows), reg.col, reg.row, cols)
		regions = append(regions, reg)
	}

	if chrome.HasPrev {
		reg := r.button(chrome.Prev, TargetPrev)
		canvas = overlay.Place(canvas, buttonView(icons.Prev(), reg), reg.col, reg.row, cols)
		regions = append(regions, reg)
	}
	if chrome.HasNext {
		reg := r.button(chrome.Next, TargetNext)
		canvas = overlay.Place(canvas, buttonView(icons.Next(), reg), reg.col, reg.row, cols)
		regions = append(regions, reg)
	}

	return Frame{View: canvas, regions: regions}
}

func distance(slot int) int {
	d := slot - window.Middle
	if d < 0 {
		return -d
	}
	return d
}

func (r *Renderer) button(b carousel.Button, target Target) region {
	return region{
		hit:  Hit{Target: target},
		col:  r.cell.Col(b.X),
		row:  r.cell.Row(b.Y),
		cols: max(r.cell.Cols(b.Size), 1),
		rows: max(r.cell.Rows(b.Size), 1),
	}
}

func buttonView(glyph string, reg region) string {
	s := styles.T().S().Button
	return s.Width(reg.cols).
		Height(reg.rows).
		Align(lipgloss.Center, lipgloss.Center).
		Render(ansi.Truncate(glyph, reg.cols, ""))
}

// card renders one story card exactly cols x rows cells in size.
func (r *Renderer) card(s carousel.Slot[stories.Story], cols, rows int) string {
	t := styles.T()
	p := t.Palette(s.Variant)

	// Too small for a border: a solid swatch in the variant color.
	if cols < 3 || rows < 3 {
		return lipgloss.NewStyle().
			Width(cols).
			Height(rows).
			Background(styles.Blend(p.From, t.BgBase, 0.5)).
			Render("")
	}

	innerW, innerH := cols-2, rows-2
	lines := r.cardLines(s, innerW, innerH)

	return styles.CardStyle(s.Variant, s.Focused(), s.Transform.Scale).
		Width(innerW).
		Height(innerH).
		MaxHeight(rows).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (r *Renderer) cardLines(s carousel.Slot[stories.Story], width, height int) []string {
	t := styles.T()
	p := t.Palette(s.Variant)
	story := s.Item

	title := icons.FormatAuthor(story.Author)
	if title == "" {
		title = icons.FormatStory(story.ID())
	}
	title = render.Truncate(title, width)
	if s.Focused() {
		title = styles.ApplyBoldGradient(title, p.From, p.To)
	} else {
		title = styles.ApplyGradient(title, p.From, p.To)
	}
	lines := []string{title}

	body := t.S().Base
	if s.Focused() {
		if !story.PostedAt.IsZero() {
			posted := humanize.RelTime(story.PostedAt, r.now(), "ago", "from now")
			lines = append(lines, t.S().Muted.Render(render.Truncate(icons.FormatPosted(posted), width)))
		}
		lines = append(lines, "")
	} else {
		body = t.S().Muted
	}

	for _, line := range render.Wrap(story.Content, width, height-len(lines)) {
		lines = append(lines, body.Render(line))
	}

	if len(lines) > height {
		lines = lines[:height]
	}
	return lines
}
