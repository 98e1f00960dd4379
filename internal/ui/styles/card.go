package styles

import "github.com/charmbracelet/lipgloss"

// CardStyle returns the frame style of a story card. The focused card gets
// a bright rounded border; previews get a dimmed border blended toward the
// background by how far they are scaled down.
func CardStyle(variant string, focused bool, scale float64) lipgloss.Style {
	t := T()
	p := t.Palette(variant)

	style := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		Background(t.BgCard).
		Foreground(t.FgBase)

	if focused {
		return style.BorderForeground(p.From)
	}
	return style.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Blend(p.From, t.BgBase, 1-clampUnit(scale)))
}

func clampUnit(f float64) float64 {
	return max(0, min(1, f))
}
