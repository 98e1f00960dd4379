package styles

import "github.com/charmbracelet/lipgloss"

// Palette is the accent pair used for a story variant.
type Palette struct {
	From lipgloss.Color // gradient start, border of the focused card
	To   lipgloss.Color // gradient end
}

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Purple - focused card, active states
	Secondary lipgloss.Color // Gold/orange - secondary accent

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Primary text (bright)
	FgMuted  lipgloss.Color // Secondary text (dimmed)
	FgSubtle lipgloss.Color // Tertiary text (very dim)

	// Backgrounds
	BgBase lipgloss.Color // Tray background
	BgCard lipgloss.Color // Card body

	// Borders
	Border      lipgloss.Color // Preview card borders
	BorderFocus lipgloss.Color // Focused card border

	// Status colors
	Error   lipgloss.Color
	Warning lipgloss.Color

	// Variants maps a story variant to its accent pair.
	Variants map[string]Palette

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style // Default text
	Muted   lipgloss.Style // Dimmed text
	Subtle  lipgloss.Style // Very dim text
	Title   lipgloss.Style // Bold, bright
	Button  lipgloss.Style // Prev/next buttons
	Status  lipgloss.Style // Bottom status line
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#e0e0e0"),
	FgMuted:  lipgloss.Color("#9a9a9a"),
	FgSubtle: lipgloss.Color("#5c5c5c"),

	BgBase: lipgloss.Color("#0f172a"),
	BgCard: lipgloss.Color("#1e1e2e"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#f5f5f5"),

	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),

	Variants: map[string]Palette{
		"default": {From: "#a78bfa", To: "#60a5fa"},
		"purple":  {From: "#c084fc", To: "#f472b6"},
		"gold":    {From: "#f1a208", To: "#f97316"},
		"green":   {From: "#42b883", To: "#22d3ee"},
		"red":     {From: "#ff5555", To: "#f97316"},
		"blue":    {From: "#60a5fa", To: "#818cf8"},
	},
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// Palette returns the accent pair for a variant, falling back to "default".
func (t *Theme) Palette(variant string) Palette {
	if p, ok := t.Variants[variant]; ok {
		return p
	}
	return t.Variants["default"]
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Button: lipgloss.NewStyle().
			Foreground(t.FgBase).
			Bold(true),
		Status:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
