package keymap

import "github.com/charmbracelet/bubbles/key"

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "carousel", "detail"
}

// All contains all key bindings.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},
	{ActionReload, []string{"r"}, "Reload stories", "global"},

	// Carousel
	{ActionAdvance, []string{"l", "right", " "}, "Next story", "carousel"},
	{ActionRetreat, []string{"h", "left"}, "Previous story", "carousel"},
	{ActionOpen, []string{"enter"}, "Open story", "carousel"},

	// Detail
	{ActionClose, []string{"esc", "enter"}, "Close", "detail"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Help returns the bindings of the given contexts as bubbles key bindings,
// for rendering with the help component.
func Help(contexts ...string) []key.Binding {
	var result []key.Binding
	for _, ctx := range contexts {
		for _, b := range ByContext(ctx) {
			result = append(result, b.KeyBinding())
		}
	}
	return result
}

// KeyBinding converts b into a bubbles key binding.
func (b Binding) KeyBinding() key.Binding {
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(helpKey(b.Keys), b.Description),
	)
}

func helpKey(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	k := keys[0]
	switch k {
	case " ":
		return "space"
	case "left":
		return "←"
	case "right":
		return "→"
	}
	return k
}
