package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Prev   string
	Next   string
	Author string
	Posted string
	Story  string
}

var (
	nerdIcons = Icons{
		Prev:   "\uf137",  // nf-fa-chevron_circle_left
		Next:   "\uf138",  // nf-fa-chevron_circle_right
		Author: "\uf007 ", // nf-fa-user
		Posted: "\uf017 ", // nf-fa-clock_o
		Story:  "\uf03e ", // nf-fa-image
	}

	unicodeIcons = Icons{
		Prev:   "◀",
		Next:   "▶",
		Author: "👤 ",
		Posted: "🕒 ",
		Story:  "📖 ",
	}

	noneIcons = Icons{
		Prev:   "<",
		Next:   ">",
		Author: "@",
		Posted: "",
		Story:  "",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// Prev returns the previous-story button glyph.
func Prev() string {
	return current.Prev
}

// Next returns the next-story button glyph.
func Next() string {
	return current.Next
}

// FormatAuthor formats an author name with the appropriate icon.
func FormatAuthor(name string) string {
	if name == "" {
		return ""
	}
	return current.Author + name
}

// FormatPosted formats a posted-at label with the appropriate icon.
func FormatPosted(label string) string {
	if label == "" {
		return ""
	}
	return current.Posted + label
}

// FormatStory formats a story heading with the appropriate icon.
func FormatStory(title string) string {
	return current.Story + title
}
