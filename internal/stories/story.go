// Package stories holds the story records shown in the carousel and the
// sources they are loaded from.
package stories

import (
	"slices"
	"strings"
	"time"
)

// Variants understood by the renderer. Anything else is shown as VariantDefault.
const (
	VariantDefault = "default"
	VariantPurple  = "purple"
	VariantGold    = "gold"
	VariantGreen   = "green"
	VariantRed     = "red"
	VariantBlue    = "blue"
)

// Variants lists every known variant.
var Variants = []string{
	VariantDefault,
	VariantPurple,
	VariantGold,
	VariantGreen,
	VariantRed,
	VariantBlue,
}

// Story is a single story card.
type Story struct {
	StoryID  string
	Author   string
	Content  string
	Kind     string
	PostedAt time.Time
}

// ID implements carousel.Item.
func (s Story) ID() string {
	return s.StoryID
}

// Variant implements carousel.Item.
func (s Story) Variant() string {
	return s.Kind
}

// NormalizeVariant lowercases v and maps unknown variants to VariantDefault.
func NormalizeVariant(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if slices.Contains(Variants, v) {
		return v
	}
	return VariantDefault
}

// Source loads the ordered story sequence.
type Source interface {
	Load() ([]Story, error)
}
