package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "clean string", input: "hello", want: "hello"},
		{name: "control chars removed", input: "a\x1b[31mb\x07", want: "a[31mb"},
		{name: "tab kept", input: "a\tb", want: "a\tb"},
		{name: "nbsp replaced", input: "a\u00a0b", want: "a b"},
		{name: "invalid utf8 dropped", input: "a\xffb", want: "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{name: "no truncation needed", input: "hello", maxWidth: 10, want: "hello"},
		{name: "exact fit", input: "hello", maxWidth: 5, want: "hello"},
		{name: "truncation with ellipsis", input: "hello world", maxWidth: 8, want: "hello w…"},
		{name: "zero width", input: "hello", maxWidth: 0, want: ""},
		{name: "empty string", input: "", maxWidth: 10, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.maxWidth)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestTruncateAndPad(t *testing.T) {
	assert.Equal(t, "ab   ", TruncateAndPad("ab", 5))
	assert.Equal(t, "abcd…", TruncateAndPad("abcdefgh", 5))
	assert.Equal(t, 6, runewidth.StringWidth(TruncateAndPad("日本語テキスト", 6)))
}

func TestCenter(t *testing.T) {
	assert.Equal(t, "  ab  ", Center("ab", 6))
	assert.Equal(t, " ab  ", Center("ab", 5), "odd padding goes right")
	assert.Equal(t, "abc…", Center("abcdef", 4))

	styled := Center("\x1b[1mab\x1b[0m", 6)
	assert.Equal(t, "  ab  ", ansi.Strip(styled))
	assert.Contains(t, styled, "\x1b[1m", "styling survives")
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		maxLines int
		want     []string
	}{
		{
			name:     "fits on one line",
			input:    "hello world",
			width:    20,
			maxLines: 3,
			want:     []string{"hello world"},
		},
		{
			name:     "breaks between words",
			input:    "the quick brown fox",
			width:    10,
			maxLines: 3,
			want:     []string{"the quick", "brown fox"},
		},
		{
			name:     "collapses whitespace",
			input:    "  a   b  ",
			width:    10,
			maxLines: 2,
			want:     []string{"a b"},
		},
		{
			name:     "keeps paragraph breaks",
			input:    "one\ntwo",
			width:    10,
			maxLines: 3,
			want:     []string{"one", "two"},
		},
		{
			name:     "hard breaks long words",
			input:    "abcdefghij",
			width:    4,
			maxLines: 5,
			want:     []string{"abcd", "efgh", "ij"},
		},
		{
			name:     "ellipsis on overflow",
			input:    "one two three four",
			width:    5,
			maxLines: 2,
			want:     []string{"one", "two…"},
		},
		{
			name:     "ellipsis replaces last column when full",
			input:    "abcde fghij klmno",
			width:    5,
			maxLines: 2,
			want:     []string{"abcde", "fghi…"},
		},
		{
			name:     "no room",
			input:    "hello",
			width:    0,
			maxLines: 2,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.input, tt.width, tt.maxLines)
			assert.Equal(t, tt.want, got)
			for _, line := range got {
				assert.LessOrEqual(t, runewidth.StringWidth(line), tt.width)
			}
		})
	}
}

func TestWrap_WideRunes(t *testing.T) {
	got := Wrap("日本語", 1, 5)
	assert.Len(t, got, 3, "each wide rune gets its own line when nothing fits")
}

func TestRow(t *testing.T) {
	got := Row("left", "right", 20)
	assert.Len(t, got, 20)
	assert.True(t, strings.HasPrefix(got, "left"))
	assert.True(t, strings.HasSuffix(got, "right"))

	got = Row("left", "right", 5)
	assert.Equal(t, "left right", got, "minimum gap of 1")
}
