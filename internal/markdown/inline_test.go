// Copyright Ignite Legal, 2026. All rights reserved.

package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatInline(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Span
	}{
		{
			name: "plain text",
			in:   "just words",
			want: []Span{{Text: "just words"}},
		},
		{
			name: "bold",
			in:   "a **b** c",
			want: []Span{{Text: "a "}, {Text: "b", Bold: true}, {Text: " c"}},
		},
		{
			name: "italic",
			in:   "a *b* c",
			want: []Span{{Text: "a "}, {Text: "b", Italic: true}, {Text: " c"}},
		},
		{
			name: "bold italic combined",
			in:   "***both***",
			want: []Span{{Text: "both", Bold: true, Italic: true}},
		},
		{
			name: "inline code",
			in:   "run `go test` now",
			want: []Span{{Text: "run "}, {Text: "go test", Code: true}, {Text: " now"}},
		},
		{
			name: "code content is never emphasis",
			in:   "`**not bold**`",
			want: []Span{{Text: "**not bold**", Code: true}},
		},
		{
			name: "link",
			in:   "see [Go](https://go.dev) docs",
			want: []Span{{Text: "see "}, {Text: "Go", URL: "https://go.dev"}, {Text: " docs"}},
		},
		{
			name: "mixed sentence",
			in:   "Some **bold** and *italic* text.",
			want: []Span{
				{Text: "Some "},
				{Text: "bold", Bold: true},
				{Text: " and "},
				{Text: "italic", Italic: true},
				{Text: " text."},
			},
		},
		{
			name: "italic nested in bold",
			in:   "**bold *both* bold**",
			want: []Span{
				{Text: "bold ", Bold: true},
				{Text: "both", Bold: true, Italic: true},
				{Text: " bold", Bold: true},
			},
		},
		{
			name: "unmatched asterisk stays literal",
			in:   "2 * 3 = 6",
			want: []Span{{Text: "2 * 3 = 6"}},
		},
		{
			name: "unmatched bold marker stays literal",
			in:   "**almost bold",
			want: []Span{{Text: "**almost bold"}},
		},
		{
			name: "unmatched backtick stays literal",
			in:   "a ` b",
			want: []Span{{Text: "a ` b"}},
		},
		{
			name: "unclosed link stays literal",
			in:   "[text](missing",
			want: []Span{{Text: "[text](missing"}},
		},
		{
			name: "bracket pair without url stays literal before a real link",
			in:   "[no url] see [Go](https://go.dev) docs",
			want: []Span{
				{Text: "[no url] see "},
				{Text: "Go", URL: "https://go.dev"},
				{Text: " docs"},
			},
		},
		{
			name: "bracket pair without url stays literal",
			in:   "an [aside] here",
			want: []Span{{Text: "an [aside] here"}},
		},
		{
			name: "empty link text stays literal",
			in:   "[](https://go.dev)",
			want: []Span{{Text: "[](https://go.dev)"}},
		},
		{
			name: "interior whitespace preserved",
			in:   "a  **b  c**  d",
			want: []Span{{Text: "a  "}, {Text: "b  c", Bold: true}, {Text: "  d"}},
		},
		{
			name: "empty input",
			in:   "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatInline(tt.in))
		})
	}
}

// Concatenated span text must equal the input with delimiter markers
// removed; nothing is dropped or reordered.
func TestFormatInline_ContentRoundTrip(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Some **bold** and *italic* text.", "Some bold and italic text."},
		{"***all three*** kinds", "all three kinds"},
		{"`code` and **bold**", "code and bold"},
		{"stray * stays", "stray * stays"},
		{"  leading and trailing  ", "  leading and trailing  "},
	}
	for _, tt := range tests {
		var b strings.Builder
		for _, s := range FormatInline(tt.in) {
			b.WriteString(s.Text)
		}
		assert.Equal(t, tt.want, b.String(), "input %q", tt.in)
	}
}

func TestFormatInline_Pure(t *testing.T) {
	in := "**a** *b* `c` [d](e)"
	first := FormatInline(in)
	second := FormatInline(in)
	assert.Equal(t, first, second)
}
