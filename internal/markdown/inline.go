// Copyright Ignite Legal, 2026. All rights reserved.

package markdown

import "strings"

// Span is a contiguous run of text tagged with inline formatting flags.
// A non-empty URL marks the span as a link; Text then holds the display
// text.
type Span struct {
	Text   string
	Bold   bool
	Italic bool
	Code   bool
	URL    string
}

// FormatInline splits raw into an ordered sequence of styled spans. It
// recognizes, left to right, inline code (backticks, highest priority, the
// content stays literal), ***bold italic***, **bold**, *italic* and
// [text](url) links. Delimiters must be matched to form a span; an
// unmatched or empty delimiter pair stays literal text. The concatenated
// span text equals raw with the recognized delimiters removed; whitespace
// is preserved as written.
//
// FormatInline is pure: no state survives a call.
func FormatInline(raw string) []Span {
	return scanInline(raw, false, false)
}

// scanInline walks s emitting spans with the inherited bold/italic flags.
// Bold and italic interiors are scanned recursively for the other emphasis
// kind; code interiors are never rescanned.
func scanInline(s string, bold, italic bool) []Span {
	var spans []Span
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			spans = append(spans, Span{Text: lit.String(), Bold: bold, Italic: italic})
			lit.Reset()
		}
	}

	i := 0
	for i < len(s) {
		switch {
		case s[i] == '`':
			end := strings.IndexByte(s[i+1:], '`')
			if end <= 0 {
				lit.WriteByte('`')
				i++
				continue
			}
			flush()
			spans = append(spans, Span{Text: s[i+1 : i+1+end], Code: true})
			i += end + 2

		case strings.HasPrefix(s[i:], "***") && hasClosing(s[i+3:], "***"):
			end := strings.Index(s[i+3:], "***")
			flush()
			spans = append(spans, scanInline(s[i+3:i+3+end], true, true)...)
			i += end + 6

		case strings.HasPrefix(s[i:], "**") && hasClosing(s[i+2:], "**"):
			end := strings.Index(s[i+2:], "**")
			flush()
			spans = append(spans, scanInline(s[i+2:i+2+end], true, italic)...)
			i += end + 4

		case s[i] == '*' && hasClosing(s[i+1:], "*"):
			end := strings.Index(s[i+1:], "*")
			flush()
			spans = append(spans, scanInline(s[i+1:i+1+end], bold, true)...)
			i += end + 2

		case s[i] == '[':
			text, url, width := matchLink(s[i:])
			if width == 0 {
				lit.WriteByte('[')
				i++
				continue
			}
			flush()
			spans = append(spans, Span{Text: text, URL: url, Bold: bold, Italic: italic})
			i += width

		default:
			lit.WriteByte(s[i])
			i++
		}
	}
	flush()
	return spans
}

// hasClosing reports whether rest contains delim with at least one
// character of content before it.
func hasClosing(rest, delim string) bool {
	return strings.Index(rest, delim) > 0
}

// matchLink matches [text](url) at the start of s. The first ] closes the
// display text and must be followed immediately by (; a bracket pair that
// is not part of a link stays literal instead of swallowing text up to a
// later link. It returns the display text, the URL, and the total width
// consumed, or width 0 when s does not open a well-formed link.
func matchLink(s string) (text, url string, width int) {
	close := strings.IndexByte(s, ']')
	if close <= 1 || close+1 >= len(s) || s[close+1] != '(' {
		return "", "", 0
	}
	end := strings.IndexByte(s[close+2:], ')')
	if end < 0 {
		return "", "", 0
	}
	return s[1:close], s[close+2 : close+2+end], close + 2 + end + 1
}
