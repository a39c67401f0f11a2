// Copyright Ignite Legal, 2026. All rights reserved.

// Package markdown tokenizes Markdown source into a flat stream of block
// tokens and splits inline markup into styled spans. Block structure comes
// from goldmark; inline emphasis is parsed here so callers get raw text
// broken into runs instead of HTML.
package markdown

// Kind identifies the block-level construct a Token represents.
type Kind int

const (
	KindHeading Kind = iota
	KindParagraph
	KindListItem
	KindBlockQuote
	KindCodeBlock
	KindThematicBreak
	KindTable
	KindLinkReference
	KindUnknown
)

// String returns the lowercase name of the kind, for log messages.
func (k Kind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindParagraph:
		return "paragraph"
	case KindListItem:
		return "list item"
	case KindBlockQuote:
		return "block quote"
	case KindCodeBlock:
		return "code block"
	case KindThematicBreak:
		return "thematic break"
	case KindTable:
		return "table"
	case KindLinkReference:
		return "link reference"
	}
	return "unknown"
}

// Token is one parsed structural unit of the source document. Tokenize
// produces tokens in document order; order is significant.
type Token struct {
	Kind Kind

	// Text is the raw inline text of the block with emphasis markers
	// intact, ready for FormatInline. Empty for code blocks, tables and
	// thematic breaks.
	Text string

	// Level is the heading level (1-6) for KindHeading.
	Level int

	// Ordered and Depth describe list items. Depth is zero-based and
	// reports how many list levels enclose the item.
	Ordered bool
	Depth   int

	// Lines holds code block content, one entry per source line, verbatim.
	// Lang is the fence info string, if any.
	Lines []string
	Lang  string

	// Rows holds table cell text in row-major order. HeaderRow marks the
	// first row as a header row.
	Rows      [][]string
	HeaderRow bool
}
