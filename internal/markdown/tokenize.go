// Copyright Ignite Legal, 2026. All rights reserved.

package markdown

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// md is the shared goldmark instance. GFM enables table parsing. The parser
// is stateless per call and safe to reuse.
var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Tokenize parses src and flattens the block structure into a Token stream.
// It never fails: goldmark places anything it cannot classify into paragraph
// text, and block kinds this package does not handle come back as
// KindUnknown tokens carrying their raw text.
func Tokenize(src []byte) []Token {
	root := md.Parser().Parse(text.NewReader(src))
	var tokens []Token
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		tokens = appendBlock(tokens, n, src)
	}
	return tokens
}

func appendBlock(tokens []Token, n ast.Node, src []byte) []Token {
	switch b := n.(type) {
	case *ast.Heading:
		level := b.Level
		if level < 1 {
			level = 1
		}
		if level > 6 {
			level = 6
		}
		return append(tokens, Token{Kind: KindHeading, Level: level, Text: blockText(b, src)})
	case *ast.Paragraph:
		return append(tokens, Token{Kind: KindParagraph, Text: blockText(b, src)})
	case *ast.List:
		return appendList(tokens, b, src, 0)
	case *ast.Blockquote:
		return appendQuote(tokens, b, src)
	case *ast.FencedCodeBlock:
		return append(tokens, Token{Kind: KindCodeBlock, Lines: codeLines(b, src), Lang: string(b.Language(src))})
	case *ast.CodeBlock:
		return append(tokens, Token{Kind: KindCodeBlock, Lines: codeLines(b, src)})
	case *ast.ThematicBreak:
		return append(tokens, Token{Kind: KindThematicBreak})
	case *east.Table:
		return append(tokens, tableToken(b, src))
	default:
		// HTML blocks and anything else goldmark knows but we do not.
		return append(tokens, Token{Kind: KindUnknown, Text: blockText(n, src)})
	}
}

// appendList flattens a (possibly nested) list into ListItem tokens carrying
// their nesting depth. A nested list inside an item continues at depth+1.
func appendList(tokens []Token, list *ast.List, src []byte, depth int) []Token {
	ordered := list.IsOrdered()
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		for child := item.FirstChild(); child != nil; child = child.NextSibling() {
			if sub, ok := child.(*ast.List); ok {
				tokens = appendList(tokens, sub, src, depth+1)
				continue
			}
			tokens = append(tokens, Token{
				Kind:    KindListItem,
				Ordered: ordered,
				Depth:   depth,
				Text:    blockText(child, src),
			})
		}
	}
	return tokens
}

// appendQuote emits one BlockQuote token per paragraph inside the quote.
// Nested quotes flatten into the same stream.
func appendQuote(tokens []Token, quote *ast.Blockquote, src []byte) []Token {
	for child := quote.FirstChild(); child != nil; child = child.NextSibling() {
		if nested, ok := child.(*ast.Blockquote); ok {
			tokens = appendQuote(tokens, nested, src)
			continue
		}
		tokens = append(tokens, Token{Kind: KindBlockQuote, Text: blockText(child, src)})
	}
	return tokens
}

func tableToken(tbl *east.Table, src []byte) Token {
	tok := Token{Kind: KindTable}
	for child := tbl.FirstChild(); child != nil; child = child.NextSibling() {
		switch r := child.(type) {
		case *east.TableHeader:
			if len(tok.Rows) == 0 {
				tok.HeaderRow = true
			}
			tok.Rows = append(tok.Rows, rowCells(r, src))
		case *east.TableRow:
			tok.Rows = append(tok.Rows, rowCells(r, src))
		}
	}
	return tok
}

// rowCells collects cell text from a header or body row. Cells hang directly
// off the row node.
func rowCells(row ast.Node, src []byte) []string {
	var cells []string
	for c := row.FirstChild(); c != nil; c = c.NextSibling() {
		if cell, ok := c.(*east.TableCell); ok {
			cells = append(cells, inlineMarkdown(cell, src))
		}
	}
	return cells
}

// blockText returns the raw inline text of a block with emphasis markers
// intact. Soft-wrapped lines join with a single space. Blocks without source
// segments (table cells) fall back to AST reconstruction.
func blockText(n ast.Node, src []byte) string {
	if b, ok := n.(interface{ Lines() *text.Segments }); ok {
		lines := b.Lines()
		if lines != nil && lines.Len() > 0 {
			parts := make([]string, 0, lines.Len())
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				parts = append(parts, strings.TrimRight(string(seg.Value(src)), " \t\r\n"))
			}
			return strings.Join(parts, " ")
		}
	}
	return inlineMarkdown(n, src)
}

// codeLines returns code block content one line at a time, verbatim except
// for the trailing newline of each line.
func codeLines(n ast.Node, src []byte) []string {
	b, ok := n.(interface{ Lines() *text.Segments })
	if !ok {
		return nil
	}
	lines := b.Lines()
	out := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		out = append(out, strings.TrimRight(string(seg.Value(src)), "\r\n"))
	}
	return out
}

// inlineMarkdown reconstructs the raw markdown of parsed inline children.
// Table cells carry no block-level source segments, so the emphasis markers
// are rebuilt from the AST node kinds.
func inlineMarkdown(n ast.Node, src []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		case *ast.Emphasis:
			marker := strings.Repeat("*", t.Level)
			b.WriteString(marker)
			b.WriteString(inlineMarkdown(t, src))
			b.WriteString(marker)
		case *ast.CodeSpan:
			b.WriteByte('`')
			b.WriteString(inlineMarkdown(t, src))
			b.WriteByte('`')
		case *ast.Link:
			fmt.Fprintf(&b, "[%s](%s)", inlineMarkdown(t, src), t.Destination)
		case *ast.Image:
			fmt.Fprintf(&b, "[%s](%s)", inlineMarkdown(t, src), t.Destination)
		case *ast.AutoLink:
			b.Write(t.URL(src))
		default:
			b.WriteString(inlineMarkdown(c, src))
		}
	}
	return b.String()
}
