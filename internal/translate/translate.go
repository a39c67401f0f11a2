// Copyright Ignite Legal, 2026. All rights reserved.

package translate

import (
	"fmt"

	"github.com/Ignitelegal/convertMDtoWord/internal/docx"
	"github.com/Ignitelegal/convertMDtoWord/internal/markdown"
)

// Stats counts what Translate produced. Degraded is the number of tokens
// that fell back to plain paragraphs because their kind is unsupported.
type Stats struct {
	Blocks   int
	Degraded int
}

// TranslationError reports a token that could not be turned into a valid
// document element. Index is the position of the token in the input stream.
type TranslationError struct {
	Index int
	Err   error
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("translating token %d: %v", e.Index, e.Err)
}

func (e *TranslationError) Unwrap() error { return e.Err }

// listState is the one piece of cross-token state: it identifies the
// current contiguous list run. Any non-list token closes the run, so two
// separate lists never share numbering continuity.
type listState struct {
	run    int
	active bool
}

// Translate converts tokens, in order, into document elements. Every token
// yields at least one element; unsupported kinds degrade to plain
// paragraphs and are counted rather than dropped. Translate is pure apart
// from the explicit list accumulator and safe to call concurrently with
// distinct inputs.
func Translate(tokens []markdown.Token, res *Resolver) ([]docx.Element, Stats, error) {
	var (
		els   []docx.Element
		stats Stats
		list  listState
	)
	// The name the catalog actually resolved the fallback role to; quote
	// and code fallback formatting triggers when a role degrades to it.
	normal := res.Resolve(RoleNormal)

	for i, tok := range tokens {
		if tok.Kind != markdown.KindListItem {
			list.active = false
		}

		switch tok.Kind {
		case markdown.KindHeading:
			els = append(els, docx.Paragraph{
				Style: res.Resolve(HeadingRole(tok.Level)),
				Spans: inlineSpans(tok.Text),
			})

		case markdown.KindParagraph:
			els = append(els, docx.Paragraph{
				Style: res.Resolve(RoleNormal),
				Spans: inlineSpans(tok.Text),
			})

		case markdown.KindListItem:
			if !list.active {
				list.run++
				list.active = true
			}
			if tok.Depth < 0 || tok.Depth > docx.MaxListLevel {
				return nil, stats, &TranslationError{
					Index: i,
					Err:   fmt.Errorf("list depth %d outside numbering range 0-%d", tok.Depth, docx.MaxListLevel),
				}
			}
			role := RoleListBullet
			if tok.Ordered {
				role = RoleListNumber
			}
			els = append(els, docx.Paragraph{
				Style: res.Resolve(role),
				Spans: inlineSpans(tok.Text),
				List:  &docx.ListInfo{Level: tok.Depth, Ordered: tok.Ordered, Run: list.run},
			})

		case markdown.KindBlockQuote:
			style := res.Resolve(RoleQuote)
			els = append(els, docx.Paragraph{
				Style:  style,
				Spans:  inlineSpans(tok.Text),
				Indent: style == normal,
			})

		case markdown.KindCodeBlock:
			// Code content is literal: one monospaced paragraph per
			// source line, never inline-formatted. An empty block still
			// yields one empty paragraph.
			style := res.Resolve(RoleCode)
			fallback := style == normal
			lines := tok.Lines
			if len(lines) == 0 {
				lines = []string{""}
			}
			for _, line := range lines {
				els = append(els, docx.Paragraph{
					Style:  style,
					Spans:  []docx.Span{{Text: line, Code: fallback}},
					Shaded: fallback,
				})
			}

		case markdown.KindThematicBreak:
			els = append(els, docx.Rule{})

		case markdown.KindTable:
			els = append(els, tableElement(tok, res))

		default:
			// KindUnknown, KindLinkReference: degrade to a plain
			// paragraph, never drop content.
			stats.Degraded++
			els = append(els, docx.Paragraph{
				Style: res.Resolve(RoleNormal),
				Spans: inlineSpans(tok.Text),
			})
		}
		stats.Blocks++
	}
	return els, stats, nil
}

func tableElement(tok markdown.Token, res *Resolver) docx.Table {
	t := docx.Table{
		Style:  res.Resolve(RoleTableGrid),
		Header: tok.HeaderRow,
	}
	for _, row := range tok.Rows {
		r := docx.Row{Cells: make([]docx.Cell, 0, len(row))}
		for _, cell := range row {
			r.Cells = append(r.Cells, docx.Cell{Spans: inlineSpans(cell)})
		}
		t.Rows = append(t.Rows, r)
	}
	return t
}

// inlineSpans runs the inline formatter and converts its spans to document
// runs.
func inlineSpans(text string) []docx.Span {
	formatted := markdown.FormatInline(text)
	spans := make([]docx.Span, 0, len(formatted))
	for _, s := range formatted {
		spans = append(spans, docx.Span{
			Text:   s.Text,
			Bold:   s.Bold,
			Italic: s.Italic,
			Code:   s.Code,
			URL:    s.URL,
		})
	}
	return spans
}
