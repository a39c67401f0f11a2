// Copyright Ignite Legal, 2026. All rights reserved.

// Package docx builds Word-compatible documents. A Document collects
// block-level elements and serializes them as an OOXML package: a zip
// archive whose main part is word/document.xml. Documents start either
// blank, with a small built-in style set, or seeded from a .docx template
// whose styles and theme are carried into the output unchanged.
//
// There is no Go library in our dependency surface that writes .docx, so
// the OOXML parts are assembled here directly.
package docx

// Span is a run of text with its formatting flags. A non-empty URL renders
// the run in link colors; the document does not emit relationship-backed
// hyperlinks.
type Span struct {
	Text   string
	Bold   bool
	Italic bool
	Code   bool
	URL    string
}

// MaxListLevel is the deepest OOXML numbering level (w:ilvl) Word accepts.
const MaxListLevel = 8

// ListInfo tags a paragraph as a list item. Level is the zero-based
// nesting depth. Run identifies the contiguous list the item belongs to;
// ordered lists restart numbering per run.
type ListInfo struct {
	Level   int
	Ordered bool
	Run     int
}

// Element is a block-level construct appended to a Document.
type Element interface {
	element()
}

// Paragraph is a styled run sequence. List, Shaded and Indent adjust the
// direct formatting applied on top of the named style.
type Paragraph struct {
	Style  string
	Spans  []Span
	List   *ListInfo
	Shaded bool // light gray background, code fallback
	Indent bool // half-inch left/right indent, quote fallback
}

// Rule is a horizontal rule, rendered as a bottom-bordered empty paragraph.
type Rule struct{}

// Cell is one table cell.
type Cell struct {
	Spans []Span
}

// Row is one table row.
type Row struct {
	Cells []Cell
}

// Table is a grid of cells. Header marks the first row as a header row.
type Table struct {
	Style  string
	Header bool
	Rows   []Row
}

func (Paragraph) element() {}
func (Rule) element()      {}
func (Table) element()     {}

// Document accumulates elements and knows how to serialize itself. The
// style catalog is fixed at construction and read-only afterwards.
type Document struct {
	elements []Element
	styles   []string          // style names, catalog order
	styleIDs map[string]string // style name -> w:styleId
	template *templateParts    // nil for blank documents
}

// New returns a blank document carrying the built-in style set.
func New() *Document {
	d := &Document{styleIDs: make(map[string]string, len(builtinStyles))}
	for _, s := range builtinStyles {
		d.styles = append(d.styles, s.name)
		d.styleIDs[s.name] = s.id
	}
	return d
}

// StyleNames returns the names of the styles available to this document.
// The returned slice is a copy; the catalog itself never changes after
// construction.
func (d *Document) StyleNames() []string {
	out := make([]string, len(d.styles))
	copy(out, d.styles)
	return out
}

// Append adds el after all previously appended elements.
func (d *Document) Append(el Element) {
	d.elements = append(d.elements, el)
}

// Count returns the number of appended elements.
func (d *Document) Count() int {
	return len(d.elements)
}

// styleID maps a resolved style name to the w:styleId used in
// document.xml. Names the catalog does not know collapse to Normal.
func (d *Document) styleID(name string) string {
	if id, ok := d.styleIDs[name]; ok {
		return id
	}
	return "Normal"
}

// ownsNumbering reports whether the output will contain a numbering part
// this package generated. Template-seeded documents keep the template's
// numbering untouched and fall back to indentation for lists.
func (d *Document) ownsNumbering() bool {
	return d.template == nil
}
