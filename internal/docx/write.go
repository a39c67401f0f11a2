// Copyright Ignite Legal, 2026. All rights reserved.

package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const wordNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// twipsPerLevel is the left indent applied per list level when numbering
// cannot be used (half an inch, in twentieths of a point).
const twipsPerLevel = 720

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// Save serializes the document to path. The package is assembled in memory
// and moved into place with a rename, so a failed save never leaves a
// partial file behind.
func (d *Document) Save(path string) error {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	if err := d.writeParts(zw); err != nil {
		return err
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("assembling package: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".convert-doc-*")
	if err != nil {
		return fmt.Errorf("creating output in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func (d *Document) writeParts(zw *zip.Writer) error {
	docXML := d.documentXML()

	if d.template != nil {
		replaced := false
		for _, e := range d.template.entries {
			data := e.data
			if e.name == "word/document.xml" {
				data = docXML
				replaced = true
			}
			if err := writePart(zw, e.name, data); err != nil {
				return err
			}
		}
		if !replaced {
			return writePart(zw, "word/document.xml", docXML)
		}
		return nil
	}

	parts := []zipEntry{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", []byte(packageRelsXML)},
		{"word/_rels/document.xml.rels", []byte(documentRelsXML)},
		{"word/styles.xml", []byte(stylesPartXML)},
		{"word/numbering.xml", d.numberingXML()},
		{"word/document.xml", docXML},
	}
	for _, p := range parts {
		if err := writePart(zw, p.name, p.data); err != nil {
			return err
		}
	}
	return nil
}

func writePart(zw *zip.Writer, name string, data []byte) error {
	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("creating package part %s: %w", name, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing package part %s: %w", name, err)
	}
	return nil
}

// documentXML renders the element sequence as the main document part.
func (d *Document) documentXML() []byte {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	b.WriteString("\n")
	fmt.Fprintf(&b, `<w:document xmlns:w=%q><w:body>`, wordNS)
	for _, el := range d.elements {
		switch e := el.(type) {
		case Paragraph:
			d.writeParagraph(&b, e)
		case Rule:
			writeRule(&b)
		case Table:
			d.writeTable(&b, e)
		}
	}
	b.WriteString(`<w:sectPr><w:pgSz w:w="11906" w:h="16838"/>` +
		`<w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440" w:header="708" w:footer="708" w:gutter="0"/>` +
		`</w:sectPr></w:body></w:document>`)
	return []byte(b.String())
}

func (d *Document) writeParagraph(b *strings.Builder, p Paragraph) {
	b.WriteString("<w:p><w:pPr>")
	if p.Style != "" {
		fmt.Fprintf(b, `<w:pStyle w:val=%q/>`, d.styleID(p.Style))
	}
	if p.List != nil {
		if d.ownsNumbering() {
			fmt.Fprintf(b, `<w:numPr><w:ilvl w:val="%d"/><w:numId w:val="%d"/></w:numPr>`,
				p.List.Level, p.List.numID())
		} else {
			fmt.Fprintf(b, `<w:ind w:left="%d"/>`, twipsPerLevel*(p.List.Level+1))
		}
	}
	if p.Indent {
		b.WriteString(`<w:ind w:left="720" w:right="720"/>`)
	}
	if p.Shaded {
		b.WriteString(`<w:shd w:val="clear" w:color="auto" w:fill="F0F0F0"/>`)
	}
	b.WriteString("</w:pPr>")
	for _, s := range p.Spans {
		writeSpan(b, s)
	}
	b.WriteString("</w:p>")
}

// numID maps a list run to its w:numId. Bullet items share one instance;
// each ordered run gets its own so numbering restarts per list.
func (l *ListInfo) numID() int {
	if !l.Ordered {
		return 1
	}
	return 1 + l.Run
}

func writeSpan(b *strings.Builder, s Span) {
	b.WriteString("<w:r>")
	var rpr strings.Builder
	if s.Bold {
		rpr.WriteString("<w:b/>")
	}
	if s.Italic {
		rpr.WriteString("<w:i/>")
	}
	if s.Code {
		rpr.WriteString(`<w:rFonts w:ascii="Courier New" w:hAnsi="Courier New"/><w:sz w:val="18"/>`)
	}
	if s.URL != "" {
		rpr.WriteString(`<w:color w:val="0000FF"/><w:u w:val="single"/>`)
	}
	if rpr.Len() > 0 {
		b.WriteString("<w:rPr>")
		b.WriteString(rpr.String())
		b.WriteString("</w:rPr>")
	}
	fmt.Fprintf(b, `<w:t xml:space="preserve">%s</w:t>`, xmlEscaper.Replace(s.Text))
	b.WriteString("</w:r>")
}

// writeRule emits an empty paragraph with a bottom border, the same trick
// Word itself uses for horizontal rules.
func writeRule(b *strings.Builder) {
	b.WriteString(`<w:p><w:pPr><w:spacing w:before="240" w:after="240"/>` +
		`<w:pBdr><w:bottom w:val="single" w:sz="6" w:space="1" w:color="auto"/></w:pBdr>` +
		`</w:pPr></w:p>`)
}

func (d *Document) writeTable(b *strings.Builder, t Table) {
	b.WriteString("<w:tbl><w:tblPr>")
	if t.Style != "" {
		fmt.Fprintf(b, `<w:tblStyle w:val=%q/>`, d.styleID(t.Style))
	}
	b.WriteString(`<w:tblW w:w="0" w:type="auto"/>` +
		`<w:tblBorders>` +
		`<w:top w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
		`<w:left w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
		`<w:bottom w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
		`<w:right w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
		`<w:insideH w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
		`<w:insideV w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
		`</w:tblBorders></w:tblPr>`)
	for i, row := range t.Rows {
		header := t.Header && i == 0
		b.WriteString("<w:tr>")
		for _, cell := range row.Cells {
			b.WriteString(`<w:tc><w:tcPr><w:tcW w:w="0" w:type="auto"/></w:tcPr><w:p>`)
			for _, s := range cell.Spans {
				if header {
					s.Bold = true
				}
				writeSpan(b, s)
			}
			b.WriteString("</w:p></w:tc>")
		}
		b.WriteString("</w:tr>")
	}
	b.WriteString("</w:tbl>")
}

// numberingXML builds the numbering part for blank documents: one shared
// bullet instance plus one decimal instance per ordered list run, so each
// ordered list starts counting at 1.
func (d *Document) numberingXML() []byte {
	runs := map[int]bool{}
	for _, el := range d.elements {
		p, ok := el.(Paragraph)
		if !ok || p.List == nil || !p.List.Ordered {
			continue
		}
		runs[p.List.Run] = true
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	b.WriteString("\n")
	fmt.Fprintf(&b, `<w:numbering xmlns:w=%q>`, wordNS)

	b.WriteString(`<w:abstractNum w:abstractNumId="0">`)
	// Word's classic bullet glyphs live in the Symbol/Wingdings private
	// use area; "o" at the middle level renders in Courier New.
	bullets := []string{"", "o", ""}
	fonts := []string{"Symbol", "Courier New", "Wingdings"}
	for lvl := 0; lvl <= MaxListLevel; lvl++ {
		font := fonts[lvl%3]
		fmt.Fprintf(&b, `<w:lvl w:ilvl="%d"><w:numFmt w:val="bullet"/><w:lvlText w:val="%s"/>`+
			`<w:lvlJc w:val="left"/><w:pPr><w:ind w:left="%d" w:hanging="360"/></w:pPr>`+
			`<w:rPr><w:rFonts w:ascii="%s" w:hAnsi="%s" w:hint="default"/></w:rPr></w:lvl>`,
			lvl, bullets[lvl%3], twipsPerLevel*(lvl+1), font, font)
	}
	b.WriteString(`</w:abstractNum>`)

	b.WriteString(`<w:abstractNum w:abstractNumId="1">`)
	for lvl := 0; lvl <= MaxListLevel; lvl++ {
		fmt.Fprintf(&b, `<w:lvl w:ilvl="%d"><w:start w:val="1"/><w:numFmt w:val="decimal"/>`+
			`<w:lvlText w:val="%%%d."/><w:lvlJc w:val="left"/>`+
			`<w:pPr><w:ind w:left="%d" w:hanging="360"/></w:pPr></w:lvl>`,
			lvl, lvl+1, twipsPerLevel*(lvl+1))
	}
	b.WriteString(`</w:abstractNum>`)

	b.WriteString(`<w:num w:numId="1"><w:abstractNumId w:val="0"/></w:num>`)
	for run := 1; run <= maxRun(runs); run++ {
		if !runs[run] {
			continue
		}
		// Word keeps one counter per abstract definition, so every run
		// instance overrides the start value back to 1 at each level.
		fmt.Fprintf(&b, `<w:num w:numId="%d"><w:abstractNumId w:val="1"/>`, 1+run)
		for lvl := 0; lvl <= MaxListLevel; lvl++ {
			fmt.Fprintf(&b, `<w:lvlOverride w:ilvl="%d"><w:startOverride w:val="1"/></w:lvlOverride>`, lvl)
		}
		b.WriteString(`</w:num>`)
	}
	b.WriteString(`</w:numbering>`)
	return []byte(b.String())
}

func maxRun(runs map[int]bool) int {
	max := 0
	for r := range runs {
		if r > max {
			max = r
		}
	}
	return max
}
