// Copyright Ignite Legal, 2026. All rights reserved.

package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
)

// templateParts holds the template package verbatim, in archive order, so
// Save can re-emit every part around the replaced word/document.xml.
type templateParts struct {
	entries []zipEntry
}

type zipEntry struct {
	name string
	data []byte
}

// stylesXML mirrors the subset of word/styles.xml needed to enumerate the
// style catalog. Attribute and element matching is by local name, so the
// w: prefix resolves without namespace plumbing.
type stylesXML struct {
	Styles []struct {
		Type string `xml:"type,attr"`
		ID   string `xml:"styleId,attr"`
		Name struct {
			Val string `xml:"val,attr"`
		} `xml:"name"`
	} `xml:"style"`
}

// Open loads a .docx template. The template's style catalog becomes the
// document's catalog, and every template part except word/document.xml is
// preserved in the output, so headers, themes and numbering defined by the
// organization's template survive conversion.
func Open(path string) (*Document, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening template %s: %w", path, err)
	}
	defer zr.Close()

	tpl := &templateParts{}
	var stylesData []byte
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("reading template part %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("reading template part %s: %w", f.Name, err)
		}
		tpl.entries = append(tpl.entries, zipEntry{name: f.Name, data: data})
		if f.Name == "word/styles.xml" {
			stylesData = data
		}
	}
	if stylesData == nil {
		return nil, fmt.Errorf("template %s: word/styles.xml not found", path)
	}

	d := &Document{template: tpl, styleIDs: make(map[string]string)}
	var parsed stylesXML
	if err := xml.Unmarshal(stylesData, &parsed); err != nil {
		return nil, fmt.Errorf("parsing template styles: %w", err)
	}
	for _, s := range parsed.Styles {
		if s.Name.Val == "" || s.ID == "" {
			continue
		}
		if _, seen := d.styleIDs[s.Name.Val]; seen {
			continue
		}
		d.styles = append(d.styles, s.Name.Val)
		d.styleIDs[s.Name.Val] = s.ID
	}
	if len(d.styles) == 0 {
		return nil, fmt.Errorf("template %s: no named styles", path)
	}
	return d, nil
}
