// Copyright Ignite Legal, 2026. All rights reserved.

package convert

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// readSource loads the Markdown source. Input that is not valid UTF-8 goes
// through a legacy-encoding fallback chain before the file is declared
// unreadable; documents exported from older Windows tooling commonly
// arrive as Windows-1252.
func readSource(path string, w io.Writer) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrInputUnreadable, path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".md", ".markdown":
	default:
		fmt.Fprintf(w, "warning: %s does not have a .md extension\n", path)
	}

	if bytes.IndexByte(data, 0) >= 0 {
		return nil, fmt.Errorf("%w: %s: binary content", ErrInputUnreadable, path)
	}
	if utf8.Valid(data) {
		return data, nil
	}

	fallbacks := []struct {
		name string
		cm   *charmap.Charmap
	}{
		{"windows-1252", charmap.Windows1252},
		{"iso-8859-1", charmap.ISO8859_1},
	}
	for _, fb := range fallbacks {
		decoded, err := fb.cm.NewDecoder().Bytes(data)
		if err != nil || !utf8.Valid(decoded) {
			continue
		}
		fmt.Fprintf(w, "decoded %s as %s\n", path, fb.name)
		return decoded, nil
	}
	return nil, fmt.Errorf("%w: %s: unknown text encoding", ErrInputUnreadable, path)
}
