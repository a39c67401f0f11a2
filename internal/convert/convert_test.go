// Copyright Ignite Legal, 2026. All rights reserved.

package convert

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// documentXML pulls word/document.xml out of a saved package.
func documentXML(t *testing.T, path string) string {
	t.Helper()
	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(data)
	}
	t.Fatalf("word/document.xml not found in %s", path)
	return ""
}

func TestConvert_EndToEnd(t *testing.T) {
	input := writeInput(t, "doc.md", "# Title\n\nSome **bold** and *italic* text.\n\n- a\n- b\n")

	var log bytes.Buffer
	res, err := Convert(Options{Input: input}, &log)
	require.NoError(t, err)

	assert.Equal(t, 4, res.Blocks, "heading, paragraph and two list items")
	assert.Equal(t, 0, res.Degraded)
	assert.Equal(t, filepath.Join(filepath.Dir(input), "doc_converted.docx"), res.OutputPath)
	assert.Contains(t, log.String(), "converted:")

	doc := documentXML(t, res.OutputPath)
	assert.Contains(t, doc, `<w:pStyle w:val="Heading1"/>`)
	assert.Contains(t, doc, `<w:t xml:space="preserve">Title</w:t>`)
	assert.Contains(t, doc, `<w:rPr><w:b/></w:rPr><w:t xml:space="preserve">bold</w:t>`)
	assert.Contains(t, doc, `<w:rPr><w:i/></w:rPr><w:t xml:space="preserve">italic</w:t>`)
	assert.Contains(t, doc, `<w:t xml:space="preserve">a</w:t>`)
	assert.Contains(t, doc, `<w:t xml:space="preserve">b</w:t>`)
}

func TestConvert_NoTemplateStillSucceeds(t *testing.T) {
	input := writeInput(t, "plain.md", "just a paragraph\n")

	var log bytes.Buffer
	res, err := Convert(Options{Input: input}, &log)
	require.NoError(t, err)

	assert.FileExists(t, res.OutputPath)
	assert.Contains(t, log.String(), "built-in styles")
}

func TestConvert_MissingInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "missing.md")

	var log bytes.Buffer
	_, err := Convert(Options{Input: input}, &log)
	require.ErrorIs(t, err, ErrInputNotFound)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "a failed conversion must not leave an output file")
}

func TestConvert_ExplicitOutputPath(t *testing.T) {
	input := writeInput(t, "doc.md", "# T\n")
	out := filepath.Join(t.TempDir(), "final.docx")

	res, err := Convert(Options{Input: input, Output: out}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, out, res.OutputPath)
	assert.FileExists(t, out)
}

func TestConvert_CustomSuffix(t *testing.T) {
	input := writeInput(t, "doc.md", "# T\n")

	res, err := Convert(Options{Input: input, Suffix: ".docx"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(input), "doc.docx"), res.OutputPath)
}

func TestConvert_UnwritableOutput(t *testing.T) {
	input := writeInput(t, "doc.md", "# T\n")
	out := filepath.Join(t.TempDir(), "no", "such", "dir", "out.docx")

	_, err := Convert(Options{Input: input, Output: out}, io.Discard)
	assert.ErrorIs(t, err, ErrOutputUnwritable)
}

func TestConvert_TemplateUnreadable(t *testing.T) {
	input := writeInput(t, "doc.md", "# T\n")
	badTemplate := writeInput(t, "tpl.docx", "this is not a zip archive")

	_, err := Convert(Options{Input: input, Template: badTemplate}, io.Discard)
	assert.ErrorIs(t, err, ErrTemplateUnreadable)
}

func TestConvert_MissingTemplatePath(t *testing.T) {
	input := writeInput(t, "doc.md", "# T\n")

	_, err := Convert(Options{Input: input, Template: filepath.Join(t.TempDir(), "absent.docx")}, io.Discard)
	assert.ErrorIs(t, err, ErrTemplateUnreadable)
}

func TestConvert_StyleMapUnreadable(t *testing.T) {
	input := writeInput(t, "doc.md", "# T\n")

	_, err := Convert(Options{Input: input, StyleMap: filepath.Join(t.TempDir(), "absent.yaml")}, io.Discard)
	assert.ErrorIs(t, err, ErrTemplateUnreadable)
}

func TestConvert_StyleMapOverrides(t *testing.T) {
	input := writeInput(t, "doc.md", "# Title\n")
	styleMap := writeInput(t, "styles.yaml", "styles:\n  \"Heading 1\":\n    - \"Heading 3\"\n")

	res, err := Convert(Options{Input: input, StyleMap: styleMap}, io.Discard)
	require.NoError(t, err)

	doc := documentXML(t, res.OutputPath)
	assert.Contains(t, doc, `<w:pStyle w:val="Heading3"/>`, "style map redirects the heading role")
}

func TestConvert_Windows1252Fallback(t *testing.T) {
	// 0x93/0x94 are curly quotes in Windows-1252 and invalid UTF-8.
	content := append([]byte("He said "), 0x93)
	content = append(content, []byte("hello")...)
	content = append(content, 0x94, '\n')

	path := filepath.Join(t.TempDir(), "legacy.md")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	var log bytes.Buffer
	res, err := Convert(Options{Input: path}, &log)
	require.NoError(t, err)
	assert.Contains(t, log.String(), "windows-1252")

	doc := documentXML(t, res.OutputPath)
	assert.Contains(t, doc, "“hello”")
}

func TestConvert_BinaryInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binary.md")
	require.NoError(t, os.WriteFile(path, []byte{0x00, 0x01, 0x02, 0xFF}, 0o644))

	_, err := Convert(Options{Input: path}, io.Discard)
	assert.ErrorIs(t, err, ErrInputUnreadable)
}

func TestConvert_NonMarkdownExtensionWarns(t *testing.T) {
	input := writeInput(t, "notes.txt", "# T\n")

	var log bytes.Buffer
	_, err := Convert(Options{Input: input}, &log)
	require.NoError(t, err)
	assert.Contains(t, log.String(), "warning")
}

func TestConvert_DegradedBlocksReported(t *testing.T) {
	input := writeInput(t, "doc.md", "<div>\nhtml block\n</div>\n")

	var log bytes.Buffer
	res, err := Convert(Options{Input: input, Verbose: true}, &log)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Degraded)
	assert.Contains(t, log.String(), "degraded")
	doc := documentXML(t, res.OutputPath)
	assert.True(t, strings.Contains(doc, "html block"), "degraded content is kept as plain text")
}

func TestConvert_CodeBlockLiteral(t *testing.T) {
	input := writeInput(t, "doc.md", "```\n**not bold**\n```\n")

	res, err := Convert(Options{Input: input}, io.Discard)
	require.NoError(t, err)

	doc := documentXML(t, res.OutputPath)
	assert.Contains(t, doc, `<w:t xml:space="preserve">**not bold**</w:t>`,
		"code block content is emitted verbatim")
}
