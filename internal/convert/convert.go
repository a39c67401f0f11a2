// Copyright Ignite Legal, 2026. All rights reserved.

// Package convert orchestrates one Markdown-to-Word conversion: read the
// source, load the template, translate the token stream and serialize the
// document. Parsing-level anomalies degrade inside the pipeline; resource
// errors surface here with a distinct kind per failure.
package convert

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Ignitelegal/convertMDtoWord/internal/docx"
	"github.com/Ignitelegal/convertMDtoWord/internal/markdown"
	"github.com/Ignitelegal/convertMDtoWord/internal/translate"
	"github.com/Ignitelegal/convertMDtoWord/pkg/types"
)

// Error kinds for the failures a conversion can hit. Callers match them
// with errors.Is; translation failures carry a *translate.TranslationError
// instead.
var (
	ErrInputNotFound      = errors.New("input file not found")
	ErrInputUnreadable    = errors.New("input file is not readable text")
	ErrTemplateUnreadable = errors.New("template could not be loaded")
	ErrOutputUnwritable   = errors.New("output file could not be written")
)

// Options configures a single conversion.
type Options struct {
	Input    string // source Markdown path, required
	Template string // optional .docx template
	Output   string // optional output path; derived from Input when empty
	StyleMap string // optional style-map override file
	Suffix   string // output suffix convention; types.DefaultOutputSuffix when empty
	Verbose  bool
}

// Result reports a finished conversion.
type Result struct {
	OutputPath string
	Blocks     int
	Degraded   int
}

// Convert runs the whole pipeline for one document, writing progress lines
// to w. Either the full document is written to the output path or nothing
// is.
func Convert(opts Options, w io.Writer) (Result, error) {
	src, err := readSource(opts.Input, w)
	if err != nil {
		return Result{}, err
	}

	doc, err := openDocument(opts.Template, w)
	if err != nil {
		return Result{}, err
	}

	overrides, err := loadStyleMap(opts.StyleMap)
	if err != nil {
		return Result{}, err
	}

	tokens := markdown.Tokenize(src)
	res := translate.NewResolver(doc.StyleNames(), overrides)
	els, stats, err := translate.Translate(tokens, res)
	if err != nil {
		return Result{}, err
	}
	if opts.Verbose && stats.Degraded > 0 {
		fmt.Fprintf(w, "degraded: %d unsupported block(s) rendered as plain text\n", stats.Degraded)
	}
	for _, el := range els {
		doc.Append(el)
	}

	out := opts.Output
	if out == "" {
		out = derivedOutput(opts.Input, opts.Suffix)
	}
	if err := doc.Save(out); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrOutputUnwritable, err)
	}

	fmt.Fprintf(w, "converted: %s (%d blocks)\n", out, stats.Blocks)
	return Result{OutputPath: out, Blocks: stats.Blocks, Degraded: stats.Degraded}, nil
}

// openDocument loads the template when a path was given, otherwise starts
// a blank document with built-in styles. A template path that cannot be
// loaded is an error; missing custom styles inside a loadable template are
// not (the resolver degrades those per style).
func openDocument(templatePath string, w io.Writer) (*docx.Document, error) {
	if templatePath == "" {
		fmt.Fprintln(w, "no template given, using built-in styles")
		return docx.New(), nil
	}
	doc, err := docx.Open(templatePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateUnreadable, err)
	}
	fmt.Fprintf(w, "template loaded: %s (%d styles)\n", templatePath, len(doc.StyleNames()))
	return doc, nil
}

// derivedOutput places the output next to the source, replacing the
// extension with the configured suffix.
func derivedOutput(input, suffix string) string {
	if suffix == "" {
		suffix = types.DefaultOutputSuffix
	}
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(filepath.Dir(input), stem+suffix)
}
