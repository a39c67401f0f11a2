// Copyright Ignite Legal, 2026. All rights reserved.

// Package types holds the configuration and file-format types shared
// between the CLI surface and the conversion stages.
package types

// ConverterConfig holds settings for a conversion run. Values bind from
// the config file, environment and flags, in ascending precedence.
type ConverterConfig struct {
	// TemplatePath is the default Word template applied when the flag is
	// not given. Empty means convert with built-in styles.
	TemplatePath string `json:"template" yaml:"template"`

	// StyleMapPath points at a style-map override file (see StyleMapFile).
	StyleMapPath string `json:"style_map" yaml:"style_map"`

	// OutputSuffix replaces the source extension when no output path is
	// given (default "_converted.docx").
	OutputSuffix string `json:"output_suffix" yaml:"output_suffix"`

	// Verbose enables per-block degradation notices.
	Verbose bool `json:"verbose" yaml:"verbose"`
}

// DefaultOutputSuffix is the conventional suffix for derived output paths.
const DefaultOutputSuffix = "_converted.docx"

// StyleMapFile is the on-disk representation of style-map overrides: a
// mapping from semantic role names ("Heading 1", "Quote", "List Bullet")
// to template style names tried in order before the built-in candidates.
type StyleMapFile struct {
	Styles map[string][]string `yaml:"styles"`
}
