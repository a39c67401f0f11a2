// Copyright Ignite Legal, 2026. All rights reserved.

// Package translate turns a Markdown token stream into document elements.
// It owns the mapping from semantic style roles to the concrete style
// names a template actually provides.
package translate

import (
	"fmt"
	"strings"
)

// Semantic style roles. Heading roles come from HeadingRole.
const (
	RoleNormal     = "Normal"
	RoleQuote      = "Quote"
	RoleCode       = "Code"
	RoleListBullet = "List Bullet"
	RoleListNumber = "List Number"
	RoleTableGrid  = "Table Grid"
)

// HeadingRole returns the semantic role for a heading level (1-6).
func HeadingRole(level int) string {
	return fmt.Sprintf("Heading %d", level)
}

// fallbackStyle is assumed present in every catalog. Resolution degrades
// to it rather than failing, so a template missing custom styles never
// aborts a conversion.
const fallbackStyle = "Normal"

// roleCandidates maps each role to template style names in priority order.
var roleCandidates = map[string][]string{
	"Heading 1":    {"Heading 1"},
	"Heading 2":    {"Heading 2"},
	"Heading 3":    {"Heading 3"},
	"Heading 4":    {"Heading 4"},
	"Heading 5":    {"Heading 5"},
	"Heading 6":    {"Heading 6"},
	RoleNormal:     {"Normal", "Body Text"},
	RoleQuote:      {"Quote", "Intense Quote", "Block Text"},
	RoleCode:       {"Code", "HTML Preformatted", "Plain Text"},
	RoleListBullet: {"List Bullet", "List Paragraph"},
	RoleListNumber: {"List Number", "List Paragraph"},
	RoleTableGrid:  {"Table Grid", "Plain Table 1"},
}

// Resolver maps semantic roles to style names present in one catalog. It
// never mutates the catalog and resolves deterministically: the same role
// against the same catalog always yields the same name.
type Resolver struct {
	catalog   map[string]struct{}
	overrides map[string][]string
}

// NewResolver builds a resolver over the given style names. Overrides, if
// non-nil, prepend extra candidates per role ahead of the built-in table;
// they come from a user style-map file.
func NewResolver(names []string, overrides map[string][]string) *Resolver {
	r := &Resolver{
		catalog:   make(map[string]struct{}, len(names)),
		overrides: overrides,
	}
	for _, n := range names {
		r.catalog[n] = struct{}{}
	}
	return r
}

// Resolve returns the best usable style name for role. Each candidate is
// tried verbatim and then through naming variations (spaces stripped,
// underscored, lower, upper) before moving on; templates exported from
// older Word versions often carry those spellings. When nothing matches,
// Resolve returns the universal fallback.
func (r *Resolver) Resolve(role string) string {
	seen := map[string]bool{}
	try := func(name string) (string, bool) {
		if seen[name] {
			return "", false
		}
		seen[name] = true
		if _, ok := r.catalog[name]; ok {
			return name, true
		}
		for _, v := range variations(name) {
			if _, ok := r.catalog[v]; ok {
				return v, true
			}
		}
		return "", false
	}

	for _, cand := range r.overrides[role] {
		if name, ok := try(cand); ok {
			return name
		}
	}
	for _, cand := range roleCandidates[role] {
		if name, ok := try(cand); ok {
			return name
		}
	}
	if role != fallbackStyle {
		if name, ok := try(fallbackStyle); ok {
			return name
		}
	}
	return fallbackStyle
}

func variations(name string) []string {
	return []string{
		strings.ReplaceAll(name, " ", ""),
		strings.ReplaceAll(name, " ", "_"),
		strings.ToLower(name),
		strings.ToUpper(name),
	}
}
