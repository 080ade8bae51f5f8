// Copyright 2024 - 2025, the localegen contributors
// SPDX-License-Identifier: AGPL-3.0-only

package codegen

import (
	"sort"

	"codeberg.org/localegen/localegen/core/resolve"
)

// Table is the generator-side model of the emitted dispatcher: it resolves
// a (language, region) query to the generated type name the dispatcher
// would instantiate. The emitted Lookup switch is rendered from it, and
// tests exercise the dispatch semantics through it without compiling
// generated output.
type Table struct {
	groups    []resolve.Group
	defaults  map[string]string            // language -> default type name
	variants  map[string]map[string]string // language -> region -> type name
	supported []string                     // canonical locales, sorted
}

// NewTable derives the dispatch table from validated locale groups.
func NewTable(groups []resolve.Group) *Table {
	t := &Table{
		groups:   make([]resolve.Group, len(groups)),
		defaults: make(map[string]string, len(groups)),
		variants: make(map[string]map[string]string, len(groups)),
	}

	copy(t.groups, groups)

	for _, g := range groups {
		t.defaults[g.Language] = TypeName(g.DefaultID())
		t.supported = append(t.supported, g.Language)

		byRegion := make(map[string]string, len(g.Regions))

		for _, id := range g.VariantIDs() {
			byRegion[id.Region] = TypeName(id)

			t.supported = append(t.supported, id.String())
		}

		t.variants[g.Language] = byRegion
	}

	sort.Strings(t.supported)

	return t
}

// Resolve returns the generated type name for a language and optional
// region.
//
// An exact (language, region) match wins; a known language with an
// unknown or empty region resolves to the language default; an unknown
// language resolves to nothing.
func (t *Table) Resolve(language, region string) (string, bool) {
	def, ok := t.defaults[language]
	if !ok {
		return "", false
	}

	if name, ok := t.variants[language][region]; ok {
		return name, true
	}

	return def, true
}

// IsSupported reports whether a language has a generated type.
func (t *Table) IsSupported(language string) bool {
	_, ok := t.defaults[language]

	return ok
}

// Supported returns every canonical locale with a generated type, sorted.
//
// The returned slice is a copy and is safe to retain.
func (t *Table) Supported() []string {
	out := make([]string, len(t.supported))
	copy(out, t.supported)

	return out
}

// Languages returns the supported languages, sorted.
func (t *Table) Languages() []string {
	out := make([]string, 0, len(t.groups))
	for _, g := range t.groups {
		out = append(out, g.Language)
	}

	return out
}
