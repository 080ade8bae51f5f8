// Copyright 2024 - 2025, the localegen contributors
// SPDX-License-Identifier: AGPL-3.0-only

package locale

import (
	"embed"
	"fmt"
	"sort"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/language"
)

// tables holds the embedded reference data.
//
//go:embed data/languages.yaml data/regions.yaml
var tables embed.FS

// Registry holds the immutable language and region reference tables that
// locale identifiers are validated against.
//
// Load it once with [LoadRegistry] and pass it explicitly to parsing calls.
// The zero value rejects every identifier.
type Registry struct {
	languages map[string]string
	regions   map[string]string
}

// LoadRegistry decodes the embedded reference tables into a [Registry].
//
// Every language code must be a base subtag and every region code a region
// subtag registered in the IANA Language Subtag Registry; an entry that
// [language.ParseBase] or [language.ParseRegion] rejects means the embedded
// data is corrupted, and loading fails.
func LoadRegistry() (*Registry, error) {
	languages, err := loadTable("data/languages.yaml")
	if err != nil {
		return nil, err
	}

	for code := range languages {
		if _, err := language.ParseBase(code); err != nil {
			return nil, fmt.Errorf("language table entry %q: %w", code, err)
		}
	}

	regions, err := loadTable("data/regions.yaml")
	if err != nil {
		return nil, err
	}

	for code := range regions {
		if _, err := language.ParseRegion(code); err != nil {
			return nil, fmt.Errorf("region table entry %q: %w", code, err)
		}
	}

	return &Registry{languages: languages, regions: regions}, nil
}

func loadTable(name string) (map[string]string, error) {
	file, err := tables.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open reference table: %w", err)
	}
	defer file.Close()

	var table map[string]string
	if err := yaml.NewDecoder(file).Decode(&table); err != nil {
		return nil, fmt.Errorf("failed to decode reference table %s: %w", name, err)
	}

	return table, nil
}

// LanguageName returns the English reference name for a canonical
// (lowercase) language code.
func (r *Registry) LanguageName(code string) (string, bool) {
	name, ok := r.languages[code]

	return name, ok
}

// RegionName returns the English reference name for a canonical (uppercase)
// region code.
func (r *Registry) RegionName(code string) (string, bool) {
	name, ok := r.regions[code]

	return name, ok
}

// Languages returns the sorted list of known language codes.
//
// The returned slice is a copy and is safe to retain.
func (r *Registry) Languages() []string {
	out := make([]string, 0, len(r.languages))
	for code := range r.languages {
		out = append(out, code)
	}

	sort.Strings(out)

	return out
}

// Regions returns the sorted list of known region codes.
//
// The returned slice is a copy and is safe to retain.
func (r *Registry) Regions() []string {
	out := make([]string, 0, len(r.regions))
	for code := range r.regions {
		out = append(out, code)
	}

	sort.Strings(out)

	return out
}
