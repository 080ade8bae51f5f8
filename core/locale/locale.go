// Copyright 2024 - 2025, the localegen contributors
// SPDX-License-Identifier: AGPL-3.0-only

package locale

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrInvalidLanguage marks a language subtag that is not a known
	// ISO 639-1 code.
	ErrInvalidLanguage = errors.New("invalid language code")

	// ErrInvalidRegion marks a region subtag that is not a known
	// ISO 3166-1 alpha-2 code.
	ErrInvalidRegion = errors.New("invalid region code")
)

// ID is a parsed locale identifier.
//
// Language is always set; Region is empty for a language-default locale.
// Values produced by [Registry.Parse] are canonical: lowercase language,
// uppercase region.
type ID struct {
	Language string
	Region   string
}

// HasRegion reports whether the identifier names a region variant rather
// than a language default.
func (id ID) HasRegion() bool {
	return id.Region != ""
}

// String returns the canonical string form, "en" or "en-US".
func (id ID) String() string {
	if id.Region == "" {
		return id.Language
	}

	return id.Language + "-" + id.Region
}

// Parse parses and canonicalises a locale identifier.
//
// Hyphen and underscore separators are accepted interchangeably, a POSIX
// charset suffix such as ".UTF-8" is ignored, and case is normalised, so
// "en_us.UTF-8" parses to ID{Language: "en", Region: "US"}. Anything after
// the region subtag fails region validation; script and variant subtags are
// therefore rejected rather than carried along.
//
// Parsing is idempotent: the canonical form of an ID parses back to the
// same ID.
func (r *Registry) Parse(s string) (ID, error) {
	raw := s

	s = strings.TrimSpace(s)

	// POSIX-style identifiers carry a charset suffix after a dot.
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}

	s = strings.ReplaceAll(s, "_", "-")

	lang, region, hasRegion := strings.Cut(s, "-")

	lang = strings.ToLower(lang)
	if _, ok := r.languages[lang]; !ok {
		return ID{}, fmt.Errorf("%w: %q in %q", ErrInvalidLanguage, lang, raw)
	}

	id := ID{Language: lang}

	if hasRegion {
		region = strings.ToUpper(region)
		if _, ok := r.regions[region]; !ok {
			return ID{}, fmt.Errorf("%w: %q in %q", ErrInvalidRegion, region, raw)
		}

		id.Region = region
	}

	return id, nil
}

// ParseFile parses the locale identifier encoded in a translation file
// name: the final path segment with its extension stripped, so
// "locale-input/pt_BR.yaml" parses to ID{Language: "pt", Region: "BR"}.
//
// Errors name the offending file.
func (r *Registry) ParseFile(name string) (ID, error) {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	id, err := r.Parse(base)
	if err != nil {
		return ID{}, fmt.Errorf("file %s: %w", name, err)
	}

	return id, nil
}
