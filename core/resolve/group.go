// Copyright 2024 - 2025, the localegen contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package resolve groups loaded locales by language and enforces the
// fallback rule: every language with region variants must also carry a
// language-default locale, so a lookup can always fall back to it.
package resolve

import (
	"errors"
	"fmt"
	"sort"

	"codeberg.org/localegen/localegen/core/locale"
)

// ErrMissingFallback marks a language that has region variants but no
// language-default translation file to fall back to.
var ErrMissingFallback = errors.New("missing fallback locale")

// Group is the set of loaded locales for one language.
type Group struct {
	Language string
	Default  bool     // a region-less locale exists for the language
	Regions  []string // region codes of the variants, sorted
}

// DefaultID returns the identifier of the group's language-default locale.
func (g Group) DefaultID() locale.ID {
	return locale.ID{Language: g.Language}
}

// VariantIDs returns the identifiers of the group's region variants, in
// region order.
func (g Group) VariantIDs() []locale.ID {
	out := make([]locale.ID, 0, len(g.Regions))
	for _, region := range g.Regions {
		out = append(out, locale.ID{Language: g.Language, Region: region})
	}

	return out
}

// Build groups the given locale identifiers by language.
//
// Groups come back sorted by language, each with its region list sorted.
// A group without a language default fails the build; the diagnostic names
// the language and the region variants that were found. Languages are
// checked in sorted order, so the first failure is deterministic.
func Build(ids []locale.ID) ([]Group, error) {
	byLang := make(map[string]*Group)

	for _, id := range ids {
		g, ok := byLang[id.Language]
		if !ok {
			g = &Group{Language: id.Language}
			byLang[id.Language] = g
		}

		if id.HasRegion() {
			g.Regions = append(g.Regions, id.Region)
		} else {
			g.Default = true
		}
	}

	groups := make([]Group, 0, len(byLang))

	for _, g := range byLang {
		sort.Strings(g.Regions)

		groups = append(groups, *g)
	}

	sort.Slice(groups, func(i, j int) bool { return groups[i].Language < groups[j].Language })

	for _, g := range groups {
		if !g.Default {
			return nil, fmt.Errorf("%w: language %q has region variants %v but no language-default file",
				ErrMissingFallback, g.Language, g.Regions)
		}
	}

	return groups, nil
}
