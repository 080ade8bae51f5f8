// Copyright 2024 - 2025, the localegen contributors
// SPDX-License-Identifier: AGPL-3.0-only

package catalog

import (
	"errors"
	"fmt"

	"codeberg.org/localegen/localegen/core/locale"
)

var (
	// ErrMissingTemplate marks an input directory that carries no
	// translation file for the template locale.
	ErrMissingTemplate = errors.New("missing template locale")

	// ErrUnknownKey marks a translation key that the template locale does
	// not declare.
	ErrUnknownKey = errors.New("unknown translation key")

	// ErrIncompleteDefault marks a language-default locale that omits a
	// template key. Region variants may be sparse; language defaults are
	// the fallback for a whole language and must cover every key.
	ErrIncompleteDefault = errors.New("incomplete language default")
)

// FindTemplate returns the set for the template locale.
//
// The template's key set is the authoritative schema every other set is
// checked against.
func FindTemplate(sets []*Set, template locale.ID) (*Set, error) {
	for _, set := range sets {
		if set.ID == template {
			return set, nil
		}
	}

	return nil, fmt.Errorf("%w: no translation file for %q", ErrMissingTemplate, template)
}

// CheckKeys verifies that every set declares only keys the template
// declares.
//
// The first offending key, in the candidate's own declaration order, fails
// the check; nothing is skipped or dropped.
func CheckKeys(template *Set, sets []*Set) error {
	for _, set := range sets {
		if set == template {
			continue
		}

		for _, key := range set.Keys() {
			if !template.Has(key) {
				return fmt.Errorf("%w: %q in %s is not declared by template %s",
					ErrUnknownKey, key, set.Path, template.ID)
			}
		}
	}

	return nil
}

// CheckDefaults verifies that every language-default set covers the full
// template key set.
func CheckDefaults(template *Set, sets []*Set) error {
	for _, set := range sets {
		if set == template || set.ID.HasRegion() {
			continue
		}

		for _, key := range template.Keys() {
			if !set.Has(key) {
				return fmt.Errorf("%w: %s is missing template key %q",
					ErrIncompleteDefault, set.Path, key)
			}
		}
	}

	return nil
}
