// Copyright 2024 - 2025, the localegen contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package catalog loads per-locale translation files into ordered key/value
// sets and checks them against the template locale's key set.
package catalog

import (
	"fmt"

	"codeberg.org/localegen/localegen/core/locale"
)

// Set is the translation set loaded from a single locale file: an ordered
// key to string mapping tied to exactly one locale.
//
// Keys keep the order they were declared in. A Set is filled once by its
// loader and read-only afterwards.
type Set struct {
	ID   locale.ID
	Path string

	keys   []string
	values map[string]string
}

// NewSet returns an empty Set for the given locale and source path.
func NewSet(id locale.ID, path string) *Set {
	return &Set{
		ID:     id,
		Path:   path,
		values: make(map[string]string),
	}
}

// Add appends a key/value pair, preserving insertion order.
//
// A key may only be added once per Set.
func (s *Set) Add(key, value string) error {
	if _, ok := s.values[key]; ok {
		return fmt.Errorf("duplicate key %q", key)
	}

	s.keys = append(s.keys, key)
	s.values[key] = value

	return nil
}

// Keys returns the keys in declaration order.
//
// The returned slice is a copy and is safe to retain.
func (s *Set) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)

	return out
}

// Value returns the translated string for key.
func (s *Set) Value(key string) (string, bool) {
	v, ok := s.values[key]

	return v, ok
}

// Has reports whether key is declared in the Set.
func (s *Set) Has(key string) bool {
	_, ok := s.values[key]

	return ok
}

// Len returns the number of declared keys.
func (s *Set) Len() int {
	return len(s.keys)
}
