// Copyright 2024 - 2025, the localegen contributors
// SPDX-License-Identifier: AGPL-3.0-only

package codegen

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"codeberg.org/localegen/localegen/core/locale"
)

const (
	// typePrefix starts every generated type name.
	typePrefix = "Messages"

	// interfaceName is the accessor contract every generated type satisfies.
	interfaceName = "Messages"

	// baseName is the locale-holding struct embedded by every language
	// default.
	baseName = "baseMessages"

	// localeAccessor is declared by the base and may not be produced by
	// key mangling.
	localeAccessor = "Locale"
)

// ErrBadKey marks a translation key that cannot be turned into a usable
// accessor method name.
var ErrBadKey = errors.New("cannot derive accessor name")

// TypeName returns the generated type name for a locale: MessagesEn for
// "en", MessagesEnUS for "en-US", MessagesPtBR for "pt-BR".
//
// Canonical identifiers map to distinct names, so no further collision
// handling is needed.
func TypeName(id locale.ID) string {
	return typePrefix + cases.Title(language.English).String(id.Language) + id.Region
}

// ConstructorName returns the constructor name for a locale's type.
func ConstructorName(id locale.ID) string {
	return "New" + TypeName(id)
}

// AccessorName derives the accessor method name for a translation key:
// the key is split on runs of non-alphanumeric characters, the first rune
// of each segment is upper-cased, and the segments are joined, so
// "greeting_hello" becomes "GreetingHello" and "app.title" becomes
// "AppTitle". Characters after the first of a segment keep their case.
//
// A key whose mangled form is not an exported Go identifier fails with
// [ErrBadKey].
func AccessorName(key string) (string, error) {
	segments := strings.FieldsFunc(key, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	if len(segments) == 0 {
		return "", fmt.Errorf("%w: %q has no letters or digits", ErrBadKey, key)
	}

	var b strings.Builder

	for _, segment := range segments {
		r, size := utf8.DecodeRuneInString(segment)

		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(segment[size:])
	}

	name := b.String()

	if r, _ := utf8.DecodeRuneInString(name); !unicode.IsUpper(r) {
		return "", fmt.Errorf("%w: %q does not yield an exported Go identifier", ErrBadKey, key)
	}

	return name, nil
}

// AccessorNames mangles every key and verifies the results are unique and
// do not collide with the base's accessors.
//
// Run on the template key set, this fixes the accessor for each key once;
// every generated type then agrees on method names, which is what lets a
// region variant override its language default.
func AccessorNames(keys []string) (map[string]string, error) {
	accessors := make(map[string]string, len(keys))
	seen := make(map[string]string, len(keys))

	for _, key := range keys {
		accessor, err := AccessorName(key)
		if err != nil {
			return nil, err
		}

		if accessor == localeAccessor {
			return nil, fmt.Errorf("%w: %q maps to the reserved accessor %q", ErrBadKey, key, localeAccessor)
		}

		if prev, ok := seen[accessor]; ok {
			return nil, fmt.Errorf("%w: %q and %q both map to accessor %q", ErrBadKey, prev, key, accessor)
		}

		seen[accessor] = key
		accessors[key] = accessor
	}

	return accessors, nil
}
