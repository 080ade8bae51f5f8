// Copyright 2024 - 2025, the localegen contributors
// SPDX-License-Identifier: AGPL-3.0-only

package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"codeberg.org/localegen/localegen/core/catalog"
)

const dispatcherSkeleton = `«header»

package «package»

import (
	"errors"
	"fmt"
)

// «interface» is the accessor contract every generated locale type
// satisfies.
type «interface» interface {
	// Locale returns the canonical locale identifier the value was
	// constructed for.
	Locale() string
«accessors»}

// «base» carries the locale identifier shared by every generated type.
type «base» struct {
	locale string
}

// Locale returns the canonical locale identifier.
func (m «base») Locale() string {
	return m.locale
}

// SupportedLocales lists every locale with a generated type, in canonical
// form, sorted.
var SupportedLocales = []string{
«supported»}

// ErrUnsupportedLocale is returned by Lookup for a language without a
// generated type.
var ErrUnsupportedLocale = errors.New("unsupported locale")

// IsSupported reports whether a language has generated translations.
func IsSupported(language string) bool {
	switch language {
	case «languages»:
		return true
	}

	return false
}

// Lookup resolves a language and optional region to its translations.
//
// An exact (language, region) match wins; a known language with an
// unknown or empty region falls back to the language default; an unknown
// language fails with ErrUnsupportedLocale.
func Lookup(language, region string) («interface», error) {
	switch language {
«arms»	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, language)
}
`

// dispatcherUnit renders the aggregate unit: the accessor interface, the
// locale-holding base, the supported-locale enumeration, and the
// two-phase lookup.
func dispatcherUnit(pkg string, template *catalog.Set, accessors map[string]string, table *Table) ([]byte, error) {
	var ifaceMembers strings.Builder

	if keys := template.Keys(); len(keys) > 0 {
		ifaceMembers.WriteString("\n")

		for _, key := range keys {
			fmt.Fprintf(&ifaceMembers, "\t%s() string\n", accessors[key])
		}
	}

	var supported strings.Builder

	for _, loc := range table.Supported() {
		fmt.Fprintf(&supported, "\t%q,\n", loc)
	}

	quoted := make([]string, 0, len(table.groups))
	for _, g := range table.groups {
		quoted = append(quoted, strconv.Quote(g.Language))
	}

	var arms strings.Builder

	for _, g := range table.groups {
		fmt.Fprintf(&arms, "\tcase %q:\n", g.Language)

		if len(g.Regions) > 0 {
			arms.WriteString("\t\tswitch region {\n")

			for _, id := range g.VariantIDs() {
				fmt.Fprintf(&arms, "\t\tcase %q:\n\t\t\treturn %s(), nil\n", id.Region, ConstructorName(id))
			}

			arms.WriteString("\t\t}\n\n")
		}

		fmt.Fprintf(&arms, "\t\treturn %s(), nil\n", ConstructorName(g.DefaultID()))
	}

	src, err := renderSkeleton(dispatcherSkeleton, map[string]string{
		"header":    generatedHeader,
		"package":   pkg,
		"interface": interfaceName,
		"base":      baseName,
		"accessors": ifaceMembers.String(),
		"supported": supported.String(),
		"languages": strings.Join(quoted, ", "),
		"arms":      arms.String(),
	})
	if err != nil {
		return nil, err
	}

	return finish(aggregateFileName, []byte(src))
}
