// Copyright 2024 - 2025, the localegen contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package codegen synthesises Go source from validated translation sets: a
typed accessor hierarchy plus a dispatcher that resolves a requested
locale to the right type at runtime.

The emitted package contains one interface (the accessor contract), one
unexported locale-holding base struct, and one struct per locale. A
language default embeds the base and implements every accessor; a region
variant embeds its language default and overrides only the keys its
translation file declares, relying on method promotion for the rest. The
dispatcher resolves (language, region) in two phases: exact region match
first, language default second.

Units are assembled from slot-marked source skeletons, then formatted and
verified with golang.org/x/tools/imports before they are handed back for
writing.
*/
package codegen

import (
	"codeberg.org/localegen/localegen/core/catalog"
	"codeberg.org/localegen/localegen/core/resolve"
)

// Input carries the validated material Generate renders from.
type Input struct {
	// Package is the Go package name of the emitted units.
	Package string

	// Template is the translation set whose keys define the accessor
	// contract.
	Template *catalog.Set

	// Groups are the validated locale groups, sorted by language.
	Groups []resolve.Group

	// Sets maps canonical locale strings to their translation sets.
	Sets map[string]*catalog.Set
}

// File is one rendered source unit, ready to write.
type File struct {
	Name    string
	Content []byte
}

// Generate renders every source unit: the aggregate unit first, then one
// unit per language in language order.
//
// Generate performs no I/O; callers decide where the files land.
func Generate(in Input) ([]File, error) {
	accessors, err := AccessorNames(in.Template.Keys())
	if err != nil {
		return nil, err
	}

	table := NewTable(in.Groups)

	files := make([]File, 0, len(in.Groups)+1)

	aggregate, err := dispatcherUnit(in.Package, in.Template, accessors, table)
	if err != nil {
		return nil, err
	}

	files = append(files, File{Name: aggregateFileName, Content: aggregate})

	for _, group := range in.Groups {
		content, err := languageUnit(in.Package, group, in.Sets, accessors)
		if err != nil {
			return nil, err
		}

		files = append(files, File{Name: languageFileName(group.Language), Content: content})
	}

	return files, nil
}
