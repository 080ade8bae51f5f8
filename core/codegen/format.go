// Copyright 2024 - 2025, the localegen contributors
// SPDX-License-Identifier: AGPL-3.0-only

package codegen

import (
	"fmt"

	"golang.org/x/tools/imports"
)

// generatedHeader is the standard machine-generated marker; tooling that
// honours the convention skips files carrying it.
const generatedHeader = "// Code generated by localegen. DO NOT EDIT."

// aggregateFileName is the unit holding the interface, the base, and the
// dispatcher.
const aggregateFileName = "messages_gen.go"

func languageFileName(lang string) string {
	return "messages_" + lang + "_gen.go"
}

// finish parses, formats, and fixes imports on a rendered unit.
//
// A unit that fails here was mis-rendered; the failure aborts generation
// before anything reaches disk, so a synthesiser bug can never leave a
// syntactically broken file behind.
func finish(name string, src []byte) ([]byte, error) {
	out, err := imports.Process(name, src, nil)
	if err != nil {
		return nil, fmt.Errorf("generated unit %s does not parse: %w", name, err)
	}

	return out, nil
}
