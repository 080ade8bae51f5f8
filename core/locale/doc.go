// Copyright 2024 - 2025, the localegen contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package locale parses and canonicalises locale identifiers of the form
"language" or "language-REGION".

Identifiers are validated against embedded reference tables of ISO 639-1
language codes and ISO 3166-1 alpha-2 region codes. Load the tables once
with [LoadRegistry] and parse with [Registry.Parse] or [Registry.ParseFile]:

	reg, err := locale.LoadRegistry()
	...
	id, err := reg.Parse("pt_br")   // ID{Language: "pt", Region: "BR"}
	id, err = reg.ParseFile("locale-input/en_US.yaml")

Canonical form is a lowercase language subtag, optionally followed by a
hyphen and an uppercase region subtag. Hyphens and underscores are accepted
interchangeably on input, and a POSIX charset suffix such as ".UTF-8" is
ignored. Script and variant subtags are not supported.
*/
package locale
