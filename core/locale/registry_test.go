// Copyright 2024 - 2025, the localegen contributors
// SPDX-License-Identifier: AGPL-3.0-only

package locale

import (
	"sort"
	"testing"
)

func TestLoadRegistry(t *testing.T) {
	t.Parallel()

	reg, err := LoadRegistry()
	if err != nil {
		t.Fatalf("LoadRegistry() error = %v", err)
	}

	if name, ok := reg.LanguageName("en"); !ok || name != "English" {
		t.Errorf("LanguageName(en) = %q, %v, want English, true", name, ok)
	}

	if name, ok := reg.RegionName("US"); !ok || name != "United States" {
		t.Errorf("RegionName(US) = %q, %v, want United States, true", name, ok)
	}

	if _, ok := reg.LanguageName("EN"); ok {
		t.Error("LanguageName(EN) matched a non-canonical code")
	}

	if _, ok := reg.RegionName("us"); ok {
		t.Error("RegionName(us) matched a non-canonical code")
	}
}

func TestRegistryListings(t *testing.T) {
	t.Parallel()

	reg := mustRegistry(t)

	languages := reg.Languages()
	if !sort.StringsAreSorted(languages) {
		t.Error("Languages() is not sorted")
	}

	regions := reg.Regions()
	if !sort.StringsAreSorted(regions) {
		t.Error("Regions() is not sorted")
	}

	// The YAML keyword entries must survive decoding as plain strings.
	if _, ok := reg.LanguageName("no"); !ok {
		t.Error(`LanguageName(no) missing; language table lost a YAML keyword key`)
	}

	if _, ok := reg.RegionName("NO"); !ok {
		t.Error(`RegionName(NO) missing; region table lost a YAML keyword key`)
	}

	// Mutating a returned listing must not affect the registry.
	languages[0] = "zz"
	if got := reg.Languages()[0]; got == "zz" {
		t.Error("Languages() returned a shared slice")
	}
}
