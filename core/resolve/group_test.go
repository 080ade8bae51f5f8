// Copyright 2024 - 2025, the localegen contributors
// SPDX-License-Identifier: AGPL-3.0-only

package resolve

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"codeberg.org/localegen/localegen/core/locale"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	ids := []locale.ID{
		{Language: "en", Region: "US"},
		{Language: "fr"},
		{Language: "en"},
		{Language: "en", Region: "GB"},
		{Language: "fr", Region: "CA"},
	}

	groups, err := Build(ids)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := []Group{
		{Language: "en", Default: true, Regions: []string{"GB", "US"}},
		{Language: "fr", Default: true, Regions: []string{"CA"}},
	}

	if !reflect.DeepEqual(groups, want) {
		t.Errorf("Build() = %+v, want %+v", groups, want)
	}
}

func TestBuildMissingFallback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ids  []locale.ID
		want string // Substring the diagnostic must carry
	}{
		{
			name: "variants without default",
			ids: []locale.ID{
				{Language: "en"},
				{Language: "fr", Region: "CA"},
			},
			want: `"fr"`,
		},
		{
			name: "multiple variants listed",
			ids: []locale.ID{
				{Language: "en", Region: "GB"},
				{Language: "en", Region: "US"},
			},
			want: "[GB US]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Build(tt.ids)
			if !errors.Is(err, ErrMissingFallback) {
				t.Fatalf("Build() error = %v, want ErrMissingFallback", err)
			}

			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Build() error = %v, want substring %q", err, tt.want)
			}
		})
	}
}

// TestBuildReportsFirstLanguage pins the deterministic failure order:
// with several incomplete groups, the alphabetically first one is reported.
func TestBuildReportsFirstLanguage(t *testing.T) {
	t.Parallel()

	_, err := Build([]locale.ID{
		{Language: "pt", Region: "BR"},
		{Language: "de", Region: "AT"},
	})
	if !errors.Is(err, ErrMissingFallback) {
		t.Fatalf("Build() error = %v, want ErrMissingFallback", err)
	}

	if !strings.Contains(err.Error(), `"de"`) {
		t.Errorf("Build() error = %v, want the de group reported first", err)
	}
}

func TestGroupIDs(t *testing.T) {
	t.Parallel()

	g := Group{Language: "en", Default: true, Regions: []string{"GB", "US"}}

	if got := g.DefaultID(); got != (locale.ID{Language: "en"}) {
		t.Errorf("DefaultID() = %+v", got)
	}

	want := []locale.ID{
		{Language: "en", Region: "GB"},
		{Language: "en", Region: "US"},
	}

	if got := g.VariantIDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("VariantIDs() = %+v, want %+v", got, want)
	}
}
