// Copyright 2024 - 2025, the localegen contributors
// SPDX-License-Identifier: AGPL-3.0-only

package codegen

import (
	"bytes"
	"errors"
	"go/format"
	"strings"
	"testing"

	"codeberg.org/localegen/localegen/core/catalog"
	"codeberg.org/localegen/localegen/core/locale"
	"codeberg.org/localegen/localegen/core/resolve"
)

func buildSet(t *testing.T, id locale.ID, pairs [][2]string) *catalog.Set {
	t.Helper()

	set := catalog.NewSet(id, id.String()+".json")

	for _, p := range pairs {
		if err := set.Add(p[0], p[1]); err != nil {
			t.Fatalf("Add(%q) error = %v", p[0], err)
		}
	}

	return set
}

// testInput models the canonical scenario: a template with two keys, a
// region variant overriding one of them, and a second language group.
func testInput(t *testing.T) Input {
	t.Helper()

	en := buildSet(t, locale.ID{Language: "en"}, [][2]string{
		{"greeting_hello", "Hello"},
		{"farewell_bye", "Bye"},
	})
	enUS := buildSet(t, locale.ID{Language: "en", Region: "US"}, [][2]string{
		{"greeting_hello", "Howdy"},
	})
	fr := buildSet(t, locale.ID{Language: "fr"}, [][2]string{
		{"greeting_hello", "Bonjour"},
		{"farewell_bye", "Au revoir"},
	})

	groups, err := resolve.Build([]locale.ID{en.ID, enUS.ID, fr.ID})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	return Input{
		Package:  "messages",
		Template: en,
		Groups:   groups,
		Sets: map[string]*catalog.Set{
			"en":    en,
			"en-US": enUS,
			"fr":    fr,
		},
	}
}

func unitByName(t *testing.T, files []File, name string) string {
	t.Helper()

	for _, f := range files {
		if f.Name == name {
			return string(f.Content)
		}
	}

	t.Fatalf("no unit named %s", name)

	return ""
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	files, err := Generate(testInput(t))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	want := []string{"messages_gen.go", "messages_en_gen.go", "messages_fr_gen.go"}

	if len(files) != len(want) {
		t.Fatalf("Generate() produced %d files, want %d", len(files), len(want))
	}

	for i, name := range want {
		if files[i].Name != name {
			t.Errorf("files[%d].Name = %s, want %s", i, files[i].Name, name)
		}
	}

	// Every unit must carry the generated-code marker and already be in
	// canonical gofmt form.
	for _, f := range files {
		if !strings.HasPrefix(string(f.Content), "// Code generated by localegen. DO NOT EDIT.") {
			t.Errorf("%s does not start with the generated-code marker", f.Name)
		}

		formatted, err := format.Source(f.Content)
		if err != nil {
			t.Fatalf("%s does not parse: %v", f.Name, err)
		}

		if !bytes.Equal(formatted, f.Content) {
			t.Errorf("%s is not gofmt-clean", f.Name)
		}
	}
}

func TestGenerateDispatcherUnit(t *testing.T) {
	t.Parallel()

	files, err := Generate(testInput(t))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	unit := unitByName(t, files, "messages_gen.go")

	for _, probe := range []string{
		"package messages",
		"type Messages interface {",
		"Locale() string",
		"GreetingHello() string",
		"FarewellBye() string",
		"type baseMessages struct {",
		"var SupportedLocales = []string{",
		"\t\"en\",\n\t\"en-US\",\n\t\"fr\",\n",
		`case "en", "fr":`,
		"var ErrUnsupportedLocale = errors.New(\"unsupported locale\")",
		"func Lookup(language, region string) (Messages, error) {",
		"switch region {",
		"return NewMessagesEnUS(), nil",
		"return NewMessagesEn(), nil",
		"return NewMessagesFr(), nil",
		"ErrUnsupportedLocale, language",
	} {
		if !strings.Contains(unit, probe) {
			t.Errorf("dispatcher unit is missing %q", probe)
		}
	}

	// The fr group has no variants, so its arm must not switch on region.
	frArm := unit[strings.Index(unit, `case "fr":`):]
	if strings.Contains(frArm[:strings.Index(frArm, "}")], "switch region") {
		t.Error("fr arm switches on region despite having no variants")
	}
}

func TestGenerateLanguageUnit(t *testing.T) {
	t.Parallel()

	files, err := Generate(testInput(t))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	unit := unitByName(t, files, "messages_en_gen.go")

	for _, probe := range []string{
		"type MessagesEn struct {\n\tbaseMessages\n}",
		"func NewMessagesEn(localeID ...string) *MessagesEn {",
		"id := \"en\"",
		"func (m *MessagesEn) GreetingHello() string {\n\treturn \"Hello\"\n}",
		"func (m *MessagesEn) FarewellBye() string {\n\treturn \"Bye\"\n}",
		"type MessagesEnUS struct {\n\tMessagesEn\n}",
		"func NewMessagesEnUS() *MessagesEnUS {",
		`*NewMessagesEn("en-US")`,
		"func (m *MessagesEnUS) GreetingHello() string {\n\treturn \"Howdy\"\n}",
		"_ Messages = (*MessagesEn)(nil)",
		"_ Messages = (*MessagesEnUS)(nil)",
	} {
		if !strings.Contains(unit, probe) {
			t.Errorf("en unit is missing %q", probe)
		}
	}

	// The variant is sparse: it must override greeting_hello only.
	if got := strings.Count(unit, "func (m *MessagesEnUS)"); got != 1 {
		t.Errorf("en-US declares %d methods, want exactly 1", got)
	}

	// The single-class fr unit uses the plain assertion form.
	frUnit := unitByName(t, files, "messages_fr_gen.go")
	if !strings.Contains(frUnit, "var _ Messages = (*MessagesFr)(nil)") {
		t.Error("fr unit is missing its interface assertion")
	}
}

// TestGenerateQuotesValues verifies translated strings survive quoting:
// quotes, newlines, and non-ASCII text must round-trip through the
// emitted literal.
func TestGenerateQuotesValues(t *testing.T) {
	t.Parallel()

	ja := buildSet(t, locale.ID{Language: "ja"}, [][2]string{
		{"greeting_hello", "こんにちは"},
		{"farewell_bye", "line one\nsaid \"bye\""},
	})

	groups, err := resolve.Build([]locale.ID{ja.ID})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	files, err := Generate(Input{
		Package:  "messages",
		Template: ja,
		Groups:   groups,
		Sets:     map[string]*catalog.Set{"ja": ja},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	unit := unitByName(t, files, "messages_ja_gen.go")

	for _, probe := range []string{
		`return "こんにちは"`,
		`return "line one\nsaid \"bye\""`,
	} {
		if !strings.Contains(unit, probe) {
			t.Errorf("ja unit is missing %q", probe)
		}
	}
}

func TestGenerateRejectsCollidingKeys(t *testing.T) {
	t.Parallel()

	en := buildSet(t, locale.ID{Language: "en"}, [][2]string{
		{"a_b", "one"},
		{"a.b", "two"},
	})

	groups, err := resolve.Build([]locale.ID{en.ID})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	_, err = Generate(Input{
		Package:  "messages",
		Template: en,
		Groups:   groups,
		Sets:     map[string]*catalog.Set{"en": en},
	})
	if !errors.Is(err, ErrBadKey) {
		t.Fatalf("Generate() error = %v, want ErrBadKey", err)
	}
}
