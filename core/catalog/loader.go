// Copyright 2024 - 2025, the localegen contributors
// SPDX-License-Identifier: AGPL-3.0-only

package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/leonelquinteros/gotext"
	"github.com/tidwall/gjson"

	"codeberg.org/localegen/localegen/core/locale"
)

// ErrDuplicateLocale marks two input files that canonicalise to the same
// locale, for example "en-US.json" next to "en_US.yaml".
var ErrDuplicateLocale = errors.New("duplicate locale")

// LoadDir reads every translation file in dir into a [Set].
//
// Files are recognised by extension: .json, .yaml, .yml, and .po; anything
// else is ignored. Each file name must parse as a locale identifier, its
// content must be a flat key-to-string mapping, and no two files may
// canonicalise to the same locale. Any violation fails the whole load.
//
// The returned sets are sorted by canonical locale string.
func LoadDir(reg *locale.Registry, dir string) ([]*Set, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var sets []*Set

	byID := make(map[string]*Set)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		switch ext {
		case ".json", ".yaml", ".yml", ".po":
		default:
			continue
		}

		path := filepath.Join(dir, entry.Name())

		id, err := reg.ParseFile(path)
		if err != nil {
			return nil, err
		}

		if prev, ok := byID[id.String()]; ok {
			return nil, fmt.Errorf("%w: %s and %s both define %s", ErrDuplicateLocale, prev.Path, path, id)
		}

		set, err := loadFile(id, path, ext)
		if err != nil {
			return nil, err
		}

		byID[id.String()] = set

		sets = append(sets, set)
	}

	sort.Slice(sets, func(i, j int) bool { return sets[i].ID.String() < sets[j].ID.String() })

	return sets, nil
}

func loadFile(id locale.ID, path, ext string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read translation file: %w", err)
	}

	set := NewSet(id, path)

	switch ext {
	case ".json":
		err = parseJSON(data, set)
	case ".yaml", ".yml":
		err = parseYAML(data, set)
	case ".po":
		err = parsePO(data, set)
	}

	if err != nil {
		return nil, fmt.Errorf("file %s: %w", path, err)
	}

	return set, nil
}

// parseJSON fills set from a flat JSON object, preserving document order.
func parseJSON(data []byte, set *Set) error {
	if !gjson.ValidBytes(data) {
		return errors.New("malformed JSON")
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return errors.New("top-level JSON value is not an object")
	}

	var addErr error

	root.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.String {
			addErr = fmt.Errorf("value for key %q is not a string", key.String())

			return false
		}

		addErr = set.Add(key.String(), value.String())

		return addErr == nil
	})

	return addErr
}

// parseYAML fills set from a flat YAML mapping, preserving document order.
func parseYAML(data []byte, set *Set) error {
	var doc yaml.MapSlice
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("malformed YAML: %w", err)
	}

	for _, item := range doc {
		key, ok := item.Key.(string)
		if !ok {
			return fmt.Errorf("key %v is not a string", item.Key)
		}

		value, ok := item.Value.(string)
		if !ok {
			return fmt.Errorf("value for key %q is not a string", key)
		}

		if err := set.Add(key, value); err != nil {
			return err
		}
	}

	return nil
}

// parsePO fills set from a gettext catalogue.
//
// The catalogue header and untranslated entries are skipped; an
// untranslated msgid resolves through the generated hierarchy instead.
// PO files carry no meaningful declaration order, so keys are sorted.
func parsePO(data []byte, set *Set) error {
	po := gotext.NewPo()
	po.Parse(data)

	entries := po.GetDomain().GetTranslations()

	keys := make([]string, 0, len(entries))

	for msgid := range entries {
		if msgid == "" {
			continue
		}

		keys = append(keys, msgid)
	}

	sort.Strings(keys)

	for _, msgid := range keys {
		msgstr, ok := entries[msgid].Trs[0]
		if !ok || msgstr == "" {
			continue
		}

		if err := set.Add(msgid, msgstr); err != nil {
			return err
		}
	}

	return nil
}
