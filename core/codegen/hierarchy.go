// Copyright 2024 - 2025, the localegen contributors
// SPDX-License-Identifier: AGPL-3.0-only

package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"codeberg.org/localegen/localegen/core/catalog"
	"codeberg.org/localegen/localegen/core/locale"
	"codeberg.org/localegen/localegen/core/resolve"
)

// Member is one translation key rendered as an accessor method.
type Member struct {
	Key      string // key as declared in the translation file
	Accessor string // method name derived from the key
	Value    string // translated string, unquoted
}

// Class models one generated type before rendering.
//
// A language default embeds the locale-holding base and carries the full
// key set; a region variant embeds its language default and carries only
// the keys it overrides. Keys a variant leaves out resolve through Go
// method promotion, which is what makes the override sparse.
type Class struct {
	Name    string
	Parent  string // embedded type: the base for defaults, the default type for variants
	ID      locale.ID
	Members []Member
}

const defaultClassSkeleton = `// «type» carries the "«locale»" translations.
type «type» struct {
	«parent»
}

// «ctor» returns the "«locale»" translations. The optional localeID
// overrides the identifier reported by Locale and defaults to "«locale»".
func «ctor»(localeID ...string) *«type» {
	id := "«locale»"
	if len(localeID) > 0 {
		id = localeID[0]
	}

	return &«type»{«parent»: «parent»{locale: id}}
}
`

const variantClassSkeleton = `// «type» carries the "«locale»" translations. Keys it does not override
// resolve through «parent».
type «type» struct {
	«parent»
}

// «ctor» returns the "«locale»" translations.
func «ctor»() *«type» {
	return &«type»{«parent»: *«parentCtor»("«locale»")}
}
`

const memberSkeleton = `func (m *«type») «accessor»() string {
	return «value»
}
`

// classesFor models the generated types of one language group: the
// language default first, then its region variants in region order.
func classesFor(group resolve.Group, sets map[string]*catalog.Set, accessors map[string]string) ([]Class, error) {
	defaultID := group.DefaultID()

	defaultSet, ok := sets[defaultID.String()]
	if !ok {
		return nil, fmt.Errorf("no translation set for %s", defaultID)
	}

	defaultMembers, err := membersOf(defaultSet, accessors)
	if err != nil {
		return nil, err
	}

	defaultClass := Class{
		Name:    TypeName(defaultID),
		Parent:  baseName,
		ID:      defaultID,
		Members: defaultMembers,
	}

	classes := []Class{defaultClass}

	for _, id := range group.VariantIDs() {
		set, ok := sets[id.String()]
		if !ok {
			return nil, fmt.Errorf("no translation set for %s", id)
		}

		members, err := membersOf(set, accessors)
		if err != nil {
			return nil, err
		}

		classes = append(classes, Class{
			Name:    TypeName(id),
			Parent:  defaultClass.Name,
			ID:      id,
			Members: members,
		})
	}

	return classes, nil
}

// membersOf renders a set's keys as members, in the set's own declaration
// order.
func membersOf(set *catalog.Set, accessors map[string]string) ([]Member, error) {
	members := make([]Member, 0, set.Len())

	for _, key := range set.Keys() {
		accessor, ok := accessors[key]
		if !ok {
			return nil, fmt.Errorf("no accessor for key %q in %s", key, set.Path)
		}

		value, _ := set.Value(key)

		members = append(members, Member{Key: key, Accessor: accessor, Value: value})
	}

	return members, nil
}

func renderClass(c Class) (string, error) {
	skel := variantClassSkeleton

	slots := map[string]string{
		"type":   c.Name,
		"ctor":   "New" + c.Name,
		"parent": c.Parent,
		"locale": c.ID.String(),
	}

	if c.Parent == baseName {
		skel = defaultClassSkeleton
	} else {
		slots["parentCtor"] = "New" + c.Parent
	}

	head, err := renderSkeleton(skel, slots)
	if err != nil {
		return "", err
	}

	var b strings.Builder

	b.WriteString(head)

	for _, m := range c.Members {
		method, err := renderSkeleton(memberSkeleton, map[string]string{
			"type":     c.Name,
			"accessor": m.Accessor,
			"value":    strconv.Quote(m.Value),
		})
		if err != nil {
			return "", err
		}

		b.WriteString("\n")
		b.WriteString(method)
	}

	return b.String(), nil
}

// languageUnit renders one generated source file for a language group,
// finishing with an interface assertion per class so the emitted package
// can never silently drift from the accessor contract.
func languageUnit(pkg string, group resolve.Group, sets map[string]*catalog.Set, accessors map[string]string) ([]byte, error) {
	classes, err := classesFor(group, sets, accessors)
	if err != nil {
		return nil, err
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\npackage %s\n", generatedHeader, pkg)

	for _, c := range classes {
		text, err := renderClass(c)
		if err != nil {
			return nil, err
		}

		b.WriteString("\n")
		b.WriteString(text)
	}

	b.WriteString("\n")
	writeAssertions(&b, classes)

	return finish(languageFileName(group.Language), []byte(b.String()))
}

func writeAssertions(b *strings.Builder, classes []Class) {
	if len(classes) == 1 {
		fmt.Fprintf(b, "var _ %s = (*%s)(nil)\n", interfaceName, classes[0].Name)

		return
	}

	b.WriteString("var (\n")

	for _, c := range classes {
		fmt.Fprintf(b, "\t_ %s = (*%s)(nil)\n", interfaceName, c.Name)
	}

	b.WriteString(")\n")
}
