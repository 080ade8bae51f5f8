// Copyright 2024 - 2025, the localegen contributors
// SPDX-License-Identifier: AGPL-3.0-only

package codegen

import (
	"fmt"
	"regexp"
	"strings"
)

// slotPattern matches the «name» markers in source skeletons. The
// guillemets cannot appear in Go identifiers or in the quoted literals
// substituted in, so a marker is never produced by accident.
var slotPattern = regexp.MustCompile(`«([A-Za-z]+)»`)

// renderSkeleton substitutes slot values into a source skeleton.
//
// Every «name» marker in the skeleton must have a value; a marker without
// one means the skeleton and its call site disagree, and rendering fails.
// Substitution is a single non-overlapping pass, so slot values are never
// rescanned for markers.
func renderSkeleton(skel string, slots map[string]string) (string, error) {
	for _, m := range slotPattern.FindAllStringSubmatch(skel, -1) {
		if _, ok := slots[m[1]]; !ok {
			return "", fmt.Errorf("skeleton slot %q has no value", m[1])
		}
	}

	oldnew := make([]string, 0, len(slots)*2)
	for name, value := range slots {
		oldnew = append(oldnew, "«"+name+"»", value)
	}

	return strings.NewReplacer(oldnew...).Replace(skel), nil
}
