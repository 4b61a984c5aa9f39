// Copyright 2026 The Pyprune Authors
// SPDX-License-Identifier: MIT

package imports

import (
	"sort"
	"strings"
)

// Keep returns the symbols that survive an edit: the set difference of all
// minus unused, sorted alphabetically.
func Keep(all, unused []string) []string {
	drop := make(map[string]struct{}, len(unused))
	for _, s := range unused {
		drop[s] = struct{}{}
	}
	seen := make(map[string]struct{}, len(all))
	var kept []string
	for _, s := range all {
		if _, dropped := drop[s]; dropped {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		kept = append(kept, s)
	}
	sort.Strings(kept)
	return kept
}

// Rewrite produces the replacement lines for a statement reduced to the
// symbols surviving the unused set. Zero survivors drop the statement
// entirely, one survivor collapses to a single line preserving indentation
// and module prefix, and two or more are rebuilt as a canonical parenthesized
// block regardless of the original shape.
func Rewrite(stmt Statement, all, unused []string) []string {
	kept := Keep(all, unused)
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return []string{stmt.Indent + stmt.Prefix + "import " + kept[0] + "\n"}
	default:
		return multilineLines(stmt.Indent, stmt.Prefix, kept)
	}
}

// BuildMultiline renders symbols as a canonical multi-line import statement:
// indented "from <module> import (" opener, one 4-space-nested line per
// symbol in alphabetical order with a trailing comma, and a closing paren.
// A bare import (empty prefix) cannot legally be parenthesized, so it is
// rendered as a single comma-separated line instead.
func BuildMultiline(indent, prefix string, symbols []string) string {
	sorted := make([]string, len(symbols))
	copy(sorted, symbols)
	sort.Strings(sorted)
	return strings.Join(multilineLines(indent, prefix, sorted), "")
}

// multilineLines is BuildMultiline returning physical lines; symbols must
// already be sorted.
func multilineLines(indent, prefix string, symbols []string) []string {
	if prefix == "" {
		// import (
		//     a,
		// )
		// is invalid syntax for a bare import.
		return []string{indent + "import " + strings.Join(symbols, ", ") + "\n"}
	}
	lines := make([]string, 0, len(symbols)+2)
	lines = append(lines, indent+prefix+"import (\n")
	for _, s := range symbols {
		lines = append(lines, indent+"    "+s+",\n")
	}
	lines = append(lines, indent+")\n")
	return lines
}
