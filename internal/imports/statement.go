// Copyright 2026 The Pyprune Authors
// SPDX-License-Identifier: MIT

// Package imports classifies Python import statements by their textual shape,
// measures the lines they span, and rebuilds them with a subset of their
// symbols. It works on raw line patterns, not an AST: a statement is whatever
// the four recognized shapes say it is, and anything else is left alone.
package imports

import (
	"fmt"
	"regexp"
	"strings"
)

// Shape identifies the textual form of an import statement. It is determined
// once per statement, and each shape's handler receives exactly the lines and
// fields its rewrite path needs.
type Shape int

const (
	// ShapeNone means no recognized import shape; the line is left untouched.
	ShapeNone Shape = iota

	// ShapeSingle is a one-line statement importing exactly one symbol.
	ShapeSingle

	// ShapeComma is a one-line statement with comma-separated symbols.
	ShapeComma

	// ShapeParen is a parenthesized block spanning multiple lines.
	ShapeParen

	// ShapeBackslash is a statement continued across lines with backslashes.
	ShapeBackslash
)

// basePattern captures leading indentation and an optional "from <module> "
// prefix ahead of the import keyword.
var basePattern = regexp.MustCompile(`^(\s*)(from .*)?import .*`)

// Statement holds the pieces of a statement's first line needed to rebuild it:
// its indentation and its "from <module> " prefix (empty for bare imports).
type Statement struct {
	Indent string
	Prefix string
}

// ParseStatement recovers indentation and module prefix from a statement's
// first line. It reports false for lines that do not look like an import.
func ParseStatement(line string) (Statement, bool) {
	m := basePattern.FindStringSubmatch(line)
	if m == nil {
		return Statement{}, false
	}
	return Statement{Indent: m[1], Prefix: m[2]}, true
}

// Classify determines the shape of the statement starting at line. The symbol
// is the unused import reported for that line; it is only consulted for the
// strict single-import match, where the line must import exactly that symbol.
func Classify(line, symbol string) Shape {
	switch {
	case strings.Contains(line, ","):
		if strings.Contains(line, `\`) {
			return ShapeBackslash
		}
		return ShapeComma
	case strings.HasSuffix(line, "(\n"):
		return ShapeParen
	case singleImportOf(line, symbol):
		return ShapeSingle
	}
	return ShapeNone
}

// singleImportOf reports whether line is a one-line import of exactly the
// given symbol, optionally via an "as" alias.
func singleImportOf(line, symbol string) bool {
	if symbol == "" {
		return false
	}
	pattern := fmt.Sprintf(`^(from .*)?import (.*as\s)?%s$`, regexp.QuoteMeta(symbol))
	matched, err := regexp.MatchString(pattern, strings.TrimSpace(line))
	return err == nil && matched
}
