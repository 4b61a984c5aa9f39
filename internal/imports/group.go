// Copyright 2026 The Pyprune Authors
// SPDX-License-Identifier: MIT

package imports

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrUnterminatedBlock indicates a multi-line import statement whose
// terminator (closing paren or final non-continued line) was never found
// before the end of the file.
var ErrUnterminatedBlock = errors.New("unterminated import block")

// continuationChars matches whitespace and backslash continuation characters.
var continuationChars = regexp.MustCompile(`[\\\s]`)

// cleanLine strips all whitespace and continuation backslashes so a continued
// first line can be split like a plain one.
func cleanLine(line string) string {
	return continuationChars.ReplaceAllString(line, "")
}

// SplitImports extracts the symbols from a one-line import statement by
// splitting its trailing clause on commas. Whitespace is trimmed and empty
// fragments dropped, so trailing commas are harmless.
func SplitImports(line string) []string {
	_, clause, _ := strings.Cut(line, "import")
	var symbols []string
	for _, part := range strings.Split(clause, ",") {
		if s := strings.TrimSpace(part); s != "" {
			symbols = append(symbols, s)
		}
	}
	return symbols
}

// GroupParenthesized measures a parenthesized import block starting at start.
// Each line after the opening contributes one symbol (comma stripped, present
// or not) until a line holding only the closing paren, whose index is
// returned as the inclusive end of the span.
func GroupParenthesized(lines []string, start int) ([]string, int, error) {
	var group []string
	for i := start + 1; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == ")" {
			return group, i, nil
		}
		group = append(group, strings.Trim(trimmed, ","))
	}
	return nil, 0, fmt.Errorf("%w: no closing paren after line %d", ErrUnterminatedBlock, start+1)
}

// GroupContinued measures a backslash-continued import statement starting at
// start. The first line's symbols are extracted immediately; each
// continuation line contributes its comma-stripped content until a line with
// no trailing backslash, which is consumed as the final line of the span.
func GroupContinued(lines []string, start int) ([]string, int, error) {
	group := SplitImports(cleanLine(lines[start]))
	for i := start + 1; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if !strings.Contains(trimmed, `\`) {
			group = append(group, strings.Trim(trimmed, ","))
			return group, i, nil
		}
		group = append(group, strings.Trim(cleanLine(trimmed), ","))
	}
	return nil, 0, fmt.Errorf("%w: no uncontinued line after line %d", ErrUnterminatedBlock, start+1)
}
