// Copyright 2026 The Pyprune Authors
// SPDX-License-Identifier: MIT

// Package pyflakes runs a pyflakes-compatible linter over a directory tree
// and parses its unused-import diagnostics.
package pyflakes

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrMalformedDiagnostic indicates a diagnostic line that does not follow the
// <path>:<line>: <message> format. The linter output format is assumed stable,
// so callers treat this as fatal rather than recoverable input.
var ErrMalformedDiagnostic = errors.New("malformed diagnostic line")

// symbolPattern extracts the quoted symbol name from a diagnostic message
// such as "'chown' imported but unused".
var symbolPattern = regexp.MustCompile(`^'(.*)'.*`)

// Diagnostic is one unused-import finding reported by the linter.
type Diagnostic struct {
	Path   string
	Line   int    // 1-based line number of the import statement
	Symbol string // empty when the message carries no quoted name
}

// ParseDiagnostic parses one raw linter output line of the form
//
//	<path>:<line>: '<symbol>' imported but unused
//
// into a Diagnostic. A message body without a quoted symbol yields a
// Diagnostic with an empty Symbol. A line that does not split into exactly
// three colon-delimited fields, or whose line number is not a positive
// integer, is a malformed diagnostic.
func ParseDiagnostic(raw string) (Diagnostic, error) {
	parts := strings.Split(strings.TrimRight(raw, "\r\n"), ":")
	if len(parts) != 3 {
		return Diagnostic{}, fmt.Errorf("%w: %q", ErrMalformedDiagnostic, raw)
	}

	line, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || line < 1 {
		return Diagnostic{}, fmt.Errorf("%w: bad line number in %q", ErrMalformedDiagnostic, raw)
	}

	d := Diagnostic{Path: parts[0], Line: line}
	if m := symbolPattern.FindStringSubmatch(strings.TrimSpace(parts[2])); m != nil {
		d.Symbol = m[1]
	}
	return d, nil
}

// ParseAll parses every raw diagnostic line, failing on the first malformed one.
func ParseAll(raw []string) ([]Diagnostic, error) {
	diags := make([]Diagnostic, 0, len(raw))
	for _, line := range raw {
		d, err := ParseDiagnostic(line)
		if err != nil {
			return nil, err
		}
		diags = append(diags, d)
	}
	return diags, nil
}
