// Copyright 2026 The Pyprune Authors
// SPDX-License-Identifier: MIT

// Package rewrite applies unused-import diagnostics to files: it groups
// diagnostics by file and line, walks each file's edits in ascending line
// order while tracking the net line-count drift from earlier edits, and
// optionally commits the rewritten buffer back to disk.
package rewrite

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"pyprune/internal/imports"
	"pyprune/internal/pyflakes"
	"pyprune/internal/testable"
)

// AggregatorFile is the package-initialization filename whose imports are
// conventionally re-exports. Files ending in it are never rewritten.
const AggregatorFile = "__init__.py"

// Edit is one statement-level change: the statement's original 1-based line
// number and every symbol reported unused on it.
type Edit struct {
	Line    int
	Symbols []string
}

// Result reports the outcome of processing one file.
type Result struct {
	Path         string
	Skipped      bool     // aggregator or excluded file, untouched
	Changed      bool     // buffer differs from the original contents
	LinesRemoved int      // net line-count reduction
	Lines        []string // rewritten buffer, kept for inspection on dry runs
	Err          error
}

// Cleaner rewrites files based on linter diagnostics.
type Cleaner struct {
	// FS is the file system implementation. Override in tests with a
	// testable.MockFileSystem.
	FS testable.FileSystem

	// Commit writes rewritten buffers back to disk. When false the edits
	// stay in memory and are only reported.
	Commit bool

	// Exclude holds glob patterns (matched against the file's base name and
	// its full path) that are skipped in addition to the aggregator rule.
	Exclude []string
}

// NewCleaner returns a Cleaner backed by the real file system.
func NewCleaner(commit bool) *Cleaner {
	return &Cleaner{FS: testable.DefaultFS, Commit: commit}
}

// Run groups diagnostics by file and processes each file in path order. One
// file's failure is recorded in its Result and does not stop the run.
func (c *Cleaner) Run(diags []pyflakes.Diagnostic) []Result {
	byFile := GroupDiagnostics(diags)
	paths := make([]string, 0, len(byFile))
	for path := range byFile {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	results := make([]Result, 0, len(paths))
	for _, path := range paths {
		results = append(results, c.CleanFile(path, byFile[path]))
	}
	return results
}

// CleanFile applies all diagnostics for one file and, when committing,
// overwrites the file with the rewritten buffer.
func (c *Cleaner) CleanFile(path string, diags []pyflakes.Diagnostic) Result {
	if strings.HasSuffix(path, AggregatorFile) {
		slog.Info("ignoring aggregator file", "path", path)
		return Result{Path: path, Skipped: true}
	}
	if c.excluded(path) {
		slog.Info("ignoring excluded file", "path", path)
		return Result{Path: path, Skipped: true}
	}

	slog.Info("removing unused imports from file", "path", path)
	data, err := c.FS.ReadFile(path)
	if err != nil {
		return Result{Path: path, Err: err}
	}

	lines := SplitLines(string(data))
	cleaned, removed, err := CleanLines(lines, EditsByLine(diags))
	if err != nil {
		return Result{Path: path, Err: fmt.Errorf("%s: %w", path, err)}
	}

	res := Result{
		Path:         path,
		Changed:      strings.Join(cleaned, "") != string(data),
		LinesRemoved: removed,
		Lines:        cleaned,
	}
	if c.Commit && res.Changed {
		if err := c.FS.WriteFile(path, []byte(strings.Join(cleaned, "")), 0o644); err != nil {
			res.Err = err
		}
	}
	return res
}

func (c *Cleaner) excluded(path string) bool {
	for _, pattern := range c.Exclude {
		if ok, _ := filepath.Match(pattern, filepath.Base(path)); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, path); ok {
			return true
		}
	}
	return false
}

// GroupDiagnostics buckets diagnostics by file path.
func GroupDiagnostics(diags []pyflakes.Diagnostic) map[string][]pyflakes.Diagnostic {
	byFile := make(map[string][]pyflakes.Diagnostic)
	for _, d := range diags {
		byFile[d.Path] = append(byFile[d.Path], d)
	}
	return byFile
}

// EditsByLine merges diagnostics that target the same line (one statement can
// lose several symbols) and returns the edits sorted by ascending line
// number, the order offset tracking depends on.
func EditsByLine(diags []pyflakes.Diagnostic) []Edit {
	byLine := make(map[int][]string)
	for _, d := range diags {
		byLine[d.Line] = append(byLine[d.Line], d.Symbol)
	}
	edits := make([]Edit, 0, len(byLine))
	for line, symbols := range byLine {
		edits = append(edits, Edit{Line: line, Symbols: symbols})
	}
	sort.Slice(edits, func(i, j int) bool { return edits[i].Line < edits[j].Line })
	return edits
}

// CleanLines applies edits to a line buffer, returning the rewritten buffer
// and the net number of lines removed. The running offset that translates
// original line numbers into current buffer indices is threaded through each
// edit explicitly rather than shared as mutable state.
func CleanLines(lines []string, edits []Edit) ([]string, int, error) {
	offset := 0
	for _, e := range edits {
		var err error
		lines, offset, err = applyEdit(lines, e, offset)
		if err != nil {
			return nil, 0, err
		}
	}
	return lines, offset, nil
}

// applyEdit rewrites the statement targeted by one edit and returns the new
// buffer and offset. An unrecognized statement shape is a deliberate no-op:
// unusual formatting is left untouched rather than risking a bad rewrite.
func applyEdit(lines []string, e Edit, offset int) ([]string, int, error) {
	idx := e.Line - 1 - offset
	if idx < 0 || idx >= len(lines) {
		return nil, 0, fmt.Errorf("diagnostic line %d outside file of %d lines", e.Line, len(lines)+offset)
	}
	first := lines[idx]

	symbol := ""
	if len(e.Symbols) > 0 {
		symbol = e.Symbols[0]
	}

	switch imports.Classify(first, symbol) {
	case imports.ShapeSingle:
		return splice(lines, idx, idx, nil), offset + 1, nil

	case imports.ShapeComma:
		stmt, ok := imports.ParseStatement(first)
		if !ok {
			return nil, 0, fmt.Errorf("line %d is not an import statement: %q", e.Line, first)
		}
		replacement := imports.Rewrite(stmt, imports.SplitImports(first), e.Symbols)
		return splice(lines, idx, idx, replacement), offset + 1 - len(replacement), nil

	case imports.ShapeBackslash:
		return applySpanEdit(lines, e, idx, offset, imports.GroupContinued)

	case imports.ShapeParen:
		return applySpanEdit(lines, e, idx, offset, imports.GroupParenthesized)
	}

	slog.Debug("unrecognized import shape, leaving line untouched", "line", e.Line)
	return lines, offset, nil
}

// applySpanEdit handles the two multi-line shapes, which differ only in how
// their span and symbol set are measured.
func applySpanEdit(
	lines []string,
	e Edit,
	idx, offset int,
	group func([]string, int) ([]string, int, error),
) ([]string, int, error) {
	all, end, err := group(lines, idx)
	if err != nil {
		return nil, 0, err
	}
	stmt, ok := imports.ParseStatement(lines[idx])
	if !ok {
		return nil, 0, fmt.Errorf("line %d is not an import statement: %q", e.Line, lines[idx])
	}
	replacement := imports.Rewrite(stmt, all, e.Symbols)
	span := end - idx + 1
	return splice(lines, idx, end, replacement), offset + span - len(replacement), nil
}

// splice replaces lines[start..end] (inclusive) with replacement.
func splice(lines []string, start, end int, replacement []string) []string {
	out := make([]string, 0, len(lines)-(end-start+1)+len(replacement))
	out = append(out, lines[:start]...)
	out = append(out, replacement...)
	out = append(out, lines[end+1:]...)
	return out
}

// SplitLines splits file contents into lines, preserving each line's
// terminator so a rewritten buffer reproduces the original byte-for-byte
// where it was not edited.
func SplitLines(s string) []string {
	var lines []string
	for len(s) > 0 {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			lines = append(lines, s)
			break
		}
		lines = append(lines, s[:i+1])
		s = s[i+1:]
	}
	return lines
}
