// Copyright 2026 The Pyprune Authors
// SPDX-License-Identifier: MIT

package pyflakes

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"regexp"

	"pyprune/internal/testable"
)

// DefaultLinter is the linter binary invoked when none is configured.
const DefaultLinter = "pyflakes"

// unusedImportPattern keeps only the findings this tool acts on; everything
// else the linter reports (redefinitions, undefined names, syntax errors on
// stderr) is ignored.
var unusedImportPattern = regexp.MustCompile(`imported but unused$`)

// Scanner produces raw unused-import diagnostic lines for a directory tree.
// It exists so the linter can be swapped or mocked without touching any
// rewrite logic.
type Scanner interface {
	Scan(ctx context.Context, dir string) ([]string, error)
}

// Runner is the production Scanner. It shells out to a pyflakes-compatible
// linter, spools the report to a temporary file, and filters it down to
// unused-import lines.
type Runner struct {
	// Linter is the binary to execute. Defaults to DefaultLinter when empty.
	Linter string

	// Exec is the command executor. Override in tests with a
	// testable.MockCommandExecutor.
	Exec testable.CommandExecutor
}

// NewRunner returns a Runner invoking the given linter binary.
func NewRunner(linter string) *Runner {
	if linter == "" {
		linter = DefaultLinter
	}
	return &Runner{Linter: linter, Exec: testable.DefaultExecutor()}
}

// Scan runs the linter recursively over dir and returns the raw diagnostic
// lines that match the unused-import pattern. The linter's report is captured
// in a temporary file which is removed before Scan returns, on every path.
//
// A non-zero linter exit status is the normal "findings exist" outcome for
// pyflakes and is not treated as a failure; only a binary that cannot be
// found or started fails the scan.
func (r *Runner) Scan(ctx context.Context, dir string) ([]string, error) {
	if _, err := r.Exec.LookPath(r.Linter); err != nil {
		return nil, fmt.Errorf("linter %q not found in PATH: %w", r.Linter, err)
	}

	report, err := os.CreateTemp("", "pyprune-*.report")
	if err != nil {
		return nil, fmt.Errorf("create report file: %w", err)
	}
	defer func() {
		report.Close()           //nolint:errcheck // read side already consumed
		os.Remove(report.Name()) //nolint:errcheck // best-effort cleanup
	}()

	cmd := r.Exec.CommandContext(ctx, r.Linter, dir)
	var stderr bytes.Buffer
	cmd.Stdout = report
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("run %s: %w", r.Linter, err)
		}
		// pyflakes exits 1 whenever it reported anything.
		if stderr.Len() > 0 {
			slog.Warn("linter reported errors", "linter", r.Linter, "stderr", stderr.String())
		}
	}

	if _, err := report.Seek(0, 0); err != nil {
		return nil, fmt.Errorf("rewind report file: %w", err)
	}

	var lines []string
	sc := bufio.NewScanner(report)
	for sc.Scan() {
		if unusedImportPattern.MatchString(sc.Text()) {
			lines = append(lines, sc.Text())
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read report file: %w", err)
	}
	return lines, nil
}
