// Copyright 2026 The Pyprune Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pyprune/internal/config"
	"pyprune/internal/gitstate"
	"pyprune/internal/pyflakes"
	"pyprune/internal/rewrite"
)

// Clean-specific flag values.
var (
	cleanCommit bool
	cleanForce  bool
	cleanLinter string
)

// newScanner builds the diagnostic source for a linter command.
// Override in tests to avoid requiring a real pyflakes binary.
var newScanner = func(linter string) pyflakes.Scanner {
	return pyflakes.NewRunner(linter)
}

// isDirty reports uncommitted changes in the scan root's worktree.
// Override in tests.
var isDirty = gitstate.IsDirty

// cleanCmd is the subcommand that removes unused imports.
var cleanCmd = &cobra.Command{
	Use:   "clean [path]",
	Short: "Remove unused imports under a directory",
	Long: `Run the linter over the given directory (default ".") and rewrite every
file with unused imports. Without --commit this is a dry run: the rewrites are
computed and reported but nothing is written to disk.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVar(&cleanCommit, "commit", false, "write changes to disk (default: dry run)")
	cleanCmd.Flags().BoolVar(&cleanForce, "force", false, "commit even when the git worktree has uncommitted changes")
	cleanCmd.Flags().StringVar(&cleanLinter, "linter", "", "diagnostic command to run (default: pyflakes)")
}

func runClean(cmd *cobra.Command, args []string) error {
	base := "."
	if len(args) > 0 {
		base = args[0]
	}

	absPath, err := cmdFS.Abs(base)
	if err != nil {
		return exitError(ExitInvalidArgs, "pyprune: bad path %q (%v)", base, err)
	}
	info, err := cmdFS.Stat(absPath)
	if err != nil {
		return exitError(ExitInvalidArgs, "pyprune: cannot access %s (%v)", absPath, err)
	}
	if !info.IsDir() {
		return exitError(ExitInvalidArgs, "pyprune: %s is not a directory", absPath)
	}

	cfg, err := config.Load(absPath)
	if err != nil {
		return exitError(ExitInvalidArgs, "pyprune: bad %s (%v)", config.FileName, err)
	}
	linter := cleanLinter
	if linter == "" {
		linter = cfg.Linter
	}

	if cleanCommit && !cleanForce {
		dirty, err := isDirty(absPath)
		if err != nil {
			return exitError(ExitInvalidArgs, "pyprune: git status check failed (%v)", err)
		}
		if dirty {
			return exitError(ExitInvalidArgs,
				"pyprune: worktree has uncommitted changes, refusing to rewrite (use --force to override)")
		}
	}

	slog.Info("scanning for unused imports", "path", absPath, "commit", cleanCommit)
	raw, err := newScanner(linter).Scan(cmd.Context(), absPath)
	if err != nil {
		return exitError(ExitTotalFailure, "pyprune: scan failed (%v)", err)
	}
	diags, err := pyflakes.ParseAll(raw)
	if err != nil {
		return exitError(ExitTotalFailure, "pyprune: %v", err)
	}

	cleaner := &rewrite.Cleaner{FS: cmdFS, Commit: cleanCommit, Exclude: cfg.Exclude}
	results := cleaner.Run(diags)

	printSummary(cmd, results, cleanCommit)
	return exitError(summaryExitCode(results), "")
}

// summaryExitCode maps per-file outcomes to a process exit code: all failed
// is a total failure, some failed is partial, otherwise success.
func summaryExitCode(results []Result) int {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	switch {
	case failed == 0:
		return ExitOK
	case failed == len(results):
		return ExitTotalFailure
	default:
		return ExitPartialFailure
	}
}

// Result aliases the rewrite package's per-file outcome for summary helpers.
type Result = rewrite.Result

// printSummary writes the human-facing run summary to the command's stdout.
func printSummary(cmd *cobra.Command, results []Result, committed bool) {
	out := cmd.OutOrStdout()
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed)

	var changed, skipped, failed, removed int
	for _, r := range results {
		switch {
		case r.Err != nil:
			failed++
			red.Fprintf(out, "failed   %s (%v)\n", r.Path, r.Err) //nolint:errcheck // terminal output
		case r.Skipped:
			skipped++
			yellow.Fprintf(out, "skipped  %s\n", r.Path) //nolint:errcheck // terminal output
		case r.Changed:
			changed++
			removed += r.LinesRemoved
			green.Fprintf(out, "cleaned  %s (%d lines removed)\n", r.Path, r.LinesRemoved) //nolint:errcheck // terminal output
		}
	}

	if len(results) == 0 {
		fmt.Fprintln(out, "no unused imports found")
		return
	}
	fmt.Fprintf(out, "\n%d cleaned, %d skipped, %d failed, %d lines removed\n",
		changed, skipped, failed, removed)
	if !committed {
		fmt.Fprintln(out, "dry run: no files were written (re-run with --commit)")
	}
}

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. If msg is empty, the error message is
// derived from the exit code.
func exitError(code int, format string, args ...any) error {
	if code == ExitOK {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		switch code {
		case ExitPartialFailure:
			msg = "pyprune: some files failed"
		case ExitTotalFailure:
			msg = "pyprune: all files failed"
		default:
			msg = "pyprune: error"
		}
	}
	return &exitCodeError{code: code, msg: msg}
}
