// Copyright 2026 The Pyprune Authors
// SPDX-License-Identifier: MIT

// Package gitstate inspects the git status of a scan root before pyprune
// commits rewrites into it. Overwriting files in a dirty checkout mixes the
// tool's edits with the user's uncommitted work, so the clean command refuses
// that by default.
package gitstate

import (
	"errors"

	git "github.com/go-git/go-git/v5"
)

// IsDirty reports whether path sits inside a git worktree with uncommitted
// changes (staged, unstaged, or untracked). A path outside any git repository
// is reported clean: there is no history there for a rewrite to tangle with.
func IsDirty(path string) (bool, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return false, nil
		}
		return false, err
	}

	wt, err := repo.Worktree()
	if err != nil {
		return false, err
	}
	status, err := wt.Status()
	if err != nil {
		return false, err
	}
	return !status.IsClean(), nil
}
