// Package vcs locates the repository that daggy operates on.
package vcs

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"

	oerrors "github.com/daggerx/daggy/internal/errors"
)

// FindRoot returns the root of the git worktree containing start, searching
// parent directories. A missing repository wraps errors.ErrNotFound.
func FindRoot(start string) (string, error) {
	repo, err := git.PlainOpenWithOptions(start, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", oerrors.NewNotFoundError(
				"not inside a git repository",
				start,
				"Run daggy from within the daggerverse repository, or run 'git init' first.",
			)
		}
		return "", fmt.Errorf("opening repository at %s: %w", start, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("resolving worktree for %s: %w", start, err)
	}

	return wt.Filesystem.Root(), nil
}
