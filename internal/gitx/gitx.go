// Package gitx locates the enclosing git repository and reads its
// user-facing metadata. The toolbox treats the repository root as the
// project root for everything it scaffolds.
package gitx

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	gitcfg "github.com/go-git/go-git/v5/config"
)

// ErrNoRepository indicates no ancestor directory contains a .git directory.
// Callers must handle this before dereferencing the root path.
var ErrNoRepository = errors.New("no git repository found above working directory")

// FindRoot walks upward from dir and returns the root of the enclosing
// git worktree. Bare repositories are treated as absent: the toolbox
// needs a worktree to scaffold into.
func FindRoot(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", ErrNoRepository
		}
		return "", fmt.Errorf("open repository from %s: %w", dir, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, git.ErrIsBareRepository) {
			return "", ErrNoRepository
		}
		return "", fmt.Errorf("resolve worktree: %w", err)
	}
	return wt.Filesystem.Root(), nil
}

// AuthorName returns the configured git user.name for the repository at
// root, merging local, global and system config scopes. Returns "" when
// unset or when the repository cannot be opened.
func AuthorName(root string) string {
	repo, err := git.PlainOpen(root)
	if err != nil {
		return ""
	}
	cfg, err := repo.ConfigScoped(gitcfg.SystemScope)
	if err != nil || cfg == nil {
		return ""
	}
	return cfg.User.Name
}
