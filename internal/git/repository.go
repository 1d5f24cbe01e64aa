package git

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	gitc "github.com/go-git/go-git/v5"

	"github.com/mergepick/mergepick/internal/env"
)

type Repository struct {
	repo *gitc.Repository
}

// NewLocalRepository will attempt to open a pre-existing repository
// enclosing the given directory. If no repository is found, it will return
// an empty Repository.
func NewLocalRepository(dir string) (*Repository, error) {
	repo, err := gitc.PlainOpenWithOptions(dir, &gitc.PlainOpenOptions{
		DetectDotGit: true,
	})
	if errors.Is(err, gitc.ErrRepositoryNotExists) {
		return &Repository{}, nil
	} else if err != nil {
		return &Repository{}, fmt.Errorf("git: %w", err)
	}

	return &Repository{repo: repo}, nil
}

func (r *Repository) IsNil() bool {
	return r.repo == nil
}

// Root returns the worktree root, or "" for bare or absent repositories.
func (r *Repository) Root() string {
	if r.IsNil() {
		return ""
	}

	wt, err := r.repo.Worktree()
	if err != nil {
		return ""
	}

	return wt.Filesystem.Root()
}

// Prefix is the current directory's path relative to the worktree root, with
// a trailing separator, mirroring what the calling VCS exports. The explicit
// environment value wins; everything else degrades to "no prefix".
func Prefix() string {
	if p := env.WorkdirPrefix(); p != "" {
		return p
	}

	wd, err := os.Getwd()
	if err != nil {
		return ""
	}

	repo, err := NewLocalRepository(wd)
	if err != nil {
		return ""
	}

	root := repo.Root()
	if root == "" {
		return ""
	}

	rel, err := filepath.Rel(root, wd)
	if err != nil || rel == "." {
		return ""
	}

	return rel + string(filepath.Separator)
}
