package analyzer

import (
	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"

	"github.com/smykla-labs/piklish/internal/git"
)

// branchMatches reports whether branch matches any of the glob patterns.
// An empty pattern list matches every branch.
func branchMatches(branch string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}

	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, branch); err == nil && ok {
			return true
		}
	}

	return false
}

// currentBranch resolves the branch HEAD points at. A detached HEAD or an
// empty repository resolves to the empty string, which never matches a
// pattern list.
func currentBranch(repo git.Repository) (string, error) {
	branch, err := repo.CurrentBranch()
	if err != nil {
		if errors.Is(err, git.ErrNoHead) || errors.Is(err, git.ErrDetachedHead) {
			return "", nil
		}

		return "", err
	}

	return branch, nil
}
