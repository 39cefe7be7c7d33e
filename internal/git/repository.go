// Package git provides read-only access to commit history using go-git v6.
package git

//go:generate mockgen -source=repository.go -destination=repository_mock.go -package=git

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	gogit "github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"
	"github.com/go-git/go-git/v6/plumbing/object"
	"github.com/go-git/go-git/v6/plumbing/storer"

	"github.com/smykla-labs/piklish/pkg/lint"
)

// Repository defines the read operations the analyzer needs.
type Repository interface {
	// FetchCommits returns commits reachable from HEAD, newest first.
	// A limit of 0 returns no commits; a negative limit returns all.
	FetchCommits(limit int) ([]lint.Commit, error)

	// CountCommits returns the total number of commits reachable from HEAD.
	CountCommits() (int, error)

	// CurrentBranch returns the short name of the branch HEAD points at.
	CurrentBranch() (string, error)
}

// SDKRepository implements Repository using the go-git SDK.
type SDKRepository struct {
	repo *gogit.Repository
}

var _ Repository = (*SDKRepository)(nil)

// Open opens the repository containing path.
//
// EnableDotGitCommonDir is set to properly support linked worktrees, which
// have a .git file pointing to the main repository's .git/worktrees/<name>
// directory. See: https://github.com/go-git/go-git/issues/225
func Open(path string) (*SDKRepository, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrPathNotFound, "%q", path)
		}

		return nil, errors.Wrapf(err, "failed to stat %q", path)
	}

	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, errors.Wrapf(ErrNotRepository, "%q", path)
		}

		return nil, errors.Wrap(err, "failed to open repository")
	}

	return &SDKRepository{repo: repo}, nil
}

// FetchCommits returns commits reachable from HEAD, newest first.
func (r *SDKRepository) FetchCommits(limit int) ([]lint.Commit, error) {
	commits := []lint.Commit{}

	if limit == 0 {
		return commits, nil
	}

	iter, err := r.log()
	if err != nil || iter == nil {
		return commits, err
	}

	defer iter.Close()

	err = iter.ForEach(func(c *object.Commit) error {
		commits = append(commits, newCommit(c))

		if limit > 0 && len(commits) >= limit {
			return storer.ErrStop
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to walk history")
	}

	return commits, nil
}

// CountCommits returns the total number of commits reachable from HEAD.
func (r *SDKRepository) CountCommits() (int, error) {
	iter, err := r.log()
	if err != nil || iter == nil {
		return 0, err
	}

	defer iter.Close()

	count := 0

	err = iter.ForEach(func(*object.Commit) error {
		count++

		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to walk history")
	}

	return count, nil
}

// CurrentBranch returns the short name of the branch HEAD points at.
func (r *SDKRepository) CurrentBranch() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return "", ErrNoHead
		}

		return "", errors.Wrap(err, "failed to get HEAD")
	}

	if !head.Name().IsBranch() {
		return "", ErrDetachedHead
	}

	return head.Name().Short(), nil
}

// log starts a history walk from HEAD. A repository without commits yields
// a nil iterator and no error.
func (r *SDKRepository) log() (object.CommitIter, error) {
	head, err := r.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to get HEAD")
	}

	iter, err := r.repo.Log(&gogit.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read log")
	}

	return iter, nil
}

// newCommit converts a go-git commit into the analyzer's record. The first
// message line becomes the subject; the rest becomes the body.
func newCommit(c *object.Commit) lint.Commit {
	subject, body, _ := strings.Cut(c.Message, "\n")

	return lint.Commit{
		Hash:        c.Hash.String(),
		AuthorName:  c.Author.Name,
		AuthorEmail: c.Author.Email,
		Subject:     strings.TrimSpace(subject),
		Body:        strings.TrimSpace(body),
		When:        c.Author.When,
	}
}
