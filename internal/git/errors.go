package git

import "github.com/cockroachdb/errors"

var (
	// ErrPathNotFound indicates the repository path does not exist.
	ErrPathNotFound = errors.New("path does not exist")

	// ErrNotRepository indicates the path is not inside a git repository.
	ErrNotRepository = errors.New("not a git repository")

	// ErrNoHead indicates the repository has no HEAD (no commits yet).
	ErrNoHead = errors.New("repository has no HEAD")

	// ErrDetachedHead indicates HEAD does not point at a branch.
	ErrDetachedHead = errors.New("HEAD is detached")
)
