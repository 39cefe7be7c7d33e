package git

import "github.com/smykla-labs/piklish/pkg/lint"

// FakeRepository implements Repository for testing without a real repository.
// This is a struct-based fake (not a mock) that allows tests to set state
// directly. For expectation-based testing, use the generated MockRepository
// from repository_mock.go.
type FakeRepository struct {
	Commits   []lint.Commit
	Branch    string
	FetchErr  error
	CountErr  error
	BranchErr error
}

// NewFakeRepository creates a new FakeRepository instance with sensible defaults.
func NewFakeRepository(commits ...lint.Commit) *FakeRepository {
	return &FakeRepository{
		Commits: commits,
		Branch:  "main",
	}
}

// FetchCommits returns the configured commits, honouring the limit.
func (f *FakeRepository) FetchCommits(limit int) ([]lint.Commit, error) {
	if f.FetchErr != nil {
		return nil, f.FetchErr
	}

	if limit == 0 {
		return []lint.Commit{}, nil
	}

	if limit > 0 && limit < len(f.Commits) {
		return f.Commits[:limit], nil
	}

	return f.Commits, nil
}

// CountCommits returns the number of configured commits.
func (f *FakeRepository) CountCommits() (int, error) {
	if f.CountErr != nil {
		return 0, f.CountErr
	}

	return len(f.Commits), nil
}

// CurrentBranch returns the configured branch name.
func (f *FakeRepository) CurrentBranch() (string, error) {
	if f.BranchErr != nil {
		return "", f.BranchErr
	}

	return f.Branch, nil
}

// Ensure FakeRepository implements Repository
var _ Repository = (*FakeRepository)(nil)
