package git_test

import (
	"os"
	"path/filepath"
	"time"

	gogit "github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing/object"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	internalgit "github.com/smykla-labs/piklish/internal/git"
	"github.com/smykla-labs/piklish/pkg/lint"
)

func commit(subject string) lint.Commit {
	return lint.Commit{Subject: subject}
}

var testAuthor = &object.Signature{
	Name:  "Test User",
	Email: "test@example.com",
	When:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
}

// commitFile writes a file, stages it, and commits with the given message.
func commitFile(repo *gogit.Repository, dir, name, message string) {
	GinkgoHelper()

	Expect(os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644)).To(Succeed())

	worktree, err := repo.Worktree()
	Expect(err).NotTo(HaveOccurred())

	_, err = worktree.Add(name)
	Expect(err).NotTo(HaveOccurred())

	_, err = worktree.Commit(message, &gogit.CommitOptions{Author: testAuthor})
	Expect(err).NotTo(HaveOccurred())
}

var _ = Describe("Open", func() {
	var (
		tempDir string
		err     error
	)

	BeforeEach(func() {
		tempDir, err = os.MkdirTemp("", "piklish-git-test-*")
		Expect(err).NotTo(HaveOccurred())

		// Resolve symlinks (macOS /var -> /private/var)
		tempDir, err = filepath.EvalSymlinks(tempDir)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(os.RemoveAll(tempDir)).To(Succeed())
	})

	Context("when path is a valid git repository", func() {
		BeforeEach(func() {
			_, err = gogit.PlainInit(tempDir, false)
			Expect(err).NotTo(HaveOccurred())
		})

		It("opens the repository", func() {
			repo, err := internalgit.Open(tempDir) //nolint:govet // shadow
			Expect(err).NotTo(HaveOccurred())
			Expect(repo).NotTo(BeNil())
		})

		It("discovers the repository from a subdirectory", func() {
			subDir := filepath.Join(tempDir, "subdir")
			Expect(os.MkdirAll(subDir, 0o755)).To(Succeed())

			_, err := internalgit.Open(subDir) //nolint:govet // shadow
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Context("when path is not a git repository", func() {
		It("returns ErrNotRepository", func() {
			_, err := internalgit.Open(tempDir) //nolint:govet // shadow
			Expect(err).To(MatchError(internalgit.ErrNotRepository))
			Expect(err.Error()).To(ContainSubstring("not a git repository"))
		})
	})

	Context("when path does not exist", func() {
		It("returns ErrPathNotFound", func() {
			_, err := internalgit.Open(filepath.Join(tempDir, "does-not-exist")) //nolint:govet // shadow
			Expect(err).To(MatchError(internalgit.ErrPathNotFound))
			Expect(err.Error()).To(ContainSubstring("path does not exist"))
		})
	})
})

var _ = Describe("SDKRepository", func() {
	var (
		tempDir string
		repo    *gogit.Repository
		sdkRepo *internalgit.SDKRepository
		err     error
	)

	BeforeEach(func() {
		tempDir, err = os.MkdirTemp("", "piklish-git-test-*")
		Expect(err).NotTo(HaveOccurred())

		tempDir, err = filepath.EvalSymlinks(tempDir)
		Expect(err).NotTo(HaveOccurred())

		repo, err = gogit.PlainInit(tempDir, false)
		Expect(err).NotTo(HaveOccurred())

		sdkRepo, err = internalgit.Open(tempDir)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(os.RemoveAll(tempDir)).To(Succeed())
	})

	Describe("FetchCommits", func() {
		Context("with history", func() {
			BeforeEach(func() {
				commitFile(repo, tempDir, "a.txt", "feat: add parser #1")
				commitFile(repo, tempDir, "b.txt", "fix: handle empty input #2")
				commitFile(repo, tempDir, "c.txt", "docs: describe parser modes #3\n\nCloses GH-30")
			})

			It("returns commits newest first", func() {
				commits, err := sdkRepo.FetchCommits(-1) //nolint:govet // shadow
				Expect(err).NotTo(HaveOccurred())

				Expect(commits).To(HaveLen(3))
				Expect(commits[0].Subject).To(Equal("docs: describe parser modes #3"))
				Expect(commits[1].Subject).To(Equal("fix: handle empty input #2"))
				Expect(commits[2].Subject).To(Equal("feat: add parser #1"))
			})

			It("splits subject and body", func() {
				commits, err := sdkRepo.FetchCommits(1) //nolint:govet // shadow
				Expect(err).NotTo(HaveOccurred())

				Expect(commits).To(HaveLen(1))
				Expect(commits[0].Subject).To(Equal("docs: describe parser modes #3"))
				Expect(commits[0].Body).To(Equal("Closes GH-30"))
			})

			It("fills in author details", func() {
				commits, err := sdkRepo.FetchCommits(1) //nolint:govet // shadow
				Expect(err).NotTo(HaveOccurred())

				Expect(commits[0].AuthorName).To(Equal(testAuthor.Name))
				Expect(commits[0].AuthorEmail).To(Equal(testAuthor.Email))
				Expect(commits[0].Hash).To(HaveLen(40))
				Expect(commits[0].When).To(BeTemporally("==", testAuthor.When))
			})

			It("honours a positive limit", func() {
				commits, err := sdkRepo.FetchCommits(2) //nolint:govet // shadow
				Expect(err).NotTo(HaveOccurred())
				Expect(commits).To(HaveLen(2))
			})

			It("returns no commits for a zero limit", func() {
				commits, err := sdkRepo.FetchCommits(0) //nolint:govet // shadow
				Expect(err).NotTo(HaveOccurred())
				Expect(commits).To(BeEmpty())
			})

			It("caps a limit larger than the history", func() {
				commits, err := sdkRepo.FetchCommits(100) //nolint:govet // shadow
				Expect(err).NotTo(HaveOccurred())
				Expect(commits).To(HaveLen(3))
			})
		})

		Context("with an empty repository", func() {
			It("returns no commits", func() {
				commits, err := sdkRepo.FetchCommits(-1) //nolint:govet // shadow
				Expect(err).NotTo(HaveOccurred())
				Expect(commits).To(BeEmpty())
			})
		})
	})

	Describe("CountCommits", func() {
		It("counts all reachable commits", func() {
			commitFile(repo, tempDir, "a.txt", "feat: add parser #1")
			commitFile(repo, tempDir, "b.txt", "fix: handle empty input #2")

			count, err := sdkRepo.CountCommits() //nolint:govet // shadow
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(2))
		})

		It("returns zero for an empty repository", func() {
			count, err := sdkRepo.CountCommits() //nolint:govet // shadow
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(BeZero())
		})
	})

	Describe("CurrentBranch", func() {
		It("returns the branch HEAD points at", func() {
			commitFile(repo, tempDir, "a.txt", "feat: add parser #1")

			branch, err := sdkRepo.CurrentBranch() //nolint:govet // shadow
			Expect(err).NotTo(HaveOccurred())
			Expect(branch).To(Equal("master"))
		})

		It("returns ErrNoHead for an empty repository", func() {
			_, err := sdkRepo.CurrentBranch() //nolint:govet // shadow
			Expect(err).To(MatchError(internalgit.ErrNoHead))
		})
	})
})

var _ = Describe("FakeRepository", func() {
	It("honours the limit like the real implementation", func() {
		fake := internalgit.NewFakeRepository(
			commit("feat: one"),
			commit("feat: two"),
			commit("feat: three"),
		)

		all, err := fake.FetchCommits(-1)
		Expect(err).NotTo(HaveOccurred())
		Expect(all).To(HaveLen(3))

		none, err := fake.FetchCommits(0)
		Expect(err).NotTo(HaveOccurred())
		Expect(none).To(BeEmpty())

		two, err := fake.FetchCommits(2)
		Expect(err).NotTo(HaveOccurred())
		Expect(two).To(HaveLen(2))
	})
})
