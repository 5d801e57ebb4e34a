package git

import (
	"fmt"
	"path/filepath"
	"sync"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	rderrors "repodeck.dev/repodeck/internal/errors"
)

// goGitMu synchronizes go-git object access. go-git's packfile readers are not
// safe for concurrent use from multiple goroutines against the same on-disk
// repository.
var goGitMu sync.Mutex

// Repository wraps a go-git repository plus a command runner for one working copy
type Repository struct {
	repo   *gogit.Repository
	runner *CommandRunner
	path   string
}

// Open opens the git working copy rooted at path. It fails with
// ErrRepositoryUnavailable when the path does not denote an initialized
// repository; callers re-open per operation rather than caching validity.
func Open(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, rderrors.NewRepositoryUnavailableError(absPath, err)
	}

	return &Repository{
		repo:   repo,
		runner: NewCommandRunner(absPath),
		path:   absPath,
	}, nil
}

// Root returns the working copy root path.
func (r *Repository) Root() string {
	return r.path
}

// head returns the current HEAD reference.
func (r *Repository) head() (*plumbing.Reference, error) {
	goGitMu.Lock()
	defer goGitMu.Unlock()
	return r.repo.Head()
}

// CurrentBranch returns the active branch name, or ErrDetachedHead when HEAD
// does not point at a branch.
func (r *Repository) CurrentBranch() (string, error) {
	head, err := r.head()
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return "", rderrors.ErrDetachedHead
	}
	return head.Name().Short(), nil
}
