package engine

import (
	"context"

	"repodeck.dev/repodeck/internal/git"
)

// Backend is the capability surface the engine needs from one working copy.
// *git.Repository satisfies it; tests substitute stubs.
type Backend interface {
	Status(ctx context.Context) ([]git.StatusEntry, error)
	RecentCommits(ctx context.Context, limit int) ([]git.CommitInfo, error)
	Branches(ctx context.Context) (git.BranchListing, error)
	LocalBranchNames(ctx context.Context) ([]string, error)
	CurrentBranch() (string, error)

	StageAll(ctx context.Context) error
	Commit(ctx context.Context, message string) error
	Push(ctx context.Context, onProgress git.ProgressFunc) error
	PushWithUpstream(ctx context.Context, onProgress git.ProgressFunc) error
	Pull(ctx context.Context, rebase, prune bool, onProgress git.ProgressFunc) error
	CheckoutBranch(ctx context.Context, branchName string) error
	CreateTrackingBranch(ctx context.Context, branchName, remoteRef string) error
	CreateBranch(ctx context.Context, branchName string) error
	DeleteBranch(ctx context.Context, branchName string, force bool) error
	Merge(ctx context.Context, branchName string) error
	CherryPick(ctx context.Context, commitHash string) error
	ShowCommit(ctx context.Context, commitHash string) (git.CommitDetail, error)
	DiffFile(ctx context.Context, path string) (string, error)
	CheckoutFile(ctx context.Context, path string) error
	AddRemote(ctx context.Context, name, url string) error
}

// Opener resolves a repository path into a Backend. It is called per
// execution: validity is never cached across requests.
type Opener func(path string) (Backend, error)

// Cloner clones a repository URL into a target directory.
type Cloner func(ctx context.Context, url, targetDir string, onProgress git.ProgressFunc) error

// OpenRepository is the production Opener.
func OpenRepository(path string) (Backend, error) {
	return git.Open(path)
}
