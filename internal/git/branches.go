package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
)

// BranchListing is the result of the branches operation: local branch names,
// remote-tracking names qualified by their remote (origin/feature-x), and the
// active branch (empty when HEAD is detached).
type BranchListing struct {
	Local  []string
	Remote []string
	Active string
}

// Branches lists local and remote-tracking branches plus the active branch.
func (r *Repository) Branches(ctx context.Context) (BranchListing, error) {
	_ = ctx

	listing := BranchListing{
		Local:  []string{},
		Remote: []string{},
	}

	goGitMu.Lock()
	defer goGitMu.Unlock()

	refs, err := r.repo.References()
	if err != nil {
		return listing, fmt.Errorf("failed to list references: %w", err)
	}
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name()
		switch {
		case name.IsBranch():
			listing.Local = append(listing.Local, name.Short())
		case name.IsRemote():
			// A remote's symbolic HEAD (origin/HEAD) mirrors no branch
			if ref.Type() == plumbing.SymbolicReference || strings.HasSuffix(name.Short(), "/HEAD") {
				return nil
			}
			listing.Remote = append(listing.Remote, name.Short())
		}
		return nil
	})
	if err != nil {
		return listing, fmt.Errorf("failed to iterate references: %w", err)
	}

	head, err := r.repo.Head()
	switch {
	case err != nil:
		// An empty repository has no HEAD yet; report no active branch
		if !errors.Is(err, plumbing.ErrReferenceNotFound) {
			return listing, fmt.Errorf("failed to resolve HEAD: %w", err)
		}
	case head.Name().IsBranch():
		listing.Active = head.Name().Short()
	}

	return listing, nil
}

// LocalBranchNames returns just the local branch names.
func (r *Repository) LocalBranchNames(ctx context.Context) ([]string, error) {
	listing, err := r.Branches(ctx)
	if err != nil {
		return nil, err
	}
	return listing.Local, nil
}

// CheckoutBranch switches the working copy to an existing branch.
func (r *Repository) CheckoutBranch(ctx context.Context, branchName string) error {
	_, err := r.runner.Run(ctx, "checkout", branchName)
	return err
}

// CreateTrackingBranch creates branchName tracking remoteRef and switches to it.
func (r *Repository) CreateTrackingBranch(ctx context.Context, branchName, remoteRef string) error {
	_, err := r.runner.Run(ctx, "checkout", "-b", branchName, remoteRef)
	return err
}

// CreateBranch creates a new branch at HEAD and switches to it.
func (r *Repository) CreateBranch(ctx context.Context, branchName string) error {
	_, err := r.runner.Run(ctx, "checkout", "-b", branchName)
	return err
}

// DeleteBranch deletes a local branch. Without force, git refuses to delete a
// branch with unmerged commits and the failure surfaces as a command error.
func (r *Repository) DeleteBranch(ctx context.Context, branchName string, force bool) error {
	flag := "-d"
	if force {
		flag = "-D"
	}
	_, err := r.runner.Run(ctx, "branch", flag, branchName)
	return err
}

// Merge merges branchName into the active branch.
func (r *Repository) Merge(ctx context.Context, branchName string) error {
	_, err := r.runner.Run(ctx, "merge", branchName)
	return err
}

// CherryPick applies the change introduced by commitHash onto the active branch.
func (r *Repository) CherryPick(ctx context.Context, commitHash string) error {
	_, err := r.runner.Run(ctx, "cherry-pick", commitHash)
	return err
}
