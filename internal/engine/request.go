package engine

import (
	"fmt"

	rderrors "repodeck.dev/repodeck/internal/errors"
	"repodeck.dev/repodeck/internal/git"
)

// Args is the closed set of per-kind argument shapes. Each kind accepts exactly
// one Args type, checked at submission.
type Args interface {
	argsKind() Kind
}

// NoArgs is used by kinds that take no arguments.
type NoArgs struct {
	kind Kind
}

func (a NoArgs) argsKind() Kind { return a.kind }

// CommitArgs carries the commit message.
type CommitArgs struct {
	Message string
}

func (CommitArgs) argsKind() Kind { return KindCommit }

// PullArgs carries the two independent pull options.
type PullArgs struct {
	Rebase bool
	Prune  bool
}

func (PullArgs) argsKind() Kind { return KindPull }

// DefaultPullArgs returns the pull options used when the caller leaves them
// unspecified: rebase instead of merge, and prune stale remote branches.
func DefaultPullArgs() PullArgs {
	return PullArgs{Rebase: true, Prune: true}
}

// CheckoutArgs names the reference to switch to. The resolver decides whether
// this is a plain checkout or a create-and-track of a remote branch.
type CheckoutArgs struct {
	Ref BranchRef
}

func (CheckoutArgs) argsKind() Kind { return KindCheckout }

// CreateBranchArgs names a new branch to create at HEAD.
type CreateBranchArgs struct {
	Name string
}

func (CreateBranchArgs) argsKind() Kind { return KindCreateBranch }

// MergeArgs names the branch to merge into the active branch.
type MergeArgs struct {
	Branch string
}

func (MergeArgs) argsKind() Kind { return KindMerge }

// CherryPickArgs names the commit to apply onto the active branch.
type CherryPickArgs struct {
	CommitHash string
}

func (CherryPickArgs) argsKind() Kind { return KindCherryPick }

// ShowCommitArgs names the commit to inspect.
type ShowCommitArgs struct {
	CommitHash string
}

func (ShowCommitArgs) argsKind() Kind { return KindShowCommit }

// DiffArgs names the path to diff against the current HEAD.
type DiffArgs struct {
	Path string
}

func (DiffArgs) argsKind() Kind { return KindDiff }

// CheckoutFileArgs names the path whose unstaged changes are discarded.
type CheckoutFileArgs struct {
	Path string
}

func (CheckoutFileArgs) argsKind() Kind { return KindCheckoutFile }

// AddRemoteArgs names a remote to register.
type AddRemoteArgs struct {
	Name string
	URL  string
}

func (AddRemoteArgs) argsKind() Kind { return KindAddRemote }

// DeleteBranchArgs names the branch to delete. Force selects force-delete;
// safe delete refuses branches with unmerged commits.
type DeleteBranchArgs struct {
	Branch string
	Force  bool
}

func (DeleteBranchArgs) argsKind() Kind { return KindDeleteBranch }

// CloneArgs names the repository URL to clone. The request's RepoPath is the
// clone target directory.
type CloneArgs struct {
	URL string
}

func (CloneArgs) argsKind() Kind { return KindClone }

// Request is one operation submission. Immutable after Submit. RepoPath is the
// working copy root (or the clone target for KindClone); callbacks are optional
// and invoked from the dispatcher's single delivery goroutine.
type Request struct {
	RepoPath   string
	Kind       Kind
	Args       Args
	OnResult   func(Result)
	OnFailure  func(Failure)
	OnProgress func(string)
}

// Key returns the request's deduplication identity.
func (r *Request) Key() Key {
	return Key{RepoPath: r.RepoPath, Kind: r.Kind}
}

// validate checks the request shape before it is accepted.
func (r *Request) validate() error {
	if r == nil {
		return fmt.Errorf("nil request")
	}
	if !r.Kind.known() {
		return fmt.Errorf("unknown operation kind %d", int(r.Kind))
	}
	if r.RepoPath == "" {
		return fmt.Errorf("%s: repository path is required", r.Kind)
	}
	if err := r.validateArgs(); err != nil {
		return err
	}
	return nil
}

func (r *Request) validateArgs() error {
	// Pull accepts nil args and falls back to the defaults
	if r.Args == nil {
		switch r.Kind {
		case KindStatus, KindLog, KindBranches, KindStage, KindPush, KindPushWithUpstream, KindPull:
			return nil
		default:
			return fmt.Errorf("%s: arguments are required", r.Kind)
		}
	}
	if r.Args.argsKind() != r.Kind {
		return fmt.Errorf("%s: argument shape belongs to %s", r.Kind, r.Args.argsKind())
	}
	switch args := r.Args.(type) {
	case CommitArgs:
		if args.Message == "" {
			return fmt.Errorf("commit: message is required")
		}
	case CheckoutArgs:
		if args.Ref.Name == "" {
			return fmt.Errorf("checkout: branch name is required")
		}
	case CreateBranchArgs:
		if args.Name == "" {
			return fmt.Errorf("create_branch: branch name is required")
		}
	case MergeArgs:
		if args.Branch == "" {
			return fmt.Errorf("merge: branch name is required")
		}
	case CherryPickArgs:
		if args.CommitHash == "" {
			return fmt.Errorf("cherry_pick: commit hash is required")
		}
	case ShowCommitArgs:
		if args.CommitHash == "" {
			return fmt.Errorf("show_commit: commit hash is required")
		}
	case DiffArgs:
		if args.Path == "" {
			return fmt.Errorf("diff: path is required")
		}
	case CheckoutFileArgs:
		if args.Path == "" {
			return fmt.Errorf("checkout_file: path is required")
		}
	case AddRemoteArgs:
		if args.Name == "" || args.URL == "" {
			return fmt.Errorf("add_remote: name and url are required")
		}
	case DeleteBranchArgs:
		if args.Branch == "" {
			return fmt.Errorf("delete_branch: branch name is required")
		}
	case CloneArgs:
		if args.URL == "" {
			return fmt.Errorf("clone: url is required")
		}
	}
	return nil
}

// Key is the deduplication identity for mutating operations.
type Key struct {
	RepoPath string
	Kind     Kind
}

func (k Key) String() string {
	return fmt.Sprintf("%s:%s", k.RepoPath, k.Kind)
}

// Result is the closed set of per-kind result shapes. Exactly one Result or
// one Failure is delivered per request, never both, never more than once.
type Result interface {
	resultKind() Kind
}

// StatusResult lists the working copy file states.
type StatusResult struct {
	Entries []git.StatusEntry
}

func (StatusResult) resultKind() Kind { return KindStatus }

// LogResult lists recent commits, newest first.
type LogResult struct {
	Commits []git.CommitInfo
}

func (LogResult) resultKind() Kind { return KindLog }

// BranchesResult carries local and remote branch names plus the active branch.
type BranchesResult struct {
	Branches git.BranchListing
}

func (BranchesResult) resultKind() Kind { return KindBranches }

// ShowCommitResult carries the commit descriptor and its per-path changes.
type ShowCommitResult struct {
	Detail git.CommitDetail
}

func (ShowCommitResult) resultKind() Kind { return KindShowCommit }

// DiffResult carries the raw diff text for one path.
type DiffResult struct {
	Text string
}

func (DiffResult) resultKind() Kind { return KindDiff }

// Confirmation is the result of a mutating kind: a short human-readable
// summary of what happened.
type Confirmation struct {
	Kind Kind
	Text string
}

func (c Confirmation) resultKind() Kind { return c.Kind }

// Failure is the terminal error outcome of a request.
type Failure struct {
	Kind Kind
	Err  error
	Code rderrors.Kind
}

func (f Failure) Error() string {
	return f.Err.Error()
}

// Notification is one asynchronous message from the engine to its consumer:
// either a progress line or a terminal outcome for a request.
type Notification struct {
	RepoPath string
	Kind     Kind
	Progress string
	Result   Result
	Failure  *Failure
}

// Terminal reports whether the notification closes out its request.
func (n Notification) Terminal() bool {
	return n.Result != nil || n.Failure != nil
}
