package engine

import (
	"context"
	"fmt"

	"repodeck.dev/repodeck/internal/git"
)

// LogLimit caps the history listing.
const LogLimit = 20

// shortHash trims a full hash for confirmation text.
func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}

// execute runs one operation against an opened backend and builds its
// kind-specific result. The switch is exhaustive over the catalog; Submit has
// already rejected unknown kinds and mismatched argument shapes.
func execute(ctx context.Context, backend Backend, req *Request, onProgress git.ProgressFunc) (Result, error) {
	switch req.Kind {
	case KindStatus:
		entries, err := backend.Status(ctx)
		if err != nil {
			return nil, err
		}
		return StatusResult{Entries: entries}, nil

	case KindLog:
		commits, err := backend.RecentCommits(ctx, LogLimit)
		if err != nil {
			return nil, err
		}
		return LogResult{Commits: commits}, nil

	case KindBranches:
		listing, err := backend.Branches(ctx)
		if err != nil {
			return nil, err
		}
		return BranchesResult{Branches: listing}, nil

	case KindStage:
		if err := backend.StageAll(ctx); err != nil {
			return nil, err
		}
		return Confirmation{Kind: req.Kind, Text: "all changes staged"}, nil

	case KindCommit:
		args := req.Args.(CommitArgs)
		if err := backend.Commit(ctx, args.Message); err != nil {
			return nil, err
		}
		return Confirmation{Kind: req.Kind, Text: fmt.Sprintf("committed: %s", args.Message)}, nil

	case KindPush:
		if err := backend.Push(ctx, onProgress); err != nil {
			return nil, err
		}
		return Confirmation{Kind: req.Kind, Text: "pushed"}, nil

	case KindPushWithUpstream:
		branch, err := backend.CurrentBranch()
		if err != nil {
			return nil, err
		}
		if err := backend.PushWithUpstream(ctx, onProgress); err != nil {
			return nil, err
		}
		text := fmt.Sprintf("pushed, upstream set to origin/%s", branch)
		return Confirmation{Kind: req.Kind, Text: text}, nil

	case KindPull:
		args := DefaultPullArgs()
		if req.Args != nil {
			args = req.Args.(PullArgs)
		}
		if err := backend.Pull(ctx, args.Rebase, args.Prune, onProgress); err != nil {
			return nil, err
		}
		return Confirmation{Kind: req.Kind, Text: "pulled"}, nil

	case KindCheckout:
		args := req.Args.(CheckoutArgs)
		return executeCheckout(ctx, backend, args.Ref)

	case KindCreateBranch:
		args := req.Args.(CreateBranchArgs)
		if err := backend.CreateBranch(ctx, args.Name); err != nil {
			return nil, err
		}
		text := fmt.Sprintf("created and switched to branch %s", args.Name)
		return Confirmation{Kind: req.Kind, Text: text}, nil

	case KindMerge:
		args := req.Args.(MergeArgs)
		if err := backend.Merge(ctx, args.Branch); err != nil {
			return nil, err
		}
		return Confirmation{Kind: req.Kind, Text: fmt.Sprintf("merged branch %s", args.Branch)}, nil

	case KindCherryPick:
		args := req.Args.(CherryPickArgs)
		if err := backend.CherryPick(ctx, args.CommitHash); err != nil {
			return nil, err
		}
		text := fmt.Sprintf("cherry-picked commit %s", shortHash(args.CommitHash))
		return Confirmation{Kind: req.Kind, Text: text}, nil

	case KindShowCommit:
		args := req.Args.(ShowCommitArgs)
		detail, err := backend.ShowCommit(ctx, args.CommitHash)
		if err != nil {
			return nil, err
		}
		return ShowCommitResult{Detail: detail}, nil

	case KindDiff:
		args := req.Args.(DiffArgs)
		text, err := backend.DiffFile(ctx, args.Path)
		if err != nil {
			return nil, err
		}
		return DiffResult{Text: text}, nil

	case KindCheckoutFile:
		args := req.Args.(CheckoutFileArgs)
		if err := backend.CheckoutFile(ctx, args.Path); err != nil {
			return nil, err
		}
		return Confirmation{Kind: req.Kind, Text: fmt.Sprintf("discarded changes to %s", args.Path)}, nil

	case KindAddRemote:
		args := req.Args.(AddRemoteArgs)
		if err := backend.AddRemote(ctx, args.Name, args.URL); err != nil {
			return nil, err
		}
		text := fmt.Sprintf("remote %s added (%s)", args.Name, args.URL)
		return Confirmation{Kind: req.Kind, Text: text}, nil

	case KindDeleteBranch:
		args := req.Args.(DeleteBranchArgs)
		if err := backend.DeleteBranch(ctx, args.Branch, args.Force); err != nil {
			return nil, err
		}
		text := fmt.Sprintf("branch %s deleted", args.Branch)
		if args.Force {
			text = fmt.Sprintf("branch %s force-deleted", args.Branch)
		}
		return Confirmation{Kind: req.Kind, Text: text}, nil

	default:
		// KindClone never reaches here; the dispatcher handles it before
		// opening a backend
		return nil, fmt.Errorf("unhandled operation kind %s", req.Kind)
	}
}

// executeCheckout disambiguates the selected reference and performs either a
// plain checkout or a create-and-track checkout.
func executeCheckout(ctx context.Context, backend Backend, ref BranchRef) (Result, error) {
	local, err := backend.LocalBranchNames(ctx)
	if err != nil {
		return nil, err
	}

	resolved := ResolveCheckout(ref, local)
	if resolved.Create {
		if err := backend.CreateTrackingBranch(ctx, resolved.Branch, resolved.TrackRef); err != nil {
			return nil, err
		}
		text := fmt.Sprintf("created branch %s tracking %s", resolved.Branch, resolved.TrackRef)
		return Confirmation{Kind: KindCheckout, Text: text}, nil
	}

	if err := backend.CheckoutBranch(ctx, resolved.Branch); err != nil {
		return nil, err
	}
	return Confirmation{Kind: KindCheckout, Text: fmt.Sprintf("switched to branch %s", resolved.Branch)}, nil
}
