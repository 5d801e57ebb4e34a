package git

import (
	"context"
	"fmt"
)

// Transport tuning applied to every network command: abort a transfer that
// stays under 1000 bytes/s for 30 seconds rather than hang on a stalled
// connection.
var transportTuning = []string{
	"-c", "http.lowSpeedLimit=1000",
	"-c", "http.lowSpeedTime=30",
}

func networkArgs(args ...string) []string {
	return append(append([]string{}, transportTuning...), args...)
}

// Push pushes the active branch to its upstream. When no upstream is
// configured, git fails with a "has no upstream branch" message that callers
// classify into an actionable category.
func (r *Repository) Push(ctx context.Context, onProgress ProgressFunc) error {
	_, err := r.runner.RunWithProgress(ctx, onProgress, networkArgs("push", "--progress")...)
	return err
}

// PushWithUpstream pushes the active branch and records origin/<branch> as its
// upstream in the same call.
func (r *Repository) PushWithUpstream(ctx context.Context, onProgress ProgressFunc) error {
	branch, err := r.CurrentBranch()
	if err != nil {
		return err
	}
	refspec := fmt.Sprintf("%s:%s", branch, branch)
	args := networkArgs("push", "--progress", "--set-upstream", "origin", refspec)
	_, err = r.runner.RunWithProgress(ctx, onProgress, args...)
	return err
}

// Pull updates the active branch from origin. Rebase and prune both default to
// true at the operation layer; here they are explicit.
func (r *Repository) Pull(ctx context.Context, rebase, prune bool, onProgress ProgressFunc) error {
	args := []string{"pull", "--progress"}
	if rebase {
		args = append(args, "--rebase")
	}
	if prune {
		args = append(args, "--prune")
	}
	_, err := r.runner.RunWithProgress(ctx, onProgress, networkArgs(args...)...)
	return err
}
