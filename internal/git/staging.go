package git

import (
	"context"
)

// StageAll stages every change in the working copy, including untracked files.
func (r *Repository) StageAll(ctx context.Context) error {
	_, err := r.runner.Run(ctx, "add", ".")
	return err
}

// Commit records the staged changes with the given message.
func (r *Repository) Commit(ctx context.Context, message string) error {
	_, err := r.runner.Run(ctx, "commit", "-m", message)
	return err
}

// CheckoutFile discards unstaged changes to one path.
func (r *Repository) CheckoutFile(ctx context.Context, path string) error {
	_, err := r.runner.Run(ctx, "checkout", "--", path)
	return err
}

// DiffFile returns the raw diff of one path against the current HEAD.
func (r *Repository) DiffFile(ctx context.Context, path string) (string, error) {
	return r.runner.RunRaw(ctx, "diff", "HEAD", "--", path)
}
