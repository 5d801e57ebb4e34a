package git

import (
	"context"
	"fmt"

	"github.com/go-git/go-git/v5/config"
)

// AddRemote registers a new remote on the repository.
func (r *Repository) AddRemote(ctx context.Context, name, url string) error {
	_ = ctx

	goGitMu.Lock()
	defer goGitMu.Unlock()

	_, err := r.repo.CreateRemote(&config.RemoteConfig{
		Name: name,
		URLs: []string{url},
	})
	if err != nil {
		return fmt.Errorf("failed to add remote %s: %w", name, err)
	}
	return nil
}
