package git

import (
	"context"
	"fmt"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// CommitInfo describes one commit in the history listing.
type CommitInfo struct {
	ShortHash string
	FullHash  string
	Summary   string
	Author    string
	When      time.Time
}

// summaryOf returns the first line of a commit message.
func summaryOf(message string) string {
	if i := strings.IndexByte(message, '\n'); i >= 0 {
		return strings.TrimSpace(message[:i])
	}
	return strings.TrimSpace(message)
}

func commitInfoOf(commit *object.Commit) CommitInfo {
	full := commit.Hash.String()
	return CommitInfo{
		ShortHash: full[:7],
		FullHash:  full,
		Summary:   summaryOf(commit.Message),
		Author:    commit.Author.Name,
		When:      commit.Committer.When,
	}
}

// RecentCommits returns up to limit commits reachable from HEAD, newest first.
func (r *Repository) RecentCommits(ctx context.Context, limit int) ([]CommitInfo, error) {
	_ = ctx

	goGitMu.Lock()
	defer goGitMu.Unlock()

	iter, err := r.repo.Log(&gogit.LogOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to read log: %w", err)
	}
	defer iter.Close()

	commits := []CommitInfo{}
	err = iter.ForEach(func(commit *object.Commit) error {
		commits = append(commits, commitInfoOf(commit))
		if len(commits) >= limit {
			return storer.ErrStop
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate log: %w", err)
	}
	return commits, nil
}
