package git

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	rderrors "repodeck.dev/repodeck/internal/errors"
	"repodeck.dev/repodeck/testhelpers"
)

func TestCloneTargetDir(t *testing.T) {
	require.Equal(t, filepath.Join("/work", "demo"), CloneTargetDir("/work", "https://example.com/org/demo.git"))
	require.Equal(t, filepath.Join("/work", "demo"), CloneTargetDir("/work", "https://example.com/org/demo"))
	require.Equal(t, filepath.Join("/work", "demo"), CloneTargetDir("/work", "git@example.com:org/demo.git"))
	require.Equal(t, filepath.Join("/work", "demo"), CloneTargetDir("/work", "https://example.com/org/demo/"))
}

func TestCloneAndTrackRemoteBranch(t *testing.T) {
	source := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		if err := s.Repo.CreateChangeAndCommit("readme.md", "hello\n", "initial commit"); err != nil {
			return err
		}
		return s.Repo.CreateBranch("feature-x")
	})

	target := filepath.Join(t.TempDir(), "clone")
	ctx := context.Background()

	var mu sync.Mutex
	events := 0
	err := Clone(ctx, source.Dir, target, func(ProgressEvent) {
		mu.Lock()
		events++
		mu.Unlock()
	})
	require.NoError(t, err)
	require.Greater(t, events, 0)

	repo, err := Open(target)
	require.NoError(t, err)

	listing, err := repo.Branches(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"main"}, listing.Local)
	require.Contains(t, listing.Remote, "origin/feature-x")
	require.NotContains(t, listing.Remote, "origin/HEAD")

	require.NoError(t, repo.CreateTrackingBranch(ctx, "feature-x", "origin/feature-x"))
	branch, err := repo.CurrentBranch()
	require.NoError(t, err)
	require.Equal(t, "feature-x", branch)
}

func TestPushWithoutUpstreamClassified(t *testing.T) {
	source := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		return s.Repo.CreateChangeAndCommit("readme.md", "hello\n", "initial commit")
	})

	target := filepath.Join(t.TempDir(), "clone")
	ctx := context.Background()
	require.NoError(t, Clone(ctx, source.Dir, target, nil))

	repo, err := Open(target)
	require.NoError(t, err)
	require.NoError(t, repo.CreateBranch(ctx, "feature-x"))

	err = repo.Push(ctx, nil)
	require.Error(t, err)
	require.Equal(t, rderrors.KindNoUpstreamBranch, rderrors.Classify(err))
}
