package git

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	rderrors "repodeck.dev/repodeck/internal/errors"
	"repodeck.dev/repodeck/testhelpers"
)

func seedCommit(scene *testhelpers.Scene) error {
	return scene.Repo.CreateChangeAndCommit("readme.md", "hello", "initial commit")
}

func TestOpenRejectsNonRepository(t *testing.T) {
	_, err := Open(t.TempDir())
	require.ErrorIs(t, err, rderrors.ErrRepositoryUnavailable)
	require.Equal(t, rderrors.KindRepositoryUnavailable, rderrors.Classify(err))
}

func TestCurrentBranch(t *testing.T) {
	scene := testhelpers.NewScene(t, seedCommit)
	repo, err := Open(scene.Dir)
	require.NoError(t, err)

	branch, err := repo.CurrentBranch()
	require.NoError(t, err)
	require.Equal(t, "main", branch)
}

func TestCurrentBranchDetached(t *testing.T) {
	scene := testhelpers.NewScene(t, seedCommit)
	require.NoError(t, scene.Repo.RunGit("checkout", "--detach", "HEAD"))

	repo, err := Open(scene.Dir)
	require.NoError(t, err)

	_, err = repo.CurrentBranch()
	require.ErrorIs(t, err, rderrors.ErrDetachedHead)
}

func TestBranchesListing(t *testing.T) {
	scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		if err := seedCommit(s); err != nil {
			return err
		}
		return s.Repo.CreateBranch("feature-x")
	})
	repo, err := Open(scene.Dir)
	require.NoError(t, err)

	listing, err := repo.Branches(context.Background())
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"main", "feature-x"}, listing.Local)
	require.Empty(t, listing.Remote)
	require.Equal(t, "main", listing.Active)
}

func TestStatusReportsWorkingCopyState(t *testing.T) {
	scene := testhelpers.NewScene(t, seedCommit)
	require.NoError(t, scene.Repo.WriteFile("new.txt", "fresh"))
	require.NoError(t, scene.Repo.WriteFile("readme.md", "changed"))

	repo, err := Open(scene.Dir)
	require.NoError(t, err)

	entries, err := repo.Status(context.Background())
	require.NoError(t, err)
	require.ElementsMatch(t, []StatusEntry{
		{Category: StatusUntracked, Path: "new.txt", Glyph: "➕"},
		{Category: StatusUnstaged, Path: "readme.md", Glyph: "📝"},
	}, entries)
}

func TestStatusSingleUnstagedModification(t *testing.T) {
	// The unstaged line is the first (and only) line of porcelain output; its
	// leading space must survive into the parser
	scene := testhelpers.NewScene(t, seedCommit)
	require.NoError(t, scene.Repo.WriteFile("readme.md", "changed"))

	repo, err := Open(scene.Dir)
	require.NoError(t, err)

	entries, err := repo.Status(context.Background())
	require.NoError(t, err)
	require.Equal(t, []StatusEntry{
		{Category: StatusUnstaged, Path: "readme.md", Glyph: "📝"},
	}, entries)
}

func TestStageAndCommit(t *testing.T) {
	scene := testhelpers.NewScene(t, seedCommit)
	require.NoError(t, scene.Repo.WriteFile("new.txt", "fresh"))

	repo, err := Open(scene.Dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.StageAll(ctx))
	require.NoError(t, repo.Commit(ctx, "add new file"))

	entries, err := repo.Status(ctx)
	require.NoError(t, err)
	require.Empty(t, entries)

	commits, err := repo.RecentCommits(ctx, 20)
	require.NoError(t, err)
	require.Len(t, commits, 2)
	require.Equal(t, "add new file", commits[0].Summary)
}

func TestRecentCommitsCapped(t *testing.T) {
	scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		for _, message := range []string{"one", "two", "three", "four", "five"} {
			if err := s.Repo.CreateChangeAndCommit("file.txt", message, message); err != nil {
				return err
			}
		}
		return nil
	})
	repo, err := Open(scene.Dir)
	require.NoError(t, err)

	commits, err := repo.RecentCommits(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, commits, 3)
	require.Equal(t, "five", commits[0].Summary)
	require.Equal(t, "three", commits[2].Summary)
	require.Len(t, commits[0].ShortHash, 7)
	require.Len(t, commits[0].FullHash, 40)
	require.Equal(t, "Test User", commits[0].Author)
}

func TestDeleteBranchRefusesUnmerged(t *testing.T) {
	scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		if err := seedCommit(s); err != nil {
			return err
		}
		if err := s.Repo.RunGit("checkout", "-b", "feature-x"); err != nil {
			return err
		}
		if err := s.Repo.CreateChangeAndCommit("extra.txt", "work", "unmerged work"); err != nil {
			return err
		}
		return s.Repo.Checkout("main")
	})
	repo, err := Open(scene.Dir)
	require.NoError(t, err)
	ctx := context.Background()

	err = repo.DeleteBranch(ctx, "feature-x", false)
	require.Error(t, err)
	require.Equal(t, rderrors.KindGitCommandFailure, rderrors.Classify(err))

	require.NoError(t, repo.DeleteBranch(ctx, "feature-x", true))

	local, err := repo.LocalBranchNames(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"main"}, local)
}

func TestCheckoutConflictClassified(t *testing.T) {
	scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		if err := s.Repo.CreateChangeAndCommit("a.txt", "one", "first"); err != nil {
			return err
		}
		if err := s.Repo.RunGit("checkout", "-b", "feature-x"); err != nil {
			return err
		}
		if err := s.Repo.CreateChangeAndCommit("a.txt", "two", "second"); err != nil {
			return err
		}
		if err := s.Repo.Checkout("main"); err != nil {
			return err
		}
		// dirty state that conflicts with the target branch
		return s.Repo.WriteFile("a.txt", "dirty")
	})
	repo, err := Open(scene.Dir)
	require.NoError(t, err)

	err = repo.CheckoutBranch(context.Background(), "feature-x")
	require.Error(t, err)
	require.Equal(t, rderrors.KindCheckoutConflict, rderrors.Classify(err))
}

func TestDiffAndDiscardFile(t *testing.T) {
	scene := testhelpers.NewScene(t, seedCommit)
	require.NoError(t, scene.Repo.WriteFile("readme.md", "hello world"))

	repo, err := Open(scene.Dir)
	require.NoError(t, err)
	ctx := context.Background()

	diff, err := repo.DiffFile(ctx, "readme.md")
	require.NoError(t, err)
	require.Contains(t, diff, "+hello world")

	require.NoError(t, repo.CheckoutFile(ctx, "readme.md"))
	entries, err := repo.Status(ctx)
	require.NoError(t, err)
	require.Empty(t, entries)
}
