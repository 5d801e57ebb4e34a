package engine

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	rderrors "repodeck.dev/repodeck/internal/errors"
	"repodeck.dev/repodeck/internal/git"
)

// stubBackend records calls and lets tests hook individual operations.
type stubBackend struct {
	mu    sync.Mutex
	calls []string

	statusEntries []git.StatusEntry
	statusErr     error
	local         []string
	commitFn      func(message string) error
	pullFn        func(rebase, prune bool, onProgress git.ProgressFunc) error
	deleteErr     error
}

func (b *stubBackend) record(call string) {
	b.mu.Lock()
	b.calls = append(b.calls, call)
	b.mu.Unlock()
}

func (b *stubBackend) recorded() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.calls...)
}

func (b *stubBackend) Status(ctx context.Context) ([]git.StatusEntry, error) {
	b.record("status")
	return b.statusEntries, b.statusErr
}

func (b *stubBackend) RecentCommits(ctx context.Context, limit int) ([]git.CommitInfo, error) {
	b.record(fmt.Sprintf("log:%d", limit))
	return nil, nil
}

func (b *stubBackend) Branches(ctx context.Context) (git.BranchListing, error) {
	b.record("branches")
	return git.BranchListing{Active: "main"}, nil
}

func (b *stubBackend) LocalBranchNames(ctx context.Context) ([]string, error) {
	b.record("local_branches")
	return b.local, nil
}

func (b *stubBackend) CurrentBranch() (string, error) {
	b.record("current_branch")
	return "main", nil
}

func (b *stubBackend) StageAll(ctx context.Context) error {
	b.record("stage")
	return nil
}

func (b *stubBackend) Commit(ctx context.Context, message string) error {
	b.record("commit:" + message)
	if b.commitFn != nil {
		return b.commitFn(message)
	}
	return nil
}

func (b *stubBackend) Push(ctx context.Context, onProgress git.ProgressFunc) error {
	b.record("push")
	return nil
}

func (b *stubBackend) PushWithUpstream(ctx context.Context, onProgress git.ProgressFunc) error {
	b.record("push_upstream")
	return nil
}

func (b *stubBackend) Pull(ctx context.Context, rebase, prune bool, onProgress git.ProgressFunc) error {
	b.record(fmt.Sprintf("pull:%t:%t", rebase, prune))
	if b.pullFn != nil {
		return b.pullFn(rebase, prune, onProgress)
	}
	return nil
}

func (b *stubBackend) CheckoutBranch(ctx context.Context, branchName string) error {
	b.record("checkout:" + branchName)
	return nil
}

func (b *stubBackend) CreateTrackingBranch(ctx context.Context, branchName, remoteRef string) error {
	b.record("track:" + branchName + ":" + remoteRef)
	return nil
}

func (b *stubBackend) CreateBranch(ctx context.Context, branchName string) error {
	b.record("create:" + branchName)
	return nil
}

func (b *stubBackend) DeleteBranch(ctx context.Context, branchName string, force bool) error {
	b.record(fmt.Sprintf("delete:%s:%t", branchName, force))
	return b.deleteErr
}

func (b *stubBackend) Merge(ctx context.Context, branchName string) error {
	b.record("merge:" + branchName)
	return nil
}

func (b *stubBackend) CherryPick(ctx context.Context, commitHash string) error {
	b.record("cherry_pick:" + commitHash)
	return nil
}

func (b *stubBackend) ShowCommit(ctx context.Context, commitHash string) (git.CommitDetail, error) {
	b.record("show:" + commitHash)
	return git.CommitDetail{}, nil
}

func (b *stubBackend) DiffFile(ctx context.Context, path string) (string, error) {
	b.record("diff:" + path)
	return "", nil
}

func (b *stubBackend) CheckoutFile(ctx context.Context, path string) error {
	b.record("discard:" + path)
	return nil
}

func (b *stubBackend) AddRemote(ctx context.Context, name, url string) error {
	b.record("remote:" + name + ":" + url)
	return nil
}

func newStubDispatcher(backend *stubBackend) *Dispatcher {
	return New(Options{
		Workers: 2,
		Open:    func(path string) (Backend, error) { return backend, nil },
	})
}

// await blocks until the terminal callback fires, then returns the outcome.
func await(t *testing.T, d *Dispatcher, req *Request) (Result, *Failure) {
	t.Helper()

	done := make(chan struct{})
	var result Result
	var failure *Failure
	req.OnResult = func(r Result) {
		result = r
		close(done)
	}
	req.OnFailure = func(f Failure) {
		failure = &f
		close(done)
	}
	require.NoError(t, d.Submit(req))

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("no terminal notification")
	}
	return result, failure
}

func TestDispatcherDeliversStatusResult(t *testing.T) {
	backend := &stubBackend{
		statusEntries: []git.StatusEntry{{Category: git.StatusUntracked, Path: "new.txt"}},
	}
	d := newStubDispatcher(backend)
	defer d.Close()

	result, failure := await(t, d, &Request{RepoPath: "/repos/a", Kind: KindStatus})
	require.Nil(t, failure)
	require.Equal(t, StatusResult{Entries: backend.statusEntries}, result)
}

func TestDispatcherRejectsDuplicateMutating(t *testing.T) {
	release := make(chan struct{})
	backend := &stubBackend{
		commitFn: func(string) error {
			<-release
			return nil
		},
	}
	d := newStubDispatcher(backend)
	defer d.Close()

	done := make(chan struct{})
	first := &Request{
		RepoPath: "/repos/a",
		Kind:     KindCommit,
		Args:     CommitArgs{Message: "one"},
		OnResult: func(Result) { close(done) },
	}
	require.NoError(t, d.Submit(first))

	// wait until the worker has the key and is inside the backend
	require.Eventually(t, func() bool {
		return len(backend.recorded()) == 1
	}, 5*time.Second, time.Millisecond)

	err := d.Submit(&Request{RepoPath: "/repos/a", Kind: KindCommit, Args: CommitArgs{Message: "two"}})
	require.ErrorIs(t, err, rderrors.ErrDuplicateOperation)

	// a different repository is a different key
	other := &Request{RepoPath: "/repos/b", Kind: KindCommit, Args: CommitArgs{Message: "two"}}
	require.NoError(t, d.Submit(other))

	close(release)
	<-done

	// the key frees up once the terminal notification has been delivered
	require.Eventually(t, func() bool {
		return d.Submit(&Request{RepoPath: "/repos/a", Kind: KindCommit, Args: CommitArgs{Message: "three"}}) == nil
	}, 5*time.Second, time.Millisecond)
}

func TestDispatcherDistinctKindsSameRepo(t *testing.T) {
	// Deduplication keys on (repository, kind): a commit and a pull on the
	// same working copy are both admitted and may overlap.
	release := make(chan struct{})
	backend := &stubBackend{
		commitFn: func(string) error {
			<-release
			return nil
		},
	}
	d := newStubDispatcher(backend)
	defer d.Close()

	done := make(chan struct{})
	commit := &Request{
		RepoPath: "/repos/a",
		Kind:     KindCommit,
		Args:     CommitArgs{Message: "wip"},
		OnResult: func(Result) { close(done) },
	}
	require.NoError(t, d.Submit(commit))
	require.NoError(t, d.Submit(&Request{RepoPath: "/repos/a", Kind: KindPull}))

	close(release)
	<-done
}

func TestDispatcherReadsNotDeduplicated(t *testing.T) {
	backend := &stubBackend{}
	d := newStubDispatcher(backend)

	for i := 0; i < 3; i++ {
		require.NoError(t, d.Submit(&Request{RepoPath: "/repos/a", Kind: KindStatus}))
	}
	d.Close()
	require.Len(t, backend.recorded(), 3)
}

func TestDispatcherOpenFailure(t *testing.T) {
	d := New(Options{
		Workers: 1,
		Open: func(path string) (Backend, error) {
			return nil, &rderrors.RepositoryUnavailableError{Path: path, Err: fmt.Errorf("not a git repository")}
		},
	})
	defer d.Close()

	result, failure := await(t, d, &Request{RepoPath: "/gone", Kind: KindStatus})
	require.Nil(t, result)
	require.NotNil(t, failure)
	require.Equal(t, rderrors.KindRepositoryUnavailable, failure.Code)
	require.ErrorIs(t, failure.Err, rderrors.ErrRepositoryUnavailable)
}

func TestDispatcherClassifiesCommandFailure(t *testing.T) {
	backend := &stubBackend{
		commitFn: func(string) error {
			return rderrors.NewGitCommandError("git", []string{"commit"}, "", "fatal: empty ident", fmt.Errorf("exit status 128"))
		},
	}
	d := newStubDispatcher(backend)
	defer d.Close()

	_, failure := await(t, d, &Request{RepoPath: "/repos/a", Kind: KindCommit, Args: CommitArgs{Message: "wip"}})
	require.NotNil(t, failure)
	require.Equal(t, rderrors.KindGitCommandFailure, failure.Code)
}

func TestDispatcherPullDefaults(t *testing.T) {
	backend := &stubBackend{}
	d := newStubDispatcher(backend)

	require.NoError(t, d.Submit(&Request{RepoPath: "/repos/a", Kind: KindPull}))
	d.Close()
	require.Equal(t, []string{"pull:true:true"}, backend.recorded())
}

func TestDispatcherCheckoutResolution(t *testing.T) {
	backend := &stubBackend{local: []string{"main"}}
	d := newStubDispatcher(backend)

	result, failure := await(t, d, &Request{
		RepoPath: "/repos/a",
		Kind:     KindCheckout,
		Args:     CheckoutArgs{Ref: BranchRef{Name: "origin/feature-x", Origin: OriginRemote}},
	})
	d.Close()

	require.Nil(t, failure)
	require.Equal(t, Confirmation{Kind: KindCheckout, Text: "created branch feature-x tracking origin/feature-x"}, result)
	require.Equal(t, []string{"local_branches", "track:feature-x:origin/feature-x"}, backend.recorded())
}

func TestDispatcherCloneWithProgress(t *testing.T) {
	d := New(Options{
		Workers: 1,
		Open: func(path string) (Backend, error) {
			t.Fatal("clone must not open a backend")
			return nil, nil
		},
		Clone: func(ctx context.Context, url, targetDir string, onProgress git.ProgressFunc) error {
			onProgress(git.ProgressEvent{Message: "Cloning into 'demo'..."})
			onProgress(git.ProgressEvent{Current: 292, Total: 292})
			return nil
		},
	})

	var mu sync.Mutex
	var progress []string
	req := &Request{
		RepoPath:   "/repos/demo",
		Kind:       KindClone,
		Args:       CloneArgs{URL: "https://example.com/demo.git"},
		OnProgress: func(line string) { mu.Lock(); progress = append(progress, line); mu.Unlock() },
	}
	result, failure := await(t, d, req)
	d.Close()

	require.Nil(t, failure)
	require.Equal(t, Confirmation{Kind: KindClone, Text: "cloned into /repos/demo"}, result)
	require.Contains(t, progress, "Cloning into 'demo'...")
}

func TestSubmitValidation(t *testing.T) {
	d := New(Options{Workers: 1, Open: func(string) (Backend, error) {
		t.Fatal("invalid requests must not reach the opener")
		return nil, nil
	}})
	defer d.Close()

	require.Error(t, d.Submit(&Request{Kind: KindStatus}))
	require.Error(t, d.Submit(&Request{RepoPath: "/repos/a", Kind: Kind(99)}))
	require.Error(t, d.Submit(&Request{RepoPath: "/repos/a", Kind: KindCommit}))
	require.Error(t, d.Submit(&Request{RepoPath: "/repos/a", Kind: KindCommit, Args: MergeArgs{Branch: "main"}}))
	require.Error(t, d.Submit(&Request{RepoPath: "/repos/a", Kind: KindCommit, Args: CommitArgs{}}))
}
