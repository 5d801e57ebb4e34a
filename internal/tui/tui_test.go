package tui

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"repodeck.dev/repodeck/internal/engine"
)

func TestShutdownUnblocksDelivery(t *testing.T) {
	// A full channel that nothing reads anymore must not wedge Close: the
	// delivery goroutine is stuck in the observer send until shutdown drains.
	updates := make(chan engine.Notification, 1)
	dispatcher := engine.New(engine.Options{
		Workers: 2,
		Open: func(path string) (engine.Backend, error) {
			return nil, errors.New("unreachable")
		},
		Observer: func(n engine.Notification) { updates <- n },
	})

	for i := 0; i < 5; i++ {
		req := &engine.Request{RepoPath: fmt.Sprintf("/gone/%d", i), Kind: engine.KindStatus}
		require.NoError(t, dispatcher.Submit(req))
	}

	done := make(chan struct{})
	go func() {
		shutdown(dispatcher, updates)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("shutdown did not complete")
	}
}

func TestFormatNotification(t *testing.T) {
	progress := engine.Notification{
		RepoPath: "/repos/demo",
		Kind:     engine.KindPull,
		Progress: "progress: 42.0%",
	}
	require.Equal(t, "demo pull: progress: 42.0%", formatNotification(progress))

	result := engine.Notification{
		RepoPath: "/repos/demo",
		Kind:     engine.KindCommit,
		Result:   engine.Confirmation{Kind: engine.KindCommit, Text: "committed: wip"},
	}
	require.Equal(t, "demo commit: committed: wip", formatNotification(result))

	failure := engine.Notification{
		RepoPath: "/repos/demo",
		Kind:     engine.KindPush,
		Failure:  &engine.Failure{Kind: engine.KindPush, Err: errors.New("boom")},
	}
	require.Equal(t, "demo push: unknown: boom", formatNotification(failure))
}
