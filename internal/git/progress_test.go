package git

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseProgressLine(t *testing.T) {
	t.Run("counted transfer line", func(t *testing.T) {
		event, ok := ParseProgressLine("Receiving objects:  42% (123/292), 1.2 MiB | 800 KiB/s")
		require.True(t, ok)
		require.Equal(t, ProgressEvent{Current: 123, Total: 292}, event)
		require.True(t, event.Counted())
	})

	t.Run("milestone message", func(t *testing.T) {
		event, ok := ParseProgressLine("remote: Enumerating objects: 292, done.")
		require.True(t, ok)
		require.Equal(t, "remote: Enumerating objects: 292, done.", event.Message)
		require.False(t, event.Counted())
	})

	t.Run("carriage return residue trimmed", func(t *testing.T) {
		event, ok := ParseProgressLine("Resolving deltas: 100% (88/88), done.\r")
		require.True(t, ok)
		require.Equal(t, ProgressEvent{Current: 88, Total: 88}, event)
	})

	t.Run("blank line dropped", func(t *testing.T) {
		_, ok := ParseProgressLine("   ")
		require.False(t, ok)
	})
}

func TestProgressEventCounted(t *testing.T) {
	require.True(t, ProgressEvent{Current: 1, Total: 10}.Counted())
	require.False(t, ProgressEvent{Current: 1}.Counted())
	require.False(t, ProgressEvent{Message: "done", Total: 10}.Counted())
}
