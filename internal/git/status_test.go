package git

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStatusLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		entry  StatusEntry
		parsed bool
	}{
		{
			name:   "untracked",
			line:   "?? new.txt",
			entry:  StatusEntry{Category: StatusUntracked, Path: "new.txt", Glyph: "➕"},
			parsed: true,
		},
		{
			name:   "staged addition",
			line:   "A  docs/readme.md",
			entry:  StatusEntry{Category: StatusStaged, Path: "docs/readme.md", Glyph: "✅"},
			parsed: true,
		},
		{
			name:   "modified",
			line:   "M  src/main.go",
			entry:  StatusEntry{Category: StatusModified, Path: "src/main.go", Glyph: "📝"},
			parsed: true,
		},
		{
			name:   "deleted",
			line:   "D  gone.txt",
			entry:  StatusEntry{Category: StatusDeleted, Path: "gone.txt", Glyph: "❌"},
			parsed: true,
		},
		{
			name:   "unstaged modification",
			line:   " M src/main.go",
			entry:  StatusEntry{Category: StatusUnstaged, Path: "src/main.go", Glyph: "📝"},
			parsed: true,
		},
		{
			name:   "path with spaces",
			line:   "?? a file.txt",
			entry:  StatusEntry{Category: StatusUntracked, Path: "a file.txt", Glyph: "➕"},
			parsed: true,
		},
		{
			name: "too short",
			line: "M",
		},
		{
			name: "empty",
			line: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			entry, ok := ParseStatusLine(test.line)
			require.Equal(t, test.parsed, ok)
			if test.parsed {
				require.Equal(t, test.entry, entry)
			}
		})
	}
}
