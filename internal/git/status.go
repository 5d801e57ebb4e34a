package git

import (
	"context"
	"strings"
)

// StatusCategory buckets a porcelain status line into the categories the
// status table presents.
type StatusCategory string

const (
	StatusUntracked StatusCategory = "untracked"
	StatusStaged    StatusCategory = "staged"
	StatusModified  StatusCategory = "modified"
	StatusDeleted   StatusCategory = "deleted"
	StatusUnstaged  StatusCategory = "unstaged"
)

// StatusEntry is one row of the status result. Glyph is purely presentational.
type StatusEntry struct {
	Category StatusCategory
	Path     string
	Glyph    string
}

// Status reports the working copy state as parsed porcelain status lines.
// Porcelain lines are position-sensitive: a work-tree modification starts with
// a space, so the raw output is split here without any trimming.
func (r *Repository) Status(ctx context.Context) ([]StatusEntry, error) {
	output, err := r.runner.RunRaw(ctx, "status", "--porcelain")
	if err != nil {
		return nil, err
	}

	entries := []StatusEntry{}
	for _, line := range strings.Split(output, "\n") {
		if entry, ok := ParseStatusLine(line); ok {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// ParseStatusLine parses one `git status --porcelain` line: a two-character
// status code pair, a space, then the path from offset 3.
func ParseStatusLine(line string) (StatusEntry, bool) {
	if len(line) < 4 {
		return StatusEntry{}, false
	}

	path := line[3:]
	if line[:2] == "??" {
		return StatusEntry{Category: StatusUntracked, Path: path, Glyph: "➕"}, true
	}

	switch line[0] {
	case 'A':
		return StatusEntry{Category: StatusStaged, Path: path, Glyph: "✅"}, true
	case 'M':
		return StatusEntry{Category: StatusModified, Path: path, Glyph: "📝"}, true
	case 'D':
		return StatusEntry{Category: StatusDeleted, Path: path, Glyph: "❌"}, true
	default:
		return StatusEntry{Category: StatusUnstaged, Path: path, Glyph: "📝"}, true
	}
}
