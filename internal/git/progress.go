package git

import (
	"regexp"
	"strconv"
	"strings"
)

// ProgressEvent is one raw progress notification from the backend. The two
// forms are mutually exclusive: either Message is non-empty (a milestone such
// as "remote: Resolving deltas"), or Current/Total carry object counts.
type ProgressEvent struct {
	Message string
	Current int
	Total   int
}

// Counted reports whether the event carries a usable object-count ratio.
// Events with no message and no known total are generic in-progress markers.
func (e ProgressEvent) Counted() bool {
	return e.Message == "" && e.Total > 0
}

// ProgressFunc receives raw progress events as a transfer produces them.
type ProgressFunc func(ProgressEvent)

// countedProgressRe matches git's transfer progress lines, e.g.
//
//	Receiving objects:  42% (123/292), 1.2 MiB | 800 KiB/s
//	Counting objects: 292, done.
var countedProgressRe = regexp.MustCompile(`\((\d+)/(\d+)\)`)

// ParseProgressLine converts one stderr line from a --progress git command into
// a ProgressEvent. Lines with an object-count ratio become counted events;
// any other non-empty line is a milestone message. Blank lines produce nothing.
func ParseProgressLine(line string) (ProgressEvent, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return ProgressEvent{}, false
	}

	if m := countedProgressRe.FindStringSubmatch(line); m != nil {
		current, err1 := strconv.Atoi(m[1])
		total, err2 := strconv.Atoi(m[2])
		if err1 == nil && err2 == nil {
			return ProgressEvent{Current: current, Total: total}, true
		}
	}

	return ProgressEvent{Message: line}, true
}
