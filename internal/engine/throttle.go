package engine

import (
	"fmt"
	"sync"
	"time"

	"repodeck.dev/repodeck/internal/git"
)

// DefaultProgressInterval is the minimum spacing between coalesced progress
// notifications. The bound keeps a chatty transfer from saturating the
// notification queue.
const DefaultProgressInterval = 500 * time.Millisecond

// ProgressThrottle rate-limits a stream of raw backend progress events. Events
// carrying a textual message are milestones and pass immediately; counted
// events are coalesced to at most one per interval.
type ProgressThrottle struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time
	now      func() time.Time
}

// NewProgressThrottle creates a throttle with the given minimum spacing.
func NewProgressThrottle(interval time.Duration) *ProgressThrottle {
	return &ProgressThrottle{interval: interval, now: time.Now}
}

// Offer submits one raw event. It returns the formatted progress line and true
// when the event should be delivered, or false when it is coalesced away.
func (t *ProgressThrottle) Offer(event git.ProgressEvent) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if event.Message == "" && now.Sub(t.last) < t.interval {
		return "", false
	}
	t.last = now
	return FormatProgress(event), true
}

// FormatProgress renders one event for display. The percentage form is used
// only when the total is known and positive.
func FormatProgress(event git.ProgressEvent) string {
	if event.Message != "" {
		return event.Message
	}
	if event.Counted() {
		percentage := float64(event.Current) / float64(event.Total) * 100
		return fmt.Sprintf("progress: %.1f%%", percentage)
	}
	return "in progress"
}
