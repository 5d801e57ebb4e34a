package errors

import (
	"errors"
	"strings"
)

// Kind is the closed set of actionable failure categories surfaced to callers.
type Kind int

const (
	// KindUnknown covers any failure that does not match a more specific category
	KindUnknown Kind = iota
	// KindRepositoryUnavailable means the repository path no longer denotes a
	// valid working copy
	KindRepositoryUnavailable
	// KindCheckoutConflict means local modifications would be overwritten by a
	// branch switch
	KindCheckoutConflict
	// KindNoUpstreamBranch means the active branch has no upstream configured
	// for a push
	KindNoUpstreamBranch
	// KindGitCommandFailure covers any other failure surfaced by git command
	// execution
	KindGitCommandFailure
)

// String returns a stable identifier for the kind.
func (k Kind) String() string {
	switch k {
	case KindRepositoryUnavailable:
		return "repository_unavailable"
	case KindCheckoutConflict:
		return "checkout_conflict"
	case KindNoUpstreamBranch:
		return "no_upstream_branch"
	case KindGitCommandFailure:
		return "git_command_failure"
	default:
		return "unknown"
	}
}

// Message fragments git emits for the two remediable failure modes. These are
// stable across git versions going back well over a decade.
const (
	checkoutConflictPhrase = "would be overwritten by checkout"
	noUpstreamPhrase       = "has no upstream branch"
)

// Classify maps a failure to its Kind. CheckoutConflict and NoUpstreamBranch are
// the only categories with a known remediation (commit/stash/discard, or
// push --set-upstream), so they are checked before the generic buckets. First
// match wins.
func Classify(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	if errors.Is(err, ErrRepositoryUnavailable) {
		return KindRepositoryUnavailable
	}

	msg := err.Error()
	switch {
	case errors.Is(err, ErrCheckoutConflict) || strings.Contains(msg, checkoutConflictPhrase):
		return KindCheckoutConflict
	case errors.Is(err, ErrNoUpstreamBranch) || strings.Contains(msg, noUpstreamPhrase):
		return KindNoUpstreamBranch
	}

	var cmdErr *GitCommandError
	if errors.As(err, &cmdErr) {
		return KindGitCommandFailure
	}
	return KindUnknown
}
