package engine

import (
	"strings"
)

// RefOrigin tags a branch reference as local or remote-tracking. The tag comes
// from the caller's selection, never from parsing a display string.
type RefOrigin int

const (
	// OriginLocal marks a local branch name
	OriginLocal RefOrigin = iota
	// OriginRemote marks a remote-tracking reference such as origin/feature-x
	OriginRemote
)

// BranchRef is a branch reference as selected by the caller: a name plus its
// origin tag.
type BranchRef struct {
	Name   string
	Origin RefOrigin
}

// ResolvedCheckout is the action the resolver settled on.
type ResolvedCheckout struct {
	// Branch is the local branch name to end up on
	Branch string
	// Create is true when a new local tracking branch must be created
	Create bool
	// TrackRef is the remote-tracking reference to branch from, set only
	// when Create is true
	TrackRef string
}

// ResolveCheckout decides how to check out a selected reference.
//
// A local reference is a plain checkout. A remote-tracking reference
// (remoteName/branchPath, where branchPath may itself contain slashes) strips
// only the leading remote segment: if a local branch with that name already
// exists the checkout lands on it directly, otherwise a new tracking branch is
// created from the remote reference. Checking out the qualified name itself
// would leave the operator on a detached, non-tracking HEAD.
func ResolveCheckout(ref BranchRef, localBranches []string) ResolvedCheckout {
	if ref.Origin == OriginLocal {
		return ResolvedCheckout{Branch: ref.Name}
	}

	candidate := ref.Name
	if i := strings.Index(ref.Name, "/"); i >= 0 {
		candidate = ref.Name[i+1:]
	}

	for _, local := range localBranches {
		if local == candidate {
			return ResolvedCheckout{Branch: candidate}
		}
	}

	return ResolvedCheckout{
		Branch:   candidate,
		Create:   true,
		TrackRef: ref.Name,
	}
}
