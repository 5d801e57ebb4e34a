package engine

// Kind identifies one supported operation. The set is closed: the catalog
// dispatches exhaustively and Submit rejects anything it does not know.
type Kind int

const (
	KindStatus Kind = iota
	KindLog
	KindBranches
	KindStage
	KindCommit
	KindPush
	KindPushWithUpstream
	KindPull
	KindCheckout
	KindCreateBranch
	KindMerge
	KindCherryPick
	KindShowCommit
	KindDiff
	KindCheckoutFile
	KindAddRemote
	KindDeleteBranch
	KindClone
)

var kindNames = map[Kind]string{
	KindStatus:           "status",
	KindLog:              "log",
	KindBranches:         "branches",
	KindStage:            "stage",
	KindCommit:           "commit",
	KindPush:             "push",
	KindPushWithUpstream: "push_with_upstream",
	KindPull:             "pull",
	KindCheckout:         "checkout",
	KindCreateBranch:     "create_branch",
	KindMerge:            "merge",
	KindCherryPick:       "cherry_pick",
	KindShowCommit:       "show_commit",
	KindDiff:             "diff",
	KindCheckoutFile:     "checkout_file",
	KindAddRemote:        "add_remote",
	KindDeleteBranch:     "delete_branch",
	KindClone:            "clone",
}

// String returns the wire name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// known reports whether the kind is part of the catalog.
func (k Kind) known() bool {
	_, ok := kindNames[k]
	return ok
}

// Mutating reports whether the kind changes on-disk state. Mutating kinds are
// deduplicated per (repository, kind); read-only kinds bypass the registry and
// rely on the backend's own read consistency.
func (k Kind) Mutating() bool {
	switch k {
	case KindStatus, KindLog, KindBranches, KindShowCommit, KindDiff:
		return false
	default:
		return true
	}
}
