// Package git provides the version-control backend for repodeck. It wraps
// go-git for read paths (repository access, branch and commit inspection) and
// shells out to the git binary for mutating and network commands, where the
// porcelain behavior (checkout safety checks, upstream handling, transfer
// progress) is what callers depend on.
package git
