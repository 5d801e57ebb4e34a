// Package errors provides sentinel errors and custom error types for the repodeck
// application. Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrRepositoryUnavailable indicates that a configured path no longer
	// denotes a valid git working copy
	ErrRepositoryUnavailable = errors.New("repository unavailable")

	// ErrCheckoutConflict indicates that local modifications would be
	// overwritten by a branch switch
	ErrCheckoutConflict = errors.New("checkout conflict")

	// ErrNoUpstreamBranch indicates that the active branch has no configured
	// upstream for a push
	ErrNoUpstreamBranch = errors.New("no upstream branch")

	// ErrDuplicateOperation indicates that an operation with the same
	// deduplication key is already in flight
	ErrDuplicateOperation = errors.New("operation already in flight")

	// ErrDetachedHead indicates that HEAD is not on a branch
	ErrDetachedHead = errors.New("not on a branch")
)

// RepositoryUnavailableError represents an error opening a working copy
type RepositoryUnavailableError struct {
	Path string
	Err  error
}

func (e *RepositoryUnavailableError) Error() string {
	return fmt.Sprintf("not a valid git repository: %s: %v", e.Path, e.Err)
}

func (e *RepositoryUnavailableError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrRepositoryUnavailable
func (e *RepositoryUnavailableError) Is(target error) bool {
	return target == ErrRepositoryUnavailable
}

// NewRepositoryUnavailableError creates a new RepositoryUnavailableError
func NewRepositoryUnavailableError(path string, err error) *RepositoryUnavailableError {
	return &RepositoryUnavailableError{Path: path, Err: err}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
