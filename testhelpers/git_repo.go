// Package testhelpers provides fixtures for tests that need real git
// repositories on disk.
package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// GitRepo represents a git repository created for a test.
type GitRepo struct {
	Dir string
}

// NewGitRepo initializes a new git repository in dir.
func NewGitRepo(dir string) (*GitRepo, error) {
	// Avoid global config so tests behave the same everywhere
	cmd := exec.Command("git", "-c", "init.defaultBranch=main", "-c", "core.autocrlf=false", "init", dir, "-b", "main")
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to init repo: %w", err)
	}

	repo := &GitRepo{Dir: dir}
	if err := repo.RunGit("config", "user.name", "Test User"); err != nil {
		return nil, err
	}
	if err := repo.RunGit("config", "user.email", "test@example.com"); err != nil {
		return nil, err
	}
	return repo, nil
}

// RunGit executes a git command in the repository directory.
func (r *GitRepo) RunGit(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git %v failed: %s: %w", args, out, err)
	}
	return nil
}

// RunGitOutput executes a git command and returns its combined output.
func (r *GitRepo) RunGitOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %v failed: %s: %w", args, out, err)
	}
	return string(out), nil
}

// WriteFile writes content to a file in the repository.
func (r *GitRepo) WriteFile(name, content string) error {
	path := filepath.Join(r.Dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

// CreateChangeAndCommit writes a file, stages it, and commits.
func (r *GitRepo) CreateChangeAndCommit(name, content, message string) error {
	if err := r.WriteFile(name, content); err != nil {
		return err
	}
	if err := r.RunGit("add", "."); err != nil {
		return err
	}
	return r.RunGit("commit", "-m", message)
}

// CreateBranch creates a branch at HEAD without switching to it.
func (r *GitRepo) CreateBranch(name string) error {
	return r.RunGit("branch", name)
}

// Checkout switches to a branch.
func (r *GitRepo) Checkout(name string) error {
	return r.RunGit("checkout", name)
}
