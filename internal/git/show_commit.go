package git

import (
	"context"
	"fmt"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// FileChange is one changed path inside a commit, with its textual diff. For a
// root commit Diff holds the full file content as of that commit.
type FileChange struct {
	Path       string
	ChangeType string
	Diff       string
}

// CommitDetail is the result of the show-commit operation.
type CommitDetail struct {
	Commit CommitInfo
	Files  []FileChange
}

// ShowCommit resolves a commit and computes the per-path diff against its first
// parent, or the full content of each path for a root commit. A failure on one
// path is contained as a placeholder entry so the rest of the result survives.
func (r *Repository) ShowCommit(ctx context.Context, commitHash string) (CommitDetail, error) {
	_ = ctx

	goGitMu.Lock()
	defer goGitMu.Unlock()

	hash, err := r.repo.ResolveRevision(plumbing.Revision(commitHash))
	if err != nil {
		return CommitDetail{}, fmt.Errorf("failed to resolve commit %s: %w", commitHash, err)
	}
	commit, err := r.repo.CommitObject(*hash)
	if err != nil {
		return CommitDetail{}, fmt.Errorf("failed to read commit %s: %w", commitHash, err)
	}

	detail := CommitDetail{
		Commit: commitInfoOf(commit),
		Files:  []FileChange{},
	}

	if commit.NumParents() == 0 {
		files, err := rootCommitFiles(commit)
		if err != nil {
			return CommitDetail{}, err
		}
		detail.Files = files
		return detail, nil
	}

	parent, err := commit.Parent(0)
	if err != nil {
		return CommitDetail{}, fmt.Errorf("failed to read parent commit: %w", err)
	}
	parentTree, err := parent.Tree()
	if err != nil {
		return CommitDetail{}, fmt.Errorf("failed to read parent tree: %w", err)
	}
	commitTree, err := commit.Tree()
	if err != nil {
		return CommitDetail{}, fmt.Errorf("failed to read commit tree: %w", err)
	}

	changes, err := object.DiffTree(parentTree, commitTree)
	if err != nil {
		return CommitDetail{}, fmt.Errorf("failed to diff trees: %w", err)
	}

	for _, change := range changes {
		detail.Files = append(detail.Files, fileChangeOf(change))
	}
	return detail, nil
}

// fileChangeOf renders one tree change. Patch or action failures degrade to a
// placeholder rather than aborting the whole commit view.
func fileChangeOf(change *object.Change) FileChange {
	path := change.To.Name
	if path == "" {
		path = change.From.Name
	}

	changeType := "?"
	if action, err := change.Action(); err == nil {
		changeType = action.String()
	}

	patch, err := change.Patch()
	if err != nil {
		return FileChange{
			Path:       path,
			ChangeType: changeType,
			Diff:       fmt.Sprintf("failed to compute diff: %v", err),
		}
	}
	return FileChange{Path: path, ChangeType: changeType, Diff: patch.String()}
}

// rootCommitFiles lists every file in a parentless commit with its full content.
func rootCommitFiles(commit *object.Commit) ([]FileChange, error) {
	iter, err := commit.Files()
	if err != nil {
		return nil, fmt.Errorf("failed to read commit files: %w", err)
	}

	files := []FileChange{}
	err = iter.ForEach(func(f *object.File) error {
		contents, err := f.Contents()
		if err != nil {
			files = append(files, FileChange{
				Path:       f.Name,
				ChangeType: "Insert",
				Diff:       fmt.Sprintf("failed to read file content: %v", err),
			})
			return nil
		}
		files = append(files, FileChange{Path: f.Name, ChangeType: "Insert", Diff: contents})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate commit files: %w", err)
	}
	return files, nil
}
