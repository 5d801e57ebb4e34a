package git

import (
	"context"
	"path/filepath"
	"strings"
)

// CloneTargetDir derives the checkout directory for a repository URL under
// parentDir, mirroring git's own default naming.
func CloneTargetDir(parentDir, url string) string {
	name := strings.TrimSuffix(filepath.Base(strings.TrimSuffix(url, "/")), ".git")
	return filepath.Join(parentDir, name)
}

// Clone clones url into targetDir, streaming transfer progress. The target's
// parent directory is used as the command working directory so relative targets
// behave like the CLI.
func Clone(ctx context.Context, url, targetDir string, onProgress ProgressFunc) error {
	runner := NewCommandRunner(filepath.Dir(targetDir))
	args := networkArgs("clone", "--progress", url, targetDir)
	_, err := runner.RunWithProgress(ctx, onProgress, args...)
	return err
}
