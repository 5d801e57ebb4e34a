package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"repodeck.dev/repodeck/internal/engine"
)

// newCommitCmd creates the commit command
func newCommitCmd() *cobra.Command {
	var message string
	var push bool

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Commit staged changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if message == "" {
				return fmt.Errorf("a commit message is required")
			}

			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			repo, err := app.targetRepo(cmd)
			if err != nil {
				return err
			}

			result, err := app.exec(&engine.Request{
				RepoPath: repo,
				Kind:     engine.KindCommit,
				Args:     engine.CommitArgs{Message: message},
			})
			if err != nil {
				return err
			}
			app.splog.Info("%s", result.(engine.Confirmation).Text)

			if !push {
				return nil
			}
			result, err = app.exec(&engine.Request{RepoPath: repo, Kind: engine.KindPush})
			if err != nil {
				return err
			}
			app.splog.Info("%s", result.(engine.Confirmation).Text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message")
	cmd.Flags().BoolVarP(&push, "push", "p", false, "Push after committing")
	return cmd
}
