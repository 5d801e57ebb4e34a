package cli

import (
	"github.com/spf13/cobra"

	"repodeck.dev/repodeck/internal/engine"
)

// newCherryPickCmd creates the cherry-pick command
func newCherryPickCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cherry-pick <commit>",
		Short: "Apply the change introduced by a commit onto the current branch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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
				Kind:     engine.KindCherryPick,
				Args:     engine.CherryPickArgs{CommitHash: args[0]},
			})
			if err != nil {
				return err
			}
			app.splog.Info("%s", result.(engine.Confirmation).Text)
			return nil
		},
	}
	return cmd
}
