package cli

import (
	"github.com/spf13/cobra"

	"repodeck.dev/repodeck/internal/engine"
)

// newStageCmd creates the stage command
func newStageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stage",
		Aliases: []string{"add"},
		Short:   "Stage all changes, including untracked files",
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

			result, err := app.exec(&engine.Request{RepoPath: repo, Kind: engine.KindStage})
			if err != nil {
				return err
			}
			app.splog.Info("%s", result.(engine.Confirmation).Text)
			return nil
		},
	}
	return cmd
}
