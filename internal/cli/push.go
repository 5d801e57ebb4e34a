package cli

import (
	"github.com/spf13/cobra"

	"repodeck.dev/repodeck/internal/engine"
)

// newPushCmd creates the push command
func newPushCmd() *cobra.Command {
	var setUpstream bool

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Push the current branch to its upstream",
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

			kind := engine.KindPush
			if setUpstream {
				kind = engine.KindPushWithUpstream
			}

			result, err := app.exec(&engine.Request{RepoPath: repo, Kind: kind})
			if err != nil {
				return err
			}
			app.splog.Info("%s", result.(engine.Confirmation).Text)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&setUpstream, "set-upstream", "u", false, "Set origin/<branch> as the upstream while pushing")
	return cmd
}
