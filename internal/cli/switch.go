package cli

import (
	"github.com/spf13/cobra"

	"repodeck.dev/repodeck/internal/engine"
)

// newSwitchCmd creates the switch command
func newSwitchCmd() *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:     "switch <branch>",
		Aliases: []string{"checkout", "co"},
		Short:   "Switch to a branch",
		Long: `Switch to a branch. With --remote the argument is a remote-tracking
reference such as origin/feature-x: a local tracking branch is created when one
does not exist yet, otherwise the existing local branch is checked out.`,
		Args: cobra.ExactArgs(1),
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

			origin := engine.OriginLocal
			if remote {
				origin = engine.OriginRemote
			}

			result, err := app.exec(&engine.Request{
				RepoPath: repo,
				Kind:     engine.KindCheckout,
				Args:     engine.CheckoutArgs{Ref: engine.BranchRef{Name: args[0], Origin: origin}},
			})
			if err != nil {
				return err
			}
			app.splog.Info("%s", result.(engine.Confirmation).Text)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&remote, "remote", "r", false, "Treat the argument as a remote-tracking reference")
	return cmd
}
