package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"repodeck.dev/repodeck/internal/engine"
)

// newPullCmd creates the pull command
func newPullCmd() *cobra.Command {
	var rebase, prune bool

	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Update the current branch from origin",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			// Flags override the configured defaults only when set
			pullArgs := engine.PullArgs{
				Rebase: app.cfg.PullRebase(),
				Prune:  app.cfg.PullPrune(),
			}
			if cmd.Flags().Changed("rebase") {
				pullArgs.Rebase = rebase
			}
			if cmd.Flags().Changed("prune") {
				pullArgs.Prune = prune
			}

			repos, err := app.fanTargets(cmd)
			if err != nil {
				return err
			}

			outcomes := app.execAll(repos, func(repo string) *engine.Request {
				return &engine.Request{RepoPath: repo, Kind: engine.KindPull, Args: pullArgs}
			})

			var failed bool
			for _, outcome := range outcomes {
				name := filepath.Base(outcome.Repo)
				if outcome.Failure != nil {
					app.splog.Error("%s: %v", name, outcome.Failure.Err)
					failed = true
					continue
				}
				app.splog.Info("%s: %s", name, outcome.Result.(engine.Confirmation).Text)
			}
			if failed {
				return errFanOutFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolP("all", "a", false, "Pull every registered repository")
	cmd.Flags().BoolVar(&rebase, "rebase", true, "Rebase instead of merge")
	cmd.Flags().BoolVar(&prune, "prune", true, "Prune stale remote-tracking branches")
	return cmd
}
