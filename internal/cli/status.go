package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"repodeck.dev/repodeck/internal/engine"
	"repodeck.dev/repodeck/internal/output"
)

// newStatusCmd creates the status command
func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the working copy file states",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			repos, err := app.fanTargets(cmd)
			if err != nil {
				return err
			}

			outcomes := app.execAll(repos, func(repo string) *engine.Request {
				return &engine.Request{RepoPath: repo, Kind: engine.KindStatus}
			})

			var failed bool
			for _, outcome := range outcomes {
				if len(repos) > 1 {
					app.splog.Info("%s:", filepath.Base(outcome.Repo))
				}
				if outcome.Failure != nil {
					app.splog.Error("%v", outcome.Failure.Err)
					failed = true
					continue
				}
				entries := outcome.Result.(engine.StatusResult).Entries
				if len(entries) == 0 {
					app.splog.Info("%s", output.Dim("clean"))
					continue
				}
				for _, entry := range entries {
					app.splog.Info("%s %-10s %s", entry.Glyph, entry.Category, entry.Path)
				}
			}
			if failed {
				return errFanOutFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolP("all", "a", false, "Run against every registered repository")
	return cmd
}
