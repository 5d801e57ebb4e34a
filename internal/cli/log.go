package cli

import (
	"github.com/spf13/cobra"

	"repodeck.dev/repodeck/internal/engine"
	"repodeck.dev/repodeck/internal/output"
)

// newLogCmd creates the log command
func newLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show recent commits, newest first",
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

			result, err := app.exec(&engine.Request{RepoPath: repo, Kind: engine.KindLog})
			if err != nil {
				return err
			}

			for _, commit := range result.(engine.LogResult).Commits {
				meta := output.Dim("(" + commit.Author + ", " + commit.When.Format("2006-01-02 15:04") + ")")
				app.splog.Info("%s %s %s", commit.ShortHash, commit.Summary, meta)
			}
			return nil
		},
	}
	return cmd
}
