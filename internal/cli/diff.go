package cli

import (
	"github.com/spf13/cobra"

	"repodeck.dev/repodeck/internal/engine"
	"repodeck.dev/repodeck/internal/output"
)

// newDiffCmd creates the diff command
func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <path>",
		Short: "Show the diff of a path against the current HEAD",
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
				Kind:     engine.KindDiff,
				Args:     engine.DiffArgs{Path: args[0]},
			})
			if err != nil {
				return err
			}
			app.splog.Page(output.ColorizeDiff(result.(engine.DiffResult).Text))
			return nil
		},
	}
	return cmd
}
