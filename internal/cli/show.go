package cli

import (
	"github.com/spf13/cobra"

	"repodeck.dev/repodeck/internal/engine"
	"repodeck.dev/repodeck/internal/output"
)

// newShowCmd creates the show command
func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <commit>",
		Short: "Show a commit with the diff of every changed path",
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
				Kind:     engine.KindShowCommit,
				Args:     engine.ShowCommitArgs{CommitHash: args[0]},
			})
			if err != nil {
				return err
			}

			detail := result.(engine.ShowCommitResult).Detail
			commit := detail.Commit
			app.splog.Info("commit %s", commit.FullHash)
			app.splog.Info("author %s", commit.Author)
			app.splog.Info("date   %s", commit.When.Format("2006-01-02 15:04"))
			app.splog.Newline()
			app.splog.Info("    %s", commit.Summary)
			app.splog.Newline()

			for _, file := range detail.Files {
				app.splog.Info("%s %s", output.Dim(file.ChangeType), file.Path)
				app.splog.Page(output.ColorizeDiff(file.Diff))
				app.splog.Newline()
			}
			return nil
		},
	}
	return cmd
}
